package tracker

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidID = errors.New("invalid ticket id")
	ErrNotFound  = errors.New("ticket not found")
	ErrNoMatches = errors.New("no matching tickets")
	ErrIOFailure = errors.New("export failed")
)

// ParseID converts an operator-typed token into a ticket id.
func ParseID(token string) (int, error) {
	trimmed := strings.TrimSpace(token)
	id, err := strconv.Atoi(trimmed)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, trimmed)
	}
	return id, nil
}
