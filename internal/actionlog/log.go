// Package actionlog records what the operator did during a session so it can
// be shown when the session ends. Entries are append-only.
package actionlog

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ilia01/ticketdesk/internal/clock"
)

const separator = "------------------------------------------------"

type Entry struct {
	At          time.Time
	Description string
}

type Log struct {
	sessionID string
	clock     clock.Clock
	entries   []Entry
}

func New(clk clock.Clock) *Log {
	if clk == nil {
		clk = clock.NewSystem()
	}
	return &Log{
		sessionID: uuid.NewString(),
		clock:     clk,
	}
}

// SessionID identifies the session in logs and in the printed summary.
func (l *Log) SessionID() string {
	return l.sessionID
}

func (l *Log) Record(format string, args ...any) {
	l.entries = append(l.entries, Entry{
		At:          l.clock.Now(),
		Description: fmt.Sprintf(format, args...),
	})
}

func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Log) Len() int {
	return len(l.entries)
}

// WriteTo prints the summary block shown at the end of a session.
func (l *Log) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	b.WriteString(separator + "\n")
	fmt.Fprintf(&b, "\nAction log (session %s):\n", l.sessionID)
	if len(l.entries) == 0 {
		b.WriteString("  no actions recorded\n")
	}
	for _, entry := range l.entries {
		fmt.Fprintf(&b, "  %s  %s\n", entry.At.Format("15:04:05"), entry.Description)
	}
	b.WriteString(separator + "\n")

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
