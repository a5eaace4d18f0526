// Package export reads and writes the ticket export file: a JSON array of
// ticket records indented with four spaces.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
	"github.com/tidwall/jsonc"

	"github.com/Ilia01/ticketdesk/internal/models"
)

const filePerms = 0o644

// Record is the persisted form of one ticket. Comments are not exported.
type Record struct {
	ID            int     `json:"id"`
	Customer      string  `json:"customer"`
	Subject       string  `json:"subject"`
	Priority      string  `json:"priority"`
	Status        string  `json:"status"`
	AssignedAgent *string `json:"assigned_agent"`
}

func FromTicket(t models.Ticket) Record {
	r := Record{
		ID:       t.ID,
		Customer: t.Customer,
		Subject:  t.Subject,
		Priority: t.Priority,
		Status:   t.Status,
	}
	if t.AssignedAgent != "" {
		agent := t.AssignedAgent
		r.AssignedAgent = &agent
	}
	return r
}

func (r Record) Ticket() models.Ticket {
	t := models.Ticket{
		ID:       r.ID,
		Customer: r.Customer,
		Subject:  r.Subject,
		Priority: r.Priority,
		Status:   r.Status,
	}
	if r.AssignedAgent != nil {
		t.AssignedAgent = *r.AssignedAgent
	}
	return t
}

// Encode renders tickets in the export format.
func Encode(tickets []models.Ticket) ([]byte, error) {
	records := make([]Record, 0, len(tickets))
	for _, t := range tickets {
		records = append(records, FromTicket(t))
	}
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encode tickets: %w", err)
	}
	return append(data, '\n'), nil
}

// Write replaces path with the encoded tickets. The directory must already exist.
func Write(path string, tickets []models.Ticket) error {
	data, err := Encode(tickets)
	if err != nil {
		return err
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	// atomic.WriteFile leaves the temp file's 0600 mode on new files
	if err := os.Chmod(path, filePerms); err != nil {
		return fmt.Errorf("chmod export: %w", err)
	}
	return nil
}

// Decode parses an export file. Comments and trailing commas are tolerated so
// hand-edited files still load.
func Decode(data []byte) ([]models.Ticket, error) {
	var records []Record
	if err := json.Unmarshal(jsonc.ToJSON(data), &records); err != nil {
		return nil, fmt.Errorf("parse export: %w", err)
	}
	tickets := make([]models.Ticket, 0, len(records))
	for _, r := range records {
		tickets = append(tickets, r.Ticket())
	}
	return tickets, nil
}

func Read(path string) ([]models.Ticket, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}
	return Decode(data)
}
