package models

import (
	"fmt"
	"slices"
)

const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"

	StatusOpen   = "Open"
	StatusClosed = "Closed"
)

// Priorities is the advisory priority set. Values outside it are stored as given.
var Priorities = []string{PriorityLow, PriorityMedium, PriorityHigh}

// Vocabulary holds the labels a session writes on its own: the status given to new
// tickets, the status set by close, and the priority used when none is supplied.
type Vocabulary struct {
	OpenStatus      string   `yaml:"open_status"`
	ClosedStatus    string   `yaml:"closed_status"`
	DefaultPriority string   `yaml:"default_priority"`
	Priorities      []string `yaml:"priorities,omitempty"`
}

func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		OpenStatus:      StatusOpen,
		ClosedStatus:    StatusClosed,
		DefaultPriority: PriorityMedium,
		Priorities:      slices.Clone(Priorities),
	}
}

// Spanish is the vocabulary used by the desk's original Spanish-speaking operators.
func Spanish() Vocabulary {
	return Vocabulary{
		OpenStatus:      "Abierto",
		ClosedStatus:    "Cerrado",
		DefaultPriority: "Media",
		Priorities:      []string{"Baja", "Media", "Alta"},
	}
}

// WithDefaults fills empty labels from DefaultVocabulary.
func (v Vocabulary) WithDefaults() Vocabulary {
	defaults := DefaultVocabulary()
	if v.OpenStatus == "" {
		v.OpenStatus = defaults.OpenStatus
	}
	if v.ClosedStatus == "" {
		v.ClosedStatus = defaults.ClosedStatus
	}
	if v.DefaultPriority == "" {
		v.DefaultPriority = defaults.DefaultPriority
	}
	if len(v.Priorities) == 0 {
		v.Priorities = defaults.Priorities
	}
	return v
}

type Ticket struct {
	ID            int
	Customer      string
	Subject       string
	Priority      string
	Status        string
	AssignedAgent string
	comments      []string
}

func (t *Ticket) AddComment(text string) {
	t.comments = append(t.comments, text)
}

// Comments returns a copy of the comments in insertion order.
func (t *Ticket) Comments() []string {
	return slices.Clone(t.comments)
}

// Clone returns a deep copy, including comments.
func (t *Ticket) Clone() Ticket {
	c := *t
	c.comments = slices.Clone(t.comments)
	return c
}

func (t Ticket) String() string {
	agent := t.AssignedAgent
	if agent == "" {
		agent = "-"
	}
	return fmt.Sprintf("ID: %d, Customer: %s, Subject: %s, Priority: %s, Status: %s, Assigned Agent: %s",
		t.ID, t.Customer, t.Subject, t.Priority, t.Status, agent)
}
