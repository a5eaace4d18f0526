package models

import "testing"

func TestTicketString(t *testing.T) {
	tests := []struct {
		name   string
		ticket Ticket
		want   string
	}{
		{
			"unassigned",
			Ticket{ID: 1, Customer: "Acme", Subject: "Printer jam", Priority: "High", Status: "Open"},
			"ID: 1, Customer: Acme, Subject: Printer jam, Priority: High, Status: Open, Assigned Agent: -",
		},
		{
			"assigned",
			Ticket{ID: 7, Customer: "Beta", Subject: "Login", Priority: "Low", Status: "Closed", AssignedAgent: "Ana"},
			"ID: 7, Customer: Beta, Subject: Login, Priority: Low, Status: Closed, Assigned Agent: Ana",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ticket.String(); got != tt.want {
				t.Fatalf("String() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCommentsKeepOrderAndAreCopied(t *testing.T) {
	ticket := &Ticket{ID: 1}
	ticket.AddComment("first")
	ticket.AddComment("second")

	comments := ticket.Comments()
	if len(comments) != 2 || comments[0] != "first" || comments[1] != "second" {
		t.Fatalf("unexpected comments: %v", comments)
	}

	comments[0] = "changed"
	if ticket.Comments()[0] != "first" {
		t.Fatalf("Comments() must return a copy")
	}

	clone := ticket.Clone()
	clone.AddComment("third")
	if len(ticket.Comments()) != 2 {
		t.Fatalf("Clone() shares comments with the original")
	}
}

func TestVocabularyWithDefaults(t *testing.T) {
	v := Vocabulary{ClosedStatus: "Done"}.WithDefaults()
	if v.OpenStatus != StatusOpen || v.ClosedStatus != "Done" || v.DefaultPriority != PriorityMedium {
		t.Fatalf("unexpected vocabulary: %+v", v)
	}
	if len(v.Priorities) != 3 {
		t.Fatalf("expected advisory priorities, got %v", v.Priorities)
	}
}
