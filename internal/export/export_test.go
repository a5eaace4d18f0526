package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Ilia01/ticketdesk/internal/models"
)

func sampleTickets() []models.Ticket {
	return []models.Ticket{
		{ID: 1, Customer: "Acme", Subject: "Printer jam", Priority: "High", Status: "Open"},
		{ID: 3, Customer: "Beta", Subject: "Login \"issue\"", Priority: "whenever", Status: "Closed", AssignedAgent: "Ana"},
	}
}

func TestWriteAndReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tickets.json")
	want := sampleTickets()

	if err := Write(path, want); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d tickets, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].String() != want[i].String() {
			t.Fatalf("ticket %d mismatch:\n got  %s\n want %s", i, got[i], want[i])
		}
	}
}

func TestWriteOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tickets.json")
	if err := Write(path, sampleTickets()); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := Write(path, sampleTickets()[:1]); err != nil {
		t.Fatalf("second write: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected file to be replaced, got %d tickets", len(got))
	}
}

func TestEncodeFormat(t *testing.T) {
	data, err := Encode(sampleTickets())
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	out := string(data)
	for _, want := range []string{
		"[\n    {\n        \"id\": 1,",
		"\"assigned_agent\": null",
		"\"assigned_agent\": \"Ana\"",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestEncodeEmpty(t *testing.T) {
	data, err := Encode(nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Fatalf("expected empty array, got %s", data)
	}
}

func TestWriteMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "tickets.json")
	if err := Write(path, sampleTickets()); err == nil {
		t.Fatal("expected error for missing directory")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("file should not exist: %v", err)
	}
}

func TestDecodeToleratesComments(t *testing.T) {
	data := []byte(`[
    // edited by hand
    {"id": 2, "customer": "Acme", "subject": "VPN", "priority": "Low", "status": "Open", "assigned_agent": null,},
]`)
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != 2 || got[0].AssignedAgent != "" {
		t.Fatalf("unexpected tickets: %+v", got)
	}
}
