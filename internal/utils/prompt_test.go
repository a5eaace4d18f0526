package utils

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestPromptReadsSequentialLines(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("  Acme \nPrinter jam\nlast"), &out)

	for _, want := range []string{"Acme", "Printer jam", "last"} {
		got, err := p.Prompt("Field")
		if err != nil {
			t.Fatalf("Prompt: %v", err)
		}
		if got != want {
			t.Fatalf("Prompt() = %q, want %q", got, want)
		}
	}

	if _, err := p.Prompt("Field"); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF once input is exhausted, got %v", err)
	}
	if !strings.Contains(out.String(), "Field: ") {
		t.Fatalf("prompt text not written: %q", out.String())
	}
}

func TestPromptWithDefault(t *testing.T) {
	p := NewPrompter(strings.NewReader("\n/tmp/out\n"), io.Discard)

	got, err := p.PromptWithDefault("Directory", ".")
	if err != nil || got != "." {
		t.Fatalf("blank answer should use default, got %q, %v", got, err)
	}
	got, err = p.PromptWithDefault("Directory", ".")
	if err != nil || got != "/tmp/out" {
		t.Fatalf("unexpected answer %q, %v", got, err)
	}
}
