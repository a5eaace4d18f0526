package utils

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter reads operator answers line by line. One Prompter must own the
// input for the whole session so buffered lines are not lost between prompts.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

func (p *Prompter) Prompt(message string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", BrightWhite(message))
	return p.readLine()
}

func (p *Prompter) PromptWithDefault(message, defaultValue string) (string, error) {
	fmt.Fprintf(p.out, "%s [%s]: ", BrightWhite(message), Dim(defaultValue))
	text, err := p.readLine()
	if err != nil {
		return "", err
	}
	if text == "" {
		return defaultValue, nil
	}
	return text, nil
}

// readLine returns io.EOF only when the input is exhausted with nothing left to read.
func (p *Prompter) readLine() (string, error) {
	text, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && text != "" {
			return strings.TrimSpace(text), nil
		}
		return "", err
	}
	return strings.TrimSpace(text), nil
}
