package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ConfirmThreshold is the number of links at which writing needs confirmation.
const ConfirmThreshold = 1000

// ShouldConfirm reports whether writing n links needs the user's go-ahead.
func ShouldConfirm(n int, skipPrompt bool) bool {
	return n >= ConfirmThreshold && !skipPrompt
}

// Confirmer asks whether to proceed.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// Prompter asks on a terminal. Empty, "y" and "yes" proceed; "n" and "no"
// abort; anything else asks again. End of input aborts.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter reading answers from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Confirm prints prompt until it gets a yes or no answer.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	for {
		if _, err := fmt.Fprint(p.out, prompt); err != nil {
			return false, fmt.Errorf("writing prompt: %w", err)
		}

		line, err := p.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("reading answer: %w", err)
		}
		eof := err != nil

		if eof && line == "" {
			return false, nil
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "", "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}

		if eof {
			return false, nil
		}
	}
}
