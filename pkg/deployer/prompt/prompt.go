// Package prompt gathers missing parameters interactively. Prompting is a
// fallback: anything supplied via flags or env vars never reaches here.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter reads one free-form value per prompt, blocking until input is
// available. There is no timeout and no default.
type Prompter interface {
	Prompt(label string) (string, error)
}

type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) Prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

func (p *prompter) Prompt(label string) (string, error) {
	if _, err := fmt.Fprintf(p.out, "%s: ", label); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("failed to read input for %q: %w", label, err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
