package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/termai-cli/termai/internal/ports"
)

// Prompter implements ports.Prompter over stdio.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter constructs a prompter referencing stdio.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Confirm asks a [Y/n] question. Only an explicit n/N answer declines;
// anything else, including a bare Enter, accepts.
func (p *Prompter) Confirm(question string) (bool, error) {
	fmt.Fprintf(p.out, "%s [Y/n]: ", question)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer != "n", nil
}

// Select asks for an index in [0, n). A non-numeric or out-of-range answer
// cancels instead of erroring.
func (p *Prompter) Select(question string, n int) (int, bool, error) {
	fmt.Fprintf(p.out, "%s [0-%d, anything else cancels]: ", question, n-1)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return 0, false, err
	}
	idx, convErr := strconv.Atoi(strings.TrimSpace(line))
	if convErr != nil || idx < 0 || idx >= n {
		return 0, false, nil
	}
	return idx, true, nil
}

// Input reads one free-form line.
func (p *Prompter) Input(question string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", question)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

var _ ports.Prompter = (*Prompter)(nil)
