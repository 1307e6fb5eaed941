package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompt asks yes/no questions on the controlling terminal.
type Prompt struct {
	in          io.Reader
	out         io.Writer
	interactive bool
}

// NewPrompt returns a Prompt reading from stdin and writing to stderr.
func NewPrompt() *Prompt {
	return &Prompt{
		in:          os.Stdin,
		out:         os.Stderr,
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}
}

// Confirm renders "<question> [y/N]" and reads one line. Only "y" and "yes"
// (case-insensitive) are affirmative; anything else, including end of input,
// declines. A non-interactive stdin is an error so scripted runs must decide
// up front with --force.
func (p *Prompt) Confirm(question string) (bool, error) {
	if !p.interactive {
		return false, errors.New("console: confirmation requires an interactive terminal (use --force to skip)")
	}

	fmt.Fprintf(p.out, "%s [y/N]: ", question)

	line, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("console: read confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
