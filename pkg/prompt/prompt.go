// Package prompt implements console prompts for the wizard and for the
// destructive-mode confirmation. Input and output are injectable for tests.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/dotup/pkg/errors"
	"github.com/arthur-debert/dotup/pkg/links"
)

// Prompter reads operator decisions from a console.
type Prompter struct {
	out    io.Writer
	reader *bufio.Reader
}

// New returns a Prompter on stdin/stdout
func New() *Prompter {
	return NewWithIO(os.Stdin, os.Stdout)
}

// NewWithIO returns a Prompter on the given streams
func NewWithIO(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{out: out, reader: bufio.NewReader(in)}
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(err, errors.ErrFileAccess, "failed to read input")
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks a yes/no question. Only exactly "y" or "Y" confirms; any
// other input, including the empty default, declines. Deliberate safety
// default: Enter never causes changes.
func (p *Prompter) Confirm(question string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N]: ", question)
	answer, err := p.readLine()
	if err != nil {
		return false, err
	}
	return answer == "y" || answer == "Y", nil
}

// Choose implements links.Chooser: ask the operator how to resolve one
// conflicting target. Empty input skips; q aborts the whole run.
func (p *Prompter) Choose(link links.Link, status links.Status, detail string) (links.ConflictMode, error) {
	fmt.Fprintf(p.out, "%s: %s (%s)\n", link.Spec.Key, status.Label(), detail)
	for {
		fmt.Fprint(p.out, "  [s]kip / [b]ackup then link / [o]verwrite / [q]uit? [s]: ")
		answer, err := p.readLine()
		if err != nil {
			return "", err
		}

		switch strings.ToLower(answer) {
		case "", "s", "skip":
			return links.ModeSkip, nil
		case "b", "backup":
			return links.ModeBackup, nil
		case "o", "overwrite":
			return links.ModeOverwrite, nil
		case "q", "quit":
			return "", errors.ErrCancelled
		default:
			fmt.Fprintf(p.out, "  unrecognized choice %q\n", answer)
		}
	}
}
