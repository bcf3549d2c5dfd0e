package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/bluejays/schoolsys/core"
)

var readPasswordFunc = term.ReadPassword // mockable

// Confirmer gates destructive actions behind an explicit user decision.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function (tests, scripted runs) into a Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// ConsolePrompter reads interactive input from a terminal. All reads share
// one buffered reader over In, so input buffered ahead of one prompt (piped
// stdin, pasted lines) stays available to the next.
type ConsolePrompter struct {
	In  io.Reader
	Out io.Writer

	r *bufio.Reader
}

var _ Confirmer = (*ConsolePrompter)(nil)

func (p *ConsolePrompter) reader() *bufio.Reader {
	if p.r == nil {
		p.r = bufio.NewReader(p.In)
	}
	return p.r
}

// Confirm asks a y/N question; anything but an explicit yes declines.
func (p *ConsolePrompter) Confirm(prompt string) bool {
	fmt.Fprintf(p.Out, "%s [y/N]: ", prompt)
	line, err := p.reader().ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch core.CleanString(line, true /* lower */) {
	case "y", "yes":
		return true
	}
	return false
}

// ReadLine prompts for one line of input.
func (p *ConsolePrompter) ReadLine(prompt string) (string, error) {
	fmt.Fprintf(p.Out, "%s: ", prompt)
	line, err := p.reader().ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadPassword prompts without echoing.
func (p *ConsolePrompter) ReadPassword(prompt string) (string, error) {
	fmt.Fprintf(p.Out, "%s: ", prompt)
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Fprintln(p.Out)
	if err != nil {
		return "", err
	}
	return string(pwd), nil
}
