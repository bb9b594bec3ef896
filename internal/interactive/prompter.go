package interactive

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/core"
	"github.com/AlecAivazis/survey/v2/terminal"
	"golang.org/x/term"
	"godot-cli/internal/ui"
)

// Prompter implements the Confirmer interface. On a terminal it uses a
// survey confirm; otherwise it reads a line and accepts only "y".
type Prompter struct {
	reader   *bufio.Reader
	out      *ui.Printer
	terminal bool
}

// NewPrompter creates a prompter reading from the process stdin
func NewPrompter(out *ui.Printer) *Prompter {
	p := NewPrompterFrom(os.Stdin, out)
	p.terminal = term.IsTerminal(int(os.Stdin.Fd()))
	return p
}

// NewPrompterFrom creates a line-reading prompter on in
func NewPrompterFrom(in io.Reader, out *ui.Printer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Confirm asks message as a yes/no question
func (p *Prompter) Confirm(message string) (bool, error) {
	if p.terminal {
		return p.surveyConfirm(message)
	}
	return p.lineConfirm(message)
}

// surveyConfirm uses an interactive survey prompt; Ctrl+C counts as no
func (p *Prompter) surveyConfirm(message string) (bool, error) {
	applyColorMode(p.out.Mode())

	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}

	var result bool
	if err := survey.AskOne(prompt, &result); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return false, nil
		}
		return false, err
	}
	return result, nil
}

// lineConfirm prints "message (y/n) " and reads one line. End of input counts as no.
func (p *Prompter) lineConfirm(message string) (bool, error) {
	p.out.Printf("%s %s ", message, p.out.Faint("(y/n)"))

	input, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}

	return strings.ToLower(strings.TrimSpace(input)) == "y", nil
}

// applyColorMode maps the printer's colour mode onto survey's package-level
// switch. survey styles through its own templates, so auto keeps its default.
func applyColorMode(mode ui.ColorMode) {
	core.DisableColor = mode == ui.ColorNever
}
