// Package ui renders user-facing text. Whether ANSI colour is emitted is
// decided per Printer from its ColorMode; no package state is changed.
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// ColorMode selects whether styled output carries ANSI escapes
type ColorMode int

const (
	// ColorAuto colours output when the terminal supports it
	ColorAuto ColorMode = iota
	// ColorNever never colours output
	ColorNever
	// ColorAlways always colours output
	ColorAlways
)

// Severity prefixes of diagnostic lines
const (
	errorPrefix = "error:"
	warnPrefix  = "warn:"
	hintPrefix  = "hint:"
)

// Printer writes plain output to Stdout and diagnostics to Stderr
type Printer struct {
	Stdout io.Writer
	Stderr io.Writer
	mode   ColorMode
}

// NewPrinterTo creates a printer on the given writers
func NewPrinterTo(stdout, stderr io.Writer, mode ColorMode) *Printer {
	return &Printer{Stdout: stdout, Stderr: stderr, mode: mode}
}

// Mode returns the printer's colour mode
func (p *Printer) Mode() ColorMode {
	return p.mode
}

func (p *Printer) style(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	switch p.mode {
	case ColorNever:
		c.DisableColor()
	case ColorAlways:
		c.EnableColor()
	}
	return c
}

// Bold returns s in bold
func (p *Printer) Bold(s string) string {
	return p.style(color.Bold).Sprint(s)
}

// Accent returns s in bold cyan
func (p *Printer) Accent(s string) string {
	return p.style(color.FgCyan, color.Bold).Sprint(s)
}

// Danger returns s in bold red
func (p *Printer) Danger(s string) string {
	return p.style(color.FgRed, color.Bold).Sprint(s)
}

// Title returns s in bold green
func (p *Printer) Title(s string) string {
	return p.style(color.FgGreen, color.Bold).Sprint(s)
}

// Faint returns s in bright black
func (p *Printer) Faint(s string) string {
	return p.style(color.FgHiBlack).Sprint(s)
}

// Printf writes formatted text to Stdout
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.Stdout, format, args...)
}

// Println writes a line to Stdout
func (p *Printer) Println(args ...any) {
	fmt.Fprintln(p.Stdout, args...)
}

// Errorf writes an error diagnostic line to Stderr
func (p *Printer) Errorf(format string, args ...any) {
	fmt.Fprintf(p.Stderr, "%s %s\n", p.style(color.FgRed, color.Bold).Sprint(errorPrefix), fmt.Sprintf(format, args...))
}

// Warnf writes a warning diagnostic line to Stderr
func (p *Printer) Warnf(format string, args ...any) {
	fmt.Fprintf(p.Stderr, "%s %s\n", p.style(color.FgYellow, color.Bold).Sprint(warnPrefix), fmt.Sprintf(format, args...))
}

// Hintf writes a hint line to Stdout
func (p *Printer) Hintf(format string, args ...any) {
	fmt.Fprintf(p.Stdout, "%s %s\n", p.style(color.FgCyan, color.Bold).Sprint(hintPrefix), fmt.Sprintf(format, args...))
}
