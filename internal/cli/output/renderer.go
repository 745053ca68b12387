// Package output renders command results as styled text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Mode selects how command results are rendered.
type Mode string

const (
	// ModeAuto picks text output, styled only on a terminal.
	ModeAuto Mode = "auto"
	// ModeText is human-readable line output.
	ModeText Mode = "text"
	// ModeJSON is machine-readable output for scripting.
	ModeJSON Mode = "json"
)

// Valid reports whether m names a known output mode. The empty string
// is accepted and treated as auto.
func (m Mode) Valid() bool {
	switch m {
	case "", ModeAuto, ModeText, ModeJSON:
		return true
	}
	return false
}

// Renderer writes command output in the selected mode. Styling is
// applied only when stdout is a terminal.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	isTTY  bool

	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
}

// NewRenderer creates a renderer, detecting whether out is a terminal.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	isTTY := false
	if f, ok := out.(*os.File); ok {
		isTTY = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return NewRendererWithTTY(out, errOut, isTTY, mode)
}

// NewRendererWithTTY creates a renderer with an explicit TTY state.
// Tests use this to pin styling behavior regardless of the writer.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode Mode) *Renderer {
	lr := lipgloss.NewRenderer(out)
	if !isTTY {
		lr.SetColorProfile(termenv.Ascii)
	}
	if mode == "" || mode == ModeAuto {
		mode = ModeText
	}
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		isTTY:  isTTY,
		success: lr.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		warning: lr.NewStyle().Foreground(lipgloss.Color("11")),
		failure: lr.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}

// JSONMode reports whether results should be emitted as JSON.
func (r *Renderer) JSONMode() bool { return r.mode == ModeJSON }

// Out returns the writer for primary output, for table rendering.
func (r *Renderer) Out() io.Writer { return r.out }

// Success prints a confirmation line to stdout.
func (r *Renderer) Success(msg string) {
	_, _ = fmt.Fprintln(r.out, r.success.Render(msg))
}

// Info prints an unstyled line to stdout.
func (r *Renderer) Info(msg string) {
	_, _ = fmt.Fprintln(r.out, msg)
}

// Warning prints a warning line to stderr.
func (r *Renderer) Warning(msg string) {
	_, _ = fmt.Fprintln(r.errOut, r.warning.Render(msg))
}

// Error prints an error line to stderr.
func (r *Renderer) Error(msg string) {
	_, _ = fmt.Fprintln(r.errOut, r.failure.Render(msg))
}

// JSON writes v as indented JSON to stdout.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
