// Package ui holds the terminal styling used by tailstack commands.
package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

// Styles are the lipgloss styles applied to command output.
type Styles struct {
	Header   lipgloss.Style
	Family   lipgloss.Style
	Token    lipgloss.Style
	Selector lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
}

// NewStyles returns colored styles for terminals and plain ones otherwise,
// so piped output stays free of escape sequences.
func NewStyles(color bool) Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return Styles{
			Header:   plain,
			Family:   plain,
			Token:    plain,
			Selector: plain,
			Muted:    plain,
			Success:  plain,
			Warning:  plain,
		}
	}

	return Styles{
		Header:   lipgloss.NewStyle().Bold(true).Underline(true),
		Family:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#1d4ed8", Dark: "#93c5fd"}),
		Token:    lipgloss.NewStyle().Bold(true),
		Selector: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#475569", Dark: "#cbd5e1"}),
		Muted:    lipgloss.NewStyle().Faint(true),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#15803d", Dark: "#86efac"}),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#a16207", Dark: "#fde047"}),
	}
}

// StylesFor picks styles for w.
func StylesFor(w io.Writer) Styles {
	return NewStyles(IsTerminal(w))
}
