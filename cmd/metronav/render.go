package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles renders output for one writer. Colors are dropped automatically
// when the writer is not a terminal.
type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	station lipgloss.Style
	code    lipgloss.Style
	marker  lipgloss.Style
	box     lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		label:   r.NewStyle().Bold(true),
		station: r.NewStyle().Foreground(lipgloss.Color("10")),
		code:    r.NewStyle().Faint(true),
		marker:  r.NewStyle().Foreground(lipgloss.Color("11")),
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
	}
}
