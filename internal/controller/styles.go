package controller

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	m "wptdiff.dev/pkg/wptdiff/internal/model"
)

var (
	goodStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	badStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	lateralStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	titleStyle   = lipgloss.NewStyle().Bold(true)
)

// Palette is a stateless rendering policy mapping outcomes, change
// categories and diff polarity to presentation. With color disabled every
// method returns its input unchanged, which keeps the renderer free of
// conditionals and the output greppable either way.
type Palette struct {
	color bool
}

// NewPalette returns a palette; pass false to disable all styling.
func NewPalette(color bool) Palette {
	return Palette{color: color}
}

// Title styles a section header.
func (p Palette) Title(s string) string {
	if !p.color {
		return s
	}

	return titleStyle.Render(s)
}

// Status styles text according to the outcome it describes: green for
// passing states, red otherwise.
func (p Palette) Status(outcome m.Outcome, s string) string {
	if !p.color {
		return s
	}

	if outcome.Passing() {
		return goodStyle.Render(s)
	}

	return badStyle.Render(s)
}

// Category styles text according to a change category.
func (p Palette) Category(category m.ChangeCategory, s string) string {
	if !p.color {
		return s
	}

	switch category {
	case m.Improvement:
		return goodStyle.Render(s)
	case m.Regression:
		return badStyle.Render(s)
	case m.Lateral:
		return lateralStyle.Render(s)
	default:
		return s
	}
}

// Diff formats a numeric difference, colored by whether growth is good
// for the quantity it describes. Zero stays plain.
func (p Palette) Diff(value int, positiveGood bool) string {
	s := strconv.Itoa(value)
	if !p.color || value == 0 {
		return s
	}

	if (value > 0) == positiveGood {
		return goodStyle.Render(s)
	}

	return badStyle.Render(s)
}
