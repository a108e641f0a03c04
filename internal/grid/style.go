package grid

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/dpb1/tzgrid/pkg/core/config"
	"github.com/dpb1/tzgrid/pkg/core/tzerror"
)

// Styler decorates formatted cells and labels
type Styler interface {
	Cell(text string, c Category) string
	Label(text string, local bool) string
}

// PlainStyler leaves text untouched
type PlainStyler struct{}

func (PlainStyler) Cell(text string, _ Category) string { return text }
func (PlainStyler) Label(text string, _ bool) string    { return text }

// ANSI palette indices
var (
	colorCurrent  = lipgloss.Color("1")
	colorMidnight = lipgloss.Color("6")
	colorWorking  = lipgloss.Color("2")
	colorLocal    = lipgloss.Color("4")
)

// ColorStyler colours cells with lipgloss: red for the current column,
// cyan for midnight, green for working hours and blue for local labels.
type ColorStyler struct {
	current  lipgloss.Style
	midnight lipgloss.Style
	working  lipgloss.Style
	local    lipgloss.Style
}

// NewColorStyler creates a styler bound to r
func NewColorStyler(r *lipgloss.Renderer) *ColorStyler {
	return &ColorStyler{
		current:  r.NewStyle().Foreground(colorCurrent),
		midnight: r.NewStyle().Foreground(colorMidnight),
		working:  r.NewStyle().Foreground(colorWorking),
		local:    r.NewStyle().Foreground(colorLocal),
	}
}

// Cell implements Styler
func (s *ColorStyler) Cell(text string, c Category) string {
	switch c {
	case CategoryCurrent:
		return s.current.Render(text)
	case CategoryMidnight:
		return s.midnight.Render(text)
	case CategoryWorking:
		return s.working.Render(text)
	default:
		return text
	}
}

// Label implements Styler
func (s *ColorStyler) Label(text string, local bool) string {
	if !local {
		return text
	}
	return s.local.Render(text)
}

// NewRenderer returns a lipgloss renderer for w. color takes the config
// values: auto detects the terminal, always forces at least ANSI colours
// and never disables them.
func NewRenderer(w io.Writer, color string) (*lipgloss.Renderer, error) {
	r := lipgloss.NewRenderer(w)
	switch strings.ToLower(color) {
	case "", config.ColorAuto:
	case config.ColorAlways:
		if r.ColorProfile() == termenv.Ascii {
			r.SetColorProfile(termenv.ANSI)
		}
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	default:
		return nil, tzerror.Newf("unknown color setting %q", color).
			WithCode(tzerror.CodeInvalidInput)
	}
	return r, nil
}

// NewStyler picks the styler for w. Without colour support the plain
// styler is used.
func NewStyler(w io.Writer, color string) (Styler, error) {
	r, err := NewRenderer(w, color)
	if err != nil {
		return nil, err
	}
	if r.ColorProfile() == termenv.Ascii {
		return PlainStyler{}, nil
	}
	return NewColorStyler(r), nil
}
