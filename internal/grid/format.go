package grid

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dpb1/tzgrid/internal/zones"
)

// Format prints g, one line per row, each terminated by a newline. The
// header line comes first when the grid has one.
func Format(g *Grid, s Styler) string {
	if s == nil {
		s = PlainStyler{}
	}

	var b strings.Builder
	if g.Header != nil {
		b.WriteString(padLabel("", g.LabelWidth))
		b.WriteString("   ")
		centre := g.Centre()
		for i, day := range g.Header {
			if i == centre {
				fmt.Fprintf(&b, "%-5s", day)
			} else {
				fmt.Fprintf(&b, "%-3s", day)
			}
		}
		b.WriteString("\n")
	}

	for _, row := range g.Rows {
		b.WriteString(s.Label(padLabel(row.Label, g.LabelWidth), row.Local))
		b.WriteString(" | ")
		for _, c := range row.Cells {
			b.WriteString(s.Cell(cellField(c, g.Mode), c.Category))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// cellField pads the cell text to the mode's width and brackets the centre
func cellField(c Cell, mode Mode) string {
	text := c.Text
	if mode == Mode12Hour {
		text = fmt.Sprintf("%3s", text)
	}
	if c.Centre {
		return "[" + text + "]"
	}
	return text
}

func padLabel(label string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(label, width, ""), width)
}

// Render builds and formats the grid in one step
func Render(entries []zones.LabeledZone, cfg Config, loc Locator, s Styler) (string, error) {
	g, err := Build(entries, cfg, loc)
	if err != nil {
		return "", err
	}
	return Format(g, s), nil
}
