// Package grid computes and formats the time zone grid. Build is pure for
// fixed inputs; Format applies a Styler to the result.
package grid

import (
	"cmp"
	"slices"
	"strconv"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/dpb1/tzgrid/internal/zones"
	"github.com/dpb1/tzgrid/pkg/core/tzerror"
)

// Category is the highlight class of a cell
type Category int

const (
	CategoryNone Category = iota
	CategoryCurrent
	CategoryMidnight
	CategoryWorking
)

func (c Category) String() string {
	switch c {
	case CategoryCurrent:
		return "current"
	case CategoryMidnight:
		return "midnight"
	case CategoryWorking:
		return "working"
	default:
		return "none"
	}
}

// Working hours, inclusive, in zone-local time
const (
	WorkStartHour = 8
	WorkEndHour   = 18
)

// Classify returns the category of a cell at the given local hour. The
// centre column always wins.
func Classify(hour int, centre bool) Category {
	switch {
	case centre:
		return CategoryCurrent
	case hour == 0:
		return CategoryMidnight
	case hour >= WorkStartHour && hour <= WorkEndHour:
		return CategoryWorking
	default:
		return CategoryNone
	}
}

// Config holds the inputs of one render pass
type Config struct {
	// Reference is the instant of the centre column
	Reference time.Time
	// Width is the output width in columns
	Width int
	Mode  Mode
	// LocalZone identifies the zone whose rows get the local highlight
	LocalZone string
}

// Locator turns a zone identifier into a location
type Locator interface {
	Location(id string) (*time.Location, error)
}

// Cell is one time column of a row
type Cell struct {
	Text     string
	Category Category
	Centre   bool
}

// Row is one zone of the grid
type Row struct {
	Label string
	Zone  string
	// Offset is the UTC offset in seconds at the reference instant
	Offset int
	Local  bool
	Cells  []Cell
}

// Grid is the computed grid, ready for formatting
type Grid struct {
	Mode       Mode
	LabelWidth int
	Axis       []time.Time
	// Header holds the day labels, nil when the mode has no header
	Header []string
	Rows   []Row
}

// Centre returns the index of the reference column
func (g *Grid) Centre() int {
	return len(g.Axis) / 2
}

// Build computes the grid for the labelled zones. Every zone must be
// known to loc; otherwise no grid is returned.
func Build(entries []zones.LabeledZone, cfg Config, loc Locator) (*Grid, error) {
	if len(entries) == 0 {
		return nil, tzerror.New("no zones to render").WithCode(tzerror.CodeInvalidInput)
	}

	type located struct {
		entry  zones.LabeledZone
		loc    *time.Location
		offset int
	}

	rows := make([]located, 0, len(entries))
	labelWidth := 0
	for _, e := range entries {
		l, err := loc.Location(e.Zone)
		if err != nil {
			return nil, tzerror.Wrap(err, "rendering zone").WithDetail("zone", e.Zone)
		}
		_, offset := cfg.Reference.In(l).Zone()
		rows = append(rows, located{entry: e, loc: l, offset: offset})
		labelWidth = max(labelWidth, runewidth.StringWidth(e.Label))
	}

	slices.SortStableFunc(rows, func(a, b located) int {
		return cmp.Compare(a.offset, b.offset)
	})

	g := &Grid{
		Mode:       cfg.Mode,
		LabelWidth: labelWidth,
		Axis:       Axis(cfg.Reference, ColumnCount(cfg.Width, labelWidth, cfg.Mode)),
	}
	centre := g.Centre()

	if cfg.Mode.HasHeader() {
		g.Header = dayHeader(g.Axis, rows[0].loc)
	}

	localName, localOffset, haveLocal := "", 0, false
	if cfg.LocalZone != "" {
		if l, err := loc.Location(cfg.LocalZone); err == nil {
			localName, localOffset = cfg.Reference.In(l).Zone()
			haveLocal = true
		}
	}

	g.Rows = make([]Row, len(rows))
	for i, r := range rows {
		name, offset := cfg.Reference.In(r.loc).Zone()
		row := Row{
			Label:  r.entry.Label,
			Zone:   r.entry.Zone,
			Offset: offset,
			Local:  haveLocal && name == localName && offset == localOffset,
			Cells:  make([]Cell, len(g.Axis)),
		}
		for j, t := range g.Axis {
			lt := t.In(r.loc)
			row.Cells[j] = Cell{
				Text:     cellText(lt, cfg.Mode),
				Category: Classify(lt.Hour(), j == centre),
				Centre:   j == centre,
			}
		}
		g.Rows[i] = row
	}
	return g, nil
}

func cellText(t time.Time, mode Mode) string {
	switch mode {
	case Mode12Hour:
		return ampm(t.Hour())
	case ModeHourMinute:
		return t.Format("15:04")
	default:
		return t.Format("15")
	}
}

// ampm formats an hour as "12a", "1a", ... "11p"
func ampm(hour int) string {
	suffix := "a"
	if hour >= 12 {
		suffix = "p"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return strconv.Itoa(h) + suffix
}

// dayHeader labels the columns where a new day starts in loc
func dayHeader(axis []time.Time, loc *time.Location) []string {
	header := make([]string, len(axis))
	for i, t := range axis {
		if lt := t.In(loc); lt.Hour() == 0 {
			header[i] = lt.Format("Mon")
		}
	}
	return header
}
