package grid

import (
	"fmt"
	"strings"

	"github.com/dpb1/tzgrid/pkg/core/tzerror"
)

// Mode selects how cells are printed
type Mode int

const (
	// Mode24Hour prints the zone-local hour as "HH"
	Mode24Hour Mode = iota
	// Mode12Hour prints "12a", "3p", ...
	Mode12Hour
	// ModeHourMinute prints "HH:MM"
	ModeHourMinute
)

// CellWidth is the width of one non-centre cell including its trailing
// space.
func (m Mode) CellWidth() int {
	switch m {
	case Mode12Hour:
		return 4
	case ModeHourMinute:
		return 6
	default:
		return 3
	}
}

// HasHeader reports whether the day header row is printed in this mode
func (m Mode) HasHeader() bool {
	return m == Mode24Hour
}

func (m Mode) String() string {
	switch m {
	case Mode24Hour:
		return "24"
	case Mode12Hour:
		return "12"
	case ModeHourMinute:
		return "hhmm"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts the clock setting values "24", "12" and "hhmm"
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "24":
		return Mode24Hour, nil
	case "12":
		return Mode12Hour, nil
	case "hhmm":
		return ModeHourMinute, nil
	}
	return Mode24Hour, tzerror.Newf("unknown clock mode %q", s).
		WithCode(tzerror.CodeInvalidInput)
}
