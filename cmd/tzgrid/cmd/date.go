package cmd

import (
	"strings"
	"time"

	"github.com/dpb1/tzgrid/pkg/core/tzerror"
)

// Layouts accepted by --date without a UTC offset. They are read in the
// local zone.
var localDateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Layouts that carry their own offset
var zonedDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04Z07:00",
	time.RFC1123Z,
	time.RFC1123,
}

// reference returns the centre instant: the parsed --date, or the current
// hour.
func reference(date string, now func() time.Time) (time.Time, error) {
	if date == "" {
		return now().UTC().Truncate(time.Hour), nil
	}
	return parseDate(date, time.Local)
}

func parseDate(s string, local *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)

	for _, layout := range zonedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	for _, layout := range localDateLayouts {
		if t, err := time.ParseInLocation(layout, s, local); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, tzerror.Newf("cannot parse date %q", s).
		WithCode(tzerror.CodeInvalidInput).
		WithDetail("example", "2006-01-02T15:04")
}
