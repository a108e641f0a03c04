package geo

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/dpb1/tzgrid/pkg/core/logging"
	"github.com/dpb1/tzgrid/pkg/core/tzerror"
)

//go:embed data/cities.tsv
var bundledCities []byte

// Opener returns the raw table contents
type Opener func() (io.ReadCloser, error)

// Bundled opens the city table compiled into the binary
func Bundled() Opener {
	return func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(bundledCities)), nil
	}
}

// File opens a geonames file on disk, e.g. cities15000.txt
func File(path string) Opener {
	return func() (io.ReadCloser, error) {
		return os.Open(path)
	}
}

// Table is the read-only, load-once city table. Nothing is read until the
// first call to Records or Search.
type Table struct {
	source string
	load   func() loaded
}

// loaded is the parsed table with its case-folded search columns
type loaded struct {
	records []Record
	folded  [][3]string
	err     error
}

// NewTable creates a table that reads from open on first use. source is
// only used in log lines and errors.
func NewTable(source string, open Opener, logger *logging.Logger) *Table {
	if logger == nil {
		logger = logging.Nop()
	}
	t := &Table{source: source}
	t.load = sync.OnceValue(func() loaded {
		return t.read(open, logger)
	})
	return t
}

func (t *Table) read(open Opener, logger *logging.Logger) loaded {
	rc, err := open()
	if err != nil {
		return loaded{err: tzerror.Wrap(err, "opening geolocation table").
			WithCode(tzerror.CodeGeoData).
			WithDetail("source", t.source)}
	}
	defer rc.Close()

	records, stats, err := Parse(rc)
	if err != nil {
		return loaded{err: tzerror.Wrap(err, "parsing geolocation table").
			WithCode(tzerror.CodeGeoData).
			WithDetail("source", t.source)}
	}

	logger.Debug("geolocation table loaded",
		"source", t.source, "rows", stats.Rows, "skipped", stats.Skipped, "derived_zones", stats.Derived)

	fold := cases.Fold()
	folded := make([][3]string, len(records))
	for i := range records {
		for _, f := range SearchOrder {
			folded[i][f] = fold.String(f.Value(&records[i]))
		}
	}
	return loaded{records: records, folded: folded}
}

// Source describes where the table is read from
func (t *Table) Source() string {
	return t.source
}

// Records returns every row. The slice must not be modified.
func (t *Table) Records() ([]Record, error) {
	l := t.load()
	return l.records, l.err
}

// Search returns the records whose field contains query, compared with
// Unicode case folding. Records keep table order.
func (t *Table) Search(field Field, query string) ([]Record, error) {
	if field < FieldName || field > FieldAlternateNames {
		return nil, fmt.Errorf("unknown search field %d", field)
	}

	l := t.load()
	if l.err != nil {
		return nil, l.err
	}

	needle := cases.Fold().String(query)
	var matches []Record
	for i := range l.records {
		if strings.Contains(l.folded[i][field], needle) {
			matches = append(matches, l.records[i])
		}
	}
	return matches, nil
}
