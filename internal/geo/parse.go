package geo

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	geohash "github.com/TomiHiltunen/geohash-golang"
	"github.com/bradfitz/latlong"
)

// ColumnCount is the number of tab separated columns in a geonames row
const ColumnCount = 19

// maxLineSize bounds a single row; alternatenames can be very long
const maxLineSize = 1 << 20

// geohash of (0, 0) style garbage coordinates, treated as unknown
const invalidGeohash = "7zzzzzzzzzzz"

// Stats describes the outcome of parsing a table
type Stats struct {
	Rows    int
	Skipped int
	// Derived counts rows whose zone came from the coordinates
	Derived int
}

// Parse reads geonames rows from r. Rows with the wrong number of columns
// are skipped and counted in Stats.
func Parse(r io.Reader) ([]Record, Stats, error) {
	var (
		records []Record
		stats   Stats
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		rec, ok := parseRow(line)
		if !ok {
			stats.Skipped++
			continue
		}
		if rec.ZoneFromCoordinates {
			stats.Derived++
		}
		records = append(records, rec)
		stats.Rows++
	}
	if err := scanner.Err(); err != nil {
		return records, stats, fmt.Errorf("reading row %d: %w", stats.Rows+stats.Skipped+1, err)
	}

	return records, stats, nil
}

func parseRow(line string) (Record, bool) {
	fields := strings.Split(line, "\t")
	if len(fields) != ColumnCount {
		return Record{}, false
	}

	id, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return Record{}, false
	}
	lat, _ := strconv.ParseFloat(fields[4], 64)
	lng, _ := strconv.ParseFloat(fields[5], 64)
	pop, _ := strconv.ParseInt(fields[14], 10, 64)

	rec := Record{
		ID:             id,
		Name:           strings.TrimSpace(fields[1]),
		ASCIIName:      fields[2],
		AlternateNames: fields[3],
		Latitude:       lat,
		Longitude:      lng,
		FeatureClass:   fields[6],
		FeatureCode:    fields[7],
		CountryCode:    fields[8],
		CC2:            fields[9],
		Admin1Code:     fields[10],
		Admin2Code:     fields[11],
		Admin3Code:     fields[12],
		Admin4Code:     fields[13],
		Population:     pop,
		Elevation:      fields[15],
		DEM:            fields[16],
		Timezone:       strings.TrimSpace(fields[17]),
		Modified:       fields[18],
	}

	if gh := geohash.Encode(lat, lng); gh != invalidGeohash {
		rec.Geohash = gh
	}

	if rec.Timezone == "" {
		rec.Timezone = lookupZone(lat, lng)
		rec.ZoneFromCoordinates = rec.Timezone != ""
	}

	return rec, rec.Name != ""
}

// lookupZone maps coordinates to a zone name. latlong reports missing
// tables with a sentence instead of an error.
func lookupZone(lat, lng float64) string {
	zone := latlong.LookupZoneName(lat, lng)
	if strings.ContainsRune(zone, ' ') {
		return ""
	}
	return zone
}
