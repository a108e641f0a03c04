// Package geo loads the geonames city table used to turn place names into
// time zone identifiers.
//
// The embedded data/cities.tsv holds rows copied unchanged from the
// geonames cities15000.txt dump for the major cities only. Point the
// --geodata flag or the geodata setting at a full cities15000.txt (or any
// other geonames cities file) to resolve smaller places.
package geo

import (
	"strings"
)

// Record is one row of the geonames cities table
type Record struct {
	ID             int64
	Name           string
	ASCIIName      string
	AlternateNames string
	Latitude       float64
	Longitude      float64
	FeatureClass   string
	FeatureCode    string
	CountryCode    string
	CC2            string
	Admin1Code     string
	Admin2Code     string
	Admin3Code     string
	Admin4Code     string
	Population     int64
	Elevation      string
	DEM            string
	Timezone       string
	Modified       string

	// Geohash of the coordinates, empty when they could not be encoded
	Geohash string
	// ZoneFromCoordinates is set when Timezone was empty in the source and
	// was looked up from the coordinates instead
	ZoneFromCoordinates bool
}

// AltNames splits AlternateNames on commas and pipes
func (r Record) AltNames() []string {
	fields := strings.FieldsFunc(r.AlternateNames, func(c rune) bool {
		return c == ',' || c == '|'
	})
	names := fields[:0]
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			names = append(names, f)
		}
	}
	return names
}

// Field selects the searchable text column of a Record
type Field int

const (
	FieldName Field = iota
	FieldASCIIName
	FieldAlternateNames
)

// SearchOrder is the order in which fields are tried during resolution
var SearchOrder = []Field{FieldName, FieldASCIIName, FieldAlternateNames}

// String returns the geonames column name
func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldASCIIName:
		return "asciiname"
	case FieldAlternateNames:
		return "alternatenames"
	default:
		return "unknown"
	}
}

// Value returns the field's text in r
func (f Field) Value(r *Record) string {
	switch f {
	case FieldName:
		return r.Name
	case FieldASCIIName:
		return r.ASCIIName
	case FieldAlternateNames:
		return r.AlternateNames
	default:
		return ""
	}
}
