package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dpb1/tzgrid/internal/zones"
	"github.com/dpb1/tzgrid/pkg/core/tzerror"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func checkOutputFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	}
	return tzerror.Newf("unknown output format %q (want text, json or yaml)", format).
		WithCode(tzerror.CodeInvalidInput)
}

type searchResult struct {
	Name   string `json:"name" yaml:"name"`
	Zone   string `json:"zone" yaml:"zone"`
	Source string `json:"source" yaml:"source"`
	Place  *place `json:"place,omitempty" yaml:"place,omitempty"`
}

type place struct {
	MatchedField   string   `json:"matched_field" yaml:"matched_field"`
	ASCIIName      string   `json:"ascii_name" yaml:"ascii_name"`
	AlternateNames []string `json:"alternate_names,omitempty" yaml:"alternate_names,omitempty"`
	CountryCode    string   `json:"country_code" yaml:"country_code"`
	Population     int64    `json:"population" yaml:"population"`
	Latitude       float64  `json:"latitude" yaml:"latitude"`
	Longitude      float64  `json:"longitude" yaml:"longitude"`
	Geohash        string   `json:"geohash,omitempty" yaml:"geohash,omitempty"`
}

func toResults(candidates []zones.Candidate) []searchResult {
	results := make([]searchResult, 0, len(candidates))
	for _, c := range candidates {
		r := searchResult{Name: c.Name, Zone: c.Zone, Source: string(c.Source)}
		if rec := c.Record; rec != nil {
			r.Place = &place{
				MatchedField:   c.Field.String(),
				ASCIIName:      rec.ASCIIName,
				AlternateNames: rec.AltNames(),
				CountryCode:    rec.CountryCode,
				Population:     rec.Population,
				Latitude:       rec.Latitude,
				Longitude:      rec.Longitude,
				Geohash:        rec.Geohash,
			}
		}
		results = append(results, r)
	}
	return results
}

func writeCandidates(w io.Writer, format string, candidates []zones.Candidate, verbose bool) error {
	if format != formatText {
		return encode(w, format, toResults(candidates))
	}

	for _, c := range candidates {
		if c.Record == nil {
			if _, err := fmt.Fprintf(w, "Exact Match: %s\n", c.Zone); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", c.Name, c.Zone); err != nil {
			return err
		}
		if !verbose {
			continue
		}
		rec := c.Record
		fmt.Fprintf(w, "   - Population: %d\n", rec.Population)
		fmt.Fprintf(w, "   - ASCII Name: %s\n", rec.ASCIIName)
		fmt.Fprintf(w, "   - Alternate Names: %s\n", rec.AlternateNames)
		fmt.Fprintf(w, "   - Country: %s\n", rec.CountryCode)
		fmt.Fprintf(w, "   - Location: %.4f,%.4f (%s)\n", rec.Latitude, rec.Longitude, rec.Geohash)
	}
	return nil
}

func writeList(w io.Writer, format string, names []string) error {
	if format != formatText {
		return encode(w, format, names)
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

func encode(w io.Writer, format string, v interface{}) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return checkOutputFormat(format)
}
