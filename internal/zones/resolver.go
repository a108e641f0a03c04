package zones

import (
	"strings"

	"github.com/dpb1/tzgrid/internal/geo"
	"github.com/dpb1/tzgrid/pkg/core/logging"
	"github.com/dpb1/tzgrid/pkg/core/tzerror"
)

// Source tells which resolution stage produced a candidate
type Source string

const (
	SourceExact    Source = "exact"
	SourceZoneName Source = "zone"
	SourceGeo      Source = "geo"
)

// Candidate is one possible resolution of a token
type Candidate struct {
	Name   string
	Zone   string
	Source Source
	// Field is the geonames column that matched, for SourceGeo
	Field geo.Field
	// Record is nil unless Source is SourceGeo
	Record *geo.Record
}

// LabeledZone is a zone as requested by the user
type LabeledZone struct {
	Label string
	Zone  string
}

// GeoSearcher finds city records by substring
type GeoSearcher interface {
	Search(field geo.Field, query string) ([]geo.Record, error)
}

// Resolver maps zone tokens to zone identifiers
type Resolver struct {
	db     Database
	geo    GeoSearcher
	logger *logging.Logger
}

// NewResolver creates a resolver. places may be nil, which disables
// place-name lookup.
func NewResolver(db Database, places GeoSearcher, logger *logging.Logger) *Resolver {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Resolver{db: db, geo: places, logger: logger}
}

// Search runs the resolution stages for token and returns the candidates
// of the first stage with exactly one match. When no stage is decisive it
// returns the candidates of the last stage that matched anything, which
// may be empty.
func (r *Resolver) Search(token string) ([]Candidate, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, tzerror.New("empty zone token").WithCode(tzerror.CodeInvalidInput)
	}

	if r.db.Known(token) {
		r.logger.Debug("exact zone match", "token", token)
		return []Candidate{{Name: token, Zone: token, Source: SourceExact}}, nil
	}

	var last []Candidate

	var byName []Candidate
	for _, id := range r.db.All() {
		if strings.EqualFold(id, token) {
			byName = append(byName, Candidate{Name: id, Zone: id, Source: SourceZoneName})
		}
	}
	r.logger.Debug("zone name search", "token", token, "matches", len(byName))
	if len(byName) == 1 {
		return byName, nil
	}
	if len(byName) > 0 {
		last = byName
	}

	if r.geo == nil {
		return last, nil
	}

	for _, field := range geo.SearchOrder {
		records, err := r.geo.Search(field, token)
		if err != nil {
			return nil, err
		}
		r.logger.Debug("geolocation search", "token", token, "field", field.String(), "matches", len(records))

		if len(records) == 0 {
			continue
		}
		found := make([]Candidate, len(records))
		for i := range records {
			found[i] = Candidate{
				Name:   records[i].Name,
				Zone:   records[i].Timezone,
				Source: SourceGeo,
				Field:  field,
				Record: &records[i],
			}
		}
		if len(found) == 1 {
			return found, nil
		}
		last = found
	}

	return last, nil
}

// Resolve returns the zone identifier for token or an
// *UnresolvedZoneError when no single candidate exists.
func (r *Resolver) Resolve(token string) (string, error) {
	candidates, err := r.Search(token)
	if err != nil {
		return "", err
	}
	if len(candidates) != 1 {
		return "", &UnresolvedZoneError{Token: strings.TrimSpace(token), Candidates: candidates}
	}
	if zone := candidates[0].Zone; zone != token {
		r.logger.Debug("token resolved", "token", token, "zone", zone, "source", string(candidates[0].Source))
	}
	return candidates[0].Zone, nil
}

// ResolveAll resolves every token. It stops at the first failure; no
// partial list is returned. A token of the form "Label=place" resolves
// place and labels the row with Label.
func (r *Resolver) ResolveAll(tokens []string) ([]LabeledZone, error) {
	resolved := make([]LabeledZone, 0, len(tokens))
	for _, token := range tokens {
		label, query := SplitLabel(token)
		zone, err := r.Resolve(query)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, LabeledZone{Label: label, Zone: zone})
	}
	return resolved, nil
}

// SplitLabel splits "Label=token". Without a usable label the label is
// the token itself.
func SplitLabel(token string) (label, query string) {
	token = strings.TrimSpace(token)
	if l, q, ok := strings.Cut(token, "="); ok {
		l, q = strings.TrimSpace(l), strings.TrimSpace(q)
		if l != "" && q != "" {
			return l, q
		}
	}
	return token, token
}
