package geo

import (
	"reflect"
	"strings"
	"testing"
)

func row(cols ...string) string {
	return strings.Join(cols, "\t")
}

var tokyoRow = row("1850147", "Tokyo", "Tokyo", "Tokio,東京", "35.6895", "139.69171",
	"P", "PPLC", "JP", "", "40", "", "", "", "8336599", "", "44", "Asia/Tokyo", "2022-11-25")

func TestParse_Row(t *testing.T) {
	records, stats, err := Parse(strings.NewReader(tokyoRow + "\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if stats.Rows != 1 || stats.Skipped != 0 {
		t.Fatalf("stats = %+v, want 1 row, 0 skipped", stats)
	}

	r := records[0]
	if r.ID != 1850147 {
		t.Errorf("ID = %d, want 1850147", r.ID)
	}
	if r.Name != "Tokyo" || r.ASCIIName != "Tokyo" {
		t.Errorf("names = %q/%q", r.Name, r.ASCIIName)
	}
	if r.Latitude != 35.6895 || r.Longitude != 139.69171 {
		t.Errorf("coords = %v,%v", r.Latitude, r.Longitude)
	}
	if r.Population != 8336599 {
		t.Errorf("Population = %d, want 8336599", r.Population)
	}
	if r.CountryCode != "JP" {
		t.Errorf("CountryCode = %q, want JP", r.CountryCode)
	}
	if r.Timezone != "Asia/Tokyo" || r.ZoneFromCoordinates {
		t.Errorf("Timezone = %q (derived %v), want Asia/Tokyo from the row", r.Timezone, r.ZoneFromCoordinates)
	}
	if !strings.HasPrefix(r.Geohash, "xn7") {
		t.Errorf("Geohash = %q, want prefix xn7", r.Geohash)
	}
	if r.Modified != "2022-11-25" {
		t.Errorf("Modified = %q", r.Modified)
	}
}

func TestParse_SkipsMalformedRows(t *testing.T) {
	input := strings.Join([]string{
		"# comment",
		tokyoRow,
		"too\tfew\tcolumns",
		"",
		row("notanumber", "X", "X", "", "0", "0", "P", "PPL", "XX", "", "", "", "", "", "0", "", "0", "UTC", ""),
		row("1", "", "", "", "0", "0", "P", "PPL", "XX", "", "", "", "", "", "0", "", "0", "UTC", ""),
	}, "\n")

	records, stats, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(records) != 1 {
		t.Errorf("len(records) = %d, want 1", len(records))
	}
	if stats.Skipped != 3 {
		t.Errorf("Skipped = %d, want 3", stats.Skipped)
	}
}

func TestParse_CRLF(t *testing.T) {
	records, _, err := Parse(strings.NewReader(tokyoRow + "\r\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(records) != 1 || records[0].Modified != "2022-11-25" {
		t.Errorf("CRLF row parsed as %+v", records)
	}
}

func TestParse_ZoneFromCoordinates(t *testing.T) {
	miami := row("4164138", "Miami", "Miami", "", "25.77427", "-80.19366",
		"P", "PPLA2", "US", "", "FL", "086", "", "", "442241", "2", "5", "", "2022-11-18")

	records, stats, err := Parse(strings.NewReader(miami))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if stats.Derived != 1 {
		t.Errorf("Derived = %d, want 1", stats.Derived)
	}
	if got := records[0].Timezone; got != "America/New_York" {
		t.Errorf("Timezone = %q, want America/New_York", got)
	}
	if !records[0].ZoneFromCoordinates {
		t.Errorf("ZoneFromCoordinates = false, want true")
	}
}

func TestRecord_AltNames(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{}},
		{"Tokio,東京", []string{"Tokio", "東京"}},
		{"NYC|New York, Big Apple", []string{"NYC", "New York", "Big Apple"}},
		{",,", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Record{AlternateNames: tt.input}.AltNames()
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AltNames() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestField(t *testing.T) {
	r := &Record{Name: "München", ASCIIName: "Muenchen", AlternateNames: "Munich"}

	tests := []struct {
		field Field
		name  string
		value string
	}{
		{FieldName, "name", "München"},
		{FieldASCIIName, "asciiname", "Muenchen"},
		{FieldAlternateNames, "alternatenames", "Munich"},
		{Field(9), "unknown", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.field.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.field.Value(r); got != tt.value {
				t.Errorf("Value() = %q, want %q", got, tt.value)
			}
		})
	}
}
