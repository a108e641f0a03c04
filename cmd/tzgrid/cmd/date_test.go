package cmd

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	local := time.FixedZone("TEST", 2*3600)

	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{"2023-06-15T12:00:00Z", time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC), false},
		{"2023-06-15T12:00:00+05:00", time.Date(2023, 6, 15, 7, 0, 0, 0, time.UTC), false},
		{"2023-06-15T14:00", time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC), false},
		{"2023-06-15 14:30:00", time.Date(2023, 6, 15, 12, 30, 0, 0, time.UTC), false},
		{"2023-06-15", time.Date(2023, 6, 14, 22, 0, 0, 0, time.UTC), false},
		{" 2023-06-15T14:00 ", time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC), false},
		{"Thu, 15 Jun 2023 12:00:00 +0000", time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC), false},
		{"tomorrow", time.Time{}, true},
		{"2023-13-01", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDate(tt.in, local)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("parseDate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestReference_DefaultsToCurrentHour(t *testing.T) {
	now := func() time.Time {
		return time.Date(2023, 6, 15, 14, 59, 59, 0, time.FixedZone("X", 3600))
	}

	got, err := reference("", now)
	if err != nil {
		t.Fatalf("reference() error = %v", err)
	}
	if want := time.Date(2023, 6, 15, 13, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("reference() = %v, want %v", got, want)
	}
}
