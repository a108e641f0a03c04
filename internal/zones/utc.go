package zones

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MaxUTCOffset bounds the synthetic UTC±N identifiers
const MaxUTCOffset = 11

// ParseUTCOffset parses a synthetic identifier such as "UTC+5" or "UTC-11".
// The sign is mandatory and N must be within ±MaxUTCOffset.
func ParseUTCOffset(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, "UTC")
	if !ok || len(rest) < 2 || len(rest) > 3 {
		return 0, false
	}
	if rest[0] != '+' && rest[0] != '-' {
		return 0, false
	}
	for _, c := range rest[1:] {
		if c < '0' || c > '9' {
			return 0, false
		}
	}

	hours, err := strconv.Atoi(rest)
	if err != nil || hours < -MaxUTCOffset || hours > MaxUTCOffset {
		return 0, false
	}
	return hours, true
}

// UTCOffsetName formats the synthetic identifier for hours
func UTCOffsetName(hours int) string {
	return fmt.Sprintf("UTC%+d", hours)
}

// UTCOffsetNames returns UTC-11 through UTC+11, the default zone list
func UTCOffsetNames() []string {
	names := make([]string, 0, 2*MaxUTCOffset+1)
	for h := -MaxUTCOffset; h <= MaxUTCOffset; h++ {
		names = append(names, UTCOffsetName(h))
	}
	return names
}

func fixedLocation(id string, hours int) *time.Location {
	return time.FixedZone(id, hours*3600)
}
