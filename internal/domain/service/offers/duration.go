package offers

import (
	"regexp"
	"strconv"

	"miles_watch/internal/domain/entity"
)

// Accepted duration encodings, tried in priority order. First match wins.
var (
	isoDurationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?`)
	freeTextPattern    = regexp.MustCompile(`(?i)(\d+)\s*h(?:\s*(\d+)\s*m)?`)
	clockPattern       = regexp.MustCompile(`^(\d{1,2}):(\d{2})`)
)

// ParseDurationHours converts free-form duration text to fractional hours.
// Unparseable input degrades to entity.UnknownDurationHours, never to an
// error, so such offers lose duration rankings without being excluded.
func ParseDurationHours(raw string) float64 {
	if raw == "" {
		return entity.UnknownDurationHours
	}

	if m := isoDurationPattern.FindStringSubmatch(raw); m != nil && (m[1] != "" || m[2] != "") {
		return float64(atoi(m[1])) + float64(atoi(m[2]))/60.0
	}

	if m := freeTextPattern.FindStringSubmatch(raw); m != nil {
		return float64(atoi(m[1])) + float64(atoi(m[2]))/60.0
	}

	if m := clockPattern.FindStringSubmatch(raw); m != nil {
		return float64(atoi(m[1])) + float64(atoi(m[2]))/60.0
	}

	return entity.UnknownDurationHours
}

func atoi(s string) int {
	if s == "" {
		return 0
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}

	return n
}
