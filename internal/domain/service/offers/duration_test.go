package offers_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"miles_watch/internal/domain/entity"
	"miles_watch/internal/domain/service/offers"
)

func TestParseDurationHours(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name     string
		raw      string
		expected float64
	}{
		{name: "ISO hours and minutes", raw: "PT9H30M", expected: 9.5},
		{name: "ISO hours only", raw: "PT14H", expected: 14.0},
		{name: "ISO minutes only", raw: "PT45M", expected: 0.75},
		{name: "Free text hours and minutes", raw: "9h 30m", expected: 9.5},
		{name: "Free text hours only", raw: "14h", expected: 14.0},
		{name: "Free text embedded", raw: "total 9 h 30 m approx", expected: 9.5},
		{name: "Free text uppercase", raw: "9H30M", expected: 9.5},
		{name: "Clock form", raw: "09:30", expected: 9.5},
		{name: "Clock form single digit", raw: "9:05", expected: 9.0 + 5.0/60.0},
		{name: "Empty", raw: "", expected: entity.UnknownDurationHours},
		{name: "Garbage", raw: "soon", expected: entity.UnknownDurationHours},
		{name: "Bare prefix", raw: "PT", expected: entity.UnknownDurationHours},
		{name: "Punctuation only", raw: "--:--", expected: entity.UnknownDurationHours},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			rq.InDelta(tc.expected, offers.ParseDurationHours(tc.raw), 1e-9)
		})
	}
}

func TestParseDurationHoursPriority(t *testing.T) {
	rq := require.New(t)

	// ISO wins over the free-text pattern when both could match.
	rq.InDelta(9.5, offers.ParseDurationHours("PT9H30M"), 1e-9)

	// Sentinel always loses a shortest-duration comparison.
	rq.Greater(entity.UnknownDurationHours, 1000.0)
}
