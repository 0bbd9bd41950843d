package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"miles_watch/internal/config"
)

func TestLoad(t *testing.T) {
	rq := require.New(t)

	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("BOT_CHAT_ID", "1217838677")

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal("GIG", cfg.Search.Origin)
	rq.Equal([]string{"NRT", "HND"}, cfg.Search.Destinations)
	rq.Equal(90, cfg.Search.DaysRange)
	rq.Equal(3*time.Hour, cfg.Search.ScanInterval)
	rq.Equal(300*time.Millisecond, cfg.Search.CellDelay)
	rq.Equal(170000, cfg.Search.MilesCeiling)
	rq.False(cfg.Search.CeilingHardFilter)
	rq.Equal(int64(1217838677), cfg.Bot.ChatID)
	rq.Equal(30*time.Second, cfg.Smiles.Timeout)
}

func TestLoadOverrides(t *testing.T) {
	rq := require.New(t)

	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("BOT_CHAT_ID", "42")
	t.Setenv("ORIGIN", "GRU")
	t.Setenv("DESTINATIONS", "NRT,HND,KIX")
	t.Setenv("START_DATE", "2025-09-10")
	t.Setenv("CEILING_HARD_FILTER", "true")

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal("GRU", cfg.Search.Origin)
	rq.Equal([]string{"NRT", "HND", "KIX"}, cfg.Search.Destinations)
	rq.True(cfg.Search.CeilingHardFilter)
	rq.Equal(time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC), cfg.Search.Start())
}

func TestLoadInvalid(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "Lowercase origin", key: "ORIGIN", value: "gig"},
		{name: "Origin too long", key: "ORIGIN", value: "GIGA"},
		{name: "Bad destination", key: "DESTINATIONS", value: "NRT,1X"},
		{name: "Bad start date", key: "START_DATE", value: "10/09/2025"},
		{name: "Zero days range", key: "DAYS_RANGE", value: "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			t.Setenv("BOT_TOKEN", "123:abc")
			t.Setenv("BOT_CHAT_ID", "42")
			t.Setenv(tc.key, tc.value)

			_, err := config.Load()
			rq.Error(err)
		})
	}
}

func TestSearchStartDefaultsToTomorrow(t *testing.T) {
	rq := require.New(t)

	search := config.Search{}
	start := search.Start()

	rq.True(start.After(time.Now().Add(-24 * time.Hour)))
}

func TestBotAdminFallsBackToChatID(t *testing.T) {
	rq := require.New(t)

	rq.Equal(int64(42), config.Bot{ChatID: 42}.Admin())
	rq.Equal(int64(7), config.Bot{ChatID: 42, AdminID: 7}.Admin())
}
