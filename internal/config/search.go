package config

import (
	"time"
)

// Search describes the destination×date grid scanned every cycle.
type Search struct {
	Origin       string   `env:"ORIGIN" envDefault:"GIG" validate:"len=3,alpha,uppercase"`
	Destinations []string `env:"DESTINATIONS" envSeparator:"," envDefault:"NRT,HND" validate:"min=1,dive,len=3,alpha,uppercase"`

	// StartDate is the first searched date (YYYY-MM-DD). Empty means tomorrow.
	StartDate string `env:"START_DATE" validate:"omitempty,datetime=2006-01-02"`
	DaysRange int    `env:"DAYS_RANGE" envDefault:"90" validate:"gt=0,lte=366"`

	ScanInterval time.Duration `env:"SCAN_INTERVAL" envDefault:"3h"`
	CellDelay    time.Duration `env:"CELL_DELAY" envDefault:"300ms"`

	MilesCeiling int `env:"MILES_CEILING" envDefault:"170000" validate:"gt=0"`

	// CeilingHardFilter drops offers above the ceiling instead of only
	// annotating them in reports.
	CeilingHardFilter bool `env:"CEILING_HARD_FILTER" envDefault:"false"`
}

func (s Search) Start() time.Time {
	if s.StartDate == "" {
		return time.Now().AddDate(0, 0, 1).Truncate(24 * time.Hour)
	}

	start, err := time.Parse("2006-01-02", s.StartDate)
	if err != nil {
		// Validated on load, unreachable with a loaded config.
		return time.Now().AddDate(0, 0, 1).Truncate(24 * time.Hour)
	}

	return start
}
