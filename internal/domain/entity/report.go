package entity

import "time"

// Report is the durable output of one scan cycle.
type Report struct {
	CycleID      string
	Origin       string
	Destinations []string
	MilesCeiling int

	StartedAt  time.Time
	FinishedAt time.Time

	CellsTotal  int
	CellsFailed int

	Offers  []Offer
	Ranking Ranking

	// FreshKeys marks offer keys not seen in recent cycles.
	FreshKeys map[string]bool

	// Text is the rendered notification message.
	Text string
}
