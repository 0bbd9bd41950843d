package entity

import (
	"fmt"
	"math"
	"time"
)

const (
	// UnknownCarrier marks offers whose provider record had no carrier info.
	UnknownCarrier = "?"

	// UnknownSegments marks offers whose segment list could not be resolved.
	UnknownSegments = -1

	// UnknownDurationHours is large enough to lose every shortest-duration
	// comparison without excluding the offer from the set.
	UnknownDurationHours = 9999.0
)

// Offer is one normalized fare found for a specific origin/destination/date.
// Constructed once per scan cycle and never mutated afterwards.
type Offer struct {
	Carrier       string
	Origin        string
	Destination   string
	Date          time.Time
	Miles         int
	CashTaxes     *float64
	DurationHours float64
	Segments      int
}

// CostBenefit is miles per flight hour, lower is better. The 0.1 floor keeps
// near-zero durations from blowing up the ratio; a deliberate approximation,
// not a cost model.
func (o Offer) CostBenefit() float64 {
	return float64(o.Miles) / math.Max(o.DurationHours, 0.1)
}

func (o Offer) OverCeiling(ceiling int) bool {
	return o.Miles > ceiling
}

// Key identifies an offer across cycles for fresh-offer tagging.
func (o Offer) Key() string {
	return fmt.Sprintf("%s|%s|%s|%s|%d",
		o.Carrier,
		o.Origin,
		o.Destination,
		o.Date.Format("2006-01-02"),
		o.Miles,
	)
}
