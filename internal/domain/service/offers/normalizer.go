package offers

import (
	"time"

	"miles_watch/internal/domain/entity"
)

// Field fallback tables. The resolution order is a first-class artifact: for
// each canonical field the first present, non-null path wins.
var (
	milesPaths    = [][]string{{"miles"}, {"price", "miles"}}
	taxesPaths    = [][]string{{"miles", "taxes"}, {"taxes"}}
	durationPaths = [][]string{{"duration"}, {"totalDuration"}}
	carrierPaths  = [][]string{{"carrier", "name"}, {"airline"}}
	datePaths     = [][]string{{"date"}, {"departureDate"}}
)

const dateLayout = "2006-01-02"

// Cell is one (destination, date) pair of the search grid.
type Cell struct {
	Origin      string
	Destination string
	Date        time.Time
}

// Normalizer turns raw provider records into canonical offers.
type Normalizer struct {
	MilesCeiling int

	// CeilingHardFilter drops offers above the ceiling at normalization
	// time. Off by default: ranking considers every offer and the ceiling
	// stays a report highlight.
	CeilingHardFilter bool
}

// Offer produces at most one canonical offer from a raw record. A record
// without a resolvable miles value yields nothing; every other field degrades
// to a default instead of blocking emission.
func (n Normalizer) Offer(record RawRecord, cell Cell) (entity.Offer, bool) {
	rawMiles, ok := firstValue(record, milesPaths)
	if !ok {
		return entity.Offer{}, false
	}

	miles, ok := coerceInt(rawMiles)
	if !ok {
		return entity.Offer{}, false
	}

	if n.CeilingHardFilter && miles > n.MilesCeiling {
		return entity.Offer{}, false
	}

	offer := entity.Offer{
		Carrier:       entity.UnknownCarrier,
		Origin:        cell.Origin,
		Destination:   cell.Destination,
		Date:          cell.Date,
		Miles:         miles,
		DurationHours: entity.UnknownDurationHours,
		Segments:      entity.UnknownSegments,
	}

	if v, ok := firstValue(record, carrierPaths); ok {
		if carrier, ok := v.(string); ok && carrier != "" {
			offer.Carrier = carrier
		}
	}

	if v, ok := firstValue(record, taxesPaths); ok {
		if taxes, ok := coerceFloat(v); ok {
			offer.CashTaxes = &taxes
		}
	}

	if v, ok := firstValue(record, durationPaths); ok {
		if duration, ok := v.(string); ok {
			offer.DurationHours = ParseDurationHours(duration)
		}
	}

	// The reported departure date, when present and parseable, takes
	// precedence over the searched date.
	if v, ok := firstValue(record, datePaths); ok {
		if raw, ok := v.(string); ok {
			if date, err := time.Parse(dateLayout, raw); err == nil {
				offer.Date = date
			}
		}
	}

	if v, ok := record["destination"].(string); ok && v != "" {
		offer.Destination = v
	}

	if segments, ok := record["segments"].([]any); ok {
		offer.Segments = len(segments)
	}

	return offer, true
}

// Extract locates the record list inside a payload and normalizes each entry
// independently. An unrecognized or empty payload is a normal outcome, not an
// error; malformed records are skipped, never abort the batch.
func (n Normalizer) Extract(payload RawPayload, cell Cell) []entity.Offer {
	records, ok := findRecordList(payload)
	if !ok {
		return nil
	}

	var result []entity.Offer

	for _, item := range records {
		record, ok := item.(map[string]any)
		if !ok {
			continue
		}

		if offer, ok := n.Offer(record, cell); ok {
			result = append(result, offer)
		}
	}

	return result
}
