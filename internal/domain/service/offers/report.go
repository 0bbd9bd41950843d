package offers

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"miles_watch/internal/domain/entity"
	"miles_watch/pkg/lox"
)

const defaultMaxOffersInReport = 5

// Formatter renders a scan cycle into Telegram HTML. The miles ceiling is a
// highlight threshold here, never a filter: offers above it are annotated and
// the best-overall line ignores it entirely.
type Formatter struct {
	MaxOffers int
}

func NewFormatter() Formatter {
	return Formatter{
		MaxOffers: defaultMaxOffersInReport,
	}
}

func (f Formatter) Format(report *entity.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🔎 <b>Miles scan</b> %s → %s\n",
		report.Origin,
		strings.Join(report.Destinations, ", "),
	)

	if len(report.Offers) == 0 {
		fmt.Fprintf(&b, "⚠️ No offers found up to %s miles.", formatMiles(report.MilesCeiling))
		return b.String()
	}

	fmt.Fprintf(&b, "Ceiling %s miles | %d offers | %d/%d cells failed\n",
		formatMiles(report.MilesCeiling),
		len(report.Offers),
		report.CellsFailed,
		report.CellsTotal,
	)

	lines := lox.Map(f.pick(report), func(offer *entity.Offer) string {
		return f.offerLine(offer, report)
	})

	for _, line := range lines {
		b.WriteString("\n")
		b.WriteString(line)
		b.WriteString("\n")
	}

	if best := report.Ranking.BestMiles; best != nil {
		fmt.Fprintf(&b, "\n🏆 <b>Best overall (ceiling-independent):</b> %s miles %s→%s on %s",
			formatMiles(best.Miles),
			best.Origin,
			best.Destination,
			best.Date.Format(dateLayout),
		)
	}

	return b.String()
}

// pick caps the listed offers to MaxOffers, keeping every category winner and
// filling the rest cheapest-first.
func (f Formatter) pick(report *entity.Report) []*entity.Offer {
	winners := lo.Uniq(lo.Filter(
		[]*entity.Offer{
			report.Ranking.BestMiles,
			report.Ranking.BestDuration,
			report.Ranking.BestCashTax,
			report.Ranking.BestCostBenefit,
		},
		func(offer *entity.Offer, _ int) bool { return offer != nil },
	))

	if len(winners) >= f.MaxOffers {
		return winners[:f.MaxOffers]
	}

	isWinner := lo.SliceToMap(winners, func(offer *entity.Offer) (*entity.Offer, bool) {
		return offer, true
	})

	var rest []*entity.Offer

	for i := range report.Offers {
		if offer := &report.Offers[i]; !isWinner[offer] {
			rest = append(rest, offer)
		}
	}

	sort.SliceStable(rest, func(i, j int) bool {
		return rest[i].Miles < rest[j].Miles
	})

	picked := append(winners, rest...)
	if len(picked) > f.MaxOffers {
		picked = picked[:f.MaxOffers]
	}

	return picked
}

func (f Formatter) offerLine(offer *entity.Offer, report *entity.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "✈️ <b>%s miles</b>", formatMiles(offer.Miles))

	if offer.CashTaxes != nil {
		fmt.Fprintf(&b, " | %.2f taxes", *offer.CashTaxes)
	}

	if offer.DurationHours < entity.UnknownDurationHours {
		fmt.Fprintf(&b, " | %.1fh", offer.DurationHours)
	}

	if offer.Segments != entity.UnknownSegments {
		fmt.Fprintf(&b, " | %d seg", offer.Segments)
	}

	fmt.Fprintf(&b, " | %s %s→%s on %s",
		offer.Carrier,
		offer.Origin,
		offer.Destination,
		offer.Date.Format(dateLayout),
	)

	var tags []string

	if labels := report.Ranking.Labels(offer); len(labels) > 0 {
		tags = append(tags, "🏷 "+strings.Join(labels, ", "))
	}

	if report.FreshKeys[offer.Key()] {
		tags = append(tags, "✨ new")
	}

	if offer.OverCeiling(report.MilesCeiling) {
		tags = append(tags, "⬆️ over ceiling")
	}

	if len(tags) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(tags, " "))
	}

	return b.String()
}

func formatMiles(n int) string {
	s := strconv.Itoa(n)

	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}

	return s
}
