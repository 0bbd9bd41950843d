package offers

import (
	"miles_watch/internal/domain/entity"
)

// Rank computes the best offer under each criterion over the same collection.
// Ties break towards the first-encountered offer; the returned pointers
// address elements of the given slice. An empty collection yields an empty
// ranking.
func Rank(offers []entity.Offer) entity.Ranking {
	var ranking entity.Ranking

	for i := range offers {
		offer := &offers[i]

		if ranking.BestMiles == nil || offer.Miles < ranking.BestMiles.Miles {
			ranking.BestMiles = offer
		}

		if ranking.BestDuration == nil || offer.DurationHours < ranking.BestDuration.DurationHours {
			ranking.BestDuration = offer
		}

		if offer.CashTaxes != nil &&
			(ranking.BestCashTax == nil || *offer.CashTaxes < *ranking.BestCashTax.CashTaxes) {
			ranking.BestCashTax = offer
		}

		if ranking.BestCostBenefit == nil || offer.CostBenefit() < ranking.BestCostBenefit.CostBenefit() {
			ranking.BestCostBenefit = offer
		}
	}

	return ranking
}
