package entity

// Ranking holds the best offer under each independent criterion. A field is
// nil when no eligible offer exists for it (BestCashTax requires at least one
// offer carrying a cash tax value). One offer may win several categories; the
// pointers address elements of the ranked slice.
type Ranking struct {
	BestMiles       *Offer
	BestDuration    *Offer
	BestCashTax     *Offer
	BestCostBenefit *Offer
}

// Category labels used in reports.
const (
	CategoryMiles       = "fewest miles"
	CategoryDuration    = "shortest duration"
	CategoryCashTax     = "lowest taxes"
	CategoryCostBenefit = "best miles/hour"
)

// Labels returns the category labels won by the offer at the given address.
func (r Ranking) Labels(o *Offer) []string {
	var labels []string

	if r.BestMiles == o {
		labels = append(labels, CategoryMiles)
	}

	if r.BestDuration == o {
		labels = append(labels, CategoryDuration)
	}

	if r.BestCashTax == o {
		labels = append(labels, CategoryCashTax)
	}

	if r.BestCostBenefit == o {
		labels = append(labels, CategoryCostBenefit)
	}

	return labels
}
