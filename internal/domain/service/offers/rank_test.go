package offers_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"miles_watch/internal/domain/entity"
	"miles_watch/internal/domain/service/offers"
	"miles_watch/pkg/tests"
)

func taxes(v float64) *float64 {
	return &v
}

func testOffer(miles int, durationHours float64) entity.Offer {
	return entity.Offer{
		Carrier:       "ANA",
		Origin:        "GIG",
		Destination:   "NRT",
		Date:          time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC),
		Miles:         miles,
		DurationHours: durationHours,
		Segments:      1,
	}
}

func TestRank(t *testing.T) {
	rq := require.New(t)

	// 50000/10h -> ratio 5000; 60000/5h -> ratio 12000.
	set := []entity.Offer{
		testOffer(50000, 10),
		testOffer(60000, 5),
	}

	ranking := offers.Rank(set)

	rq.Same(&set[0], ranking.BestMiles)
	rq.Same(&set[1], ranking.BestDuration)
	rq.Same(&set[0], ranking.BestCostBenefit)
	rq.Nil(ranking.BestCashTax)
}

func TestRankEmpty(t *testing.T) {
	rq := require.New(t)

	ranking := offers.Rank(nil)

	rq.Nil(ranking.BestMiles)
	rq.Nil(ranking.BestDuration)
	rq.Nil(ranking.BestCashTax)
	rq.Nil(ranking.BestCostBenefit)
}

func TestRankStableTieBreak(t *testing.T) {
	rq := require.New(t)

	set := []entity.Offer{
		testOffer(50000, 10),
		testOffer(50000, 10),
		testOffer(50000, 10),
	}

	ranking := offers.Rank(set)

	rq.Same(&set[0], ranking.BestMiles)
	rq.Same(&set[0], ranking.BestDuration)
	rq.Same(&set[0], ranking.BestCostBenefit)
}

func TestRankCashTaxOnlyAmongCarriers(t *testing.T) {
	rq := require.New(t)

	first := testOffer(50000, 10)
	second := testOffer(60000, 5)
	second.CashTaxes = taxes(300)
	third := testOffer(70000, 7)
	third.CashTaxes = taxes(120)

	set := []entity.Offer{first, second, third}

	ranking := offers.Rank(set)

	rq.Same(&set[2], ranking.BestCashTax)
}

func TestRankBounds(t *testing.T) {
	rq := require.New(t)

	random := tests.NewRandomizer()

	set := make([]entity.Offer, 0, 50)
	for range cap(set) {
		offer := testOffer(10000+random.IntN(200000), 1+random.Float64()*30)
		if random.Bool() {
			offer.CashTaxes = taxes(random.Float64() * 500)
		}

		set = append(set, offer)
	}

	ranking := offers.Rank(set)

	for i := range set {
		rq.LessOrEqual(ranking.BestMiles.Miles, set[i].Miles)
		rq.LessOrEqual(ranking.BestDuration.DurationHours, set[i].DurationHours)
		rq.LessOrEqual(ranking.BestCostBenefit.CostBenefit(), set[i].CostBenefit())

		if set[i].CashTaxes != nil {
			rq.NotNil(ranking.BestCashTax)
			rq.LessOrEqual(*ranking.BestCashTax.CashTaxes, *set[i].CashTaxes)
		}
	}
}

func TestRankIdempotent(t *testing.T) {
	rq := require.New(t)

	set := []entity.Offer{
		testOffer(90000, 22),
		testOffer(50000, 10),
		testOffer(60000, 5),
	}

	first := offers.Rank(set)
	second := offers.Rank(set)

	rq.Equal(first, second)
}

func TestCostBenefitFloor(t *testing.T) {
	rq := require.New(t)

	// Near-zero durations are floored at 0.1h to keep the ratio finite.
	offer := testOffer(50000, 0)
	rq.InDelta(500000, offer.CostBenefit(), 1e-9)
}
