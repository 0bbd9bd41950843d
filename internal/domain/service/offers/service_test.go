package offers_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"miles_watch/internal/domain/entity"
	"miles_watch/internal/domain/service/offers"
)

func newTestService() *offers.Service {
	return offers.NewService(
		offers.Normalizer{MilesCeiling: 170000},
		offers.NewFormatter(),
	)
}

func TestServiceCompose(t *testing.T) {
	rq := require.New(t)

	svc := newTestService()

	report := svc.Compose(testReport([]entity.Offer{
		testOffer(50000, 10),
		testOffer(60000, 5),
	}))

	rq.NotNil(report.Ranking.BestMiles)
	rq.Equal(50000, report.Ranking.BestMiles.Miles)
	rq.NotEmpty(report.Text)
}

func TestServiceComposeEmpty(t *testing.T) {
	rq := require.New(t)

	svc := newTestService()

	report := svc.Compose(testReport(nil))

	rq.Nil(report.Ranking.BestMiles)
	rq.Contains(report.Text, "No offers found")
}

func TestServiceFreshTagging(t *testing.T) {
	rq := require.New(t)

	svc := newTestService()
	offer := testOffer(50000, 10)

	first := svc.Compose(testReport([]entity.Offer{offer}))
	rq.True(first.FreshKeys[offer.Key()])

	second := svc.Compose(testReport([]entity.Offer{offer}))
	rq.False(second.FreshKeys[offer.Key()])
}
