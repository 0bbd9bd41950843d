package worker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"miles_watch/internal/config"
	"miles_watch/internal/domain/entity"
	"miles_watch/internal/domain/service/offers"
	"miles_watch/internal/worker"
)

type searcherFunc func(ctx context.Context, cell offers.Cell) (offers.RawPayload, error)

func (f searcherFunc) Search(ctx context.Context, cell offers.Cell) (offers.RawPayload, error) {
	return f(ctx, cell)
}

func testSearchConfig() config.Search {
	return config.Search{
		Origin:       "GIG",
		Destinations: []string{"NRT", "HND"},
		DaysRange:    2,
		MilesCeiling: 170000,
	}
}

func newTestScanner(search searcherFunc, reports chan entity.Report) *worker.FareScanner {
	svc := offers.NewService(
		offers.Normalizer{MilesCeiling: 170000},
		offers.NewFormatter(),
	)

	return worker.NewFareScanner(testSearchConfig(), svc, search, reports)
}

func TestFareScannerScanOnce(t *testing.T) {
	rq := require.New(t)

	reports := make(chan entity.Report, 1)
	scanner := newTestScanner(func(_ context.Context, _ offers.Cell) (offers.RawPayload, error) {
		return offers.RawPayload{"flights": []any{
			map[string]any{"miles": float64(50000), "duration": "PT9H30M"},
		}}, nil
	}, reports)

	scanner.ScanOnce(context.Background())

	report := <-reports
	rq.Equal(4, report.CellsTotal)
	rq.Zero(report.CellsFailed)
	rq.Len(report.Offers, 4)
	rq.NotNil(report.Ranking.BestMiles)
	rq.Equal(50000, report.Ranking.BestMiles.Miles)
	rq.NotEmpty(report.Text)

	last := scanner.LastReport()
	rq.NotNil(last)
	rq.Equal(report.CycleID, last.CycleID)
	rq.False(scanner.Scanning())
}

func TestFareScannerCellFailureContinues(t *testing.T) {
	rq := require.New(t)

	reports := make(chan entity.Report, 1)
	scanner := newTestScanner(func(_ context.Context, cell offers.Cell) (offers.RawPayload, error) {
		if cell.Destination == "HND" {
			return nil, errors.New("upstream down")
		}

		return offers.RawPayload{"flights": []any{
			map[string]any{"miles": float64(60000)},
		}}, nil
	}, reports)

	scanner.ScanOnce(context.Background())

	report := <-reports
	rq.Equal(4, report.CellsTotal)
	rq.Equal(2, report.CellsFailed)
	rq.Len(report.Offers, 2)

	for _, offer := range report.Offers {
		rq.Equal("NRT", offer.Destination)
	}
}

func TestFareScannerEmptyCycleStillReports(t *testing.T) {
	rq := require.New(t)

	reports := make(chan entity.Report, 1)
	scanner := newTestScanner(func(_ context.Context, _ offers.Cell) (offers.RawPayload, error) {
		return offers.RawPayload{"flights": []any{}}, nil
	}, reports)

	scanner.ScanOnce(context.Background())

	report := <-reports
	rq.Empty(report.Offers)
	rq.Contains(report.Text, "No offers found")
}

func TestFareScannerPanicContained(t *testing.T) {
	rq := require.New(t)

	reports := make(chan entity.Report, 1)
	scanner := newTestScanner(func(_ context.Context, _ offers.Cell) (offers.RawPayload, error) {
		panic("malformed payload")
	}, reports)

	rq.NotPanics(func() {
		scanner.ScanOnce(context.Background())
	})
	rq.Empty(reports)
	rq.False(scanner.Scanning())
}

func TestFareScannerTrigger(t *testing.T) {
	rq := require.New(t)

	scanner := newTestScanner(nil, make(chan entity.Report, 1))

	rq.True(scanner.TriggerScan())
	rq.False(scanner.TriggerScan())
}

func TestFareScannerDestinations(t *testing.T) {
	rq := require.New(t)

	scanner := newTestScanner(nil, make(chan entity.Report, 1))

	rq.Equal([]string{"NRT", "HND"}, scanner.Destinations())

	rq.True(scanner.AddDestination("CDG"))
	rq.False(scanner.AddDestination("CDG"))
	rq.Equal([]string{"NRT", "HND", "CDG"}, scanner.Destinations())

	rq.True(scanner.RemoveDestination("HND"))
	rq.False(scanner.RemoveDestination("HND"))
	rq.Equal([]string{"NRT", "CDG"}, scanner.Destinations())
}
