package server

import (
	"time"

	"miles_watch/internal/domain/entity"
	"miles_watch/pkg/rest"
)

const dateLayout = "2006-01-02"

func newRESTCycleReport(report *entity.Report) rest.CycleReport {
	offers := make([]rest.Offer, 0, len(report.Offers))

	for i := range report.Offers {
		offers = append(offers, newRESTOffer(&report.Offers[i], report))
	}

	return rest.CycleReport{
		CycleID:     report.CycleID,
		StartedAt:   report.StartedAt.Format(time.RFC3339),
		FinishedAt:  report.FinishedAt.Format(time.RFC3339),
		CellsTotal:  report.CellsTotal,
		CellsFailed: report.CellsFailed,
		Offers:      offers,
		Text:        report.Text,
	}
}

func newRESTOffer(offer *entity.Offer, report *entity.Report) rest.Offer {
	return rest.Offer{
		Carrier:       offer.Carrier,
		Origin:        offer.Origin,
		Destination:   offer.Destination,
		Date:          offer.Date.Format(dateLayout),
		Miles:         offer.Miles,
		CashTaxes:     offer.CashTaxes,
		DurationHours: offer.DurationHours,
		Segments:      offer.Segments,
		Categories:    report.Ranking.Labels(offer),
	}
}
