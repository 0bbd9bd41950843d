// Package obs holds the process-wide Prometheus instruments. Everything is
// registered on the default registry so the metrics server only needs
// promhttp.Handler.
package obs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ScanCyclesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "miles_watch_scan_cycles_total",
		Help: "Completed scan cycles, including cycles that found nothing.",
	})

	CellsScannedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "miles_watch_cells_scanned_total",
		Help: "Scanned destination/date cells by outcome.",
	}, []string{"outcome"})

	OffersFoundTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "miles_watch_offers_found_total",
		Help: "Offers extracted from upstream payloads.",
	})

	ReportsSentTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "miles_watch_reports_sent_total",
		Help: "Delivered cycle reports by outcome.",
	}, []string{"outcome"})

	CycleDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "miles_watch_cycle_duration_seconds",
		Help:    "Wall time of a full scan cycle.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	})

	LastCycleOffers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "miles_watch_last_cycle_offers",
		Help: "Offers found by the most recent cycle.",
	})
)

const (
	OutcomeOK     = "ok"
	OutcomeFailed = "failed"
)
