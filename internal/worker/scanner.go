// Package worker runs the periodic fare scan: the full destination×date grid
// is searched, the offers are ranked and a report is pushed to the
// notification channel.
package worker

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/rs/xid"

	"miles_watch/internal/config"
	"miles_watch/internal/domain/entity"
	"miles_watch/internal/domain/service/offers"
	"miles_watch/internal/obs"
	"miles_watch/pkg/contextx"
	"miles_watch/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals // skip

type Searcher interface {
	Search(ctx context.Context, cell offers.Cell) (offers.RawPayload, error)
}

type Dumper interface {
	Dump(ctx context.Context, report entity.Report) error
}

// FareScanner owns the scan cadence. One cycle scans every destination/date
// cell exactly once; a failed cell is skipped, never retried within the
// cycle, and the cycle always ends with a report.
type FareScanner struct {
	cfg      config.Search
	svc      *offers.Service
	searcher Searcher
	reports  chan<- entity.Report
	dumper   Dumper

	lastRequest time.Time

	mu           sync.Mutex
	destinations []string
	scanning     bool
	lastReport   *entity.Report
	trigger      chan struct{}
}

func NewFareScanner(
	cfg config.Search,
	svc *offers.Service,
	searcher Searcher,
	reports chan<- entity.Report,
) *FareScanner {
	return &FareScanner{
		cfg:          cfg,
		svc:          svc,
		searcher:     searcher,
		reports:      reports,
		destinations: append([]string(nil), cfg.Destinations...),
		trigger:      make(chan struct{}, 1),
	}
}

func (w *FareScanner) WithDumper(dumper Dumper) *FareScanner {
	w.dumper = dumper
	return w
}

// Run scans immediately, then on every interval tick or manual trigger until
// the context ends. A failed or panicking cycle never stops the loop.
func (w *FareScanner) Run(ctx context.Context) error {
	logger(ctx).Info("fare scanner started",
		slog.String(logx.FieldOrigin, w.cfg.Origin),
		slog.Any("destinations", w.Destinations()),
		slog.Duration("interval", w.cfg.ScanInterval),
	)

	for {
		w.ScanOnce(ctx)

		select {
		case <-ctx.Done():
			logger(ctx).Info("fare scanner stopped")
			return ctx.Err()
		case <-time.After(w.cfg.ScanInterval):
		case <-w.trigger:
			logger(ctx).Info("manual scan triggered")
		}
	}
}

// ScanOnce executes a single full cycle. Panics are contained here so a
// malformed upstream payload cannot kill the scheduler.
func (w *FareScanner) ScanOnce(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			logger(ctx).Error("scan cycle panic",
				slog.Any("panic", r),
				slog.String(logx.FieldStack, string(debug.Stack())),
			)
		}
	}()

	w.setScanning(true)
	defer w.setScanning(false)

	report := entity.Report{
		CycleID:      xid.New().String(),
		Origin:       w.cfg.Origin,
		Destinations: w.Destinations(),
		MilesCeiling: w.cfg.MilesCeiling,
		StartedAt:    time.Now(),
	}

	log := logger(ctx).With(slog.String(logx.FieldCycleID, report.CycleID))
	ctx = contextx.WithLogger(ctx, log)

	w.scanGrid(ctx, &report)

	report.FinishedAt = time.Now()
	report = w.svc.Compose(report)

	obs.ScanCyclesTotal.Inc()
	obs.OffersFoundTotal.Add(float64(len(report.Offers)))
	obs.LastCycleOffers.Set(float64(len(report.Offers)))
	obs.CycleDurationSeconds.Observe(report.FinishedAt.Sub(report.StartedAt).Seconds())

	log.Info("scan cycle completed",
		slog.Int(logx.FieldOffers, len(report.Offers)),
		slog.Int("cells-failed", report.CellsFailed),
		slog.Int("cells-total", report.CellsTotal),
	)

	w.setLastReport(report)

	if w.dumper != nil {
		if err := w.dumper.Dump(ctx, report); err != nil {
			log.Error("dump cycle offers", logx.Error(err))
		}
	}

	select {
	case w.reports <- report:
	case <-ctx.Done():
	}
}

func (w *FareScanner) scanGrid(ctx context.Context, report *entity.Report) {
	start := w.cfg.Start()

	for _, destination := range report.Destinations {
		for day := 0; day < w.cfg.DaysRange; day++ {
			select {
			case <-ctx.Done():
				return
			default:
			}

			cell := offers.Cell{
				Origin:      report.Origin,
				Destination: destination,
				Date:        start.AddDate(0, 0, day),
			}

			if err := w.waitForNextSlot(ctx); err != nil {
				return
			}

			report.CellsTotal++

			payload, err := w.searcher.Search(ctx, cell)
			if err != nil {
				report.CellsFailed++
				obs.CellsScannedTotal.WithLabelValues(obs.OutcomeFailed).Inc()
				logger(ctx).Warn("cell scan failed",
					slog.String(logx.FieldDestination, cell.Destination),
					slog.String(logx.FieldDate, cell.Date.Format("2006-01-02")),
					logx.Error(err),
				)

				continue
			}

			obs.CellsScannedTotal.WithLabelValues(obs.OutcomeOK).Inc()
			report.Offers = append(report.Offers, w.svc.Extract(payload, cell)...)
		}
	}
}

// waitForNextSlot spaces upstream requests by CellDelay.
func (w *FareScanner) waitForNextSlot(ctx context.Context) error {
	if w.lastRequest.IsZero() {
		w.lastRequest = time.Now()
		return nil
	}

	elapsed := time.Since(w.lastRequest)
	if elapsed >= w.cfg.CellDelay {
		w.lastRequest = time.Now()
		return nil
	}

	select {
	case <-time.After(w.cfg.CellDelay - elapsed):
		w.lastRequest = time.Now()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TriggerScan requests an out-of-schedule cycle. Returns false when a trigger
// is already pending.
func (w *FareScanner) TriggerScan() bool {
	select {
	case w.trigger <- struct{}{}:
		return true
	default:
		return false
	}
}

func (w *FareScanner) Scanning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.scanning
}

// LastReport returns the most recent completed cycle, or nil before the
// first one finishes.
func (w *FareScanner) LastReport() *entity.Report {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.lastReport == nil {
		return nil
	}

	report := *w.lastReport

	return &report
}

func (w *FareScanner) setScanning(v bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.scanning = v
}

func (w *FareScanner) setLastReport(report entity.Report) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lastReport = &report
}
