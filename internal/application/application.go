package application

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"miles_watch/internal/config"
	"miles_watch/internal/domain/entity"
	"miles_watch/internal/domain/service/offers"
	"miles_watch/internal/infrastructure/dump"
	"miles_watch/internal/infrastructure/notifier"
	"miles_watch/internal/infrastructure/smiles"
	"miles_watch/internal/server"
	"miles_watch/internal/transport/bot"
	"miles_watch/internal/worker"
	"miles_watch/pkg/application/modules"
	"miles_watch/pkg/contextx"
	"miles_watch/pkg/httpx"
	"miles_watch/pkg/logx"
	"miles_watch/pkg/middlewarex"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals // skip

const reportsBuffer = 10

// Run wires the whole daemon together and blocks until the context ends or a
// module fails.
func Run(ctx context.Context, cfg config.Config) error {
	alertBot, err := notifier.NewTelegramBot(cfg.Bot.Token, cfg.Bot.ChatID)
	if err != nil {
		return fmt.Errorf("notifier.NewTelegramBot: %w", err)
	}

	if err = alertBot.SendText(ctx, "🚀 Miles watch starting."); err != nil {
		// Startup proceeds, but an unreachable chat means reports will be
		// lost too, so make it loud.
		logger(ctx).Error("bot test message failed, check token and chat id", logx.Error(err))
	}

	masker := logx.NewSensitiveDataMasker()

	searcher := smiles.NewClient(cfg.Smiles,
		httpx.WithLogFieldMaxLen(cfg.Server.LogFieldMaxLen),
		httpx.WithSensitiveDataMasker(masker),
	)

	svc := offers.NewService(
		offers.Normalizer{
			MilesCeiling:      cfg.Search.MilesCeiling,
			CeilingHardFilter: cfg.Search.CeilingHardFilter,
		},
		offers.NewFormatter(),
	)

	reports := make(chan entity.Report, reportsBuffer)

	scanner := worker.NewFareScanner(cfg.Search, svc, searcher, reports)

	if cfg.Smiles.DumpDir != "" {
		dumper, err := dump.NewCSVWriter(cfg.Smiles.DumpDir)
		if err != nil {
			return fmt.Errorf("dump.NewCSVWriter: %w", err)
		}

		scanner = scanner.WithDumper(dumper)
	}

	g, ctx := errgroup.WithContext(ctx)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Server.ProbeListenAddress,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.Server.MetricsListenAddress,
	}.Run(ctx, g)

	modules.HTTPServer{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}.Run(ctx, g, &http.Server{
		Addr:              cfg.Server.ListenAddress,
		Handler:           newRouter(cfg, masker, scanner),
		ReadHeaderTimeout: 10 * time.Second,
	})

	g.Go(func() error {
		defer close(reports)

		if err := scanner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("scanner.Run: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		if err := alertBot.Run(ctx, reports); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("alertBot.Run: %w", err)
		}

		return nil
	})

	commandBot, err := bot.New(ctx, cfg.Bot, scanner)
	if err != nil {
		return fmt.Errorf("bot.New: %w", err)
	}

	g.Go(func() error {
		if err := commandBot.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("commandBot.Run: %w", err)
		}

		return nil
	})

	if err = g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

func newRouter(cfg config.Config, masker logx.SensitiveDataMasker, scanner *worker.FareScanner) chi.Router {
	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, cfg.Server.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, cfg.Server.LogFieldMaxLen),
	)

	server.NewServer(
		server.NewStatusServer(scanner, cfg.Search.Origin, cfg.Search.MilesCeiling),
	).RegisterRoutes(r)

	return r
}
