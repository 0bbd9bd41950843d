// Package bot exposes the scanner over Telegram commands, so the daemon can
// be inspected and steered from the same chat that receives the reports.
package bot

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"miles_watch/internal/config"
	"miles_watch/internal/transport/bot/handler"
	"miles_watch/internal/worker"
	"miles_watch/pkg/contextx"
	"miles_watch/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals // skip

const longPollTimeoutSeconds = 60

type Bot struct {
	bot        *telego.Bot
	botHandler *th.BotHandler
}

func New(ctx context.Context, cfg config.Bot, scanner *worker.FareScanner) (*Bot, error) {
	bot, err := telego.NewBot(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("telego.NewBot: %w", err)
	}

	updates, err := bot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout: longPollTimeoutSeconds,
	})
	if err != nil {
		return nil, fmt.Errorf("bot.UpdatesViaLongPolling: %w", err)
	}

	botHandler, err := th.NewBotHandler(bot, updates)
	if err != nil {
		return nil, fmt.Errorf("th.NewBotHandler: %w", err)
	}

	handler.New(scanner).RegisterRoutes(botHandler, cfg.Admin())

	return &Bot{
		bot:        bot,
		botHandler: botHandler,
	}, nil
}

// Run processes commands until the context ends.
func (b *Bot) Run(ctx context.Context) error {
	go func() {
		if err := b.botHandler.Start(); err != nil {
			logger(ctx).Error("botHandler.Start", logx.Error(err))
		}
	}()

	<-ctx.Done()

	if err := b.botHandler.Stop(); err != nil {
		logger(ctx).Error("botHandler.Stop", logx.Error(err))
	}

	return ctx.Err()
}
