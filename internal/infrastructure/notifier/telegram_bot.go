// Package notifier delivers cycle reports to a Telegram chat.
package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"miles_watch/internal/domain"
	"miles_watch/internal/domain/entity"
	"miles_watch/internal/obs"
	"miles_watch/pkg/contextx"
	"miles_watch/pkg/errcodes"
	"miles_watch/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals // skip

type TelegramBot struct {
	bot    *telego.Bot
	chatID int64
}

func NewTelegramBot(token string, chatID int64) (*TelegramBot, error) {
	bot, err := telego.NewBot(token)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	return &TelegramBot{
		bot:    bot,
		chatID: chatID,
	}, nil
}

// Run drains the reports channel until it closes or the context ends. A
// failed delivery is logged and counted but never stops the loop; the next
// cycle produces a fresh report anyway.
func (b *TelegramBot) Run(ctx context.Context, reports <-chan entity.Report) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case report, ok := <-reports:
			if !ok {
				return nil
			}

			if err := b.SendReport(ctx, report); err != nil {
				obs.ReportsSentTotal.WithLabelValues(obs.OutcomeFailed).Inc()
				logger(ctx).Error("send report",
					slog.String(logx.FieldCycleID, report.CycleID),
					logx.Error(err),
				)

				continue
			}

			obs.ReportsSentTotal.WithLabelValues(obs.OutcomeOK).Inc()
		}
	}
}

func (b *TelegramBot) SendReport(ctx context.Context, report entity.Report) error {
	msg := tu.Message(
		tu.ID(b.chatID),
		report.Text,
	).WithParseMode(telego.ModeHTML)

	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		return domain.WrapError(err, errcodes.NotifyDeliveryError, "send report message")
	}

	return nil
}

// SendText sends a plain message, used for startup and shutdown notices.
func (b *TelegramBot) SendText(ctx context.Context, text string) error {
	msg := tu.Message(tu.ID(b.chatID), text)

	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		return domain.WrapError(err, errcodes.NotifyDeliveryError, "send text message")
	}

	return nil
}
