package middleware

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
)

// AdminOnly silently drops updates from anyone but the configured admin.
func AdminOnly(adminID int64) th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		if update.Message == nil {
			return nil
		}

		if update.Message.From != nil && update.Message.From.ID == adminID {
			return ctx.Next(update)
		}

		return nil
	}
}
