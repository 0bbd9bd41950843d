package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"miles_watch/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, adminID int64) {
	adminGroup := bh.Group(th.AnyMessage())
	adminGroup.Use(middleware.AdminOnly(adminID))

	adminGroup.HandleMessage(h.OnStart, th.CommandEqual("start"))
	adminGroup.HandleMessage(h.OnStatus, th.CommandEqual("status"))
	adminGroup.HandleMessage(h.OnReport, th.CommandEqual("report"))
	adminGroup.HandleMessage(h.OnScan, th.CommandEqual("scan"))
	adminGroup.HandleMessage(h.OnAdd, th.CommandEqual("add"))
	adminGroup.HandleMessage(h.OnRemove, th.CommandEqual("remove"))
}
