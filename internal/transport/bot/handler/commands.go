package handler

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
)

var airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

const startMessage = `👋 <b>Miles watch</b>

/status — scanner state and tracked destinations
/report — last cycle report
/scan — trigger a cycle now
/add CDG — track a destination
/remove CDG — stop tracking a destination`

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, startMessage)
}

func (h *Handler) OnStatus(ctx *th.Context, msg telego.Message) error {
	scannerStatus := "🕐 waiting"
	if h.scanner.Scanning() {
		scannerStatus = "🟢 scanning"
	}

	lastCycle := "no completed cycle yet"
	if last := h.scanner.LastReport(); last != nil {
		lastCycle = fmt.Sprintf("%s, %d offers, %d/%d cells failed",
			last.FinishedAt.Format("15:04:05"),
			len(last.Offers),
			last.CellsFailed,
			last.CellsTotal,
		)
	}

	text := fmt.Sprintf(`📊 <b>Status</b>

🔍 <b>Scanner:</b> %s
🌍 <b>Destinations:</b> %s
🕓 <b>Last cycle:</b> %s`,
		scannerStatus,
		strings.Join(h.scanner.Destinations(), ", "),
		lastCycle,
	)

	return h.sendHTML(ctx, msg.Chat.ID, text)
}

func (h *Handler) OnReport(ctx *th.Context, msg telego.Message) error {
	last := h.scanner.LastReport()
	if last == nil {
		return h.sendText(ctx, msg.Chat.ID, "No completed scan cycle yet.")
	}

	return h.sendHTML(ctx, msg.Chat.ID, last.Text)
}

func (h *Handler) OnScan(ctx *th.Context, msg telego.Message) error {
	if h.scanner.TriggerScan() {
		return h.sendText(ctx, msg.Chat.ID, "🔄 Scan triggered.")
	}

	return h.sendText(ctx, msg.Chat.ID, "A scan is already queued.")
}

func (h *Handler) OnAdd(ctx *th.Context, msg telego.Message) error {
	code, ok := commandArgument(msg.Text)
	if !ok {
		return h.sendText(ctx, msg.Chat.ID, "Usage: /add CDG")
	}

	if !h.scanner.AddDestination(code) {
		return h.sendText(ctx, msg.Chat.ID, code+" is already tracked.")
	}

	return h.sendText(ctx, msg.Chat.ID, "✅ "+code+" added.")
}

func (h *Handler) OnRemove(ctx *th.Context, msg telego.Message) error {
	code, ok := commandArgument(msg.Text)
	if !ok {
		return h.sendText(ctx, msg.Chat.ID, "Usage: /remove CDG")
	}

	if !h.scanner.RemoveDestination(code) {
		return h.sendText(ctx, msg.Chat.ID, code+" is not tracked.")
	}

	return h.sendText(ctx, msg.Chat.ID, "🗑 "+code+" removed.")
}

// commandArgument extracts an airport code argument, tolerating lowercase
// input.
func commandArgument(text string) (string, bool) {
	parts := strings.Fields(text)
	if len(parts) < 2 {
		return "", false
	}

	code := strings.ToUpper(parts[1])
	if !airportCodePattern.MatchString(code) {
		return "", false
	}

	return code, true
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:    telego.ChatID{ID: chatID},
		Text:      text,
		ParseMode: telego.ModeHTML,
	})

	return err
}

func (h *Handler) sendText(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID: telego.ChatID{ID: chatID},
		Text:   text,
	})

	return err
}
