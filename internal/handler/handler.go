package handler

import (
	"context"
	"strings"

	"shopbot/internal/engine"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler connects the Telegram bot to the storefront engine
type Handler struct {
	bot       *tele.Bot
	engine    *engine.Engine
	mediaRoot string
	logger    *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	eng *engine.Engine,
	mediaRoot string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:       bot,
		engine:    eng,
		mediaRoot: mediaRoot,
		logger:    logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.command(engine.KindStart))
	h.bot.Handle("/orders", h.command(engine.KindListOrders))
	h.bot.Handle("/language", h.command(engine.KindLanguageMenu))
	h.bot.Handle("/cart", h.command(engine.KindViewCart))

	// Shared contact card
	h.bot.Handle(tele.OnContact, h.handleContact)

	// Reply keyboard labels and free text
	h.bot.Handle(tele.OnText, h.handleText)

	// Inline buttons
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

func (h *Handler) command(kind engine.Kind) tele.HandlerFunc {
	return func(c tele.Context) error {
		return h.dispatch(c, newEvent(c, kind, ""))
	}
}

// handleContact handles a shared contact card
func (h *Handler) handleContact(c tele.Context) error {
	return h.dispatch(c, contactEvent(c))
}

// handleText maps main menu labels to events
func (h *Handler) handleText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())

	// Unregistered commands
	if strings.HasPrefix(text, "/") {
		return h.dispatch(c, newEvent(c, engine.KindUnknown, text))
	}

	return h.dispatch(c, newEvent(c, h.engine.TextKind(text), text))
}

func (h *Handler) dispatch(c tele.Context, ev engine.Event) error {
	d := h.engine.Handle(context.Background(), ev)
	return h.render(c, d)
}
