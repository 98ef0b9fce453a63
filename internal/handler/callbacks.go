package handler

import (
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	ev := callbackEvent(c)
	h.logger.Debug("handleCallback: Processing callback",
		zap.String("data_raw", callback.Data),
		zap.String("unique", callback.Unique),
		zap.String("id", callback.ID),
		zap.String("event", string(ev.Kind)),
		zap.Int64("user_id", ev.ExternalID),
	)

	return h.dispatch(c, ev)
}

// handleEditError reports whether a failed edit still needs a new message.
// "message is not modified" means a concurrent press already produced the same content.
func (h *Handler) handleEditError(err error, c tele.Context) bool {
	if err == nil {
		return false
	}

	fields := []zap.Field{zap.Int64("user_id", c.Sender().ID)}
	if cb := c.Callback(); cb != nil {
		fields = append(fields, zap.String("callback_id", cb.ID))
	}

	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback", fields...)
		return false
	}

	// Photo messages have no text to edit
	h.logger.Warn("Failed to edit message, sending new", append(fields, zap.Error(err))...)
	return true
}
