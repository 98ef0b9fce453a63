package handler

import (
	"path/filepath"
	"strings"

	"shopbot/internal/engine"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// render delivers a directive to the chat
func (h *Handler) render(c tele.Context, d engine.Directive) error {
	callback := c.Callback()
	if callback != nil {
		resp := &tele.CallbackResponse{Text: d.Notice, ShowAlert: d.NoticeAlert}
		if err := c.Respond(resp); err != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
		}
	}

	var opts []interface{}
	if markup := buildMarkup(d); markup != nil {
		opts = append(opts, markup)
	}

	if d.Photo != "" {
		photo := &tele.Photo{File: h.mediaFile(d.Photo), Caption: d.Text}
		err := c.Send(photo, opts...)
		if err == nil {
			return nil
		}
		h.logger.Warn("Failed to send photo, falling back to text",
			zap.String("photo", d.Photo),
			zap.Error(err),
		)
		return c.Send(d.Text, opts...)
	}

	if d.Mode == engine.ModeEdit && callback != nil && d.Menu == nil {
		if err := c.Edit(d.Text, opts...); h.handleEditError(err, c) {
			return c.Send(d.Text, opts...)
		}
		return nil
	}

	return c.Send(d.Text, opts...)
}

// mediaFile resolves a stored image path to a telebot file
func (h *Handler) mediaFile(path string) tele.File {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return tele.FromURL(path)
	}
	return tele.FromDisk(filepath.Join(h.mediaRoot, filepath.Clean("/"+path)))
}

// buildMarkup converts directive choices or menu into a keyboard.
// Telegram allows one keyboard per message so the reply menu wins.
func buildMarkup(d engine.Directive) *tele.ReplyMarkup {
	if d.Menu != nil {
		markup := &tele.ReplyMarkup{ResizeKeyboard: true}
		for _, row := range d.Menu.Rows {
			buttons := make([]tele.ReplyButton, 0, len(row))
			for _, b := range row {
				buttons = append(buttons, tele.ReplyButton{Text: b.Label, Contact: b.RequestContact})
			}
			markup.ReplyKeyboard = append(markup.ReplyKeyboard, buttons)
		}
		return markup
	}

	if len(d.Choices) == 0 {
		return nil
	}

	markup := &tele.ReplyMarkup{}
	for _, row := range d.Choices {
		buttons := make([]tele.InlineButton, 0, len(row))
		for _, choice := range row {
			buttons = append(buttons, tele.InlineButton{Text: choice.Label, Data: choice.Action})
		}
		markup.InlineKeyboard = append(markup.InlineKeyboard, buttons)
	}
	return markup
}
