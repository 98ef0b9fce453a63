package handler

import (
	"shopbot/internal/engine"

	tele "gopkg.in/telebot.v3"
)

// newEvent builds an engine event from a Telegram update
func newEvent(c tele.Context, kind engine.Kind, payload string) engine.Event {
	ev := engine.Event{
		Kind:         kind,
		Payload:      payload,
		FromCallback: c.Callback() != nil,
	}
	if sender := c.Sender(); sender != nil {
		ev.ExternalID = sender.ID
		ev.DisplayName = sender.FirstName
		ev.Username = sender.Username
	}
	return ev
}

// contactEvent builds a contact_shared event; the owner is zero for contacts without a Telegram account
func contactEvent(c tele.Context) engine.Event {
	ev := newEvent(c, engine.KindContactShared, "")
	if msg := c.Message(); msg != nil && msg.Contact != nil {
		ev.ContactOwnerID = msg.Contact.UserID
		ev.Phone = msg.Contact.PhoneNumber
	}
	return ev
}

// callbackEvent builds an event from an inline button press
func callbackEvent(c tele.Context) engine.Event {
	cb := c.Callback()
	token := cleanCallbackData(cb.Data)
	if token == "" {
		token = cleanCallbackData(cb.Unique)
	}
	kind, payload := engine.ParseAction(token)
	return newEvent(c, kind, payload)
}
