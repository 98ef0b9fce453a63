package engine

import (
	"errors"

	"go.uber.org/zap"

	"shopbot/internal/domain"
	"shopbot/internal/i18n"
)

// messageKey maps a failure to the message shown to the user
func messageKey(err error) string {
	switch {
	case errors.Is(err, domain.ErrCategoryNotFound):
		return i18n.KeyErrorCategory
	case errors.Is(err, domain.ErrProductNotFound):
		return i18n.KeyErrorProduct
	case errors.Is(err, domain.ErrColorUnavailable):
		return i18n.KeyErrorColor
	case errors.Is(err, domain.ErrOrderNotFound):
		return i18n.KeyErrorOrder
	case errors.Is(err, domain.ErrUserNotFound):
		return i18n.KeyErrorUserNotFound
	case errors.Is(err, domain.ErrInvalidTransition):
		return i18n.KeyErrorOrderState
	case errors.Is(err, domain.ErrContactMismatch):
		return i18n.KeyErrorWrongContact
	case errors.Is(err, domain.ErrUnsupportedLanguage):
		return i18n.KeyErrorLanguage
	case errors.Is(err, domain.ErrEmptyCart):
		return i18n.KeyCartEmpty
	case errors.Is(err, domain.ErrUserInactive):
		return i18n.KeyErrorUserBlocked
	}
	return i18n.KeyErrorGeneric
}

func (e *Engine) fail(log *zap.Logger, ev Event, sess *domain.Session, err error) Directive {
	key := messageKey(err)
	if key == i18n.KeyErrorGeneric {
		log.Error("Event failed", zap.Error(err))
	} else {
		log.Info("Event rejected", zap.String("reason", key), zap.Error(err))
	}

	return reply(ev, e.text(sess, key), nil)
}
