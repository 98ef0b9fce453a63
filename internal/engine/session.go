package engine

import (
	"context"

	"shopbot/internal/domain"
	"shopbot/internal/i18n"
)

func (e *Engine) start(ev Event, sess *domain.Session) Directive {
	name := ev.DisplayName
	if name == "" {
		name = sess.User.DisplayName
	}

	if sess.IsNew || !sess.User.HasPhone() {
		return Directive{
			Mode: ModeSend,
			Text: e.text(sess, i18n.KeyWelcomeNewUser, "name", name),
			Menu: &ReplyMenu{
				Rows: [][]MenuButton{{
					{Label: e.text(sess, i18n.KeyShareContact), RequestContact: true},
				}},
			},
		}
	}

	return Directive{
		Mode: ModeSend,
		Text: e.text(sess, i18n.KeyWelcomeBack, "name", name),
		Menu: e.mainMenu(sess.Language),
	}
}

func (e *Engine) shareContact(ctx context.Context, ev Event, sess *domain.Session) (Directive, error) {
	if err := e.sessions.BindContact(ctx, sess, ev.ContactOwnerID, ev.Phone); err != nil {
		return Directive{}, err
	}

	return Directive{
		Mode: ModeSend,
		Text: e.text(sess, i18n.KeyContactSaved),
		Menu: e.mainMenu(sess.Language),
	}, nil
}

func (e *Engine) languageMenu(ev Event, sess *domain.Session) Directive {
	rows := make([][]Choice, 0, len(domain.SupportedLanguages))
	for _, lang := range domain.SupportedLanguages {
		rows = append(rows, []Choice{{
			Label:  e.text(sess, i18n.KeyLanguageNamePrefix+string(lang)),
			Action: LanguageAction(string(lang)),
		}})
	}
	return reply(ev, e.text(sess, i18n.KeyChooseLanguage), rows)
}

func (e *Engine) selectLanguage(ctx context.Context, ev Event, sess *domain.Session) (Directive, error) {
	if err := e.sessions.SetLanguage(ctx, sess, ev.Payload); err != nil {
		return Directive{}, err
	}

	// A reply keyboard can only be attached to a new message
	return Directive{
		Mode: ModeSend,
		Text: e.text(sess, i18n.KeyLanguageChanged),
		Menu: e.mainMenu(sess.Language),
	}, nil
}
