// Package engine turns chat events into storefront replies.
package engine

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"shopbot/internal/domain"
	"shopbot/internal/i18n"
	"shopbot/internal/service"
)

// Engine runs the storefront conversation
type Engine struct {
	sessions   *service.SessionService
	catalog    *service.CatalogService
	carts      *service.CartService
	orders     *service.OrderService
	translator i18n.Translator
	logger     *zap.Logger

	// Per-user locks serialize events of the same user
	userLocks map[int64]*sync.Mutex
	locksMux  sync.Mutex

	menuLabels map[string]Kind
}

// New creates a new engine instance
func New(
	sessions *service.SessionService,
	catalog *service.CatalogService,
	carts *service.CartService,
	orders *service.OrderService,
	translator i18n.Translator,
	logger *zap.Logger,
) *Engine {
	e := &Engine{
		sessions:   sessions,
		catalog:    catalog,
		carts:      carts,
		orders:     orders,
		translator: translator,
		logger:     logger,
		userLocks:  make(map[int64]*sync.Mutex),
		menuLabels: make(map[string]Kind),
	}

	for _, lang := range domain.SupportedLanguages {
		e.menuLabels[translator.Translate(i18n.KeyCategories, lang, nil)] = KindOpenCategories
		e.menuLabels[translator.Translate(i18n.KeyCart, lang, nil)] = KindViewCart
		e.menuLabels[translator.Translate(i18n.KeyOrders, lang, nil)] = KindListOrders
		e.menuLabels[translator.Translate(i18n.KeyLanguage, lang, nil)] = KindLanguageMenu
	}
	return e
}

// TextKind maps a main menu label in any language to its event kind
func (e *Engine) TextKind(text string) Kind {
	if kind, ok := e.menuLabels[strings.TrimSpace(text)]; ok {
		return kind
	}
	return KindUnknown
}

// Handle processes one event and returns the reply to render
func (e *Engine) Handle(ctx context.Context, ev Event) Directive {
	lock := e.lockFor(ev.ExternalID)
	lock.Lock()
	defer lock.Unlock()

	log := e.logger.With(
		zap.String("event_id", uuid.NewString()),
		zap.Int64("external_id", ev.ExternalID),
		zap.String("event", string(ev.Kind)),
	)
	log.Info("Handling event", zap.String("payload", ev.Payload))

	sess, err := e.sessions.Load(ctx, ev.ExternalID, ev.DisplayName, ev.Username)
	if err != nil {
		sess = &domain.Session{ExternalID: ev.ExternalID, Language: domain.DefaultLanguage}
		return e.fail(log, ev, sess, err)
	}

	if !sess.User.Active && ev.Kind != KindStart {
		return e.fail(log, ev, sess, domain.ErrUserInactive)
	}

	d, err := e.dispatch(ctx, ev, sess)
	if err != nil {
		return e.fail(log, ev, sess, err)
	}
	return d
}

func (e *Engine) dispatch(ctx context.Context, ev Event, sess *domain.Session) (Directive, error) {
	switch ev.Kind {
	case KindStart:
		return e.start(ev, sess), nil
	case KindContactShared:
		return e.shareContact(ctx, ev, sess)
	case KindOpenCategories, KindBackToCategories:
		return e.openCategories(ctx, ev, sess)
	case KindSelectCategory:
		return e.selectCategory(ctx, ev, sess)
	case KindSelectProduct:
		return e.selectProduct(ctx, ev, sess)
	case KindSelectColor:
		return e.selectColor(ctx, ev, sess)
	case KindViewCart:
		return e.viewCart(ctx, ev, sess)
	case KindPlaceOrder:
		return e.placeOrder(ctx, ev, sess)
	case KindClearCart:
		return e.clearCart(ctx, ev, sess)
	case KindLanguageMenu:
		return e.languageMenu(ev, sess), nil
	case KindSelectLanguage:
		return e.selectLanguage(ctx, ev, sess)
	case KindListOrders:
		return e.listOrders(ctx, ev, sess)
	case KindCancelOrder:
		return e.cancelOrder(ctx, ev, sess)
	}
	return Directive{
		Mode: ModeSend,
		Text: e.text(sess, i18n.KeyUnknownCommand),
		Menu: e.mainMenu(sess.Language),
	}, nil
}

func (e *Engine) lockFor(externalID int64) *sync.Mutex {
	e.locksMux.Lock()
	defer e.locksMux.Unlock()

	lock, exists := e.userLocks[externalID]
	if !exists {
		lock = &sync.Mutex{}
		e.userLocks[externalID] = lock
	}
	return lock
}

// text translates key into the session language; params are name/value pairs
func (e *Engine) text(sess *domain.Session, key string, params ...string) string {
	var values map[string]string
	if len(params) > 0 {
		values = make(map[string]string, len(params)/2)
		for i := 0; i+1 < len(params); i += 2 {
			values[params[i]] = params[i+1]
		}
	}
	return e.translator.Translate(key, sess.Language, values)
}

// reply edits the current message for button presses and sends otherwise
func reply(ev Event, text string, choices [][]Choice) Directive {
	mode := ModeSend
	if ev.FromCallback {
		mode = ModeEdit
	}
	return Directive{Mode: mode, Text: text, Choices: choices}
}

func (e *Engine) mainMenu(lang domain.Language) *ReplyMenu {
	label := func(key string) MenuButton {
		return MenuButton{Label: e.translator.Translate(key, lang, nil)}
	}
	return &ReplyMenu{
		Rows: [][]MenuButton{
			{label(i18n.KeyCategories), label(i18n.KeyCart)},
			{label(i18n.KeyOrders), label(i18n.KeyLanguage)},
		},
	}
}

func (e *Engine) backRow(sess *domain.Session) []Choice {
	return []Choice{{Label: e.text(sess, i18n.KeyBack), Action: ActionBackToCategories}}
}
