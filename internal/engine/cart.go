package engine

import (
	"context"
	"strconv"
	"strings"

	"shopbot/internal/domain"
	"shopbot/internal/i18n"
)

func (e *Engine) selectColor(ctx context.Context, ev Event, sess *domain.Session) (Directive, error) {
	id, ok := parseID(ev.Payload)
	if !ok {
		return Directive{}, domain.ErrColorUnavailable
	}

	line, err := e.carts.AddLine(ctx, sess.UserID, id, 1)
	if err != nil {
		return Directive{}, err
	}

	productName := ""
	if line.Color.Product != nil {
		productName = domain.LocalizedField(line.Color.Product, domain.FieldName, sess.Language)
	}
	text := e.text(sess, i18n.KeyItemAddedToCart,
		"product", productName,
		"color", domain.LocalizedField(line.Color, domain.FieldName, sess.Language),
		"price", formatMoney(line.Price()),
	)

	d := reply(ev, text, [][]Choice{
		{{Label: e.text(sess, i18n.KeyViewCart), Action: ActionViewCart}},
		{{Label: e.text(sess, i18n.KeyContinueShopping), Action: ActionBackToCategories}},
	})
	d.Notice = e.text(sess, i18n.KeyAddedToCart)
	d.NoticeAlert = true
	return d, nil
}

func (e *Engine) viewCart(ctx context.Context, ev Event, sess *domain.Session) (Directive, error) {
	cart, err := e.carts.ListLines(ctx, sess.UserID)
	if err != nil {
		return Directive{}, err
	}
	if cart.IsEmpty() {
		return reply(ev, e.text(sess, i18n.KeyCartEmpty), nil), nil
	}

	parts := make([]string, 0, len(cart.Lines)+2)
	parts = append(parts, e.text(sess, i18n.KeyYourCart))
	for i := range cart.Lines {
		line := &cart.Lines[i]
		productName, colorName := "", ""
		if line.Color != nil {
			colorName = domain.LocalizedField(line.Color, domain.FieldName, sess.Language)
			if line.Color.Product != nil {
				productName = domain.LocalizedField(line.Color.Product, domain.FieldName, sess.Language)
			}
		}
		parts = append(parts, e.text(sess, i18n.KeyCartLine,
			"product", productName,
			"color", colorName,
			"quantity", strconv.Itoa(line.Quantity),
			"price", formatMoney(line.Price()),
			"total", formatMoney(line.LineTotal()),
		))
	}
	parts = append(parts, e.text(sess, i18n.KeyCartTotal, "total", formatMoney(cart.Total())))

	return reply(ev, strings.Join(parts, "\n\n"), [][]Choice{
		{{Label: e.text(sess, i18n.KeyPlaceOrder), Action: ActionPlaceOrder}},
		{{Label: e.text(sess, i18n.KeyClearCart), Action: ActionClearCart}},
		{{Label: e.text(sess, i18n.KeyContinueShopping), Action: ActionBackToCategories}},
	}), nil
}

func (e *Engine) placeOrder(ctx context.Context, ev Event, sess *domain.Session) (Directive, error) {
	order, err := e.orders.PlaceOrder(ctx, sess.User)
	if err != nil {
		return Directive{}, err
	}

	text := e.text(sess, i18n.KeyOrderCreated,
		"order_id", strconv.FormatInt(order.ID, 10),
		"total", formatMoney(order.TotalAmount),
	)
	return reply(ev, text, nil), nil
}

func (e *Engine) clearCart(ctx context.Context, ev Event, sess *domain.Session) (Directive, error) {
	if err := e.carts.Clear(ctx, sess.UserID); err != nil {
		return Directive{}, err
	}
	return reply(ev, e.text(sess, i18n.KeyCartCleared), nil), nil
}
