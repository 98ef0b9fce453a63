package engine

import (
	"context"
	"strconv"
	"strings"

	"shopbot/internal/domain"
	"shopbot/internal/i18n"
)

const orderDateLayout = "2006-01-02 15:04"

func (e *Engine) listOrders(ctx context.Context, ev Event, sess *domain.Session) (Directive, error) {
	orders, err := e.orders.ListOrders(ctx, sess.UserID)
	if err != nil {
		return Directive{}, err
	}
	if len(orders) == 0 {
		return reply(ev, e.text(sess, i18n.KeyNoOrders), nil), nil
	}

	parts := make([]string, 0, len(orders)+1)
	parts = append(parts, e.text(sess, i18n.KeyYourOrders))

	var rows [][]Choice
	for i := range orders {
		order := &orders[i]
		id := strconv.FormatInt(order.ID, 10)
		parts = append(parts, e.text(sess, i18n.KeyOrderSummary,
			"order_id", id,
			"total", formatMoney(order.TotalAmount),
			"date", order.CreatedAt.Format(orderDateLayout),
			"status", e.text(sess, i18n.KeyOrderStatusPrefix+string(order.Status)),
		))

		if order.Status.CanBeCancelledByCustomer() {
			rows = append(rows, []Choice{{
				Label:  e.text(sess, i18n.KeyCancelOrder, "order_id", id),
				Action: CancelOrderAction(order.ID),
			}})
		}
	}
	rows = append(rows, e.backRow(sess))

	return reply(ev, strings.Join(parts, "\n\n"), rows), nil
}

func (e *Engine) cancelOrder(ctx context.Context, ev Event, sess *domain.Session) (Directive, error) {
	id, ok := parseID(ev.Payload)
	if !ok {
		return Directive{}, domain.ErrOrderNotFound
	}

	order, err := e.orders.CancelOrder(ctx, sess.UserID, id)
	if err != nil {
		return Directive{}, err
	}

	text := e.text(sess, i18n.KeyOrderCancelled, "order_id", strconv.FormatInt(order.ID, 10))
	return reply(ev, text, nil), nil
}
