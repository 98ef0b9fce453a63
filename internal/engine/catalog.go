package engine

import (
	"context"
	"strings"

	"shopbot/internal/domain"
	"shopbot/internal/i18n"
)

func (e *Engine) openCategories(ctx context.Context, ev Event, sess *domain.Session) (Directive, error) {
	categories, err := e.catalog.ListRootCategories(ctx)
	if err != nil {
		return Directive{}, err
	}
	if len(categories) == 0 {
		return reply(ev, e.text(sess, i18n.KeyNoCategories), nil), nil
	}

	return reply(ev, e.text(sess, i18n.KeySelectCategory), e.categoryRows(sess, categories, false)), nil
}

func (e *Engine) selectCategory(ctx context.Context, ev Event, sess *domain.Session) (Directive, error) {
	id, ok := parseID(ev.Payload)
	if !ok {
		return Directive{}, domain.ErrCategoryNotFound
	}

	category, children, err := e.catalog.ListChildren(ctx, id)
	if err != nil {
		return Directive{}, err
	}
	name := domain.LocalizedField(category, domain.FieldName, sess.Language)

	if len(children) > 0 {
		text := e.text(sess, i18n.KeySelectSubcategory, "category", name)
		return reply(ev, text, e.categoryRows(sess, children, true)), nil
	}

	products, err := e.catalog.ListProducts(ctx, category.ID, 0)
	if err != nil {
		return Directive{}, err
	}
	if len(products) == 0 {
		return reply(ev, e.text(sess, i18n.KeyNoProducts), nil), nil
	}

	rows := make([][]Choice, 0, len(products)+1)
	for i := range products {
		rows = append(rows, []Choice{{
			Label:  domain.LocalizedField(&products[i], domain.FieldName, sess.Language),
			Action: ProductAction(products[i].ID),
		}})
	}
	rows = append(rows, e.backRow(sess))

	return reply(ev, e.text(sess, i18n.KeyProductsInCategory, "category", name), rows), nil
}

func (e *Engine) selectProduct(ctx context.Context, ev Event, sess *domain.Session) (Directive, error) {
	id, ok := parseID(ev.Payload)
	if !ok {
		return Directive{}, domain.ErrProductNotFound
	}

	product, colors, err := e.catalog.ListColors(ctx, id)
	if err != nil {
		return Directive{}, err
	}
	if len(colors) == 0 {
		return reply(ev, e.text(sess, i18n.KeyNoColors), nil), nil
	}

	rows := make([][]Choice, 0, len(colors)+1)
	for i := range colors {
		rows = append(rows, []Choice{{
			Label: e.text(sess, i18n.KeyColorButton,
				"color", domain.LocalizedField(&colors[i], domain.FieldName, sess.Language),
				"price", formatMoney(colors[i].Price),
			),
			Action: ColorAction(colors[i].ID),
		}})
	}
	rows = append(rows, e.backRow(sess))

	parts := []string{domain.LocalizedField(product, domain.FieldName, sess.Language)}
	if desc := domain.LocalizedField(product, domain.FieldDescription, sess.Language); desc != "" {
		parts = append(parts, desc)
	}
	parts = append(parts, e.text(sess, i18n.KeySelectColor))
	text := strings.Join(parts, "\n\n")

	if product.HasImage() {
		return Directive{Mode: ModeSend, Text: text, Photo: product.MainImage, Choices: rows}, nil
	}
	return reply(ev, text, rows), nil
}

func (e *Engine) categoryRows(sess *domain.Session, categories []domain.Category, withBack bool) [][]Choice {
	rows := make([][]Choice, 0, len(categories)+1)
	for i := range categories {
		rows = append(rows, []Choice{{
			Label:  domain.LocalizedField(&categories[i], domain.FieldName, sess.Language),
			Action: CategoryAction(categories[i].ID),
		}})
	}
	if withBack {
		rows = append(rows, e.backRow(sess))
	}
	return rows
}
