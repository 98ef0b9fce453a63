package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies what the user asked for
type Kind string

const (
	KindStart            Kind = "start"
	KindContactShared    Kind = "contact_shared"
	KindOpenCategories   Kind = "open_categories"
	KindSelectCategory   Kind = "select_category"
	KindSelectProduct    Kind = "select_product"
	KindSelectColor      Kind = "select_color"
	KindViewCart         Kind = "view_cart"
	KindPlaceOrder       Kind = "place_order"
	KindClearCart        Kind = "clear_cart"
	KindLanguageMenu     Kind = "language_menu"
	KindSelectLanguage   Kind = "select_language"
	KindListOrders       Kind = "list_orders"
	KindCancelOrder      Kind = "cancel_order"
	KindBackToCategories Kind = "back_to_categories"
	KindUnknown          Kind = "unknown"
)

// Event is one inbound interaction from a chat user
type Event struct {
	ExternalID  int64
	DisplayName string
	Username    string
	Kind        Kind
	// Payload carries the id or language code of select and cancel events
	Payload        string
	ContactOwnerID int64
	Phone          string
	// FromCallback is set when the event came from an inline button
	FromCallback bool
}

// Callback tokens
const (
	actionCategoryPrefix = "cat_"
	actionProductPrefix  = "prod_"
	actionColorPrefix    = "color_"
	actionLanguagePrefix = "lang_"
	actionCancelPrefix   = "cancel_order_"

	ActionViewCart         = "view_cart"
	ActionPlaceOrder       = "place_order"
	ActionClearCart        = "clear_cart"
	ActionBackToCategories = "back_to_categories"
	ActionOrders           = "orders"
)

// ParseAction maps a callback token to an event kind and its payload
func ParseAction(token string) (Kind, string) {
	switch token {
	case ActionViewCart:
		return KindViewCart, ""
	case ActionPlaceOrder:
		return KindPlaceOrder, ""
	case ActionClearCart:
		return KindClearCart, ""
	case ActionBackToCategories:
		return KindBackToCategories, ""
	case ActionOrders:
		return KindListOrders, ""
	}

	switch {
	case strings.HasPrefix(token, actionCancelPrefix):
		return KindCancelOrder, strings.TrimPrefix(token, actionCancelPrefix)
	case strings.HasPrefix(token, actionCategoryPrefix):
		return KindSelectCategory, strings.TrimPrefix(token, actionCategoryPrefix)
	case strings.HasPrefix(token, actionProductPrefix):
		return KindSelectProduct, strings.TrimPrefix(token, actionProductPrefix)
	case strings.HasPrefix(token, actionColorPrefix):
		return KindSelectColor, strings.TrimPrefix(token, actionColorPrefix)
	case strings.HasPrefix(token, actionLanguagePrefix):
		return KindSelectLanguage, strings.TrimPrefix(token, actionLanguagePrefix)
	}
	return KindUnknown, token
}

// CategoryAction returns the token that opens a category
func CategoryAction(id int64) string {
	return fmt.Sprintf("%s%d", actionCategoryPrefix, id)
}

// ProductAction returns the token that opens a product
func ProductAction(id int64) string {
	return fmt.Sprintf("%s%d", actionProductPrefix, id)
}

// ColorAction returns the token that adds a color to the cart
func ColorAction(id int64) string {
	return fmt.Sprintf("%s%d", actionColorPrefix, id)
}

// LanguageAction returns the token that switches language
func LanguageAction(code string) string {
	return actionLanguagePrefix + code
}

// CancelOrderAction returns the token that cancels an order
func CancelOrderAction(id int64) string {
	return fmt.Sprintf("%s%d", actionCancelPrefix, id)
}

func parseID(payload string) (int64, bool) {
	id, err := strconv.ParseInt(payload, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
