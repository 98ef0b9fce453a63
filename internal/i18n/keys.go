package i18n

// Message keys
const (
	KeyWelcomeNewUser     = "welcome_new_user"
	KeyWelcomeBack        = "welcome_back"
	KeyShareContact       = "share_contact"
	KeyContactSaved       = "contact_saved"
	KeyCategories         = "categories"
	KeyCart               = "cart"
	KeyOrders             = "orders"
	KeyLanguage           = "language"
	KeySelectCategory     = "select_category"
	KeySelectSubcategory  = "select_subcategory"
	KeyNoCategories       = "no_categories"
	KeyProductsInCategory = "products_in_category"
	KeyNoProducts         = "no_products_in_category"
	KeySelectColor        = "select_color"
	KeyNoColors           = "no_colors_available"
	KeyColorButton        = "color_button"
	KeyAddedToCart        = "added_to_cart"
	KeyItemAddedToCart    = "item_added_to_cart"
	KeyViewCart           = "view_cart"
	KeyContinueShopping   = "continue_shopping"
	KeyYourCart           = "your_cart"
	KeyCartLine           = "cart_line"
	KeyCartTotal          = "cart_total"
	KeyPlaceOrder         = "place_order"
	KeyClearCart          = "clear_cart"
	KeyCartEmpty          = "cart_empty"
	KeyCartCleared        = "cart_cleared"
	KeyOrderCreated       = "order_created"
	KeyChooseLanguage     = "choose_language"
	KeyLanguageChanged    = "language_changed"
	KeyBack               = "back"
	KeyYourOrders         = "your_orders"
	KeyNoOrders           = "no_orders"
	KeyOrderSummary       = "order_summary"
	KeyCancelOrder        = "cancel_order"
	KeyOrderCancelled     = "order_cancelled"
	KeyUnknownCommand     = "unknown_command"
	KeyErrorUserNotFound  = "error_user_not_found"
	KeyErrorWrongContact  = "error_wrong_contact"
	KeyErrorCategory      = "error_category_not_found"
	KeyErrorProduct       = "error_product_not_found"
	KeyErrorColor         = "error_color_not_found"
	KeyErrorOrder         = "error_order_not_found"
	KeyErrorOrderState    = "error_order_state"
	KeyErrorLanguage      = "error_unsupported_language"
	KeyErrorUserBlocked   = "error_user_blocked"
	KeyErrorGeneric       = "error_generic"
	KeyOrderStatusPrefix  = "order_status_"
	KeyLanguageNamePrefix = "language_name_"
)
