package i18n

var uzMessages = map[string]string{
	"welcome_new_user":           "Salom {name}! Internet do'konimizga xush kelibsiz!\n\nIltimos, telefon raqamingizni ulashing:",
	"welcome_back":               "Salom {name}! Qaytganingizdan xursandmiz!",
	"share_contact":              "📱 Telefon raqamni ulashish",
	"contact_saved":              "Telefon raqamingiz saqlandi! Endi do'kondan foydalanishingiz mumkin.",
	"categories":                 "🛍 Kategoriyalar",
	"cart":                       "🛒 Savatcha",
	"orders":                     "📦 Mening buyurtmalarim",
	"language":                   "🌐 Til",
	"select_category":            "Kategoriyani tanlang:",
	"select_subcategory":         "{category} bo'limidan kategoriyani tanlang:",
	"no_categories":              "Hozircha kategoriyalar mavjud emas.",
	"products_in_category":       "{category} kategoriyasidagi mahsulotlar:",
	"no_products_in_category":    "Bu kategoriyada mahsulotlar mavjud emas.",
	"select_color":               "Rangni tanlang:",
	"no_colors_available":        "Bu mahsulot uchun ranglar mavjud emas.",
	"color_button":               "{color} - {price} so'm",
	"added_to_cart":              "Savatchaga qo'shildi!",
	"item_added_to_cart":         "{product} ({color}) - {price} so'm\nSavatchaga qo'shildi!",
	"view_cart":                  "Savatchani ko'rish",
	"continue_shopping":          "Xaridni davom ettirish",
	"your_cart":                  "🛒 Sizning savatchangiz:",
	"cart_line":                  "• {product}\n  {color}\n  {quantity} x {price} = {total} so'm",
	"cart_total":                 "Jami: {total} so'm",
	"place_order":                "Buyurtma berish",
	"clear_cart":                 "Savatchani tozalash",
	"cart_empty":                 "Savatchangiz bo'sh.",
	"cart_cleared":               "Savatcha tozalandi.",
	"order_created":              "✅ Buyurtma #{order_id} yaratildi!\nJami: {total} so'm\n\nTez orada siz bilan bog'lanamiz.",
	"choose_language":            "Tilni tanlang / Выберите язык:",
	"language_changed":           "Til o'zgartirildi!",
	"language_name_uz":           "🇺🇿 O'zbek",
	"language_name_ru":           "🇷🇺 Русский",
	"back":                       "⬅️ Orqaga",
	"your_orders":                "Sizning buyurtmalaringiz",
	"no_orders":                  "Hozircha buyurtmalar yo'q",
	"order_summary":              "📦 Buyurtma #{order_id}\n💰 Summa: {total} so'm\n📅 Sana: {date}\n📋 Status: {status}",
	"order_status_pending":       "Kutilmoqda",
	"order_status_confirmed":     "Tasdiqlangan",
	"order_status_processing":    "Tayyorlanmoqda",
	"order_status_shipped":       "Yuborilgan",
	"order_status_delivered":     "Yetkazilgan",
	"order_status_cancelled":     "Bekor qilingan",
	"cancel_order":               "Buyurtma #{order_id} bekor qilish",
	"order_cancelled":            "Buyurtma #{order_id} bekor qilindi",
	"unknown_command":            "Iltimos, quyidagi menyudan foydalaning.",
	"error_user_not_found":       "Foydalanuvchi topilmadi. Iltimos, /start buyrug'ini bosing.",
	"error_wrong_contact":        "Iltimos, o'zingizning telefon raqamingizni ulashing.",
	"error_category_not_found":   "Kategoriya topilmadi.",
	"error_product_not_found":    "Mahsulot topilmadi.",
	"error_color_not_found":      "Rang topilmadi.",
	"error_order_not_found":      "Buyurtma topilmadi",
	"error_order_state":          "Bu buyurtmani endi bekor qilib bo'lmaydi.",
	"error_unsupported_language": "Bu til qo'llab-quvvatlanmaydi.",
	"error_user_blocked":         "Hisobingiz bloklangan. Iltimos, do'kon bilan bog'laning.",
	"error_generic":              "Xatolik yuz berdi. Iltimos, qaytadan urinib ko'ring.",
}

var ruMessages = map[string]string{
	"welcome_new_user":           "Привет {name}! Добро пожаловать в наш интернет-магазин!\n\nПожалуйста, поделитесь своим номером телефона:",
	"welcome_back":               "Привет {name}! Рады видеть вас снова!",
	"share_contact":              "📱 Поделиться номером телефона",
	"contact_saved":              "Номер телефона сохранен! Теперь вы можете пользоваться магазином.",
	"categories":                 "🛍 Категории",
	"cart":                       "🛒 Корзина",
	"orders":                     "📦 Мои заказы",
	"language":                   "🌐 Язык",
	"select_category":            "Выберите категорию:",
	"select_subcategory":         "Выберите категорию из раздела {category}:",
	"no_categories":              "Пока нет доступных категорий.",
	"products_in_category":       "Товары в категории {category}:",
	"no_products_in_category":    "В этой категории нет товаров.",
	"select_color":               "Выберите цвет:",
	"no_colors_available":        "Для этого товара нет доступных цветов.",
	"color_button":               "{color} - {price} сум",
	"added_to_cart":              "Добавлено в корзину!",
	"item_added_to_cart":         "{product} ({color}) - {price} сум\nДобавлено в корзину!",
	"view_cart":                  "Посмотреть корзину",
	"continue_shopping":          "Продолжить покупки",
	"your_cart":                  "🛒 Ваша корзина:",
	"cart_line":                  "• {product}\n  {color}\n  {quantity} x {price} = {total} сум",
	"cart_total":                 "Итого: {total} сум",
	"place_order":                "Оформить заказ",
	"clear_cart":                 "Очистить корзину",
	"cart_empty":                 "Ваша корзина пуста.",
	"cart_cleared":               "Корзина очищена.",
	"order_created":              "✅ Заказ #{order_id} создан!\nИтого: {total} сум\n\nМы скоро свяжемся с вами.",
	"choose_language":            "Tilni tanlang / Выберите язык:",
	"language_changed":           "Язык изменен!",
	"language_name_uz":           "🇺🇿 O'zbek",
	"language_name_ru":           "🇷🇺 Русский",
	"back":                       "⬅️ Назад",
	"your_orders":                "Ваши заказы",
	"no_orders":                  "Пока нет заказов",
	"order_summary":              "📦 Заказ #{order_id}\n💰 Сумма: {total} сум\n📅 Дата: {date}\n📋 Статус: {status}",
	"order_status_pending":       "В ожидании",
	"order_status_confirmed":     "Подтверждён",
	"order_status_processing":    "В обработке",
	"order_status_shipped":       "Отправлен",
	"order_status_delivered":     "Доставлен",
	"order_status_cancelled":     "Отменён",
	"cancel_order":               "Отменить заказ #{order_id}",
	"order_cancelled":            "Заказ #{order_id} отменён",
	"unknown_command":            "Пожалуйста, воспользуйтесь меню ниже.",
	"error_user_not_found":       "Пользователь не найден. Пожалуйста, нажмите /start.",
	"error_wrong_contact":        "Пожалуйста, поделитесь своим номером телефона.",
	"error_category_not_found":   "Категория не найдена.",
	"error_product_not_found":    "Товар не найден.",
	"error_color_not_found":      "Цвет не найден.",
	"error_order_not_found":      "Заказ не найден",
	"error_order_state":          "Этот заказ уже нельзя отменить.",
	"error_unsupported_language": "Этот язык не поддерживается.",
	"error_user_blocked":         "Ваш аккаунт заблокирован. Пожалуйста, свяжитесь с магазином.",
	"error_generic":              "Произошла ошибка. Пожалуйста, попробуйте еще раз.",
}
