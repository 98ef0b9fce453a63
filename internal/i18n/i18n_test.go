package i18n

import (
	"testing"

	"shopbot/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCatalog_Translate(t *testing.T) {
	catalog := NewCatalog()

	tests := []struct {
		name     string
		key      string
		lang     domain.Language
		params   map[string]string
		expected string
	}{
		{
			name:     "uzbek",
			key:      KeyCartEmpty,
			lang:     domain.LangUZ,
			expected: "Savatchangiz bo'sh.",
		},
		{
			name:     "russian",
			key:      KeyCartEmpty,
			lang:     domain.LangRU,
			expected: "Ваша корзина пуста.",
		},
		{
			name:     "placeholders",
			key:      KeyOrderCancelled,
			lang:     domain.LangRU,
			params:   map[string]string{"order_id": "42"},
			expected: "Заказ #42 отменён",
		},
		{
			name:     "unknown language falls back to uzbek",
			key:      KeyBack,
			lang:     domain.Language("en"),
			expected: "⬅️ Orqaga",
		},
		{
			name:     "unknown key",
			key:      "no_such_key",
			lang:     domain.LangRU,
			expected: "no_such_key",
		},
		{
			name:     "unused params are ignored",
			key:      KeyBack,
			lang:     domain.LangRU,
			params:   map[string]string{"name": "Ali"},
			expected: "⬅️ Назад",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, catalog.Translate(tt.key, tt.lang, tt.params))
		})
	}
}

func TestCatalog_LanguagesHaveSameKeys(t *testing.T) {
	for key := range uzMessages {
		assert.Contains(t, ruMessages, key, "missing ru message %q", key)
	}
	for key := range ruMessages {
		assert.Contains(t, uzMessages, key, "missing uz message %q", key)
	}
}

func TestCatalog_OrderStatusNames(t *testing.T) {
	catalog := NewCatalog()
	statuses := []domain.OrderStatus{
		domain.OrderStatusPending,
		domain.OrderStatusConfirmed,
		domain.OrderStatusProcessing,
		domain.OrderStatusShipped,
		domain.OrderStatusDelivered,
		domain.OrderStatusCancelled,
	}

	for _, status := range statuses {
		for _, lang := range domain.SupportedLanguages {
			assert.True(t, catalog.Has(KeyOrderStatusPrefix+string(status), lang), "%s/%s", status, lang)
		}
	}
}
