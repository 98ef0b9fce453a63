// Package i18n holds the bilingual message catalog used by the bot.
package i18n

import (
	"strings"

	"shopbot/internal/domain"
)

// Translator resolves message keys into user-facing text
type Translator interface {
	Translate(key string, lang domain.Language, params map[string]string) string
}

// Catalog is an in-memory Translator backed by a fixed message table
type Catalog struct {
	messages map[domain.Language]map[string]string
	fallback domain.Language
}

// NewCatalog returns the built-in uz/ru catalog
func NewCatalog() *Catalog {
	return &Catalog{
		messages: map[domain.Language]map[string]string{
			domain.LangUZ: uzMessages,
			domain.LangRU: ruMessages,
		},
		fallback: domain.DefaultLanguage,
	}
}

// Translate returns the message for key in lang with {name} placeholders replaced.
// Unknown languages use the default language. Unknown keys are returned as is.
func (c *Catalog) Translate(key string, lang domain.Language, params map[string]string) string {
	table, ok := c.messages[lang]
	if !ok {
		table = c.messages[c.fallback]
	}

	text, ok := table[key]
	if !ok {
		return key
	}
	if len(params) == 0 {
		return text
	}

	pairs := make([]string, 0, len(params)*2)
	for name, value := range params {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// Has reports whether key exists for lang
func (c *Catalog) Has(key string, lang domain.Language) bool {
	_, ok := c.messages[lang][key]
	return ok
}
