package domain

import "fmt"

// Language is a user interface language
type Language string

const (
	LangUZ Language = "uz"
	LangRU Language = "ru"
)

// DefaultLanguage is assigned to every new user
const DefaultLanguage = LangUZ

// SupportedLanguages lists languages in the order they are offered to users
var SupportedLanguages = []Language{LangUZ, LangRU}

// IsValid reports whether the language is supported
func (l Language) IsValid() bool {
	switch l {
	case LangUZ, LangRU:
		return true
	}
	return false
}

// ParseLanguage converts a language code into a Language
func ParseLanguage(code string) (Language, error) {
	lang := Language(code)
	if !lang.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}
	return lang, nil
}
