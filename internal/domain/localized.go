package domain

// LocalizedText holds one value per language
type LocalizedText map[Language]string

// NewLocalizedText builds a text from its Uzbek and Russian values
func NewLocalizedText(uz, ru string) LocalizedText {
	return LocalizedText{LangUZ: uz, LangRU: ru}
}

// In returns the value for lang, falling back to the default language
func (t LocalizedText) In(lang Language) string {
	if v, ok := t[lang]; ok && v != "" {
		return v
	}
	return t[DefaultLanguage]
}

// Field names a bilingual attribute of a catalog entity
type Field string

const (
	FieldName        Field = "name"
	FieldDescription Field = "description"
)

// Localizable is implemented by entities with bilingual attributes
type Localizable interface {
	Localized(field Field) LocalizedText
}

// LocalizedField resolves a bilingual attribute of an entity.
// Unknown fields resolve to an empty string.
func LocalizedField(e Localizable, field Field, lang Language) string {
	return e.Localized(field).In(lang)
}
