// Package i18n holds the two supported catalog languages and the localized
// user-facing copy for the bot.
package i18n

import "strings"

// Language identifies one of the two supported catalog languages.
type Language string

const (
	// English is the default language until the user picks one.
	English Language = "en"
	// Russian is the paired catalog language.
	Russian Language = "ru"
)

// Other returns the paired language.
func (l Language) Other() Language {
	if l == Russian {
		return English
	}
	return Russian
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	return l == English || l == Russian
}

// String returns the language code.
func (l Language) String() string { return string(l) }

// Parse resolves a language code, reporting false for anything outside the
// supported set.
func Parse(code string) (Language, bool) {
	switch Language(strings.ToLower(strings.TrimSpace(code))) {
	case English:
		return English, true
	case Russian:
		return Russian, true
	}
	return English, false
}
