package entity

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// LanguageCallbackPrefix inline menyu callback prefiksi ("lang_ru")
const LanguageCallbackPrefix = "lang_"

// Language menyudagi bitta til
type Language struct {
	Code  string // "ru"
	Label string // tugma matni
	Name  string // inglizcha nom, masalan "Russian"
}

// CallbackData returns the inline button payload for the language.
func (l Language) CallbackData() string {
	return LanguageCallbackPrefix + l.Code
}

// SupportedLanguages drives both the menu layout and callback validation.
var SupportedLanguages = []Language{
	{Code: "en", Label: "🇬🇧 English", Name: "English"},
	{Code: "ru", Label: "🇷🇺 Русский", Name: "Russian"},
	{Code: "es", Label: "🇪🇸 Español", Name: "Spanish"},
	{Code: "fr", Label: "🇫🇷 Français", Name: "French"},
	{Code: "de", Label: "🇩🇪 Deutsch", Name: "German"},
}

// FindLanguage looks a code up in SupportedLanguages.
func FindLanguage(code string) (Language, bool) {
	code = NormalizeLanguageCode(code)
	for _, l := range SupportedLanguages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// IsSupportedLanguage reports whether code is selectable from the menu.
func IsSupportedLanguage(code string) bool {
	_, ok := FindLanguage(code)
	return ok
}

// NormalizeLanguageCode lowercases and strips region parts ("fr-CA" -> "fr").
func NormalizeLanguageCode(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if idx := strings.IndexAny(code, "-_"); idx >= 0 {
		code = code[:idx]
	}
	return code
}

// LanguageName returns the English display name of a code. Codes outside
// the menu table (e.g. a stored value from an older deployment) are resolved
// through CLDR data; unparsable codes are returned as is.
func LanguageName(code string) string {
	if l, ok := FindLanguage(code); ok {
		return l.Name
	}
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	name := display.English.Languages().Name(tag)
	if name == "" {
		return code
	}
	return name
}

// ParseLanguageCallback extracts the code from "lang_<code>" callback data.
func ParseLanguageCallback(data string) (string, bool) {
	if !strings.HasPrefix(data, LanguageCallbackPrefix) {
		return "", false
	}
	code := strings.TrimPrefix(data, LanguageCallbackPrefix)
	if code == "" {
		return "", false
	}
	return code, true
}
