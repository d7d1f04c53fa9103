// Package i18n resolves the active locale and looks up display strings.
// Translations are compiled into the binary; lookup falls back to the
// default locale and finally to the raw key so nothing is silently swallowed.
package i18n

import "strings"

// DefaultLocale is used whenever a locale is absent or unsupported.
const DefaultLocale = "fr"

var locales = []string{"en", "fr"}

// Supported reports whether locale is one of the site languages.
func Supported(locale string) bool {
	for _, l := range locales {
		if l == locale {
			return true
		}
	}
	return false
}

// Resolve returns locale if supported, the default locale otherwise.
func Resolve(locale string) string {
	if Supported(locale) {
		return locale
	}
	return DefaultLocale
}

// FromPath extracts the locale prefix from a URL path ("/en/booking" -> "en").
func FromPath(path string) (string, bool) {
	for _, l := range locales {
		if path == "/"+l || strings.HasPrefix(path, "/"+l+"/") {
			return l, true
		}
	}
	return "", false
}

// FromAcceptLanguage picks a locale from an Accept-Language header value,
// looking only at the primary subtag of the first listed language.
func FromAcceptLanguage(header string) string {
	if header == "" {
		return DefaultLocale
	}
	lang := strings.SplitN(header, ",", 2)[0]
	lang = strings.SplitN(lang, "-", 2)[0]
	return Resolve(strings.TrimSpace(strings.ToLower(lang)))
}

// T returns the translation for key in locale. Missing entries fall back to
// the default locale, then to the key itself.
func T(locale, key string) string {
	if v, ok := translations[Resolve(locale)][key]; ok {
		return v
	}
	if v, ok := translations[DefaultLocale][key]; ok {
		return v
	}
	return key
}
