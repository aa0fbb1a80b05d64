package domain

import (
	"fmt"

	"golang.org/x/text/language"
)

// Locale is a two-letter language code used to select language-tagged literals.
type Locale string

// Supported locales.
const (
	LocaleEnglish Locale = "en"
	LocaleDutch   Locale = "nl"
)

// DefaultLocale is used when the caller does not request one.
const DefaultLocale = LocaleEnglish

var supportedLocales = []language.Tag{language.English, language.Dutch}

// String returns the language code.
func (l Locale) String() string { return string(l) }

// OrDefault returns l, or DefaultLocale when l is empty.
func (l Locale) OrDefault() Locale {
	if l == "" {
		return DefaultLocale
	}
	return l
}

// ParseLocale parses a BCP 47 tag ("nl", "nl-BE", "EN") into a supported Locale.
// An empty string yields DefaultLocale.
func ParseLocale(s string) (Locale, error) {
	if s == "" {
		return DefaultLocale, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidLocale, s)
	}
	base, _ := tag.Base()
	for _, supported := range supportedLocales {
		b, _ := supported.Base()
		if b == base {
			return Locale(base.String()), nil
		}
	}
	return "", fmt.Errorf("%w: %q is not supported", ErrInvalidLocale, s)
}
