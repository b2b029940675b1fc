package service

import (
	"strings"

	"golang.org/x/text/language"
)

// Translator looks up UI strings and fills {placeholders}.
type Translator interface {
	Translate(locale, text string, vars map[string]string) string
}

// Catalog is a Translator backed by in-memory messages keyed by base
// language. Missing messages fall back to the source text.
type Catalog map[string]map[string]string

// DefaultTranslator returns the built-in catalog.
func DefaultTranslator() Catalog {
	return Catalog{
		"fa": {weekTitle: "هفته {number} از {year}"},
		"de": {weekTitle: "Woche {number} von {year}"},
		"fr": {weekTitle: "Semaine {number} de {year}"},
		"es": {weekTitle: "Semana {number} de {year}"},
	}
}

func (c Catalog) Translate(locale, text string, vars map[string]string) string {
	message := text
	if tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-")); err == nil {
		base, _ := tag.Base()
		if translated, ok := c[base.String()][text]; ok {
			message = translated
		}
	}

	for key, value := range vars {
		message = strings.ReplaceAll(message, "{"+key+"}", value)
	}
	return message
}
