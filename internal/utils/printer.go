package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NewPrinter returns a printer formatting numbers for the locale tag lang.
// Unparsable tags fall back to English.
func NewPrinter(lang string) *message.Printer {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag)
}
