// Package i18n resolves display text for the onboarding flow.
//
// Lookups walk a fixed fallback chain: requested language, then English,
// then the raw identifier itself. Resolution never fails and never blocks,
// so a missing translation degrades to a readable identifier instead of
// interrupting the flow.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLanguage is the table of record; every key exists here.
const DefaultLanguage = "en"

// supportedTags lists the languages with translation tables, default first.
var supportedTags = []language.Tag{
	language.English,
	language.Spanish,
	language.German,
	language.French,
}

var matcher = language.NewMatcher(supportedTags)

// Resolver resolves (language, key) pairs to display text. It holds no
// per-session state keyed by language, so switching language mid-session
// immediately affects every subsequent lookup.
type Resolver struct {
	printers map[string]*message.Printer
}

// NewResolver creates a Resolver with printers for all supported languages.
func NewResolver() *Resolver {
	printers := make(map[string]*message.Printer, len(supportedTags))
	for _, tag := range supportedTags {
		base, _ := tag.Base()
		printers[base.String()] = message.NewPrinter(tag)
	}
	return &Resolver{printers: printers}
}

// Normalize maps an arbitrary BCP 47 code ("es-MX", "de_AT", "xx") to the
// closest supported table language, defaulting to English.
func (r *Resolver) Normalize(code string) string {
	if code == "" {
		return DefaultLanguage
	}
	tag, _ := language.MatchStrings(matcher, code)
	base, _ := tag.Base()
	if _, ok := tables[base.String()]; ok {
		return base.String()
	}
	return DefaultLanguage
}

// Resolve returns the text for key in lang. Parameterized entries are
// rendered with the language's message printer so numbers pick up the
// right grouping (e.g. "Conversations (1,204)").
func (r *Resolver) Resolve(lang, key string, args ...any) string {
	format := r.lookup(lang, key)
	if len(args) == 0 {
		return format
	}
	return r.printerFor(lang).Sprintf(format, args...)
}

// QuestionTitle returns the localized title of a survey question,
// degrading to the question id when no table entry exists.
func (r *Resolver) QuestionTitle(lang, questionID string) string {
	key := "question." + questionID + ".title"
	if text := r.lookup(lang, key); text != key {
		return text
	}
	return questionID
}

// OptionLabel returns the localized label of one option of a question,
// degrading to the option id when no table entry exists.
func (r *Resolver) OptionLabel(lang, questionID, optionID string) string {
	key := "question." + questionID + ".option." + optionID
	if text := r.lookup(lang, key); text != key {
		return text
	}
	return optionID
}

// lookup walks the fallback chain: lang -> en -> raw key.
func (r *Resolver) lookup(lang, key string) string {
	lang = r.Normalize(lang)
	if table, ok := tables[lang]; ok {
		if text, ok := table[key]; ok {
			return text
		}
	}
	if text, ok := tables[DefaultLanguage][key]; ok {
		return text
	}
	return key
}

func (r *Resolver) printerFor(lang string) *message.Printer {
	if p, ok := r.printers[r.Normalize(lang)]; ok {
		return p
	}
	return r.printers[DefaultLanguage]
}
