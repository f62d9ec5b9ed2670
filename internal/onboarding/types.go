// Package onboarding implements the multi-page onboarding flow of the
// finance assistant: fixed prefix pages (language, name, currency)
// followed by one page per survey question, emitting a single immutable
// Result at the terminal transition.
package onboarding

import "errors"

// QuestionID identifies a survey question.
type QuestionID string

// OptionID identifies one selectable answer within a question.
type OptionID string

// LanguageOption is one entry of the fixed language catalog.
// Identity is the code.
type LanguageOption struct {
	Code        string
	DisplayName string
}

// Question is one entry of the fixed survey catalog. Options are ordered;
// their order is the display order. Catalogs are immutable for the
// lifetime of a session.
type Question struct {
	ID      QuestionID
	Options []OptionID
}

// HasOption reports whether id is one of the question's options.
func (q Question) HasOption(id OptionID) bool {
	for _, opt := range q.Options {
		if opt == id {
			return true
		}
	}
	return false
}

// Error definitions for the onboarding package.
var (
	// ErrIncomplete is returned when a Result is requested before every
	// page's requirement is satisfied. Reaching it indicates a caller bug:
	// the gate and sequencer together make it unreachable from the UI.
	ErrIncomplete = errors.New("onboarding: result requested before flow is complete")
	// ErrAlreadyCompleted is returned when a session that has already
	// emitted its Result is asked to advance again.
	ErrAlreadyCompleted = errors.New("onboarding: session already completed")
	// ErrHeadlessDefaults is returned when a headless run cannot assemble
	// a complete answer set from stored defaults.
	ErrHeadlessDefaults = errors.New("onboarding: stored defaults do not cover every page")
)
