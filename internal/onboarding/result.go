package onboarding

import (
	"strings"
	"time"

	"github.com/moneta-ai/moneta/internal/currency"
)

// Result is the immutable outcome of one completed session. Answers are
// copied out of the live State, so mutating the session afterwards cannot
// change an already-emitted Result.
type Result struct {
	LanguageCode string
	UserName     string
	CurrencyCode currency.Code
	Answers      map[QuestionID]OptionID
	CompletedAt  time.Time
}

// BuildResult assembles the Result from a complete State. Calling it on
// an incomplete State is a programming error and returns ErrIncomplete;
// the gate and sequencer make that unreachable from the UI.
func BuildResult(s *State, now time.Time) (*Result, error) {
	if !s.Complete() {
		return nil, ErrIncomplete
	}
	return &Result{
		LanguageCode: s.LanguageCode(),
		UserName:     strings.TrimSpace(s.UserName()),
		CurrencyCode: s.Currency(),
		Answers:      s.Answers(),
		CompletedAt:  now,
	}, nil
}
