package onboarding

import (
	"log/slog"
	"time"

	"github.com/moneta-ai/moneta/internal/currency"
	"github.com/moneta-ai/moneta/internal/prefs"
)

// CompleteFunc receives the Result at the terminal transition. Ownership
// of the Result passes to the callback; whatever I/O it performs is
// outside the session's concern.
type CompleteFunc func(*Result)

// Session is one run of the onboarding flow: the mutable State, the page
// Sequencer, the validation Gate, and the preference store wired together.
// User interaction mutates State, the Gate re-validates, the Sequencer
// allows or blocks the transition, and the final forward gesture builds
// the Result and hands it to the completion callback exactly once.
type Session struct {
	state      *State
	seq        *Sequencer
	gate       Gate
	store      prefs.Store
	onComplete CompleteFunc
	now        func() time.Time
	done       bool
}

// NewSession creates a session over the given catalogs, seeding language
// and currency from previously persisted preferences.
func NewSession(questions []Question, languages []LanguageOption, store prefs.Store, onComplete CompleteFunc) *Session {
	seed, _ := store.Get(prefs.KeyCurrency)
	state := NewState(questions, languages, seed)

	if code, ok := store.Get(prefs.KeyLanguage); ok {
		state.SelectLanguage(code)
	}

	pages := BuildPages(questions)
	return &Session{
		state:      state,
		seq:        NewSequencer(pages),
		gate:       NewGate(pages),
		store:      store,
		onComplete: onComplete,
		now:        time.Now,
	}
}

// State returns the session's mutable state.
func (s *Session) State() *State {
	return s.state
}

// Sequencer returns the session's page sequencer.
func (s *Session) Sequencer() *Sequencer {
	return s.seq
}

// Done reports whether the session has emitted its Result.
func (s *Session) Done() bool {
	return s.done
}

// SelectLanguage selects a catalog language.
func (s *Session) SelectLanguage(code string) bool {
	return s.state.SelectLanguage(code)
}

// SetUserName stores the display name.
func (s *Session) SetUserName(name string) {
	s.state.SetUserName(name)
}

// SelectCurrency stores the (coerced) currency selection and immediately
// persists the code and its derived number-format pattern. The writes are
// fire-and-forget: they happen on selection, not on completion, and a
// failed write never blocks the flow.
func (s *Session) SelectCurrency(code currency.Code) {
	s.state.SelectCurrency(code)

	selected := s.state.Currency()
	spec := currency.FormatFor(selected)
	if err := s.store.Set(prefs.KeyCurrency, string(selected)); err != nil {
		slog.Warn("persist currency preference", "error", err)
	}
	if err := s.store.Set(prefs.KeyNumberFormat, spec.Pattern); err != nil {
		slog.Warn("persist number format preference", "error", err)
	}
}

// SetAnswer records an answer to a survey question.
func (s *Session) SetAnswer(id QuestionID, option OptionID) bool {
	return s.state.SetAnswer(id, option)
}

// NextEnabled reports whether forward navigation is allowed from the
// current page.
func (s *Session) NextEnabled() bool {
	return s.gate.NextEnabled(s.seq.Index(), s.state)
}

// Back moves one page back. A no-op on the first page.
func (s *Session) Back() {
	s.seq.GoBack()
}

// Next attempts a forward transition. It reports false when the gate
// blocks it. On the last page a permitted transition is terminal: the
// Result is built, the completion callback runs once, and the session
// is done. Advancing a finished session returns ErrAlreadyCompleted.
func (s *Session) Next() (moved bool, err error) {
	if s.done {
		return false, ErrAlreadyCompleted
	}
	if !s.NextEnabled() {
		return false, nil
	}
	if !s.seq.GoForward() {
		return true, nil
	}

	result, err := BuildResult(s.state, s.now())
	if err != nil {
		// Unreachable when the gate passed on every page; surface the
		// caller bug instead of emitting a partial result.
		return false, err
	}
	s.done = true
	if s.onComplete != nil {
		s.onComplete(result)
	}
	return true, nil
}

// RunHeadless drives the whole flow from stored defaults: language and
// name come from preferences, currency from the stored preference seed,
// and each question from an "answer.<id>" preference. It fails with
// ErrHeadlessDefaults when the defaults cannot satisfy every gate.
func (s *Session) RunHeadless() error {
	if code, ok := s.store.Get(prefs.KeyLanguage); ok {
		s.SelectLanguage(code)
	}
	if name, ok := s.store.Get(prefs.KeyUserName); ok {
		s.SetUserName(name)
	}
	s.SelectCurrency(s.state.Currency())
	for _, q := range s.state.Questions() {
		if v, ok := s.store.Get("answer." + string(q.ID)); ok {
			s.SetAnswer(q.ID, OptionID(v))
		}
	}

	for !s.done {
		moved, err := s.Next()
		if err != nil {
			return err
		}
		if !moved {
			return ErrHeadlessDefaults
		}
	}
	return nil
}
