package onboarding

import (
	"errors"
	"testing"

	"github.com/moneta-ai/moneta/internal/prefs"
)

func newTestSession(seed map[string]string, onComplete CompleteFunc) (*Session, *prefs.MemStore) {
	store := prefs.NewMemStore(seed)
	return NewSession(DefaultQuestions(), DefaultLanguages(), store, onComplete), store
}

// driveToCompletion fills every page and walks forward to the terminal
// transition.
func driveToCompletion(t *testing.T, s *Session) {
	t.Helper()

	s.SelectLanguage("en")
	if moved, _ := s.Next(); !moved {
		t.Fatal("language page blocked after selection")
	}
	s.SetUserName("Ana")
	if moved, _ := s.Next(); !moved {
		t.Fatal("name page blocked after entry")
	}
	s.SelectCurrency("EUR")
	if moved, _ := s.Next(); !moved {
		t.Fatal("currency page blocked after selection")
	}
	for _, q := range s.State().Questions() {
		s.SetAnswer(q.ID, q.Options[0])
		if moved, err := s.Next(); !moved || err != nil {
			t.Fatalf("question page %q blocked: moved=%v err=%v", q.ID, moved, err)
		}
	}
}

func TestSessionSeedsFromPreferences(t *testing.T) {
	session, _ := newTestSession(map[string]string{
		prefs.KeyLanguage: "de",
		prefs.KeyCurrency: "JPY",
	}, nil)

	if session.State().LanguageCode() != "de" {
		t.Errorf("language seed not applied: %q", session.State().LanguageCode())
	}
	if session.State().Currency() != "JPY" {
		t.Errorf("currency seed not applied: %q", session.State().Currency())
	}
}

func TestSessionSeedCoercesUnknownCurrency(t *testing.T) {
	session, _ := newTestSession(map[string]string{prefs.KeyCurrency: "XYZ"}, nil)

	if session.State().Currency() != "USD" {
		t.Errorf("unknown stored currency should coerce to USD, got %q", session.State().Currency())
	}
}

func TestSessionBlocksUntilPageValid(t *testing.T) {
	session, _ := newTestSession(nil, nil)

	if moved, err := session.Next(); moved || err != nil {
		t.Fatalf("Next on empty language page: moved=%v err=%v", moved, err)
	}
	if session.Sequencer().Index() != 0 {
		t.Errorf("blocked Next moved the index to %d", session.Sequencer().Index())
	}

	session.SelectLanguage("en")
	if moved, _ := session.Next(); !moved {
		t.Error("Next should move once the gate passes")
	}
}

func TestSessionCurrencySelectionPersistsPreferences(t *testing.T) {
	session, store := newTestSession(nil, nil)

	session.SelectCurrency("EUR")

	if code, _ := store.Get(prefs.KeyCurrency); code != "EUR" {
		t.Errorf("currency preference = %q, want %q", code, "EUR")
	}
	if pattern, _ := store.Get(prefs.KeyNumberFormat); pattern != "#.##0,00" {
		t.Errorf("number format preference = %q, want %q", pattern, "#.##0,00")
	}

	// Writes happen on selection, not on completion.
	if session.Done() {
		t.Error("session must not be done after a currency selection")
	}
}

func TestSessionEmitsResultOnce(t *testing.T) {
	var results []*Result
	session, _ := newTestSession(nil, func(r *Result) { results = append(results, r) })

	driveToCompletion(t, session)

	if !session.Done() {
		t.Fatal("session should be done after the terminal transition")
	}
	if len(results) != 1 {
		t.Fatalf("expected exactly one result, got %d", len(results))
	}
	if results[0].UserName != "Ana" || results[0].CurrencyCode != "EUR" {
		t.Errorf("unexpected result: %+v", results[0])
	}

	if _, err := session.Next(); !errors.Is(err, ErrAlreadyCompleted) {
		t.Errorf("Next after completion = %v, want ErrAlreadyCompleted", err)
	}
	if len(results) != 1 {
		t.Errorf("result emitted more than once: %d", len(results))
	}
}

func TestSessionLanguageChangeKeepsAnswers(t *testing.T) {
	session, _ := newTestSession(nil, nil)

	session.SelectLanguage("en")
	session.Next()
	session.SetUserName("Ana")
	session.Next()
	session.SelectCurrency("USD")
	session.Next()
	for _, q := range session.State().Questions() {
		session.SetAnswer(q.ID, q.Options[0])
		if !session.Sequencer().IsLastPage() {
			session.Next()
		}
	}

	// Walk back to the language page and switch language.
	for session.Sequencer().CanGoBack() {
		session.Back()
	}
	session.SelectLanguage("fr")

	if got := len(session.State().Answers()); got != len(session.State().Questions()) {
		t.Errorf("answers lost after language change: %d remain", got)
	}
	if session.State().LanguageCode() != "fr" {
		t.Errorf("language change not applied: %q", session.State().LanguageCode())
	}
}

func TestSessionRunHeadless(t *testing.T) {
	var result *Result
	session, _ := newTestSession(map[string]string{
		prefs.KeyLanguage:         "es",
		prefs.KeyUserName:         "Ana",
		prefs.KeyCurrency:         "MXN",
		"answer.primary_goal":     "save_more",
		"answer.experience_level": "beginner",
		"answer.spending_focus":   "essentials",
		"answer.referral_source":  "friend",
	}, func(r *Result) { result = r })

	if err := session.RunHeadless(); err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if result == nil {
		t.Fatal("headless run did not emit a result")
	}
	if result.LanguageCode != "es" || result.CurrencyCode != "MXN" || result.UserName != "Ana" {
		t.Errorf("unexpected headless result: %+v", result)
	}
}

func TestSessionRunHeadlessIncompleteDefaults(t *testing.T) {
	session, _ := newTestSession(map[string]string{
		prefs.KeyLanguage: "es",
		// No name, no answers.
	}, nil)

	if err := session.RunHeadless(); !errors.Is(err, ErrHeadlessDefaults) {
		t.Errorf("RunHeadless = %v, want ErrHeadlessDefaults", err)
	}
	if session.Done() {
		t.Error("failed headless run must not complete the session")
	}
}
