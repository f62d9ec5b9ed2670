package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/moneta-ai/moneta/internal/i18n"
	"github.com/moneta-ai/moneta/internal/onboarding"
	"github.com/moneta-ai/moneta/internal/prefs"
)

func newTestModel(onComplete onboarding.CompleteFunc) (Model, *onboarding.Session) {
	store := prefs.NewMemStore(nil)
	session := onboarding.NewSession(
		onboarding.DefaultQuestions(),
		onboarding.DefaultLanguages(),
		store,
		onComplete,
	)
	return NewModel(session, i18n.NewResolver(), NoColorStyles()), session
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return next
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	return press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

var (
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyDown     = tea.KeyMsg{Type: tea.KeyDown}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestWizardCompletesFlow(t *testing.T) {
	var result *onboarding.Result
	m, session := newTestModel(func(r *onboarding.Result) { result = r })

	// Language page: confirm the first option (en).
	m = press(t, m, keyEnter)
	if session.Sequencer().Index() != 1 {
		t.Fatalf("expected name page after language selection, at %d", session.Sequencer().Index())
	}

	// Name page.
	m = typeText(t, m, "Ana")
	m = press(t, m, keyEnter)
	if session.Sequencer().Index() != 2 {
		t.Fatalf("expected currency page after name entry, at %d", session.Sequencer().Index())
	}

	// Currency page: confirm the highlighted default.
	m = press(t, m, keyEnter)

	// One enter per question page confirms the highlighted option.
	for range session.State().Questions() {
		m = press(t, m, keyEnter)
	}

	if !session.Done() {
		t.Fatal("session should be done after the last page")
	}
	if result == nil {
		t.Fatal("completion callback did not run")
	}
	if result.UserName != "Ana" || result.LanguageCode != "en" || result.CurrencyCode != "USD" {
		t.Errorf("unexpected result: %+v", result)
	}
	if m.Cancelled() {
		t.Error("completed wizard should not be cancelled")
	}
}

func TestWizardGateBlocksEmptyName(t *testing.T) {
	m, session := newTestModel(nil)

	m = press(t, m, keyEnter) // language
	m = press(t, m, keyEnter) // name page with empty input

	if session.Sequencer().Index() != 1 {
		t.Errorf("empty name advanced the wizard to %d", session.Sequencer().Index())
	}
	if !m.showHint {
		t.Error("blocked transition should show the required hint")
	}

	// Typing clears the hint and unblocks.
	m = typeText(t, m, "A")
	if m.showHint {
		t.Error("hint should clear on input")
	}
	m = press(t, m, keyEnter)
	if session.Sequencer().Index() != 2 {
		t.Errorf("valid name did not advance: at %d", session.Sequencer().Index())
	}
}

func TestWizardBackNavigation(t *testing.T) {
	m, session := newTestModel(nil)

	m = press(t, m, keyEnter) // to name page
	m = press(t, m, keyShiftTab)

	if session.Sequencer().Index() != 0 {
		t.Errorf("shift+tab did not go back: at %d", session.Sequencer().Index())
	}

	// Back on the first page stays put.
	m = press(t, m, keyShiftTab)
	if session.Sequencer().Index() != 0 {
		t.Errorf("back on first page moved to %d", session.Sequencer().Index())
	}
	_ = m
}

func TestWizardEscCancels(t *testing.T) {
	m, session := newTestModel(nil)

	m = press(t, m, keyEsc)
	if !m.Cancelled() {
		t.Error("esc should cancel the wizard")
	}
	if session.Done() {
		t.Error("cancelled wizard must not complete the session")
	}
}

func TestWizardRelocalizesAfterLanguageChange(t *testing.T) {
	m, _ := newTestModel(nil)

	// Move the cursor to Spanish and confirm.
	m = press(t, m, keyDown)
	m = press(t, m, keyEnter)

	view := m.View()
	if !strings.Contains(view, "¿Cómo quieres que te llamemos?") {
		t.Errorf("name page not rendered in Spanish:\n%s", view)
	}

	// Going back and picking English re-localizes immediately.
	m = press(t, m, keyShiftTab)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = press(t, m, keyEnter)
	view = m.View()
	if strings.Contains(view, "¿Cómo quieres que te llamemos?") {
		t.Errorf("view still Spanish after switching back")
	}
	if !strings.Contains(view, "What should we call you?") {
		t.Errorf("name page not rendered in English:\n%s", view)
	}
}

func TestWizardCurrencyPreview(t *testing.T) {
	m, _ := newTestModel(nil)

	m = press(t, m, keyEnter) // language
	m = typeText(t, m, "Ana")
	m = press(t, m, keyEnter) // to currency page

	view := m.View()
	if !strings.Contains(view, "1,234.56") {
		t.Errorf("currency page missing preview for the highlighted code:\n%s", view)
	}
}

func TestHeadlessManagerForce(t *testing.T) {
	hm := NewHeadlessManager()

	hm.ForceHeadless(true)
	if !hm.IsHeadless() {
		t.Error("forced headless should report headless")
	}
	hm.ForceHeadless(false)
	if hm.IsHeadless() {
		t.Error("forced interactive should report interactive")
	}
	hm.ClearForce()
}
