package ui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/moneta-ai/moneta/internal/i18n"
	"github.com/moneta-ai/moneta/internal/onboarding"
)

// ErrCancelled is returned when the user aborts the wizard before the
// terminal transition. The session's partial state is simply discarded.
var ErrCancelled = errors.New("onboarding cancelled by user")

// Run executes the wizard for the given session. In headless mode the
// session is driven from stored defaults instead of key events.
func Run(session *onboarding.Session, res *i18n.Resolver, hm *HeadlessManager) error {
	if hm.IsHeadless() {
		return session.RunHeadless()
	}

	model := NewModel(session, res, NewStyles())
	program := tea.NewProgram(model)

	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("run onboarding ui: %w", err)
	}
	if m, ok := final.(Model); ok && m.Cancelled() {
		return ErrCancelled
	}
	if !session.Done() {
		return ErrCancelled
	}
	return nil
}
