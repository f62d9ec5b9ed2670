package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/moneta-ai/moneta/internal/currency"
	"github.com/moneta-ai/moneta/internal/i18n"
	"github.com/moneta-ai/moneta/internal/onboarding"
)

// previewAmount is the sample amount shown on the currency page.
const previewAmount = 1234.56

// Model is the Bubble Tea model for the onboarding wizard. Every key
// event is translated into a session mutation; sequencing and validation
// stay inside the session.
type Model struct {
	session *onboarding.Session
	res     *i18n.Resolver
	styles  *Styles

	nameInput  textinput.Model
	bar        progress.Model
	currencies []currency.Code

	cursor    int
	showHint  bool
	cancelled bool
}

// NewModel creates a wizard model over an onboarding session.
func NewModel(session *onboarding.Session, res *i18n.Resolver, styles *Styles) Model {
	input := textinput.New()
	input.CharLimit = 64

	m := Model{
		session:    session,
		res:        res,
		styles:     styles,
		nameInput:  input,
		bar:        progress.New(progress.WithDefaultGradient()),
		currencies: currency.Supported(),
	}
	m.enterPage()
	return m
}

// Cancelled reports whether the user aborted the wizard.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := msg.Width - 4
		if width > 40 {
			width = 40
		}
		if width > 0 {
			m.bar.Width = width
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "shift+tab":
			m.session.Back()
			m.enterPage()
			return m, nil
		}

		if m.session.Done() {
			return m, tea.Quit
		}

		page := m.session.Sequencer().Current()
		if page.Kind == onboarding.PageName {
			return m.updateNamePage(msg)
		}
		return m.updateSelectPage(msg, page)
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// updateNamePage handles keys on the display-name page. Everything that
// is not navigation goes to the text input, and the state mirrors the
// input on every keystroke so the gate always sees the live value.
func (m Model) updateNamePage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		return m.advance()
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	m.session.SetUserName(m.nameInput.Value())
	m.showHint = false
	return m, cmd
}

// updateSelectPage handles keys on the language, currency, and question
// pages.
func (m Model) updateSelectPage(msg tea.KeyMsg, page onboarding.Page) (tea.Model, tea.Cmd) {
	count := m.optionCount(page)
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < count-1 {
			m.cursor++
		}
	case "left", "h":
		m.session.Back()
		m.enterPage()
	case "enter":
		m.applySelection(page)
		return m.advance()
	}
	return m, nil
}

// advance attempts a forward transition and quits on the terminal one.
func (m Model) advance() (tea.Model, tea.Cmd) {
	moved, err := m.session.Next()
	if err != nil || m.session.Done() {
		return m, tea.Quit
	}
	if !moved {
		m.showHint = true
		return m, nil
	}
	m.enterPage()
	return m, nil
}

// applySelection records the option under the cursor into the session.
func (m *Model) applySelection(page onboarding.Page) {
	switch page.Kind {
	case onboarding.PageLanguage:
		languages := m.session.State().Languages()
		if m.cursor < len(languages) {
			m.session.SelectLanguage(languages[m.cursor].Code)
		}
	case onboarding.PageCurrency:
		if m.cursor < len(m.currencies) {
			m.session.SelectCurrency(m.currencies[m.cursor])
		}
	case onboarding.PageQuestion:
		opts := page.Question.Options
		if m.cursor < len(opts) {
			m.session.SetAnswer(page.Question.ID, opts[m.cursor])
		}
	}
}

// enterPage re-syncs per-page widget state after a transition: the cursor
// moves to the current selection and the name input gains focus and a
// localized placeholder.
func (m *Model) enterPage() {
	m.showHint = false
	page := m.session.Sequencer().Current()
	state := m.session.State()

	switch page.Kind {
	case onboarding.PageLanguage:
		m.cursor = 0
		for i, lang := range state.Languages() {
			if lang.Code == state.LanguageCode() {
				m.cursor = i
			}
		}
		m.nameInput.Blur()
	case onboarding.PageName:
		m.nameInput.Placeholder = m.res.Resolve(m.lang(), "onboarding.name.placeholder")
		m.nameInput.SetValue(state.UserName())
		m.nameInput.Focus()
	case onboarding.PageCurrency:
		m.cursor = 0
		for i, code := range m.currencies {
			if code == state.Currency() {
				m.cursor = i
			}
		}
		m.nameInput.Blur()
	case onboarding.PageQuestion:
		m.cursor = 0
		if answer, ok := state.Answer(page.Question.ID); ok {
			for i, opt := range page.Question.Options {
				if opt == answer {
					m.cursor = i
				}
			}
		}
		m.nameInput.Blur()
	}
}

func (m Model) optionCount(page onboarding.Page) int {
	switch page.Kind {
	case onboarding.PageLanguage:
		return len(m.session.State().Languages())
	case onboarding.PageCurrency:
		return len(m.currencies)
	case onboarding.PageQuestion:
		return len(page.Question.Options)
	}
	return 0
}

// lang returns the language used for all rendered text. It always tracks
// the live selection, so revisiting the language page re-localizes every
// subsequent render.
func (m Model) lang() string {
	return m.session.State().LanguageCode()
}

// View implements tea.Model.
func (m Model) View() string {
	if m.cancelled {
		return ""
	}
	if m.session.Done() {
		return m.viewDone()
	}

	var b strings.Builder
	seq := m.session.Sequencer()
	lang := m.lang()

	b.WriteString(m.styles.Step.Render(m.res.Resolve(lang, "onboarding.progress", seq.Index()+1, seq.TotalPages())))
	b.WriteString("\n")
	b.WriteString(m.bar.ViewAs(seq.Progress()))
	b.WriteString("\n\n")

	page := seq.Current()
	switch page.Kind {
	case onboarding.PageLanguage:
		m.viewLanguage(&b, lang)
	case onboarding.PageName:
		m.viewName(&b, lang)
	case onboarding.PageCurrency:
		m.viewCurrency(&b, lang)
	case onboarding.PageQuestion:
		m.viewQuestion(&b, lang, page.Question)
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.helpLine(lang, seq)))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewLanguage(b *strings.Builder, lang string) {
	b.WriteString(m.styles.Title.Render(m.res.Resolve(lang, "onboarding.language.title")))
	b.WriteString("\n")
	b.WriteString(m.styles.Description.Render(m.res.Resolve(lang, "onboarding.language.description")))
	b.WriteString("\n\n")

	state := m.session.State()
	for i, opt := range state.Languages() {
		m.writeOption(b, i, opt.DisplayName, opt.Code == state.LanguageCode())
	}
}

func (m Model) viewName(b *strings.Builder, lang string) {
	b.WriteString(m.styles.Title.Render(m.res.Resolve(lang, "onboarding.name.title")))
	b.WriteString("\n\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n")
	if m.showHint {
		b.WriteString(m.styles.Error.Render(m.res.Resolve(lang, "onboarding.name.required")))
		b.WriteString("\n")
	}
}

func (m Model) viewCurrency(b *strings.Builder, lang string) {
	b.WriteString(m.styles.Title.Render(m.res.Resolve(lang, "onboarding.currency.title")))
	b.WriteString("\n")
	b.WriteString(m.styles.Description.Render(m.res.Resolve(lang, "onboarding.currency.description")))
	b.WriteString("\n\n")

	selected := m.session.State().Currency()
	for i, code := range m.currencies {
		spec := currency.FormatFor(code)
		label := string(code) + "  " + spec.Symbol
		m.writeOption(b, i, label, code == selected)
	}

	if m.cursor < len(m.currencies) {
		spec := currency.FormatFor(m.currencies[m.cursor])
		preview := m.res.Resolve(lang, "onboarding.currency.preview", spec.Symbol+" "+spec.Preview(previewAmount))
		b.WriteString("\n")
		b.WriteString(m.styles.Preview.Render(preview))
		b.WriteString("\n")
	}
}

func (m Model) viewQuestion(b *strings.Builder, lang string, q *onboarding.Question) {
	b.WriteString(m.styles.Title.Render(m.res.QuestionTitle(lang, string(q.ID))))
	b.WriteString("\n\n")

	answer, answered := m.session.State().Answer(q.ID)
	for i, opt := range q.Options {
		label := m.res.OptionLabel(lang, string(q.ID), string(opt))
		m.writeOption(b, i, label, answered && opt == answer)
	}
}

func (m Model) writeOption(b *strings.Builder, index int, label string, selected bool) {
	if index == m.cursor {
		b.WriteString(m.styles.Cursor.String())
	} else {
		b.WriteString("  ")
	}
	marker := "◇ "
	style := m.styles.Option
	if selected {
		marker = "◆ "
		style = m.styles.Selected
	}
	b.WriteString(style.Render(marker + label))
	b.WriteString("\n")
}

func (m Model) viewDone() string {
	lang := m.lang()
	name := strings.TrimSpace(m.session.State().UserName())

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.res.Resolve(lang, "onboarding.done.title", name)))
	b.WriteString("\n")
	b.WriteString(m.styles.Description.Render(m.res.Resolve(lang, "onboarding.done.body")))
	b.WriteString("\n")
	return b.String()
}

func (m Model) helpLine(lang string, seq *onboarding.Sequencer) string {
	next := m.res.Resolve(lang, "onboarding.next")
	if seq.IsLastPage() {
		next = m.res.Resolve(lang, "onboarding.submit")
	}
	parts := []string{"↑/↓", "Enter → " + next}
	if seq.CanGoBack() {
		parts = append(parts, "Shift+Tab → "+m.res.Resolve(lang, "onboarding.back"))
	}
	parts = append(parts, "Esc")
	return strings.Join(parts, " · ")
}
