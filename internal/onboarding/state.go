package onboarding

import (
	"maps"
	"strings"

	"github.com/moneta-ai/moneta/internal/currency"
)

// State holds the mutable answer set collected during one session:
// selected language, display name, selected currency, and one answer per
// survey question. It is owned by the session and mutated only from UI
// event handlers on the main event loop; no locking is needed.
type State struct {
	questions []Question
	languages []LanguageOption

	language *LanguageOption
	userName string
	currency currency.Code
	answers  map[QuestionID]OptionID
}

// NewState creates an empty State over the given catalogs. The currency
// seed (typically a persisted preference) is coerced to the supported
// list; anything unknown becomes the default.
func NewState(questions []Question, languages []LanguageOption, currencySeed string) *State {
	return &State{
		questions: questions,
		languages: languages,
		currency:  currency.Normalize(currencySeed),
		answers:   make(map[QuestionID]OptionID, len(questions)),
	}
}

// Questions returns the survey catalog backing this state.
func (s *State) Questions() []Question {
	return s.questions
}

// Languages returns the language catalog backing this state.
func (s *State) Languages() []LanguageOption {
	return s.languages
}

// Language returns the selected language, or nil when none is selected.
func (s *State) Language() *LanguageOption {
	return s.language
}

// LanguageCode returns the selected language code, or "" when unset.
func (s *State) LanguageCode() string {
	if s.language == nil {
		return ""
	}
	return s.language.Code
}

// SelectLanguage selects the catalog language with the given code.
// Codes outside the catalog are ignored and reported as false.
func (s *State) SelectLanguage(code string) bool {
	lang := LanguageByCode(s.languages, code)
	if lang == nil {
		return false
	}
	s.language = lang
	return true
}

// UserName returns the display name as entered, untrimmed.
func (s *State) UserName() string {
	return s.userName
}

// SetUserName stores the display name. Trimming happens at validation
// and result-build time, not here, so the text field can echo exactly
// what the user typed.
func (s *State) SetUserName(name string) {
	s.userName = name
}

// Currency returns the selected currency code.
func (s *State) Currency() currency.Code {
	return s.currency
}

// SelectCurrency stores code, coercing unsupported values to the default.
func (s *State) SelectCurrency(code currency.Code) {
	s.currency = currency.Normalize(string(code))
}

// Answer returns the recorded answer for a question.
func (s *State) Answer(id QuestionID) (OptionID, bool) {
	opt, ok := s.answers[id]
	return opt, ok
}

// SetAnswer records option as the answer to question id, overwriting any
// previous answer. Question ids outside the catalog, and options outside
// the question's option list, are ignored: the invariant that answers
// only reference catalog entries holds no matter what the caller passes.
func (s *State) SetAnswer(id QuestionID, option OptionID) bool {
	q := QuestionByID(s.questions, id)
	if q == nil || !q.HasOption(option) {
		return false
	}
	s.answers[id] = option
	return true
}

// Answers returns a copy of the recorded answers.
func (s *State) Answers() map[QuestionID]OptionID {
	out := make(map[QuestionID]OptionID, len(s.answers))
	maps.Copy(out, s.answers)
	return out
}

// Complete reports whether every page's requirement is satisfied:
// language selected, trimmed name non-empty, currency set, and one
// answer per catalog question.
func (s *State) Complete() bool {
	if s.language == nil {
		return false
	}
	if strings.TrimSpace(s.userName) == "" {
		return false
	}
	if strings.TrimSpace(string(s.currency)) == "" {
		return false
	}
	for _, q := range s.questions {
		if _, ok := s.answers[q.ID]; !ok {
			return false
		}
	}
	return true
}
