package onboarding

import "strings"

// Gate decides whether forward navigation is allowed from a given page.
// It is a pure function of the page list and the State: no side effects,
// no hidden time or I/O dependency, cheap enough to query on every render.
type Gate struct {
	pages []Page
}

// NewGate creates a Gate over the flow's enumerated page list.
func NewGate(pages []Page) Gate {
	return Gate{pages: pages}
}

// NextEnabled reports whether "Next" is enabled on the page at index.
// Out-of-range indexes fall back to the overall completeness predicate.
func (g Gate) NextEnabled(index int, s *State) bool {
	if index < 0 || index >= len(g.pages) {
		return s.Complete()
	}
	switch page := g.pages[index]; page.Kind {
	case PageLanguage:
		return s.Language() != nil
	case PageName:
		return strings.TrimSpace(s.UserName()) != ""
	case PageCurrency:
		return strings.TrimSpace(string(s.Currency())) != ""
	case PageQuestion:
		_, ok := s.Answer(page.Question.ID)
		return ok
	}
	return s.Complete()
}
