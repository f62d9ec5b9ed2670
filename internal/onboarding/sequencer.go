package onboarding

// PageKind classifies the pages of the flow.
type PageKind int

const (
	// PageLanguage is the language-selection page.
	PageLanguage PageKind = iota
	// PageName is the display-name entry page.
	PageName
	// PageCurrency is the currency-selection page.
	PageCurrency
	// PageQuestion is one survey-question page.
	PageQuestion
)

// prefixPageCount is the number of fixed pages before the survey
// questions: language, name, currency. Fixed policy, not configurable.
const prefixPageCount = 3

// Page is one entry of the flow's enumerated page list.
type Page struct {
	Kind     PageKind
	Question *Question // set only when Kind == PageQuestion
}

// BuildPages enumerates the full page list for a question catalog:
// the three prefix pages followed by one page per question, in catalog
// order. All page arithmetic lives here; nothing else in the module
// reasons about page offsets.
func BuildPages(questions []Question) []Page {
	pages := make([]Page, 0, prefixPageCount+len(questions))
	pages = append(pages,
		Page{Kind: PageLanguage},
		Page{Kind: PageName},
		Page{Kind: PageCurrency},
	)
	for i := range questions {
		pages = append(pages, Page{Kind: PageQuestion, Question: &questions[i]})
	}
	return pages
}

// Sequencer owns the current page index over an enumerated page list.
// Only adjacent transitions are permitted: no page is skippable and
// there is no random access.
type Sequencer struct {
	pages []Page
	index int
}

// NewSequencer creates a Sequencer positioned on the first page.
func NewSequencer(pages []Page) *Sequencer {
	return &Sequencer{pages: pages}
}

// Index returns the current page index.
func (s *Sequencer) Index() int {
	return s.index
}

// TotalPages returns the number of pages in the flow.
func (s *Sequencer) TotalPages() int {
	return len(s.pages)
}

// Current returns the current page.
func (s *Sequencer) Current() Page {
	return s.pages[s.index]
}

// PageAt returns the page at index and whether index is in range.
func (s *Sequencer) PageAt(index int) (Page, bool) {
	if index < 0 || index >= len(s.pages) {
		return Page{}, false
	}
	return s.pages[index], true
}

// CanGoBack reports whether a backward transition is possible.
func (s *Sequencer) CanGoBack() bool {
	return s.index > 0
}

// GoBack moves one page back. On the first page it is a no-op.
func (s *Sequencer) GoBack() {
	if s.index > 0 {
		s.index--
	}
}

// GoForward moves one page forward and reports whether the move was the
// terminal transition. On the last page the index does not change and
// GoForward returns true: forward navigation and submission are the same
// gesture, disambiguated by position.
func (s *Sequencer) GoForward() (terminal bool) {
	if s.IsLastPage() {
		return true
	}
	s.index++
	return false
}

// IsLastPage reports whether the current page is the final one.
func (s *Sequencer) IsLastPage() bool {
	return s.index == len(s.pages)-1
}

// Progress returns the display progress fraction, clamped to [0, 1].
// It is monotonically non-decreasing as the index grows.
func (s *Sequencer) Progress() float64 {
	if len(s.pages) == 0 {
		return 0
	}
	done := s.index + 1
	if done > len(s.pages) {
		done = len(s.pages)
	}
	return float64(done) / float64(len(s.pages))
}
