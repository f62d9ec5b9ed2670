// Package ui renders the onboarding flow in the terminal and drives the
// onboarding session from key events. It is a consumer of the core: all
// sequencing and validation decisions stay in internal/onboarding.
package ui

import "github.com/charmbracelet/lipgloss"

// Brand palette (dark-terminal values).
const (
	colorPrimary = "#2DD4BF"
	colorSuccess = "#34D399"
	colorError   = "#F87171"
	colorText    = "#E5E7EB"
	colorMuted   = "#6B7280"
)

// Styles holds the lipgloss styles used by the wizard views.
type Styles struct {
	Title       lipgloss.Style
	Description lipgloss.Style
	Cursor      lipgloss.Style
	Option      lipgloss.Style
	Selected    lipgloss.Style
	Input       lipgloss.Style
	Preview     lipgloss.Style
	Error       lipgloss.Style
	Help        lipgloss.Style
	Step        lipgloss.Style
}

// NewStyles creates the default wizard styles.
func NewStyles() *Styles {
	primary := lipgloss.AdaptiveColor{Light: "#0D9488", Dark: colorPrimary}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: colorText}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: colorMuted}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: colorSuccess}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: colorError}

	return &Styles{
		Title:       lipgloss.NewStyle().Foreground(primary).Bold(true).MarginBottom(1),
		Description: lipgloss.NewStyle().Foreground(muted),
		Cursor:      lipgloss.NewStyle().Foreground(primary).SetString("▸ "),
		Option:      lipgloss.NewStyle().Foreground(text),
		Selected:    lipgloss.NewStyle().Foreground(green),
		Input:       lipgloss.NewStyle().Foreground(text),
		Preview:     lipgloss.NewStyle().Foreground(muted).Italic(true),
		Error:       lipgloss.NewStyle().Foreground(red),
		Help:        lipgloss.NewStyle().Foreground(muted),
		Step:        lipgloss.NewStyle().Foreground(muted),
	}
}

// NoColorStyles creates styles with no color or emphasis, for terminals
// without color support.
func NoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Title:       plain,
		Description: plain,
		Cursor:      lipgloss.NewStyle().SetString("> "),
		Option:      plain,
		Selected:    plain,
		Input:       plain,
		Preview:     plain,
		Error:       plain,
		Help:        plain,
		Step:        plain,
	}
}
