package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// HeadlessManager decides whether the wizard runs interactively or from
// stored defaults. Detection follows the TTY state of os.Stdin unless
// explicitly forced (e.g. by the --headless flag).
type HeadlessManager struct {
	forced *bool
}

// NewHeadlessManager creates a HeadlessManager using automatic TTY detection.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{}
}

// IsHeadless returns true when the wizard should run non-interactively.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	return !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// ForceHeadless overrides TTY detection. Pass true to force headless mode,
// or false to force interactive mode regardless of TTY state.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}

// ClearForce removes any forced override, reverting to TTY detection.
func (h *HeadlessManager) ClearForce() {
	h.forced = nil
}
