package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// HeadlessManager decides whether the CLI may prompt and animate.
type HeadlessManager struct {
	forced *bool
	input  *os.File
	output *os.File
}

// NewHeadlessManager creates a HeadlessManager that inspects os.Stdin and
// os.Stderr.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{input: os.Stdin, output: os.Stderr}
}

// IsHeadless returns true when the UI should operate in headless mode.
// ForceHeadless overrides TTY detection. Otherwise, it checks whether
// os.Stdin is connected to a terminal.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	return !isTerminal(h.input)
}

// CanAnimate reports whether the spinner may redraw the output terminal.
func (h *HeadlessManager) CanAnimate() bool {
	if h.forced != nil {
		return !*h.forced
	}
	return isTerminal(h.output)
}

// ForceHeadless overrides TTY detection. Pass true to force headless mode,
// or false to force interactive mode regardless of TTY state.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
