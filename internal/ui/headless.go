package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// HeadlessManager decides whether prompts and full-screen views may be
// shown. Forms need a terminal on both stdin and stdout.
type HeadlessManager struct {
	forced *bool
	stdin  uintptr
	stdout uintptr
}

// NewHeadlessManager creates a HeadlessManager that inspects os.Stdin and
// os.Stdout.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{stdin: os.Stdin.Fd(), stdout: os.Stdout.Fd()}
}

// IsHeadless returns true when no interactive UI should be started.
// ForceHeadless overrides terminal detection.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	return !isTerminal(h.stdin) || !isTerminal(h.stdout)
}

// ForceHeadless overrides terminal detection. Pass true to force headless
// mode, or false to force interactive mode regardless of terminal state.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}

// ClearForce reverts to automatic terminal detection.
func (h *HeadlessManager) ClearForce() {
	h.forced = nil
}

// StdoutIsTerminal reports whether stdout is a terminal, which decides
// whether colour is emitted by default.
func (h *HeadlessManager) StdoutIsTerminal() bool {
	return isTerminal(h.stdout)
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
