package ui

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// HeadlessManager decides whether prompts such as the init form may read
// from the terminal.
type HeadlessManager struct {
	forced *bool
	in     *os.File
}

// NewHeadlessManager returns a manager that looks at os.Stdin.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{in: os.Stdin}
}

// IsHeadless reports whether prompts must be skipped: a forced value wins,
// otherwise stdin must be a terminal for prompts to run.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	return !IsTerminal(h.in)
}

// ForceHeadless pins the answer of IsHeadless.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}

// ClearForce returns to stdin detection.
func (h *HeadlessManager) ClearForce() {
	h.forced = nil
}

// IsTerminal reports whether w is a file connected to a terminal.
func IsTerminal(w any) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	if file, isFile := w.(*os.File); isFile && file == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ColorEnabled reports whether coloured output should be written to w.
func ColorEnabled(w io.Writer, noColor bool) bool {
	return !noColor && IsTerminal(w)
}
