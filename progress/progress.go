// Package progress renders an overwritable percent-complete line on a
// terminal.
package progress

import (
	"fmt"
	"io"
	"strings"
)

// Printer writes "Reading: N%" over itself using carriage returns. A nil or
// disabled Printer is a no-op, so callers can pass it around unconditionally.
type Printer struct {
	w       io.Writer
	enabled bool
	lastLen int
}

// NewPrinter builds a Printer over w. enabled=false yields a no-op.
func NewPrinter(w io.Writer, enabled bool) *Printer {
	return &Printer{w: w, enabled: enabled}
}

// Update rewrites the status line with the given percentage.
func (p *Printer) Update(percent int) {
	if p == nil || !p.enabled {
		return
	}

	line := fmt.Sprintf("Reading: %d%%", percent)
	pad := 0
	if p.lastLen > len(line) {
		pad = p.lastLen - len(line)
	}

	if _, err := fmt.Fprintf(p.w, "\r%s%s", line, strings.Repeat(" ", pad)); err != nil {
		p.enabled = false
		return
	}
	p.lastLen = len(line)
}

// Done terminates the status line so later output starts on a fresh line.
func (p *Printer) Done() {
	if p == nil || !p.enabled || p.lastLen == 0 {
		return
	}
	fmt.Fprintln(p.w)
	p.lastLen = 0
}
