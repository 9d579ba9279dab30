// Package progressbar implements a minimal, dependency-free progress bar
// for standard output.
//
// No repository in the retrieval pack imports a third-party progress-bar
// library (checked across every go.mod in the pack), so this is a
// deliberate standard-library fallback rather than an omission: see
// DESIGN.md for the dependency-search record.
package progressbar

import (
	"fmt"
	"io"
	"strings"
	"time"
)

const barWidth = 40

// Bar repaints a single line on w as work completes out of a known total.
// It is cosmetic only: callers should ignore any write error.
type Bar struct {
	w     io.Writer
	total int64
	start time.Time
}

// New returns a Bar that will track progress toward total units of work.
// With a total of zero or less, Paint and Finish write nothing.
func New(w io.Writer, total int64) *Bar {
	return &Bar{w: w, total: total, start: time.Now()}
}

// Paint repaints the bar for the given completed count. Any write error is
// ignored, since progress output is cosmetic per spec §7.
func (b *Bar) Paint(done int64) {
	if b.total <= 0 {
		return
	}
	if done > b.total {
		done = b.total
	}
	frac := float64(done) / float64(b.total)
	filled := int(frac * float64(barWidth))

	bar := strings.Repeat("=", filled) + strings.Repeat(" ", barWidth-filled)
	elapsed := time.Since(b.start).Round(time.Millisecond)
	_, _ = fmt.Fprintf(b.w, "\r[%s] %3d%% (%d/%d) %s", bar, int(frac*100), done, b.total, elapsed)
}

// Finish repaints the bar at 100% and moves to a fresh line.
func (b *Bar) Finish() {
	if b.total <= 0 {
		return
	}
	b.Paint(b.total)
	_, _ = fmt.Fprintln(b.w)
}
