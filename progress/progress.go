// Package progress wraps github.com/gosuri/uiprogress for the raster
// sweeps in flowdir, flats, flowassign, and perturb, the way
// evaluate.go/evaluate.serial.go wrap it around this codebase's per-timestep
// simulation loops. Progress reporting is a non-observable side effect: a
// nil *Bar disables it everywhere it's threaded through.
package progress

import (
	"fmt"

	"github.com/gosuri/uiprogress"
)

// Bar reports sweep progress against a total unit count (typically raster
// width, since the sweeps below iterate columns outermost).
type Bar struct {
	label string
	bar   *uiprogress.Bar
	total int
}

// NewBar starts a uiprogress bar for a sweep called label. Total may be 0
// if unknown yet; call SetTotal once it is.
func NewBar(total int, label string) *Bar {
	uiprogress.Start()
	b := &Bar{label: label}
	b.SetTotal(total)
	return b
}

// SetTotal (re)creates the underlying bar with a known unit count. It is
// safe to call once total becomes known after NewBar(0, ...).
func (b *Bar) SetTotal(total int) {
	if total <= 0 {
		return
	}
	b.total = total
	b.bar = uiprogress.AddBar(total).AppendCompleted()
	label := b.label
	b.bar.PrependFunc(func(*uiprogress.Bar) string {
		return fmt.Sprintf(" %s", label)
	})
}

// Incr advances the bar by one unit.
func (b *Bar) Incr() {
	if b.bar != nil {
		b.bar.Incr()
	}
}

// Done stops progress reporting for this bar's run.
func (b *Bar) Done() {
	uiprogress.Stop()
}
