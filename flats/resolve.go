package flats

import (
	"fmt"

	"github.com/maseology/hydrocorrect/progress"
	"github.com/maseology/hydrocorrect/raster"
)

// Result bundles resolve_flats' two outputs with the diagnostics raised
// along the way.
type Result struct {
	M           *raster.Raster[int32]
	L           *raster.Raster[int32]
	Diagnostics []Diagnostic
}

// Resolve performs the two-pass mask construction: scan for flat edges,
// label flats, build the away gradient, then the combined toward gradient.
// It never mutates e or f.
func Resolve[T Elevation](e *raster.Raster[T], f *raster.Raster[int32], bar *progress.Bar) Result {
	m := raster.CopyGeometry[T, int32](e, -1, 0)
	l := raster.CopyGeometry[T, int32](e, 0, 0)

	low, high := Scan(e, f, bar)

	if len(low) == 0 {
		if len(high) > 0 {
			return Result{M: m, L: l, Diagnostics: []Diagnostic{{
				Kind:    UndrainableOnly,
				Message: "there were flats, but none of them had outlets",
			}}}
		}
		return Result{M: m, L: l, Diagnostics: []Diagnostic{{
			Kind:    NoFlats,
			Message: "there were no flats",
		}}}
	}

	var diags []Diagnostic
	labels, k := Label(e, low)
	l = labels

	kept, dropped := PruneUndrainable(high, l)
	if dropped {
		diags = append(diags, Diagnostic{
			Kind:    PartiallyUndrainable,
			Message: fmt.Sprintf("not all flats have outlets: dropped %d of %d high-edge cells", len(high)-len(kept), len(high)),
		})
	}

	flatHeight := Away(f, l, kept, m, k)
	Toward(f, l, m, flatHeight, low)

	return Result{M: m, L: l, Diagnostics: diags}
}
