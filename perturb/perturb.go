// Package perturb implements the mask-driven DEM-alteration sink: it bumps
// elevations upward by the smallest representable step, M(cell) times, so
// ordinary steepest-descent routing drains every resolvable flat without
// needing a separate flat-aware flow pass.
package perturb

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/maseology/hydrocorrect/flats"
	"github.com/maseology/hydrocorrect/progress"
	"github.com/maseology/hydrocorrect/raster"
)

// Elevation is the set of floating-point types a DEM may be stored in.
type Elevation interface{ ~float32 | ~float64 }

// PerturbByMask raises e(c) for every labeled interior cell c by M(c)
// successive next-representable-upward steps. It mutates e in place and
// returns any PerturbationSaturated diagnostics raised when a
// previously-descending edge could not be preserved. Each cell's neighbor
// checks are evaluated against a snapshot of e taken before any band starts
// writing, so an adjacent band racing ahead to perturb a shared-boundary
// neighbor can never change this cell's outcome; only the cell's own slot
// in e is written, and every goroutine owns a disjoint set of those.
func PerturbByMask[T Elevation](m, l *raster.Raster[int32], e *raster.Raster[T], bar *progress.Bar) []flats.Diagnostic {
	if e.H <= 2 {
		return nil
	}
	if bar != nil {
		bar.SetTotal(e.H - 2)
	}
	snap := raster.New[T](e.W, e.H, e.NoData, e.NoData)
	copy(snap.Data(), e.Data())

	nw := runtime.NumCPU()
	if nw > e.H-2 {
		nw = e.H - 2
	}
	if nw < 1 {
		nw = 1
	}
	rows := (e.H - 2 + nw - 1) / nw
	var wg sync.WaitGroup
	var mu sync.Mutex
	var diags []flats.Diagnostic
	for band := 0; band < nw; band++ {
		y0, y1 := 1+band*rows, 1+band*rows+rows
		if y1 > e.H-1 {
			y1 = e.H - 1
		}
		if y0 >= y1 {
			continue
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			for y := y0; y < y1; y++ {
				for x := 1; x < e.W-1; x++ {
					if d := perturbCell(m, l, snap, e, x, y); d != nil {
						mu.Lock()
						diags = append(diags, *d)
						mu.Unlock()
					}
				}
				if bar != nil {
					mu.Lock()
					bar.Incr()
					mu.Unlock()
				}
			}
		}(y0, y1)
	}
	wg.Wait()
	if bar != nil {
		bar.Done()
	}
	return diags
}

func perturbCell[T Elevation](m, l *raster.Raster[int32], snap, e *raster.Raster[T], x, y int) *flats.Diagnostic {
	if l.At(x, y) == 0 {
		return nil
	}

	var higher [9]bool
	z0 := snap.At(x, y)
	for n := 1; n <= 8; n++ {
		nx, ny := x+raster.Dx[n], y+raster.Dy[n]
		higher[n] = z0 > snap.At(nx, ny)
	}

	z := z0
	for i := int32(0); i < m.At(x, y); i++ {
		z = nextUp(z)
	}
	e.Set(x, y, z)

	for n := 1; n <= 8; n++ {
		nx, ny := x+raster.Dx[n], y+raster.Dy[n]
		if l.At(nx, ny) == l.At(x, y) {
			continue
		}
		if snap.At(nx, ny) > z {
			continue
		}
		if !higher[n] {
			return &flats.Diagnostic{
				Kind:    flats.PerturbationSaturated,
				Message: fmt.Sprintf("raising (%d,%d) invalidated a previously descending edge toward (%d,%d)", x, y, nx, ny),
				Cell:    raster.GridCell{X: x, Y: y},
			}
		}
	}
	return nil
}

func nextUp[T Elevation](v T) T {
	switch any(v).(type) {
	case float32:
		return T(math.Nextafter32(float32(v), float32(math.Inf(1))))
	default:
		return T(math.Nextafter(float64(v), math.Inf(1)))
	}
}
