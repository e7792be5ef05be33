// Package flowassign implements the mask-driven flow-direction sink: it
// turns the flat-resolution mask into 8-neighbor flow directions without
// touching the elevation raster.
package flowassign

import (
	"runtime"
	"sync"

	"github.com/maseology/hydrocorrect/flowdir"
	"github.com/maseology/hydrocorrect/progress"
	"github.com/maseology/hydrocorrect/raster"
)

// AssignFlowInFlats resolves every labeled interior cell c with
// F(c) == NO_FLOW to an 8-neighbor direction. Border cells and cells
// outside any flat are left untouched. The sweep is data-parallel over row
// bands, mirroring evaluate.concur.go's goroutine-per-chunk fan-out, since
// each row writes disjoint cells of f. bar may be nil to disable progress
// reporting.
func AssignFlowInFlats(m, l *raster.Raster[int32], f *raster.Raster[int32], bar *progress.Bar) {
	if m.H <= 2 {
		return
	}
	if bar != nil {
		bar.SetTotal(m.H - 2)
	}
	nw := runtime.NumCPU()
	if nw > m.H-2 {
		nw = m.H - 2
	}
	if nw < 1 {
		nw = 1
	}
	rows := (m.H - 2 + nw - 1) / nw
	var wg sync.WaitGroup
	var mu sync.Mutex
	for band := 0; band < nw; band++ {
		y0, y1 := 1+band*rows, 1+band*rows+rows
		if y1 > m.H-1 {
			y1 = m.H - 1
		}
		if y0 >= y1 {
			continue
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			for y := y0; y < y1; y++ {
				for x := 1; x < m.W-1; x++ {
					if l.At(x, y) == 0 || f.At(x, y) != flowdir.NoFlow {
						continue
					}
					f.Set(x, y, maskedFlowDir(m, l, x, y))
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
}

// maskedFlowDir picks c's flow direction by walking its 8-neighbors in
// index order and preferring the lowest M, breaking ties in favor of a
// cardinal direction (odd index) over a diagonal one already chosen.
func maskedFlowDir(m, l *raster.Raster[int32], x, y int) int32 {
	best := m.At(x, y)
	dir := flowdir.NoFlow
	for n := 1; n <= 8; n++ {
		nx, ny := x+raster.Dx[n], y+raster.Dy[n]
		if l.At(nx, ny) != l.At(x, y) {
			continue
		}
		nv := m.At(nx, ny)
		if nv < best || (nv == best && dir > 0 && !raster.IsCardinal(int(dir)) && raster.IsCardinal(n)) {
			best = nv
			dir = int32(n)
		}
	}
	return dir
}
