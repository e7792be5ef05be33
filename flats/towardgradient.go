package flats

import (
	"runtime"
	"sync"

	"github.com/maseology/hydrocorrect/flowdir"
	"github.com/maseology/hydrocorrect/raster"
)

// Toward performs the breadth-first multi-source expansion from low-edge
// cells and combines it with Away's result into the final mask.
//
// m arrives holding Away's per-cell distances (0 where Away never reached
// the cell). The first step negates every cell of m in place: a negative
// value now means "Away reached this cell, at depth -m(c)"; zero means
// "Away never reached it". That signed value doubles as the
// already-touched-by-Away flag Toward's own BFS needs, so the final
// increment can be produced without a second raster:
//
//	A(c) = away-gradient depth (0 if unreached), B(c) = toward-gradient depth.
//	final(c) = 2*B(c) + (flatHeight[l] - A(c))   if A(c) > 0
//	final(c) = 2*B(c)                             if A(c) = 0
//
// The 2*B term dominates between adjacent wavefronts (it differs by at
// least 2 between neighbors) while (flatHeight-A) varies by at most 1
// between 8-neighbors, so the sum strictly decreases along any 8-connected
// path from a high-edge cell toward a low-edge cell.
func Toward(f *raster.Raster[int32], l *raster.Raster[int32], m *raster.Raster[int32], flatHeight []int, low Queue) {
	negateRows(m)

	loops := 1
	q := append(Queue(nil), low...)
	q.push(raster.IterationMarker)
	for len(q) != 1 {
		c := q.pop()
		if c.IsMarker() {
			loops++
			q.push(raster.IterationMarker)
			continue
		}
		if m.At(c.X, c.Y) > 0 {
			continue
		}
		if m.At(c.X, c.Y) != 0 {
			m.Set(c.X, c.Y, int32(flatHeight[l.At(c.X, c.Y)])+m.At(c.X, c.Y)+int32(2*loops))
		} else {
			m.Set(c.X, c.Y, int32(2*loops))
		}
		for n := 1; n <= 8; n++ {
			nx, ny := c.X+raster.Dx[n], c.Y+raster.Dy[n]
			if l.InGrid(nx, ny) && l.At(nx, ny) == l.At(c.X, c.Y) && f.At(nx, ny) == flowdir.NoFlow {
				q.push(raster.GridCell{X: nx, Y: ny})
			}
		}
	}
}

// negateRows flips the sign of every cell of m, partitioned into row bands
// run concurrently — the sign flip touches disjoint cells, so it is safe to
// fan out the way evaluate.concur.go fans out its per-timestep work over
// sync.WaitGroup rather than a single sequential sweep.
func negateRows(m *raster.Raster[int32]) {
	nw := runtime.NumCPU()
	if nw > m.H {
		nw = m.H
	}
	if nw < 1 {
		nw = 1
	}
	rows := (m.H + nw - 1) / nw
	var wg sync.WaitGroup
	for band := 0; band < nw; band++ {
		y0, y1 := band*rows, band*rows+rows
		if y1 > m.H {
			y1 = m.H
		}
		if y0 >= y1 {
			continue
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			for y := y0; y < y1; y++ {
				for x := 0; x < m.W; x++ {
					m.Set(x, y, -m.At(x, y))
				}
			}
		}(y0, y1)
	}
	wg.Wait()
}
