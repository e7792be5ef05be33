package flats

import (
	"github.com/maseology/hydrocorrect/flowdir"
	"github.com/maseology/hydrocorrect/raster"
)

// Away performs the breadth-first multi-source expansion from high-edge
// cells. It writes into m (which must already be zero-filled)
// and returns flatHeight, of length k and indexed by label, holding the maximum
// away-gradient distance observed inside each flat.
//
// The wavefront depth is tracked with a single FIFO and a sentinel
// (raster.IterationMarker) pushed back after each full wavefront is
// drained, rather than a pair of current/next queues — the mechanism the
// source this is grounded on uses.
func Away(f *raster.Raster[int32], l *raster.Raster[int32], high Queue, m *raster.Raster[int32], k int) []int {
	flatHeight := make([]int, k)
	loops := 1
	q := append(Queue(nil), high...)
	q.push(raster.IterationMarker)
	for len(q) != 1 {
		c := q.pop()
		if c.IsMarker() {
			loops++
			q.push(raster.IterationMarker)
			continue
		}
		if m.At(c.X, c.Y) > 0 {
			continue // already incremented at an earlier, smaller depth
		}
		m.Set(c.X, c.Y, int32(loops))
		flatHeight[l.At(c.X, c.Y)] = loops
		for n := 1; n <= 8; n++ {
			nx, ny := c.X+raster.Dx[n], c.Y+raster.Dy[n]
			if l.InGrid(nx, ny) && l.At(nx, ny) == l.At(c.X, c.Y) && f.At(nx, ny) == flowdir.NoFlow {
				q.push(raster.GridCell{X: nx, Y: ny})
			}
		}
	}
	return flatHeight
}
