package flats

import "github.com/maseology/hydrocorrect/raster"

// Label flood-fills each flat reachable from a low-edge seed with a unique
// positive label. Seeds are visited in queue order; a seed
// already labeled by an earlier flood fill is skipped. It returns the
// label raster and K, the final group number: one more than the number of
// labels assigned, so a slice of length K can be indexed by any label.
//
// The seed cell pushed by Scan is the flow-carrying center, not its flat
// neighbor — but its elevation equals the flat's elevation, so it is
// geometrically part of the flat and is exactly where the flood fill
// should start.
func Label[T Elevation](e *raster.Raster[T], low Queue) (*raster.Raster[int32], int) {
	l := raster.CopyGeometry[T, int32](e, 0, 0)
	group := 1
	for _, s := range low {
		if l.At(s.X, s.Y) != 0 {
			continue
		}
		floodFill(e, l, s, int32(group))
		group++
	}
	return l, group
}

func floodFill[T Elevation](e *raster.Raster[T], l *raster.Raster[int32], seed raster.GridCell, label int32) {
	target := e.At(seed.X, seed.Y)
	var q Queue
	q.push(seed)
	for !q.empty() {
		c := q.pop()
		if e.At(c.X, c.Y) != target {
			continue
		}
		if l.At(c.X, c.Y) > 0 {
			continue
		}
		l.Set(c.X, c.Y, label)
		for n := 1; n <= 8; n++ {
			nx, ny := c.X+raster.Dx[n], c.Y+raster.Dy[n]
			if l.InGrid(nx, ny) {
				q.push(raster.GridCell{X: nx, Y: ny})
			}
		}
	}
}

// PruneUndrainable retains only the high-edge cells whose flat received a
// label, i.e. drops cells belonging to flats with no low-edge outlet. It
// reports whether any cell was dropped (PartiallyUndrainable territory).
func PruneUndrainable(high Queue, l *raster.Raster[int32]) (kept Queue, dropped bool) {
	for _, c := range high {
		if l.At(c.X, c.Y) != 0 {
			kept.push(c)
		}
	}
	return kept, len(kept) < len(high)
}
