package flats

import (
	"github.com/maseology/hydrocorrect/flowdir"
	"github.com/maseology/hydrocorrect/progress"
	"github.com/maseology/hydrocorrect/raster"
)

// Elevation is the set of floating-point types a DEM may be stored in.
type Elevation interface{ ~float32 | ~float64 }

// Queue is a plain FIFO of grid cells. The BFS stages in this package push
// raster.IterationMarker into it to track wavefront depth with a single
// queue and counter (see Away and Toward).
type Queue []raster.GridCell

func (q *Queue) push(c raster.GridCell) { *q = append(*q, c) }
func (q *Queue) pop() raster.GridCell {
	c := (*q)[0]
	*q = (*q)[1:]
	return c
}
func (q *Queue) empty() bool { return len(*q) == 0 }

// Scan sweeps E and F, partitioning flat cells into low-edge and high-edge
// queues. The scan goes column by column, x outer / y inner, matching
// find_flat_edges in the source this is grounded on; that order is what
// makes the resulting labeling and gradients deterministic.
func Scan[T Elevation](e *raster.Raster[T], f *raster.Raster[int32], bar *progress.Bar) (low, high Queue) {
	if bar != nil {
		bar.SetTotal(f.W)
	}
	for x := 0; x < f.W; x++ {
		for y := 0; y < f.H; y++ {
			if f.At(x, y) == f.NoData {
				continue
			}
			for n := 1; n <= 8; n++ {
				nx, ny := x+raster.Dx[n], y+raster.Dy[n]
				if !f.InGrid(nx, ny) || f.At(nx, ny) == f.NoData {
					continue
				}
				if f.At(x, y) != flowdir.NoFlow && f.At(nx, ny) == flowdir.NoFlow && e.At(nx, ny) == e.At(x, y) {
					low.push(raster.GridCell{X: x, Y: y})
					break
				} else if f.At(x, y) == flowdir.NoFlow && e.At(x, y) < e.At(nx, ny) {
					high.push(raster.GridCell{X: x, Y: y})
					break
				}
			}
		}
		if bar != nil {
			bar.Incr()
		}
	}
	if bar != nil {
		bar.Done()
	}
	return low, high
}
