// Package flowdir implements the D8 steepest-descent flow-direction pass.
// It stands in for the "d8_flow_directions" external collaborator named by
// the flat-resolution core (see package flats): it is not part of the core
// itself, but the module ships an implementation so the pipeline is
// runnable end to end without a caller-supplied flow raster.
package flowdir

import (
	"github.com/maseology/hydrocorrect/progress"
	"github.com/maseology/hydrocorrect/raster"
)

// NoFlow marks a cell with no strictly-lower 8-neighbor.
const NoFlow int32 = 0

// Elevation is the set of floating-point types a DEM may be stored in.
type Elevation interface{ ~float32 | ~float64 }

// Compute derives F from E: for every non-NoData interior cell, F(c) is the
// direction index (1..8, raster.Dx/raster.Dy order) of the strictly-lowest
// 8-neighbor, ties broken toward the lowest index, or NoFlow if no neighbor
// is strictly lower. Border cells are given the direction that points off
// the grid (diagonally outward at the corners) and NoData cells are set to
// f.NoData. bar may be nil to disable progress reporting.
func Compute[T Elevation](e *raster.Raster[T], bar *progress.Bar) *raster.Raster[int32] {
	f := raster.CopyGeometry[T, int32](e, -1, NoFlow)
	if bar != nil {
		bar.SetTotal(e.W)
	}
	for x := 0; x < e.W; x++ {
		for y := 0; y < e.H; y++ {
			if e.At(x, y) == e.NoData {
				f.Set(x, y, f.NoData)
				continue
			}
			if x == 0 || y == 0 || x == e.W-1 || y == e.H-1 {
				dx, dy := 0, 0
				if x == 0 {
					dx = -1
				} else if x == e.W-1 {
					dx = 1
				}
				if y == 0 {
					dy = -1
				} else if y == e.H-1 {
					dy = 1
				}
				for n := 1; n <= 8; n++ {
					if raster.Dx[n] == dx && raster.Dy[n] == dy {
						f.Set(x, y, int32(n))
					}
				}
				continue
			}
			f.Set(x, y, steepest(e, x, y))
		}
		if bar != nil {
			bar.Incr()
		}
	}
	if bar != nil {
		bar.Done()
	}
	return f
}

func steepest[T Elevation](e *raster.Raster[T], x, y int) int32 {
	z := e.At(x, y)
	best := z
	dir := NoFlow
	for n := 1; n <= 8; n++ {
		nx, ny := x+raster.Dx[n], y+raster.Dy[n]
		if !e.InGrid(nx, ny) {
			continue
		}
		nz := e.At(nx, ny)
		if nz == e.NoData {
			continue
		}
		if nz < best {
			best = nz
			dir = int32(n)
		}
	}
	return dir
}
