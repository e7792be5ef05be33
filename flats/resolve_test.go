package flats_test

import (
	"testing"

	"github.com/maseology/hydrocorrect/flats"
	"github.com/maseology/hydrocorrect/flowdir"
	"github.com/maseology/hydrocorrect/internal/testgrid"
	"github.com/maseology/hydrocorrect/raster"
)

// a strictly descending grid has no flats at all.
func TestResolveNoFlats(t *testing.T) {
	e := testgrid.FromInts([][]int{
		{9, 8, 7},
		{6, 5, 4},
		{3, 2, 1},
	})
	f := flowdir.Compute(e, nil)
	res := flats.Resolve(e, f, nil)

	if len(res.Diagnostics) != 1 || res.Diagnostics[0].Kind != flats.NoFlats {
		t.Fatalf("expected a single NoFlats diagnostic, got %+v", res.Diagnostics)
	}
	for y := 0; y < e.H; y++ {
		for x := 0; x < e.W; x++ {
			if res.L.At(x, y) != 0 {
				t.Errorf("L(%d,%d) = %d, want 0", x, y, res.L.At(x, y))
			}
			if res.M.At(x, y) != 0 {
				t.Errorf("M(%d,%d) = %d, want 0", x, y, res.M.At(x, y))
			}
		}
	}
}

// a flat entirely surrounded by higher terrain has no outlet.
func TestResolveUndrainableOnly(t *testing.T) {
	e := testgrid.FromInts([][]int{
		{9, 9, 9, 9, 9},
		{9, 5, 5, 5, 9},
		{9, 5, 5, 5, 9},
		{9, 5, 5, 5, 9},
		{9, 9, 9, 9, 9},
	})
	f := flowdir.Compute(e, nil)
	res := flats.Resolve(e, f, nil)

	if len(res.Diagnostics) != 1 || res.Diagnostics[0].Kind != flats.UndrainableOnly {
		t.Fatalf("expected a single UndrainableOnly diagnostic, got %+v", res.Diagnostics)
	}
	for y := 0; y < e.H; y++ {
		for x := 0; x < e.W; x++ {
			if res.L.At(x, y) != 0 {
				t.Errorf("L(%d,%d) = %d, want 0", x, y, res.L.At(x, y))
			}
		}
	}
}

// a single drainable flat with one outlet cell.
func TestResolveSingleDrainableFlat(t *testing.T) {
	e := testgrid.FromInts([][]int{
		{9, 9, 9, 9, 9},
		{9, 5, 5, 5, 9},
		{9, 5, 5, 5, 1},
		{9, 5, 5, 5, 9},
		{9, 9, 9, 9, 9},
	})
	f := flowdir.Compute(e, nil)
	res := flats.Resolve(e, f, nil)

	if len(res.Diagnostics) != 0 {
		t.Fatalf("expected no diagnostics, got %+v", res.Diagnostics)
	}

	label := res.L.At(3, 2)
	if label == 0 {
		t.Fatalf("expected the outlet-adjacent cell (3,2) to be labeled")
	}
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			if res.L.At(x, y) != label {
				t.Errorf("L(%d,%d) = %d, want %d", x, y, res.L.At(x, y), label)
			}
		}
	}

	outletM := res.M.At(3, 2)
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			if m := res.M.At(x, y); m < outletM {
				t.Errorf("M(%d,%d) = %d, lower than outlet's M = %d", x, y, m, outletM)
			}
		}
	}

	_ = f
	assertStrictlyMonotoneDrainage(t, res, e)
}

// two flats, one drainable, one not — only the drainable one is
// labeled and the undrainable one is dropped with a diagnostic.
func TestResolvePartiallyUndrainable(t *testing.T) {
	e := testgrid.FromInts([][]int{
		{9, 9, 9, 9, 9, 9, 9, 9, 9},
		{9, 5, 5, 5, 9, 9, 5, 5, 9},
		{9, 5, 5, 5, 1, 9, 5, 5, 9},
		{9, 5, 5, 5, 9, 9, 5, 5, 9},
		{9, 9, 9, 9, 9, 9, 9, 9, 9},
	})
	f := flowdir.Compute(e, nil)
	res := flats.Resolve(e, f, nil)

	if len(res.Diagnostics) != 1 || res.Diagnostics[0].Kind != flats.PartiallyUndrainable {
		t.Fatalf("expected a single PartiallyUndrainable diagnostic, got %+v", res.Diagnostics)
	}

	if res.L.At(2, 2) == 0 {
		t.Errorf("expected the drainable flat to be labeled")
	}
	if res.L.At(6, 2) != 0 || res.L.At(7, 2) != 0 {
		t.Errorf("expected the undrainable flat to remain unlabeled")
	}
	if res.M.At(6, 2) != 0 {
		t.Errorf("expected the undrainable flat's mask to stay zero")
	}
}

// assertStrictlyMonotoneDrainage checks that every resolvable-flat cell
// (other than a low-edge seed) has an in-flat neighbor with a strictly
// smaller M, or an out-of-flat neighbor at strictly lower elevation.
func assertStrictlyMonotoneDrainage(t *testing.T, res flats.Result, e *raster.Raster[float64]) {
	t.Helper()
	for y := 0; y < e.H; y++ {
		for x := 0; x < e.W; x++ {
			if res.L.At(x, y) == 0 {
				continue
			}
			ok := false
			for n := 1; n <= 8; n++ {
				nx, ny := x+raster.Dx[n], y+raster.Dy[n]
				if !e.InGrid(nx, ny) {
					continue
				}
				if res.L.At(nx, ny) == res.L.At(x, y) && res.M.At(nx, ny) < res.M.At(x, y) {
					ok = true
					break
				}
				if res.L.At(nx, ny) != res.L.At(x, y) && e.At(nx, ny) < e.At(x, y) {
					ok = true
					break
				}
			}
			if !ok && res.M.At(x, y) != 0 {
				t.Errorf("cell (%d,%d) has no strictly-decreasing drainage path", x, y)
			}
		}
	}
}
