package perturb_test

import (
	"math"
	"testing"

	"github.com/maseology/hydrocorrect/perturb"
	"github.com/maseology/hydrocorrect/raster"
)

// TestPerturbAppliesExactULPSteps checks that a large float32 base
// elevation bumped a known number of ULPs matches repeated
// math.Nextafter32 exactly.
func TestPerturbAppliesExactULPSteps(t *testing.T) {
	const base float32 = 1e7
	e := raster.New[float32](3, 3, -9999, base)
	l := raster.New[int32](3, 3, 0, 1)
	m := raster.New[int32](3, 3, -1, 0)
	m.Set(1, 1, 10)

	perturb.PerturbByMask(m, l, e, nil)

	want := base
	for i := 0; i < 10; i++ {
		want = math.Nextafter32(want, float32(math.Inf(1)))
	}
	if got := e.At(1, 1); got != want {
		t.Errorf("perturbed elevation = %v, want %v", got, want)
	}
}

func TestPerturbReportsSaturation(t *testing.T) {
	// (1,1) is in flat 1; (2,1) is in flat 2 and starts at exactly the
	// same elevation (neither strictly lower nor unaffected by (1,1)'s
	// bump). Raising (1,1) by even a single ULP makes it exceed a
	// neighbor that was never recorded as "originally lower".
	const base float32 = 1e7

	e := raster.New[float32](4, 3, -9999, base)
	l := raster.New[int32](4, 3, 0, 1)
	l.Set(2, 1, 2)
	m := raster.New[int32](4, 3, -1, 0)
	m.Set(1, 1, 1)

	diags := perturb.PerturbByMask(m, l, e, nil)
	if len(diags) == 0 {
		t.Fatalf("expected a PerturbationSaturated diagnostic")
	}
}

func TestPerturbSkipsUnlabeledCells(t *testing.T) {
	const base float32 = 100
	e := raster.New[float32](3, 3, -9999, base)
	l := raster.New[int32](3, 3, 0, 0)
	m := raster.New[int32](3, 3, -1, 5)

	perturb.PerturbByMask(m, l, e, nil)

	if e.At(1, 1) != base {
		t.Errorf("expected unlabeled cell to be left untouched, got %v", e.At(1, 1))
	}
}
