// Package hydrocorrect implements the Barnes-Lehman-Mulla flat-resolution
// algorithm for hydrologically correcting a DEM's D8 flow directions: it
// labels connected flat regions, builds a monotone drainage mask over each
// drainable one, and applies that mask either by choosing flow directions
// directly or by minimally perturbing elevations so an ordinary
// steepest-descent pass drains correctly.
package hydrocorrect

import (
	"github.com/maseology/hydrocorrect/flats"
	"github.com/maseology/hydrocorrect/flowassign"
	"github.com/maseology/hydrocorrect/flowdir"
	"github.com/maseology/hydrocorrect/perturb"
	"github.com/maseology/hydrocorrect/progress"
	"github.com/maseology/hydrocorrect/raster"
)

// Elevation is the set of floating-point types a DEM may be stored in.
type Elevation = flats.Elevation

// Diagnostic re-exports flats.Diagnostic: the non-fatal events the core and
// its sinks may raise.
type Diagnostic = flats.Diagnostic

// Resolve performs the two-pass mask construction alone (resolve_flats):
// given elevations and an already-computed flow-direction raster, it
// returns the flat-resolution mask and flat labels.
func Resolve[T Elevation](e *raster.Raster[T], f *raster.Raster[int32]) flats.Result {
	return flats.Resolve(e, f, nil)
}

// BarnesFlatResolutionD8 computes F from E, resolves flats, and applies the
// result either by assigning flow directions directly into F (alter=false)
// or by minimally perturbing E so a recomputed F drains every resolved flat
// (alter=true). Progress bars are created per sweep when report is true.
func BarnesFlatResolutionD8[T Elevation](e *raster.Raster[T], alter, report bool) (f *raster.Raster[int32], diags []Diagnostic) {
	bar := func(label string) *progress.Bar {
		if !report {
			return nil
		}
		return progress.NewBar(0, label)
	}

	f = flowdir.Compute(e, bar("computing D8 flow directions"))

	res := flats.Resolve(e, f, bar("scanning for flat edges"))
	diags = append(diags, res.Diagnostics...)

	if onlyInformational(res.Diagnostics) {
		return f, diags
	}

	if alter {
		f.Init(flowdir.NoFlow)
		pdiags := perturb.PerturbByMask(res.M, res.L, e, bar("perturbing DEM"))
		diags = append(diags, pdiags...)
		f = flowdir.Compute(e, bar("recomputing D8 flow directions"))
	} else {
		flowassign.AssignFlowInFlats(res.M, res.L, f, bar("assigning flow in flats"))
	}

	return f, diags
}

func onlyInformational(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Kind == flats.NoFlats || d.Kind == flats.UndrainableOnly {
			return true
		}
	}
	return false
}
