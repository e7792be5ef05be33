package flats

import "github.com/maseology/hydrocorrect/raster"

// Kind enumerates the non-fatal diagnostic events the core can surface, per
// the error taxonomy: none of these abort a run.
type Kind int

const (
	// NoFlats: E has no interior flats at all.
	NoFlats Kind = iota
	// UndrainableOnly: every flat found is a pit or mesa with no outlet.
	UndrainableOnly
	// PartiallyUndrainable: some flats had no outlet and were dropped;
	// the remaining flats were still resolved.
	PartiallyUndrainable
	// PerturbationSaturated: DEMPerturber could not raise a cell strictly
	// above a previously-lower neighbor; precision was exhausted.
	PerturbationSaturated
)

func (k Kind) String() string {
	switch k {
	case NoFlats:
		return "NoFlats"
	case UndrainableOnly:
		return "UndrainableOnly"
	case PartiallyUndrainable:
		return "PartiallyUndrainable"
	case PerturbationSaturated:
		return "PerturbationSaturated"
	default:
		return "Unknown"
	}
}

// Diagnostic is a single non-fatal event surfaced by the core or its sinks.
type Diagnostic struct {
	Kind    Kind
	Message string
	Cell    raster.GridCell // zero value when not cell-specific
}
