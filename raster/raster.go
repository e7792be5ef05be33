// Package raster provides the generic dense grid type the flat-resolution
// core and its collaborators share. It has no notion of hydrology; it is
// the "Raster<T>" collaborator named by the core (see hydrocorrect package).
package raster

// GridCell is an (x,y) cell coordinate. IterationMarker is the reserved
// sentinel value used by the breadth-first stages in package flats to mark
// wavefront boundaries in a single FIFO queue.
type GridCell struct{ X, Y int }

var IterationMarker = GridCell{X: -1, Y: -1}

// IsMarker reports whether c is the reserved iteration-marker sentinel.
func (c GridCell) IsMarker() bool { return c == IterationMarker }

// GeoRef carries optional real-world georeferencing for a Raster. It is
// never consulted by the core algorithm — only by diagnostics and IO.
type GeoRef struct {
	OE, ON   float64 // origin easting, origin northing
	Rot      float64 // rotation, radians
	CellSize float64
	UTMZone  int
	Uniform  bool
}

// Raster is a dense W x H grid of T, addressed (x,y) with 0 <= x < W and
// 0 <= y < H. NoData is a per-raster sentinel value.
type Raster[T comparable] struct {
	W, H   int
	NoData T
	Geo    *GeoRef
	data   []T
}

// New allocates a W x H raster, every cell initialized to fill.
func New[T comparable](w, h int, nodata, fill T) *Raster[T] {
	r := &Raster[T]{W: w, H: h, NoData: nodata}
	r.data = make([]T, w*h)
	r.Init(fill)
	return r
}

// InGrid reports whether (x,y) lies within the raster's bounds.
func (r *Raster[T]) InGrid(x, y int) bool {
	return x >= 0 && x < r.W && y >= 0 && y < r.H
}

func (r *Raster[T]) idx(x, y int) int { return y*r.W + x }

// At returns the value at (x,y). Out-of-grid coordinates return NoData.
func (r *Raster[T]) At(x, y int) T {
	if !r.InGrid(x, y) {
		return r.NoData
	}
	return r.data[r.idx(x, y)]
}

// Set stores v at (x,y). It panics if (x,y) is out of grid, matching the
// teacher's fail-fast treatment of programmer errors.
func (r *Raster[T]) Set(x, y int, v T) {
	if !r.InGrid(x, y) {
		panic("raster.Set: out of grid")
	}
	r.data[r.idx(x, y)] = v
}

// Init sets every cell to v.
func (r *Raster[T]) Init(v T) {
	for i := range r.data {
		r.data[i] = v
	}
}

// Resize reallocates the raster to w x h, discarding contents.
func (r *Raster[T]) Resize(w, h int) {
	r.W, r.H = w, h
	r.data = make([]T, w*h)
}

// CopyGeometry allocates a new raster sharing dims and GeoRef with r, filled
// with fill and carrying nodata as its NoData sentinel.
func CopyGeometry[T comparable, U comparable](r *Raster[T], nodata, fill U) *Raster[U] {
	o := New[U](r.W, r.H, nodata, fill)
	o.Geo = r.Geo
	return o
}

// Data exposes the raster's backing row-major slice directly, for IO and
// other code that needs to move the whole grid at once.
func (r *Raster[T]) Data() []T { return r.data }

// SameDims reports whether a and b share width and height.
func SameDims[T, U comparable](a *Raster[T], b *Raster[U]) bool {
	return a.W == b.W && a.H == b.H
}
