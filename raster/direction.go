package raster

// Dx and Dy give the eight-neighbor offsets, indexed 1..8 (index 0 unused):
//
//	2 3 4
//	1 . 5
//	8 7 6
//
// Odd indices (1,3,5,7) are cardinal; even indices (2,4,6,8) are diagonal.
// Every package that walks 8-neighbors imports this table so direction
// codes stay consistent across the pipeline.
var Dx = [9]int{0, -1, -1, 0, 1, 1, 1, 0, -1}
var Dy = [9]int{0, 0, -1, -1, -1, 0, 1, 1, 1}

// IsCardinal reports whether direction index n (1..8) is a cardinal step.
func IsCardinal(n int) bool { return n%2 == 1 }
