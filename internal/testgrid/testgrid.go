// Package testgrid builds small raster.Raster fixtures from literal
// row-major grids for use across this module's test suites.
package testgrid

import "github.com/maseology/hydrocorrect/raster"

// FromInts builds a *raster.Raster[float64] from a row-major grid of
// integer elevations (rows[y][x]), with NoData -9999.
func FromInts(rows [][]int) *raster.Raster[float64] {
	h := len(rows)
	w := len(rows[0])
	r := raster.New[float64](w, h, -9999, 0)
	for y, row := range rows {
		for x, v := range row {
			r.Set(x, y, float64(v))
		}
	}
	return r
}
