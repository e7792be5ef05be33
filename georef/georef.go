// Package georef parses this codebase's GDEF-style grid-definition text
// format and converts cell coordinates to latitude/longitude for
// diagnostic reporting. Nothing here is consulted by the flat-resolution
// core; it exists purely so discovered pits and mesas can be reported at a
// real-world location instead of a bare (x,y).
package georef

import (
	"fmt"
	"strconv"
	"strings"

	UTM "github.com/im7mortal/UTM"
)

// GeoRef holds a GDEF's georeferencing fields: origin easting/northing,
// rotation (radians), row/column counts, cell size, and a uniform-grid
// flag, plus the UTM zone used only for LatLon.
type GeoRef struct {
	OE, ON   float64
	Rot      float64
	NR, NC   int
	CS       float64
	Uniform  bool
	UTMZone  int
	Northern bool
}

// Parse reads a GDEF's six fields, one per element of lines — origin
// easting, origin northing, rotation, row count, column count, cell size —
// the cell size optionally prefixed with 'U' to flag a uniform grid. This
// mirrors grid.ReadGDEF's field order and error handling.
func Parse(lines []string, utmZone int, northern bool) (*GeoRef, error) {
	if len(lines) < 6 {
		return nil, fmt.Errorf("georef.Parse: expected at least 6 lines, got %d", len(lines))
	}
	g := &GeoRef{UTMZone: utmZone, Northern: northern}

	var errs []string
	field := func(i int, name string) float64 {
		v, err := strconv.ParseFloat(strings.TrimSpace(lines[i]), 64)
		if err != nil {
			errs = append(errs, fmt.Sprintf("failed to read '%s': %v", name, err))
		}
		return v
	}

	g.OE = field(0, "OE")
	g.ON = field(1, "ON")
	g.Rot = field(2, "ROT")

	nr, err := strconv.ParseInt(strings.TrimSpace(lines[3]), 10, 32)
	if err != nil {
		errs = append(errs, fmt.Sprintf("failed to read 'NR': %v", err))
	}
	g.NR = int(nr)

	nc, err := strconv.ParseInt(strings.TrimSpace(lines[4]), 10, 32)
	if err != nil {
		errs = append(errs, fmt.Sprintf("failed to read 'NC': %v", err))
	}
	g.NC = int(nc)

	cs := strings.TrimSpace(lines[5])
	if strings.HasPrefix(cs, "U") {
		g.Uniform = true
		cs = cs[1:]
	}
	csv, err := strconv.ParseFloat(cs, 64)
	if err != nil {
		errs = append(errs, fmt.Sprintf("failed to read 'CS': %v", err))
	}
	g.CS = csv

	if len(errs) > 0 {
		return nil, fmt.Errorf("georef.Parse: %s", strings.Join(errs, "; "))
	}
	return g, nil
}

// LatLon converts a cell's grid coordinate to latitude/longitude, assuming
// an unrotated grid anchored at (OE, ON) with cells of size CS growing
// south and east of the origin (row 0 at the north edge).
func (g *GeoRef) LatLon(x, y int) (lat, lon float64, err error) {
	easting := g.OE + (float64(x)+0.5)*g.CS
	northing := g.ON - (float64(y)+0.5)*g.CS
	return UTM.ToLatLon(easting, northing, g.UTMZone, "", g.Northern)
}
