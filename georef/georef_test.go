package georef_test

import (
	"math"
	"testing"

	"github.com/maseology/hydrocorrect/georef"
)

// TestParseReadsGDEFFields covers the basic field layout, including the
// 'U'-uniform-grid prefix on cell size.
func TestParseReadsGDEFFields(t *testing.T) {
	lines := []string{
		"500000.0",
		"4500000.0",
		"0.0",
		"100",
		"200",
		"U30.0",
	}
	g, err := georef.Parse(lines, 17, true)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g.OE != 500000.0 || g.ON != 4500000.0 {
		t.Errorf("origin = (%v,%v), want (500000,4500000)", g.OE, g.ON)
	}
	if g.NR != 100 || g.NC != 200 {
		t.Errorf("dims = (%d,%d), want (100,200)", g.NR, g.NC)
	}
	if !g.Uniform {
		t.Errorf("expected Uniform=true from the 'U' prefix")
	}
	if g.CS != 30.0 {
		t.Errorf("CS = %v, want 30", g.CS)
	}
}

func TestParseRejectsShortInput(t *testing.T) {
	if _, err := georef.Parse([]string{"1", "2"}, 17, true); err == nil {
		t.Fatalf("expected an error for too few lines")
	}
}

// TestLatLonSanity checks that converting a cell at the grid origin
// round-trips through UTM.ToLatLon to a plausible mid-northern-hemisphere
// coordinate without error.
func TestLatLonSanity(t *testing.T) {
	lines := []string{
		"500000.0",
		"4500000.0",
		"0.0",
		"10",
		"10",
		"30.0",
	}
	g, err := georef.Parse(lines, 17, true)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	lat, lon, err := g.LatLon(0, 0)
	if err != nil {
		t.Fatalf("LatLon: %v", err)
	}
	if math.IsNaN(lat) || math.IsNaN(lon) {
		t.Fatalf("LatLon returned NaN: lat=%v lon=%v", lat, lon)
	}
	if lat <= 0 || lat > 90 {
		t.Errorf("lat = %v, want a northern-hemisphere latitude", lat)
	}
	if lon < -180 || lon > 180 {
		t.Errorf("lon = %v, out of range", lon)
	}
}
