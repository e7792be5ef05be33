// Command hydrocorrect reads a DEM stored in .rmap form, resolves its
// flats, and writes the result back out — either a flow-direction raster
// or an altered elevation raster, depending on -alter.
//
// Grounded on samples/01_hydrocorrect_DEM/main.go's load-then-process shape.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/maseology/hydrocorrect"
	"github.com/maseology/hydrocorrect/rmapio"
	"github.com/maseology/mmio"
)

func main() {
	in := flag.String("dem", "", "input elevation .rmap file (float64)")
	out := flag.String("out", "", "output .rmap file (flowdir as int32, or altered elevations as float64 with -alter)")
	alter := flag.Bool("alter", false, "perturb elevations instead of assigning flow directions directly")
	quiet := flag.Bool("quiet", false, "disable progress bars")
	flag.Parse()

	if *in == "" || *out == "" {
		log.Fatalln("usage: hydrocorrect -dem in.rmap -out out.rmap [-alter] [-quiet]")
	}

	tt := mmio.NewTimer()

	e, err := rmapio.ReadFloat64(*in)
	if err != nil {
		log.Fatalf("hydrocorrect: %v", err)
	}
	if !*quiet {
		tt.Lap("DEM loaded")
	}

	f, diags := hydrocorrect.BarnesFlatResolutionD8(e, *alter, !*quiet)
	for _, d := range diags {
		fmt.Printf(" [%s] %s\n", d.Kind, d.Message)
	}
	if !*quiet {
		tt.Lap("flat resolution complete")
	}

	if *alter {
		if err := rmapio.WriteFloat64(*out, e); err != nil {
			log.Fatalf("hydrocorrect: %v", err)
		}
		return
	}
	if err := rmapio.WriteInt32(*out, f); err != nil {
		log.Fatalf("hydrocorrect: %v", err)
	}
}
