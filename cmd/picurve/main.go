package main

import (
	"fmt"
	"log"
	"os"

	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/blastware/picurve"
)

// Demonstration driver. Classifies a load point against two built-in
// sample PI curves and prints the results, optionally rendering the
// picture to a PNG (and inline in the terminal, on iTerm).
var (
	loadI  = kingpin.Flag("impulse", "Load point impulse coordinate.").Short('i').Default("2").Float64()
	loadP  = kingpin.Flag("pressure", "Load point pressure coordinate.").Short('p').Default("2.5").Float64()
	drawTo = kingpin.Flag("draw", "Render the curves and load point to this PNG path.").String()
	inline = kingpin.Flag("inline", "Print the rendering inline (iTerm only).").Bool()
	scale  = kingpin.Flag("scale", "Rendering scale in pixels per unit.").Default("60").Float64()
)

func main() {
	kingpin.Parse()
	load := picurve.Point{I: *loadI, P: *loadP}

	fmt.Println("Segment crossing checks:")
	report("square diagonals",
		picurve.SegmentsIntersect(picurve.Point{I: 0, P: 0}, picurve.Point{I: 2, P: 2}, picurve.Point{I: 0, P: 2}, picurve.Point{I: 2, P: 0}))
	report("parallel horizontals",
		picurve.SegmentsIntersect(picurve.Point{I: 0, P: 0}, picurve.Point{I: 1, P: 0}, picurve.Point{I: 0, P: 1}, picurve.Point{I: 1, P: 1}))

	// A near-field damage threshold and a more severe one further out.
	near := mustModel([]picurve.Point{{I: 1, P: 3}, {I: 2, P: 2}, {I: 3, P: 1}})
	far := mustModel([]picurve.Point{{I: 2, P: 6}, {I: 4, P: 4}, {I: 6, P: 2}})
	both, err := picurve.NewCurveCollection(near, far)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("\nLoad point (%g, %g):\n", load.I, load.P)
	report(fmt.Sprintf("beyond %v", near), near.Intersects(load))
	report(fmt.Sprintf("beyond %v", both), both.Intersects(load))
	fmt.Printf("  curves actually crossed: %d\n", both.CountIntersectingCurves(load))

	if *drawTo != "" {
		if *inline {
			err = both.CatRender(load, *drawTo, *scale, os.Stdout)
		} else {
			err = both.RenderPNG(load, *drawTo, *scale)
		}
		if err != nil {
			log.Fatal(err)
		}
	}
}

func mustModel(points []picurve.Point) *picurve.CurveModel {
	model, err := picurve.NewCurveModel(points)
	if err != nil {
		log.Fatal(err)
	}
	return model
}

func report(label string, crossed bool) {
	verdict := aurora.Green("no").String()
	if crossed {
		verdict = aurora.Red("yes").String()
	}
	fmt.Printf("  %s: %s\n", label, verdict)
}
