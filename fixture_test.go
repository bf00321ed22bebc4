package picurve

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file loads the SVG fixtures as curves. A fixture must contain
// exactly one polyline, whose coordinate pairs are read directly as
// (impulse, pressure) points. Fixtures are available by name in the
// fixtures/ directory, sans extension. If anything goes wrong, it panics.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polylines := rootEl.FindAll("polyline")
	if len(polylines) != 1 {
		log.Fatalf("Expected exactly one polyline in fixture %q, found %d", name, len(polylines))
	}

	var points []Point
	for _, pair := range strings.Fields(polylines[0].Attributes["points"]) {
		coords := strings.Split(pair, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q in fixture %q", pair, name)
		}
		i, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid impulse value %q: %v", coords[0], err)
		}
		p, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid pressure value %q: %v", coords[1], err)
		}
		points = append(points, Point{I: i, P: p})
	}
	return points
}
