package picurve

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Padding around the plot so the origin and curve endpoints aren't flush
// against the image edge.
const drawPadding = 20

// RenderPNG draws the model's curves, the origin-to-load segment, and the
// load point to a PNG at path. scale is pixels per coordinate unit.
func (m *CurveModel) RenderPNG(load Point, path string, scale float64) error {
	maxI, maxP := load.I, load.P
	for _, curve := range m.leaves() {
		for _, p := range curve.Points {
			maxI = math.Max(maxI, p.I)
			maxP = math.Max(maxP, p.P)
		}
	}

	width := int(scale*maxI) + drawPadding*2
	height := int(scale*maxP) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.Clear()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)

	c.SetLineWidth(2)
	c.SetRGB(0, 0.5, 0)
	for _, curve := range m.leaves() {
		c.MoveTo(curve.Points[0].I, curve.Points[0].P)
		for _, p := range curve.Points[1:] {
			c.LineTo(p.I, p.P)
		}
		c.Stroke()
	}

	c.SetRGB(0.8, 0.2, 0.2)
	c.MoveTo(0, 0)
	c.LineTo(load.I, load.P)
	c.Stroke()
	c.DrawCircle(load.I, load.P, 4/scale)
	c.Fill()

	return c.SavePNG(path)
}

// CatRender renders to path and prints the image inline (iTerm only).
func (m *CurveModel) CatRender(load Point, path string, scale float64, out io.Writer) error {
	if err := m.RenderPNG(load, path, scale); err != nil {
		return err
	}
	imgcat.CatFile(path, out)
	return nil
}
