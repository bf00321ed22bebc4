package picurve

// Point is a location in the impulse/pressure plane. I is the impulse
// (horizontal) axis and P the pressure (vertical) axis, but nothing in the
// geometry cares about units; they are plain Cartesian coordinates.
type Point struct {
	I float64
	P float64
}

// Curve is an ordered polyline. PI curves list their points in increasing
// impulse order, so the first point is the high-pressure end and the last
// point the high-impulse end. Monotonicity is assumed, not validated.
type Curve struct {
	Points []Point
}

func (c *Curve) first() Point { return c.Points[0] }

func (c *Curve) last() Point { return c.Points[len(c.Points)-1] }
