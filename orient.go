package picurve

// Orientation classifies the turn made by an ordered triple of points.
type Orientation int

const (
	Collinear Orientation = iota
	Clockwise
	CounterClockwise
)

// Orient classifies the turn from a through b to c by the sign of a cross
// product. The zero comparison is exact: a triple that is almost collinear
// classifies by whatever sign floating point cancellation leaves behind.
func Orient(a, b, c Point) Orientation {
	val := (b.P-a.P)*(c.I-b.I) - (b.I-a.I)*(c.P-b.P)
	switch {
	case val == 0:
		return Collinear
	case val > 0:
		return Clockwise
	default:
		return CounterClockwise
	}
}

// SegmentsIntersect reports whether segment ab crosses segment cd. Only the
// general position case is handled: the endpoints of each segment must lie
// on opposite sides of the other's line. Collinear overlaps fall through as
// non-intersecting, and touching configurations classify by whichever side
// the orientation test puts them on. Coordinates must be finite; NaN and
// infinity are the caller's problem.
func SegmentsIntersect(a, b, c, d Point) bool {
	return Orient(a, b, c) != Orient(a, b, d) && Orient(c, d, a) != Orient(c, d, b)
}
