// A pressure-impulse curve classification package.
//
// This package classifies load points against pressure-impulse (PI)
// boundary curves, the iso-damage diagrams used in blast engineering. A PI
// curve is a monotonic polyline in the impulse/pressure plane; a load point
// lies beyond a curve's damage threshold when the segment from the origin
// to the point crosses the curve. The package answers that question for a
// single curve or an ordered collection of them, and counts how many
// curves of a collection are actually crossed.
package picurve
