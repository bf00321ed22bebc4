package picurve

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"github.com/blastware/picurve/dbg"
)

// Every query tests the segment from the origin of the impulse/pressure
// plane to the load point.
var origin = Point{}

// CurveModel is either a single curve or an ordered collection of other
// models. Queries treat a collection as the flat ordered sequence of its
// leaf curves. Models are immutable after construction and safe for
// concurrent readers.
type CurveModel struct {
	curve   *Curve
	members []*CurveModel
}

// NewCurveModel builds a single-curve model from an ordered point list,
// which must be non-nil and non-empty. The points are copied, so the caller
// may reuse the slice. Rejecting an empty list is deliberately stricter
// than the edge loop needs: Intersects reads the first and last point of
// the curve, and an empty curve should fail here rather than there.
func NewCurveModel(points []Point) (*CurveModel, error) {
	if points == nil {
		return nil, errors.New("picurve: curve point list is nil")
	}
	if len(points) == 0 {
		return nil, errors.New("picurve: curve point list is empty")
	}
	curve := &Curve{Points: append([]Point(nil), points...)}
	return &CurveModel{curve: curve}, nil
}

// NewCurveCollection builds a collection model from one or more members,
// none of which may be nil. Members are typically single-curve models, but
// nested collections are allowed; queries flatten them in order.
func NewCurveCollection(models ...*CurveModel) (*CurveModel, error) {
	if len(models) == 0 {
		return nil, errors.New("picurve: curve collection is empty")
	}
	for i, m := range models {
		if m == nil {
			return nil, errors.Errorf("picurve: curve collection member %d is nil", i)
		}
	}
	return &CurveModel{members: append([]*CurveModel(nil), models...)}, nil
}

// leaves returns the model's curves in order, flattening nested
// collections.
func (m *CurveModel) leaves() []*Curve {
	if m.curve != nil {
		return []*Curve{m.curve}
	}
	var curves []*Curve
	for _, member := range m.members {
		curves = append(curves, member.leaves()...)
	}
	return curves
}

// Intersects reports whether the segment from the origin to load crosses
// any of the model's curves. A curve also counts as crossed when the load
// point lies beyond its first or last point on both axes: the drawn curve
// is finite, but the damage region it bounds extends past both endpoints,
// so anything past a corner is unconditionally inside.
func (m *CurveModel) Intersects(load Point) bool {
	for _, curve := range m.leaves() {
		first := curve.first()
		last := curve.last()
		if load.I > first.I && load.P > first.P {
			return true
		}
		if load.I > last.I && load.P > last.P {
			return true
		}
		for i := 0; i < len(curve.Points)-1; i++ {
			if SegmentsIntersect(origin, load, curve.Points[i], curve.Points[i+1]) {
				return true
			}
		}
	}
	return false
}

// CountIntersectingCurves returns how many of the model's curves have an
// edge crossed by the origin-to-load segment. The endpoint extension rules
// of Intersects do not apply here: a load point beyond a curve's corner
// that crosses none of its edges contributes nothing to the count, so the
// count can be zero for a point Intersects reports as inside.
func (m *CurveModel) CountIntersectingCurves(load Point) int {
	count := 0
	for _, curve := range m.leaves() {
		for i := 0; i < len(curve.Points)-1; i++ {
			if SegmentsIntersect(origin, load, curve.Points[i], curve.Points[i+1]) {
				count++
				break
			}
		}
	}
	return count
}

func (m *CurveModel) String() string {
	if m.curve != nil {
		return fmt.Sprintf("CurveModel %s (%d points)", m.DbgName(), len(m.curve.Points))
	}
	parts := make([]string, len(m.members))
	for i, member := range m.members {
		parts[i] = member.DbgName()
	}
	return fmt.Sprintf("CurveModel %s [%s]", m.DbgName(), strings.Join(parts, ", "))
}

// Single-curve models are green, collections cyan.
func (m *CurveModel) DbgName() string {
	name := dbg.Name(m)
	if m.curve != nil {
		return aurora.Green(name).String()
	}
	return aurora.Cyan(name).String()
}
