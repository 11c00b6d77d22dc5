package spline

// Point is one control point of a Multi spline: a location along the
// spline's axis, a (possibly nested) Spline giving the value at that
// location, and the derivative used for Hermite blending with its
// neighbors.
type Point struct {
	Location   float64
	Value      Spline
	Derivative float64
}

// Multi is a piecewise cubic-Hermite spline over one axis of a
// multi-dimensional input, whose control-point values may themselves be
// nested Splines over further axes — the standard "spline of splines"
// shape used to compose multi-axis terrain curves from 1D pieces.
//
// Points must be supplied in strictly increasing Location order. NewMulti
// neither sorts nor checks them: an unordered list is accepted without
// error.
type Multi struct {
	axis   int
	points []Point
}

// NewMulti builds a Multi spline reading axes[axis] as its coordinate.
// Returns ErrEmptyPoints if points is empty.
func NewMulti(axis int, points []Point) (*Multi, error) {
	if len(points) == 0 {
		return nil, ErrEmptyPoints
	}
	cp := append([]Point(nil), points...)
	return &Multi{axis: axis, points: cp}, nil
}

// Eval implements Spline. Values below the first or above the last
// control point extrapolate linearly using the endpoint's derivative;
// values in between are Hermite-blended between their bracketing points.
func (m *Multi) Eval(axes []float64) float64 {
	x := axes[m.axis]
	points := m.points

	first := points[0]
	if x <= first.Location {
		return first.Value.Eval(axes) + first.Derivative*(x-first.Location)
	}

	last := points[len(points)-1]
	if x >= last.Location {
		return last.Value.Eval(axes) + last.Derivative*(x-last.Location)
	}

	// Locate the bracketing interval [lo, hi) via linear scan; terrain
	// splines have a handful of points so this stays cheap.
	lo := 0
	for lo < len(points)-2 && points[lo+1].Location <= x {
		lo++
	}
	pLo, pHi := points[lo], points[lo+1]

	span := pHi.Location - pLo.Location
	t := (x - pLo.Location) / span

	vLo := pLo.Value.Eval(axes)
	vHi := pHi.Value.Eval(axes)

	// Cubic Hermite basis with scaled end-derivatives, the conventional
	// formulation used by piecewise terrain splines.
	dLo := pLo.Derivative * span
	dHi := pHi.Derivative * span

	t2 := t * t
	t3 := t2 * t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2

	return h00*vLo + h10*dLo + h01*vHi + h11*dHi
}
