package geom

import "math"

// Scalar is the unit for all positions and lengths.
type Scalar = float64

// Point represents an (X, Y) coordinate.
type Point struct {
	X, Y Scalar
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y Scalar) Point {
	return Point{X: x, Y: y}
}

// Add returns a new Point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns a new Point with other subtracted.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Len returns the distance from the origin to p.
func (p Point) Len() Scalar {
	return math.Hypot(p.X, p.Y)
}

// In returns true if the point is inside the given rectangle.
func (p Point) In(r Rect) bool {
	return r.IsOver(p)
}

// Dimensions is a width and height pair.
type Dimensions struct {
	W, H Scalar
}

// Dim is shorthand for Dimensions{W: w, H: h}.
func Dim(w, h Scalar) Dimensions {
	return Dimensions{W: w, H: h}
}

// Axis selects the horizontal or vertical component of a geometry value.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// String returns "x" or "y".
func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Of returns the component of p along the axis.
func (a Axis) Of(p Point) Scalar {
	if a == AxisX {
		return p.X
	}
	return p.Y
}

// Align describes alignment along one axis.
type Align uint8

const (
	AlignStart Align = iota
	AlignMiddle
	AlignEnd
)

// Edge names either end of a Range.
type Edge uint8

const (
	EdgeStart Edge = iota
	EdgeEnd
)
