// layout.go re-exports geometry types from internal/geom.
// Any changes to internal/geom types must be mirrored here.
package gui

import "github.com/grindlemire/go-gui/internal/geom"

// Scalar is the unit of every coordinate and length.
type Scalar = geom.Scalar

// Point is an xy coordinate with (0, 0) at the centre of the window and
// y pointing up.
type Point = geom.Point

// Dimensions is a width/height pair.
type Dimensions = geom.Dimensions

// Range is a one dimensional interval.
type Range = geom.Range

// Rect is an axis aligned rectangle.
type Rect = geom.Rect

// Padding is the space between a rect and the area inside it.
type Padding = geom.Padding

// Axis selects x or y.
type Axis = geom.Axis

const (
	AxisX = geom.AxisX
	AxisY = geom.AxisY
)

// Align places a range at the start, middle or end of another.
type Align = geom.Align

const (
	AlignStart  = geom.AlignStart
	AlignMiddle = geom.AlignMiddle
	AlignEnd    = geom.AlignEnd
)

// Pt returns the point (x, y).
func Pt(x, y Scalar) Point { return geom.Pt(x, y) }

// Dim returns the dimensions w by h.
func Dim(w, h Scalar) Dimensions { return geom.Dim(w, h) }

// RectFromXYDim returns the rect centred on xy with the given dimensions.
func RectFromXYDim(xy Point, dim Dimensions) Rect { return geom.RectFromXYDim(xy, dim) }

// UniformPadding pads every side by pad.
func UniformPadding(pad Scalar) Padding { return geom.UniformPadding(pad) }
