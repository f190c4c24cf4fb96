package geom

// Rect is an axis-aligned rectangle stored as one Range per axis.
type Rect struct {
	X, Y Range
}

// RectFromXYDim creates a Rect centred on xy with the given dimensions.
func RectFromXYDim(xy Point, dim Dimensions) Rect {
	return Rect{
		X: RangeFromPosLen(xy.X, dim.W),
		Y: RangeFromPosLen(xy.Y, dim.H),
	}
}

// RectFromCorners creates the Rect spanning two opposite corners.
func RectFromCorners(a, b Point) Rect {
	return Rect{
		X: Range{Start: a.X, End: b.X}.Undirected(),
		Y: Range{Start: a.Y, End: b.Y}.Undirected(),
	}
}

// XY returns the centre of the rectangle.
func (r Rect) XY() Point {
	return Point{X: r.X.Middle(), Y: r.Y.Middle()}
}

// W returns the width.
func (r Rect) W() Scalar { return r.X.Len() }

// H returns the height.
func (r Rect) H() Scalar { return r.Y.Len() }

// Dim returns the width and height.
func (r Rect) Dim() Dimensions {
	return Dimensions{W: r.W(), H: r.H()}
}

// Left returns the smallest x value.
func (r Rect) Left() Scalar { return r.X.Undirected().Start }

// Right returns the largest x value.
func (r Rect) Right() Scalar { return r.X.Undirected().End }

// Bottom returns the smallest y value.
func (r Rect) Bottom() Scalar { return r.Y.Undirected().Start }

// Top returns the largest y value.
func (r Rect) Top() Scalar { return r.Y.Undirected().End }

// TopLeft returns the top left corner.
func (r Rect) TopLeft() Point { return Point{X: r.Left(), Y: r.Top()} }

// BottomRight returns the bottom right corner.
func (r Rect) BottomRight() Point { return Point{X: r.Right(), Y: r.Bottom()} }

// Area returns the area of the rectangle.
func (r Rect) Area() Scalar {
	return r.W() * r.H()
}

// IsEmpty returns true if the rectangle has zero area.
func (r Rect) IsEmpty() bool {
	return r.W() == 0 || r.H() == 0
}

// IsOver returns true if the point lies within the rectangle, edges included.
func (r Rect) IsOver(p Point) bool {
	return r.X.IsOver(p.X) && r.Y.IsOver(p.Y)
}

// Overlap returns the intersection of two rectangles. ok is false when
// they share no area.
func (r Rect) Overlap(other Rect) (overlap Rect, ok bool) {
	x, okX := r.X.Overlap(other.X)
	if !okX {
		return Rect{}, false
	}
	y, okY := r.Y.Overlap(other.Y)
	if !okY {
		return Rect{}, false
	}
	return Rect{X: x, Y: y}, true
}

// Max returns the smallest rectangle containing both rectangles.
func (r Rect) Max(other Rect) Rect {
	return Rect{X: r.X.Max(other.X), Y: r.Y.Max(other.Y)}
}

// Shift moves the rectangle by xy.
func (r Rect) Shift(xy Point) Rect {
	return Rect{X: r.X.Shift(xy.X), Y: r.Y.Shift(xy.Y)}
}

// RelativeTo returns the rectangle in the coordinate space centred on xy.
func (r Rect) RelativeTo(xy Point) Rect {
	return r.Shift(Point{X: -xy.X, Y: -xy.Y})
}

// Pad shrinks every side by pad.
func (r Rect) Pad(pad Scalar) Rect {
	return Rect{X: r.X.Pad(pad), Y: r.Y.Pad(pad)}
}

// Padding shrinks the rectangle by a Padding.
func (r Rect) Padding(p Padding) Rect {
	return Rect{
		X: r.X.Undirected().PadEnds(p.X.Start, p.X.End),
		Y: r.Y.Undirected().PadEnds(p.Y.Start, p.Y.End),
	}
}

// AlignXOf aligns the rectangle horizontally against other.
func (r Rect) AlignXOf(align Align, other Rect) Rect {
	return Rect{X: r.X.AlignTo(align, other.X), Y: r.Y}
}

// AlignYOf aligns the rectangle vertically against other.
func (r Rect) AlignYOf(align Align, other Rect) Rect {
	return Rect{X: r.X, Y: r.Y.AlignTo(align, other.Y)}
}

// Padding holds per-side padding. For X, Start is the left side and End
// the right; for Y, Start is the bottom and End the top.
type Padding struct {
	X, Y Range
}

// NoPadding is the zero Padding.
var NoPadding = Padding{}

// UniformPadding pads every side by pad.
func UniformPadding(pad Scalar) Padding {
	return Padding{X: Range{Start: pad, End: pad}, Y: Range{Start: pad, End: pad}}
}
