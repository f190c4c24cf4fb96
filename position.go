package gui

import "github.com/grindlemire/go-gui/internal/geom"

// PositionKind selects how a Position is resolved.
type PositionKind uint8

const (
	// positionDefault defers to the widget's or the theme's default.
	positionDefault PositionKind = iota
	// PositionAbsolute is an absolute coordinate.
	PositionAbsolute
	// PositionRelative offsets from the middle of another widget.
	PositionRelative
	// PositionDirection places the widget after or before another widget.
	PositionDirection
	// PositionAlign aligns the widget with an edge or the middle of
	// another widget.
	PositionAlign
	// PositionPlace places the widget within another widget's kid area.
	PositionPlace
)

// Direction is the side of a widget that a PositionDirection follows.
type Direction uint8

const (
	// Forwards is right along x and up along y.
	Forwards Direction = iota
	// Backwards is left along x and down along y.
	Backwards
)

// Position is a widget's position along one axis.
//
// Relative kinds name the widget they are relative to with Target. A
// Target of NoWidget falls back to the previously set widget, or to the
// current parent for PositionPlace.
type Position struct {
	Kind      PositionKind
	Scalar    Scalar
	Direction Direction
	Align     Align
	Target    WidgetID
}

// Absolute positions at v.
func Absolute(v Scalar) Position {
	return Position{Kind: PositionAbsolute, Scalar: v, Target: NoWidget}
}

// Relative positions v from the middle of the previous widget.
func Relative(v Scalar) Position {
	return Position{Kind: PositionRelative, Scalar: v, Target: NoWidget}
}

// After positions amt past the end of the previous widget: to its right
// along x, above it along y.
func After(amt Scalar) Position {
	return Position{Kind: PositionDirection, Direction: Forwards, Scalar: amt, Target: NoWidget}
}

// Before positions amt before the start of the previous widget: to its
// left along x, below it along y.
func Before(amt Scalar) Position {
	return Position{Kind: PositionDirection, Direction: Backwards, Scalar: amt, Target: NoWidget}
}

// Aligned aligns with the previous widget.
func Aligned(a Align) Position {
	return Position{Kind: PositionAlign, Align: a, Target: NoWidget}
}

// Placed places within the parent's kid area. margin is ignored for
// AlignMiddle.
func Placed(a Align, margin Scalar) Position {
	return Position{Kind: PositionPlace, Align: a, Scalar: margin, Target: NoWidget}
}

// Of returns the position made relative to id.
func (p Position) Of(id WidgetID) Position {
	p.Target = id
	return p
}

// IsSet reports whether the position was given explicitly.
func (p Position) IsSet() bool {
	return p.Kind != positionDefault
}

// relative reports whether the position depends on another widget.
func (p Position) relative() bool {
	return p.Kind != positionDefault && p.Kind != PositionAbsolute
}

// DimensionKind selects how a Dimension is resolved.
type DimensionKind uint8

const (
	dimensionDefault DimensionKind = iota
	// DimensionAbsolute is a fixed length.
	DimensionAbsolute
	// DimensionOf copies another widget's length, minus padding.
	DimensionOf
	// DimensionKidAreaOf copies another widget's kid area length, minus
	// padding.
	DimensionKidAreaOf
)

// Dimension is a widget's length along one axis.
type Dimension struct {
	Kind DimensionKind
	// Length is the absolute length, or the padding removed from each end
	// for the relative kinds.
	Length Scalar
	Target WidgetID
}

// Length is a fixed length.
func Length(v Scalar) Dimension {
	return Dimension{Kind: DimensionAbsolute, Length: v, Target: NoWidget}
}

// LengthOf is the length of id with pad removed from each end.
func LengthOf(id WidgetID, pad Scalar) Dimension {
	return Dimension{Kind: DimensionOf, Length: pad, Target: id}
}

// KidAreaLengthOf is the length of id's kid area with pad removed from
// each end.
func KidAreaLengthOf(id WidgetID, pad Scalar) Dimension {
	return Dimension{Kind: DimensionKidAreaOf, Length: pad, Target: id}
}

// IsSet reports whether the dimension was given explicitly.
func (d Dimension) IsSet() bool {
	return d.Kind != dimensionDefault
}

// resolveDimension returns the length of d along axis, or false when the
// widget it refers to has no rect yet.
func (u *Ui) resolveDimension(d Dimension, axis Axis) (Scalar, bool) {
	switch d.Kind {
	case DimensionAbsolute:
		return d.Length, true
	case DimensionOf:
		r, ok := u.RectOf(d.Target)
		if !ok {
			return 0, false
		}
		return lengthAlong(r, axis) - d.Length*2, true
	case DimensionKidAreaOf:
		r, ok := u.KidAreaOf(d.Target)
		if !ok {
			return 0, false
		}
		return lengthAlong(r, axis) - d.Length*2, true
	default:
		return 0, false
	}
}

func lengthAlong(r Rect, axis Axis) Scalar {
	if axis == AxisX {
		return r.W()
	}
	return r.H()
}

func rangeAlong(r Rect, axis Axis) Range {
	if axis == AxisX {
		return r.X
	}
	return r.Y
}

func padAlong(p Padding, axis Axis) Range {
	if axis == AxisX {
		return p.X
	}
	return p.Y
}

// positionTarget returns the widget pos is relative to. An unset target
// falls back to the previous widget, or to parent for PositionPlace.
func (u *Ui) positionTarget(pos Position, parent WidgetID) WidgetID {
	switch {
	case !pos.relative():
		return NoWidget
	case pos.Target != NoWidget:
		return pos.Target
	case pos.Kind == PositionPlace:
		return parent
	default:
		return u.prevWidget
	}
}

// absFromPosition resolves pos along axis for a widget of length dim.
func (u *Ui) absFromPosition(pos Position, axis Axis, dim Scalar, parent WidgetID, placeOnKidArea bool) Scalar {
	rangeOf := func(id WidgetID) (Range, bool) {
		r, ok := u.RectOf(id)
		if !ok {
			return Range{}, false
		}
		return rangeAlong(r, axis), true
	}
	orWindow := func(id WidgetID) WidgetID {
		if id == NoWidget {
			return u.window
		}
		return id
	}
	own := geom.RangeFromPosLen(0, dim)

	switch pos.Kind {
	case PositionAbsolute:
		return pos.Scalar

	case PositionRelative:
		other, ok := rangeOf(orWindow(u.positionTarget(pos, parent)))
		if !ok {
			return pos.Scalar
		}
		return other.Middle() + pos.Scalar

	case PositionDirection:
		other, ok := rangeOf(u.positionTarget(pos, parent))
		if !ok {
			if pos.Direction == Forwards {
				return pos.Scalar
			}
			return -pos.Scalar
		}
		if pos.Direction == Forwards {
			return own.AlignAfter(other).Middle() + pos.Scalar
		}
		return own.AlignBefore(other).Middle() - pos.Scalar

	case PositionAlign:
		other, ok := rangeOf(orWindow(u.positionTarget(pos, parent)))
		if !ok {
			return 0
		}
		switch pos.Align {
		case AlignStart:
			return own.AlignStartOf(other).Middle()
		case AlignEnd:
			return own.AlignEndOf(other).Middle()
		default:
			return other.Middle()
		}

	case PositionPlace:
		target := orWindow(u.positionTarget(pos, parent))
		var area Range
		if placeOnKidArea {
			n := u.graph.Widget(target)
			if n == nil {
				return 0
			}
			pad := padAlong(n.KidArea.Pad, axis)
			area = rangeAlong(n.KidArea.Rect, axis).PadStart(pad.Start).PadEnd(pad.End)
		} else {
			r, ok := rangeOf(target)
			if !ok {
				return 0
			}
			area = r
		}
		switch pos.Align {
		case AlignStart:
			return own.AlignStartOf(area).Middle() + pos.Scalar
		case AlignEnd:
			return own.AlignEndOf(area).Middle() - pos.Scalar
		default:
			return area.Middle()
		}
	}
	return 0
}
