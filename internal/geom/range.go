package geom

import "math"

// Range is a one dimensional interval. Start may be greater than End, in
// which case the range is said to be inverted; most operations work on
// either direction.
type Range struct {
	Start, End Scalar
}

// NewRange creates a Range from start to end.
func NewRange(start, end Scalar) Range {
	return Range{Start: start, End: end}
}

// RangeFromPosLen creates a Range of the given length centred on pos.
func RangeFromPosLen(pos, length Scalar) Range {
	half := length / 2
	return Range{Start: pos - half, End: pos + half}
}

// Magnitude returns End - Start, which is negative for inverted ranges.
func (r Range) Magnitude() Scalar {
	return r.End - r.Start
}

// Len returns the absolute length of the range.
func (r Range) Len() Scalar {
	return math.Abs(r.Magnitude())
}

// Middle returns the centre of the range.
func (r Range) Middle() Scalar {
	return (r.End + r.Start) / 2
}

// Invert swaps Start and End.
func (r Range) Invert() Range {
	return Range{Start: r.End, End: r.Start}
}

// Undirected returns the range with Start <= End.
func (r Range) Undirected() Range {
	if r.Start > r.End {
		return r.Invert()
	}
	return r
}

// Direction returns 1 for a forward range, -1 for an inverted one and 0 for
// an empty one.
func (r Range) Direction() Scalar {
	switch {
	case r.Start < r.End:
		return 1
	case r.Start > r.End:
		return -1
	default:
		return 0
	}
}

// Shift moves both ends by amount.
func (r Range) Shift(amount Scalar) Range {
	return Range{Start: r.Start + amount, End: r.End + amount}
}

// Max returns the smallest undirected range containing both ranges.
func (r Range) Max(other Range) Range {
	a, b := r.Undirected(), other.Undirected()
	return Range{Start: math.Min(a.Start, b.Start), End: math.Max(a.End, b.End)}
}

// Overlap returns the undirected intersection of both ranges. ok is false
// when the ranges do not overlap or only touch.
func (r Range) Overlap(other Range) (overlap Range, ok bool) {
	a, b := r.Undirected(), other.Undirected()
	start := math.Max(a.Start, b.Start)
	end := math.Min(a.End, b.End)
	if end-start <= 0 {
		return Range{}, false
	}
	return Range{Start: start, End: end}, true
}

// IsOver returns true if pos lies within the range, inclusive of both ends.
func (r Range) IsOver(pos Scalar) bool {
	u := r.Undirected()
	return pos >= u.Start && pos <= u.End
}

// PadStart moves the start towards the end by pad.
func (r Range) PadStart(pad Scalar) Range {
	if r.Start <= r.End {
		r.Start += pad
	} else {
		r.Start -= pad
	}
	return r
}

// PadEnd moves the end towards the start by pad.
func (r Range) PadEnd(pad Scalar) Range {
	if r.Start <= r.End {
		r.End -= pad
	} else {
		r.End += pad
	}
	return r
}

// Pad shrinks both ends by pad.
func (r Range) Pad(pad Scalar) Range {
	return r.PadStart(pad).PadEnd(pad)
}

// PadEnds shrinks the start and end by separate amounts.
func (r Range) PadEnds(start, end Scalar) Range {
	return r.PadStart(start).PadEnd(end)
}

// ClampValue clamps value to lie within the range.
func (r Range) ClampValue(value Scalar) Scalar {
	u := r.Undirected()
	return math.Min(math.Max(value, u.Start), u.End)
}

// MapValueTo maps value from this range onto other.
func (r Range) MapValueTo(value Scalar, other Range) Scalar {
	mag := r.Magnitude()
	if mag == 0 {
		return other.Start
	}
	return other.Start + (value-r.Start)/mag*other.Magnitude()
}

// AlignStartOf shifts the range so its start lines up with other's start.
func (r Range) AlignStartOf(other Range) Range {
	a, b := r.Undirected(), other.Undirected()
	return r.Shift(b.Start - a.Start)
}

// AlignEndOf shifts the range so its end lines up with other's end.
func (r Range) AlignEndOf(other Range) Range {
	a, b := r.Undirected(), other.Undirected()
	return r.Shift(b.End - a.End)
}

// AlignMiddleOf shifts the range so both share the same middle.
func (r Range) AlignMiddleOf(other Range) Range {
	return r.Shift(other.Middle() - r.Middle())
}

// AlignAfter shifts the range so it starts where other ends.
func (r Range) AlignAfter(other Range) Range {
	a, b := r.Undirected(), other.Undirected()
	return r.Shift(b.End - a.Start)
}

// AlignBefore shifts the range so it ends where other starts.
func (r Range) AlignBefore(other Range) Range {
	a, b := r.Undirected(), other.Undirected()
	return r.Shift(b.Start - a.End)
}

// AlignTo aligns the range against other using align.
func (r Range) AlignTo(align Align, other Range) Range {
	switch align {
	case AlignStart:
		return r.AlignStartOf(other)
	case AlignEnd:
		return r.AlignEndOf(other)
	default:
		return r.AlignMiddleOf(other)
	}
}

// ClosestEdge returns the edge of the range nearest to value.
func (r Range) ClosestEdge(value Scalar) Edge {
	if math.Abs(value-r.Start) <= math.Abs(value-r.End) {
		return EdgeStart
	}
	return EdgeEnd
}
