package graph

import (
	"math"

	"github.com/grindlemire/go-gui/internal/geom"
)

// ScrollbarThickness is the width of a scrollbar track.
const ScrollbarThickness geom.Scalar = 10

const scrollEpsilon = 1e-6

// ScrollState is the scroll position of a container along one axis.
//
// Offset is added to the position of every depth child. Bounds holds the
// allowed offsets; Start <= 0 <= End, and both are zero when the kids fit
// inside the kid area. A positive offset moves kids towards the end of the
// axis (right for x, up for y).
type ScrollState struct {
	Axis      geom.Axis
	Offset    geom.Scalar
	Bounds    geom.Range
	Scrolling bool

	// visible is the kid area length the bounds were computed against.
	visible geom.Scalar
}

// NewScrollState computes the scroll state of a container for this frame.
// kids is the bounding box of the container's kids as positioned last
// frame, which already includes prev's offset; ok is false when there are
// no kids. The previous offset is kept and clamped to the new bounds.
func NewScrollState(axis geom.Axis, kidArea geom.Range, kids geom.Range, ok bool, prev *ScrollState) ScrollState {
	s := ScrollState{Axis: axis, visible: kidArea.Len()}
	var offset geom.Scalar
	if prev != nil {
		offset = prev.Offset
	}

	if ok {
		k := kids.Undirected().Shift(-offset)
		a := kidArea.Undirected()
		s.Bounds = geom.Range{
			Start: math.Min(0, a.End-k.End),
			End:   math.Max(0, a.Start-k.Start),
		}
	}
	s.Offset = s.Bounds.ClampValue(offset)
	return s
}

// Scroll applies delta to the offset, clamped to the bounds.
func (s *ScrollState) Scroll(delta geom.Scalar) {
	s.Offset = s.Bounds.ClampValue(s.Offset + delta)
	s.Scrolling = true
}

// AtBound reports whether the offset cannot move further in the direction
// of delta.
func (s ScrollState) AtBound(delta geom.Scalar) bool {
	if delta >= 0 {
		return math.Abs(s.Offset-s.Bounds.End) < scrollEpsilon
	}
	return math.Abs(s.Offset-s.Bounds.Start) < scrollEpsilon
}

// CanScroll reports whether applying delta would move the offset.
func (s ScrollState) CanScroll(delta geom.Scalar) bool {
	return delta != 0 && !s.AtBound(delta)
}

// HasScrollbar reports whether the kids overflow the kid area.
func (s ScrollState) HasScrollbar() bool {
	return s.Bounds.Len() > 0
}

// Track returns the scrollbar track inside kidArea: along the right edge
// for y, along the bottom edge for x.
func (s ScrollState) Track(kidArea geom.Rect) (geom.Rect, bool) {
	if !s.HasScrollbar() {
		return geom.Rect{}, false
	}
	if s.Axis == geom.AxisY {
		return geom.Rect{
			X: geom.NewRange(kidArea.Right()-ScrollbarThickness, kidArea.Right()),
			Y: kidArea.Y.Undirected(),
		}, true
	}
	return geom.Rect{
		X: kidArea.X.Undirected(),
		Y: geom.NewRange(kidArea.Bottom(), kidArea.Bottom()+ScrollbarThickness),
	}, true
}

// Handle returns the draggable part of the track. Its length is the
// visible share of the content and its position follows the offset.
func (s ScrollState) Handle(kidArea geom.Rect) (geom.Rect, bool) {
	track, ok := s.Track(kidArea)
	if !ok {
		return geom.Rect{}, false
	}

	along := track.Y
	if s.Axis == geom.AxisX {
		along = track.X
	}
	trackLen := along.Len()
	bounds := s.Bounds.Len()
	handleLen := trackLen
	if s.visible+bounds > 0 {
		handleLen = trackLen * s.visible / (s.visible + bounds)
	}
	travel := trackLen - handleLen

	var handle geom.Range
	if s.Axis == geom.AxisY {
		top := along.End - (s.Offset-s.Bounds.Start)/bounds*travel
		handle = geom.NewRange(top-handleLen, top)
		return geom.Rect{X: track.X, Y: handle}, true
	}
	left := along.Start + (s.Bounds.End-s.Offset)/bounds*travel
	handle = geom.NewRange(left, left+handleLen)
	return geom.Rect{X: handle, Y: track.Y}, true
}

// IsOver reports whether p lies over the scrollbar track.
func (s ScrollState) IsOver(p geom.Point, kidArea geom.Rect) bool {
	track, ok := s.Track(kidArea)
	return ok && track.IsOver(p)
}

// OffsetForHandle returns the offset that places the handle so that its
// middle lies at pos along the track.
func (s ScrollState) OffsetForHandle(pos geom.Scalar, kidArea geom.Rect) geom.Scalar {
	handle, ok := s.Handle(kidArea)
	if !ok {
		return s.Offset
	}
	track, _ := s.Track(kidArea)
	if s.Axis == geom.AxisY {
		half := handle.H() / 2
		travel := geom.NewRange(track.Top()-half, track.Bottom()+half)
		return s.Bounds.ClampValue(travel.MapValueTo(pos, s.Bounds))
	}
	half := handle.W() / 2
	travel := geom.NewRange(track.Right()-half, track.Left()+half)
	return s.Bounds.ClampValue(travel.MapValueTo(pos, s.Bounds))
}
