package graph

import (
	"testing"

	"github.com/grindlemire/go-gui/internal/geom"
)

func TestNewScrollState_Bounds(t *testing.T) {
	kidArea := geom.NewRange(-50, 50)

	type tc struct {
		kids geom.Range
		ok   bool
		prev *ScrollState
		want geom.Range
		off  geom.Scalar
	}

	tests := map[string]tc{
		"no kids": {
			ok:   false,
			want: geom.Range{},
		},
		"kids fit": {
			kids: geom.NewRange(-40, 40),
			ok:   true,
			want: geom.Range{},
		},
		"overflow at start": {
			kids: geom.NewRange(-150, 50),
			ok:   true,
			want: geom.NewRange(0, 100),
		},
		"overflow at end": {
			kids: geom.NewRange(-50, 130),
			ok:   true,
			want: geom.NewRange(-80, 0),
		},
		"previous offset is removed before measuring": {
			kids: geom.NewRange(-100, 100),
			ok:   true,
			prev: &ScrollState{Offset: 50},
			want: geom.NewRange(0, 100),
			off:  50,
		},
		"previous offset is clamped": {
			kids: geom.NewRange(350, 550),
			ok:   true,
			prev: &ScrollState{Offset: 500},
			want: geom.NewRange(0, 100),
			off:  100,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := NewScrollState(geom.AxisY, kidArea, tt.kids, tt.ok, tt.prev)
			if s.Bounds != tt.want {
				t.Errorf("Bounds = %+v, want %+v", s.Bounds, tt.want)
			}
			if s.Offset != tt.off {
				t.Errorf("Offset = %v, want %v", s.Offset, tt.off)
			}
		})
	}
}

func TestScrollState_Scroll(t *testing.T) {
	s := ScrollState{Axis: geom.AxisY, Bounds: geom.NewRange(0, 100), visible: 100}

	if !s.AtBound(-1) || s.CanScroll(-5) {
		t.Error("offset 0 should be at the start bound")
	}
	if !s.CanScroll(5) {
		t.Error("CanScroll(5) = false at the start bound")
	}

	s.Scroll(30)
	if s.Offset != 30 || !s.Scrolling {
		t.Errorf("after Scroll(30): offset = %v scrolling = %v", s.Offset, s.Scrolling)
	}

	s.Scroll(1000)
	if s.Offset != 100 {
		t.Errorf("Scroll past the end: offset = %v, want 100", s.Offset)
	}
	if s.CanScroll(1) {
		t.Error("CanScroll(1) = true at the end bound")
	}
}

func TestScrollState_Handle(t *testing.T) {
	kidArea := rectAt(0, 0, 100, 100)
	s := ScrollState{Axis: geom.AxisY, Bounds: geom.NewRange(0, 100), visible: 100}

	track, ok := s.Track(kidArea)
	if !ok {
		t.Fatal("Track() ok = false")
	}
	if track != geom.RectFromCorners(geom.Pt(40, -50), geom.Pt(50, 50)) {
		t.Errorf("Track() = %+v", track)
	}

	handle, _ := s.Handle(kidArea)
	if handle.H() != 50 || handle.Top() != 50 {
		t.Errorf("Handle() at start = %+v, want top half", handle)
	}

	s.Offset = 100
	handle, _ = s.Handle(kidArea)
	if handle.Bottom() != -50 {
		t.Errorf("Handle() at end bottom = %v, want -50", handle.Bottom())
	}

	if got := s.OffsetForHandle(0, kidArea); got != 50 {
		t.Errorf("OffsetForHandle(0) = %v, want 50", got)
	}

	empty := ScrollState{Axis: geom.AxisX}
	if _, ok := empty.Track(kidArea); ok {
		t.Error("Track() ok = true with no overflow")
	}
}
