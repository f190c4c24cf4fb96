package input

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/grindlemire/go-gui/internal/geom"
	"github.com/grindlemire/go-gui/internal/graph"
)

func TestWidget_Events(t *testing.T) {
	rect := geom.RectFromXYDim(geom.Pt(100, 50), geom.Dim(40, 20))

	type tc struct {
		visible geom.Rect
		ok      bool
		events  []Event
		want    []Event
	}

	tests := map[string]tc{
		"targeted events are relative": {
			visible: rect,
			ok:      true,
			events: []Event{
				PressEvent{Widget: 1, Button: Mouse(MouseLeft), XY: geom.Pt(110, 55)},
				ClickEvent{Widget: 1, Button: MouseLeft, XY: geom.Pt(110, 55)},
				PressEvent{Widget: 1, Button: Keyboard(KeyEnter)},
			},
			want: []Event{
				PressEvent{Widget: 1, Button: Mouse(MouseLeft), XY: geom.Pt(10, 5)},
				ClickEvent{Widget: 1, Button: MouseLeft, XY: geom.Pt(10, 5)},
				PressEvent{Widget: 1, Button: Keyboard(KeyEnter)},
			},
		},
		"other widgets filtered": {
			visible: rect,
			ok:      true,
			events: []Event{
				ClickEvent{Widget: 2, Button: MouseLeft, XY: geom.Pt(110, 55)},
				RawEvent{Input: Redraw{}},
				ResizeEvent{W: 10, H: 10},
			},
		},
		"untargeted motion inside visible area": {
			visible: rect,
			ok:      true,
			events: []Event{
				MotionEvent{Widget: graph.NoID, XY: geom.Pt(100, 50)},
				MotionEvent{Widget: graph.NoID, XY: geom.Pt(0, 0)},
			},
			want: []Event{
				MotionEvent{Widget: graph.NoID, XY: geom.Pt(0, 0)},
			},
		},
		"untargeted motion in cropped part": {
			visible: geom.RectFromCorners(geom.Pt(80, 40), geom.Pt(90, 60)),
			ok:      true,
			events: []Event{
				MotionEvent{Widget: graph.NoID, XY: geom.Pt(100, 50)},
			},
		},
		"nothing visible": {
			ok: false,
			events: []Event{
				MotionEvent{Widget: graph.NoID, XY: geom.Pt(100, 50)},
			},
		},
		"drag positions are relative": {
			visible: rect,
			ok:      true,
			events: []Event{
				DragEvent{
					Widget: 1, Button: MouseLeft,
					Origin: geom.Pt(100, 50), From: geom.Pt(100, 50), To: geom.Pt(300, 50),
					Delta: geom.Pt(200, 0), TotalDelta: geom.Pt(200, 0),
				},
			},
			want: []Event{
				DragEvent{
					Widget: 1, Button: MouseLeft,
					Origin: geom.Pt(0, 0), From: geom.Pt(0, 0), To: geom.Pt(200, 0),
					Delta: geom.Pt(200, 0), TotalDelta: geom.Pt(200, 0),
				},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			g := NewGlobal()
			for _, e := range tt.events {
				g.Push(e)
			}
			w := NewWidget(1, rect, tt.visible, tt.ok, g)
			if diff := cmp.Diff(tt.want, w.Events()); diff != "" {
				t.Errorf("Events() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWidget_Helpers(t *testing.T) {
	rect := geom.RectFromXYDim(geom.Pt(0, 0), geom.Dim(100, 100))
	g := NewGlobal()
	g.Push(ClickEvent{Widget: 1, Button: MouseLeft})
	g.Push(ClickEvent{Widget: 1, Button: MouseRight})
	g.Push(ClickEvent{Widget: 1, Button: MouseLeft})
	g.Push(ScrollEvent{Widget: 1, X: 1, Y: 2})
	g.Push(ScrollEvent{Widget: 1, Y: 3})
	g.Push(TextEvent{Widget: 1, Text: "hi"})

	w := NewWidget(1, rect, rect, true, g)
	if n := w.ClicksOf(MouseLeft); n != 2 {
		t.Errorf("ClicksOf(Left) = %d, want 2", n)
	}
	if d := w.ScrollDelta(); d != geom.Pt(1, 5) {
		t.Errorf("ScrollDelta() = %+v, want (1, 5)", d)
	}
	if texts := w.Texts(); len(texts) != 1 || texts[0].Text != "hi" {
		t.Errorf("Texts() = %+v", texts)
	}
	if len(w.Drags()) != 0 {
		t.Errorf("Drags() = %+v, want none", w.Drags())
	}
}

func TestWidget_Mouse(t *testing.T) {
	rect := geom.RectFromXYDim(geom.Pt(10, 10), geom.Dim(20, 20))

	type tc struct {
		under   graph.ID
		capture graph.ID
		ok      bool
	}

	tests := map[string]tc{
		"under mouse":          {under: 1, capture: graph.NoID, ok: true},
		"capturing":            {under: 2, capture: 1, ok: true},
		"other widget under":   {under: 2, capture: graph.NoID, ok: false},
		"other widget capture": {under: 1, capture: 2, ok: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			g := NewGlobal()
			g.Current.Mouse.XY = geom.Pt(15, 5)
			g.Current.WidgetUnderMouse = tt.under
			if tt.capture != graph.NoID {
				g.Current.Capture.Grant(SourceMouse, tt.capture)
			}

			w := NewWidget(1, rect, rect, true, g)
			m, ok := w.Mouse()
			if ok != tt.ok {
				t.Fatalf("Mouse() ok = %v, want %v", ok, tt.ok)
			}
			if ok && (m.XY != geom.Pt(5, -5) || !m.IsOver) {
				t.Errorf("Mouse() = %+v, want xy (5, -5) over", m)
			}
			if got := w.IsCapturingMouse(); got != (tt.capture == 1) {
				t.Errorf("IsCapturingMouse() = %v", got)
			}
		})
	}
}
