package input

import (
	"github.com/grindlemire/go-gui/internal/geom"
	"github.com/grindlemire/go-gui/internal/graph"
)

// Widget is one widget's view of the frame's input. Positions are
// relative to the centre of the widget's rect.
type Widget struct {
	id         graph.ID
	rect       geom.Rect
	visible    geom.Rect
	hasVisible bool
	global     *Global
}

// NewWidget creates the view for id. visible is the widget's cropped
// area; ok is false when none of it is visible.
func NewWidget(id graph.ID, rect, visible geom.Rect, ok bool, global *Global) *Widget {
	return &Widget{id: id, rect: rect, visible: visible, hasVisible: ok, global: global}
}

// ID returns the widget the view belongs to.
func (w *Widget) ID() graph.ID { return w.id }

// Rect returns the widget's rect relative to its own centre.
func (w *Widget) Rect() geom.Rect {
	return w.rect.RelativeTo(w.rect.XY())
}

// provides reports whether e is relevant to the widget: either routed to
// it, or an untargeted cursor motion inside its visible area.
func (w *Widget) provides(e Event) bool {
	if e.Target() == w.id {
		return true
	}
	if m, ok := e.(MotionEvent); ok && m.Widget == graph.NoID {
		return w.hasVisible && w.visible.IsOver(m.XY)
	}
	return false
}

// Events returns the widget's events in queue order.
func (w *Widget) Events() []Event {
	var out []Event
	if w.global == nil {
		return out
	}
	xy := w.rect.XY()
	for _, e := range w.global.Events() {
		if w.provides(e) {
			out = append(out, e.RelativeTo(xy))
		}
	}
	return out
}

func eventsOf[T Event](w *Widget) []T {
	var out []T
	for _, e := range w.Events() {
		if t, ok := e.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// Presses returns the widget's press events.
func (w *Widget) Presses() []PressEvent { return eventsOf[PressEvent](w) }

// Releases returns the widget's release events.
func (w *Widget) Releases() []ReleaseEvent { return eventsOf[ReleaseEvent](w) }

// Clicks returns the widget's click events.
func (w *Widget) Clicks() []ClickEvent { return eventsOf[ClickEvent](w) }

// DoubleClicks returns the widget's double click events.
func (w *Widget) DoubleClicks() []DoubleClickEvent { return eventsOf[DoubleClickEvent](w) }

// Drags returns the widget's drag events.
func (w *Widget) Drags() []DragEvent { return eventsOf[DragEvent](w) }

// Scrolls returns the widget's scroll events.
func (w *Widget) Scrolls() []ScrollEvent { return eventsOf[ScrollEvent](w) }

// Texts returns the widget's text events.
func (w *Widget) Texts() []TextEvent { return eventsOf[TextEvent](w) }

// Motions returns the widget's cursor motion events.
func (w *Widget) Motions() []MotionEvent { return eventsOf[MotionEvent](w) }

// ClicksOf returns the number of clicks of button b.
func (w *Widget) ClicksOf(b MouseButton) int {
	n := 0
	for _, c := range w.Clicks() {
		if c.Button == b {
			n++
		}
	}
	return n
}

// ScrollDelta sums every scroll event.
func (w *Widget) ScrollDelta() geom.Point {
	var d geom.Point
	for _, s := range w.Scrolls() {
		d.X += s.X
		d.Y += s.Y
	}
	return d
}

// MouseView is the mouse as seen by one widget.
type MouseView struct {
	MouseState
	// IsOver reports whether the cursor lies over the widget's rect.
	IsOver bool
}

// Mouse returns the mouse relative to the widget. ok is false unless the
// widget captures the mouse, or nothing does and the widget is topmost
// under the cursor.
func (w *Widget) Mouse() (MouseView, bool) {
	if w.global == nil {
		return MouseView{}, false
	}
	cur := w.global.Current
	holder := cur.Capture.Mouse()
	if holder != w.id && (holder != graph.NoID || cur.WidgetUnderMouse != w.id) {
		return MouseView{}, false
	}
	rel := cur.Mouse.RelativeTo(w.rect.XY())
	return MouseView{MouseState: rel, IsOver: w.Rect().IsOver(rel.XY)}, true
}

// IsCapturingMouse reports whether the widget holds the mouse.
func (w *Widget) IsCapturingMouse() bool {
	return w.global != nil && w.global.Current.Capture.Mouse() == w.id
}

// IsCapturingKeyboard reports whether the widget holds the keyboard.
func (w *Widget) IsCapturingKeyboard() bool {
	return w.global != nil && w.global.Current.Capture.Keyboard() == w.id
}
