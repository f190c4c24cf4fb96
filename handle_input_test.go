package gui

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestHandleInput_SimpleClick(t *testing.T) {
	u := newTestUi(t)
	id := u.IDGenerator().Next()
	build := func(c *Cell) any { return c.MustSet(id, clicker(WithXY(0, 0), WithWH(100, 50))) }

	frame(t, u, func(c *Cell) { build(c) })

	u.HandleInput(CursorAt(10, 5))
	u.HandleInput(Press{Button: Mouse(MouseLeft)})
	u.HandleInput(Release{Button: Mouse(MouseLeft)})

	var clicks any
	frame(t, u, func(c *Cell) { clicks = build(c) })

	if clicks != 1 {
		t.Errorf("clicks = %v, want 1", clicks)
	}
	if got := u.CapturingMouse(); got != NoWidget {
		t.Errorf("CapturingMouse() = %v, want none after release", got)
	}
}

func TestHandleInput_ClickRequiresSameWidget(t *testing.T) {
	u := newTestUi(t)
	ids := u.IDGenerator().NextN(2)
	build := func(c *Cell) (any, any) {
		a := c.MustSet(ids[0], clicker(WithXY(-100, 0), WithWH(50, 50)))
		b := c.MustSet(ids[1], clicker(WithXY(100, 0), WithWH(50, 50)))
		return a, b
	}
	frame(t, u, func(c *Cell) { build(c) })

	u.HandleInput(CursorAt(-100, 0))
	u.HandleInput(Press{Button: Mouse(MouseLeft)})
	u.HandleInput(CursorAt(100, 0))
	u.HandleInput(Release{Button: Mouse(MouseLeft)})

	var a, b any
	frame(t, u, func(c *Cell) { a, b = build(c) })
	if a != 0 || b != 0 {
		t.Errorf("clicks = %v, %v; want none when press and release are on different widgets", a, b)
	}
}

func TestHandleInput_DoubleClick(t *testing.T) {
	type tc struct {
		gap  time.Duration
		want int
	}

	tests := map[string]tc{
		"within threshold": {gap: 100 * time.Millisecond, want: 1},
		"too slow":         {gap: time.Second, want: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			clock := &fakeClock{now: time.Unix(0, 0)}
			u := newTestUi(t, WithClock(clock.Now))
			id := u.IDGenerator().Next()

			var doubles int
			w := func() *testWidget {
				w := newTestWidget(WithXY(0, 0), WithWH(50, 50))
				w.update = func(a *UpdateArgs) any {
					doubles = len(a.Input.DoubleClicks())
					return nil
				}
				return w
			}
			frame(t, u, func(c *Cell) { c.MustSet(id, w()) })

			click(u, 0, 0)
			clock.Advance(tt.gap)
			click(u, 0, 0)
			frame(t, u, func(c *Cell) { c.MustSet(id, w()) })

			if doubles != tt.want {
				t.Errorf("double clicks = %d, want %d", doubles, tt.want)
			}
		})
	}
}

// inputRecord is what a widget saw of the frame's input, recorded during
// its Update while the frame's events are live.
type inputRecord struct {
	events   []Event
	motions  []MotionEvent
	drags    []DragEvent
	presses  []PressEvent
	texts    []TextEvent
	mouse    MouseView
	hasMouse bool
}

func record(in *WidgetInput) inputRecord {
	m, ok := in.Mouse()
	return inputRecord{
		events:   in.Events(),
		motions:  in.Motions(),
		drags:    in.Drags(),
		presses:  in.Presses(),
		texts:    in.Texts(),
		mouse:    m,
		hasMouse: ok,
	}
}

func TestHandleInput_DragOutsideCapture(t *testing.T) {
	u := newTestUi(t)
	ids := u.IDGenerator().NextN(2)
	holder, other := ids[0], ids[1]

	var holderIn, otherIn inputRecord
	build := func(c *Cell) {
		h := newTestWidget(WithXY(0, 0), WithWH(50, 50))
		h.update = func(a *UpdateArgs) any {
			if len(a.Input.Presses()) > 0 {
				a.CaptureMouse()
			}
			holderIn = record(a.Input)
			return nil
		}
		c.MustSet(holder, h)

		o := newTestWidget(WithXY(150, 0), WithWH(50, 50))
		o.update = func(a *UpdateArgs) any {
			otherIn = record(a.Input)
			return nil
		}
		c.MustSet(other, o)
	}

	frame(t, u, build)
	u.HandleInput(CursorAt(0, 0))
	u.HandleInput(Press{Button: Mouse(MouseLeft)})
	frame(t, u, build)
	if got := u.CapturingMouse(); got != holder {
		t.Fatalf("CapturingMouse() = %v, want %v", got, holder)
	}

	u.HandleInput(CursorAt(150, 0))
	frame(t, u, build)

	if got := len(holderIn.motions); got != 1 {
		t.Errorf("holder motions = %d, want 1", got)
	}
	if got := len(otherIn.motions); got != 0 {
		t.Errorf("other motions = %d, want 0 while the mouse is captured", got)
	}

	if len(holderIn.drags) != 1 {
		t.Fatalf("holder drags = %d, want 1", len(holderIn.drags))
	}
	want := DragEvent{
		Widget:     holder,
		Button:     MouseLeft,
		Origin:     Pt(0, 0),
		From:       Pt(0, 0),
		To:         Pt(150, 0),
		Delta:      Pt(150, 0),
		TotalDelta: Pt(150, 0),
	}
	if diff := cmp.Diff(want, holderIn.drags[0]); diff != "" {
		t.Errorf("drag mismatch (-want +got):\n%s", diff)
	}
	if len(otherIn.drags) != 0 {
		t.Error("other should not see the drag")
	}
	if otherIn.hasMouse {
		t.Error("other should not see the mouse while it is captured")
	}
	if !holderIn.hasMouse || holderIn.mouse.IsOver {
		t.Errorf("holder mouse = %+v, %v; want captured and not over", holderIn.mouse, holderIn.hasMouse)
	}
}

func TestHandleInput_CaptureExclusive(t *testing.T) {
	u := newTestUi(t)
	ids := u.IDGenerator().NextN(2)

	got := make(map[WidgetID]bool)
	grabber := func(id WidgetID, x Scalar) *testWidget {
		w := newTestWidget(WithXY(x, 0), WithWH(20, 20))
		w.update = func(a *UpdateArgs) any {
			got[id] = a.CaptureKeyboard()
			return nil
		}
		return w
	}

	frame(t, u, func(c *Cell) {
		c.MustSet(ids[0], grabber(ids[0], -50))
		c.MustSet(ids[1], grabber(ids[1], 50))
	})

	want := map[WidgetID]bool{ids[0]: true, ids[1]: false}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("capture results mismatch (-want +got):\n%s", diff)
	}
	if holder := u.CapturingKeyboard(); holder != ids[0] {
		t.Errorf("CapturingKeyboard() = %v, want %v", holder, ids[0])
	}
}

func TestHandleInput_CaptureReleasedOnDisappearance(t *testing.T) {
	u := newTestUi(t)
	id := u.IDGenerator().Next()

	frame(t, u, func(c *Cell) {
		w := newTestWidget(WithXY(0, 0), WithWH(20, 20))
		w.update = func(a *UpdateArgs) any {
			a.CaptureMouse()
			return nil
		}
		c.MustSet(id, w)
	})
	if u.CapturingMouse() != id {
		t.Fatal("widget should hold the mouse")
	}

	frame(t, u, func(*Cell) {})
	if got := u.CapturingMouse(); got != NoWidget {
		t.Errorf("CapturingMouse() = %v, want none once the widget is gone", got)
	}

	var events []Event
	frame(t, u, func(*Cell) { events = u.GlobalInput() })
	want := []Event{UncaptureEvent{Widget: id, Source: SourceMouse}}
	if diff := cmp.Diff(want, events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestHandleInput_KeyboardRouting(t *testing.T) {
	u := newTestUi(t)
	ids := u.IDGenerator().NextN(2)
	focused, idle := ids[0], ids[1]

	var focusedIn, idleIn inputRecord
	build := func(c *Cell) {
		f := newTestWidget(WithXY(-50, 0), WithWH(20, 20))
		f.update = func(a *UpdateArgs) any {
			a.CaptureKeyboard()
			focusedIn = record(a.Input)
			return nil
		}
		c.MustSet(focused, f)
		i := newTestWidget(WithXY(50, 0), WithWH(20, 20))
		i.update = func(a *UpdateArgs) any {
			idleIn = record(a.Input)
			return nil
		}
		c.MustSet(idle, i)
	}

	frame(t, u, build)
	u.HandleInput(Press{Button: Keyboard(KeyLShift)})
	u.HandleInput(Press{Button: Char('a')})
	u.HandleInput(Text{Text: "A"})
	u.HandleInput(Release{Button: Keyboard(KeyLShift)})
	frame(t, u, build)

	wantTexts := []TextEvent{{Widget: focused, Text: "A", Modifiers: ModShift}}
	if diff := cmp.Diff(wantTexts, focusedIn.texts); diff != "" {
		t.Errorf("texts mismatch (-want +got):\n%s", diff)
	}
	if len(focusedIn.presses) != 2 {
		t.Fatalf("presses = %d, want 2", len(focusedIn.presses))
	}
	if focusedIn.presses[0].Modifiers != ModNone || focusedIn.presses[1].Modifiers != ModShift {
		t.Errorf("press modifiers = %v, %v; want None then Shift",
			focusedIn.presses[0].Modifiers, focusedIn.presses[1].Modifiers)
	}
	if len(idleIn.events) != 0 {
		t.Errorf("idle widget events = %v, want none", idleIn.events)
	}
	if got := u.global.Current.Modifiers; got != ModNone {
		t.Errorf("modifiers = %v, want None after release", got)
	}
}

func TestHandleInput_WheelScroll(t *testing.T) {
	f := newScrollFixture(t)
	u := f.u
	frame(t, u, f.build)
	frame(t, u, f.build)

	type step struct {
		dy         Scalar
		wantOffset Scalar
		wantEvent  bool
	}
	steps := []step{
		{dy: 10, wantOffset: 10, wantEvent: true},
		{dy: 100, wantOffset: 70, wantEvent: true},
		{dy: 5, wantOffset: 70, wantEvent: false},
		{dy: -20, wantOffset: 50, wantEvent: true},
	}

	u.HandleInput(CursorAt(-80, 0))
	for i, s := range steps {
		u.HandleInput(ScrollBy(0, s.dy))
		var routed bool
		for _, e := range u.GlobalInput() {
			if se, ok := e.(ScrollEvent); ok && se.Widget == f.scroller {
				routed = true
			}
		}
		if routed != s.wantEvent {
			t.Errorf("step %d: scroll routed = %v, want %v", i, routed, s.wantEvent)
		}
		frame(t, u, f.build)
		if st, _ := u.ScrollOf(f.scroller, AxisY); st.Offset != s.wantOffset {
			t.Errorf("step %d: offset = %v, want %v", i, st.Offset, s.wantOffset)
		}
	}
}

func TestHandleInput_ScrollbarDrag(t *testing.T) {
	f := newScrollFixture(t)
	u := f.u
	frame(t, u, f.build)
	frame(t, u, f.build)

	// Pressing at the bottom of the track moves the handle there, which
	// is the largest offset.
	u.HandleInput(CursorAt(95, -49))
	u.HandleInput(Press{Button: Mouse(MouseLeft)})
	frame(t, u, f.build)
	if st, _ := u.ScrollOf(f.scroller, AxisY); st.Offset != 70 {
		t.Errorf("offset after track press = %v, want 70", st.Offset)
	}

	u.HandleInput(CursorAt(95, 49))
	frame(t, u, f.build)
	if st, _ := u.ScrollOf(f.scroller, AxisY); st.Offset != 0 {
		t.Errorf("offset after dragging to the top = %v, want 0", st.Offset)
	}

	u.HandleInput(Release{Button: Mouse(MouseLeft)})
	u.HandleInput(CursorAt(95, -49))
	frame(t, u, f.build)
	if st, _ := u.ScrollOf(f.scroller, AxisY); st.Offset != 0 {
		t.Errorf("offset after release = %v, want 0", st.Offset)
	}
}

func TestHandleInput_ResizeAndFocus(t *testing.T) {
	u := newTestUi(t, WithRedrawFrames(1))
	frame(t, u, func(*Cell) {})
	for {
		if _, ok := u.DrawIfChanged(); !ok {
			break
		}
	}

	u.HandleInput(Resize{W: 800, H: 600})
	if got := u.WindowDim(); got != Dim(800, 600) {
		t.Errorf("WindowDim() = %v, want 800x600", got)
	}
	if _, ok := u.DrawIfChanged(); !ok {
		t.Error("resize should request a redraw")
	}

	var resized []Event
	frame(t, u, func(*Cell) { resized = u.GlobalInput() })
	want := []Event{RawEvent{Input: Resize{W: 800, H: 600}}, ResizeEvent{W: 800, H: 600}}
	if diff := cmp.Diff(want, resized); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	if r, _ := u.RectOf(u.Window()); r.Dim() != Dim(800, 600) {
		t.Errorf("window rect = %v, want 800x600", r.Dim())
	}

	u.HandleInput(Focus{Focused: true})
	if _, ok := u.DrawIfChanged(); !ok {
		t.Error("focus should request a redraw")
	}
}
