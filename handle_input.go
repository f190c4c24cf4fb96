package gui

import (
	"slices"

	"github.com/grindlemire/go-gui/internal/debug"
	"github.com/grindlemire/go-gui/internal/graph"
	"github.com/grindlemire/go-gui/internal/input"
)

// scrollGrab is a scrollbar being dragged with the left button.
type scrollGrab struct {
	id     WidgetID
	axis   Axis
	offset Scalar
}

// HandleInput interprets one raw input. The derived events are queued
// for the next frame, or the one after if a frame is being set.
//
// Mouse presses, releases and motions go to the widget capturing the
// mouse, else to the widget under the cursor. Keys and text go to the
// widget capturing the keyboard. A release over the widget the button
// went down on is also a click.
func (u *Ui) HandleInput(in Input) {
	if u == nil {
		panic("gui: nil ui in HandleInput")
	}
	u.push(RawEvent{Input: in})

	switch in := in.(type) {
	case Press:
		if in.Button.Source == SourceMouse {
			u.handleMousePress(in.Button)
		} else {
			u.handleKeyPress(in.Button)
		}
	case Release:
		if in.Button.Source == SourceMouse {
			u.handleMouseRelease(in.Button)
		} else {
			u.handleKeyRelease(in.Button)
		}
	case Motion:
		if in.Kind == input.MotionScroll {
			u.handleScroll(in.X, in.Y)
		} else {
			u.handleCursor(Pt(in.X, in.Y))
		}
	case Text:
		if in.Text == "" {
			return
		}
		cur := &u.global.Current
		u.push(TextEvent{Widget: cur.Capture.Keyboard(), Text: in.Text, Modifiers: cur.Modifiers})
	case Resize:
		u.win = Dim(in.W, in.H)
		u.push(ResizeEvent{W: in.W, H: in.H})
		u.NeedsRedraw()
		debug.Log("window resized to %vx%v", in.W, in.H)
	case Focus, Redraw:
		u.NeedsRedraw()
	}
}

// mouseTarget is the widget mouse events are routed to.
func (u *Ui) mouseTarget() WidgetID {
	cur := &u.global.Current
	if id := cur.Capture.Mouse(); id != NoWidget {
		return id
	}
	return cur.WidgetUnderMouse
}

func (u *Ui) handleMousePress(b Button) {
	cur := &u.global.Current
	xy := cur.Mouse.XY
	target := u.mouseTarget()
	u.push(PressEvent{Widget: target, Button: b, XY: xy, Modifiers: cur.Modifiers})
	cur.Mouse.Press(b.Mouse, xy, target)

	if b.Mouse != MouseLeft {
		return
	}
	u.raiseFloating(cur.WidgetUnderMouse)
	u.grabScrollbar(xy)
}

func (u *Ui) handleMouseRelease(b Button) {
	cur := &u.global.Current
	xy := cur.Mouse.XY
	u.push(ReleaseEvent{Widget: u.mouseTarget(), Button: b, XY: xy, Modifiers: cur.Modifiers})

	pos := cur.Mouse.Button(b.Mouse)
	if pos.Down && pos.Widget != NoWidget && pos.Widget == cur.WidgetUnderMouse {
		click := ClickEvent{Widget: pos.Widget, Button: b.Mouse, XY: xy, Modifiers: cur.Modifiers}
		u.push(click)
		if dbl, ok := u.global.RegisterClick(click, u.now(), u.theme.DoubleClickThreshold); ok {
			u.push(dbl)
		}
	}
	cur.Mouse.Release(b.Mouse)

	if b.Mouse == MouseLeft {
		u.grab = nil
	}
}

func (u *Ui) handleKeyPress(b Button) {
	cur := &u.global.Current
	u.push(PressEvent{Widget: cur.Capture.Keyboard(), Button: b, Modifiers: cur.Modifiers})
	if mod, ok := input.ModifierOf(b.Key); ok {
		cur.Modifiers |= mod
	}
}

func (u *Ui) handleKeyRelease(b Button) {
	cur := &u.global.Current
	u.push(ReleaseEvent{Widget: cur.Capture.Keyboard(), Button: b, Modifiers: cur.Modifiers})
	if mod, ok := input.ModifierOf(b.Key); ok {
		cur.Modifiers &^= mod
	}
}

func (u *Ui) handleCursor(xy Point) {
	cur := &u.global.Current
	last := cur.Mouse.XY
	u.push(MotionEvent{Widget: cur.Capture.Mouse(), XY: xy, Modifiers: cur.Modifiers})

	if input.ExceedsDragThreshold(last, xy, u.theme.MouseDragThreshold) {
		holder := cur.Capture.Mouse()
		for _, p := range cur.Mouse.Pressed() {
			widget := p.Widget
			if holder != NoWidget {
				widget = holder
			}
			u.push(DragEvent{
				Widget:     widget,
				Button:     p.Button,
				Origin:     p.XY,
				From:       last,
				To:         xy,
				Delta:      xy.Sub(last),
				TotalDelta: xy.Sub(p.XY),
				Modifiers:  cur.Modifiers,
			})
		}
	}

	cur.Mouse.XY = xy
	u.dragScrollbar(xy)
	u.updateWidgetUnderMouse()
}

// handleScroll routes a scroll to the topmost scrollable widget under the
// cursor that can still move in that direction. If none can, a widget
// capturing the mouse that does not scroll itself receives it.
func (u *Ui) handleScroll(x, y Scalar) {
	if x == 0 && y == 0 {
		return
	}
	cur := &u.global.Current
	for id := range graph.PickScrollableWidgets(u.graph, u.depthOrder.Indices, cur.Mouse.XY) {
		n := u.graph.Widget(id)
		if n.XScroll != nil && n.XScroll.CanScroll(x) || n.YScroll != nil && n.YScroll.CanScroll(y) {
			u.push(ScrollEvent{Widget: id, X: x, Y: y, Modifiers: cur.Modifiers})
			return
		}
	}
	if holder := cur.Capture.Mouse(); holder != NoWidget {
		if n := u.graph.Widget(holder); n != nil && !n.IsScrollable() {
			u.push(ScrollEvent{Widget: holder, X: x, Y: y, Modifiers: cur.Modifiers})
		}
	}
}

// raiseFloating brings every floating widget in id's depth chain to the
// front, outermost first.
func (u *Ui) raiseFloating(id WidgetID) {
	if id == NoWidget {
		return
	}
	chain := []WidgetID{id}
	for p := range u.graph.DepthParentRecursion(id) {
		chain = append(chain, p)
	}
	slices.Reverse(chain)
	for _, c := range chain {
		n := u.graph.Widget(c)
		if n == nil || n.Floating == nil {
			continue
		}
		u.interactions++
		n.Floating.LastClicked = u.interactions
		u.MarkDirty()
		debug.Event("floating raised", "id", c, "order", u.interactions)
	}
}

// grabScrollbar starts dragging the scrollbar under xy, if it is the
// topmost thing there. A press on the track away from the handle jumps
// the handle to the cursor.
func (u *Ui) grabScrollbar(xy Point) {
	u.grab = nil
	top, ok := graph.PickWidgetIncludingGraphics(u.graph, u.depthOrder.Indices, xy)
	if !ok {
		return
	}
	n := u.graph.Widget(top)
	if n == nil {
		return
	}
	for _, s := range []*ScrollState{n.YScroll, n.XScroll} {
		if s == nil || !s.IsOver(xy, n.KidArea.Rect) {
			continue
		}
		u.grab = &scrollGrab{id: top, axis: s.Axis, offset: s.Offset}
		if handle, _ := s.Handle(n.KidArea.Rect); !handle.IsOver(xy) {
			u.dragScrollbar(xy)
		}
		return
	}
}

// dragScrollbar queues the scroll that moves the grabbed handle's middle
// to xy.
func (u *Ui) dragScrollbar(xy Point) {
	if u.grab == nil {
		return
	}
	n := u.graph.Widget(u.grab.id)
	if n == nil || n.Scroll(u.grab.axis) == nil {
		u.grab = nil
		return
	}
	s := *n.Scroll(u.grab.axis)
	s.Offset = u.grab.offset
	target := s.OffsetForHandle(u.grab.axis.Of(xy), n.KidArea.Rect)
	delta := target - u.grab.offset
	if delta == 0 {
		return
	}
	u.grab.offset = target
	e := ScrollEvent{Widget: u.grab.id, Modifiers: u.global.Current.Modifiers}
	if u.grab.axis == AxisX {
		e.X = delta
	} else {
		e.Y = delta
	}
	u.push(e)
}
