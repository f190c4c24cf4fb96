package input

import (
	"github.com/grindlemire/go-gui/internal/geom"
	"github.com/grindlemire/go-gui/internal/graph"
)

// Event is a semantic event derived from raw input.
// Use a type switch to handle specific event kinds.
type Event interface {
	// Target returns the widget the event was routed to, or graph.NoID.
	Target() graph.ID
	// RelativeTo returns the event with every position made relative to
	// xy.
	RelativeTo(xy geom.Point) Event

	isEvent()
}

// RawEvent records the raw input every derived event came from.
type RawEvent struct {
	Input Input
}

// PressEvent is a button or key going down.
type PressEvent struct {
	Widget    graph.ID
	Button    Button
	XY        geom.Point
	Modifiers Modifier
}

// ReleaseEvent is a button or key going up.
type ReleaseEvent struct {
	Widget    graph.ID
	Button    Button
	XY        geom.Point
	Modifiers Modifier
}

// MotionEvent is cursor movement. Widget is graph.NoID unless a widget
// captures the mouse.
type MotionEvent struct {
	Widget    graph.ID
	XY        geom.Point
	Modifiers Modifier
}

// ClickEvent is a press and release of the same button over the same
// widget.
type ClickEvent struct {
	Widget    graph.ID
	Button    MouseButton
	XY        geom.Point
	Modifiers Modifier
}

// DoubleClickEvent is a second click of the same button at the same point
// within the double click threshold.
type DoubleClickEvent struct {
	Widget    graph.ID
	Button    MouseButton
	XY        geom.Point
	Modifiers Modifier
}

// DragEvent is cursor movement beyond the drag threshold while a button is
// held.
type DragEvent struct {
	Widget graph.ID
	Button MouseButton
	// Origin is where the button was pressed.
	Origin geom.Point
	From   geom.Point
	To     geom.Point
	// Delta is To - From and TotalDelta is To - Origin.
	Delta      geom.Point
	TotalDelta geom.Point
	Modifiers  Modifier
}

// ScrollEvent is a scroll delta routed to a scrollable widget.
type ScrollEvent struct {
	Widget    graph.ID
	X, Y      geom.Scalar
	Modifiers Modifier
}

// TextEvent is text routed to the keyboard capturer.
type TextEvent struct {
	Widget    graph.ID
	Text      string
	Modifiers Modifier
}

// ResizeEvent reports the new window size.
type ResizeEvent struct {
	W, H geom.Scalar
}

// CaptureEvent reports a widget starting to capture a source.
type CaptureEvent struct {
	Widget graph.ID
	Source Source
}

// UncaptureEvent reports a widget no longer capturing a source.
type UncaptureEvent struct {
	Widget graph.ID
	Source Source
}

func (RawEvent) Target() graph.ID           { return graph.NoID }
func (e PressEvent) Target() graph.ID       { return e.Widget }
func (e ReleaseEvent) Target() graph.ID     { return e.Widget }
func (e MotionEvent) Target() graph.ID      { return e.Widget }
func (e ClickEvent) Target() graph.ID       { return e.Widget }
func (e DoubleClickEvent) Target() graph.ID { return e.Widget }
func (e DragEvent) Target() graph.ID        { return e.Widget }
func (e ScrollEvent) Target() graph.ID      { return e.Widget }
func (e TextEvent) Target() graph.ID        { return e.Widget }
func (ResizeEvent) Target() graph.ID        { return graph.NoID }
func (e CaptureEvent) Target() graph.ID     { return e.Widget }
func (e UncaptureEvent) Target() graph.ID   { return e.Widget }

func (e RawEvent) RelativeTo(geom.Point) Event { return e }

func (e PressEvent) RelativeTo(xy geom.Point) Event {
	if e.Button.Source == SourceMouse {
		e.XY = e.XY.Sub(xy)
	}
	return e
}

func (e ReleaseEvent) RelativeTo(xy geom.Point) Event {
	if e.Button.Source == SourceMouse {
		e.XY = e.XY.Sub(xy)
	}
	return e
}

func (e MotionEvent) RelativeTo(xy geom.Point) Event {
	e.XY = e.XY.Sub(xy)
	return e
}

func (e ClickEvent) RelativeTo(xy geom.Point) Event {
	e.XY = e.XY.Sub(xy)
	return e
}

func (e DoubleClickEvent) RelativeTo(xy geom.Point) Event {
	e.XY = e.XY.Sub(xy)
	return e
}

func (e DragEvent) RelativeTo(xy geom.Point) Event {
	e.Origin = e.Origin.Sub(xy)
	e.From = e.From.Sub(xy)
	e.To = e.To.Sub(xy)
	return e
}

func (e ScrollEvent) RelativeTo(geom.Point) Event    { return e }
func (e TextEvent) RelativeTo(geom.Point) Event      { return e }
func (e ResizeEvent) RelativeTo(geom.Point) Event    { return e }
func (e CaptureEvent) RelativeTo(geom.Point) Event   { return e }
func (e UncaptureEvent) RelativeTo(geom.Point) Event { return e }

func (RawEvent) isEvent()         {}
func (PressEvent) isEvent()       {}
func (ReleaseEvent) isEvent()     {}
func (MotionEvent) isEvent()      {}
func (ClickEvent) isEvent()       {}
func (DoubleClickEvent) isEvent() {}
func (DragEvent) isEvent()        {}
func (ScrollEvent) isEvent()      {}
func (TextEvent) isEvent()        {}
func (ResizeEvent) isEvent()      {}
func (CaptureEvent) isEvent()     {}
func (UncaptureEvent) isEvent()   {}
