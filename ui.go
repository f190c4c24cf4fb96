package gui

import (
	"slices"
	"sync/atomic"
	"time"

	"github.com/grindlemire/go-gui/internal/debug"
	"github.com/grindlemire/go-gui/internal/graph"
	"github.com/grindlemire/go-gui/internal/input"
)

// Ui owns the widget graph, the input state and the event queue for one
// window. It is not safe for concurrent use; one goroutine feeds it
// input, sets its widgets and draws it.
type Ui struct {
	theme *Theme
	win   Dimensions
	now   func() time.Time

	capacity     int
	redrawFrames int

	graph      *graph.Graph
	depthOrder *graph.DepthOrder
	global     *input.Global
	ids        *IDGenerator
	window     WidgetID

	// updated holds the widgets set during the current frame and
	// prevUpdated those set during the last one.
	updated     map[WidgetID]struct{}
	prevUpdated map[WidgetID]struct{}

	prevWidget    WidgetID
	currentParent WidgetID
	// updating is the stack of widgets whose Update is running.
	updating []WidgetID
	// instantiations counts sets within the frame.
	instantiations int
	// interactions orders floating widgets by their last click.
	interactions uint64
	inFrame      bool
	grab         *scrollGrab

	dirty       atomic.Bool
	changed     bool
	redrawCount int
}

// NewUi creates a Ui with the given options.
func NewUi(opts ...UiOption) (*Ui, error) {
	u := &Ui{
		theme:         DefaultTheme(),
		win:           Dim(640, 480),
		now:           time.Now,
		capacity:      512,
		redrawFrames:  3,
		prevWidget:    NoWidget,
		currentParent: NoWidget,
	}
	for _, opt := range opts {
		if err := opt(u); err != nil {
			return nil, err
		}
	}

	u.graph = graph.New(u.capacity)
	u.depthOrder = graph.NewDepthOrder(u.capacity)
	u.global = input.NewGlobal()
	u.ids = &IDGenerator{g: u.graph}
	u.window = u.ids.Next()
	u.updated = make(map[WidgetID]struct{}, u.capacity)
	u.prevUpdated = make(map[WidgetID]struct{}, u.capacity)
	u.redrawCount = u.redrawFrames

	debug.Log("ui created: window=%v size=%vx%v", u.window, u.win.W, u.win.H)
	return u, nil
}

// Theme returns the active theme.
func (u *Ui) Theme() *Theme {
	return u.theme
}

// SetTheme replaces the theme and requests a redraw.
func (u *Ui) SetTheme(t *Theme) {
	u.theme = t
	u.NeedsRedraw()
}

// Window returns the id of the root window widget.
func (u *Ui) Window() WidgetID {
	return u.window
}

// WindowDim returns the window dimensions.
func (u *Ui) WindowDim() Dimensions {
	return u.win
}

// IDGenerator returns the allocator for new widget ids.
func (u *Ui) IDGenerator() *IDGenerator {
	return u.ids
}

// RectOf returns the rect of id as last set.
func (u *Ui) RectOf(id WidgetID) (Rect, bool) {
	n := u.graph.Widget(id)
	if n == nil {
		return Rect{}, false
	}
	return n.Rect, true
}

// WOf returns the width of id.
func (u *Ui) WOf(id WidgetID) (Scalar, bool) {
	r, ok := u.RectOf(id)
	return r.W(), ok
}

// HOf returns the height of id.
func (u *Ui) HOf(id WidgetID) (Scalar, bool) {
	r, ok := u.RectOf(id)
	return r.H(), ok
}

// WHOf returns the dimensions of id.
func (u *Ui) WHOf(id WidgetID) (Dimensions, bool) {
	r, ok := u.RectOf(id)
	return r.Dim(), ok
}

// XYOf returns the centre of id.
func (u *Ui) XYOf(id WidgetID) (Point, bool) {
	r, ok := u.RectOf(id)
	return r.XY(), ok
}

// KidAreaOf returns the kid area of id, padding applied.
func (u *Ui) KidAreaOf(id WidgetID) (Rect, bool) {
	n := u.graph.Widget(id)
	if n == nil {
		return Rect{}, false
	}
	return n.KidArea.Rect.Padding(n.KidArea.Pad), true
}

// ScrollOf returns the scroll state of id along axis.
func (u *Ui) ScrollOf(id WidgetID, axis Axis) (ScrollState, bool) {
	n := u.graph.Widget(id)
	if n == nil || n.Scroll(axis) == nil {
		return ScrollState{}, false
	}
	return *n.Scroll(axis), true
}

// VisibleArea returns the part of id not cropped by its ancestors.
func (u *Ui) VisibleArea(id WidgetID) (Rect, bool) {
	return graph.VisibleArea(u.graph, id)
}

// KidsBoundingBox returns the box around the visible areas of id's
// children that were set last frame.
func (u *Ui) KidsBoundingBox(id WidgetID) (Rect, bool) {
	return graph.KidsBoundingBox(u.graph, id, u.wasSet)
}

// WidgetInput returns id's view of the frame's input.
func (u *Ui) WidgetInput(id WidgetID) *WidgetInput {
	rect, _ := u.RectOf(id)
	visible, ok := u.VisibleArea(id)
	return input.NewWidget(id, rect, visible, ok, u.global)
}

// GlobalInput returns every event of the frame, unfiltered.
func (u *Ui) GlobalInput() []Event {
	return slices.Clone(u.global.Events())
}

// MouseXY returns the cursor position.
func (u *Ui) MouseXY() Point {
	return u.global.Current.Mouse.XY
}

// CapturingMouse returns the widget holding the mouse, or NoWidget.
func (u *Ui) CapturingMouse() WidgetID {
	return u.global.Current.Capture.Mouse()
}

// CapturingKeyboard returns the widget holding the keyboard, or NoWidget.
func (u *Ui) CapturingKeyboard() WidgetID {
	return u.global.Current.Capture.Keyboard()
}

// WidgetUnderMouse returns the topmost widget under the cursor.
func (u *Ui) WidgetUnderMouse() WidgetID {
	return u.global.Current.WidgetUnderMouse
}

// Kind returns the kind id was set with.
func (u *Ui) Kind(id WidgetID) (Kind, bool) {
	n := u.graph.Widget(id)
	if n == nil {
		return "", false
	}
	return n.Kind, true
}

// State returns the stored state of id.
func (u *Ui) State(id WidgetID) (any, bool) {
	n := u.graph.Widget(id)
	if n == nil {
		return nil, false
	}
	return n.State, true
}

// WidgetCount returns the number of graph nodes, placeholders included.
func (u *Ui) WidgetCount() int {
	return u.graph.NodeCount()
}

// DepthOrder returns the widgets of the last frame from back to front,
// scrollbars omitted.
func (u *Ui) DepthOrder() []WidgetID {
	return u.depthOrder.Widgets()
}

// PickWidget returns the topmost pickable widget at p.
func (u *Ui) PickWidget(p Point) (WidgetID, bool) {
	return graph.PickWidget(u.graph, u.depthOrder.Indices, p)
}

// PickWidgetIncludingGraphics is PickWidget without resolving graphic
// children to the widget they draw for.
func (u *Ui) PickWidgetIncludingGraphics(p Point) (WidgetID, bool) {
	return graph.PickWidgetIncludingGraphics(u.graph, u.depthOrder.Indices, p)
}

// PickScrollableWidget returns the topmost scrollable widget at p.
func (u *Ui) PickScrollableWidget(p Point) (WidgetID, bool) {
	return graph.PickScrollableWidget(u.graph, u.depthOrder.Indices, p)
}

func (u *Ui) wasSet(id WidgetID) bool {
	_, ok := u.prevUpdated[id]
	return ok
}

func (u *Ui) isSet(id WidgetID) bool {
	_, ok := u.updated[id]
	return ok
}

// push queues e for the frame being set or, while one is in progress,
// for the next.
func (u *Ui) push(e Event) {
	if u.inFrame {
		u.global.PushPending(e)
		return
	}
	u.global.Push(e)
}

func (u *Ui) capture(src Source, id WidgetID) bool {
	if !u.global.Current.Capture.Grant(src, id) {
		return u.global.Current.Capture.Holder(src) == id
	}
	u.global.PushPending(CaptureEvent{Widget: id, Source: src})
	return true
}

func (u *Ui) uncapture(src Source, id WidgetID) bool {
	if !u.global.Current.Capture.Release(src, id) {
		return false
	}
	u.global.PushPending(UncaptureEvent{Widget: id, Source: src})
	return true
}
