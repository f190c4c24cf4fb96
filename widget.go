package gui

import (
	"reflect"

	"github.com/grindlemire/go-gui/internal/graph"
)

// WidgetID uniquely names one conceptual widget instance across frames.
type WidgetID = graph.ID

// NoWidget is the absence of a widget.
const NoWidget = graph.NoID

// Kind names a widget type. An id keeps the kind it was first set with.
type Kind = graph.Kind

// Node is the retained record for one widget, as seen by IsOver funcs.
type Node = graph.Node

// KidArea is the area of a widget within which its children are placed.
type KidArea = graph.KidArea

// IsOver is the result of a hit test.
type IsOver = graph.IsOver

// IsOverFunc tests whether a point lies over a node.
type IsOverFunc = graph.IsOverFunc

// ScrollState is the scroll position of a container along one axis.
type ScrollState = graph.ScrollState

// Hit returns an IsOver that reports b.
func Hit(b bool) IsOver { return graph.Hit(b) }

// DefaultIsOver is rect containment.
func DefaultIsOver(n *Node, p Point) IsOver { return graph.DefaultIsOver(n, p) }

// RedirectTo returns an IsOver that defers the hit test to id.
func RedirectTo(id WidgetID) IsOver { return graph.Redirect(id) }

// Widget is the contract every widget kind implements. A widget value
// describes one frame's configuration; the Ui keeps its state between
// frames keyed by id.
type Widget interface {
	// Base returns the shared builder state. Embedding Common provides it.
	Base() *Common
	// Kind names the widget type.
	Kind() Kind
	// InitState returns the state for a widget set for the first time.
	// Composite widgets allocate the ids of their children here.
	InitState(ids *IDGenerator) any
	// Style returns the declared style. Unset fields fall back to the
	// theme when the widget resolves them.
	Style() any
	// Update applies the frame's input and sets any child widgets. It
	// returns the widget's event for the caller of Set.
	Update(args *UpdateArgs) any
}

// DefaultSizer is implemented by widgets that have a natural size when
// no dimension is given. An unset Dimension falls back further.
type DefaultSizer interface {
	DefaultSize(c *Cell) (w, h Dimension)
}

// KidAreaer is implemented by widgets whose kid area differs from their
// rect.
type KidAreaer interface {
	KidArea(rect Rect, theme *Theme) KidArea
}

// OverChecker is implemented by widgets with a non rectangular hit area.
type OverChecker interface {
	IsOver() IsOverFunc
}

// IDGenerator allocates widget ids.
type IDGenerator struct {
	g *graph.Graph
}

// Next returns a fresh id.
func (gen *IDGenerator) Next() WidgetID {
	return gen.g.AddPlaceholder()
}

// NextN returns n fresh ids.
func (gen *IDGenerator) NextN(n int) []WidgetID {
	ids := make([]WidgetID, n)
	for i := range ids {
		ids[i] = gen.Next()
	}
	return ids
}

// UpdateArgs is everything a widget's Update receives.
type UpdateArgs struct {
	ID WidgetID
	// Parent is the widget's depth parent, or NoWidget.
	Parent WidgetID
	Rect   Rect
	// KidArea is where children are placed.
	KidArea KidArea
	Theme   *Theme
	// Input is the frame's input as seen by the widget.
	Input *WidgetInput
	// Cell sets child widgets.
	Cell *Cell

	state        any
	stateChanged bool
}

// State returns the widget's state.
func (a *UpdateArgs) State() any {
	return a.state
}

// SetState replaces the widget's state. Replacing it with an equal value
// does not mark the Ui as changed. States are compared by value, so
// state values must not be mutated in place.
func (a *UpdateArgs) SetState(s any) {
	if !reflect.DeepEqual(a.state, s) {
		a.stateChanged = true
	}
	a.state = s
}

// StateOf returns the widget's state as T, or the zero T when it holds
// another type.
func StateOf[T any](a *UpdateArgs) T {
	s, _ := a.state.(T)
	return s
}

// Set sets a child widget. It is Cell.Set.
func (a *UpdateArgs) Set(id WidgetID, w Widget) (any, error) {
	return a.Cell.Set(id, w)
}

// MustSet sets a child widget and panics on error. Widgets use it for the
// children whose ids they allocated in InitState.
func (a *UpdateArgs) MustSet(id WidgetID, w Widget) any {
	return a.Cell.MustSet(id, w)
}

// CaptureMouse asks for the mouse. It reports whether the widget holds
// it now. A widget cannot take the mouse from another holder.
func (a *UpdateArgs) CaptureMouse() bool {
	return a.Cell.Ui.capture(SourceMouse, a.ID)
}

// UncaptureMouse releases the mouse if the widget holds it.
func (a *UpdateArgs) UncaptureMouse() bool {
	return a.Cell.Ui.uncapture(SourceMouse, a.ID)
}

// CaptureKeyboard asks for the keyboard. It reports whether the widget
// holds it now.
func (a *UpdateArgs) CaptureKeyboard() bool {
	return a.Cell.Ui.capture(SourceKeyboard, a.ID)
}

// UncaptureKeyboard releases the keyboard if the widget holds it.
func (a *UpdateArgs) UncaptureKeyboard() bool {
	return a.Cell.Ui.uncapture(SourceKeyboard, a.ID)
}
