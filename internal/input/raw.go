package input

import "github.com/grindlemire/go-gui/internal/geom"

// Input is a raw event from the windowing layer.
// Use a type switch to handle specific inputs.
type Input interface {
	isInput()
}

// Press is a button or key going down.
type Press struct {
	Button Button
}

// Release is a button or key going up.
type Release struct {
	Button Button
}

// MotionKind distinguishes cursor movement from scrolling.
type MotionKind uint8

const (
	// MotionCursor carries the absolute cursor position.
	MotionCursor MotionKind = iota
	// MotionScroll carries a scroll delta. Positive y moves content up,
	// revealing what lies below; positive x moves content right.
	MotionScroll
)

// Motion is cursor movement or scrolling.
type Motion struct {
	Kind MotionKind
	X, Y geom.Scalar
}

// CursorAt returns a cursor Motion to (x, y).
func CursorAt(x, y geom.Scalar) Motion {
	return Motion{Kind: MotionCursor, X: x, Y: y}
}

// ScrollBy returns a scroll Motion by (x, y).
func ScrollBy(x, y geom.Scalar) Motion {
	return Motion{Kind: MotionScroll, X: x, Y: y}
}

// Text is text entered by the user.
type Text struct {
	Text string
}

// Resize is the window changing size.
type Resize struct {
	W, H geom.Scalar
}

// Focus is the window gaining or losing focus.
type Focus struct {
	Focused bool
}

// Redraw asks for the window contents to be drawn again.
type Redraw struct{}

func (Press) isInput()   {}
func (Release) isInput() {}
func (Motion) isInput()  {}
func (Text) isInput()    {}
func (Resize) isInput()  {}
func (Focus) isInput()   {}
func (Redraw) isInput()  {}
