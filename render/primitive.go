package render

import (
	"fmt"

	gui "github.com/grindlemire/go-gui"
)

// Kind is the shape of a primitive.
type Kind uint8

const (
	KindRectangle Kind = iota
	KindOval
	KindPolygon
	KindText
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindRectangle:
		return "rectangle"
	case KindOval:
		return "oval"
	case KindPolygon:
		return "polygon"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// TextLine is one laid out line of a text primitive.
type TextLine struct {
	Text string
	// Rect is the line's box; its top is the top of the line's ascent.
	Rect gui.Rect
}

// Primitive is one thing to draw. Coordinates are in gui space: origin
// at the window centre, y up.
type Primitive struct {
	// ID is the widget that emitted the primitive.
	ID   gui.WidgetID
	Kind Kind
	Rect gui.Rect
	// Scissor is the rect drawing must be clipped to.
	Scissor gui.Rect
	Color   gui.Color
	// Outline strokes the shape with Thickness instead of filling it.
	Outline   bool
	Thickness gui.Scalar
	// Points are the absolute points of a polygon.
	Points []gui.Point
	// Lines and FontSize describe a text primitive.
	Lines    []TextLine
	FontSize int
}

// Drawer draws primitives. Backends implement it.
type Drawer interface {
	Draw(p Primitive) error
}

// DrawAll draws every primitive in order. It stops at the first error.
func DrawAll(d Drawer, prims []Primitive) error {
	for i, p := range prims {
		if err := d.Draw(p); err != nil {
			return fmt.Errorf("draw primitive %d (%v of widget %v): %w", i, p.Kind, p.ID, err)
		}
	}
	return nil
}
