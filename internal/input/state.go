package input

import (
	"github.com/grindlemire/go-gui/internal/geom"
	"github.com/grindlemire/go-gui/internal/graph"
)

// ButtonPosition is the state of one mouse button.
type ButtonPosition struct {
	Down bool
	// XY is where the button went down.
	XY geom.Point
	// Widget is the widget under the mouse when the button went down.
	Widget graph.ID
}

// PressedButton is a mouse button that is currently down.
type PressedButton struct {
	Button MouseButton
	ButtonPosition
}

// MouseState is the position of the cursor and each of its buttons.
type MouseState struct {
	XY      geom.Point
	Buttons [numMouseButtons]ButtonPosition
}

// Press records b going down at xy over widget.
func (m *MouseState) Press(b MouseButton, xy geom.Point, widget graph.ID) {
	if b < numMouseButtons {
		m.Buttons[b] = ButtonPosition{Down: true, XY: xy, Widget: widget}
	}
}

// Release records b going up.
func (m *MouseState) Release(b MouseButton) {
	if b < numMouseButtons {
		m.Buttons[b] = ButtonPosition{Widget: graph.NoID}
	}
}

// Button returns the state of b.
func (m MouseState) Button(b MouseButton) ButtonPosition {
	if b >= numMouseButtons {
		return ButtonPosition{Widget: graph.NoID}
	}
	return m.Buttons[b]
}

// Pressed returns every button that is down, in button order.
func (m MouseState) Pressed() []PressedButton {
	var out []PressedButton
	for b, pos := range m.Buttons {
		if pos.Down {
			out = append(out, PressedButton{Button: MouseButton(b), ButtonPosition: pos})
		}
	}
	return out
}

// RelativeTo returns the state with positions made relative to xy.
func (m MouseState) RelativeTo(xy geom.Point) MouseState {
	m.XY = m.XY.Sub(xy)
	for i := range m.Buttons {
		if m.Buttons[i].Down {
			m.Buttons[i].XY = m.Buttons[i].XY.Sub(xy)
		}
	}
	return m
}

// State is a snapshot of every input device.
type State struct {
	Mouse            MouseState
	Modifiers        Modifier
	WidgetUnderMouse graph.ID
	Capture          Capture
}

// NewState returns a State with no widget under the mouse and nothing
// captured.
func NewState() State {
	s := State{WidgetUnderMouse: graph.NoID, Capture: NewCapture()}
	for i := range s.Mouse.Buttons {
		s.Mouse.Buttons[i].Widget = graph.NoID
	}
	return s
}
