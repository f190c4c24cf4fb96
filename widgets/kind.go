package widgets

import gui "github.com/grindlemire/go-gui"

// Widget kinds.
const (
	KindRectangle gui.Kind = "Rectangle"
	KindOval      gui.Kind = "Oval"
	KindPolygon   gui.Kind = "Polygon"
	KindText      gui.Kind = "Text"
	KindButton    gui.Kind = "Button"
	KindCanvas    gui.Kind = "Canvas"
	KindSlider    gui.Kind = "Slider"
	KindToggle    gui.Kind = "Toggle"
	KindTextBox   gui.Kind = "TextBox"
)

// Interaction is how the mouse currently relates to a widget.
type Interaction uint8

const (
	Normal Interaction = iota
	// Highlighted is the cursor over the widget with no button held.
	Highlighted
	// Clicked is the widget holding the mouse.
	Clicked
)

// String returns the interaction name.
func (i Interaction) String() string {
	switch i {
	case Highlighted:
		return "highlighted"
	case Clicked:
		return "clicked"
	default:
		return "normal"
	}
}

// Color returns c adjusted for the interaction.
func (i Interaction) Color(c gui.Color) gui.Color {
	switch i {
	case Highlighted:
		return c.Highlighted()
	case Clicked:
		return c.Clicked()
	default:
		return c
	}
}

// interactionOf derives the widget's interaction from its input.
func interactionOf(in *gui.WidgetInput) Interaction {
	if in.IsCapturingMouse() {
		return Clicked
	}
	if m, ok := in.Mouse(); ok && m.IsOver {
		return Highlighted
	}
	return Normal
}

// trackPress captures the mouse on a left press and releases it on a
// left release. It reports whether the widget holds the mouse after the
// frame's events.
func trackPress(a *gui.UpdateArgs) bool {
	for _, p := range a.Input.Presses() {
		if p.Button == gui.Mouse(gui.MouseLeft) {
			a.CaptureMouse()
		}
	}
	for _, r := range a.Input.Releases() {
		if r.Button == gui.Mouse(gui.MouseLeft) {
			a.UncaptureMouse()
		}
	}
	return a.Input.IsCapturingMouse()
}

// orDefault returns c unless it is the zero Color.
func orDefault(c, def gui.Color) gui.Color {
	if c == (gui.Color{}) {
		return def
	}
	return c
}
