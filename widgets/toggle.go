package widgets

import gui "github.com/grindlemire/go-gui"

// ToggleStyle is how a toggle is drawn.
type ToggleStyle struct {
	// Color is used when on; it falls back to Theme.ShapeColor. Off
	// darkens it.
	Color gui.Color
	// LabelColor falls back to Theme.LabelColor when zero.
	LabelColor gui.Color
}

// ToggleState holds the ids of a toggle's graphics.
type ToggleState struct {
	Rect, Label gui.WidgetID
}

// Toggle is a button that flips a boolean. Its event is the value after
// each click this frame, oldest first.
type Toggle struct {
	gui.Common
	value bool
	label string
	style ToggleStyle
}

// NewToggle returns a toggle showing value.
func NewToggle(value bool, opts ...gui.Option) *Toggle {
	t := &Toggle{value: value}
	t.Apply(opts...)
	return t
}

// Label sets the text drawn on the toggle.
func (t *Toggle) Label(l string) *Toggle {
	t.label = l
	return t
}

// Color sets the color when on.
func (t *Toggle) Color(c gui.Color) *Toggle {
	t.style.Color = c
	return t
}

// LabelColor sets the label color.
func (t *Toggle) LabelColor(c gui.Color) *Toggle {
	t.style.LabelColor = c
	return t
}

func (t *Toggle) Kind() gui.Kind { return KindToggle }
func (t *Toggle) Style() any     { return t.style }

func (t *Toggle) InitState(ids *gui.IDGenerator) any {
	return ToggleState{Rect: ids.Next(), Label: ids.Next()}
}

func (t *Toggle) Update(a *gui.UpdateArgs) any {
	st := gui.StateOf[ToggleState](a)
	trackPress(a)

	var values []bool
	value := t.value
	for range a.Input.ClicksOf(gui.MouseLeft) {
		value = !value
		values = append(values, value)
	}

	color := orDefault(t.style.Color, a.Theme.ShapeColor)
	if !value {
		color = color.Darken(0.5)
	}
	NewRectangle(
		gui.WithMiddleOf(a.ID),
		gui.WithWHOf(a.ID),
		gui.WithGraphicsFor(a.ID),
	).Color(interactionOf(a.Input).Color(color)).Set(a.Cell, st.Rect)

	if t.label != "" {
		NewText(t.label,
			gui.WithMiddleOf(a.ID),
			gui.WithGraphicsFor(a.ID),
		).Color(t.style.LabelColor).Set(a.Cell, st.Label)
	}
	return values
}

// Set sets the toggle. It returns the value after this frame's clicks
// and whether any click happened.
func (t *Toggle) Set(c *gui.Cell, id gui.WidgetID) (bool, bool) {
	values, _ := c.MustSet(id, t).([]bool)
	if len(values) == 0 {
		return t.value, false
	}
	return values[len(values)-1], true
}
