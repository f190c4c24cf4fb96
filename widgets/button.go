package widgets

import gui "github.com/grindlemire/go-gui"

// ButtonStyle is how a button is drawn.
type ButtonStyle struct {
	// Color falls back to Theme.ShapeColor when zero.
	Color gui.Color
	// LabelColor falls back to Theme.LabelColor when zero.
	LabelColor gui.Color
	// LabelFontSize falls back to Theme.FontSize when zero.
	LabelFontSize int
}

// ButtonState holds the ids of a button's graphics.
type ButtonState struct {
	Rect, Label gui.WidgetID
}

// Button is a clickable rectangle with an optional label. Its event is
// the number of left clicks this frame.
type Button struct {
	gui.Common
	label string
	style ButtonStyle
}

// NewButton returns a button showing label.
func NewButton(label string, opts ...gui.Option) *Button {
	b := &Button{label: label}
	b.Apply(opts...)
	return b
}

// Color sets the button color.
func (b *Button) Color(c gui.Color) *Button {
	b.style.Color = c
	return b
}

// LabelColor sets the label color.
func (b *Button) LabelColor(c gui.Color) *Button {
	b.style.LabelColor = c
	return b
}

// LabelFontSize sets the label font size.
func (b *Button) LabelFontSize(size int) *Button {
	b.style.LabelFontSize = size
	return b
}

func (b *Button) Kind() gui.Kind { return KindButton }
func (b *Button) Style() any     { return b.style }

func (b *Button) InitState(ids *gui.IDGenerator) any {
	return ButtonState{Rect: ids.Next(), Label: ids.Next()}
}

func (b *Button) Update(a *gui.UpdateArgs) any {
	st := gui.StateOf[ButtonState](a)
	trackPress(a)
	clicks := a.Input.ClicksOf(gui.MouseLeft)

	color := interactionOf(a.Input).Color(orDefault(b.style.Color, a.Theme.ShapeColor))
	NewRectangle(
		gui.WithMiddleOf(a.ID),
		gui.WithWHOf(a.ID),
		gui.WithGraphicsFor(a.ID),
	).Color(color).Set(a.Cell, st.Rect)

	if b.label != "" {
		NewText(b.label,
			gui.WithMiddleOf(a.ID),
			gui.WithGraphicsFor(a.ID),
		).Color(b.style.LabelColor).FontSize(b.style.LabelFontSize).Set(a.Cell, st.Label)
	}
	return clicks
}

// Set sets the button and returns its click count.
func (b *Button) Set(c *gui.Cell, id gui.WidgetID) int {
	n, _ := c.MustSet(id, b).(int)
	return n
}
