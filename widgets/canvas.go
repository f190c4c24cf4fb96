package widgets

import gui "github.com/grindlemire/go-gui"

// CanvasStyle is how a canvas is drawn.
type CanvasStyle struct {
	// Color falls back to Theme.BackgroundColor when zero.
	Color gui.Color
	// BorderColor falls back to Theme.BorderColor when zero.
	BorderColor gui.Color
	// Border is the border width. Negative means none; zero falls back
	// to Theme.BorderWidth.
	Border gui.Scalar
	// Padding is the space between the border and the kid area.
	Padding gui.Scalar
	// Title is drawn in a bar across the top when set.
	Title string
	// TitleFontSize falls back to Theme.FontSizeSmall, then
	// Theme.FontSize.
	TitleFontSize int
}

// Resolve fills unset fields from the theme.
func (s CanvasStyle) Resolve(t *gui.Theme) CanvasStyle {
	s.Color = orDefault(s.Color, t.BackgroundColor)
	s.BorderColor = orDefault(s.BorderColor, t.BorderColor)
	switch {
	case s.Border == 0:
		s.Border = t.BorderWidth
	case s.Border < 0:
		s.Border = 0
	}
	if s.TitleFontSize <= 0 {
		s.TitleFontSize = t.FontSizeSmall
	}
	if s.TitleFontSize <= 0 {
		s.TitleFontSize = t.FontSize()
	}
	return s
}

// TitleBarHeight is the height taken from the top of the kid area by
// the title, or zero without one.
func (s CanvasStyle) TitleBarHeight() gui.Scalar {
	if s.Title == "" {
		return 0
	}
	return gui.Scalar(s.TitleFontSize) * 3 / 2
}

// CanvasState holds the id of the title.
type CanvasState struct {
	Title gui.WidgetID
}

// Canvas is a container with a background, a border and a padded kid
// area, optionally titled. Combine with gui.WithScrollKids to scroll its
// children.
type Canvas struct {
	gui.Common
	style CanvasStyle
}

// NewCanvas returns a canvas configured by opts.
func NewCanvas(opts ...gui.Option) *Canvas {
	c := &Canvas{}
	c.Apply(opts...)
	return c
}

// Color sets the background color.
func (c *Canvas) Color(col gui.Color) *Canvas {
	c.style.Color = col
	return c
}

// Border sets the border width and color.
func (c *Canvas) Border(width gui.Scalar, col gui.Color) *Canvas {
	c.style.Border, c.style.BorderColor = width, col
	return c
}

// Pad sets the padding inside the border.
func (c *Canvas) Pad(pad gui.Scalar) *Canvas {
	c.style.Padding = pad
	return c
}

// Title sets the title text.
func (c *Canvas) Title(s string) *Canvas {
	c.style.Title = s
	return c
}

func (c *Canvas) Kind() gui.Kind { return KindCanvas }
func (c *Canvas) Style() any     { return c.style }

func (c *Canvas) InitState(ids *gui.IDGenerator) any {
	return CanvasState{Title: ids.Next()}
}

// KidArea is the rect inside the border, the padding and the title bar.
func (c *Canvas) KidArea(rect gui.Rect, theme *gui.Theme) gui.KidArea {
	s := c.style.Resolve(theme)
	inner := rect.Pad(s.Border)
	inner.Y = inner.Y.PadEnd(s.TitleBarHeight())
	return gui.KidArea{Rect: inner, Pad: gui.UniformPadding(s.Padding)}
}

func (c *Canvas) Update(a *gui.UpdateArgs) any {
	if c.style.Title == "" {
		return nil
	}
	st := gui.StateOf[CanvasState](a)
	s := c.style.Resolve(a.Theme)
	NewText(s.Title,
		gui.WithMidTopOf(a.ID, s.Border+(s.TitleBarHeight()-gui.Scalar(s.TitleFontSize))/2),
		gui.WithPlaceOnRect(),
		gui.WithGraphicsFor(a.ID),
	).FontSize(s.TitleFontSize).Set(a.Cell, st.Title)
	return nil
}

// Set sets the canvas.
func (c *Canvas) Set(cell *gui.Cell, id gui.WidgetID) { cell.MustSet(id, c) }
