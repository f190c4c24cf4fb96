package widgets

import (
	gui "github.com/grindlemire/go-gui"
	"github.com/grindlemire/go-gui/text"
)

// TextStyle is a text widget's content and how it is drawn.
type TextStyle struct {
	Text string
	// Color falls back to Theme.LabelColor when zero.
	Color gui.Color
	// FontSize falls back to Theme.FontSize when zero.
	FontSize int
	Wrap     text.Wrap
	// Justify aligns each line within the rect.
	Justify gui.Align
	// LineSpacing is extra space between lines.
	LineSpacing gui.Scalar
}

// Resolve fills unset fields from the theme.
func (s TextStyle) Resolve(t *gui.Theme) TextStyle {
	s.Color = orDefault(s.Color, t.LabelColor)
	if s.FontSize <= 0 {
		s.FontSize = t.FontSize()
	}
	return s
}

// Text is one or more lines of text.
type Text struct {
	gui.Common
	style TextStyle
	font  *text.Cache
}

// NewText returns a text widget showing s.
func NewText(s string, opts ...gui.Option) *Text {
	t := &Text{style: TextStyle{Text: s}}
	t.Apply(opts...)
	return t
}

// Color sets the text color.
func (t *Text) Color(c gui.Color) *Text {
	t.style.Color = c
	return t
}

// FontSize sets the font size.
func (t *Text) FontSize(size int) *Text {
	t.style.FontSize = size
	return t
}

// Wrap sets how long lines break. Wrapping needs a fixed width.
func (t *Text) Wrap(w text.Wrap) *Text {
	t.style.Wrap = w
	return t
}

// Justify aligns the lines within the rect.
func (t *Text) Justify(a gui.Align) *Text {
	t.style.Justify = a
	return t
}

// LineSpacing adds space between lines.
func (t *Text) LineSpacing(s gui.Scalar) *Text {
	t.style.LineSpacing = s
	return t
}

// Font measures with c instead of the built-in font.
func (t *Text) Font(c *text.Cache) *Text {
	t.font = c
	return t
}

func (t *Text) Kind() gui.Kind                   { return KindText }
func (t *Text) InitState(*gui.IDGenerator) any   { return nil }
func (t *Text) Style() any                       { return t.style }
func (t *Text) Update(*gui.UpdateArgs) any       { return nil }
func (t *Text) Set(c *gui.Cell, id gui.WidgetID) { c.MustSet(id, t) }

// DefaultSize fits the text. With a fixed width and wrapping the height
// fits the wrapped lines.
func (t *Text) DefaultSize(c *gui.Cell) (w, h gui.Dimension) {
	font := t.font
	if font == nil {
		// A missing font leaves font nil, which estimates.
		font, _ = text.Default()
	}
	style := t.style.Resolve(c.Theme())

	maxWidth := 0.0
	if t.W.Kind == gui.DimensionAbsolute {
		maxWidth = t.W.Length
	}
	lines := font.Lines(style.Text, style.FontSize, maxWidth, style.Wrap)
	return gui.Length(font.MaxWidth(lines, style.FontSize)),
		gui.Length(LinesHeight(font, len(lines), style))
}

// LinesHeight is the height of n lines drawn with style.
func LinesHeight(font *text.Cache, n int, style TextStyle) gui.Scalar {
	if n <= 0 {
		return 0
	}
	return font.Height(n, style.FontSize) + gui.Scalar(n-1)*style.LineSpacing
}
