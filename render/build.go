package render

import (
	gui "github.com/grindlemire/go-gui"
	"github.com/grindlemire/go-gui/text"
	"github.com/grindlemire/go-gui/widgets"
)

// DrawFunc emits the primitives of one widget. Emitted primitives get
// the widget's id and scissor rect filled in.
type DrawFunc func(n gui.NodeView, theme *gui.Theme, emit func(Primitive))

// Builder turns frames into primitives.
type Builder struct {
	font  *text.Cache
	kinds map[gui.Kind]DrawFunc
}

// NewBuilder returns a Builder that draws the widgets package's kinds
// and lays out text with font. A nil font uses the built-in font.
func NewBuilder(font *text.Cache) *Builder {
	if font == nil {
		font, _ = text.Default()
	}
	b := &Builder{font: font, kinds: make(map[gui.Kind]DrawFunc)}
	b.Handle(widgets.KindRectangle, drawRectangle)
	b.Handle(widgets.KindOval, drawOval)
	b.Handle(widgets.KindPolygon, drawPolygon)
	b.Handle(widgets.KindCanvas, drawCanvas)
	b.Handle(widgets.KindText, b.drawText)
	return b
}

// Handle draws widgets of kind with fn, replacing any earlier DrawFunc.
// Kinds without a DrawFunc draw nothing themselves.
func (b *Builder) Handle(kind gui.Kind, fn DrawFunc) {
	b.kinds[kind] = fn
}

// Build returns the frame's primitives, back to front.
func Build(f *gui.Frame) []Primitive {
	return NewBuilder(nil).Build(f)
}

// Build returns the frame's primitives, back to front. Widgets with no
// visible area are skipped.
func (b *Builder) Build(f *gui.Frame) []Primitive {
	if f == nil {
		return nil
	}
	theme := f.Theme
	if theme == nil {
		theme = gui.DefaultTheme()
	}
	var out []Primitive
	for _, v := range f.Order {
		n, ok := f.Node(v.ID)
		if !ok || !n.HasVisible {
			continue
		}
		emit := func(p Primitive) {
			p.ID, p.Scissor = n.ID, n.Visible
			out = append(out, p)
		}
		switch v.Kind {
		case gui.VisitScrollbar:
			drawScrollbars(n, theme, emit)
		default:
			if fn, ok := b.kinds[n.Kind]; ok {
				fn(n, theme, emit)
			}
		}
	}
	return out
}

func drawRectangle(n gui.NodeView, theme *gui.Theme, emit func(Primitive)) {
	s, _ := n.Style.(widgets.ShapeStyle)
	emit(shape(KindRectangle, n.Rect, s.Resolve(theme)))
}

func drawOval(n gui.NodeView, theme *gui.Theme, emit func(Primitive)) {
	s, _ := n.Style.(widgets.ShapeStyle)
	emit(shape(KindOval, n.Rect, s.Resolve(theme)))
}

func drawPolygon(n gui.NodeView, theme *gui.Theme, emit func(Primitive)) {
	s, _ := n.Style.(widgets.PolygonStyle)
	if len(s.Points) < 3 {
		return
	}
	p := shape(KindPolygon, n.Rect, s.ShapeStyle.Resolve(theme))
	centre := n.Rect.XY()
	p.Points = make([]gui.Point, len(s.Points))
	for i, pt := range s.Points {
		p.Points[i] = pt.Add(centre)
	}
	emit(p)
}

func drawCanvas(n gui.NodeView, theme *gui.Theme, emit func(Primitive)) {
	s, _ := n.Style.(widgets.CanvasStyle)
	s = s.Resolve(theme)
	emit(Primitive{Kind: KindRectangle, Rect: n.Rect, Color: s.Color})
	if s.Border > 0 {
		emit(Primitive{
			Kind:      KindRectangle,
			Rect:      n.Rect,
			Color:     s.BorderColor,
			Outline:   true,
			Thickness: s.Border,
		})
	}
}

func shape(kind Kind, r gui.Rect, s widgets.ShapeStyle) Primitive {
	p := Primitive{Kind: kind, Rect: r, Color: s.Color, Outline: s.Outline}
	if s.Outline {
		p.Thickness = s.Thickness
	}
	return p
}

// drawText lays the text out in lines from the top of the rect.
func (b *Builder) drawText(n gui.NodeView, theme *gui.Theme, emit func(Primitive)) {
	s, _ := n.Style.(widgets.TextStyle)
	s = s.Resolve(theme)
	if s.Text == "" {
		return
	}

	lines := b.font.Lines(s.Text, s.FontSize, n.Rect.W(), s.Wrap)
	lh := b.font.LineHeight(s.FontSize)
	p := Primitive{Kind: KindText, Rect: n.Rect, Color: s.Color, FontSize: s.FontSize}
	top := n.Rect.Top()
	for _, l := range lines {
		w := b.font.Width(l, s.FontSize)
		line := gui.Rect{
			X: gui.Range{Start: 0, End: w}.AlignTo(s.Justify, n.Rect.X),
			Y: gui.Range{Start: top - lh, End: top},
		}
		p.Lines = append(p.Lines, TextLine{Text: l, Rect: line})
		top -= lh + s.LineSpacing
	}
	emit(p)
}

// drawScrollbars emits a track and a handle for each axis that can
// scroll.
func drawScrollbars(n gui.NodeView, theme *gui.Theme, emit func(Primitive)) {
	for _, s := range []*gui.ScrollState{n.XScroll, n.YScroll} {
		if s == nil {
			continue
		}
		track, ok := s.Track(n.KidArea.Rect)
		if !ok {
			continue
		}
		handle, _ := s.Handle(n.KidArea.Rect)
		emit(Primitive{Kind: KindRectangle, Rect: track, Color: ScrollbarTrackColor(theme)})
		emit(Primitive{Kind: KindRectangle, Rect: handle, Color: ScrollbarHandleColor(theme)})
	}
}

// ScrollbarTrackColor is the color of a scrollbar's track.
func ScrollbarTrackColor(t *gui.Theme) gui.Color {
	return t.ShapeColor.WithAlpha(0x40)
}

// ScrollbarHandleColor is the color of a scrollbar's handle.
func ScrollbarHandleColor(t *gui.Theme) gui.Color {
	return t.ShapeColor.Contrasting().WithAlpha(0xc0)
}
