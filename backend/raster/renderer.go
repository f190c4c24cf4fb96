package raster

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	gui "github.com/grindlemire/go-gui"
	"github.com/grindlemire/go-gui/internal/debug"
	"github.com/grindlemire/go-gui/render"
	"github.com/grindlemire/go-gui/text"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithFont draws text with c instead of the built-in font.
func WithFont(c *text.Cache) Option {
	return func(r *Renderer) { r.font = c }
}

// WithBackground clears to c instead of the theme's background color.
func WithBackground(c gui.Color) Option {
	return func(r *Renderer) { r.background = &c }
}

// Renderer rasterises primitives onto a fixed size image. The image's
// centre is the gui origin. A Renderer is not safe for concurrent use;
// use one per goroutine.
type Renderer struct {
	dc         *gg.Context
	w, h       int
	font       *text.Cache
	builder    *render.Builder
	background *gui.Color
}

// New returns a w by h pixel Renderer.
func New(w, h int, opts ...Option) (*Renderer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("raster: size must be positive, got %dx%d", w, h)
	}
	r := &Renderer{w: w, h: h}
	for _, opt := range opts {
		opt(r)
	}
	if r.font == nil {
		// Without the built-in font text is skipped and shapes still draw.
		r.font, _ = text.Default()
	}
	r.builder = render.NewBuilder(r.font)
	r.dc = gg.NewContext(w, h)
	return r, nil
}

// Builder returns the builder used by Render, for registering extra
// widget kinds.
func (r *Renderer) Builder() *render.Builder {
	return r.builder
}

// Render clears the image and draws f.
func (r *Renderer) Render(f *gui.Frame) error {
	if f == nil {
		return errors.New("raster: nil frame")
	}
	bg := gui.Black
	if f.Theme != nil {
		bg = f.Theme.BackgroundColor
	}
	return r.RenderPrimitives(bg, r.builder.Build(f))
}

// RenderPrimitives clears the image to bg, unless WithBackground was
// given, and draws prims.
func (r *Renderer) RenderPrimitives(bg gui.Color, prims []render.Primitive) error {
	if r.background != nil {
		bg = *r.background
	}
	r.dc.ResetClip()
	r.dc.ClearWithColor(gg.FromColor(bg))
	if err := render.DrawAll(r, prims); err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	debug.Event("rasterised", "primitives", len(prims), "w", r.w, "h", r.h)
	return nil
}

// Draw rasterises one primitive, clipped to its scissor rect.
func (r *Renderer) Draw(p render.Primitive) error {
	if p.Scissor.IsEmpty() {
		return nil
	}
	x, y := r.toPixel(p.Scissor.TopLeft())
	r.dc.ClipRect(x, y, p.Scissor.W(), p.Scissor.H())
	defer r.dc.ResetClip()
	r.dc.SetColor(p.Color)

	switch p.Kind {
	case render.KindRectangle:
		x, y := r.toPixel(p.Rect.TopLeft())
		r.dc.DrawRectangle(x, y, p.Rect.W(), p.Rect.H())
	case render.KindOval:
		cx, cy := r.toPixel(p.Rect.XY())
		r.dc.DrawEllipse(cx, cy, p.Rect.W()/2, p.Rect.H()/2)
	case render.KindPolygon:
		if len(p.Points) < 3 {
			return nil
		}
		r.dc.MoveTo(r.toPixel(p.Points[0]))
		for _, pt := range p.Points[1:] {
			r.dc.LineTo(r.toPixel(pt))
		}
		r.dc.ClosePath()
	case render.KindText:
		r.drawText(p)
		return nil
	default:
		return fmt.Errorf("unknown primitive kind %v", p.Kind)
	}

	if p.Outline {
		r.dc.SetLineWidth(p.Thickness)
		return r.dc.Stroke()
	}
	return r.dc.Fill()
}

// drawText draws each line on its baseline. Lines entirely outside the
// scissor rect are skipped.
func (r *Renderer) drawText(p render.Primitive) {
	face := r.font.Face(p.FontSize)
	if face == nil {
		return
	}
	r.dc.SetFont(face)
	ascent := face.Metrics().Ascent
	for _, l := range p.Lines {
		if _, ok := l.Rect.Overlap(p.Scissor); !ok {
			continue
		}
		x, y := r.toPixel(gui.Pt(l.Rect.Left(), l.Rect.Top()-ascent))
		r.dc.DrawString(l.Text, x, y)
	}
}

// toPixel maps a gui point, origin at the centre and y up, to image
// coordinates.
func (r *Renderer) toPixel(p gui.Point) (float64, float64) {
	return p.X + float64(r.w)/2, float64(r.h)/2 - p.Y
}

// Image returns the rendered image.
func (r *Renderer) Image() image.Image {
	return r.dc.Image()
}

// SavePNG writes the image to path.
func (r *Renderer) SavePNG(path string) error {
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("raster: save %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes the image to w as PNG.
func (r *Renderer) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

// Close releases the drawing context.
func (r *Renderer) Close() error {
	return r.dc.Close()
}
