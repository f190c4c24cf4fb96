package widgets

import (
	"math"

	gui "github.com/grindlemire/go-gui"
)

// ShapeStyle is how a primitive shape is painted. The zero value fills
// with the theme's shape color.
type ShapeStyle struct {
	// Outline strokes the shape instead of filling it.
	Outline bool
	// Color falls back to Theme.ShapeColor when zero.
	Color gui.Color
	// Thickness is the outline width; zero falls back to
	// Theme.BorderWidth.
	Thickness gui.Scalar
}

// Resolve fills unset fields from the theme.
func (s ShapeStyle) Resolve(t *gui.Theme) ShapeStyle {
	s.Color = orDefault(s.Color, t.ShapeColor)
	if s.Thickness == 0 {
		s.Thickness = t.BorderWidth
	}
	return s
}

// Rectangle is a filled or outlined rectangle.
type Rectangle struct {
	gui.Common
	style ShapeStyle
}

// NewRectangle returns a rectangle configured by opts.
func NewRectangle(opts ...gui.Option) *Rectangle {
	r := &Rectangle{}
	r.Apply(opts...)
	return r
}

// Color sets the fill or outline color.
func (r *Rectangle) Color(c gui.Color) *Rectangle {
	r.style.Color = c
	return r
}

// Outline strokes the rectangle with the given thickness.
func (r *Rectangle) Outline(thickness gui.Scalar) *Rectangle {
	r.style.Outline, r.style.Thickness = true, thickness
	return r
}

func (r *Rectangle) Kind() gui.Kind                   { return KindRectangle }
func (r *Rectangle) InitState(*gui.IDGenerator) any   { return nil }
func (r *Rectangle) Style() any                       { return r.style }
func (r *Rectangle) Update(*gui.UpdateArgs) any       { return nil }
func (r *Rectangle) Set(c *gui.Cell, id gui.WidgetID) { c.MustSet(id, r) }

// Oval is an ellipse inscribed in its rect.
type Oval struct {
	gui.Common
	style ShapeStyle
}

// NewOval returns an oval configured by opts.
func NewOval(opts ...gui.Option) *Oval {
	o := &Oval{}
	o.Apply(opts...)
	return o
}

// Color sets the fill or outline color.
func (o *Oval) Color(c gui.Color) *Oval {
	o.style.Color = c
	return o
}

// Outline strokes the oval with the given thickness.
func (o *Oval) Outline(thickness gui.Scalar) *Oval {
	o.style.Outline, o.style.Thickness = true, thickness
	return o
}

func (o *Oval) Kind() gui.Kind                   { return KindOval }
func (o *Oval) InitState(*gui.IDGenerator) any   { return nil }
func (o *Oval) Style() any                       { return o.style }
func (o *Oval) Update(*gui.UpdateArgs) any       { return nil }
func (o *Oval) Set(c *gui.Cell, id gui.WidgetID) { c.MustSet(id, o) }

// IsOver limits hits to the ellipse.
func (o *Oval) IsOver() gui.IsOverFunc { return isOverOval }

func isOverOval(n *gui.Node, p gui.Point) gui.IsOver {
	rx, ry := n.Rect.W()/2, n.Rect.H()/2
	if rx <= 0 || ry <= 0 {
		return gui.Hit(false)
	}
	d := p.Sub(n.Rect.XY())
	nx, ny := d.X/rx, d.Y/ry
	return gui.Hit(nx*nx+ny*ny <= 1)
}

// PolygonStyle is a polygon's paint and its points, relative to the
// centre of the widget's rect.
type PolygonStyle struct {
	ShapeStyle
	Points []gui.Point
}

// Polygon is a closed shape through its points.
type Polygon struct {
	gui.Common
	style PolygonStyle
}

// NewPolygon returns a polygon through points, given relative to the
// polygon's centre. Without explicit dimensions the polygon is sized to
// the points' bounding box.
func NewPolygon(points []gui.Point, opts ...gui.Option) *Polygon {
	p := &Polygon{style: PolygonStyle{Points: points}}
	p.Apply(opts...)
	return p
}

// Color sets the fill or outline color.
func (p *Polygon) Color(c gui.Color) *Polygon {
	p.style.Color = c
	return p
}

// Outline strokes the polygon with the given thickness.
func (p *Polygon) Outline(thickness gui.Scalar) *Polygon {
	p.style.Outline, p.style.Thickness = true, thickness
	return p
}

func (p *Polygon) Kind() gui.Kind                   { return KindPolygon }
func (p *Polygon) InitState(*gui.IDGenerator) any   { return nil }
func (p *Polygon) Style() any                       { return p.style }
func (p *Polygon) Update(*gui.UpdateArgs) any       { return nil }
func (p *Polygon) Set(c *gui.Cell, id gui.WidgetID) { c.MustSet(id, p) }

// DefaultSize is the bounding box of the points.
func (p *Polygon) DefaultSize(*gui.Cell) (w, h gui.Dimension) {
	if len(p.style.Points) == 0 {
		return gui.Dimension{}, gui.Dimension{}
	}
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, pt := range p.style.Points {
		minX, maxX = min(minX, pt.X), max(maxX, pt.X)
		minY, maxY = min(minY, pt.Y), max(maxY, pt.Y)
	}
	return gui.Length(maxX - minX), gui.Length(maxY - minY)
}

// IsOver limits hits to the inside of the polygon.
func (p *Polygon) IsOver() gui.IsOverFunc { return isOverPolygon }

func isOverPolygon(n *gui.Node, p gui.Point) gui.IsOver {
	style, ok := n.Style.(PolygonStyle)
	if !ok || len(style.Points) < 3 {
		return gui.DefaultIsOver(n, p)
	}
	return gui.Hit(PointInPolygon(p.Sub(n.Rect.XY()), style.Points))
}

// PointInPolygon reports whether p lies inside the closed polygon pts,
// using the even-odd rule.
func PointInPolygon(p gui.Point, pts []gui.Point) bool {
	in := false
	j := len(pts) - 1
	for i := range pts {
		a, b := pts[i], pts[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
		j = i
	}
	return in
}
