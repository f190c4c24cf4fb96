package gui

// parentMode records how a widget's depth parent is chosen.
type parentMode uint8

const (
	parentInfer parentMode = iota
	parentExplicit
	parentNone
)

// Common holds the builder state shared by every widget: position,
// dimensions, relationships and scrolling. Widgets embed it and receive
// Options through their constructors. The zero value infers everything.
type Common struct {
	X, Y Position
	W, H Dimension

	// Depth orders siblings. Higher depths are drawn above lower ones.
	Depth float64
	// Floating detaches the widget from normal stacking so it is drawn
	// above its siblings and raised when clicked.
	Floating bool
	// CropKids clips children to the kid area.
	CropKids bool
	// ScrollX and ScrollY make the kid area scrollable along that axis.
	ScrollX, ScrollY bool

	parent      WidgetID
	parentMode  parentMode
	graphicsFor WidgetID
	isGraphic   bool
	onRect      bool
}

// Base returns c. It lets widgets that embed Common satisfy Widget.
func (c *Common) Base() *Common { return c }

// Apply runs every option against c.
func (c *Common) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// Parent returns the explicit parent and true if one was given.
func (c *Common) Parent() (WidgetID, bool) {
	if c.parentMode == parentExplicit {
		return c.parent, true
	}
	return NoWidget, false
}

// GraphicsFor returns the widget c is a graphic element of.
func (c *Common) GraphicsFor() (WidgetID, bool) {
	if c.isGraphic {
		return c.graphicsFor, true
	}
	return NoWidget, false
}

// Option configures Common.
type Option func(*Common)

// WithXY sets an absolute position.
func WithXY(x, y Scalar) Option {
	return func(c *Common) {
		c.X, c.Y = Absolute(x), Absolute(y)
	}
}

// WithX sets the x position.
func WithX(p Position) Option {
	return func(c *Common) { c.X = p }
}

// WithY sets the y position.
func WithY(p Position) Option {
	return func(c *Common) { c.Y = p }
}

// WithWH sets absolute dimensions.
func WithWH(w, h Scalar) Option {
	return func(c *Common) {
		c.W, c.H = Length(w), Length(h)
	}
}

// WithW sets the width.
func WithW(d Dimension) Option {
	return func(c *Common) { c.W = d }
}

// WithH sets the height.
func WithH(d Dimension) Option {
	return func(c *Common) { c.H = d }
}

// WithWHOf copies the dimensions of id.
func WithWHOf(id WidgetID) Option {
	return func(c *Common) {
		c.W, c.H = LengthOf(id, 0), LengthOf(id, 0)
	}
}

// WithKidAreaWHOf fills the kid area of id, less pad on every side.
func WithKidAreaWHOf(id WidgetID, pad Scalar) Option {
	return func(c *Common) {
		c.W, c.H = KidAreaLengthOf(id, pad), KidAreaLengthOf(id, pad)
	}
}

// WithParent sets the depth parent.
func WithParent(id WidgetID) Option {
	return func(c *Common) {
		c.parent, c.parentMode = id, parentExplicit
	}
}

// WithNoParent makes the widget a root with no depth parent.
func WithNoParent() Option {
	return func(c *Common) {
		c.parent, c.parentMode = NoWidget, parentNone
	}
}

// WithGraphicsFor marks the widget as a graphic element of id. Hits on
// the widget resolve to id, and id's scroll offset is not applied to it
// twice.
func WithGraphicsFor(id WidgetID) Option {
	return func(c *Common) {
		c.graphicsFor, c.isGraphic = id, true
	}
}

// WithDepth sets the sibling depth.
func WithDepth(d float64) Option {
	return func(c *Common) { c.Depth = d }
}

// WithFloating detaches the widget from normal stacking.
func WithFloating() Option {
	return func(c *Common) { c.Floating = true }
}

// WithCropKids clips children to the kid area.
func WithCropKids() Option {
	return func(c *Common) { c.CropKids = true }
}

// WithScrollKids makes both axes scrollable.
func WithScrollKids() Option {
	return func(c *Common) { c.ScrollX, c.ScrollY = true, true }
}

// WithScrollKidsVertically makes the y axis scrollable.
func WithScrollKidsVertically() Option {
	return func(c *Common) { c.ScrollY = true }
}

// WithScrollKidsHorizontally makes the x axis scrollable.
func WithScrollKidsHorizontally() Option {
	return func(c *Common) { c.ScrollX = true }
}

// WithPlaceOnRect makes Placed positions use the parent's full rect
// rather than its padded kid area.
func WithPlaceOnRect() Option {
	return func(c *Common) { c.onRect = true }
}

// WithDownFrom places the widget amt below id, aligned to its left edge.
func WithDownFrom(id WidgetID, amt Scalar) Option {
	return func(c *Common) {
		c.X, c.Y = Aligned(AlignStart).Of(id), Before(amt).Of(id)
	}
}

// WithUpFrom places the widget amt above id, aligned to its left edge.
func WithUpFrom(id WidgetID, amt Scalar) Option {
	return func(c *Common) {
		c.X, c.Y = Aligned(AlignStart).Of(id), After(amt).Of(id)
	}
}

// WithRightFrom places the widget amt right of id, aligned to its top.
func WithRightFrom(id WidgetID, amt Scalar) Option {
	return func(c *Common) {
		c.X, c.Y = After(amt).Of(id), Aligned(AlignEnd).Of(id)
	}
}

// WithLeftFrom places the widget amt left of id, aligned to its top.
func WithLeftFrom(id WidgetID, amt Scalar) Option {
	return func(c *Common) {
		c.X, c.Y = Before(amt).Of(id), Aligned(AlignEnd).Of(id)
	}
}

// WithDown places the widget amt below the previous widget.
func WithDown(amt Scalar) Option {
	return func(c *Common) {
		c.X, c.Y = Aligned(AlignStart), Before(amt)
	}
}

// WithRight places the widget amt right of the previous widget.
func WithRight(amt Scalar) Option {
	return func(c *Common) {
		c.X, c.Y = After(amt), Aligned(AlignEnd)
	}
}

// WithXYRelativeTo offsets the widget from the middle of id.
func WithXYRelativeTo(id WidgetID, x, y Scalar) Option {
	return func(c *Common) {
		c.X, c.Y = Relative(x).Of(id), Relative(y).Of(id)
	}
}

// WithAlignMiddleOf centres the widget on id along both axes.
func WithAlignMiddleOf(id WidgetID) Option {
	return func(c *Common) {
		c.X, c.Y = Aligned(AlignMiddle).Of(id), Aligned(AlignMiddle).Of(id)
	}
}

// WithMiddleOf places the widget in the middle of id's kid area and
// makes id its parent.
func WithMiddleOf(id WidgetID) Option {
	return placeOf(id, AlignMiddle, AlignMiddle, 0)
}

// WithTopLeftOf places the widget in the top left of id's kid area.
func WithTopLeftOf(id WidgetID, margin Scalar) Option {
	return placeOf(id, AlignStart, AlignEnd, margin)
}

// WithTopRightOf places the widget in the top right of id's kid area.
func WithTopRightOf(id WidgetID, margin Scalar) Option {
	return placeOf(id, AlignEnd, AlignEnd, margin)
}

// WithBottomLeftOf places the widget in the bottom left of id's kid area.
func WithBottomLeftOf(id WidgetID, margin Scalar) Option {
	return placeOf(id, AlignStart, AlignStart, margin)
}

// WithBottomRightOf places the widget in the bottom right of id's kid
// area.
func WithBottomRightOf(id WidgetID, margin Scalar) Option {
	return placeOf(id, AlignEnd, AlignStart, margin)
}

// WithMidTopOf places the widget at the top middle of id's kid area.
func WithMidTopOf(id WidgetID, margin Scalar) Option {
	return placeOf(id, AlignMiddle, AlignEnd, margin)
}

// WithMidBottomOf places the widget at the bottom middle of id's kid
// area.
func WithMidBottomOf(id WidgetID, margin Scalar) Option {
	return placeOf(id, AlignMiddle, AlignStart, margin)
}

// WithMidLeftOf places the widget at the left middle of id's kid area.
func WithMidLeftOf(id WidgetID, margin Scalar) Option {
	return placeOf(id, AlignStart, AlignMiddle, margin)
}

// WithMidRightOf places the widget at the right middle of id's kid area.
func WithMidRightOf(id WidgetID, margin Scalar) Option {
	return placeOf(id, AlignEnd, AlignMiddle, margin)
}

func placeOf(id WidgetID, x, y Align, margin Scalar) Option {
	return func(c *Common) {
		c.X, c.Y = Placed(x, margin).Of(id), Placed(y, margin).Of(id)
	}
}
