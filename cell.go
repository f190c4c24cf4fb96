package gui

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/grindlemire/go-gui/internal/debug"
	"github.com/grindlemire/go-gui/internal/graph"
)

// Cell is one frame's set phase. Obtain it from Ui.SetWidgets, set every
// widget of the frame and call End.
type Cell struct {
	*Ui

	errs  []error
	ended bool
}

// SetWidgets begins a frame. It sets the root window widget and returns
// the Cell through which the frame's widgets are set.
func (u *Ui) SetWidgets() *Cell {
	if u == nil {
		panic("gui: nil ui in SetWidgets")
	}
	if u.inFrame {
		panic("gui: SetWidgets called before the previous frame ended")
	}
	u.inFrame = true
	u.prevWidget = NoWidget
	u.currentParent = NoWidget
	u.instantiations = 0
	clear(u.updated)

	c := &Cell{Ui: u}
	win := &windowWidget{}
	win.Apply(WithNoParent(), WithXY(0, 0), WithWH(u.win.W, u.win.H))
	c.Set(u.window, win)

	u.prevWidget = NoWidget
	u.currentParent = u.window
	return c
}

// Update runs one frame: it calls fn with a fresh Cell and ends the frame.
func (u *Ui) Update(fn func(c *Cell)) error {
	c := u.SetWidgets()
	fn(c)
	return c.End()
}

// Set resolves and stores the widget id for this frame and returns the
// widget's event. Setting an id that was first set with another kind
// returns an error wrapping graph.ErrKindMismatch and leaves the node as
// it was. The error is also reported by End.
func (c *Cell) Set(id WidgetID, w Widget) (any, error) {
	if c.ended {
		return nil, errors.New("gui: Set called after End")
	}
	ev, err := c.Ui.set(c, id, w)
	if err != nil {
		debug.Log("set %v (%s) failed: %v", id, w.Kind(), err)
		c.errs = append(c.errs, err)
	}
	return ev, err
}

// MustSet is Set for ids whose kind is fixed by the caller. It panics on
// error.
func (c *Cell) MustSet(id WidgetID, w Widget) any {
	ev, err := c.Set(id, w)
	if err != nil {
		panic(fmt.Sprintf("gui: MustSet(%v): %v", id, err))
	}
	return ev
}

// End finishes the frame. Capture held by widgets that were not set is
// released, the depth order and the widget under the mouse are rebuilt,
// and the frame's events are dropped. It returns every error Set
// returned during the frame.
func (c *Cell) End() error {
	if c.ended {
		return errors.Join(c.errs...)
	}
	c.ended = true
	u := c.Ui

	for _, src := range []Source{SourceMouse, SourceKeyboard} {
		holder := u.global.Current.Capture.Holder(src)
		if holder != NoWidget && !u.isSet(holder) {
			u.global.Current.Capture.ForceRelease(src)
			u.global.PushPending(UncaptureEvent{Widget: holder, Source: src})
		}
	}

	for id := range u.prevUpdated {
		if !u.isSet(id) {
			debug.Event("widget removed", "id", id)
			u.MarkDirty()
			break
		}
	}

	u.depthOrder.Update(u.graph, u.window, u.isSet)
	u.updateWidgetUnderMouse()

	u.changed = u.checkAndClearDirty()
	if u.changed {
		u.NeedsRedraw()
	}

	u.global.EndFrame()
	u.prevUpdated, u.updated = u.updated, u.prevUpdated
	clear(u.updated)
	u.inFrame = false
	return errors.Join(c.errs...)
}

// ScrollWidget scrolls id by (dx, dy) when it is next set. Positive dy
// moves the content up.
func (u *Ui) ScrollWidget(id WidgetID, dx, dy Scalar) {
	u.push(ScrollEvent{Widget: id, X: dx, Y: dy, Modifiers: u.global.Current.Modifiers})
}

func (u *Ui) updateWidgetUnderMouse() {
	id, ok := u.PickWidget(u.global.Current.Mouse.XY)
	if !ok {
		id = NoWidget
	}
	u.global.Current.WidgetUnderMouse = id
}

// set is the reconciliation step for one widget: edges, geometry, state
// and the widget's own Update, in that order.
func (u *Ui) set(c *Cell, id WidgetID, w Widget) (any, error) {
	common := w.Base()
	n, created, err := u.graph.GetOrCreate(id, w.Kind())
	if err != nil {
		return nil, err
	}

	x, y := common.X, common.Y
	if !x.IsSet() {
		x = u.theme.XPosition
	}
	if !y.IsSet() {
		y = u.theme.YPosition
	}

	parent, err := u.setEdges(id, common, x, y)
	if err != nil {
		return nil, err
	}

	dim := u.widgetDimensions(c, w, parent)
	onKidArea := !common.onRect
	xy := Pt(
		u.absFromPosition(x, AxisX, dim.W, parent, onKidArea),
		u.absFromPosition(y, AxisY, dim.H, parent, onKidArea),
	)
	xy = xy.Add(graph.ScrollOffset(u.graph, id))
	rect := RectFromXYDim(xy, dim)

	prev := *n
	wasSet := u.wasSet(id)

	kidArea := KidArea{Rect: rect}
	if k, ok := w.(KidAreaer); ok {
		kidArea = k.KidArea(rect, u.theme)
	}
	prevKidArea := kidArea
	if !created {
		prevKidArea = n.KidArea
	}
	n.XScroll, n.YScroll = u.scrollStates(id, common, prevKidArea, prev.XScroll, prev.YScroll)

	if n.Floating != nil && n.Floating.LastClicked == 0 {
		u.interactions++
		n.Floating.LastClicked = u.interactions
	}

	n.Rect = rect
	n.Depth = common.Depth
	n.KidArea = kidArea
	n.CropKids = common.CropKids
	n.InstantiationOrder = u.instantiations
	u.instantiations++
	n.IsOver = graph.DefaultIsOver
	if o, ok := w.(OverChecker); ok {
		n.IsOver = o.IsOver()
	}
	u.updated[id] = struct{}{}
	u.prevWidget, u.currentParent = id, parent

	state := n.State
	if created {
		state = w.InitState(u.ids)
	}
	style := w.Style()
	args := &UpdateArgs{
		ID:      id,
		Parent:  parent,
		Rect:    rect,
		KidArea: kidArea,
		Theme:   u.theme,
		Input:   u.WidgetInput(id),
		Cell:    c,
		state:   state,
	}

	u.updating = append(u.updating, id)
	event := w.Update(args)
	u.updating = u.updating[:len(u.updating)-1]

	n.State = args.state
	n.Style = style
	u.prevWidget, u.currentParent = id, parent

	if created || !wasSet || args.stateChanged ||
		prev.Rect != rect || prev.KidArea != kidArea ||
		prev.Depth != n.Depth || prev.CropKids != n.CropKids ||
		!sameScroll(prev.XScroll, n.XScroll) || !sameScroll(prev.YScroll, n.YScroll) ||
		!reflect.DeepEqual(prev.Style, style) {
		debug.Event("widget changed", "id", id, "kind", n.Kind, "created", created)
		u.MarkDirty()
	}
	return event, nil
}

// setEdges infers the widget's parent and records its edges. Inferred
// position and parent edges that would form a cycle are dropped; explicit
// ones return the error.
func (u *Ui) setEdges(id WidgetID, common *Common, x, y Position) (WidgetID, error) {
	parent := u.inferParent(id, common, x, y)
	graphic, _ := common.GraphicsFor()
	edges := graph.Edges{
		Depth:     parent,
		XPosition: u.positionTarget(x, parent),
		YPosition: u.positionTarget(y, parent),
		Graphic:   graphic,
		Floating:  common.Floating,
	}
	for _, ref := range []WidgetID{edges.Depth, edges.XPosition, edges.YPosition, edges.Graphic} {
		if ref != NoWidget {
			u.graph.Ensure(ref)
		}
	}
	if edges.XPosition == id {
		edges.XPosition = NoWidget
	}
	if edges.YPosition == id {
		edges.YPosition = NoWidget
	}

	_, explicit := common.Parent()
	for range 4 {
		err := u.graph.SetEdges(id, edges)
		var cycle *graph.CycleError
		if err == nil || !errors.As(err, &cycle) {
			return edges.Depth, err
		}
		switch {
		case cycle.Edge == graph.EdgeXPosition:
			edges.XPosition = NoWidget
		case cycle.Edge == graph.EdgeYPosition:
			edges.YPosition = NoWidget
		case cycle.Edge == graph.EdgeDepth && !explicit && edges.Depth != u.window && id != u.window:
			edges.Depth = u.window
		default:
			return NoWidget, err
		}
		debug.Event("dropped cyclic edge", "id", id, "edge", cycle.Edge, "parent", cycle.Parent)
	}
	return NoWidget, fmt.Errorf("gui: could not place %v without a cycle", id)
}

// inferParent picks the depth parent: the explicit parent, a Place
// target, the widget whose Update is running, the depth parent of the
// widget the position is relative to, the current parent, the window.
func (u *Ui) inferParent(id WidgetID, common *Common, x, y Position) WidgetID {
	if p, ok := common.Parent(); ok {
		return p
	}
	if common.parentMode == parentNone {
		return NoWidget
	}

	for _, pos := range []Position{x, y} {
		if pos.Kind == PositionPlace && pos.Target != NoWidget {
			return pos.Target
		}
	}
	if len(u.updating) > 0 {
		if top := u.updating[len(u.updating)-1]; top != id {
			return top
		}
	}
	for _, pos := range []Position{x, y} {
		if !pos.relative() || pos.Kind == PositionPlace {
			continue
		}
		target := u.positionTarget(pos, NoWidget)
		if target == NoWidget || target == id {
			continue
		}
		if p := u.graph.DepthParent(target); p != NoWidget && p != id {
			return p
		}
	}
	if u.currentParent != NoWidget && u.currentParent != id {
		return u.currentParent
	}
	if id == u.window {
		return NoWidget
	}
	return u.window
}

// widgetDimensions resolves width and height. Unset dimensions fall back
// to the theme, then the widget's natural size, then the previous widget,
// then the parent, then the window.
func (u *Ui) widgetDimensions(c *Cell, w Widget, parent WidgetID) Dimensions {
	common := w.Base()
	tw, th := u.theme.WidgetSize(w.Kind())
	var nw, nh Dimension
	if s, ok := w.(DefaultSizer); ok && (!common.W.IsSet() || !common.H.IsSet()) {
		nw, nh = s.DefaultSize(c)
	}

	resolve := func(axis Axis, candidates ...Dimension) Scalar {
		for _, d := range candidates {
			if !d.IsSet() {
				continue
			}
			if v, ok := u.resolveDimension(d, axis); ok {
				return v
			}
		}
		for _, id := range []WidgetID{u.prevWidget, parent} {
			if r, ok := u.RectOf(id); ok {
				return lengthAlong(r, axis)
			}
		}
		if axis == AxisX {
			return u.win.W
		}
		return u.win.H
	}

	return Dim(
		resolve(AxisX, common.W, tw, nw),
		resolve(AxisY, common.H, th, nh),
	)
}

// scrollStates steps the scroll state of each scrollable axis: bounds
// from the kids as placed last frame, then this frame's scroll events.
func (u *Ui) scrollStates(id WidgetID, common *Common, kidArea KidArea, prevX, prevY *ScrollState) (xs, ys *ScrollState) {
	if !common.ScrollX && !common.ScrollY {
		return nil, nil
	}
	kids, ok := graph.KidsBoundingBox(u.graph, id, u.wasSet)
	if common.ScrollX {
		s := graph.NewScrollState(AxisX, kidArea.Rect.X, kids.X, ok, prevX)
		xs = &s
	}
	if common.ScrollY {
		s := graph.NewScrollState(AxisY, kidArea.Rect.Y, kids.Y, ok, prevY)
		ys = &s
	}
	for _, e := range u.global.Events() {
		se, ok := e.(ScrollEvent)
		if !ok || se.Widget != id {
			continue
		}
		if xs != nil && se.X != 0 {
			xs.Scroll(se.X)
		}
		if ys != nil && se.Y != 0 {
			ys.Scroll(se.Y)
		}
	}
	return xs, ys
}

func sameScroll(a, b *ScrollState) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// windowWidget is the root of every frame.
type windowWidget struct {
	Common
}

func (w *windowWidget) Kind() Kind                 { return "Window" }
func (w *windowWidget) InitState(*IDGenerator) any { return nil }
func (w *windowWidget) Style() any                 { return nil }
func (w *windowWidget) Update(*UpdateArgs) any     { return nil }

func (w *windowWidget) KidArea(rect Rect, theme *Theme) KidArea {
	return KidArea{Rect: rect, Pad: UniformPadding(theme.Padding)}
}
