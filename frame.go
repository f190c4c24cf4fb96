package gui

import (
	"slices"

	"github.com/grindlemire/go-gui/internal/graph"
)

// Visitable is one entry of a frame's depth order: a widget, or the
// scrollbars of a scrollable widget drawn after its children.
type Visitable = graph.Visitable

// VisitKind distinguishes widget entries from scrollbar entries.
type VisitKind = graph.VisitKind

const (
	VisitWidget    = graph.VisitWidget
	VisitScrollbar = graph.VisitScrollbar
)

// NodeView is a read-only copy of one widget as it was set.
type NodeView struct {
	ID      WidgetID
	Kind    Kind
	Rect    Rect
	KidArea KidArea
	// Visible is the part of Rect left after cropping by ancestors.
	// HasVisible is false when nothing is left.
	Visible    Rect
	HasVisible bool
	Depth      float64
	Parent     WidgetID
	// GraphicParent is the widget this one draws for, or NoWidget.
	GraphicParent WidgetID
	XScroll       *ScrollState
	YScroll       *ScrollState
	State         any
	Style         any
}

// Frame is a snapshot of the last ended frame, handed to renderers. It
// does not change when later frames are set.
type Frame struct {
	Window Rect
	Theme  *Theme
	// Order lists widgets and scrollbars from back to front.
	Order []Visitable

	nodes map[WidgetID]NodeView
}

func newFrame(u *Ui) *Frame {
	f := &Frame{
		Window: RectFromXYDim(Pt(0, 0), u.win),
		Theme:  u.theme,
		Order:  slices.Clone(u.depthOrder.Indices),
		nodes:  make(map[WidgetID]NodeView, len(u.depthOrder.Indices)),
	}
	for _, v := range f.Order {
		if _, ok := f.nodes[v.ID]; ok {
			continue
		}
		n := u.graph.Widget(v.ID)
		if n == nil {
			continue
		}
		visible, ok := graph.VisibleArea(u.graph, v.ID)
		f.nodes[v.ID] = NodeView{
			ID:            n.ID,
			Kind:          n.Kind,
			Rect:          n.Rect,
			KidArea:       n.KidArea,
			Visible:       visible,
			HasVisible:    ok,
			Depth:         n.Depth,
			Parent:        u.graph.DepthParent(v.ID),
			GraphicParent: u.graph.GraphicParent(v.ID),
			XScroll:       copyScroll(n.XScroll),
			YScroll:       copyScroll(n.YScroll),
			State:         n.State,
			Style:         n.Style,
		}
	}
	return f
}

// Node returns the view of id. ok is false for ids not in Order.
func (f *Frame) Node(id WidgetID) (NodeView, bool) {
	n, ok := f.nodes[id]
	return n, ok
}

// Len returns the number of entries in Order.
func (f *Frame) Len() int {
	return len(f.Order)
}

func copyScroll(s *ScrollState) *ScrollState {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
