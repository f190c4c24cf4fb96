package graph

import (
	"fmt"
	"iter"

	"github.com/grindlemire/go-gui/internal/geom"
)

// VisibleArea returns the part of id's rect not cropped away by its depth
// ancestors. An ancestor crops when it scrolls or sets CropKids, unless it
// is the graphic parent of the node below it on the chain. ok is false
// when nothing remains visible, including when a cropping ancestor's kid
// area has zero size.
func VisibleArea(g *Graph, id ID) (geom.Rect, bool) {
	return visibleArea(g, id, NoID)
}

// VisibleAreaWithin is VisibleArea that stops cropping at deepest,
// exclusive.
func VisibleAreaWithin(g *Graph, id, deepest ID) (geom.Rect, bool) {
	return visibleArea(g, id, deepest)
}

func visibleArea(g *Graph, id, deepest ID) (geom.Rect, bool) {
	n := g.Widget(id)
	if n == nil {
		return geom.Rect{}, false
	}

	visible := n.Rect
	child := id
	for parent := range g.DepthParentRecursion(id) {
		if parent == deepest {
			break
		}
		if p := g.Widget(parent); p != nil && p.CropsKids() && !g.DoesGraphicEdgeExist(parent, child) {
			overlap, ok := visible.Overlap(p.KidArea.Rect)
			if !ok {
				return geom.Rect{}, false
			}
			visible = overlap
		}
		child = parent
	}
	return visible, true
}

// PickWidgets yields every widget under p from topmost to bottommost,
// graphic children included. order is the back-to-front depth order.
//
// Each candidate's visible area must contain p before its IsOver func is
// consulted. Redirects are followed to the named widget; a redirect chain
// that revisits a node panics.
func PickWidgets(g *Graph, order []Visitable, p geom.Point) iter.Seq[ID] {
	return func(yield func(ID) bool) {
		for i := len(order) - 1; i >= 0; i-- {
			v := order[i]
			visible, ok := VisibleArea(g, v.ID)
			if !ok || !visible.IsOver(p) {
				continue
			}

			if v.Kind == VisitScrollbar {
				n := g.Widget(v.ID)
				over := n.XScroll != nil && n.XScroll.IsOver(p, n.KidArea.Rect) ||
					n.YScroll != nil && n.YScroll.IsOver(p, n.KidArea.Rect)
				if over && !yield(v.ID) {
					return
				}
				continue
			}

			if hit, ok := resolveIsOver(g, v.ID, p); ok && !yield(hit) {
				return
			}
		}
	}
}

func resolveIsOver(g *Graph, id ID, p geom.Point) (ID, bool) {
	var seen map[ID]struct{}
	for {
		n := g.Widget(id)
		if n == nil {
			return NoID, false
		}
		isOver := n.IsOver
		if isOver == nil {
			isOver = DefaultIsOver
		}
		res := isOver(n, p)
		next, redirect := res.Widget()
		if !redirect {
			return id, res.Bool()
		}

		if seen == nil {
			seen = make(map[ID]struct{})
		}
		seen[id] = struct{}{}
		if _, loop := seen[next]; loop {
			panic(fmt.Sprintf("graph: IsOver redirect from %s revisits %s", id, next))
		}
		id = next
	}
}

// PickWidgetIncludingGraphics returns the topmost widget under p without
// resolving graphic children to their parents.
func PickWidgetIncludingGraphics(g *Graph, order []Visitable, p geom.Point) (ID, bool) {
	for id := range PickWidgets(g, order, p) {
		return id, true
	}
	return NoID, false
}

// PickWidget returns the topmost widget under p. A graphic child resolves
// to its topmost graphic parent.
func PickWidget(g *Graph, order []Visitable, p geom.Point) (ID, bool) {
	id, ok := PickWidgetIncludingGraphics(g, order, p)
	if !ok {
		return NoID, false
	}
	return g.TopmostGraphicParent(id), true
}

// PickScrollableWidgets yields the scrollable widgets under p, topmost
// first, each at most once.
func PickScrollableWidgets(g *Graph, order []Visitable, p geom.Point) iter.Seq[ID] {
	return func(yield func(ID) bool) {
		seen := make(map[ID]struct{})
		for id := range PickWidgets(g, order, p) {
			n := g.Widget(id)
			if n == nil || !n.IsScrollable() {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			if !yield(id) {
				return
			}
		}
	}
}

// PickScrollableWidget returns the topmost scrollable widget under p.
func PickScrollableWidget(g *Graph, order []Visitable, p geom.Point) (ID, bool) {
	for id := range PickScrollableWidgets(g, order, p) {
		return id, true
	}
	return NoID, false
}

// KidsBoundingBox returns the smallest rect containing the visible areas of
// id's depth descendants. Graphic children and nodes for which wasSet is
// false are skipped along with their subtrees. Cropping is only applied
// below id. ok is false when no descendant qualifies.
func KidsBoundingBox(g *Graph, id ID, wasSet func(ID) bool) (geom.Rect, bool) {
	if g.Widget(id) == nil {
		return geom.Rect{}, false
	}

	include := func(kid ID) bool {
		return g.GraphicParent(kid) == NoID && wasSet(kid)
	}

	var dfs func(kid ID) (geom.Rect, bool)
	dfs = func(kid ID) (geom.Rect, bool) {
		rect, ok := VisibleAreaWithin(g, kid, id)
		if !ok {
			return geom.Rect{}, false
		}
		for _, k := range g.Children(kid, EdgeDepth) {
			if !include(k) {
				continue
			}
			if r, ok := dfs(k); ok {
				rect = rect.Max(r)
			}
		}
		return rect, true
	}

	var (
		box   geom.Rect
		found bool
	)
	for _, kid := range g.Children(id, EdgeDepth) {
		if !include(kid) {
			continue
		}
		r, ok := dfs(kid)
		if !ok {
			continue
		}
		if found {
			box = box.Max(r)
		} else {
			box, found = r, true
		}
	}
	return box, found
}

// ScrollOffset returns the offset id inherits from its nearest scrollable
// depth ancestor.
//
// The offset is zero when that ancestor is one of id's graphic parents. It
// is zero along an axis when one of id's position ancestors on that axis
// is itself a depth descendant of the ancestor, since id's position
// already includes the offset through it.
func ScrollOffset(g *Graph, id ID) geom.Point {
	scroller := g.NearestScrollableAncestor(id)
	if scroller == NoID {
		return geom.Point{}
	}
	if contains(g.GraphicParentRecursion(id), scroller) {
		return geom.Point{}
	}
	s := g.Widget(scroller)

	alreadyOffset := func(kind EdgeKind) bool {
		for pos := range g.ParentRecursion(id, kind) {
			if contains(g.DepthParentRecursion(pos), scroller) {
				return true
			}
		}
		return false
	}

	var offset geom.Point
	if s.XScroll != nil && !alreadyOffset(EdgeXPosition) {
		offset.X = s.XScroll.Offset
	}
	if s.YScroll != nil && !alreadyOffset(EdgeYPosition) {
		offset.Y = s.YScroll.Offset
	}
	return offset
}
