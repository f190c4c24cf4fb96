package graph

import (
	"fmt"
	"iter"
)

// ParentRecursion yields the ancestors of id along kind, nearest first.
// The walk is lazy and can be ranged over any number of times. Meeting a
// cycle panics since SetEdges never allows one to be built.
func (g *Graph) ParentRecursion(id ID, kind EdgeKind) iter.Seq[ID] {
	return func(yield func(ID) bool) {
		limit := len(g.nodes)
		cur := id
		for steps := 0; ; steps++ {
			if steps > limit {
				panic(fmt.Sprintf("graph: cycle in %s parents of %s", kind, id))
			}
			cur = g.Parent(cur, kind)
			if cur == NoID || !yield(cur) {
				return
			}
		}
	}
}

// DepthParentRecursion yields the depth ancestors of id.
func (g *Graph) DepthParentRecursion(id ID) iter.Seq[ID] {
	return g.ParentRecursion(id, EdgeDepth)
}

// GraphicParentRecursion yields the graphic ancestors of id.
func (g *Graph) GraphicParentRecursion(id ID) iter.Seq[ID] {
	return g.ParentRecursion(id, EdgeGraphic)
}

// XPositionParentRecursion yields the x position ancestors of id.
func (g *Graph) XPositionParentRecursion(id ID) iter.Seq[ID] {
	return g.ParentRecursion(id, EdgeXPosition)
}

// YPositionParentRecursion yields the y position ancestors of id.
func (g *Graph) YPositionParentRecursion(id ID) iter.Seq[ID] {
	return g.ParentRecursion(id, EdgeYPosition)
}

// TopmostGraphicParent returns the last graphic ancestor of id, or id
// itself when it is not a graphic child.
func (g *Graph) TopmostGraphicParent(id ID) ID {
	top := id
	for p := range g.GraphicParentRecursion(id) {
		top = p
	}
	return top
}

// NearestScrollableAncestor returns the closest depth ancestor that
// scrolls along either axis, or NoID.
func (g *Graph) NearestScrollableAncestor(id ID) ID {
	for p := range g.DepthParentRecursion(id) {
		if n := g.Widget(p); n != nil && n.IsScrollable() {
			return p
		}
	}
	return NoID
}

func contains(seq iter.Seq[ID], id ID) bool {
	for v := range seq {
		if v == id {
			return true
		}
	}
	return false
}
