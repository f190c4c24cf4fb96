package graph

import (
	"cmp"
	"slices"

	"github.com/grindlemire/go-gui/internal/debug"
)

// VisitKind distinguishes widgets from scrollbar entries in a depth order.
type VisitKind uint8

const (
	VisitWidget VisitKind = iota
	VisitScrollbar
)

// Visitable is one entry of the depth order.
type Visitable struct {
	Kind VisitKind
	ID   ID
}

// WidgetVisit is shorthand for a widget entry.
func WidgetVisit(id ID) Visitable { return Visitable{Kind: VisitWidget, ID: id} }

// ScrollbarVisit is shorthand for a scrollbar entry.
func ScrollbarVisit(id ID) Visitable { return Visitable{Kind: VisitScrollbar, ID: id} }

// DepthOrder holds the back-to-front visiting order of one frame.
type DepthOrder struct {
	Indices []Visitable

	floating []ID
	next     []ID
}

// NewDepthOrder creates a DepthOrder sized for n nodes.
func NewDepthOrder(n int) *DepthOrder {
	return &DepthOrder{
		Indices:  make([]Visitable, 0, n*2),
		floating: make([]ID, 0, n),
	}
}

// Update rebuilds the order for the nodes reachable from root that were
// updated this frame.
//
// Depth children are visited in ascending Depth, ties broken by
// InstantiationOrder. A scrollable node's scrollbar entry follows its
// children. Floating nodes are deferred until the main tree is done and
// then visited in LastClicked order; floating nodes found inside
// floating subtrees are visited in a later round.
func (d *DepthOrder) Update(g *Graph, root ID, updated func(ID) bool) {
	d.Indices = d.Indices[:0]
	d.floating = d.floating[:0]

	d.visit(g, root, updated)

	for len(d.floating) > 0 {
		round := append(d.next[:0], d.floating...)
		d.floating = d.floating[:0]
		slices.SortStableFunc(round, func(a, b ID) int {
			return cmp.Compare(g.nodes[a].Floating.LastClicked, g.nodes[b].Floating.LastClicked)
		})
		for _, id := range round {
			d.visit(g, id, updated)
		}
		d.next = round
	}

	debug.Event("depth order updated", "entries", len(d.Indices))
}

func (d *DepthOrder) visit(g *Graph, id ID, updated func(ID) bool) {
	n := g.Widget(id)
	if n == nil || !updated(id) {
		return
	}
	d.Indices = append(d.Indices, WidgetVisit(id))

	kids := g.Children(id, EdgeDepth)
	slices.SortStableFunc(kids, func(a, b ID) int {
		na, nb := g.nodes[a], g.nodes[b]
		if c := cmp.Compare(na.Depth, nb.Depth); c != 0 {
			return c
		}
		return cmp.Compare(na.InstantiationOrder, nb.InstantiationOrder)
	})

	for _, kid := range kids {
		if k := g.nodes[kid]; k != nil && k.Floating != nil {
			d.floating = append(d.floating, kid)
			continue
		}
		d.visit(g, kid, updated)
	}

	if n.IsScrollable() {
		d.Indices = append(d.Indices, ScrollbarVisit(id))
	}
}

// Widgets returns the widget entries of the order, skipping scrollbars.
func (d *DepthOrder) Widgets() []ID {
	ids := make([]ID, 0, len(d.Indices))
	for _, v := range d.Indices {
		if v.Kind == VisitWidget {
			ids = append(ids, v.ID)
		}
	}
	return ids
}
