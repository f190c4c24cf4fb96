package graph

import (
	"fmt"
	"slices"

	"github.com/grindlemire/go-gui/internal/debug"
)

// Graph holds every node and edge of the widget tree.
type Graph struct {
	nodes  map[ID]*Node
	nextID ID
}

// New creates an empty Graph with room for capacity nodes.
func New(capacity int) *Graph {
	return &Graph{nodes: make(map[ID]*Node, capacity)}
}

// NodeCount returns the number of nodes, placeholders included.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// Node returns the node for id, or nil.
func (g *Graph) Node(id ID) *Node {
	return g.nodes[id]
}

// Widget returns the node for id if it has been set at least once.
func (g *Graph) Widget(id ID) *Node {
	n := g.nodes[id]
	if n == nil || n.IsPlaceholder() {
		return nil
	}
	return n
}

// AddPlaceholder allocates a fresh id backed by a placeholder node.
func (g *Graph) AddPlaceholder() ID {
	for g.nodes[g.nextID] != nil {
		g.nextID++
	}
	id := g.nextID
	g.nextID++
	g.nodes[id] = newNode(id, "")
	return id
}

// Ensure creates a placeholder for id if it has no node yet.
func (g *Graph) Ensure(id ID) *Node {
	if id == NoID {
		panic("graph: Ensure called with NoID")
	}
	n := g.nodes[id]
	if n == nil {
		n = newNode(id, "")
		g.nodes[id] = n
	}
	return n
}

// GetOrCreate returns the node for id, creating it with kind if needed.
// created is true when the node did not exist or was a placeholder.
// Reusing an id for a different kind returns a *KindMismatchError and
// leaves the node untouched.
func (g *Graph) GetOrCreate(id ID, kind Kind) (n *Node, created bool, err error) {
	if id == NoID {
		return nil, false, fmt.Errorf("%w: %s", ErrNoNode, id)
	}
	if kind == "" {
		return nil, false, fmt.Errorf("graph: empty kind for widget %d", id)
	}

	n = g.nodes[id]
	switch {
	case n == nil:
		n = newNode(id, kind)
		g.nodes[id] = n
		debug.Event("node created", "id", id, "kind", kind)
		return n, true, nil
	case n.IsPlaceholder():
		n.Kind = kind
		debug.Event("placeholder claimed", "id", id, "kind", kind)
		return n, true, nil
	case n.Kind != kind:
		debug.Event("kind mismatch", "id", id, "existing", n.Kind, "requested", kind)
		return n, false, &KindMismatchError{ID: id, Existing: n.Kind, Requested: kind}
	default:
		return n, false, nil
	}
}

// Edges names the parents of a node for each edge kind. NoID removes the
// edge of that kind.
type Edges struct {
	Depth     ID
	XPosition ID
	YPosition ID
	Graphic   ID
	Floating  bool
}

// NoEdges returns an Edges value with no parents.
func NoEdges() Edges {
	return Edges{Depth: NoID, XPosition: NoID, YPosition: NoID, Graphic: NoID}
}

func (e Edges) parent(kind EdgeKind) ID {
	switch kind {
	case EdgeDepth:
		return e.Depth
	case EdgeXPosition:
		return e.XPosition
	case EdgeYPosition:
		return e.YPosition
	default:
		return e.Graphic
	}
}

// SetEdges replaces the incoming edges of id. Every edge is validated
// before any is applied, so a rejected call leaves the graph unchanged.
func (g *Graph) SetEdges(id ID, edges Edges) error {
	n := g.nodes[id]
	if n == nil {
		return fmt.Errorf("%w: %s", ErrNoNode, id)
	}

	for kind := EdgeKind(0); kind < numEdgeKinds; kind++ {
		parent := edges.parent(kind)
		if parent == NoID || parent == n.parents[kind] {
			continue
		}
		if g.nodes[parent] == nil {
			return fmt.Errorf("%w: %s parent %s of %s", ErrNoNode, kind, parent, id)
		}
		// All new edges point into id, so a cycle exists only if id is
		// already an ancestor of the new parent.
		if parent == id || g.isAncestor(id, parent) {
			return &CycleError{Edge: kind, Parent: parent, Child: id}
		}
	}

	for kind := EdgeKind(0); kind < numEdgeKinds; kind++ {
		g.setEdge(n, kind, edges.parent(kind))
	}

	switch {
	case edges.Floating && n.Floating == nil:
		n.Floating = &Floating{}
	case !edges.Floating:
		n.Floating = nil
	}
	return nil
}

// RemoveParentEdge removes the incoming edge of kind, reporting whether
// one existed.
func (g *Graph) RemoveParentEdge(id ID, kind EdgeKind) bool {
	n := g.nodes[id]
	if n == nil || n.parents[kind] == NoID {
		return false
	}
	g.setEdge(n, kind, NoID)
	return true
}

func (g *Graph) setEdge(n *Node, kind EdgeKind, parent ID) {
	old := n.parents[kind]
	if old == parent {
		return
	}
	if p := g.nodes[old]; p != nil {
		p.kids[kind] = slices.DeleteFunc(p.kids[kind], func(k ID) bool { return k == n.ID })
	}
	n.parents[kind] = parent
	if p := g.nodes[parent]; p != nil {
		p.kids[kind] = append(p.kids[kind], n.ID)
	}
}

// isAncestor reports whether a is reachable from b by following parent
// edges of any kind.
func (g *Graph) isAncestor(a, b ID) bool {
	seen := make(map[ID]struct{})
	stack := []ID{b}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := g.nodes[cur]
		if n == nil {
			continue
		}
		for _, p := range n.parents {
			if p == NoID {
				continue
			}
			if p == a {
				return true
			}
			if _, ok := seen[p]; !ok {
				seen[p] = struct{}{}
				stack = append(stack, p)
			}
		}
	}
	return false
}

// Parent returns the parent of id along kind, or NoID.
func (g *Graph) Parent(id ID, kind EdgeKind) ID {
	n := g.nodes[id]
	if n == nil {
		return NoID
	}
	return n.parents[kind]
}

// DepthParent returns the depth parent of id, or NoID.
func (g *Graph) DepthParent(id ID) ID { return g.Parent(id, EdgeDepth) }

// XPositionParent returns the x position parent of id, or NoID.
func (g *Graph) XPositionParent(id ID) ID { return g.Parent(id, EdgeXPosition) }

// YPositionParent returns the y position parent of id, or NoID.
func (g *Graph) YPositionParent(id ID) ID { return g.Parent(id, EdgeYPosition) }

// GraphicParent returns the graphic parent of id, or NoID.
func (g *Graph) GraphicParent(id ID) ID { return g.Parent(id, EdgeGraphic) }

// Children returns the children of id along kind in edge insertion order.
func (g *Graph) Children(id ID, kind EdgeKind) []ID {
	n := g.nodes[id]
	if n == nil {
		return nil
	}
	return slices.Clone(n.kids[kind])
}

// DoesEdgeExist reports whether parent is the direct kind-parent of child.
func (g *Graph) DoesEdgeExist(parent, child ID, kind EdgeKind) bool {
	return parent != NoID && g.Parent(child, kind) == parent
}

// DoesGraphicEdgeExist reports whether parent is the direct graphic
// parent of child.
func (g *Graph) DoesGraphicEdgeExist(parent, child ID) bool {
	return g.DoesEdgeExist(parent, child, EdgeGraphic)
}

// DoesRecursiveEdgeExist reports whether parent is reachable from child by
// following edges of kind.
func (g *Graph) DoesRecursiveEdgeExist(parent, child ID, kind EdgeKind) bool {
	return contains(g.ParentRecursion(child, kind), parent)
}
