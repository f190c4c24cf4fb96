package graph

import (
	"strconv"

	"github.com/grindlemire/go-gui/internal/geom"
)

// ID uniquely names one conceptual widget instance across frames.
type ID int

// NoID is the absence of an id.
const NoID ID = -1

// String returns the id as a decimal number, or "none".
func (id ID) String() string {
	if id == NoID {
		return "none"
	}
	return strconv.Itoa(int(id))
}

// Kind names the widget type that owns a node. The empty kind marks a
// placeholder that has been allocated but never set.
type Kind string

// EdgeKind is one of the four relationships between nodes.
type EdgeKind uint8

const (
	EdgeDepth EdgeKind = iota
	EdgeXPosition
	EdgeYPosition
	EdgeGraphic

	numEdgeKinds
)

// String returns a human readable edge name.
func (k EdgeKind) String() string {
	switch k {
	case EdgeDepth:
		return "depth"
	case EdgeXPosition:
		return "x-position"
	case EdgeYPosition:
		return "y-position"
	case EdgeGraphic:
		return "graphic"
	default:
		return "unknown"
	}
}

// PositionEdge returns the position edge kind for an axis.
func PositionEdge(axis geom.Axis) EdgeKind {
	if axis == geom.AxisX {
		return EdgeXPosition
	}
	return EdgeYPosition
}

// KidArea is the area of a widget within which its children are laid out.
type KidArea struct {
	Rect geom.Rect
	Pad  geom.Padding
}

// Floating marks a node as detached from normal depth stacking.
// LastClicked orders floating nodes; the most recent interaction is drawn
// last.
type Floating struct {
	LastClicked uint64
}

// IsOver is the result of a hit test.
type IsOver struct {
	hit      bool
	redirect bool
	widget   ID
}

// Hit returns an IsOver that reports a boolean result.
func Hit(b bool) IsOver {
	return IsOver{hit: b, widget: NoID}
}

// Redirect returns an IsOver that defers the test to another widget.
func Redirect(id ID) IsOver {
	return IsOver{redirect: true, widget: id}
}

// Widget returns the redirect target and true for a redirecting result.
func (o IsOver) Widget() (ID, bool) {
	if !o.redirect {
		return NoID, false
	}
	return o.widget, true
}

// Bool returns the boolean result of a non-redirecting test.
func (o IsOver) Bool() bool {
	return o.hit
}

// IsOverFunc tests whether p lies over the node.
type IsOverFunc func(n *Node, p geom.Point) IsOver

// DefaultIsOver is rect containment.
func DefaultIsOver(n *Node, p geom.Point) IsOver {
	return Hit(n.Rect.IsOver(p))
}

// Node is the retained record for one widget id.
type Node struct {
	ID   ID
	Kind Kind

	Rect     geom.Rect
	Depth    float64
	KidArea  KidArea
	Floating *Floating
	CropKids bool

	// XScroll and YScroll are non-nil when the node is a scrollable
	// container along that axis.
	XScroll *ScrollState
	YScroll *ScrollState

	// InstantiationOrder is the position of the node's last set within
	// its frame; it breaks depth ties.
	InstantiationOrder int

	IsOver IsOverFunc

	State any
	Style any

	parents [numEdgeKinds]ID
	kids    [numEdgeKinds][]ID
}

func newNode(id ID, kind Kind) *Node {
	n := &Node{ID: id, Kind: kind, IsOver: DefaultIsOver}
	for i := range n.parents {
		n.parents[i] = NoID
	}
	return n
}

// IsPlaceholder reports whether the node was allocated but never set.
func (n *Node) IsPlaceholder() bool {
	return n.Kind == ""
}

// IsScrollable reports whether the node scrolls along either axis.
func (n *Node) IsScrollable() bool {
	return n.XScroll != nil || n.YScroll != nil
}

// Scroll returns the scroll state for an axis, or nil.
func (n *Node) Scroll(axis geom.Axis) *ScrollState {
	if axis == geom.AxisX {
		return n.XScroll
	}
	return n.YScroll
}

// CropsKids reports whether the node clips its depth children to its
// kid area.
func (n *Node) CropsKids() bool {
	return n.CropKids || n.IsScrollable()
}

// Parent returns the node's parent along an edge kind, or NoID.
func (n *Node) Parent(kind EdgeKind) ID {
	return n.parents[kind]
}
