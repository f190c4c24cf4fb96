package input

import (
	"github.com/grindlemire/go-gui/internal/debug"
	"github.com/grindlemire/go-gui/internal/graph"
)

// Capture tracks which widget, if any, owns each capturable source.
// Each source is either uncaptured or captured by exactly one widget.
type Capture struct {
	mouse    graph.ID
	keyboard graph.ID
}

// NewCapture returns a Capture with both sources uncaptured.
func NewCapture() Capture {
	return Capture{mouse: graph.NoID, keyboard: graph.NoID}
}

func (c *Capture) slot(src Source) *graph.ID {
	if src == SourceMouse {
		return &c.mouse
	}
	return &c.keyboard
}

// Holder returns the widget capturing src, or graph.NoID.
func (c Capture) Holder(src Source) graph.ID {
	return *c.slot(src)
}

// Mouse returns the widget capturing the mouse, or graph.NoID.
func (c Capture) Mouse() graph.ID { return c.mouse }

// Keyboard returns the widget capturing the keyboard, or graph.NoID.
func (c Capture) Keyboard() graph.ID { return c.keyboard }

// Grant gives src to id. It returns true if id now holds src and it did
// not before. A request while another widget holds src is rejected.
func (c *Capture) Grant(src Source, id graph.ID) bool {
	slot := c.slot(src)
	switch *slot {
	case id:
		return false
	case graph.NoID:
		*slot = id
		debug.Event("capture granted", "source", src, "widget", id)
		return true
	default:
		debug.Event("capture rejected", "source", src, "widget", id, "holder", *slot)
		return false
	}
}

// Release frees src if id holds it, reporting whether it did.
func (c *Capture) Release(src Source, id graph.ID) bool {
	slot := c.slot(src)
	if *slot == graph.NoID || *slot != id {
		return false
	}
	*slot = graph.NoID
	debug.Event("capture released", "source", src, "widget", id)
	return true
}

// ForceRelease frees src regardless of holder and returns the previous
// holder, or graph.NoID.
func (c *Capture) ForceRelease(src Source) graph.ID {
	slot := c.slot(src)
	prev := *slot
	if prev != graph.NoID {
		debug.Event("capture force released", "source", src, "widget", prev)
	}
	*slot = graph.NoID
	return prev
}
