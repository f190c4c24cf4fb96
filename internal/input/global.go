package input

import (
	"time"

	"github.com/grindlemire/go-gui/internal/geom"
)

// Global is the frame's event queue together with the current device
// state.
//
// Events pushed between frames are visible to every widget during the
// next frame. Events pushed while a frame is being set are pending and
// become visible in the frame after.
type Global struct {
	// Start is the state at the beginning of the current frame.
	Start State
	// Current is the state after every queued event.
	Current State

	events    []Event
	pending   []Event
	lastClick *lastClick
}

type lastClick struct {
	at    time.Time
	click ClickEvent
}

// NewGlobal returns an empty Global.
func NewGlobal() *Global {
	return &Global{Start: NewState(), Current: NewState()}
}

// Push queues e for the current frame.
func (g *Global) Push(e Event) {
	g.events = append(g.events, e)
}

// PushPending queues e for the next frame.
func (g *Global) PushPending(e Event) {
	g.pending = append(g.pending, e)
}

// Events returns the events queued for the current frame in order.
func (g *Global) Events() []Event {
	return g.events
}

// EndFrame drops the current events, promotes pending events and
// snapshots Current as the next frame's Start.
func (g *Global) EndFrame() {
	clear(g.events)
	g.events = append(g.events[:0], g.pending...)
	clear(g.pending)
	g.pending = g.pending[:0]
	g.Start = g.Current
}

// RegisterClick records c at now. It returns a DoubleClickEvent when c
// repeats the previous click's button and position within threshold; the
// pair is then forgotten so a third click starts over.
func (g *Global) RegisterClick(c ClickEvent, now time.Time, threshold time.Duration) (DoubleClickEvent, bool) {
	prev := g.lastClick
	if prev != nil && prev.click.Button == c.Button && prev.click.XY == c.XY && now.Sub(prev.at) < threshold {
		g.lastClick = nil
		return DoubleClickEvent{
			Widget:    c.Widget,
			Button:    c.Button,
			XY:        c.XY,
			Modifiers: c.Modifiers,
		}, true
	}
	g.lastClick = &lastClick{at: now, click: c}
	return DoubleClickEvent{}, false
}

// ExceedsDragThreshold reports whether moving from a to b travels further
// than threshold.
func ExceedsDragThreshold(a, b geom.Point, threshold geom.Scalar) bool {
	return b.Sub(a).Len() > threshold
}
