package gui

import "github.com/grindlemire/go-gui/internal/debug"

// MarkDirty signals that the next frame end must report a change.
// Called automatically when a widget is created, moved, restyled or
// removed, or its state changes. Can also be called manually for
// changes the Ui cannot see.
func (u *Ui) MarkDirty() {
	if u == nil {
		panic("gui: nil ui in MarkDirty")
	}
	u.dirty.Store(true)
}

// checkAndClearDirty returns true if dirty and clears the flag.
// Called by Cell.End after the frame's widgets are set.
func (u *Ui) checkAndClearDirty() bool {
	if u == nil {
		panic("gui: nil ui in checkAndClearDirty")
	}
	return u.dirty.Swap(false)
}

// resetDirty clears the dirty flag without returning its value.
// Used for testing to reset state between frames.
func (u *Ui) resetDirty() {
	if u == nil {
		panic("gui: nil ui in resetDirty")
	}
	u.dirty.Store(false)
}

// NeedsRedraw arms the redraw counter so the next few calls to
// DrawIfChanged return a frame. Backends that double or triple buffer
// need the same frame more than once.
func (u *Ui) NeedsRedraw() {
	if u == nil {
		panic("gui: nil ui in NeedsRedraw")
	}
	u.redrawCount = u.redrawFrames
}

// Changed reports whether the last frame changed anything visible.
func (u *Ui) Changed() bool {
	return u.changed
}

// Draw returns the last frame for rendering.
func (u *Ui) Draw() *Frame {
	return newFrame(u)
}

// DrawIfChanged returns the last frame while the redraw counter is
// armed, decrementing it, and false otherwise.
func (u *Ui) DrawIfChanged() (*Frame, bool) {
	if u.redrawCount <= 0 {
		return nil, false
	}
	u.redrawCount--
	debug.Event("draw", "remaining", u.redrawCount)
	return newFrame(u), true
}
