// Package gui provides an immediate-mode GUI core over a retained widget
// graph.
//
// Users import this single package for the frame cycle, widget
// positioning, input handling, themes and the frame snapshots handed to
// renderers. Ready-made widgets live in the widgets package and renderers
// in render and backend/raster.
//
// Each frame the application feeds raw input to Ui.HandleInput, then sets
// every visible widget through a Cell:
//
//	err := u.Update(func(c *gui.Cell) {
//		if widgets.NewButton("ok", gui.WithXY(0, 0)).Set(c, id) > 0 {
//			// clicked
//		}
//	})
//
// Widgets not set in a frame are not drawn or picked. Ui.DrawIfChanged
// returns the last frame while it still needs drawing.
package gui
