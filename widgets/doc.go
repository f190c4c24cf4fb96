// Package widgets provides the primitive and common widget kinds.
//
// Primitive widgets (Rectangle, Oval, Polygon, Text) carry only a style
// and are what renderers draw. Composite widgets (Button, Canvas,
// Slider, Toggle) keep state between frames and set primitive children
// marked as their graphics, so hits on those children resolve to the
// composite.
//
//	clicks := widgets.NewButton("ok", gui.WithXY(0, 0), gui.WithWH(80, 30)).Set(c, okID)
//	for range clicks {
//		save()
//	}
package widgets
