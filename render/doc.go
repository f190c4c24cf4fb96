// Package render turns a gui.Frame into a flat list of primitives.
//
// Build walks the frame back to front and emits one or more primitives
// per widget: shapes, text lines and scrollbars. Every primitive carries
// the scissor rect it must be clipped to, so a backend needs no
// knowledge of the widget graph. Widget kinds outside the widgets
// package are drawn by registering a DrawFunc with a Builder.
package render
