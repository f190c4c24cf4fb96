// Package text measures strings for layout and rendering.
//
// A Cache wraps one font source and hands out faces per size. Widths are
// memoised per (size, string), so measuring the same label every frame is
// cheap. Go Regular is built in and used when no font is given.
//
// A nil *Cache is valid: it estimates metrics from the font size alone,
// so a missing font degrades layout locally instead of failing a frame.
package text
