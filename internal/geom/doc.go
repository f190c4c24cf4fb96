// Package geom provides the value types used for widget geometry.
//
// Coordinates follow the window convention used throughout the toolkit:
// (0, 0) is the centre of the window and y grows upwards. A Rect is stored
// as one Range per axis so that alignment and padding can be expressed
// once and applied to either axis.
package geom
