package input

import (
	"fmt"
	"strings"
)

// Source is a capturable input device.
type Source uint8

const (
	SourceMouse Source = iota
	SourceKeyboard
)

// String returns "mouse" or "keyboard".
func (s Source) String() string {
	if s == SourceMouse {
		return "mouse"
	}
	return "keyboard"
}

// MouseButton represents a mouse button.
type MouseButton uint8

const (
	// MouseLeft is the left (primary) mouse button.
	MouseLeft MouseButton = iota
	// MouseRight is the right (secondary) mouse button.
	MouseRight
	// MouseMiddle is the middle mouse button (scroll wheel click).
	MouseMiddle
	// MouseX1 and MouseX2 are the extra side buttons.
	MouseX1
	MouseX2

	numMouseButtons
)

// String returns the button name.
func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "Left"
	case MouseRight:
		return "Right"
	case MouseMiddle:
		return "Middle"
	case MouseX1:
		return "X1"
	case MouseX2:
		return "X2"
	default:
		return fmt.Sprintf("MouseButton(%d)", uint8(b))
	}
}

// ParseMouseButton returns the button with the given String name,
// ignoring case.
func ParseMouseButton(name string) (MouseButton, bool) {
	for b := MouseButton(0); b < numMouseButtons; b++ {
		if strings.EqualFold(b.String(), name) {
			return b, true
		}
	}
	return 0, false
}

// Button is either a mouse button or a keyboard key.
type Button struct {
	Source Source
	Mouse  MouseButton
	Key    Key
	// Rune is the character for KeyRune keys.
	Rune rune
}

// Mouse returns a Button for a mouse button.
func Mouse(b MouseButton) Button {
	return Button{Source: SourceMouse, Mouse: b}
}

// Keyboard returns a Button for a non-printable key.
func Keyboard(k Key) Button {
	return Button{Source: SourceKeyboard, Key: k}
}

// Char returns a Button for a printable character key.
func Char(r rune) Button {
	return Button{Source: SourceKeyboard, Key: KeyRune, Rune: r}
}

// String returns a human-readable representation of the button.
func (b Button) String() string {
	switch {
	case b.Source == SourceMouse:
		return "Mouse" + b.Mouse.String()
	case b.Key == KeyRune:
		return fmt.Sprintf("Key(%q)", b.Rune)
	default:
		return "Key" + b.Key.String()
	}
}
