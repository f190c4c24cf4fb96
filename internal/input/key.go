package input

import "strings"

// Key represents a keyboard key.
type Key uint16

const (
	// KeyNone represents no key (zero value).
	KeyNone Key = iota

	// KeyRune represents a printable character key. Check Button.Rune for
	// the character.
	KeyRune

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeySpace

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyLCtrl
	KeyRCtrl
	KeyLShift
	KeyRShift
	KeyLAlt
	KeyRAlt
	KeyLSuper
	KeyRSuper
)

var keyNames = map[Key]string{
	KeyNone:      "None",
	KeyRune:      "Rune",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyInsert:    "Insert",
	KeySpace:     "Space",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyF1:        "F1",
	KeyF2:        "F2",
	KeyF3:        "F3",
	KeyF4:        "F4",
	KeyF5:        "F5",
	KeyF6:        "F6",
	KeyF7:        "F7",
	KeyF8:        "F8",
	KeyF9:        "F9",
	KeyF10:       "F10",
	KeyF11:       "F11",
	KeyF12:       "F12",
	KeyLCtrl:     "LCtrl",
	KeyRCtrl:     "RCtrl",
	KeyLShift:    "LShift",
	KeyRShift:    "RShift",
	KeyLAlt:      "LAlt",
	KeyRAlt:      "RAlt",
	KeyLSuper:    "LSuper",
	KeyRSuper:    "RSuper",
}

// String returns a human-readable representation of the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// ParseKey returns the key with the given String name.
func ParseKey(name string) (Key, bool) {
	for k, n := range keyNames {
		if strings.EqualFold(n, name) {
			return k, true
		}
	}
	return KeyNone, false
}

// Modifier represents keyboard modifier flags.
type Modifier uint8

const (
	// ModNone represents no modifiers.
	ModNone Modifier = 0
	// ModCtrl represents the Ctrl modifier.
	ModCtrl Modifier = 1 << iota
	// ModAlt represents the Alt modifier.
	ModAlt
	// ModShift represents the Shift modifier.
	ModShift
	// ModSuper represents the Super (command, windows) modifier.
	ModSuper
)

// Has checks if the modifier set includes the given modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// String returns a human-readable representation of the modifiers.
func (m Modifier) String() string {
	if m == ModNone {
		return "None"
	}

	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	if m.Has(ModSuper) {
		parts = append(parts, "Super")
	}
	return strings.Join(parts, "+")
}

// ModifierOf returns the modifier a key toggles, if any.
func ModifierOf(k Key) (Modifier, bool) {
	switch k {
	case KeyLCtrl, KeyRCtrl:
		return ModCtrl, true
	case KeyLShift, KeyRShift:
		return ModShift, true
	case KeyLAlt, KeyRAlt:
		return ModAlt, true
	case KeyLSuper, KeyRSuper:
		return ModSuper, true
	default:
		return ModNone, false
	}
}
