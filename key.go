// key.go re-exports input types from internal/input.
// Any changes to internal/input types must be mirrored here.
package gui

import "github.com/grindlemire/go-gui/internal/input"

// Key represents a keyboard key.
type Key = input.Key

const (
	KeyNone      = input.KeyNone
	KeyRune      = input.KeyRune
	KeyEscape    = input.KeyEscape
	KeyEnter     = input.KeyEnter
	KeyTab       = input.KeyTab
	KeyBackspace = input.KeyBackspace
	KeyDelete    = input.KeyDelete
	KeyInsert    = input.KeyInsert
	KeySpace     = input.KeySpace
	KeyUp        = input.KeyUp
	KeyDown      = input.KeyDown
	KeyLeft      = input.KeyLeft
	KeyRight     = input.KeyRight
	KeyHome      = input.KeyHome
	KeyEnd       = input.KeyEnd
	KeyPageUp    = input.KeyPageUp
	KeyPageDown  = input.KeyPageDown
	KeyLCtrl     = input.KeyLCtrl
	KeyRCtrl     = input.KeyRCtrl
	KeyLShift    = input.KeyLShift
	KeyRShift    = input.KeyRShift
	KeyLAlt      = input.KeyLAlt
	KeyRAlt      = input.KeyRAlt
	KeyLSuper    = input.KeyLSuper
	KeyRSuper    = input.KeyRSuper
)

// Modifier represents keyboard modifier flags.
type Modifier = input.Modifier

const (
	ModNone  = input.ModNone
	ModCtrl  = input.ModCtrl
	ModAlt   = input.ModAlt
	ModShift = input.ModShift
	ModSuper = input.ModSuper
)

// MouseButton represents a mouse button.
type MouseButton = input.MouseButton

const (
	MouseLeft   = input.MouseLeft
	MouseRight  = input.MouseRight
	MouseMiddle = input.MouseMiddle
	MouseX1     = input.MouseX1
	MouseX2     = input.MouseX2
)

// Button is a mouse button, a key or a character.
type Button = input.Button

// Source is a capturable input device.
type Source = input.Source

const (
	SourceMouse    = input.SourceMouse
	SourceKeyboard = input.SourceKeyboard
)

// Input is raw input from the windowing layer, fed to Ui.HandleInput.
type Input = input.Input

// Raw inputs.
type (
	Press   = input.Press
	Release = input.Release
	Motion  = input.Motion
	Text    = input.Text
	Resize  = input.Resize
	Focus   = input.Focus
	Redraw  = input.Redraw
)

// Event is an input event derived by the Ui.
type Event = input.Event

// Derived events.
type (
	RawEvent         = input.RawEvent
	PressEvent       = input.PressEvent
	ReleaseEvent     = input.ReleaseEvent
	MotionEvent      = input.MotionEvent
	ClickEvent       = input.ClickEvent
	DoubleClickEvent = input.DoubleClickEvent
	DragEvent        = input.DragEvent
	ScrollEvent      = input.ScrollEvent
	TextEvent        = input.TextEvent
	ResizeEvent      = input.ResizeEvent
	CaptureEvent     = input.CaptureEvent
	UncaptureEvent   = input.UncaptureEvent
)

// WidgetInput is one widget's view of the frame's input.
type WidgetInput = input.Widget

// MouseView is the mouse as seen by one widget.
type MouseView = input.MouseView

// Mouse returns a press or release of mouse button b.
func Mouse(b MouseButton) Button { return input.Mouse(b) }

// Keyboard returns a press or release of key k.
func Keyboard(k Key) Button { return input.Keyboard(k) }

// Char returns a press or release of the key that types r.
func Char(r rune) Button { return input.Char(r) }

// CursorAt returns a raw cursor motion to (x, y).
func CursorAt(x, y Scalar) Motion { return input.CursorAt(x, y) }

// ScrollBy returns a raw scroll of (x, y).
func ScrollBy(x, y Scalar) Motion { return input.ScrollBy(x, y) }

// ParseMouseButton returns the mouse button with the given name, such as
// "left" or "x1".
func ParseMouseButton(name string) (MouseButton, bool) { return input.ParseMouseButton(name) }

// ParseKey returns the key with the given name, such as "enter" or
// "lshift".
func ParseKey(name string) (Key, bool) { return input.ParseKey(name) }
