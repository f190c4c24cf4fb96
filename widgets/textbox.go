package widgets

import (
	"unicode"

	gui "github.com/grindlemire/go-gui"
	"github.com/grindlemire/go-gui/text"
)

// TextBoxStyle is how a text box is drawn.
type TextBoxStyle struct {
	// Color falls back to Theme.ShapeColor when zero.
	Color gui.Color
	// TextColor falls back to Theme.LabelColor when zero.
	TextColor gui.Color
	// FontSize falls back to Theme.FontSize when zero.
	FontSize int
	// Pad is the space between the edge and the text.
	Pad gui.Scalar
}

// TextBoxState is the cursor and the ids of a text box's graphics.
type TextBoxState struct {
	Cursor int
	Rect   gui.WidgetID
	Text   gui.WidgetID
	Caret  gui.WidgetID
}

// TextBoxEventKind says what a TextBoxEvent reports.
type TextBoxEventKind uint8

const (
	// TextBoxUpdate carries the edited text.
	TextBoxUpdate TextBoxEventKind = iota
	// TextBoxEnter reports Enter pressed while editing.
	TextBoxEnter
)

// TextBoxEvent is one edit of a text box.
type TextBoxEvent struct {
	Kind TextBoxEventKind
	Text string
}

// TextBox is a single line text field. A left press takes the keyboard;
// Escape or a press on another widget gives it back. Its event is the
// frame's []TextBoxEvent.
type TextBox struct {
	gui.Common
	text  string
	style TextBoxStyle
	font  *text.Cache
}

// NewTextBox returns a text box holding s.
func NewTextBox(s string, opts ...gui.Option) *TextBox {
	t := &TextBox{text: s, style: TextBoxStyle{Pad: 5}}
	t.Apply(opts...)
	return t
}

// Color sets the background color.
func (t *TextBox) Color(c gui.Color) *TextBox {
	t.style.Color = c
	return t
}

// TextColor sets the text color.
func (t *TextBox) TextColor(c gui.Color) *TextBox {
	t.style.TextColor = c
	return t
}

// FontSize sets the font size.
func (t *TextBox) FontSize(size int) *TextBox {
	t.style.FontSize = size
	return t
}

// Pad sets the space between the edge and the text.
func (t *TextBox) Pad(pad gui.Scalar) *TextBox {
	t.style.Pad = pad
	return t
}

// Font sets the font used to place the caret.
func (t *TextBox) Font(c *text.Cache) *TextBox {
	t.font = c
	return t
}

func (t *TextBox) Kind() gui.Kind { return KindTextBox }
func (t *TextBox) Style() any     { return t.style }

func (t *TextBox) InitState(ids *gui.IDGenerator) any {
	n := ids.NextN(3)
	return TextBoxState{Cursor: -1, Rect: n[0], Text: n[1], Caret: n[2]}
}

func (t *TextBox) Update(a *gui.UpdateArgs) any {
	st := gui.StateOf[TextBoxState](a)
	ed := lineEdit{runes: []rune(t.text), cursor: st.Cursor}
	if ed.cursor < 0 || ed.cursor > len(ed.runes) {
		ed.cursor = len(ed.runes)
	}

	for _, e := range a.Cell.GlobalInput() {
		p, ok := e.(gui.PressEvent)
		if ok && p.Button == gui.Mouse(gui.MouseLeft) && p.Widget != a.ID {
			a.UncaptureKeyboard()
		}
	}

	var events []TextBoxEvent
	for _, e := range a.Input.Events() {
		switch e := e.(type) {
		case gui.PressEvent:
			switch {
			case e.Button == gui.Mouse(gui.MouseLeft):
				a.CaptureKeyboard()
			case !a.Input.IsCapturingKeyboard():
			case e.Button == gui.Keyboard(gui.KeyEscape):
				a.UncaptureKeyboard()
			case e.Button == gui.Keyboard(gui.KeyEnter):
				events = append(events, TextBoxEvent{Kind: TextBoxEnter, Text: string(ed.runes)})
			default:
				if edit, ok := textBoxKeys[e.Button.Key]; ok && edit(&ed) {
					events = append(events, TextBoxEvent{Kind: TextBoxUpdate, Text: string(ed.runes)})
				}
			}
		case gui.TextEvent:
			if ed.insert(e.Text) {
				events = append(events, TextBoxEvent{Kind: TextBoxUpdate, Text: string(ed.runes)})
			}
		}
	}
	st.Cursor = ed.cursor
	a.SetState(st)

	s := t.style
	s.Color = orDefault(s.Color, a.Theme.ShapeColor)
	s.TextColor = orDefault(s.TextColor, a.Theme.LabelColor)
	if s.FontSize <= 0 {
		s.FontSize = a.Theme.FontSize()
	}

	NewRectangle(
		gui.WithMiddleOf(a.ID),
		gui.WithWHOf(a.ID),
		gui.WithGraphicsFor(a.ID),
	).Color(interactionOf(a.Input).Color(s.Color)).Set(a.Cell, st.Rect)

	value := string(ed.runes)
	if value != "" {
		NewText(value,
			gui.WithMidLeftOf(a.ID, s.Pad),
			gui.WithGraphicsFor(a.ID),
		).Color(s.TextColor).FontSize(s.FontSize).Font(t.font).Set(a.Cell, st.Text)
	}

	if a.Input.IsCapturingKeyboard() {
		font := t.font
		if font == nil {
			font, _ = text.Default()
		}
		x := -a.Rect.W()/2 + s.Pad + font.Width(string(ed.runes[:ed.cursor]), s.FontSize)
		NewRectangle(
			gui.WithXYRelativeTo(a.ID, x, 0),
			gui.WithWH(2, max(a.Rect.H()-2*s.Pad, 0)),
			gui.WithGraphicsFor(a.ID),
		).Color(s.TextColor).Set(a.Cell, st.Caret)
	}
	return events
}

// Set sets the text box and returns its events.
func (t *TextBox) Set(c *gui.Cell, id gui.WidgetID) []TextBoxEvent {
	events, _ := c.MustSet(id, t).([]TextBoxEvent)
	return events
}

// lineEdit is a line of text with a cursor between runes.
type lineEdit struct {
	runes  []rune
	cursor int
}

// textBoxKeys maps editing keys to their edits. Each edit reports
// whether the text changed.
var textBoxKeys = map[gui.Key]func(*lineEdit) bool{
	gui.KeyBackspace: (*lineEdit).backspace,
	gui.KeyDelete:    (*lineEdit).delete,
	gui.KeyLeft:      func(e *lineEdit) bool { e.move(e.cursor - 1); return false },
	gui.KeyRight:     func(e *lineEdit) bool { e.move(e.cursor + 1); return false },
	gui.KeyHome:      func(e *lineEdit) bool { e.move(0); return false },
	gui.KeyEnd:       func(e *lineEdit) bool { e.move(len(e.runes)); return false },
}

// insert adds the printable runes of s at the cursor.
func (e *lineEdit) insert(s string) bool {
	var add []rune
	for _, r := range s {
		if unicode.IsPrint(r) {
			add = append(add, r)
		}
	}
	if len(add) == 0 {
		return false
	}
	e.runes = append(e.runes[:e.cursor], append(add, e.runes[e.cursor:]...)...)
	e.cursor += len(add)
	return true
}

func (e *lineEdit) backspace() bool {
	if e.cursor == 0 {
		return false
	}
	e.runes = append(e.runes[:e.cursor-1], e.runes[e.cursor:]...)
	e.cursor--
	return true
}

func (e *lineEdit) delete() bool {
	if e.cursor >= len(e.runes) {
		return false
	}
	e.runes = append(e.runes[:e.cursor], e.runes[e.cursor+1:]...)
	return true
}

func (e *lineEdit) move(to int) {
	e.cursor = min(max(to, 0), len(e.runes))
}
