package widgets

import gui "github.com/grindlemire/go-gui"

// SliderStyle is how a slider is drawn.
type SliderStyle struct {
	// Color is the filled part; it falls back to Theme.ShapeColor.
	Color gui.Color
	// TrackColor is the unfilled part; it falls back to a darkened Color.
	TrackColor gui.Color
	// Border is the inset of the fill within the track.
	Border gui.Scalar
	// Label is drawn in the middle when set.
	Label string
}

// SliderState holds the ids of a slider's graphics.
type SliderState struct {
	Track, Fill, Label gui.WidgetID
}

// Slider picks a value between min and max by pressing or dragging
// along its long axis. A slider wider than it is tall runs left to
// right, otherwise bottom to top. Its event is the new value, set only
// when the value changed.
type Slider struct {
	gui.Common
	value, min, max float64
	style           SliderStyle
}

// NewSlider returns a slider showing value within [min, max].
func NewSlider(value, min, max float64, opts ...gui.Option) *Slider {
	s := &Slider{value: value, min: min, max: max}
	s.Apply(opts...)
	return s
}

// Color sets the fill color.
func (s *Slider) Color(c gui.Color) *Slider {
	s.style.Color = c
	return s
}

// TrackColor sets the color of the unfilled track.
func (s *Slider) TrackColor(c gui.Color) *Slider {
	s.style.TrackColor = c
	return s
}

// Border insets the fill within the track.
func (s *Slider) Border(b gui.Scalar) *Slider {
	s.style.Border = b
	return s
}

// Label sets the text drawn over the slider.
func (s *Slider) Label(l string) *Slider {
	s.style.Label = l
	return s
}

func (s *Slider) Kind() gui.Kind { return KindSlider }
func (s *Slider) Style() any     { return s.style }

func (s *Slider) InitState(ids *gui.IDGenerator) any {
	n := ids.NextN(3)
	return SliderState{Track: n[0], Fill: n[1], Label: n[2]}
}

func (s *Slider) Update(a *gui.UpdateArgs) any {
	st := gui.StateOf[SliderState](a)
	value := clampValue(s.value, s.min, s.max)

	inner := a.Rect.RelativeTo(a.Rect.XY()).Pad(s.style.Border)
	horizontal := a.Rect.W() >= a.Rect.H()
	along := inner.Y
	if horizontal {
		along = inner.X
	}

	var event any
	if trackPress(a) {
		if m, ok := a.Input.Mouse(); ok {
			pos := m.XY.Y
			if horizontal {
				pos = m.XY.X
			}
			next := valueAt(pos, along, s.min, s.max)
			if next != value {
				value = next
				event = value
			}
		}
	}

	color := interactionOf(a.Input).Color(orDefault(s.style.Color, a.Theme.ShapeColor))
	track := orDefault(s.style.TrackColor, color.Darken(0.4))
	NewRectangle(
		gui.WithMiddleOf(a.ID),
		gui.WithWHOf(a.ID),
		gui.WithGraphicsFor(a.ID),
	).Color(track).Set(a.Cell, st.Track)

	frac := 0.0
	if s.max != s.min {
		frac = (value - s.min) / (s.max - s.min)
	}
	fill := NewRectangle(gui.WithGraphicsFor(a.ID)).Color(color)
	if horizontal {
		fill.Apply(
			gui.WithMidLeftOf(a.ID, s.style.Border),
			gui.WithWH(along.Len()*frac, inner.H()),
		)
	} else {
		fill.Apply(
			gui.WithMidBottomOf(a.ID, s.style.Border),
			gui.WithWH(inner.W(), along.Len()*frac),
		)
	}
	fill.Set(a.Cell, st.Fill)

	if s.style.Label != "" {
		NewText(s.style.Label,
			gui.WithMiddleOf(a.ID),
			gui.WithGraphicsFor(a.ID),
		).Set(a.Cell, st.Label)
	}
	return event
}

// Set sets the slider. It returns the new value and true when the
// value changed this frame.
func (s *Slider) Set(c *gui.Cell, id gui.WidgetID) (float64, bool) {
	v, ok := c.MustSet(id, s).(float64)
	return v, ok
}

// valueAt maps a position along the track to a value.
func valueAt(pos gui.Scalar, along gui.Range, lo, hi float64) float64 {
	if along.Len() <= 0 {
		return lo
	}
	frac := (along.ClampValue(pos) - along.Undirected().Start) / along.Len()
	return clampValue(lo+frac*(hi-lo), lo, hi)
}

func clampValue(v, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	return min(max(v, lo), hi)
}
