package gui

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Theme supplies style defaults. Widget styles fall back to the theme
// for every field they leave unset.
type Theme struct {
	Name string `yaml:"name"`
	// Padding is applied inside the window's kid area.
	Padding Scalar `yaml:"padding"`

	// XPosition and YPosition are used when a widget gives no position.
	XPosition Position `yaml:"-"`
	YPosition Position `yaml:"-"`

	BackgroundColor Color  `yaml:"background_color"`
	ShapeColor      Color  `yaml:"shape_color"`
	BorderColor     Color  `yaml:"border_color"`
	BorderWidth     Scalar `yaml:"border_width"`
	LabelColor      Color  `yaml:"label_color"`

	FontSizeLarge  int `yaml:"font_size_large"`
	FontSizeMedium int `yaml:"font_size_medium"`
	FontSizeSmall  int `yaml:"font_size_small"`

	// MouseDragThreshold is how far the cursor must travel with a button
	// held before drag events are produced.
	MouseDragThreshold Scalar `yaml:"mouse_drag_threshold"`
	// DoubleClickThreshold is the longest gap between two clicks that
	// still counts as a double click.
	DoubleClickThreshold time.Duration `yaml:"double_click_threshold"`

	// Widgets holds per kind overrides, decoded on demand by WidgetStyle.
	Widgets map[string]yaml.Node `yaml:"widgets"`
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() *Theme {
	return &Theme{
		Name:                 "Demo Theme",
		XPosition:            Aligned(AlignStart),
		YPosition:            Before(20),
		BackgroundColor:      Black,
		ShapeColor:           White,
		BorderColor:          Black,
		BorderWidth:          1,
		LabelColor:           Black,
		FontSizeLarge:        26,
		FontSizeMedium:       18,
		FontSizeSmall:        12,
		DoubleClickThreshold: 500 * time.Millisecond,
	}
}

// ParseTheme reads a YAML theme. Fields missing from data keep their
// DefaultTheme values.
func ParseTheme(data []byte) (*Theme, error) {
	t := DefaultTheme()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	if t.BorderWidth < 0 {
		return nil, fmt.Errorf("parse theme: border_width must not be negative")
	}
	if t.DoubleClickThreshold < 0 {
		return nil, fmt.Errorf("parse theme: double_click_threshold must not be negative")
	}
	return t, nil
}

// LoadTheme reads a YAML theme from path.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}
	t, err := ParseTheme(data)
	if err != nil {
		return nil, fmt.Errorf("load theme %s: %w", path, err)
	}
	return t, nil
}

// WidgetStyle decodes the overrides for kind into dst. Fields absent from
// the theme are left as they are. It reports whether the theme has an
// entry for kind.
func (t *Theme) WidgetStyle(kind Kind, dst any) (bool, error) {
	node, ok := t.Widgets[string(kind)]
	if !ok {
		return false, nil
	}
	if err := node.Decode(dst); err != nil {
		return true, fmt.Errorf("theme style for %s: %w", kind, err)
	}
	return true, nil
}

// widgetDefaults are the per kind keys the Ui itself reads.
type widgetDefaults struct {
	W *Scalar `yaml:"w"`
	H *Scalar `yaml:"h"`
}

// WidgetSize returns the default dimensions the theme gives kind.
// Dimensions the theme leaves out are unset.
func (t *Theme) WidgetSize(kind Kind) (w, h Dimension) {
	var d widgetDefaults
	if ok, err := t.WidgetStyle(kind, &d); !ok || err != nil {
		return Dimension{}, Dimension{}
	}
	if d.W != nil {
		w = Length(*d.W)
	}
	if d.H != nil {
		h = Length(*d.H)
	}
	return w, h
}

// FontSize returns the medium font size, or 18 when the theme sets none.
func (t *Theme) FontSize() int {
	if t.FontSizeMedium > 0 {
		return t.FontSizeMedium
	}
	return 18
}
