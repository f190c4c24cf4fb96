package gui

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is a straight-alpha RGBA color.
// The zero value is transparent black.
type Color struct {
	R, G, B, A uint8
}

var _ color.Color = Color{}

// RGB returns an opaque Color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// RGBA returns a Color with the given alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// HexColor parses a hex color string and returns a Color.
// Supported formats: "#RGB", "#RRGGBB" and "#RRGGBBAA".
func HexColor(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	switch len(hex) {
	case 3:
		// #RGB -> expand to #RRGGBB
		var c [3]uint8
		for i := range c {
			n, err := parseHexNibble(hex[i])
			if err != nil {
				return Color{}, err
			}
			c[i] = n<<4 | n
		}
		return RGB(c[0], c[1], c[2]), nil
	case 6, 8:
		c := [4]uint8{3: 0xff}
		for i := 0; i < len(hex)/2; i++ {
			b, err := parseHexByte(hex[i*2 : i*2+2])
			if err != nil {
				return Color{}, err
			}
			c[i] = b
		}
		return RGBA(c[0], c[1], c[2], c[3]), nil
	default:
		return Color{}, errors.New("invalid hex color format: expected #RGB, #RRGGBB or #RRGGBBAA")
	}
}

// MustHex is HexColor for constant inputs. It panics on a malformed
// string.
func MustHex(hex string) Color {
	c, err := HexColor(hex)
	if err != nil {
		panic(fmt.Sprintf("gui: MustHex(%q): %v", hex, err))
	}
	return c
}

// parseHexByte parses a two-character hex string into a byte.
func parseHexByte(s string) (uint8, error) {
	if len(s) != 2 {
		return 0, errors.New("invalid hex byte")
	}
	high, err := parseHexNibble(s[0])
	if err != nil {
		return 0, err
	}
	low, err := parseHexNibble(s[1])
	if err != nil {
		return 0, err
	}
	return high<<4 | low, nil
}

// parseHexNibble parses a single hex character into a nibble (0-15).
func parseHexNibble(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, errors.New("invalid hex character")
	}
}

// RGBA implements color.Color with premultiplied 16-bit components.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A) * 0x101
	r = uint32(c.R) * 0x101 * a / 0xffff
	g = uint32(c.G) * 0x101 * a / 0xffff
	b = uint32(c.B) * 0x101 * a / 0xffff
	return r, g, b, a
}

// String returns the color as "#RRGGBB", or "#RRGGBBAA" when it is not
// opaque.
func (c Color) String() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// IsTransparent reports whether the color draws nothing.
func (c Color) IsTransparent() bool {
	return c.A == 0
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Luminance returns the relative luminance of the color (0.0-1.0).
// Uses the W3C formula for calculating relative luminance.
func (c Color) Luminance() float64 {
	// Convert to linear RGB (sRGB gamma correction)
	linearize := func(v uint8) float64 {
		f := float64(v) / 255.0
		if f <= 0.03928 {
			return f / 12.92
		}
		return math.Pow((f+0.055)/1.055, 2.4)
	}
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

// IsLight returns true if the color is perceptually light.
func (c Color) IsLight() bool {
	return c.Luminance() > 0.2
}

// Highlighted returns the color shown while the cursor is over a widget.
// Light colors darken, dark colors lighten.
func (c Color) Highlighted() Color {
	switch l := c.Luminance(); {
	case l > 0.8:
		return c.shift(-0.2, -0.2, -0.2, 0.5)
	case l < 0.2:
		return c.shift(0.2, 0.2, 0.2, 0.5)
	default:
		return c.shift(0.1, 0.1, 0.1, 0.5)
	}
}

// Clicked returns the color shown while a widget is pressed.
func (c Color) Clicked() Color {
	switch l := c.Luminance(); {
	case l > 0.8:
		return c.shift(0, -0.2, -0.2, 0.75)
	case l < 0.2:
		return c.shift(0.4, 0.2, 0.2, 0.75)
	default:
		return c.shift(0.25, 0.25, 0.25, 0.75)
	}
}

// Lighten moves every channel towards white by f (0-1).
func (c Color) Lighten(f float64) Color {
	return c.shift(f, f, f, 0)
}

// Darken moves every channel towards black by f (0-1).
func (c Color) Darken(f float64) Color {
	return c.shift(-f, -f, -f, 0)
}

// shift adds dr, dg, db to the channels in 0-1 units and moves alpha
// towards opaque by da.
func (c Color) shift(dr, dg, db, da float64) Color {
	ch := func(v uint8, d float64) uint8 {
		f := float64(v)/255 + d
		return uint8(math.Round(math.Max(0, math.Min(1, f)) * 255))
	}
	a := float64(c.A) / 255
	a += (1 - a) * da
	return Color{
		R: ch(c.R, dr),
		G: ch(c.G, dg),
		B: ch(c.B, db),
		A: uint8(math.Round(a * 255)),
	}
}

// Contrasting returns black or white, whichever reads better on c.
func (c Color) Contrasting() Color {
	if c.IsLight() {
		return Black
	}
	return White
}

// MarshalYAML writes the color as a hex string.
func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}

// UnmarshalYAML reads a hex string.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := HexColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

// Standard colors.
var (
	Transparent = Color{}
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(204, 0, 0)
	Green       = RGB(115, 210, 22)
	Blue        = RGB(52, 101, 164)
	Yellow      = RGB(237, 212, 0)
	Orange      = RGB(245, 121, 0)
	Purple      = RGB(117, 80, 123)
	Gray        = RGB(186, 189, 182)
	DarkGray    = RGB(85, 87, 83)
	LightGray   = RGB(211, 215, 207)
	Charcoal    = RGB(46, 52, 54)
)
