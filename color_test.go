package gui

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestHexColor_Valid(t *testing.T) {
	type tc struct {
		hex  string
		want Color
	}

	tests := map[string]tc{
		"black":           {hex: "#000000", want: RGB(0, 0, 0)},
		"white uppercase": {hex: "#FFFFFF", want: RGB(255, 255, 255)},
		"white lowercase": {hex: "#ffffff", want: RGB(255, 255, 255)},
		"mixed":           {hex: "#1A2B3C", want: RGB(26, 43, 60)},
		"without hash":    {hex: "1A2B3C", want: RGB(26, 43, 60)},
		"short":           {hex: "#ABC", want: RGB(0xAA, 0xBB, 0xCC)},
		"short black":     {hex: "#000", want: RGB(0, 0, 0)},
		"with alpha":      {hex: "#1A2B3C80", want: RGBA(26, 43, 60, 0x80)},
		"transparent":     {hex: "#00000000", want: Transparent},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c, err := HexColor(tt.hex)
			if err != nil {
				t.Fatalf("HexColor(%q) returned error: %v", tt.hex, err)
			}
			if c != tt.want {
				t.Errorf("HexColor(%q) = %v, want %v", tt.hex, c, tt.want)
			}
		})
	}
}

func TestHexColor_Invalid(t *testing.T) {
	type tc struct {
		hex string
	}

	tests := map[string]tc{
		"empty":           {hex: ""},
		"hash only":       {hex: "#"},
		"two digits":      {hex: "#12"},
		"four digits":     {hex: "#1234"},
		"seven digits":    {hex: "#1234567"},
		"invalid 3 digit": {hex: "#GGG"},
		"invalid 6 digit": {hex: "#GGGGGG"},
		"invalid alpha":   {hex: "#1234567G"},
		"not a color":     {hex: "not-a-color"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := HexColor(tt.hex); err == nil {
				t.Errorf("HexColor(%q) should return error", tt.hex)
			}
		})
	}
}

func TestColor_String(t *testing.T) {
	type tc struct {
		c    Color
		want string
	}

	tests := map[string]tc{
		"opaque":      {c: RGB(255, 0, 16), want: "#ff0010"},
		"translucent": {c: RGBA(255, 0, 16, 0x80), want: "#ff001080"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.c.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColor_RGBA(t *testing.T) {
	type tc struct {
		c          Color
		r, g, b, a uint32
	}

	tests := map[string]tc{
		"opaque red":   {c: RGB(255, 0, 0), r: 0xffff, a: 0xffff},
		"half red":     {c: RGBA(255, 0, 0, 128), r: 128 * 0x101, a: 128 * 0x101},
		"transparent":  {c: RGBA(255, 255, 255, 0)},
		"opaque white": {c: White, r: 0xffff, g: 0xffff, b: 0xffff, a: 0xffff},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.r || g != tt.g || b != tt.b || a != tt.a {
				t.Errorf("RGBA() = %d,%d,%d,%d, want %d,%d,%d,%d", r, g, b, a, tt.r, tt.g, tt.b, tt.a)
			}
		})
	}
}

func TestColor_Variants(t *testing.T) {
	type tc struct {
		got  Color
		want Color
	}

	tests := map[string]tc{
		"highlighted black lightens": {got: Black.Highlighted(), want: RGB(51, 51, 51)},
		"highlighted white darkens":  {got: White.Highlighted(), want: RGB(204, 204, 204)},
		"clicked white tints red":    {got: White.Clicked(), want: RGB(255, 204, 204)},
		"clicked black":              {got: Black.Clicked(), want: RGB(102, 51, 51)},
		"darken white":               {got: White.Darken(0.5), want: RGB(128, 128, 128)},
		"lighten black":              {got: Black.Lighten(1), want: White},
		"lighten clamps":             {got: White.Lighten(0.5), want: White},
		"highlight raises alpha":     {got: RGBA(0, 0, 0, 0).Highlighted(), want: RGBA(51, 51, 51, 128)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestColor_Contrasting(t *testing.T) {
	if got := White.Contrasting(); got != Black {
		t.Errorf("White.Contrasting() = %v, want black", got)
	}
	if got := Charcoal.Contrasting(); got != White {
		t.Errorf("Charcoal.Contrasting() = %v, want white", got)
	}
}

func TestColor_YAML(t *testing.T) {
	type doc struct {
		Fill Color `yaml:"fill"`
	}

	var d doc
	if err := yaml.Unmarshal([]byte(`fill: "#3465a4"`), &d); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if d.Fill != Blue {
		t.Errorf("Fill = %v, want %v", d.Fill, Blue)
	}

	out, err := yaml.Marshal(doc{Fill: RGBA(1, 2, 3, 4)})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var back doc
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal(%q): %v", out, err)
	}
	if back.Fill != RGBA(1, 2, 3, 4) {
		t.Errorf("Fill after Marshal = %v, want #01020304", back.Fill)
	}

	if err := yaml.Unmarshal([]byte(`fill: "#zzz"`), &d); err == nil {
		t.Error("Unmarshal of a malformed color should fail")
	}
}
