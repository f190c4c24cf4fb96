package gui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParseTheme(t *testing.T) {
	type tc struct {
		data    string
		check   func(t *testing.T, th *Theme)
		wantErr string
	}

	tests := map[string]tc{
		"empty keeps defaults": {
			data: "",
			check: func(t *testing.T, th *Theme) {
				want := DefaultTheme()
				if th.Name != want.Name || th.BorderWidth != want.BorderWidth {
					t.Errorf("theme = %+v, want defaults", th)
				}
				if th.DoubleClickThreshold != 500*time.Millisecond {
					t.Errorf("DoubleClickThreshold = %v, want 500ms", th.DoubleClickThreshold)
				}
			},
		},
		"overrides": {
			data: strings.Join([]string{
				"name: Night",
				"padding: 4",
				"background_color: \"#102030\"",
				"label_color: \"#fff\"",
				"font_size_medium: 14",
				"mouse_drag_threshold: 3",
				"double_click_threshold: 250ms",
			}, "\n"),
			check: func(t *testing.T, th *Theme) {
				if th.Name != "Night" || th.Padding != 4 {
					t.Errorf("name, padding = %q, %v", th.Name, th.Padding)
				}
				if diff := cmp.Diff(RGB(0x10, 0x20, 0x30), th.BackgroundColor); diff != "" {
					t.Errorf("background mismatch (-want +got):\n%s", diff)
				}
				if th.LabelColor != White {
					t.Errorf("LabelColor = %v, want white", th.LabelColor)
				}
				if th.FontSize() != 14 {
					t.Errorf("FontSize() = %d, want 14", th.FontSize())
				}
				if th.MouseDragThreshold != 3 {
					t.Errorf("MouseDragThreshold = %v, want 3", th.MouseDragThreshold)
				}
				if th.DoubleClickThreshold != 250*time.Millisecond {
					t.Errorf("DoubleClickThreshold = %v, want 250ms", th.DoubleClickThreshold)
				}
				// untouched fields keep their defaults
				if th.ShapeColor != White {
					t.Errorf("ShapeColor = %v, want the default", th.ShapeColor)
				}
			},
		},
		"bad color": {
			data:    "shape_color: \"#12\"",
			wantErr: "parse theme",
		},
		"negative border": {
			data:    "border_width: -1",
			wantErr: "border_width",
		},
		"negative double click": {
			data:    "double_click_threshold: -1s",
			wantErr: "double_click_threshold",
		},
		"not yaml": {
			data:    "name: [",
			wantErr: "parse theme",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			th, err := ParseTheme([]byte(tt.data))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("ParseTheme() error = %v, want it to mention %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTheme() error = %v", err)
			}
			tt.check(t, th)
		})
	}
}

func TestLoadTheme(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	if err := os.WriteFile(path, []byte("name: Disk\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	th, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme() error = %v", err)
	}
	if th.Name != "Disk" {
		t.Errorf("Name = %q, want Disk", th.Name)
	}

	if _, err := LoadTheme(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadTheme() of a missing file should fail")
	}
}

func TestTheme_WidgetStyle(t *testing.T) {
	th, err := ParseTheme([]byte(strings.Join([]string{
		"widgets:",
		"  Button:",
		"    color: \"#cc0000\"",
		"    w: 120",
		"  Slider:",
		"    color: 12",
	}, "\n")))
	if err != nil {
		t.Fatalf("ParseTheme() error = %v", err)
	}

	type style struct {
		Color Color  `yaml:"color"`
		Label string `yaml:"label"`
	}

	type tc struct {
		kind    Kind
		want    style
		wantOK  bool
		wantErr bool
	}

	tests := map[string]tc{
		"present":     {kind: "Button", want: style{Color: Red, Label: "keep"}, wantOK: true},
		"absent":      {kind: "Toggle", want: style{Label: "keep"}},
		"undecodable": {kind: "Slider", want: style{Label: "keep"}, wantOK: true, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := style{Label: "keep"}
			ok, err := th.WidgetStyle(tt.kind, &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("WidgetStyle() error = %v, wantErr %v", err, tt.wantErr)
			}
			if ok != tt.wantOK {
				t.Errorf("WidgetStyle() ok = %v, want %v", ok, tt.wantOK)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("style mismatch (-want +got):\n%s", diff)
			}
		})
	}

	w, h := th.WidgetSize("Button")
	if w != Length(120) || h != (Dimension{}) {
		t.Errorf("WidgetSize(Button) = %v, %v; want 120 and unset", w, h)
	}
}
