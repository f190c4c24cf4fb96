package main

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	gui "github.com/grindlemire/go-gui"
)

// Script is a recorded input session: one entry per frame.
type Script struct {
	Frames []ScriptFrame `yaml:"frames"`
}

// ScriptFrame holds the inputs fed before one frame is set.
type ScriptFrame struct {
	Inputs []ScriptInput `yaml:"inputs"`
}

// ScriptInput is one raw input. Type is one of motion, scroll, press,
// release, click, key, text or resize.
type ScriptInput struct {
	Type   string     `yaml:"type"`
	X      gui.Scalar `yaml:"x"`
	Y      gui.Scalar `yaml:"y"`
	W      gui.Scalar `yaml:"w"`
	H      gui.Scalar `yaml:"h"`
	Button string     `yaml:"button"`
	Key    string     `yaml:"key"`
	Text   string     `yaml:"text"`
}

// defaultScript clicks the first list button, scrolls the list, drags
// the slider, flips the toggle and types into the text box.
const defaultScript = `
frames:
  - inputs: []
  - inputs:
      - {type: motion, x: -189, y: 156}
  - inputs:
      - {type: click, button: left}
  - inputs:
      - {type: scroll, y: 60}
  - inputs:
      - {type: motion, x: 90, y: 167}
      - {type: press, button: left}
      - {type: motion, x: 280, y: 167}
      - {type: release, button: left}
  - inputs:
      - {type: motion, x: 169, y: 127}
      - {type: click, button: left}
  - inputs:
      - {type: motion, x: -189, y: -34}
      - {type: click, button: left}
  - inputs:
      - {type: text, text: "hi"}
      - {type: key, key: enter}
  - inputs: []
`

// ParseScript decodes a YAML script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing script: %w", err)
	}
	for i, f := range s.Frames {
		for j, in := range f.Inputs {
			if _, err := in.Inputs(); err != nil {
				return nil, fmt.Errorf("frame %d input %d: %w", i, j, err)
			}
		}
	}
	return &s, nil
}

// LoadScript reads a script from path, or returns the built-in script
// when path is empty.
func LoadScript(path string) (*Script, error) {
	if path == "" {
		return ParseScript([]byte(defaultScript))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return ParseScript(data)
}

// Inputs expands the entry into raw inputs.
func (in ScriptInput) Inputs() ([]gui.Input, error) {
	switch in.Type {
	case "motion":
		return []gui.Input{gui.CursorAt(in.X, in.Y)}, nil
	case "scroll":
		return []gui.Input{gui.ScrollBy(in.X, in.Y)}, nil
	case "press", "release", "click", "key":
		b, err := in.button()
		if err != nil {
			return nil, err
		}
		switch in.Type {
		case "press":
			return []gui.Input{gui.Press{Button: b}}, nil
		case "release":
			return []gui.Input{gui.Release{Button: b}}, nil
		}
		return []gui.Input{gui.Press{Button: b}, gui.Release{Button: b}}, nil
	case "text":
		if in.Text == "" {
			return nil, fmt.Errorf("text input without text")
		}
		return []gui.Input{gui.Text{Text: in.Text}}, nil
	case "resize":
		if in.W <= 0 || in.H <= 0 {
			return nil, fmt.Errorf("resize to %vx%v", in.W, in.H)
		}
		return []gui.Input{gui.Resize{W: in.W, H: in.H}}, nil
	default:
		return nil, fmt.Errorf("unknown input type %q", in.Type)
	}
}

// button resolves the mouse button or key the entry names. A key of a
// single character is pressed as that character.
func (in ScriptInput) button() (gui.Button, error) {
	switch {
	case in.Button != "":
		mb, ok := gui.ParseMouseButton(in.Button)
		if !ok {
			return gui.Button{}, fmt.Errorf("unknown mouse button %q", in.Button)
		}
		return gui.Mouse(mb), nil
	case utf8.RuneCountInString(in.Key) == 1:
		r, _ := utf8.DecodeRuneInString(in.Key)
		return gui.Char(r), nil
	case in.Key != "":
		k, ok := gui.ParseKey(in.Key)
		if !ok {
			return gui.Button{}, fmt.Errorf("unknown key %q", in.Key)
		}
		return gui.Keyboard(k), nil
	}
	return gui.Button{}, fmt.Errorf("%s input needs a button or key", in.Type)
}
