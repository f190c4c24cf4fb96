package text

import (
	"strings"
	"unicode"
)

// Wrap selects how Lines breaks a line that is too wide.
type Wrap uint8

const (
	// WrapNone only breaks at newlines.
	WrapNone Wrap = iota
	// WrapWhitespace breaks between words, and inside a word only when
	// the word alone is too wide.
	WrapWhitespace
	// WrapCharacter breaks at any character.
	WrapCharacter
)

// Lines splits s into the lines drawn within maxWidth at size. Newlines
// always break. A maxWidth of zero or less disables wrapping.
func (c *Cache) Lines(s string, size int, maxWidth float64, wrap Wrap) []string {
	var out []string
	for _, para := range strings.Split(s, "\n") {
		if wrap == WrapNone || maxWidth <= 0 || c.Width(para, size) <= maxWidth {
			out = append(out, para)
			continue
		}
		switch wrap {
		case WrapCharacter:
			out = append(out, c.wrapChars(para, size, maxWidth)...)
		default:
			out = append(out, c.wrapWords(para, size, maxWidth)...)
		}
	}
	return out
}

func (c *Cache) wrapChars(s string, size int, maxWidth float64) []string {
	var (
		out  []string
		line []rune
	)
	for _, r := range s {
		next := append(line, r)
		if len(line) > 0 && c.Width(string(next), size) > maxWidth {
			out = append(out, string(line))
			line = []rune{r}
			continue
		}
		line = next
	}
	return append(out, string(line))
}

func (c *Cache) wrapWords(s string, size int, maxWidth float64) []string {
	var out []string
	line := ""
	for _, word := range strings.FieldsFunc(s, unicode.IsSpace) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if c.Width(candidate, size) <= maxWidth {
			line = candidate
			continue
		}
		if line != "" {
			out = append(out, line)
		}
		if c.Width(word, size) > maxWidth {
			parts := c.wrapChars(word, size, maxWidth)
			out = append(out, parts[:len(parts)-1]...)
			line = parts[len(parts)-1]
			continue
		}
		line = word
	}
	return append(out, line)
}

// Height returns the height of n lines at size.
func (c *Cache) Height(n, size int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n) * c.LineHeight(size)
}

// MaxWidth returns the width of the widest line.
func (c *Cache) MaxWidth(lines []string, size int) float64 {
	w := 0.0
	for _, l := range lines {
		w = max(w, c.Width(l, size))
	}
	return w
}
