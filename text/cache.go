package text

import (
	"fmt"
	"sync"

	ggtext "github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// Face is a font face at one size.
type Face = ggtext.Face

// Metrics are a face's vertical metrics.
type Metrics = ggtext.Metrics

// maxWidths bounds the width memo. It is cleared when full.
const maxWidths = 4096

type widthKey struct {
	size int
	s    string
}

// Cache measures text with one font. It is safe for concurrent use.
type Cache struct {
	src *ggtext.FontSource

	mu     sync.Mutex
	faces  map[int]Face
	widths map[widthKey]float64
}

// New returns a Cache over the TrueType or OpenType font in data.
func New(data []byte) (*Cache, error) {
	src, err := ggtext.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("text: load font: %w", err)
	}
	return &Cache{
		src:    src,
		faces:  make(map[int]Face),
		widths: make(map[widthKey]float64),
	}, nil
}

// NewFromFile returns a Cache over the font file at path.
func NewFromFile(path string) (*Cache, error) {
	src, err := ggtext.NewFontSourceFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: load font %s: %w", path, err)
	}
	return &Cache{
		src:    src,
		faces:  make(map[int]Face),
		widths: make(map[widthKey]float64),
	}, nil
}

var (
	defaultOnce  sync.Once
	defaultCache *Cache
	defaultErr   error
)

// Default returns the shared Cache over Go Regular.
func Default() (*Cache, error) {
	defaultOnce.Do(func() {
		defaultCache, defaultErr = New(goregular.TTF)
	})
	return defaultCache, defaultErr
}

// Name returns the font's name, or "" for a nil Cache.
func (c *Cache) Name() string {
	if c == nil {
		return ""
	}
	return c.src.Name()
}

// Face returns the face at size, or nil for a nil Cache.
func (c *Cache) Face(size int) Face {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	f, ok := c.faces[size]
	if !ok {
		f = c.src.Face(float64(size))
		c.faces[size] = f
	}
	return f
}

// Width returns the advance width of s at size.
func (c *Cache) Width(s string, size int) float64 {
	if s == "" {
		return 0
	}
	if c == nil {
		return estimateWidth(s, size)
	}
	key := widthKey{size: size, s: s}
	c.mu.Lock()
	w, ok := c.widths[key]
	c.mu.Unlock()
	if ok {
		return w
	}

	w = c.Face(size).Advance(s)

	c.mu.Lock()
	if len(c.widths) >= maxWidths {
		clear(c.widths)
	}
	c.widths[key] = w
	c.mu.Unlock()
	return w
}

// Metrics returns the vertical metrics at size.
func (c *Cache) Metrics(size int) Metrics {
	if c == nil {
		s := float64(size)
		return Metrics{Ascent: s * 4 / 5, Descent: s / 5, CapHeight: s * 7 / 10, XHeight: s / 2}
	}
	return c.Face(size).Metrics()
}

// LineHeight returns the distance between baselines at size.
func (c *Cache) LineHeight(size int) float64 {
	return c.Metrics(size).LineHeight()
}

// HasGlyph reports whether the font can draw r. A nil Cache has every
// glyph.
func (c *Cache) HasGlyph(r rune, size int) bool {
	if c == nil {
		return true
	}
	return c.Face(size).HasGlyph(r)
}

func estimateWidth(s string, size int) float64 {
	n := 0
	for range s {
		n++
	}
	return float64(n) * float64(size) * 0.5
}
