package gui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/grindlemire/go-gui/internal/debug"
)

// UiOption is a functional option for configuring a Ui.
type UiOption func(*Ui) error

// WithWindowSize sets the initial window dimensions.
// Default is 640x480. Both sides must be positive.
func WithWindowSize(w, h Scalar) UiOption {
	return func(u *Ui) error {
		if w <= 0 || h <= 0 {
			return fmt.Errorf("window size must be positive, got %vx%v", w, h)
		}
		u.win = Dim(w, h)
		return nil
	}
}

// WithTheme sets the theme used for style defaults.
func WithTheme(t *Theme) UiOption {
	return func(u *Ui) error {
		if t == nil {
			return fmt.Errorf("theme cannot be nil")
		}
		u.theme = t
		return nil
	}
}

// WithWidgetsCapacity preallocates room for n widgets.
// Default is 512. Must be at least 1.
func WithWidgetsCapacity(n int) UiOption {
	return func(u *Ui) error {
		if n < 1 {
			return fmt.Errorf("widget capacity must be at least 1")
		}
		u.capacity = n
		return nil
	}
}

// WithRedrawFrames sets how many consecutive frames NeedsRedraw arms.
// Default is 3, enough for triple buffered backends. Must be at least 1.
func WithRedrawFrames(n int) UiOption {
	return func(u *Ui) error {
		if n < 1 {
			return fmt.Errorf("redraw frames must be at least 1")
		}
		u.redrawFrames = n
		return nil
	}
}

// WithClock replaces time.Now for double click detection.
func WithClock(now func() time.Time) UiOption {
	return func(u *Ui) error {
		if now == nil {
			return fmt.Errorf("clock cannot be nil")
		}
		u.now = now
		return nil
	}
}

// WithLogger routes debug events to l.
func WithLogger(l *slog.Logger) UiOption {
	return func(u *Ui) error {
		debug.SetLogger(l)
		return nil
	}
}
