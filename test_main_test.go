package gui

import (
	"os"
	"testing"
	"time"

	"github.com/grindlemire/go-gui/internal/debug"
)

func TestMain(m *testing.M) {
	debug.SetLogger(nil)
	os.Exit(m.Run())
}

// testWidget is a configurable widget kind for tests.
type testWidget struct {
	Common
	kind  Kind
	style any
	init  any
	over  IsOverFunc
	// update runs as the widget's Update when set.
	update func(a *UpdateArgs) any
}

func newTestWidget(opts ...Option) *testWidget {
	w := &testWidget{}
	w.Apply(opts...)
	return w
}

func (w *testWidget) Kind() Kind {
	if w.kind == "" {
		return "Test"
	}
	return w.kind
}

func (w *testWidget) InitState(*IDGenerator) any { return w.init }
func (w *testWidget) Style() any                 { return w.style }

func (w *testWidget) Update(a *UpdateArgs) any {
	if w.update != nil {
		return w.update(a)
	}
	return nil
}

func (w *testWidget) IsOver() IsOverFunc {
	if w.over != nil {
		return w.over
	}
	return DefaultIsOver
}

// clicker captures the mouse on press, releases it on release and
// returns its click count for the frame.
func clicker(opts ...Option) *testWidget {
	w := newTestWidget(opts...)
	w.kind = "Clicker"
	w.update = func(a *UpdateArgs) any {
		if len(a.Input.Presses()) > 0 {
			a.CaptureMouse()
		}
		if len(a.Input.Releases()) > 0 {
			a.UncaptureMouse()
		}
		return a.Input.ClicksOf(MouseLeft)
	}
	return w
}

// fakeClock is a settable clock for double click tests.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestUi(t *testing.T, opts ...UiOption) *Ui {
	t.Helper()
	u, err := NewUi(append([]UiOption{WithWindowSize(400, 300)}, opts...)...)
	if err != nil {
		t.Fatalf("NewUi() error = %v", err)
	}
	return u
}

// frame sets one frame and fails the test on error.
func frame(t *testing.T, u *Ui, fn func(c *Cell)) {
	t.Helper()
	if err := u.Update(fn); err != nil {
		t.Fatalf("frame error = %v", err)
	}
}

// click feeds a left press and release at (x, y).
func click(u *Ui, x, y Scalar) {
	u.HandleInput(CursorAt(x, y))
	u.HandleInput(Press{Button: Mouse(MouseLeft)})
	u.HandleInput(Release{Button: Mouse(MouseLeft)})
}
