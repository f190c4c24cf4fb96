package gui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFrame_Snapshot(t *testing.T) {
	f := newScrollFixture(t)
	u := f.u
	frame(t, u, f.build)
	frame(t, u, f.build)

	snap := u.Draw()
	if snap.Window != RectFromXYDim(Pt(0, 0), Dim(400, 300)) {
		t.Errorf("Window = %v, want 400x300 at the origin", snap.Window)
	}
	if got := snap.Len(); got != 5 {
		t.Fatalf("Len() = %d, want 5", got)
	}

	top, ok := snap.Node(f.top)
	if !ok {
		t.Fatal("Node(top) not found")
	}
	if top.Parent != f.scroller || top.Kind != "Test" {
		t.Errorf("top = %+v, want a Test child of the scroller", top)
	}
	if top.Rect.XY() != Pt(0, 10) {
		t.Errorf("top xy = %v, want (0, 10)", top.Rect.XY())
	}

	s, _ := snap.Node(f.scroller)
	if s.YScroll == nil || s.XScroll != nil {
		t.Fatalf("scroller scroll states = %v, %v; want y only", s.XScroll, s.YScroll)
	}
	if diff := cmp.Diff(Range{Start: 0, End: 70}, s.YScroll.Bounds); diff != "" {
		t.Errorf("bounds mismatch (-want +got):\n%s", diff)
	}

	// Later frames must not reach into an earlier snapshot.
	u.ScrollWidget(f.scroller, 0, 30)
	frame(t, u, f.build)

	if s.YScroll.Offset != 0 {
		t.Errorf("snapshot offset = %v, want 0", s.YScroll.Offset)
	}
	if again, _ := snap.Node(f.top); again.Rect.XY() != Pt(0, 10) {
		t.Errorf("snapshot top xy = %v, want (0, 10)", again.Rect.XY())
	}
	if now, _ := u.Draw().Node(f.top); now.Rect.XY() != Pt(0, 40) {
		t.Errorf("current top xy = %v, want (0, 40)", now.Rect.XY())
	}

	if _, ok := snap.Node(WidgetID(999)); ok {
		t.Error("Node() of an unknown id should report false")
	}
}

func TestFrame_GraphicParentAndVisibility(t *testing.T) {
	f := newScrollFixture(t)
	u := f.u
	frame(t, u, f.build)
	frame(t, u, f.build)

	ids := u.IDGenerator().NextN(1)
	frame(t, u, func(c *Cell) {
		f.build(c)
		c.MustSet(ids[0], newTestWidget(WithMiddleOf(f.top), WithWH(10, 10), WithGraphicsFor(f.top)))
	})

	snap := u.Draw()
	g, ok := snap.Node(ids[0])
	if !ok {
		t.Fatal("graphic child missing from the frame")
	}
	if g.GraphicParent != f.top {
		t.Errorf("GraphicParent = %v, want %v", g.GraphicParent, f.top)
	}

	below, _ := snap.Node(f.below)
	if !below.HasVisible {
		t.Fatal("below should be partly visible")
	}
	if below.Visible.Y != (Range{Start: -50, End: -40}) {
		t.Errorf("below visible y = %v, want [-50, -40]", below.Visible.Y)
	}
}
