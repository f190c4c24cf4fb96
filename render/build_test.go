package render

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	gui "github.com/grindlemire/go-gui"
	"github.com/grindlemire/go-gui/text"
	"github.com/grindlemire/go-gui/widgets"
)

func newUi(t *testing.T) *gui.Ui {
	t.Helper()
	u, err := gui.NewUi(gui.WithWindowSize(400, 300))
	if err != nil {
		t.Fatalf("NewUi() error = %v", err)
	}
	return u
}

func frame(t *testing.T, u *gui.Ui, fn func(c *gui.Cell)) {
	t.Helper()
	if err := u.Update(fn); err != nil {
		t.Fatalf("frame error = %v", err)
	}
}

func TestBuild_Shapes(t *testing.T) {
	u := newUi(t)
	ids := u.IDGenerator().NextN(4)
	rect, oval, poly, canvas := ids[0], ids[1], ids[2], ids[3]
	tri := []gui.Point{gui.Pt(-10, -10), gui.Pt(10, -10), gui.Pt(0, 10)}

	frame(t, u, func(c *gui.Cell) {
		widgets.NewRectangle(gui.WithXY(-100, 0), gui.WithWH(40, 20)).Color(gui.Blue).Set(c, rect)
		widgets.NewOval(gui.WithXY(0, 0), gui.WithWH(30, 30)).Outline(2).Set(c, oval)
		widgets.NewPolygon(tri, gui.WithXY(100, 50)).Set(c, poly)
		widgets.NewCanvas(gui.WithXY(100, -80), gui.WithWH(60, 40)).Border(3, gui.Red).Set(c, canvas)
	})

	theme := u.Theme()
	rr := gui.RectFromXYDim(gui.Pt(-100, 0), gui.Dim(40, 20))
	or := gui.RectFromXYDim(gui.Pt(0, 0), gui.Dim(30, 30))
	pr := gui.RectFromXYDim(gui.Pt(100, 50), gui.Dim(20, 20))
	cr := gui.RectFromXYDim(gui.Pt(100, -80), gui.Dim(60, 40))

	want := []Primitive{
		{ID: rect, Kind: KindRectangle, Rect: rr, Scissor: rr, Color: gui.Blue},
		{ID: oval, Kind: KindOval, Rect: or, Scissor: or, Color: theme.ShapeColor, Outline: true, Thickness: 2},
		{
			ID: poly, Kind: KindPolygon, Rect: pr, Scissor: pr, Color: theme.ShapeColor,
			Points: []gui.Point{gui.Pt(90, 40), gui.Pt(110, 40), gui.Pt(100, 60)},
		},
		{ID: canvas, Kind: KindRectangle, Rect: cr, Scissor: cr, Color: theme.BackgroundColor},
		{ID: canvas, Kind: KindRectangle, Rect: cr, Scissor: cr, Color: gui.Red, Outline: true, Thickness: 3},
	}
	if diff := cmp.Diff(want, Build(u.Draw())); diff != "" {
		t.Errorf("primitives mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_ScrollCropAndScrollbar(t *testing.T) {
	u := newUi(t)
	ids := u.IDGenerator().NextN(3)
	scroller, top, below := ids[0], ids[1], ids[2]
	build := func(c *gui.Cell) {
		widgets.NewCanvas(gui.WithXY(0, 0), gui.WithWH(200, 100), gui.WithScrollKidsVertically()).
			Border(-1, gui.Black).Set(c, scroller)
		widgets.NewRectangle(gui.WithMidTopOf(scroller, 0), gui.WithWH(50, 80)).Set(c, top)
		widgets.NewRectangle(gui.WithDownFrom(top, 10), gui.WithWH(50, 80)).Set(c, below)
	}
	frame(t, u, build)
	frame(t, u, build)

	f := u.Draw()
	prims := Build(f)

	var got []gui.WidgetID
	for _, p := range prims {
		got = append(got, p.ID)
	}
	if diff := cmp.Diff([]gui.WidgetID{scroller, top, below, scroller, scroller}, got); diff != "" {
		t.Fatalf("primitive owners mismatch (-want +got):\n%s", diff)
	}

	belowScissor := gui.Rect{X: gui.Range{Start: -25, End: 25}, Y: gui.Range{Start: -50, End: -40}}
	if diff := cmp.Diff(belowScissor, prims[2].Scissor); diff != "" {
		t.Errorf("cropped child scissor mismatch (-want +got):\n%s", diff)
	}

	n, _ := f.Node(scroller)
	track, _ := n.YScroll.Track(n.KidArea.Rect)
	handle, _ := n.YScroll.Handle(n.KidArea.Rect)
	wantBars := []Primitive{
		{ID: scroller, Kind: KindRectangle, Rect: track, Scissor: n.Visible, Color: ScrollbarTrackColor(f.Theme)},
		{ID: scroller, Kind: KindRectangle, Rect: handle, Scissor: n.Visible, Color: ScrollbarHandleColor(f.Theme)},
	}
	if diff := cmp.Diff(wantBars, prims[3:]); diff != "" {
		t.Errorf("scrollbar mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_SkipsInvisible(t *testing.T) {
	u := newUi(t)
	ids := u.IDGenerator().NextN(2)
	frame(t, u, func(c *gui.Cell) {
		widgets.NewCanvas(gui.WithXY(0, 0), gui.WithWH(100, 100), gui.WithCropKids()).Set(c, ids[0])
		widgets.NewRectangle(gui.WithXYRelativeTo(ids[0], 200, 0), gui.WithWH(10, 10), gui.WithParent(ids[0])).Set(c, ids[1])
	})

	for _, p := range Build(u.Draw()) {
		if p.ID == ids[1] {
			t.Errorf("a fully cropped widget was drawn: %+v", p)
		}
	}
}

type dot struct {
	gui.Common
}

func (d *dot) Kind() gui.Kind                 { return "Dot" }
func (d *dot) InitState(*gui.IDGenerator) any { return nil }
func (d *dot) Style() any                     { return nil }
func (d *dot) Update(*gui.UpdateArgs) any     { return nil }

func TestBuilder_Handle(t *testing.T) {
	u := newUi(t)
	id := u.IDGenerator().Next()
	frame(t, u, func(c *gui.Cell) {
		d := &dot{}
		d.Apply(gui.WithXY(5, 5), gui.WithWH(4, 4))
		c.MustSet(id, d)
	})

	b := NewBuilder(nil)
	if got := b.Build(u.Draw()); len(got) != 0 {
		t.Fatalf("unregistered kind drew %d primitives", len(got))
	}

	b.Handle("Dot", func(n gui.NodeView, theme *gui.Theme, emit func(Primitive)) {
		emit(Primitive{Kind: KindOval, Rect: n.Rect, Color: gui.Yellow})
	})
	got := b.Build(u.Draw())
	r := gui.RectFromXYDim(gui.Pt(5, 5), gui.Dim(4, 4))
	want := []Primitive{{ID: id, Kind: KindOval, Rect: r, Scissor: r, Color: gui.Yellow}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("primitives mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_Text(t *testing.T) {
	font, err := text.Default()
	if err != nil {
		t.Fatalf("text.Default() error = %v", err)
	}
	u := newUi(t)
	id := u.IDGenerator().Next()
	frame(t, u, func(c *gui.Cell) {
		widgets.NewText("one\ntwo", gui.WithXY(0, 0)).FontSize(20).Justify(gui.AlignEnd).LineSpacing(4).Set(c, id)
	})

	prims := Build(u.Draw())
	if len(prims) != 1 || prims[0].Kind != KindText {
		t.Fatalf("primitives = %+v, want one text", prims)
	}
	p := prims[0]
	if p.FontSize != 20 || p.Color != u.Theme().LabelColor {
		t.Errorf("font size, color = %d, %v", p.FontSize, p.Color)
	}
	if len(p.Lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(p.Lines))
	}
	lh := font.LineHeight(20)
	first, second := p.Lines[0].Rect, p.Lines[1].Rect
	if !approx(first.Top(), p.Rect.Top()) || !approx(first.H(), lh) {
		t.Errorf("first line = %v, want it at the top of %v", first, p.Rect)
	}
	if !approx(second.Top(), first.Bottom()-4) {
		t.Errorf("second line top = %v, want %v", second.Top(), first.Bottom()-4)
	}
	if !approx(first.Right(), p.Rect.Right()) || !approx(second.Right(), p.Rect.Right()) {
		t.Errorf("lines %v, %v should be right justified in %v", first, second, p.Rect)
	}
	if got, want := p.Lines[0].Text+p.Lines[1].Text, "onetwo"; got != want {
		t.Errorf("line texts = %q, want %q", got, want)
	}
}

func approx(a, b gui.Scalar) bool {
	return math.Abs(a-b) < 1e-9
}

type recorder struct {
	got  []Kind
	fail int
}

func (r *recorder) Draw(p Primitive) error {
	if len(r.got) == r.fail {
		return errors.New("boom")
	}
	r.got = append(r.got, p.Kind)
	return nil
}

func TestDrawAll(t *testing.T) {
	prims := []Primitive{{Kind: KindRectangle}, {Kind: KindOval}, {Kind: KindText}}

	type tc struct {
		fail    int
		want    []Kind
		wantErr bool
	}

	tests := map[string]tc{
		"all drawn":      {fail: -1, want: []Kind{KindRectangle, KindOval, KindText}},
		"stops on error": {fail: 1, want: []Kind{KindRectangle}, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := &recorder{fail: tt.fail}
			err := DrawAll(r, prims)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DrawAll() error = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, r.got); diff != "" {
				t.Errorf("drawn mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
