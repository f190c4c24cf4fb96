package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"text/tabwriter"

	"github.com/mattn/go-isatty"
	"golang.org/x/sync/errgroup"

	gui "github.com/grindlemire/go-gui"
	"github.com/grindlemire/go-gui/backend/raster"
	"github.com/grindlemire/go-gui/internal/debug"
	"github.com/grindlemire/go-gui/text"
	"github.com/grindlemire/go-gui/widgets"
)

const listLen = 8

type demoIDs struct {
	canvas, list, entry, slider, toggle, status, oval, poly gui.WidgetID
	buttons                                                 []gui.WidgetID
}

// app is the demo's state, kept between frames.
type app struct {
	ui  *gui.Ui
	ids demoIDs

	clicked   int
	volume    float64
	enabled   bool
	typed     string
	entry     string
	submitted string
}

func newApp(u *gui.Ui) *app {
	gen := u.IDGenerator()
	ids := demoIDs{
		canvas:  gen.Next(),
		list:    gen.Next(),
		entry:   gen.Next(),
		slider:  gen.Next(),
		toggle:  gen.Next(),
		status:  gen.Next(),
		oval:    gen.Next(),
		poly:    gen.Next(),
		buttons: gen.NextN(listLen),
	}
	return &app{ui: u, ids: ids, clicked: -1, volume: 50}
}

// build sets one frame of widgets.
func (a *app) build(c *gui.Cell) {
	for _, e := range a.ui.GlobalInput() {
		if t, ok := e.(gui.TextEvent); ok {
			a.typed += t.Text
		}
	}

	win := a.ui.WindowDim()
	widgets.NewCanvas(
		gui.WithXY(0, 0),
		gui.WithWH(win.W-40, win.H-40),
	).Title("go-gui demo").Pad(10).Set(c, a.ids.canvas)

	widgets.NewCanvas(
		gui.WithTopLeftOf(a.ids.canvas, 0),
		gui.WithWH(200, 200),
		gui.WithParent(a.ids.canvas),
		gui.WithScrollKidsVertically(),
	).Color(gui.Charcoal).Pad(5).Set(c, a.ids.list)

	for i, id := range a.ids.buttons {
		opts := []gui.Option{gui.WithWH(180, 40), gui.WithParent(a.ids.list)}
		if i == 0 {
			opts = append(opts, gui.WithMidTopOf(a.ids.list, 0))
		} else {
			opts = append(opts, gui.WithDownFrom(a.ids.buttons[i-1], 5))
		}
		color := gui.Blue
		if i == a.clicked {
			color = gui.Green
		}
		if widgets.NewButton(fmt.Sprintf("item %d", i), opts...).Color(color).Set(c, id) > 0 {
			a.clicked = i
		}
	}

	for _, e := range widgets.NewTextBox(a.entry,
		gui.WithDownFrom(a.ids.list, 10),
		gui.WithWH(200, 30),
	).Set(c, a.ids.entry) {
		switch e.Kind {
		case widgets.TextBoxUpdate:
			a.entry = e.Text
		case widgets.TextBoxEnter:
			a.submitted, a.entry = e.Text, ""
		}
	}

	if v, ok := widgets.NewSlider(a.volume, 0, 100,
		gui.WithTopRightOf(a.ids.canvas, 0),
		gui.WithWH(240, 30),
		gui.WithParent(a.ids.canvas),
	).Color(gui.Orange).Label(fmt.Sprintf("volume %.0f", a.volume)).Set(c, a.ids.slider); ok {
		a.volume = v
	}

	label := "disabled"
	if a.enabled {
		label = "enabled"
	}
	if v, ok := widgets.NewToggle(a.enabled,
		gui.WithDownFrom(a.ids.slider, 10),
		gui.WithWH(240, 30),
	).Label(label).Color(gui.Purple).Set(c, a.ids.toggle); ok {
		a.enabled = v
	}

	widgets.NewOval(
		gui.WithDownFrom(a.ids.toggle, 20),
		gui.WithWH(100, 60),
	).Color(gui.Yellow).Set(c, a.ids.oval)

	widgets.NewPolygon(
		[]gui.Point{gui.Pt(-40, -30), gui.Pt(40, -30), gui.Pt(0, 30)},
		gui.WithRightFrom(a.ids.oval, 20),
	).Color(gui.Red).Set(c, a.ids.poly)

	widgets.NewText(a.status(),
		gui.WithBottomLeftOf(a.ids.canvas, 0),
		gui.WithParent(a.ids.canvas),
	).Color(gui.LightGray).FontSize(a.ui.Theme().FontSizeSmall).Set(c, a.ids.status)
}

func (a *app) status() string {
	clicked := "none"
	if a.clicked >= 0 {
		clicked = fmt.Sprintf("item %d", a.clicked)
	}
	return fmt.Sprintf("clicked: %s  volume: %.0f  enabled: %t  typed: %q  submitted: %q",
		clicked, a.volume, a.enabled, a.typed, a.submitted)
}

// frameRow summarises one scripted frame.
type frameRow struct {
	index   int
	widgets int
	under   gui.WidgetID
	kind    gui.Kind
	capture gui.WidgetID
	drawn   bool
}

// snapshot is a frame waiting to be rasterised.
type snapshot struct {
	index int
	frame *gui.Frame
}

// demo runs a script against the demo app.
type demo struct {
	cfg  config
	ui   *gui.Ui
	app  *app
	font *text.Cache
}

func newDemo(cfg config) (*demo, error) {
	theme := gui.DefaultTheme()
	if cfg.theme != "" {
		t, err := gui.LoadTheme(cfg.theme)
		if err != nil {
			return nil, err
		}
		theme = t
	}

	u, err := gui.NewUi(
		gui.WithWindowSize(gui.Scalar(cfg.width), gui.Scalar(cfg.height)),
		gui.WithTheme(theme),
	)
	if err != nil {
		return nil, err
	}

	font, err := text.Default()
	if err != nil {
		debug.Log("demo: built-in font unavailable: %v", err)
	}
	return &demo{cfg: cfg, ui: u, app: newApp(u), font: font}, nil
}

// run feeds the script frame by frame, rasterises the frames that need
// drawing and writes a summary to w.
func (d *demo) run(ctx context.Context, script *Script, w io.Writer) error {
	var (
		rows  []frameRow
		snaps []snapshot
	)
	for i, sf := range script.Frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, in := range sf.Inputs {
			raws, err := in.Inputs()
			if err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
			for _, raw := range raws {
				d.ui.HandleInput(raw)
			}
		}
		if err := d.ui.Update(d.app.build); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}

		f, drawn := d.ui.DrawIfChanged()
		if drawn {
			snaps = append(snaps, snapshot{index: i, frame: f})
		}
		under := d.ui.WidgetUnderMouse()
		kind, _ := d.ui.Kind(under)
		rows = append(rows, frameRow{
			index:   i,
			widgets: d.ui.WidgetCount(),
			under:   under,
			kind:    kind,
			capture: d.ui.CapturingMouse(),
			drawn:   drawn,
		})
		debug.Event("demo frame", "index", i, "widgets", d.ui.WidgetCount(), "drawn", drawn)
	}

	if d.cfg.out != "" {
		if err := d.rasterise(ctx, snaps); err != nil {
			return err
		}
	}
	d.summarise(w, rows)
	return nil
}

// rasterise renders snaps to PNG files in parallel, one renderer per
// frame.
func (d *demo) rasterise(ctx context.Context, snaps []snapshot) error {
	if err := os.MkdirAll(d.cfg.out, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	workers := d.cfg.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, s := range snaps {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return d.rasteriseOne(s)
		})
	}
	return g.Wait()
}

func (d *demo) rasteriseOne(s snapshot) error {
	win := s.frame.Window
	r, err := raster.New(int(win.W()), int(win.H()), raster.WithFont(d.font))
	if err != nil {
		return fmt.Errorf("frame %d: %w", s.index, err)
	}
	defer r.Close()

	if err := r.Render(s.frame); err != nil {
		return fmt.Errorf("frame %d: %w", s.index, err)
	}
	path := filepath.Join(d.cfg.out, fmt.Sprintf("frame-%03d.png", s.index))
	if err := r.SavePNG(path); err != nil {
		return fmt.Errorf("frame %d: %w", s.index, err)
	}
	if d.cfg.verbose {
		fmt.Fprintf(os.Stderr, "wrote %s\n", path)
	}
	return nil
}

// summarise writes one line per frame, aligned into columns when w is a
// terminal.
func (d *demo) summarise(w io.Writer, rows []frameRow) {
	if isTerminal(w) {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "FRAME\tWIDGETS\tUNDER MOUSE\tKIND\tCAPTURING\tDRAWN")
		for _, r := range rows {
			fmt.Fprintf(tw, "%d\t%d\t%v\t%s\t%v\t%t\n", r.index, r.widgets, r.under, r.kind, r.capture, r.drawn)
		}
		tw.Flush()
	} else {
		for _, r := range rows {
			fmt.Fprintf(w, "frame=%d widgets=%d under=%v kind=%s capturing=%v drawn=%t\n",
				r.index, r.widgets, r.under, r.kind, r.capture, r.drawn)
		}
	}
	fmt.Fprintln(w, d.app.status())
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
