// Package main drives the go-gui widgets from a scripted input session
// and writes each drawn frame as a PNG.
//
// Usage:
//
//	gui-demo [options]
//
// Examples:
//
//	gui-demo -out frames               Run the built-in script
//	gui-demo -script click.yaml -v     Run a recorded script
//	gui-demo -theme dark.yaml -out .   Use a custom theme
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/grindlemire/go-gui/internal/debug"
)

const usage = `gui-demo - scripted go-gui widget demo

Usage:
  gui-demo [options]

Options:
  -script PATH   YAML input script (default: built-in script)
  -theme PATH    YAML theme file
  -out DIR       Write drawn frames as PNGs into DIR
  -width N       Window width (default 640)
  -height N      Window height (default 480)
  -workers N     Frames rasterised at once (default: GOMAXPROCS)
  -log PATH      Write debug logs to PATH
  -v             Verbose output

Script format:
  frames:
    - inputs:
        - {type: motion, x: 10, y: 20}
        - {type: click, button: left}
        - {type: scroll, y: 40}
        - {type: key, key: enter}
        - {type: text, text: "hello"}
        - {type: resize, w: 800, h: 600}
`

// config holds the parsed command line.
type config struct {
	script  string
	theme   string
	out     string
	logPath string
	width   int
	height  int
	workers int
	verbose bool
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("gui-demo", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(fs.Output(), usage) }
	fs.StringVar(&cfg.script, "script", "", "YAML input script")
	fs.StringVar(&cfg.theme, "theme", "", "YAML theme file")
	fs.StringVar(&cfg.out, "out", "", "output directory for PNG frames")
	fs.StringVar(&cfg.logPath, "log", "", "debug log path")
	fs.IntVar(&cfg.width, "width", 640, "window width")
	fs.IntVar(&cfg.height, "height", 480, "window height")
	fs.IntVar(&cfg.workers, "workers", 0, "frames rasterised at once")
	fs.BoolVar(&cfg.verbose, "v", false, "verbose output")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if cfg.width <= 0 || cfg.height <= 0 {
		return config{}, fmt.Errorf("window size must be positive, got %dx%d", cfg.width, cfg.height)
	}
	return cfg, nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err == flag.ErrHelp {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	if cfg.logPath != "" {
		if err := debug.Init(cfg.logPath); err != nil {
			return err
		}
		defer debug.Close()
	}

	script, err := LoadScript(cfg.script)
	if err != nil {
		return err
	}
	d, err := newDemo(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return d.run(ctx, script, os.Stdout)
}
