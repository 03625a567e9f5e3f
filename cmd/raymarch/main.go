// Command raymarch opens a window and renders ray-marched fractals with a
// live settings panel. Drag with the left button to orbit the camera and
// scroll to zoom. Escape quits.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"github.com/gogpu/raymarch"
	"github.com/gogpu/raymarch/app"
	"github.com/gogpu/raymarch/gui"
	"github.com/gogpu/raymarch/internal/platform"
	"github.com/gogpu/raymarch/render"
)

func init() {
	// GLFW calls must come from the main thread.
	runtime.LockOSThread()
}

func main() {
	defaults := raymarch.DefaultOptions()
	var (
		config  = flag.String("config", "", "TOML options file")
		verbose = flag.Bool("v", false, "debug logging")
		width   = flag.Uint("width", uint(defaults.Width), "window width")
		height  = flag.Uint("height", uint(defaults.Height), "window height")
		power   = defaults.PowerPreference
		present = defaults.PresentMode
	)
	flag.TextVar(&power, "power", defaults.PowerPreference, "adapter preference: high-performance or low-power")
	flag.TextVar(&present, "present", defaults.PresentMode, "present mode: fifo, mailbox or immediate")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	raymarch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	opts := defaults
	if *config != "" {
		var err error
		if opts, err = raymarch.LoadOptionsFile(*config); err != nil {
			fatal(err)
		}
	}

	// Flags given on the command line override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			raymarch.WithSize(uint32(*width), opts.Height)(&opts) //nolint:gosec // window sizes fit in uint32
		case "height":
			raymarch.WithSize(opts.Width, uint32(*height))(&opts) //nolint:gosec // window sizes fit in uint32
		case "power":
			opts.PowerPreference = power
		case "present":
			opts.PresentMode = present
		}
	})

	if err := run(opts); err != nil {
		fatal(err)
	}
}

func run(opts raymarch.Options) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	panel, err := gui.New()
	if err != nil {
		return err
	}
	win, err := platform.NewWindow(opts)
	if err != nil {
		return err
	}
	return app.New(win, render.NewState(opts, panel)).Run(ctx)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "raymarch:", err)
	os.Exit(1)
}
