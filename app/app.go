// Package app runs the main loop: it polls the window, routes events to the
// render state and shuts everything down in order when the user quits.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gogpu/raymarch"
	"github.com/gogpu/raymarch/event"
	"github.com/gogpu/raymarch/render"
)

// Window is the event source the loop polls. *platform.Window implements
// it.
type Window interface {
	render.Platform

	// Poll returns the events received since the last call.
	Poll() []event.Event

	// CapturePointer locks the cursor while the camera is being orbited.
	CapturePointer(on bool)

	// Destroy closes the window.
	Destroy()
}

// Renderer consumes events. *render.State implements it.
type Renderer interface {
	Resume(p render.Platform) error
	HandleEvent(e event.Event) error
	Rotating() bool
	Close()
}

// App ties a window to a renderer.
type App struct {
	win      Window
	renderer Renderer
	log      *slog.Logger
}

// New returns an App. It takes ownership of win and r.
func New(win Window, r Renderer) *App {
	return &App{
		win:      win,
		renderer: r,
		log:      raymarch.ComponentLogger("app"),
	}
}

// Run initializes the renderer and processes events until the window is
// closed, the exit key is pressed, ctx is cancelled or the renderer fails.
// The renderer is closed before the window is destroyed. A user quit or a
// cancelled ctx returns nil.
func (a *App) Run(ctx context.Context) error {
	defer a.shutdown()

	if err := a.renderer.Resume(a.win); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	a.log.Info("running")

	for {
		if err := ctx.Err(); err != nil {
			a.log.Info("stopping", "reason", err)
			return nil
		}
		for _, e := range a.win.Poll() {
			if quit(e) {
				a.log.Info("quit requested")
				return nil
			}
			if err := a.renderer.HandleEvent(e); err != nil {
				return fmt.Errorf("app: %w", err)
			}
			if _, ok := e.(event.PointerButton); ok {
				a.win.CapturePointer(a.renderer.Rotating())
			}
		}
	}
}

func (a *App) shutdown() {
	a.win.CapturePointer(false)
	a.renderer.Close()
	a.win.Destroy()
}

func quit(e event.Event) bool {
	switch e := e.(type) {
	case event.CloseRequested:
		return true
	case event.KeyPressed:
		return event.IsExitKey(e.Key)
	}
	return false
}
