package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/SvenDH/go-card-table/ui"
)

// StartRendering spawns the render loop. It runs until the app stops or ctx
// is cancelled.
func (a *App) StartRendering(ctx context.Context) error {
	if a.group != nil {
		return ErrRendering
	}
	if a.Stopped() {
		return ErrStopped
	}
	rctx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(rctx)
	a.group = g
	a.renderCtx = gctx
	a.cancelRender = cancel
	g.Go(func() error {
		return a.renderLoop(gctx)
	})
	return nil
}

func (a *App) renderLoop(ctx context.Context) error {
	lim := rate.NewLimiter(rate.Limit(a.renderRate), 1)
	var frame *Frame
	for {
		if err := lim.Wait(ctx); err != nil {
			return nil
		}
		if f, ok := a.frames.Take(); ok {
			frame = f
		}
		if frame == nil {
			continue
		}
		if err := a.renderFrame(frame); err != nil {
			return err
		}
	}
}

// renderFrame clears to the background, draws the game objects and the GUI on
// top, then presents the buffer.
func (a *App) renderFrame(f *Frame) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("drawing frame %d: %v", f.Seq, r)
		}
	}()
	buf := a.swap.Acquire()
	c := ui.NewCanvas(buf)
	c.Fill(f.Background)
	if f.Objects != nil {
		f.Objects.Draw(c)
	}
	for _, d := range f.GUI {
		d.Draw(c)
	}
	a.swap.Present(buf)
	a.rendered.Add(1)
	return nil
}
