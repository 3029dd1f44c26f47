package cli

import (
	"context"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/lineclip"
	"github.com/gogpu/lineclip/config"
	"github.com/gogpu/lineclip/draw"
	"github.com/gogpu/lineclip/draw/raster"
)

// runWindow shows the scene in a gogpu window until it is closed.
//
// Window callbacks only push into a Queue. OnDraw steps a lineclip.Loop that
// drains the queue once per frame, then waits on the loop's pacer, so the
// frame rate follows window.fps and all scene state is touched from the draw
// callback alone.
func runWindow(cfg *config.Config) error {
	scene, err := cfg.Scene()
	if err != nil {
		return err
	}
	log := lineclip.Logger()

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(cfg.Window.Title).
		WithSize(cfg.Window.Width, cfg.Window.Height).
		WithContinuousRender(true))

	queue := lineclip.NewQueue(lineclip.DefaultQueueCapacity)
	bindInput(app.EventSource(), queue)

	presenter := &canvasPresenter{}
	loop := lineclip.NewLoop(scene, queue, presenter, lineclip.WithFPS(cfg.Window.FPS))
	defer loop.Close()
	log.Debug("window loop", "fps", cfg.Window.FPS, "interval", loop.Interval())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := false
	app.OnDraw(func(dc *gogpu.Context) {
		w, h := dc.Width(), dc.Height()
		if w <= 0 || h <= 0 || quit {
			return
		}

		if presenter.canvas == nil {
			provider := app.GPUContextProvider()
			if provider == nil {
				return
			}
			canvas, err := ggcanvas.New(provider, w, h)
			if err != nil {
				log.Error("create canvas", "err", err)
				quit = true
				app.Quit()
				return
			}
			presenter.canvas = canvas
			log.Info("canvas created", "backend", dc.Backend(), "width", w, "height", h)
		}
		if cw, ch := presenter.canvas.Size(); cw != w || ch != h {
			if err := presenter.canvas.Resize(w, h); err != nil {
				log.Warn("resize canvas", "err", err)
			}
		}

		scene.SetCanvasSize(w, h)
		presenter.dc = dc
		done, err := loop.Step()
		if err != nil {
			log.Warn("frame", "frame", loop.Frames(), "err", err)
		}
		if done && scene.Closed() {
			quit = true
			log.Info("closing", "frames", loop.Frames(), "dropped_events", queue.Dropped())
			app.Quit()
			return
		}
		_ = loop.Wait(ctx)
	})

	app.OnClose(func() {
		cancel()
		gg.CloseAccelerator()
	})

	if err := app.Run(); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// canvasPresenter plays each frame onto a ggcanvas and blits it to the
// window surface of the current draw callback.
type canvasPresenter struct {
	canvas *ggcanvas.Canvas
	dc     *gogpu.Context
}

func (p *canvasPresenter) Present(list *draw.List) error {
	var playErr error
	if err := p.canvas.Draw(func(cc *gg.Context) {
		playErr = list.Playback(raster.ForContext(cc))
	}); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	if playErr != nil {
		return fmt.Errorf("playback: %w", playErr)
	}
	if err := p.canvas.RenderTo(p.dc.AsTextureDrawer()); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// bindInput forwards window input into q as lineclip events.
func bindInput(src gpucontext.EventSource, q *lineclip.Queue) {
	src.OnMousePress(func(b gpucontext.MouseButton, x, y float64) {
		q.Push(lineclip.PointerPressed{Button: mapButton(b), Pos: lineclip.Pt(x, y)})
	})
	src.OnMouseRelease(func(b gpucontext.MouseButton, x, y float64) {
		q.Push(lineclip.PointerReleased{Button: mapButton(b), Pos: lineclip.Pt(x, y)})
	})
	src.OnMouseMove(func(x, y float64) {
		q.Push(lineclip.PointerMoved{Pos: lineclip.Pt(x, y)})
	})
	src.OnKeyPress(func(k gpucontext.Key, _ gpucontext.Modifiers) {
		q.Push(lineclip.KeyPressed{Key: mapKey(k)})
	})
}

func mapButton(b gpucontext.MouseButton) lineclip.Button {
	switch b {
	case gpucontext.MouseButtonLeft:
		return lineclip.ButtonPrimary
	case gpucontext.MouseButtonRight:
		return lineclip.ButtonSecondary
	default:
		return lineclip.ButtonMiddle
	}
}

func mapKey(k gpucontext.Key) lineclip.Key {
	switch k {
	case gpucontext.KeyEqual:
		return lineclip.KeyZoomIn
	case gpucontext.KeyMinus:
		return lineclip.KeyZoomOut
	case gpucontext.KeyEscape:
		return lineclip.KeyExit
	default:
		return lineclip.KeyOther
	}
}
