package lineclip

import (
	"context"
	"fmt"
	"time"

	"github.com/gogpu/lineclip/draw"
	"github.com/gogpu/lineclip/internal/clock"
)

// Source supplies the input events of one frame. Drain must return every
// event received since the previous call, in arrival order.
type Source interface {
	Drain() []Event
}

// Presenter shows a finished frame.
type Presenter interface {
	Present(list *draw.List) error
}

// PresenterFunc adapts a function to the Presenter interface.
type PresenterFunc func(list *draw.List) error

// Present calls f(list).
func (f PresenterFunc) Present(list *draw.List) error { return f(list) }

// BackendPresenter plays every frame back to a draw backend.
type BackendPresenter struct {
	Backend draw.Backend
}

// Present implements Presenter.
func (p BackendPresenter) Present(list *draw.List) error {
	return list.Playback(p.Backend)
}

// ScriptSource replays a fixed sequence of per-frame event batches.
// After the last batch it yields no events.
type ScriptSource struct {
	frames [][]Event
	next   int
}

// NewScriptSource creates a source that returns frames[i] on the i-th Drain.
func NewScriptSource(frames [][]Event) *ScriptSource {
	return &ScriptSource{frames: frames}
}

// Drain implements Source.
func (s *ScriptSource) Drain() []Event {
	if s.next >= len(s.frames) {
		return nil
	}
	batch := s.frames[s.next]
	s.next++
	return batch
}

// Remaining returns the number of batches not yet drained.
func (s *ScriptSource) Remaining() int {
	return len(s.frames) - s.next
}

// LoopOption configures a Loop during creation.
type LoopOption func(*loopOptions)

type loopOptions struct {
	fps       int
	maxFrames uint64
	now       func() time.Time
}

func defaultLoopOptions() loopOptions {
	return loopOptions{
		fps: clock.DefaultFPS,
		now: time.Now,
	}
}

// WithFPS sets the target frame rate. fps <= 0 runs frames back to back.
func WithFPS(fps int) LoopOption {
	return func(o *loopOptions) {
		o.fps = fps
	}
}

// WithMaxFrames stops the loop after n frames. Zero means no limit.
func WithMaxFrames(n uint64) LoopOption {
	return func(o *loopOptions) {
		o.maxFrames = n
	}
}

// WithClock overrides the time source used for FPS diagnostics.
func WithClock(now func() time.Time) LoopOption {
	return func(o *loopOptions) {
		if now != nil {
			o.now = now
		}
	}
}

// Loop drives a Scene: each iteration drains the source, produces the frame
// and presents it, then waits for the next tick.
//
// Loop is single-threaded. Only the Source may be fed from other goroutines.
type Loop struct {
	scene     *Scene
	source    Source
	presenter Presenter
	opts      loopOptions
	list      *draw.List
	pacer     *clock.Pacer
	counter   *clock.Counter
	frames    uint64
	lastFPS   int
}

// NewLoop creates a loop over scene. Call Close to release the pacer when
// the loop is driven through Step and Wait instead of Run.
func NewLoop(scene *Scene, source Source, presenter Presenter, opts ...LoopOption) *Loop {
	o := defaultLoopOptions()
	for _, opt := range opts {
		opt(&o)
	}
	w, h := scene.CanvasSize()
	return &Loop{
		scene:     scene,
		source:    source,
		presenter: presenter,
		opts:      o,
		list:      draw.NewList(w, h),
		pacer:     clock.NewPacer(o.fps),
		counter:   clock.NewCounter(o.now()),
	}
}

// Frames returns the number of frames completed.
func (l *Loop) Frames() uint64 { return l.frames }

// FPS returns the most recent once-per-second frame count.
func (l *Loop) FPS() int { return l.lastFPS }

// Last returns the draw list of the most recent frame.
func (l *Loop) Last() *draw.List { return l.list }

// Step runs exactly one frame. It reports whether the loop should stop.
func (l *Loop) Step() (bool, error) {
	events := l.source.Drain()
	l.scene.FrameInto(l.list, events)

	if err := l.presenter.Present(l.list); err != nil {
		return true, fmt.Errorf("lineclip: present frame %d: %w", l.frames, err)
	}
	l.frames++

	if fps, ok := l.counter.Tick(l.opts.now()); ok {
		l.lastFPS = fps
		Logger().Info("frame rate", "fps", fps)
	}

	if l.scene.Closed() {
		return true, nil
	}
	if l.opts.maxFrames > 0 && l.frames >= l.opts.maxFrames {
		return true, nil
	}
	return false, nil
}

// Wait blocks until the next frame is due at the configured rate or ctx is
// done. Callers that own their own event loop call Step, then Wait.
func (l *Loop) Wait(ctx context.Context) error {
	return l.pacer.Wait(ctx)
}

// Interval returns the target time between frames, or 0 when unpaced.
func (l *Loop) Interval() time.Duration {
	return l.pacer.Interval()
}

// Close stops the pacer. The loop must not be used afterwards.
func (l *Loop) Close() {
	l.pacer.Stop()
}

// Run executes frames until the scene is closed, the frame limit is reached
// or ctx is cancelled. Cancellation takes effect after the in-flight frame
// and is not reported as an error. Run closes the loop on return.
func (l *Loop) Run(ctx context.Context) error {
	defer l.Close()

	Logger().Debug("loop started", "fps", l.opts.fps, "max_frames", l.opts.maxFrames)
	defer func() {
		Logger().Debug("loop stopped", "frames", l.frames)
	}()

	for {
		if ctx.Err() != nil {
			return nil
		}
		done, err := l.Step()
		if err != nil || done {
			return err
		}
		if err := l.Wait(ctx); err != nil {
			return nil
		}
	}
}
