// Package engine coordinates capture, staleness tracking, healing and bar
// animation on one cooperative control goroutine.
package engine

import (
	"context"
	"image"
	"log/slog"

	"github.com/burnbar/overlay/internal/bar"
	"github.com/burnbar/overlay/internal/capture"
	"github.com/burnbar/overlay/internal/config"
	"github.com/burnbar/overlay/internal/display"
	"github.com/burnbar/overlay/internal/errors"
	"github.com/burnbar/overlay/internal/frame"
	"github.com/burnbar/overlay/internal/mask"
	"github.com/burnbar/overlay/internal/pointer"
	"github.com/burnbar/overlay/internal/sched"
	"github.com/burnbar/overlay/internal/stale"
	"github.com/burnbar/overlay/internal/syncx"
	"github.com/burnbar/overlay/internal/trace"
)

// Stats is a snapshot of engine counters, safe to read from any goroutine.
type Stats struct {
	Captures       int
	PromotedPixels int
	MaskedPixels   int
	Heals          int
	Redraws        int
	Reinits        int
}

// Engine owns all overlay state. Every handler and the redraw path run on
// the goroutine that calls Run; nothing here needs locking except the
// stats snapshot.
type Engine struct {
	cfg        *config.Config
	surface    display.Surface
	captureSrc capture.Source
	pointerSrc pointer.Source

	scheduler *sched.Scheduler

	// Dimension-keyed state; nil until the first known surface size.
	initialized bool
	width       int
	height      int
	store       *frame.Store
	tracker     *stale.Tracker
	mask        *mask.Mask
	overlay     *image.RGBA

	anim   *bar.Animator
	comp   *bar.Compositor
	barTok sched.Token

	pointerSeen bool
	pointerX    int
	pointerY    int

	ctx   context.Context
	stats *syncx.Guard[Stats]
}

// New validates cfg and wires an engine around the given collaborators.
func New(cfg *config.Config, surface display.Surface, capSrc capture.Source, ptrSrc pointer.Source) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		cfg:        cfg,
		surface:    surface,
		captureSrc: capSrc,
		pointerSrc: ptrSrc,
		scheduler:  sched.New(),
		comp:       bar.NewCompositor(cfg.BarColor, cfg.BarFraction),
		ctx:        context.Background(),
		stats:      syncx.NewGuard(Stats{}),
	}, nil
}

// Stats returns a snapshot of the engine counters.
func (e *Engine) Stats() Stats { return e.stats.Get() }

// Run drives the engine until ctx is done or the surface is destroyed,
// then releases all buffers. The initial redraw must succeed: a missing or
// degenerate surface is a fatal precondition, not a recoverable condition.
func (e *Engine) Run(ctx context.Context) error {
	e.ctx = ctx

	if err := e.redraw(); err != nil {
		return err
	}

	e.scheduler.Schedule(e.cfg.CapturePeriod, e.handleCapture)
	e.scheduler.Schedule(e.cfg.PointerPollPeriod, e.handlePointer)

	go func() {
		select {
		case <-e.surface.Done():
			slog.Info("surface destroyed, shutting down")
			e.scheduler.Stop()
		case <-ctx.Done():
		}
	}()

	e.scheduler.Run(ctx)
	e.release()
	return nil
}

// handleCapture runs one capture+diff cycle: snapshot the screen, age
// unchanged pixels, promote those that hit max age, and commit the mask if
// anything was promoted so the next redraw sees it.
func (e *Engine) handleCapture() {
	if !e.initialized {
		return
	}
	_, span := trace.StartSpan(e.ctx, "capture_pass")
	defer span.End()

	img, changed, err := e.captureSrc.Grab(e.width, e.height)
	if err != nil {
		slog.Error("screen capture failed", "error", err)
		return
	}
	e.store.Push(img)

	promoted := e.tracker.Advance(e.store.Current(), e.store.Previous(), e.mask, !changed)
	if promoted > 0 {
		e.mask.Commit()
		slog.Debug("mask grew", "promoted", promoted, "masked", e.mask.Count())
	}

	span.SetAttr("identical", !changed)
	span.SetAttr("promoted", promoted)
	e.stats.Write(func(s *Stats) {
		s.Captures++
		s.PromotedPixels += promoted
		s.MaskedPixels = e.mask.Count()
	})
}

// handlePointer polls the pointer and heals a disc of mask and age state
// around it when it moved. User activity there proves the content is not
// static long-term.
func (e *Engine) handlePointer() {
	if !e.initialized {
		return
	}
	x, y, err := e.pointerSrc.Position()
	if err != nil {
		slog.Debug("pointer poll failed", "error", err)
		return
	}
	if e.pointerSeen && x == e.pointerX && y == e.pointerY {
		return
	}
	e.pointerSeen = true
	e.pointerX = x
	e.pointerY = y

	e.mask.ClearDisc(x, y, e.cfg.PointerCleaningRadius, e.tracker.Reset)
	e.stats.Write(func(s *Stats) { s.Heals++ })
}

// handleBarTick advances the bar and redraws.
func (e *Engine) handleBarTick() {
	if !e.initialized {
		return
	}
	e.anim.Tick()
	if err := e.redraw(); err != nil {
		slog.Error("redraw failed", "error", err)
		e.scheduler.Stop()
	}
}

// redraw composites and presents one frame, reinitializing first if the
// surface size differs from the allocated geometry (including the very
// first call).
func (e *Engine) redraw() error {
	w, h := e.surface.Size()
	if w <= 0 || h <= 0 {
		return errors.Newf(errors.CodeSurfaceUnavailable, "degenerate surface size %dx%d", w, h)
	}
	if !e.initialized || w != e.width || h != e.height {
		e.reinit(w, h)
	}

	_, span := trace.StartSpan(e.ctx, "redraw")
	defer span.End()

	e.comp.Render(e.overlay, e.mask, e.anim.Offset())
	if err := e.surface.Present(e.overlay, e.mask); err != nil {
		return errors.Wrap(err, errors.CodeSurfaceUnavailable, "present failed")
	}
	e.stats.Write(func(s *Stats) { s.Redraws++ })
	return nil
}

// reinit synchronously rebuilds all dimension-keyed state at a new
// geometry. The bar offset is rescaled while the old width is still known;
// everything else starts empty, discarding accumulated staleness history.
// No handler can observe a half-resized state because reinit runs to
// completion on the control goroutine.
func (e *Engine) reinit(w, h int) {
	if e.anim == nil {
		e.anim = bar.NewAnimator(e.cfg.BarPixelIncrement, w)
	} else {
		e.scheduler.Cancel(e.barTok)
		e.anim.Rescale(w)
	}

	e.store = frame.NewStore(w, h)
	e.tracker = stale.NewTracker(w, h, e.cfg.MaxAge, e.cfg.MinChangeThreshold)
	e.mask = mask.New(w, h)
	e.overlay = image.NewRGBA(image.Rect(0, 0, w, h))
	e.width = w
	e.height = h

	tick := e.anim.TickPeriod(e.cfg.TraversalPeriod)
	e.barTok = e.scheduler.Schedule(tick, e.handleBarTick)

	e.initialized = true
	e.stats.Write(func(s *Stats) {
		s.Reinits++
		s.MaskedPixels = 0
	})
	slog.Info("initialized", "width", w, "height", h, "bar_tick", tick, "bar_offset", e.anim.Offset())
}

// release drops all dimension-keyed state at shutdown.
func (e *Engine) release() {
	if !e.initialized {
		return
	}
	e.scheduler.Cancel(e.barTok)
	e.initialized = false
	e.store = nil
	e.tracker = nil
	e.mask = nil
	e.overlay = nil
	slog.Info("released buffers")
}
