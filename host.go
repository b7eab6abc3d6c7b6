package webhost

import (
	"fmt"
	"math"

	"github.com/gogpu/webhost/platform"
)

// Host owns the rendering surface, its graphics context, the input
// snapshot, and the audio context for one engine session. It is created
// by New, armed by Initialize, polled by the engine, and released by
// Teardown.
//
// Host is NOT safe for concurrent use. It assumes the single-threaded
// event-dispatch model of the platforms it targets; drive it from one
// goroutine.
type Host struct {
	opts hostOptions
	plat platform.Platform

	surface platform.Surface
	gfx     platform.Graphics
	input   *inputCapture
	audio   *audioBootstrap
	resize  platform.ListenerHandle

	initialized bool
}

// New creates a Host. Without WithPlatform, the best registered platform
// is selected (dom in the browser, native on a desktop with a GPU,
// headless otherwise).
//
// New acquires nothing: the surface, context, and listeners appear on
// Initialize, so constructing a Host is free and always side-effect-free.
func New(opts ...Option) (*Host, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logicalW <= 0 || o.logicalH <= 0 {
		return nil, fmt.Errorf("webhost: invalid logical size %dx%d", o.logicalW, o.logicalH)
	}

	p := o.platform
	if p == nil {
		var err error
		p, err = platform.Default()
		if err != nil {
			return nil, err
		}
	}
	return &Host{opts: o, plat: p}, nil
}

// Platform returns the platform the host runs on.
func (h *Host) Platform() platform.Platform { return h.plat }

// Initialized reports whether a surface and graphics context have been
// successfully acquired. Until then only capability queries are legal.
func (h *Host) Initialized() bool { return h.initialized }

// Initialize looks up the surface by identifier, acquires a graphics
// context (preferring the high-capability kind and falling back to the
// baseline), fixes the logical resolution, clears the surface, and wires
// the resize, input, and audio subsystems.
//
// Fails with ErrSurfaceNotFound or ErrContextUnsupported (wrapped with
// detail); on failure the host stays uninitialized and holds no
// resources. Initializing an initialized host fails with
// ErrAlreadyInitialized.
func (h *Host) Initialize(surfaceID string) error {
	if h.initialized {
		return ErrAlreadyInitialized
	}

	s, ok := h.plat.SurfaceByID(surfaceID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrSurfaceNotFound, surfaceID)
	}

	var gfx platform.Graphics
	for _, kind := range []string{platform.ContextWebGPU, platform.ContextWebGL} {
		if g, ok := s.GetContext(kind); ok {
			gfx = g
			break
		}
	}
	if gfx == nil {
		return fmt.Errorf("%w: surface %q", ErrContextUnsupported, surfaceID)
	}

	h.surface = s
	h.gfx = gfx

	s.SetLogicalSize(h.opts.logicalW, h.opts.logicalH)
	gfx.Clear(h.opts.clearColor)

	h.resize = h.plat.OnResize(h.HandleResize)

	h.input = newInputCapture(h.opts.suppressedKeys, h.opts.wheel)
	h.input.bind(h.plat, s)
	h.audio = initAudio(h.plat)

	h.initialized = true

	// Fit the presented size to the container right away; later fits come
	// through the resize listener.
	h.HandleResize()

	Logger().Info("webhost: initialized",
		"surface", surfaceID,
		"context", gfx.Kind(),
		"logical_w", h.opts.logicalW,
		"logical_h", h.opts.logicalH,
	)
	return nil
}

// HandleResize recomputes the surface's presented size to fit its
// container while preserving the logical aspect ratio. The logical
// (backing-buffer) resolution never changes. Idempotent; a no-op before
// initialization or when the container reports no size.
func (h *Host) HandleResize() {
	if !h.initialized {
		return
	}
	cw, ch := h.surface.ContainerSize()
	if cw <= 0 || ch <= 0 {
		return
	}

	aspect := float64(h.opts.logicalW) / float64(h.opts.logicalH)
	w := cw
	ht := cw / aspect
	if ht > ch {
		ht = ch
		w = ch * aspect
	}
	h.surface.SetPresentedSize(int(math.Round(w)), int(math.Round(ht)))
}

// Teardown removes every listener the host registered (resize, input,
// audio gesture hook), closes the audio context if open, and resets the
// host to uninitialized. Safe to call multiple times: subsequent calls
// are no-ops beyond listener removal, which is itself idempotent.
func (h *Host) Teardown() {
	if h.resize != nil {
		h.resize.Remove()
		h.resize = nil
	}
	if h.input != nil {
		h.input.dispose()
		h.input = nil
	}
	if h.audio != nil {
		h.audio.teardown()
		h.audio = nil
	}
	if h.initialized {
		Logger().Info("webhost: torn down", "surface", h.surface.ID())
	}
	h.initialized = false
	h.surface = nil
	h.gfx = nil
}

// Snapshot returns the live input snapshot the engine polls once per
// simulation tick. The returned value is mutated in place by event
// handlers; treat it as read-only. Nil before initialization and after
// Teardown.
func (h *Host) Snapshot() *Snapshot {
	if h.input == nil {
		return nil
	}
	return h.input.snap
}

// Graphics returns the acquired graphics context. The engine issues its
// draw calls against this handle directly; webhost does not abstract the
// drawing API. Nil before initialization.
func (h *Host) Graphics() platform.Graphics { return h.gfx }

// AudioAvailable reports whether an audio output context exists. False
// either before initialization or when construction failed (a degraded,
// non-fatal condition).
func (h *Host) AudioAvailable() bool {
	return h.audio != nil && h.audio.available()
}

// AudioState returns the audio context's lifecycle phase; AudioClosed
// when no context exists.
func (h *Host) AudioState() platform.AudioState {
	if h.audio == nil {
		return platform.AudioClosed
	}
	return h.audio.state()
}
