//go:build js && wasm

package dom

import (
	"fmt"
	"syscall/js"

	"github.com/gogpu/webhost/platform"
)

// Surface is a <canvas> element. The canvas width/height attributes hold the
// logical (backing-buffer) size; the CSS width/height hold the presented
// size, so the browser scales the fixed buffer to whatever is displayed.
type Surface struct {
	id     string
	canvas js.Value
	window js.Value

	presentedW, presentedH int

	contexts map[string]platform.Graphics
}

func newSurface(id string, canvas, window js.Value) *Surface {
	return &Surface{
		id:       id,
		canvas:   canvas,
		window:   window,
		contexts: make(map[string]platform.Graphics),
	}
}

// ID implements platform.Surface.
func (s *Surface) ID() string { return s.id }

// SetLogicalSize implements platform.Surface.
func (s *Surface) SetLogicalSize(w, h int) {
	s.canvas.Set("width", w)
	s.canvas.Set("height", h)
}

// LogicalSize implements platform.Surface.
func (s *Surface) LogicalSize() (w, h int) {
	return s.canvas.Get("width").Int(), s.canvas.Get("height").Int()
}

// SetPresentedSize sets the CSS size of the canvas. The backing buffer is
// untouched; the browser scales it into this box.
func (s *Surface) SetPresentedSize(w, h int) {
	s.presentedW, s.presentedH = w, h
	style := s.canvas.Get("style")
	style.Call("setProperty", "width", fmt.Sprintf("%dpx", w))
	style.Call("setProperty", "height", fmt.Sprintf("%dpx", h))
}

// PresentedSize implements platform.Surface.
func (s *Surface) PresentedSize() (w, h int) {
	return s.presentedW, s.presentedH
}

// ContainerSize returns the CSS size of the canvas's parent element, the box
// the presented size should fit into. Falls back to the window's inner size
// when the canvas is detached.
func (s *Surface) ContainerSize() (w, h float64) {
	parent := s.canvas.Get("parentElement")
	if !parent.Truthy() {
		return s.window.Get("innerWidth").Float(), s.window.Get("innerHeight").Float()
	}
	rect := parent.Call("getBoundingClientRect")
	return rect.Get("width").Float(), rect.Get("height").Float()
}

// GetContext implements platform.Surface. The WebGL kind tries "webgl2"
// first and falls back to "webgl"; Kind on the returned Graphics reports
// which one was acquired.
func (s *Surface) GetContext(kind string) (platform.Graphics, bool) {
	if g, ok := s.contexts[kind]; ok {
		return g, true
	}
	var g platform.Graphics
	switch kind {
	case platform.ContextWebGPU:
		g = s.acquireWebGPU()
	case platform.ContextWebGL:
		g = s.acquireWebGL()
	}
	if g == nil {
		return nil, false
	}
	s.contexts[kind] = g
	return g, true
}

func (s *Surface) acquireWebGPU() platform.Graphics {
	if !js.Global().Get("navigator").Get("gpu").Truthy() {
		return nil
	}
	boot := js.Global().Get("webhostGPU")
	if !boot.Truthy() || !boot.Get("device").Truthy() {
		return nil
	}
	ctx := s.canvas.Call("getContext", "webgpu")
	if !ctx.Truthy() {
		return nil
	}
	return newGPUGraphics(ctx, boot.Get("device"))
}

func (s *Surface) acquireWebGL() platform.Graphics {
	for _, name := range []string{"webgl2", "webgl"} {
		ctx := s.canvas.Call("getContext", name)
		if ctx.Truthy() {
			return newGLGraphics(name, ctx)
		}
	}
	return nil
}

// surfaceLocal converts client coordinates to backing-buffer coordinates:
// origin at the canvas top-left, scaled by the ratio of logical size to
// displayed size.
func (s *Surface) surfaceLocal(clientX, clientY float64) (x, y float64) {
	rect := s.canvas.Call("getBoundingClientRect")
	rw, rh := rect.Get("width").Float(), rect.Get("height").Float()
	if rw == 0 || rh == 0 {
		return 0, 0
	}
	lw, lh := s.LogicalSize()
	x = (clientX - rect.Get("left").Float()) * float64(lw) / rw
	y = (clientY - rect.Get("top").Float()) * float64(lh) / rh
	return x, y
}

// OnPointer implements platform.Surface.
func (s *Surface) OnPointer(fn func(platform.PointerEvent)) platform.ListenerHandle {
	deliver := func(kind platform.PointerEventKind) func(ev js.Value) {
		return func(ev js.Value) {
			ev.Call("preventDefault")
			x, y := s.surfaceLocal(ev.Get("clientX").Float(), ev.Get("clientY").Float())
			fn(platform.PointerEvent{
				Kind:   kind,
				X:      x,
				Y:      y,
				Button: ev.Get("button").Int(),
			})
		}
	}
	return listenerGroup{
		listen(s.canvas, "pointerdown", deliver(platform.PointerDown)),
		listen(s.canvas, "pointerup", deliver(platform.PointerUp)),
		listen(s.canvas, "pointermove", deliver(platform.PointerMove)),
	}
}

// OnWheel implements platform.Surface. The listener is registered
// non-passive so page scrolling can be prevented.
func (s *Surface) OnWheel(fn func(platform.WheelEvent)) platform.ListenerHandle {
	return listenerGroup{
		listenActive(s.canvas, "wheel", func(ev js.Value) {
			ev.Call("preventDefault")
			fn(platform.WheelEvent{
				DeltaX: ev.Get("deltaX").Float(),
				DeltaY: ev.Get("deltaY").Float(),
			})
		}),
	}
}

// OnTouch implements platform.Surface. Every touch event delivers the full
// current contact set read from ev.touches; scrolling and pinch zoom are
// prevented.
func (s *Surface) OnTouch(fn func(platform.TouchEvent)) platform.ListenerHandle {
	deliver := func(ev js.Value) {
		ev.Call("preventDefault")
		list := ev.Get("touches")
		n := list.Get("length").Int()
		touches := make([]platform.Touch, 0, n)
		for i := 0; i < n; i++ {
			t := list.Index(i)
			x, y := s.surfaceLocal(t.Get("clientX").Float(), t.Get("clientY").Float())
			touches = append(touches, platform.Touch{
				ID: t.Get("identifier").Int(),
				X:  x,
				Y:  y,
			})
		}
		fn(platform.TouchEvent{Touches: touches})
	}
	return listenerGroup{
		listenActive(s.canvas, "touchstart", deliver),
		listenActive(s.canvas, "touchmove", deliver),
		listenActive(s.canvas, "touchend", deliver),
		listenActive(s.canvas, "touchcancel", deliver),
	}
}
