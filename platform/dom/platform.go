//go:build js && wasm

package dom

import (
	"fmt"
	"syscall/js"

	"github.com/gogpu/webhost/platform"
)

// Platform is the browser DOM environment.
type Platform struct {
	window    js.Value
	document  js.Value
	navigator js.Value

	surfaces map[string]*Surface
}

// New returns the DOM platform. It fails when no document is present, which
// happens when the wasm binary runs under a shell (wasm_exec in Node) rather
// than a page.
func New() (*Platform, error) {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return nil, fmt.Errorf("%w: no document in global scope", platform.ErrPlatformNotAvailable)
	}
	return &Platform{
		window:    js.Global().Get("window"),
		document:  doc,
		navigator: js.Global().Get("navigator"),
		surfaces:  make(map[string]*Surface),
	}, nil
}

// Name implements platform.Platform.
func (p *Platform) Name() string { return platform.PlatformDOM }

// SurfaceByID looks up a <canvas> element by its id attribute. Non-canvas
// elements are rejected: the host draws into a backing buffer, which only a
// canvas provides.
func (p *Platform) SurfaceByID(id string) (platform.Surface, bool) {
	if s, ok := p.surfaces[id]; ok {
		return s, true
	}
	el := p.document.Call("getElementById", id)
	if !el.Truthy() {
		return nil, false
	}
	if tag := el.Get("tagName").String(); tag != "CANVAS" {
		return nil, false
	}
	s := newSurface(id, el, p.window)
	p.surfaces[id] = s
	return s, true
}

// OnKey attaches keydown and keyup listeners at the document so keys are
// observed regardless of focus. When fn reports the event as suppressed the
// default browser action is prevented on both edges, otherwise key-up would
// still trigger it.
func (p *Platform) OnKey(fn func(platform.KeyEvent) bool) platform.ListenerHandle {
	deliver := func(kind platform.KeyEventKind) func(ev js.Value) {
		return func(ev js.Value) {
			suppress := fn(platform.KeyEvent{
				Kind:   kind,
				Code:   ev.Get("code").String(),
				Repeat: ev.Get("repeat").Bool(),
			})
			if suppress {
				ev.Call("preventDefault")
			}
		}
	}
	return listenerGroup{
		listen(p.document, "keydown", deliver(platform.KeyDown)),
		listen(p.document, "keyup", deliver(platform.KeyUp)),
	}
}

// OnResize fires fn on window resize and on device-pixel-ratio changes
// caused by zooming or moving the window across displays.
func (p *Platform) OnResize(fn func()) platform.ListenerHandle {
	return listenerGroup{
		listen(p.window, "resize", func(js.Value) { fn() }),
	}
}

// OnUserGesture fires fn on each user activation (pointer press or key
// press) until the handle is removed.
func (p *Platform) OnUserGesture(fn func()) platform.ListenerHandle {
	h := func(js.Value) { fn() }
	return listenerGroup{
		listen(p.window, "pointerdown", h),
		listen(p.window, "keydown", h),
	}
}

// NewAudioContext constructs a Web Audio context, preferring the standard
// constructor and falling back to the webkit-prefixed one.
func (p *Platform) NewAudioContext() (platform.AudioContext, error) {
	ctor := js.Global().Get("AudioContext")
	if !ctor.Truthy() {
		ctor = js.Global().Get("webkitAudioContext")
	}
	if !ctor.Truthy() {
		return nil, platform.ErrAudioUnavailable
	}
	return &audioContext{value: ctor.New()}, nil
}
