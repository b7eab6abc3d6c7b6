package headless

import (
	"github.com/gogpu/webhost/platform"
)

// registration tracks one listener for the lifetime of the platform.
// Removal is idempotent: only the first Remove detaches the listener, but
// every call is counted so tests can assert teardown discipline.
type registration struct {
	active   bool
	removals int
	detach   func()
}

type handle struct {
	r *registration
}

func (h handle) Remove() {
	if h.r.active {
		h.r.active = false
		h.r.detach()
	}
	h.r.removals++
}

// Platform is a scriptable in-memory platform. It is not safe for
// concurrent use; like the environments it stands in for, everything runs
// on one goroutine.
type Platform struct {
	surfaces map[string]*Surface
	caps     platform.Capabilities

	audioErr   error
	audioState platform.AudioState
	audioCtxs  []*AudioContext

	regs     []*registration
	keys     map[*registration]func(platform.KeyEvent) bool
	resizes  map[*registration]func()
	gestures map[*registration]func()
}

// New creates a headless platform with no surfaces and a minimal
// capability set (wasm execution and audio present, everything else
// absent).
func New() *Platform {
	return &Platform{
		surfaces: make(map[string]*Surface),
		caps: platform.Capabilities{
			Audio:         true,
			WasmExecution: true,
			Device:        platform.DeviceDesktop,
		},
		audioState: platform.AudioSuspended,
		keys:       make(map[*registration]func(platform.KeyEvent) bool),
		resizes:    make(map[*registration]func()),
		gestures:   make(map[*registration]func()),
	}
}

// Name returns "headless".
func (p *Platform) Name() string { return platform.PlatformHeadless }

// AddSurface creates a surface with the given identifier and container
// size and makes it visible to SurfaceByID. By default the surface
// supports the baseline context kind only.
func (p *Platform) AddSurface(id string, containerW, containerH float64) *Surface {
	s := &Surface{
		id:         id,
		p:          p,
		containerW: containerW,
		containerH: containerH,
		supported: map[string]bool{
			platform.ContextWebGL: true,
		},
		gfx:      make(map[string]*Graphics),
		pointers: make(map[*registration]func(platform.PointerEvent)),
		wheels:   make(map[*registration]func(platform.WheelEvent)),
		touches:  make(map[*registration]func(platform.TouchEvent)),
	}
	p.surfaces[id] = s
	return s
}

// SurfaceByID implements platform.Platform.
func (p *Platform) SurfaceByID(id string) (platform.Surface, bool) {
	s, ok := p.surfaces[id]
	if !ok {
		return nil, false
	}
	return s, true
}

// SetCapabilities replaces the capability snapshot returned by Probe.
func (p *Platform) SetCapabilities(c platform.Capabilities) { p.caps = c }

// Probe implements platform.Platform.
func (p *Platform) Probe() platform.Capabilities { return p.caps }

// SetAudioError makes NewAudioContext fail with err. Passing nil restores
// working audio.
func (p *Platform) SetAudioError(err error) { p.audioErr = err }

// SetAudioState sets the initial lifecycle phase of contexts created by
// subsequent NewAudioContext calls.
func (p *Platform) SetAudioState(s platform.AudioState) { p.audioState = s }

// NewAudioContext implements platform.Platform.
func (p *Platform) NewAudioContext() (platform.AudioContext, error) {
	if p.audioErr != nil {
		return nil, p.audioErr
	}
	ctx := &AudioContext{state: p.audioState}
	p.audioCtxs = append(p.audioCtxs, ctx)
	return ctx, nil
}

// AudioContexts returns every context handed out so far, including closed
// ones.
func (p *Platform) AudioContexts() []*AudioContext { return p.audioCtxs }

// OnKey implements platform.Platform.
func (p *Platform) OnKey(fn func(platform.KeyEvent) bool) platform.ListenerHandle {
	r := &registration{active: true}
	r.detach = func() { delete(p.keys, r) }
	p.keys[r] = fn
	p.regs = append(p.regs, r)
	return handle{r: r}
}

// OnResize implements platform.Platform.
func (p *Platform) OnResize(fn func()) platform.ListenerHandle {
	r := &registration{active: true}
	r.detach = func() { delete(p.resizes, r) }
	p.resizes[r] = fn
	p.regs = append(p.regs, r)
	return handle{r: r}
}

// OnUserGesture implements platform.Platform.
func (p *Platform) OnUserGesture(fn func()) platform.ListenerHandle {
	r := &registration{active: true}
	r.detach = func() { delete(p.gestures, r) }
	p.gestures[r] = fn
	p.regs = append(p.regs, r)
	return handle{r: r}
}

// InjectKey delivers a key event to all key listeners, in registration
// order. It reports whether any listener asked for default suppression.
func (p *Platform) InjectKey(ev platform.KeyEvent) bool {
	suppressed := false
	for _, fn := range p.orderedKeys() {
		if fn(ev) {
			suppressed = true
		}
	}
	return suppressed
}

// orderedKeys returns active key listeners in registration order. Map
// iteration order would make tests flaky when more than one listener is
// attached.
func (p *Platform) orderedKeys() []func(platform.KeyEvent) bool {
	var fns []func(platform.KeyEvent) bool
	for _, r := range p.regs {
		if !r.active {
			continue
		}
		if fn, ok := p.keys[r]; ok {
			fns = append(fns, fn)
		}
	}
	return fns
}

// TriggerResize delivers a resize notification to all resize listeners.
func (p *Platform) TriggerResize() {
	for _, r := range p.regs {
		if !r.active {
			continue
		}
		if fn, ok := p.resizes[r]; ok {
			fn()
		}
	}
}

// TriggerGesture simulates user activation (a click or key press).
func (p *Platform) TriggerGesture() {
	for _, r := range p.regs {
		if !r.active {
			continue
		}
		if fn, ok := p.gestures[r]; ok {
			fn()
		}
	}
}

// TotalListeners returns how many listeners were ever registered on the
// platform and its surfaces.
func (p *Platform) TotalListeners() int { return len(p.regs) }

// ActiveListeners returns how many registered listeners have not been
// removed yet.
func (p *Platform) ActiveListeners() int {
	n := 0
	for _, r := range p.regs {
		if r.active {
			n++
		}
	}
	return n
}
