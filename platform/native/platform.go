//go:build !js

package native

import (
	"fmt"
	"sync"

	"github.com/gogpu/webhost/platform"
	"github.com/gogpu/wgpu/hal"
)

// Platform drives offscreen surfaces against a real GPU device. The
// embedding program registers surfaces with AddSurface and feeds input
// through the Inject and Trigger methods.
type Platform struct {
	mu  sync.Mutex
	dev *gpuDevice

	surfaces map[string]*Surface

	nextReg  uint64
	order    []uint64
	keys     map[uint64]func(platform.KeyEvent) bool
	resizes  map[uint64]func()
	gestures map[uint64]func()
}

// New creates the native platform with a standalone GPU device. It fails
// when no usable adapter is found, in which case registry selection falls
// through to headless.
func New() (*Platform, error) {
	dev, err := acquireDevice()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", platform.ErrPlatformNotAvailable, err)
	}
	return newPlatform(dev), nil
}

// NewWithDeviceProvider creates the platform around a shared GPU device
// from an external provider. The provider must implement HalDevice() any
// and HalQueue() any returning hal.Device and hal.Queue.
func NewWithDeviceProvider(provider any) (*Platform, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, fmt.Errorf("native: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("native: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("native: provider HalQueue is not hal.Queue")
	}
	return newPlatform(borrowDevice(device, queue)), nil
}

func newPlatform(dev *gpuDevice) *Platform {
	return &Platform{
		dev:      dev,
		surfaces: make(map[string]*Surface),
		keys:     make(map[uint64]func(platform.KeyEvent) bool),
		resizes:  make(map[uint64]func()),
		gestures: make(map[uint64]func()),
	}
}

// Close releases the GPU device. Borrowed devices are left untouched.
func (p *Platform) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.dev != nil {
		p.dev.close()
		p.dev = nil
	}
}

// Name implements platform.Platform.
func (p *Platform) Name() string { return platform.PlatformNative }

// AddSurface creates an offscreen surface with the given identifier and
// container size and makes it visible to SurfaceByID.
func (p *Platform) AddSurface(id string, containerW, containerH float64) *Surface {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := newSurface(id, p, containerW, containerH)
	p.surfaces[id] = s
	return s
}

// SurfaceByID implements platform.Platform.
func (p *Platform) SurfaceByID(id string) (platform.Surface, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	s, ok := p.surfaces[id]
	if !ok {
		return nil, false
	}
	return s, true
}

// NewAudioContext implements platform.Platform. The offscreen platform has
// no audio output.
func (p *Platform) NewAudioContext() (platform.AudioContext, error) {
	return nil, platform.ErrAudioUnavailable
}

// Probe implements platform.Platform.
func (p *Platform) Probe() platform.Capabilities {
	p.mu.Lock()
	defer p.mu.Unlock()
	caps := platform.Capabilities{
		PersistentStorage: true,
		BackgroundWorkers: true,
		WasmExecution:     true,
		Device:            platform.DeviceDesktop,
	}
	if p.dev != nil {
		caps.HighPerfGraphics = true
		caps.GPUName = p.dev.adapterName
	}
	return caps
}

// register adds fn under a fresh id in m and returns its removal handle.
func (p *Platform) register(m map[uint64]func(), fn func()) platform.ListenerHandle {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nextReg++
	id := p.nextReg
	m[id] = fn
	p.order = append(p.order, id)
	return &removal{remove: func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(m, id)
	}}
}

type removal struct {
	once   sync.Once
	remove func()
}

func (r *removal) Remove() { r.once.Do(r.remove) }

// OnKey implements platform.Platform.
func (p *Platform) OnKey(fn func(platform.KeyEvent) bool) platform.ListenerHandle {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nextReg++
	id := p.nextReg
	p.keys[id] = fn
	p.order = append(p.order, id)
	return &removal{remove: func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.keys, id)
	}}
}

// OnResize implements platform.Platform.
func (p *Platform) OnResize(fn func()) platform.ListenerHandle {
	return p.register(p.resizes, fn)
}

// OnUserGesture implements platform.Platform.
func (p *Platform) OnUserGesture(fn func()) platform.ListenerHandle {
	return p.register(p.gestures, fn)
}

// InjectKey delivers a key event to all key listeners in registration
// order and reports whether any listener asked for default suppression.
func (p *Platform) InjectKey(ev platform.KeyEvent) bool {
	suppressed := false
	for _, fn := range p.orderedKeys() {
		if fn(ev) {
			suppressed = true
		}
	}
	return suppressed
}

func (p *Platform) orderedKeys() []func(platform.KeyEvent) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	var fns []func(platform.KeyEvent) bool
	for _, id := range p.order {
		if fn, ok := p.keys[id]; ok {
			fns = append(fns, fn)
		}
	}
	return fns
}

// TriggerResize delivers a resize notification to all resize listeners.
func (p *Platform) TriggerResize() {
	for _, fn := range p.orderedOf(p.resizes) {
		fn()
	}
}

// TriggerGesture simulates user activation.
func (p *Platform) TriggerGesture() {
	for _, fn := range p.orderedOf(p.gestures) {
		fn()
	}
}

func (p *Platform) orderedOf(m map[uint64]func()) []func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	var fns []func()
	for _, id := range p.order {
		if fn, ok := m[id]; ok {
			fns = append(fns, fn)
		}
	}
	return fns
}
