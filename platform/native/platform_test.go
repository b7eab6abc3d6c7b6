//go:build !js

package native

import (
	"errors"
	"testing"

	"github.com/gogpu/webhost/platform"
)

func TestSurfaceRegistration(t *testing.T) {
	p := newPlatform(nil)
	p.AddSurface("screen", 800, 600)

	s, ok := p.SurfaceByID("screen")
	if !ok {
		t.Fatal("SurfaceByID(screen) = false, want true")
	}
	if s.ID() != "screen" {
		t.Errorf("ID() = %q, want %q", s.ID(), "screen")
	}
	if _, ok := p.SurfaceByID("missing"); ok {
		t.Error("SurfaceByID(missing) = true, want false")
	}
}

func TestGetContextWithoutDevice(t *testing.T) {
	p := newPlatform(nil)
	s := p.AddSurface("screen", 800, 600)

	if _, ok := s.GetContext(platform.ContextWebGPU); ok {
		t.Error("GetContext(webgpu) = true without device, want false")
	}
	if _, ok := s.GetContext(platform.ContextWebGL); ok {
		t.Error("GetContext(webgl) = true, want false (native is WebGPU-only)")
	}
}

func TestAudioUnavailable(t *testing.T) {
	p := newPlatform(nil)
	if _, err := p.NewAudioContext(); !errors.Is(err, platform.ErrAudioUnavailable) {
		t.Errorf("NewAudioContext() error = %v, want ErrAudioUnavailable", err)
	}
}

func TestProbeWithoutDevice(t *testing.T) {
	caps := newPlatform(nil).Probe()
	if caps.HighPerfGraphics {
		t.Error("HighPerfGraphics = true without device, want false")
	}
	if !caps.WasmExecution || !caps.BackgroundWorkers || !caps.PersistentStorage {
		t.Errorf("Probe() = %+v, want wasm/workers/storage present", caps)
	}
	if caps.Device != platform.DeviceDesktop {
		t.Errorf("Device = %q, want %q", caps.Device, platform.DeviceDesktop)
	}
}

func TestKeyListenerOrderAndSuppression(t *testing.T) {
	p := newPlatform(nil)

	var seen []string
	p.OnKey(func(ev platform.KeyEvent) bool {
		seen = append(seen, "first:"+ev.Code)
		return false
	})
	p.OnKey(func(ev platform.KeyEvent) bool {
		seen = append(seen, "second:"+ev.Code)
		return ev.Code == "Space"
	})

	if p.InjectKey(platform.KeyEvent{Kind: platform.KeyDown, Code: "KeyW"}) {
		t.Error("InjectKey(KeyW) = true, want false (no listener suppressed)")
	}
	if !p.InjectKey(platform.KeyEvent{Kind: platform.KeyDown, Code: "Space"}) {
		t.Error("InjectKey(Space) = false, want true")
	}
	want := []string{"first:KeyW", "second:KeyW", "first:Space", "second:Space"}
	if len(seen) != len(want) {
		t.Fatalf("delivered %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("delivery[%d] = %q, want %q", i, seen[i], want[i])
		}
	}
}

func TestListenerRemoveIdempotent(t *testing.T) {
	p := newPlatform(nil)

	fired := 0
	h := p.OnResize(func() { fired++ })
	p.TriggerResize()
	h.Remove()
	h.Remove()
	p.TriggerResize()

	if fired != 1 {
		t.Errorf("resize fired %d times, want 1", fired)
	}
}

func TestSurfaceSizesAndResize(t *testing.T) {
	p := newPlatform(nil)
	s := p.AddSurface("screen", 800, 600)

	s.SetLogicalSize(1280, 720)
	if w, h := s.LogicalSize(); w != 1280 || h != 720 {
		t.Errorf("LogicalSize() = %dx%d, want 1280x720", w, h)
	}
	s.SetPresentedSize(800, 450)
	if w, h := s.PresentedSize(); w != 800 || h != 450 {
		t.Errorf("PresentedSize() = %dx%d, want 800x450", w, h)
	}

	s.SetContainerSize(1024, 768)
	if w, h := s.ContainerSize(); w != 1024 || h != 768 {
		t.Errorf("ContainerSize() = %gx%g, want 1024x768", w, h)
	}
}

func TestNewWithDeviceProviderRejectsBadProvider(t *testing.T) {
	if _, err := NewWithDeviceProvider(struct{}{}); err == nil {
		t.Error("NewWithDeviceProvider(struct{}{}) error = nil, want error")
	}
}

type nilHALProvider struct{}

func (nilHALProvider) HalDevice() any { return nil }
func (nilHALProvider) HalQueue() any  { return nil }

func TestNewWithDeviceProviderRejectsNilDevice(t *testing.T) {
	if _, err := NewWithDeviceProvider(nilHALProvider{}); err == nil {
		t.Error("NewWithDeviceProvider(nil device) error = nil, want error")
	}
}
