package platform

import (
	"errors"
	"testing"
)

// stubPlatform is a minimal Platform for registry tests.
type stubPlatform struct {
	name string
}

func (p *stubPlatform) Name() string                             { return p.name }
func (p *stubPlatform) SurfaceByID(string) (Surface, bool)       { return nil, false }
func (p *stubPlatform) OnKey(func(KeyEvent) bool) ListenerHandle { return nopHandle{} }
func (p *stubPlatform) OnResize(func()) ListenerHandle           { return nopHandle{} }
func (p *stubPlatform) OnUserGesture(func()) ListenerHandle      { return nopHandle{} }
func (p *stubPlatform) NewAudioContext() (AudioContext, error)   { return nil, ErrAudioUnavailable }
func (p *stubPlatform) Probe() Capabilities                      { return Capabilities{} }

type nopHandle struct{}

func (nopHandle) Remove() {}

func TestRegisterAndGet(t *testing.T) {
	Register("stub", func() (Platform, error) { return &stubPlatform{name: "stub"}, nil })
	t.Cleanup(func() { Unregister("stub") })

	if !IsRegistered("stub") {
		t.Fatal("IsRegistered(stub) = false, want true")
	}

	p, err := Get("stub")
	if err != nil {
		t.Fatalf("Get(stub) error = %v", err)
	}
	if p.Name() != "stub" {
		t.Errorf("Name() = %q, want %q", p.Name(), "stub")
	}
}

func TestGetUnregistered(t *testing.T) {
	_, err := Get("no-such-platform")
	if !errors.Is(err, ErrPlatformNotAvailable) {
		t.Errorf("Get() error = %v, want ErrPlatformNotAvailable", err)
	}
}

func TestGetFactoryFailure(t *testing.T) {
	boom := errors.New("no adapter")
	Register("failing", func() (Platform, error) { return nil, boom })
	t.Cleanup(func() { Unregister("failing") })

	_, err := Get("failing")
	if !errors.Is(err, ErrPlatformNotAvailable) {
		t.Errorf("Get() error = %v, want ErrPlatformNotAvailable", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("Get() error = %v, want wrapped factory error", err)
	}
}

func TestDefaultSkipsFailingFactories(t *testing.T) {
	// "native" outranks "headless" in priority, but its factory fails.
	Register(PlatformNative, func() (Platform, error) { return nil, errors.New("no adapter") })
	Register(PlatformHeadless, func() (Platform, error) { return &stubPlatform{name: PlatformHeadless}, nil })
	t.Cleanup(func() {
		Unregister(PlatformNative)
		Unregister(PlatformHeadless)
	})

	p, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if p.Name() != PlatformHeadless {
		t.Errorf("Default().Name() = %q, want %q", p.Name(), PlatformHeadless)
	}
}

func TestAvailable(t *testing.T) {
	Register("stub-a", func() (Platform, error) { return &stubPlatform{name: "stub-a"}, nil })
	t.Cleanup(func() { Unregister("stub-a") })

	found := false
	for _, name := range Available() {
		if name == "stub-a" {
			found = true
		}
	}
	if !found {
		t.Errorf("Available() = %v, missing %q", Available(), "stub-a")
	}
}
