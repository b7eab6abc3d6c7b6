package webhost

import (
	"math/rand"
	"testing"

	"github.com/gogpu/webhost/platform"
)

func key(kind platform.KeyEventKind, code string) platform.KeyEvent {
	return platform.KeyEvent{Kind: kind, Code: code}
}

func TestKeyLastEventWins(t *testing.T) {
	h, p, _ := newTestHost(t)
	if err := h.Initialize("screen"); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	p.InjectKey(key(platform.KeyDown, "KeyW"))
	if !h.Snapshot().Keys["KeyW"] {
		t.Error("Keys[KeyW] = false after key-down, want true")
	}
	p.InjectKey(key(platform.KeyUp, "KeyW"))
	if h.Snapshot().Keys["KeyW"] {
		t.Error("Keys[KeyW] = true after key-up, want false")
	}

	// Repeated downs (auto-repeat) keep the key pressed.
	p.InjectKey(key(platform.KeyDown, "Space"))
	p.InjectKey(key(platform.KeyDown, "Space"))
	if !h.Snapshot().Keys["Space"] {
		t.Error("Keys[Space] = false after repeated key-down, want true")
	}
}

func TestKeyRandomSequenceLastEventWins(t *testing.T) {
	h, p, _ := newTestHost(t)
	if err := h.Initialize("screen"); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	rng := rand.New(rand.NewSource(42))
	codes := []string{"KeyW", "KeyA", "KeyS", "KeyD", "Space"}
	last := make(map[string]bool)

	for i := 0; i < 1000; i++ {
		code := codes[rng.Intn(len(codes))]
		down := rng.Intn(2) == 0
		kind := platform.KeyUp
		if down {
			kind = platform.KeyDown
		}
		p.InjectKey(key(kind, code))
		last[code] = down
	}

	for code, want := range last {
		if got := h.Snapshot().Keys[code]; got != want {
			t.Errorf("Keys[%q] = %v, want %v (last event)", code, got, want)
		}
	}
}

func TestKeySuppressionAllowList(t *testing.T) {
	h, p, _ := newTestHost(t)
	if err := h.Initialize("screen"); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	// Default allow-list members are suppressed on both edges.
	if !p.InjectKey(key(platform.KeyDown, "ArrowUp")) {
		t.Error("ArrowUp key-down not suppressed, want suppressed")
	}
	if !p.InjectKey(key(platform.KeyUp, "ArrowUp")) {
		t.Error("ArrowUp key-up not suppressed, want suppressed")
	}

	// Keys outside the list are recorded but not suppressed.
	if p.InjectKey(key(platform.KeyDown, "KeyZ")) {
		t.Error("KeyZ suppressed, want unsuppressed")
	}
	if !h.Snapshot().Keys["KeyZ"] {
		t.Error("Keys[KeyZ] = false, want true (still recorded)")
	}
}

func TestKeySuppressionInjected(t *testing.T) {
	h, p, _ := newTestHost(t, WithSuppressedKeys("KeyZ"))
	if err := h.Initialize("screen"); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	if !p.InjectKey(key(platform.KeyDown, "KeyZ")) {
		t.Error("KeyZ not suppressed with injected list, want suppressed")
	}
	if p.InjectKey(key(platform.KeyDown, "KeyW")) {
		t.Error("KeyW suppressed, want unsuppressed (not in injected list)")
	}
}

func TestPointerButtonMask(t *testing.T) {
	h, _, s := newTestHost(t)
	if err := h.Initialize("screen"); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	snap := h.Snapshot()

	s.InjectPointer(platform.PointerEvent{Kind: platform.PointerDown, X: 10, Y: 20, Button: 0})
	if snap.Pointer.Buttons != 0b01 {
		t.Errorf("Buttons = %#b after button-0 down, want 0b01", snap.Pointer.Buttons)
	}

	// Interleaved down on a distinct button accumulates.
	s.InjectPointer(platform.PointerEvent{Kind: platform.PointerDown, X: 11, Y: 21, Button: 1})
	if snap.Pointer.Buttons != 0b11 {
		t.Errorf("Buttons = %#b with buttons 0+1 held, want 0b11", snap.Pointer.Buttons)
	}

	s.InjectPointer(platform.PointerEvent{Kind: platform.PointerUp, X: 12, Y: 22, Button: 0})
	if snap.Pointer.Buttons != 0b10 {
		t.Errorf("Buttons = %#b after button-0 up, want 0b10", snap.Pointer.Buttons)
	}

	s.InjectPointer(platform.PointerEvent{Kind: platform.PointerUp, X: 13, Y: 23, Button: 1})
	if snap.Pointer.Buttons != 0 {
		t.Errorf("Buttons = %#b after all buttons up, want 0", snap.Pointer.Buttons)
	}
}

func TestPointerPositionLastEventWins(t *testing.T) {
	h, _, s := newTestHost(t)
	if err := h.Initialize("screen"); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	s.InjectPointer(platform.PointerEvent{Kind: platform.PointerMove, X: 100, Y: 50})
	s.InjectPointer(platform.PointerEvent{Kind: platform.PointerMove, X: 101, Y: 51})

	snap := h.Snapshot()
	if snap.Pointer.X != 101 || snap.Pointer.Y != 51 {
		t.Errorf("Pointer = (%g, %g), want (101, 51): no coalescing, last write wins",
			snap.Pointer.X, snap.Pointer.Y)
	}
}

func TestTouchSetReplacedWholesale(t *testing.T) {
	h, _, s := newTestHost(t)
	if err := h.Initialize("screen"); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	snap := h.Snapshot()

	s.InjectTouches(platform.TouchEvent{Touches: []platform.Touch{
		{ID: 1, X: 10, Y: 10},
		{ID: 2, X: 20, Y: 20},
	}})
	if len(snap.Touches) != 2 {
		t.Fatalf("len(Touches) = %d, want 2", len(snap.Touches))
	}

	// The next event replaces the set; nothing is merged.
	s.InjectTouches(platform.TouchEvent{Touches: []platform.Touch{
		{ID: 2, X: 25, Y: 25},
	}})
	if len(snap.Touches) != 1 {
		t.Fatalf("len(Touches) = %d, want 1", len(snap.Touches))
	}
	if snap.Touches[0].ID != 2 || snap.Touches[0].X != 25 {
		t.Errorf("Touches[0] = %+v, want ID 2 at (25, 25)", snap.Touches[0])
	}

	// Lift-off: empty set.
	s.InjectTouches(platform.TouchEvent{})
	if len(snap.Touches) != 0 {
		t.Errorf("len(Touches) = %d after lift-off, want 0", len(snap.Touches))
	}
}

func TestWheelForwarded(t *testing.T) {
	var got []platform.WheelEvent
	h, _, s := newTestHost(t, WithWheelHandler(func(ev platform.WheelEvent) {
		got = append(got, ev)
	}))
	if err := h.Initialize("screen"); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	s.InjectWheel(platform.WheelEvent{DeltaY: -120})
	if len(got) != 1 || got[0].DeltaY != -120 {
		t.Errorf("wheel handler saw %v, want one event with DeltaY=-120", got)
	}
}

func TestInputIgnoredAfterTeardown(t *testing.T) {
	h, p, s := newTestHost(t)
	if err := h.Initialize("screen"); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	snap := h.Snapshot()
	h.Teardown()

	p.InjectKey(key(platform.KeyDown, "KeyW"))
	s.InjectPointer(platform.PointerEvent{Kind: platform.PointerDown, Button: 0})

	if snap.Keys["KeyW"] {
		t.Error("Keys[KeyW] mutated after Teardown, want untouched")
	}
	if snap.Pointer.Buttons != 0 {
		t.Error("Pointer.Buttons mutated after Teardown, want untouched")
	}
}
