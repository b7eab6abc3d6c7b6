package webhost

import (
	"github.com/gogpu/webhost/platform"
)

// Touch is a single active contact point, surface-local.
type Touch = platform.Touch

// PointerState is the latest known pointer position and button state.
// Buttons is a bitmask: bit n is set while button n is held.
type PointerState struct {
	X, Y    float64
	Buttons int
}

// Snapshot is the latest known state of the input devices. It is mutated
// in place by event handlers (last event wins, nothing is queued) and
// read by the engine once per simulation tick. Coordinates are
// surface-local: origin at the surface's top-left, corrected for display
// scaling.
//
// The snapshot is owned by the host's input capture; treat it as
// read-only everywhere else.
type Snapshot struct {
	// Keys maps a platform-reported key identifier to its pressed state.
	Keys map[string]bool

	// Pointer is the pointer record.
	Pointer PointerState

	// Touches is the full set of active contact points, replaced
	// wholesale on every touch event.
	Touches []Touch
}

func newSnapshot() *Snapshot {
	return &Snapshot{Keys: make(map[string]bool)}
}

// inputCapture wires platform listeners to the snapshot. Handlers mutate
// the snapshot directly; two rapid same-kind events between engine samples
// lose the first one, an accepted trade-off for simplicity.
type inputCapture struct {
	snap       *Snapshot
	suppressed map[string]struct{}
	wheel      func(platform.WheelEvent)

	handles []platform.ListenerHandle
}

func newInputCapture(suppressedKeys []string, wheel func(platform.WheelEvent)) *inputCapture {
	sup := make(map[string]struct{}, len(suppressedKeys))
	for _, k := range suppressedKeys {
		sup[k] = struct{}{}
	}
	return &inputCapture{
		snap:       newSnapshot(),
		suppressed: sup,
		wheel:      wheel,
	}
}

// bind registers the key listener at the platform's input root and the
// pointer/wheel/touch listeners on the surface.
func (c *inputCapture) bind(p platform.Platform, s platform.Surface) {
	c.handles = append(c.handles,
		p.OnKey(c.applyKey),
		s.OnPointer(c.applyPointer),
		s.OnWheel(c.applyWheel),
		s.OnTouch(c.applyTouches),
	)
}

// dispose releases the subscription handles. Safe to call repeatedly.
func (c *inputCapture) dispose() {
	for _, h := range c.handles {
		h.Remove()
	}
	c.handles = nil
}

// applyKey records the key transition and reports whether the platform
// should suppress the default action. Suppression is symmetric: a key on
// the allow-list is suppressed on both its press and its release edge.
func (c *inputCapture) applyKey(ev platform.KeyEvent) bool {
	c.snap.Keys[ev.Code] = ev.Kind == platform.KeyDown
	_, ok := c.suppressed[ev.Code]
	return ok
}

// applyPointer updates the pointer record. Down/up toggle the button's
// bit; every event refreshes the position.
func (c *inputCapture) applyPointer(ev platform.PointerEvent) {
	c.snap.Pointer.X = ev.X
	c.snap.Pointer.Y = ev.Y
	switch ev.Kind {
	case platform.PointerDown:
		c.snap.Pointer.Buttons |= 1 << ev.Button
	case platform.PointerUp:
		c.snap.Pointer.Buttons &^= 1 << ev.Button
	}
}

// applyWheel forwards deltas to the optional handler. The snapshot keeps
// no wheel state.
func (c *inputCapture) applyWheel(ev platform.WheelEvent) {
	if c.wheel != nil {
		c.wheel(ev)
	}
}

// applyTouches replaces the active touch set wholesale with the current
// contact points.
func (c *inputCapture) applyTouches(ev platform.TouchEvent) {
	c.snap.Touches = append(c.snap.Touches[:0], ev.Touches...)
}
