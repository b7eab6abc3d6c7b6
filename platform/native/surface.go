//go:build !js

package native

import (
	"sync"

	"github.com/gogpu/webhost/platform"
)

// Surface is an offscreen drawing area bound to the platform's GPU device.
// It supports the WebGPU-class context kind only; the device is always
// high-capability when the platform constructed at all.
type Surface struct {
	id string
	p  *Platform

	mu                     sync.Mutex
	logicalW, logicalH     int
	presentedW, presentedH int
	containerW, containerH float64

	gfx *Graphics

	nextReg  uint64
	order    []uint64
	pointers map[uint64]func(platform.PointerEvent)
	wheels   map[uint64]func(platform.WheelEvent)
	touches  map[uint64]func(platform.TouchEvent)
}

func newSurface(id string, p *Platform, containerW, containerH float64) *Surface {
	return &Surface{
		id:         id,
		p:          p,
		containerW: containerW,
		containerH: containerH,
		pointers:   make(map[uint64]func(platform.PointerEvent)),
		wheels:     make(map[uint64]func(platform.WheelEvent)),
		touches:    make(map[uint64]func(platform.TouchEvent)),
	}
}

// ID implements platform.Surface.
func (s *Surface) ID() string { return s.id }

// SetLogicalSize implements platform.Surface.
func (s *Surface) SetLogicalSize(w, h int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logicalW, s.logicalH = w, h
}

// LogicalSize implements platform.Surface.
func (s *Surface) LogicalSize() (w, h int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logicalW, s.logicalH
}

// SetPresentedSize implements platform.Surface.
func (s *Surface) SetPresentedSize(w, h int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.presentedW, s.presentedH = w, h
}

// PresentedSize implements platform.Surface.
func (s *Surface) PresentedSize() (w, h int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.presentedW, s.presentedH
}

// SetContainerSize changes the container box; the embedding program calls
// TriggerResize on the platform afterwards, the way a window manager would.
func (s *Surface) SetContainerSize(w, h float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.containerW, s.containerH = w, h
}

// ContainerSize implements platform.Surface.
func (s *Surface) ContainerSize() (w, h float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.containerW, s.containerH
}

// GetContext implements platform.Surface.
func (s *Surface) GetContext(kind string) (platform.Graphics, bool) {
	if kind != platform.ContextWebGPU {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.p.dev == nil {
		return nil, false
	}
	if s.gfx == nil {
		s.gfx = newGraphics(s.p.dev)
	}
	return s.gfx, true
}

// OnPointer implements platform.Surface.
func (s *Surface) OnPointer(fn func(platform.PointerEvent)) platform.ListenerHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextReg++
	id := s.nextReg
	s.pointers[id] = fn
	s.order = append(s.order, id)
	return &removal{remove: func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.pointers, id)
	}}
}

// OnWheel implements platform.Surface.
func (s *Surface) OnWheel(fn func(platform.WheelEvent)) platform.ListenerHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextReg++
	id := s.nextReg
	s.wheels[id] = fn
	s.order = append(s.order, id)
	return &removal{remove: func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.wheels, id)
	}}
}

// OnTouch implements platform.Surface.
func (s *Surface) OnTouch(fn func(platform.TouchEvent)) platform.ListenerHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextReg++
	id := s.nextReg
	s.touches[id] = fn
	s.order = append(s.order, id)
	return &removal{remove: func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.touches, id)
	}}
}

// InjectPointer delivers a pointer event to all pointer listeners.
func (s *Surface) InjectPointer(ev platform.PointerEvent) {
	s.mu.Lock()
	var fns []func(platform.PointerEvent)
	for _, id := range s.order {
		if fn, ok := s.pointers[id]; ok {
			fns = append(fns, fn)
		}
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(ev)
	}
}

// InjectWheel delivers a wheel event to all wheel listeners.
func (s *Surface) InjectWheel(ev platform.WheelEvent) {
	s.mu.Lock()
	var fns []func(platform.WheelEvent)
	for _, id := range s.order {
		if fn, ok := s.wheels[id]; ok {
			fns = append(fns, fn)
		}
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(ev)
	}
}

// InjectTouches delivers a touch event to all touch listeners.
func (s *Surface) InjectTouches(ev platform.TouchEvent) {
	s.mu.Lock()
	var fns []func(platform.TouchEvent)
	for _, id := range s.order {
		if fn, ok := s.touches[id]; ok {
			fns = append(fns, fn)
		}
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(ev)
	}
}
