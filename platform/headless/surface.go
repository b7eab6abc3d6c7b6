package headless

import (
	"github.com/gogpu/webhost/platform"
)

// Surface is an in-memory rendering surface.
type Surface struct {
	id string
	p  *Platform

	logicalW, logicalH     int
	presentedW, presentedH int
	containerW, containerH float64

	supported map[string]bool
	gfx       map[string]*Graphics

	pointers map[*registration]func(platform.PointerEvent)
	wheels   map[*registration]func(platform.WheelEvent)
	touches  map[*registration]func(platform.TouchEvent)
}

// ID implements platform.Surface.
func (s *Surface) ID() string { return s.id }

// SetLogicalSize implements platform.Surface.
func (s *Surface) SetLogicalSize(w, h int) { s.logicalW, s.logicalH = w, h }

// LogicalSize implements platform.Surface.
func (s *Surface) LogicalSize() (int, int) { return s.logicalW, s.logicalH }

// SetPresentedSize implements platform.Surface.
func (s *Surface) SetPresentedSize(w, h int) { s.presentedW, s.presentedH = w, h }

// PresentedSize implements platform.Surface.
func (s *Surface) PresentedSize() (int, int) { return s.presentedW, s.presentedH }

// SetContainerSize changes the box the presented size must fit into.
// Follow it with Platform.TriggerResize to mimic a window resize.
func (s *Surface) SetContainerSize(w, h float64) { s.containerW, s.containerH = w, h }

// ContainerSize implements platform.Surface.
func (s *Surface) ContainerSize() (float64, float64) { return s.containerW, s.containerH }

// SetContextSupport scripts whether GetContext succeeds for a kind.
func (s *Surface) SetContextSupport(kind string, ok bool) { s.supported[kind] = ok }

// GetContext implements platform.Surface. Acquiring the same kind twice
// returns the same context, as canvas getContext does.
func (s *Surface) GetContext(kind string) (platform.Graphics, bool) {
	if !s.supported[kind] {
		return nil, false
	}
	if g, ok := s.gfx[kind]; ok {
		return g, true
	}
	g := newGraphics(kind)
	s.gfx[kind] = g
	return g, true
}

// OnPointer implements platform.Surface.
func (s *Surface) OnPointer(fn func(platform.PointerEvent)) platform.ListenerHandle {
	r := &registration{active: true}
	r.detach = func() { delete(s.pointers, r) }
	s.pointers[r] = fn
	s.p.regs = append(s.p.regs, r)
	return handle{r: r}
}

// OnWheel implements platform.Surface.
func (s *Surface) OnWheel(fn func(platform.WheelEvent)) platform.ListenerHandle {
	r := &registration{active: true}
	r.detach = func() { delete(s.wheels, r) }
	s.wheels[r] = fn
	s.p.regs = append(s.p.regs, r)
	return handle{r: r}
}

// OnTouch implements platform.Surface.
func (s *Surface) OnTouch(fn func(platform.TouchEvent)) platform.ListenerHandle {
	r := &registration{active: true}
	r.detach = func() { delete(s.touches, r) }
	s.touches[r] = fn
	s.p.regs = append(s.p.regs, r)
	return handle{r: r}
}

// InjectPointer delivers a pointer event to the surface's listeners.
func (s *Surface) InjectPointer(ev platform.PointerEvent) {
	for _, r := range s.p.regs {
		if !r.active {
			continue
		}
		if fn, ok := s.pointers[r]; ok {
			fn(ev)
		}
	}
}

// InjectWheel delivers a wheel event to the surface's listeners.
func (s *Surface) InjectWheel(ev platform.WheelEvent) {
	for _, r := range s.p.regs {
		if !r.active {
			continue
		}
		if fn, ok := s.wheels[r]; ok {
			fn(ev)
		}
	}
}

// InjectTouches delivers the full current contact set to the surface's
// listeners.
func (s *Surface) InjectTouches(ev platform.TouchEvent) {
	for _, r := range s.p.regs {
		if !r.active {
			continue
		}
		if fn, ok := s.touches[r]; ok {
			fn(ev)
		}
	}
}
