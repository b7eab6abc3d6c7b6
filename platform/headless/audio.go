package headless

import (
	"github.com/gogpu/webhost/platform"
)

// AudioContext is a scriptable audio context.
type AudioContext struct {
	state   platform.AudioState
	resumes int
	closes  int
}

// State implements platform.AudioContext.
func (a *AudioContext) State() platform.AudioState { return a.state }

// Resume implements platform.AudioContext. Resuming a closed context is
// a no-op, matching Web Audio semantics where the promise rejects but no
// state changes; the host never resumes after close anyway.
func (a *AudioContext) Resume() error {
	a.resumes++
	if a.state == platform.AudioClosed {
		return nil
	}
	a.state = platform.AudioRunning
	return nil
}

// Close implements platform.AudioContext.
func (a *AudioContext) Close() error {
	a.closes++
	a.state = platform.AudioClosed
	return nil
}

// Resumes returns how many times Resume was called.
func (a *AudioContext) Resumes() int { return a.resumes }

// Closes returns how many times Close was called.
func (a *AudioContext) Closes() int { return a.closes }
