//go:build js && wasm

package dom

import (
	"syscall/js"

	"github.com/gogpu/webhost/platform"
)

// audioContext wraps a Web Audio AudioContext.
type audioContext struct {
	value js.Value
}

// State implements platform.AudioContext.
func (a *audioContext) State() platform.AudioState {
	switch a.value.Get("state").String() {
	case "running":
		return platform.AudioRunning
	case "closed":
		return platform.AudioClosed
	default:
		return platform.AudioSuspended
	}
}

// Resume implements platform.AudioContext. resume() returns a promise; the
// state attribute flips to "running" synchronously when the call is made
// from a user-gesture handler, which is the only place the host calls it.
func (a *audioContext) Resume() error {
	a.value.Call("resume")
	return nil
}

// Close implements platform.AudioContext.
func (a *audioContext) Close() error {
	if a.value.Get("state").String() == "closed" {
		return nil
	}
	a.value.Call("close")
	return nil
}
