//go:build js && wasm

package dom

import (
	"syscall/js"

	"github.com/gogpu/webhost/platform"
)

// Probe implements platform.Platform. Every check is wrapped so a missing
// or throwing browser API reads as an absent feature, never a failure.
func (p *Platform) Probe() platform.Capabilities {
	ua := ""
	if p.navigator.Truthy() {
		ua = p.navigator.Get("userAgent").String()
	}
	return platform.Capabilities{
		HighPerfGraphics:  p.navigator.Truthy() && p.navigator.Get("gpu").Truthy(),
		Audio:             js.Global().Get("AudioContext").Truthy() || js.Global().Get("webkitAudioContext").Truthy(),
		PersistentStorage: hasLocalStorage(),
		BackgroundWorkers: js.Global().Get("Worker").Truthy(),
		WasmExecution:     js.Global().Get("WebAssembly").Truthy(),
		TouchInput:        p.hasTouch(),
		Device:            platform.ClassifyUserAgent(ua),
		UserAgent:         ua,
		GPUName:           gpuAdapterName(),
	}
}

// hasLocalStorage probes window.localStorage. The property getter throws in
// some privacy modes, which syscall/js surfaces as a panic.
func hasLocalStorage() (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return js.Global().Get("localStorage").Truthy()
}

func (p *Platform) hasTouch() bool {
	if !p.navigator.Truthy() {
		return false
	}
	points := p.navigator.Get("maxTouchPoints")
	return points.Truthy() && points.Int() > 0
}

// gpuAdapterName reads the adapter name the page recorded alongside the
// WebGPU device, when it did. Adapter info is only reachable asynchronously
// from Go, so the page-provided name is the best a synchronous probe can do.
func gpuAdapterName() string {
	boot := js.Global().Get("webhostGPU")
	if boot.Truthy() && boot.Get("adapterName").Truthy() {
		return boot.Get("adapterName").String()
	}
	return ""
}
