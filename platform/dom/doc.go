//go:build js && wasm

// Package dom implements the platform interfaces on top of the browser DOM
// via syscall/js.
//
// Surfaces are <canvas> elements looked up by element id. Input listeners
// attach to the document and to the canvas; they are delivered on the
// JavaScript event loop goroutine, the same goroutine all syscall/js
// callbacks run on, so no additional locking is needed on the Go side.
//
// WebGPU device acquisition is asynchronous in the browser, which does not
// fit a synchronous GetContext call. The page is expected to request the
// adapter and device before starting the wasm binary and publish them under
// the webhostGPU global:
//
//	window.webhostGPU = { device, queue, adapterName };
//
// When the global is absent, GetContext(platform.ContextWebGPU) reports the
// kind as unsupported and callers fall back to WebGL.
package dom
