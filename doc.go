// Package webhost bridges an externally-supplied game engine to the
// platform it runs on: a GPU rendering surface, pointer/keyboard/touch
// input, and an audio output subsystem.
//
// # Overview
//
// webhost owns the browser-side (or, in development, desktop-side) handles
// and state buffers a game engine polls each frame. It establishes the
// rendering surface and graphics context, maintains an input snapshot
// mutated directly by event handlers, bootstraps audio around autoplay
// restrictions, compiles and links shader programs on demand, and fetches
// raw asset bytes. It deliberately implements no game logic, rendering
// algorithms, asset decoding, or networking beyond byte retrieval.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/webhost"
//	    _ "github.com/gogpu/webhost/platform/dom" // browser platform (js/wasm)
//	)
//
//	host, err := webhost.New(webhost.WithLogicalSize(1280, 720))
//	if err != nil {
//	    return err
//	}
//	if err := host.Initialize("screen"); err != nil {
//	    return err
//	}
//	defer host.Teardown()
//
//	// Once per simulation tick:
//	snap := host.Snapshot()
//	if snap.Keys["KeyW"] { /* ... */ }
//
// # Architecture
//
// The environment is abstracted behind the platform package; webhost ships
// three implementations selected through a registry:
//   - platform/dom: the real browser via syscall/js (js/wasm builds)
//   - platform/native: desktop development platform backed by gogpu/wgpu
//   - platform/headless: in-memory fake for tests and fallback
//
// A Host is caller-owned. There is no package-level singleton: create as
// many independent hosts as needed (one per canvas, or per test).
//
// # Concurrency
//
// The host follows the browser's event-dispatch model: everything runs on
// one goroutine and handlers run to completion, so the snapshot needs no
// locking. FetchAsset is the only blocking operation and takes a
// context.Context for cancellation.
package webhost
