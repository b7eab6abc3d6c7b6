//go:build js && wasm

// Package jsexport publishes the Host API on the JavaScript global object
// so a page loader can drive the host without a wasm-side engine.
//
// Publish installs a single "webhost" global with one property per
// operation. A page script uses it like:
//
//	const status = webhost.initialize("game-canvas");
//	const caps = webhost.capabilities();
//	webhost.fetchAsset("assets/level1.bin").then(bytes => ...);
//
// Errors cross the boundary as { error: string } objects; binary payloads
// as Uint8Array.
package jsexport
