// Package headless provides an in-memory platform implementation with no
// real display, input devices, or audio output.
//
// It serves two purposes: it is the deterministic environment the webhost
// test suite runs against (surfaces, capabilities, and audio behavior are
// all scriptable, and every listener registration is recorded), and it is
// the last-resort fallback when neither the dom nor the native platform is
// available.
//
// Shader compilation is real: WGSL source is run through the gogpu/naga
// front-end, so invalid source produces the same diagnostics path as a GPU
// platform would.
//
// The package registers itself under the name "headless" on import.
package headless
