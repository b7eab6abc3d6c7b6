// Package platform defines the abstraction between the host interop layer
// and the environment it runs in: rendering surfaces, graphics contexts,
// input event sources, and audio output.
//
// Implementations are registered via Register() and selected via Get() or
// Default(). Three implementations ship with webhost:
//
//   - "dom": the real browser platform via syscall/js (js/wasm builds only)
//   - "native": desktop development platform backed by gogpu/wgpu
//   - "headless": in-memory fake for tests and last-resort fallback
//
// The package itself is platform-independent and carries no build tags, so
// the core host logic and its tests compile everywhere.
package platform
