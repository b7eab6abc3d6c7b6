//go:build !js

// Package native implements the platform interfaces on a desktop GPU for
// development and integration testing outside a browser.
//
// Surfaces are offscreen: the embedding program registers them with
// AddSurface and drives input through the Trigger/Inject methods, while
// shader compilation and module creation run against a real wgpu HAL device.
// This keeps the full shader path honest on a developer machine without a
// windowing system.
//
// Building with the nogpu tag removes the device path; the platform factory
// then fails and registry selection falls through to headless.
package native
