package webhost

import (
	"image/color"
	"net/http"

	"github.com/gogpu/webhost/platform"
)

// DefaultSuppressedKeys returns the default set of key identifiers whose
// browser default action is suppressed while the host is running: the
// game-relevant keys (movement, confirm/cancel, item slots, ability keys).
// Inject a different set with WithSuppressedKeys to fit another control
// scheme.
func DefaultSuppressedKeys() []string {
	return []string{
		"ArrowUp", "ArrowDown", "ArrowLeft", "ArrowRight",
		"KeyW", "KeyA", "KeyS", "KeyD",
		"Space", "Enter", "Escape",
		"Digit1", "Digit2", "Digit3", "Digit4", "Digit5",
		"KeyQ", "KeyE", "KeyR", "KeyT", "KeyY",
	}
}

// Option configures a Host during creation.
// Use functional options to customize Host behavior.
//
// Example:
//
//	// Defaults: 1280x720 logical resolution, platform auto-selected
//	host, err := webhost.New()
//
//	// Custom platform (dependency injection, e.g. for tests)
//	host, err := webhost.New(webhost.WithPlatform(headless.New()))
type Option func(*hostOptions)

// hostOptions holds optional configuration for Host creation.
type hostOptions struct {
	platform       platform.Platform
	logicalW       int
	logicalH       int
	clearColor     color.RGBA
	suppressedKeys []string
	client         *http.Client
	wheel          func(platform.WheelEvent)
}

// defaultOptions returns the default host options.
func defaultOptions() hostOptions {
	return hostOptions{
		platform:       nil, // resolved via the platform registry
		logicalW:       1280,
		logicalH:       720,
		clearColor:     color.RGBA{A: 0xff}, // opaque black
		suppressedKeys: DefaultSuppressedKeys(),
		client:         nil, // http.DefaultClient
	}
}

// WithPlatform sets the platform the host runs on.
// Without this option the host asks the platform registry for the best
// available implementation.
func WithPlatform(p platform.Platform) Option {
	return func(o *hostOptions) {
		o.platform = p
	}
}

// WithLogicalSize sets the fixed backing-buffer resolution. Resizing the
// window never changes it; only the presented size adapts.
func WithLogicalSize(w, h int) Option {
	return func(o *hostOptions) {
		o.logicalW = w
		o.logicalH = h
	}
}

// WithClearColor sets the color the surface is cleared to on Initialize.
func WithClearColor(c color.RGBA) Option {
	return func(o *hostOptions) {
		o.clearColor = c
	}
}

// WithSuppressedKeys replaces the default-action suppression list.
// Keys are platform-reported identifiers such as "KeyW" or "ArrowUp".
// Pass no keys to suppress nothing.
func WithSuppressedKeys(keys ...string) Option {
	return func(o *hostOptions) {
		o.suppressedKeys = keys
	}
}

// WithHTTPClient sets the client used by FetchAsset.
func WithHTTPClient(c *http.Client) Option {
	return func(o *hostOptions) {
		o.client = c
	}
}

// WithWheelHandler forwards wheel events to fn. The input snapshot keeps
// no wheel state; engines that want scroll deltas read them here.
func WithWheelHandler(fn func(platform.WheelEvent)) Option {
	return func(o *hostOptions) {
		o.wheel = fn
	}
}
