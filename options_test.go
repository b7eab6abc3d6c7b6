package webhost

import (
	"image/color"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.logicalW != 1280 || o.logicalH != 720 {
		t.Errorf("default logical size = %dx%d, want 1280x720", o.logicalW, o.logicalH)
	}
	if o.clearColor != (color.RGBA{A: 0xff}) {
		t.Errorf("default clear color = %v, want opaque black", o.clearColor)
	}
	if len(o.suppressedKeys) == 0 {
		t.Error("default suppressed keys empty, want the game-relevant set")
	}
}

func TestDefaultSuppressedKeys(t *testing.T) {
	keys := DefaultSuppressedKeys()
	want := map[string]bool{
		"ArrowUp": true, "ArrowDown": true, "ArrowLeft": true, "ArrowRight": true,
		"KeyW": true, "KeyA": true, "KeyS": true, "KeyD": true,
		"Space": true, "Enter": true, "Escape": true,
		"Digit1": true, "Digit2": true, "Digit3": true, "Digit4": true, "Digit5": true,
		"KeyQ": true, "KeyE": true, "KeyR": true, "KeyT": true, "KeyY": true,
	}
	if len(keys) != len(want) {
		t.Fatalf("len(DefaultSuppressedKeys()) = %d, want %d", len(keys), len(want))
	}
	for _, k := range keys {
		if !want[k] {
			t.Errorf("DefaultSuppressedKeys() contains unexpected %q", k)
		}
	}
}

func TestWithSuppressedKeysEmpty(t *testing.T) {
	o := defaultOptions()
	WithSuppressedKeys()(&o)
	if len(o.suppressedKeys) != 0 {
		t.Errorf("WithSuppressedKeys() left %d keys, want 0", len(o.suppressedKeys))
	}
}

func TestOptionsCompose(t *testing.T) {
	o := defaultOptions()
	for _, opt := range []Option{
		WithLogicalSize(640, 480),
		WithClearColor(color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}),
	} {
		opt(&o)
	}
	if o.logicalW != 640 || o.logicalH != 480 {
		t.Errorf("logical size = %dx%d, want 640x480", o.logicalW, o.logicalH)
	}
	if o.clearColor.B != 0x30 {
		t.Errorf("clearColor.B = %#x, want 0x30", o.clearColor.B)
	}
}
