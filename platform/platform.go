package platform

import (
	"errors"
	"fmt"
	"image/color"
)

// Common platform errors.
var (
	// ErrPlatformNotAvailable is returned when a requested platform is not available.
	ErrPlatformNotAvailable = errors.New("platform: not available")

	// ErrAudioUnavailable is returned when the platform has no audio output.
	ErrAudioUnavailable = errors.New("platform: audio output not available")
)

// Graphics context kinds, in decreasing capability order.
// A host asks the surface for ContextWebGPU first and falls back to
// ContextWebGL. Implementations map these onto whatever the environment
// actually offers (the dom platform maps ContextWebGL to "webgl2" with a
// "webgl" fallback).
const (
	ContextWebGPU = "webgpu"
	ContextWebGL  = "webgl"
)

// ListenerHandle represents a registered event listener.
// Remove unregisters the listener; calling Remove more than once is a no-op.
type ListenerHandle interface {
	Remove()
}

// KeyEventKind distinguishes key press from key release.
type KeyEventKind int

const (
	// KeyDown is delivered when a key transitions to pressed.
	KeyDown KeyEventKind = iota

	// KeyUp is delivered when a key transitions to released.
	KeyUp
)

// KeyEvent is a keyboard event with the platform-reported key identifier
// (e.g. "KeyW", "ArrowUp", "Digit3").
type KeyEvent struct {
	Kind   KeyEventKind
	Code   string
	Repeat bool
}

// PointerEventKind distinguishes pointer transitions from movement.
type PointerEventKind int

const (
	// PointerDown is delivered when a pointer button is pressed.
	PointerDown PointerEventKind = iota

	// PointerUp is delivered when a pointer button is released.
	PointerUp

	// PointerMove is delivered on pointer movement.
	PointerMove
)

// PointerEvent is a pointer event in surface-local coordinates: origin at
// the surface's top-left, corrected for current display scaling.
// Button is meaningful for PointerDown and PointerUp only.
type PointerEvent struct {
	Kind   PointerEventKind
	X, Y   float64
	Button int
}

// WheelEvent carries scroll deltas from a wheel event on the surface.
type WheelEvent struct {
	DeltaX, DeltaY float64
}

// Touch is a single active contact point in surface-local coordinates.
type Touch struct {
	ID   int
	X, Y float64
}

// TouchEvent carries the full current set of contact points. Consumers
// replace their touch state wholesale; there is no per-touch delta.
type TouchEvent struct {
	Touches []Touch
}

// AudioState is the lifecycle phase of an audio context.
type AudioState int

const (
	// AudioSuspended means the context exists but produces no output yet.
	// This is the near-universal initial state in browsers until a user
	// gesture occurs.
	AudioSuspended AudioState = iota

	// AudioRunning means the context is producing output.
	AudioRunning

	// AudioClosed means the context has been closed and cannot be resumed.
	AudioClosed
)

// String returns the state name as reported by the Web Audio API.
func (s AudioState) String() string {
	switch s {
	case AudioSuspended:
		return "suspended"
	case AudioRunning:
		return "running"
	case AudioClosed:
		return "closed"
	default:
		return fmt.Sprintf("AudioState(%d)", int(s))
	}
}

// AudioContext is an audio output context handle.
type AudioContext interface {
	// State reports the current lifecycle phase.
	State() AudioState

	// Resume transitions a suspended context to running.
	Resume() error

	// Close releases the context. Further calls are no-ops.
	Close() error
}

// ShaderStage identifies a programmable pipeline stage.
type ShaderStage int

const (
	// StageVertex is the vertex shader stage.
	StageVertex ShaderStage = iota

	// StageFragment is the fragment shader stage.
	StageFragment
)

// String returns the stage name.
func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return fmt.Sprintf("ShaderStage(%d)", int(s))
	}
}

// ShaderHandle identifies a compiled shader object. Zero is never a valid
// handle.
type ShaderHandle uint64

// ProgramHandle identifies a linked program object. Zero is never a valid
// handle.
type ProgramHandle uint64

// CompileError reports a failed shader compilation. Log carries the
// platform's diagnostic text verbatim.
type CompileError struct {
	Stage ShaderStage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("platform: %s shader compilation failed: %s", e.Stage, e.Log)
}

// LinkError reports a failed program link. Log carries the platform's
// diagnostic text verbatim. The shader objects passed to the failed link
// remain caller-owned and must still be deleted by the caller.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("platform: program link failed: %s", e.Log)
}

// Graphics is the handle through which shader and clear operations against
// a rendering surface are issued. Compile and link calls are independent
// and carry no state beyond context-resource allocation.
type Graphics interface {
	// Kind returns the context kind actually acquired (e.g. "webgl2").
	Kind() string

	// Clear fills the entire surface with the given color.
	Clear(c color.RGBA)

	// CompileShader compiles source text for the given stage.
	// On failure the returned error is a *CompileError.
	CompileShader(stage ShaderStage, source string) (ShaderHandle, error)

	// LinkProgram links a vertex and a fragment shader into a program.
	// On failure the returned error is a *LinkError; both shader handles
	// stay valid and caller-owned.
	LinkProgram(vertex, fragment ShaderHandle) (ProgramHandle, error)

	// DeleteShader releases a shader object. Unknown handles are ignored.
	DeleteShader(h ShaderHandle)

	// DeleteProgram releases a program object. Unknown handles are ignored.
	DeleteProgram(h ProgramHandle)
}

// Surface is an on-screen (or offscreen) drawing area. Logical size is the
// backing-buffer resolution; presented size is the displayed size, which
// may differ to preserve aspect ratio within the surface's container.
type Surface interface {
	// ID returns the identifier the surface was looked up by.
	ID() string

	// SetLogicalSize sets the backing-buffer resolution in pixels.
	SetLogicalSize(w, h int)

	// LogicalSize returns the backing-buffer resolution.
	LogicalSize() (w, h int)

	// SetPresentedSize sets the displayed size in device-independent pixels.
	SetPresentedSize(w, h int)

	// PresentedSize returns the displayed size.
	PresentedSize() (w, h int)

	// ContainerSize returns the size of the surface's container, the box
	// the presented size should fit into.
	ContainerSize() (w, h float64)

	// GetContext acquires a graphics context of the given kind.
	// ok is false when the kind is not supported. Acquiring the same kind
	// twice returns the same context.
	GetContext(kind string) (g Graphics, ok bool)

	// OnPointer registers a pointer listener. Implementations deliver
	// surface-local coordinates and suppress default browsing behavior.
	OnPointer(fn func(PointerEvent)) ListenerHandle

	// OnWheel registers a wheel listener. Default behavior is suppressed.
	OnWheel(fn func(WheelEvent)) ListenerHandle

	// OnTouch registers a touch listener delivering the full contact set.
	// Default behavior (scrolling, pinch zoom) is suppressed.
	OnTouch(fn func(TouchEvent)) ListenerHandle
}

// DeviceClass is a coarse device classification derived from the
// environment's user-agent string.
type DeviceClass string

const (
	// DeviceDesktop is the default classification.
	DeviceDesktop DeviceClass = "desktop"

	// DeviceMobile covers phones.
	DeviceMobile DeviceClass = "mobile"

	// DeviceTablet covers tablets.
	DeviceTablet DeviceClass = "tablet"
)

// Capabilities is a snapshot of which optional features the platform
// offers. Probing never fails; absent features are reported as false or
// empty, never as an error.
type Capabilities struct {
	// HighPerfGraphics reports whether the high-capability context kind
	// (WebGPU class) is available.
	HighPerfGraphics bool

	// Audio reports whether an audio output context can be constructed.
	Audio bool

	// PersistentStorage reports whether persistent local storage exists.
	PersistentStorage bool

	// BackgroundWorkers reports whether background workers are supported.
	BackgroundWorkers bool

	// WasmExecution reports whether the hosting runtime can execute
	// WebAssembly binaries.
	WasmExecution bool

	// TouchInput reports whether the device has a touch digitizer.
	TouchInput bool

	// Device is the coarse device classification.
	Device DeviceClass

	// UserAgent is the raw user-agent string, empty when not applicable.
	UserAgent string

	// GPUName names the graphics adapter when the platform knows it.
	GPUName string
}

// Platform is the environment a Host runs in.
type Platform interface {
	// Name returns the platform identifier (e.g. "dom", "headless").
	Name() string

	// SurfaceByID looks up a rendering surface by identifier.
	// ok is false when no such surface exists.
	SurfaceByID(id string) (s Surface, ok bool)

	// OnKey registers a key listener at the environment's input root (the
	// document, for the dom platform). When fn returns true the platform
	// suppresses the environment's default action for the event.
	OnKey(fn func(KeyEvent) (suppress bool)) ListenerHandle

	// OnResize registers a listener for environment-level resize
	// notifications.
	OnResize(fn func()) ListenerHandle

	// OnUserGesture registers a listener that fires on user activation
	// (a click or key press). It keeps firing until removed.
	OnUserGesture(fn func()) ListenerHandle

	// NewAudioContext constructs an audio output context.
	// Returns ErrAudioUnavailable (possibly wrapped) when the platform
	// has no audio subsystem.
	NewAudioContext() (AudioContext, error)

	// Probe reports which optional features are present. Pure query: no
	// side effects, never fails, legal before any initialization.
	Probe() Capabilities
}
