package hostlink

import (
	"errors"

	"github.com/gogpu/webhost"
	"github.com/gogpu/webhost/platform"
)

// HostModuleName is the import namespace the guest binds against.
const HostModuleName = "webhost"

// GuestAllocExport is the guest function the host calls to obtain guest
// memory for outbound payloads: func(size i32) -> (ptr i32).
const GuestAllocExport = "webhost_alloc"

// GuestTickExport is the guest entry point Instance.Tick drives:
// func(elapsed f64).
const GuestTickExport = "tick"

// Status is the result code every host export returns.
type Status uint32

const (
	StatusOK Status = iota
	StatusNotInitialized
	StatusAlreadyInitialized
	StatusSurfaceNotFound
	StatusContextUnsupported
	StatusCompileFailed
	StatusLinkFailed
	StatusFetchFailed
	StatusBadArgument
	StatusInternal
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotInitialized:
		return "not_initialized"
	case StatusAlreadyInitialized:
		return "already_initialized"
	case StatusSurfaceNotFound:
		return "surface_not_found"
	case StatusContextUnsupported:
		return "context_unsupported"
	case StatusCompileFailed:
		return "compile_failed"
	case StatusLinkFailed:
		return "link_failed"
	case StatusFetchFailed:
		return "fetch_failed"
	case StatusBadArgument:
		return "bad_argument"
	default:
		return "internal"
	}
}

// statusFor maps a Host error to its wire status.
func statusFor(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, webhost.ErrNotInitialized):
		return StatusNotInitialized
	case errors.Is(err, webhost.ErrAlreadyInitialized):
		return StatusAlreadyInitialized
	case errors.Is(err, webhost.ErrSurfaceNotFound):
		return StatusSurfaceNotFound
	case errors.Is(err, webhost.ErrContextUnsupported):
		return StatusContextUnsupported
	}
	var ce *webhost.CompileError
	if errors.As(err, &ce) {
		return StatusCompileFailed
	}
	var le *webhost.LinkError
	if errors.As(err, &le) {
		return StatusLinkFailed
	}
	var fe *webhost.FetchError
	if errors.As(err, &fe) {
		return StatusFetchFailed
	}
	return StatusInternal
}

// Capability bits returned by query_capabilities.
const (
	CapHighPerfGraphics uint32 = 1 << iota
	CapAudio
	CapPersistentStorage
	CapBackgroundWorkers
	CapWasmExecution
	CapTouchInput
)

// CapabilityBits packs a capability snapshot into the wire bitmask.
func CapabilityBits(c platform.Capabilities) uint32 {
	var bits uint32
	if c.HighPerfGraphics {
		bits |= CapHighPerfGraphics
	}
	if c.Audio {
		bits |= CapAudio
	}
	if c.PersistentStorage {
		bits |= CapPersistentStorage
	}
	if c.BackgroundWorkers {
		bits |= CapBackgroundWorkers
	}
	if c.WasmExecution {
		bits |= CapWasmExecution
	}
	if c.TouchInput {
		bits |= CapTouchInput
	}
	return bits
}
