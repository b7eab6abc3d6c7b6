package webhost

import (
	"github.com/gogpu/webhost/platform"
)

// Capabilities is the structured snapshot of optional platform features.
type Capabilities = platform.Capabilities

// DeviceClass is the coarse device classification in Capabilities.
type DeviceClass = platform.DeviceClass

// Capabilities reports which optional features the platform offers. Pure
// query: no side effects, never fails, and (unlike every other host
// operation) legal before Initialize. Absent features read as false or
// empty, never as an error.
func (h *Host) Capabilities() Capabilities {
	return h.plat.Probe()
}
