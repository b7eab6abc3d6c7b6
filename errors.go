package webhost

import "errors"

// Common host errors. Initialization failures are fatal at the boundary:
// they are reported once and never retried internally.
var (
	// ErrSurfaceNotFound is returned when Initialize cannot find a surface
	// with the given identifier.
	ErrSurfaceNotFound = errors.New("webhost: surface not found")

	// ErrContextUnsupported is returned when neither the high-capability
	// nor the baseline graphics context can be acquired.
	ErrContextUnsupported = errors.New("webhost: no supported graphics context")

	// ErrNotInitialized is returned when operations are called before a
	// successful Initialize. Capability queries are exempt.
	ErrNotInitialized = errors.New("webhost: host not initialized")

	// ErrAlreadyInitialized is returned when Initialize is called on an
	// initialized host. Teardown first.
	ErrAlreadyInitialized = errors.New("webhost: host already initialized")
)
