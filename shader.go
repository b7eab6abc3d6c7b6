package webhost

import (
	"github.com/gogpu/webhost/platform"
)

// Shader and program types, re-exported so engine code can stay on the
// webhost import alone.
type (
	// ShaderStage identifies a programmable pipeline stage.
	ShaderStage = platform.ShaderStage

	// ShaderHandle identifies a compiled shader object; zero is invalid.
	ShaderHandle = platform.ShaderHandle

	// ProgramHandle identifies a linked program object; zero is invalid.
	ProgramHandle = platform.ProgramHandle

	// CompileError reports a failed compilation with the platform's
	// diagnostic text.
	CompileError = platform.CompileError

	// LinkError reports a failed link with the platform's diagnostic
	// text.
	LinkError = platform.LinkError
)

// Pipeline stages accepted by CompileShader.
const (
	StageVertex   = platform.StageVertex
	StageFragment = platform.StageFragment
)

// CompileShader compiles shader source for the given stage against the
// acquired graphics context. On failure it returns a zero handle and a
// *CompileError carrying the diagnostic; the caller decides whether that
// is fatal for its pipeline. Each call is independent: no state persists
// beyond the context-resource allocation.
func (h *Host) CompileShader(stage ShaderStage, source string) (ShaderHandle, error) {
	if !h.initialized {
		return 0, ErrNotInitialized
	}
	handle, err := h.gfx.CompileShader(stage, source)
	if err != nil {
		Logger().Debug("webhost: shader compilation failed", "stage", stage.String(), "err", err)
		return 0, err
	}
	return handle, nil
}

// LinkProgram links a vertex and a fragment shader into a program. On
// failure it returns a zero handle and a *LinkError; both shader objects
// remain caller-owned and must still be deleted by the caller, so a
// failed link leaks no context resources.
func (h *Host) LinkProgram(vertex, fragment ShaderHandle) (ProgramHandle, error) {
	if !h.initialized {
		return 0, ErrNotInitialized
	}
	handle, err := h.gfx.LinkProgram(vertex, fragment)
	if err != nil {
		Logger().Debug("webhost: program link failed", "err", err)
		return 0, err
	}
	return handle, nil
}
