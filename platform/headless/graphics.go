package headless

import (
	"fmt"
	"image/color"

	"github.com/gogpu/naga"

	"github.com/gogpu/webhost/platform"
)

// Graphics is an in-memory graphics context. Shader source is WGSL and is
// compiled through the naga front-end, so diagnostics are real; the
// resulting SPIR-V is discarded because nothing executes here.
type Graphics struct {
	kind string

	nextHandle uint64
	shaders    map[platform.ShaderHandle]platform.ShaderStage
	programs   map[platform.ProgramHandle][2]platform.ShaderHandle

	clears    int
	lastClear color.RGBA
}

func newGraphics(kind string) *Graphics {
	return &Graphics{
		kind:     kind,
		shaders:  make(map[platform.ShaderHandle]platform.ShaderStage),
		programs: make(map[platform.ProgramHandle][2]platform.ShaderHandle),
	}
}

// Kind implements platform.Graphics.
func (g *Graphics) Kind() string { return g.kind }

// Clear implements platform.Graphics.
func (g *Graphics) Clear(c color.RGBA) {
	g.clears++
	g.lastClear = c
}

// Clears returns how many times Clear was called.
func (g *Graphics) Clears() int { return g.clears }

// LastClear returns the color of the most recent Clear.
func (g *Graphics) LastClear() color.RGBA { return g.lastClear }

// CompileShader implements platform.Graphics.
func (g *Graphics) CompileShader(stage platform.ShaderStage, source string) (platform.ShaderHandle, error) {
	if _, err := naga.Compile(source); err != nil {
		return 0, &platform.CompileError{Stage: stage, Log: err.Error()}
	}
	g.nextHandle++
	h := platform.ShaderHandle(g.nextHandle)
	g.shaders[h] = stage
	return h, nil
}

// LinkProgram implements platform.Graphics.
func (g *Graphics) LinkProgram(vertex, fragment platform.ShaderHandle) (platform.ProgramHandle, error) {
	vs, ok := g.shaders[vertex]
	if !ok {
		return 0, &platform.LinkError{Log: fmt.Sprintf("unknown vertex shader handle %d", vertex)}
	}
	fs, ok := g.shaders[fragment]
	if !ok {
		return 0, &platform.LinkError{Log: fmt.Sprintf("unknown fragment shader handle %d", fragment)}
	}
	if vs != platform.StageVertex || fs != platform.StageFragment {
		return 0, &platform.LinkError{Log: fmt.Sprintf("stage mismatch: got %s + %s", vs, fs)}
	}
	g.nextHandle++
	h := platform.ProgramHandle(g.nextHandle)
	g.programs[h] = [2]platform.ShaderHandle{vertex, fragment}
	return h, nil
}

// DeleteShader implements platform.Graphics.
func (g *Graphics) DeleteShader(h platform.ShaderHandle) { delete(g.shaders, h) }

// DeleteProgram implements platform.Graphics.
func (g *Graphics) DeleteProgram(h platform.ProgramHandle) { delete(g.programs, h) }

// ShaderCount returns how many shader objects are currently alive.
func (g *Graphics) ShaderCount() int { return len(g.shaders) }

// ProgramCount returns how many program objects are currently alive.
func (g *Graphics) ProgramCount() int { return len(g.programs) }
