//go:build !js

package native

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/gogpu/naga"
	"github.com/gogpu/webhost/platform"
	"github.com/gogpu/wgpu/hal"
)

// Graphics compiles shaders against the platform's HAL device. WGSL source
// is translated to SPIR-V by naga before module creation, the same front
// end a browser applies to WebGPU shaders.
type Graphics struct {
	mu  sync.Mutex
	dev *gpuDevice

	nextHandle uint64
	shaders    map[platform.ShaderHandle]shaderEntry
	programs   map[platform.ProgramHandle][2]platform.ShaderHandle

	clears    int
	lastClear color.RGBA
}

type shaderEntry struct {
	stage  platform.ShaderStage
	module hal.ShaderModule
}

func newGraphics(dev *gpuDevice) *Graphics {
	return &Graphics{
		dev:      dev,
		shaders:  make(map[platform.ShaderHandle]shaderEntry),
		programs: make(map[platform.ProgramHandle][2]platform.ShaderHandle),
	}
}

// Kind implements platform.Graphics.
func (g *Graphics) Kind() string { return platform.ContextWebGPU }

// Clear implements platform.Graphics. The offscreen platform has no
// present path; the clear is recorded for the embedding program to read
// back via Clears and LastClear.
func (g *Graphics) Clear(c color.RGBA) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.clears++
	g.lastClear = c
}

// Clears returns how many Clear calls were issued.
func (g *Graphics) Clears() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.clears
}

// LastClear returns the color of the most recent Clear.
func (g *Graphics) LastClear() color.RGBA {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastClear
}

// CompileShader implements platform.Graphics. Source is WGSL; naga
// diagnostics and device rejections both surface as *CompileError.
func (g *Graphics) CompileShader(stage platform.ShaderStage, source string) (platform.ShaderHandle, error) {
	spirv, err := naga.Compile(source)
	if err != nil {
		return 0, &platform.CompileError{Stage: stage, Log: err.Error()}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.nextHandle++
	h := platform.ShaderHandle(g.nextHandle)

	module, err := g.dev.createShaderModule(fmt.Sprintf("%s_shader_%d", stage, h), spirv)
	if err != nil {
		return 0, &platform.CompileError{Stage: stage, Log: err.Error()}
	}
	g.shaders[h] = shaderEntry{stage: stage, module: module}
	return h, nil
}

// LinkProgram implements platform.Graphics. Pipelines bind modules at
// creation time, so linking pairs the two modules and validates their
// stages.
func (g *Graphics) LinkProgram(vertex, fragment platform.ShaderHandle) (platform.ProgramHandle, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	vs, ok := g.shaders[vertex]
	if !ok {
		return 0, &platform.LinkError{Log: "unknown vertex shader handle"}
	}
	fs, ok := g.shaders[fragment]
	if !ok {
		return 0, &platform.LinkError{Log: "unknown fragment shader handle"}
	}
	if vs.stage != platform.StageVertex || fs.stage != platform.StageFragment {
		return 0, &platform.LinkError{Log: "shader stages do not match program slots"}
	}
	g.nextHandle++
	h := platform.ProgramHandle(g.nextHandle)
	g.programs[h] = [2]platform.ShaderHandle{vertex, fragment}
	return h, nil
}

// DeleteShader implements platform.Graphics.
func (g *Graphics) DeleteShader(h platform.ShaderHandle) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if entry, ok := g.shaders[h]; ok {
		g.dev.destroyShaderModule(entry.module)
		delete(g.shaders, h)
	}
}

// DeleteProgram implements platform.Graphics.
func (g *Graphics) DeleteProgram(h platform.ProgramHandle) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.programs, h)
}
