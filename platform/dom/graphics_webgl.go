//go:build js && wasm

package dom

import (
	"image/color"
	"syscall/js"

	"github.com/gogpu/webhost/platform"
)

// glGraphics issues operations against a WebGL or WebGL2 context.
type glGraphics struct {
	kind string
	gl   js.Value

	nextHandle uint64
	shaders    map[platform.ShaderHandle]js.Value
	programs   map[platform.ProgramHandle]js.Value
}

func newGLGraphics(kind string, gl js.Value) *glGraphics {
	return &glGraphics{
		kind:     kind,
		gl:       gl,
		shaders:  make(map[platform.ShaderHandle]js.Value),
		programs: make(map[platform.ProgramHandle]js.Value),
	}
}

// Kind implements platform.Graphics.
func (g *glGraphics) Kind() string { return g.kind }

// Clear implements platform.Graphics.
func (g *glGraphics) Clear(c color.RGBA) {
	g.gl.Call("clearColor",
		float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255)
	g.gl.Call("clear", g.gl.Get("COLOR_BUFFER_BIT").Int())
}

// CompileShader implements platform.Graphics. Source is GLSL; the info log
// is returned verbatim on failure.
func (g *glGraphics) CompileShader(stage platform.ShaderStage, source string) (platform.ShaderHandle, error) {
	glStage := "VERTEX_SHADER"
	if stage == platform.StageFragment {
		glStage = "FRAGMENT_SHADER"
	}
	sh := g.gl.Call("createShader", g.gl.Get(glStage).Int())
	g.gl.Call("shaderSource", sh, source)
	g.gl.Call("compileShader", sh)
	if !g.gl.Call("getShaderParameter", sh, g.gl.Get("COMPILE_STATUS").Int()).Bool() {
		log := g.gl.Call("getShaderInfoLog", sh).String()
		g.gl.Call("deleteShader", sh)
		return 0, &platform.CompileError{Stage: stage, Log: log}
	}
	g.nextHandle++
	h := platform.ShaderHandle(g.nextHandle)
	g.shaders[h] = sh
	return h, nil
}

// LinkProgram implements platform.Graphics.
func (g *glGraphics) LinkProgram(vertex, fragment platform.ShaderHandle) (platform.ProgramHandle, error) {
	vs, ok := g.shaders[vertex]
	if !ok {
		return 0, &platform.LinkError{Log: "unknown vertex shader handle"}
	}
	fs, ok := g.shaders[fragment]
	if !ok {
		return 0, &platform.LinkError{Log: "unknown fragment shader handle"}
	}
	prog := g.gl.Call("createProgram")
	g.gl.Call("attachShader", prog, vs)
	g.gl.Call("attachShader", prog, fs)
	g.gl.Call("linkProgram", prog)
	if !g.gl.Call("getProgramParameter", prog, g.gl.Get("LINK_STATUS").Int()).Bool() {
		log := g.gl.Call("getProgramInfoLog", prog).String()
		g.gl.Call("deleteProgram", prog)
		return 0, &platform.LinkError{Log: log}
	}
	g.nextHandle++
	h := platform.ProgramHandle(g.nextHandle)
	g.programs[h] = prog
	return h, nil
}

// DeleteShader implements platform.Graphics.
func (g *glGraphics) DeleteShader(h platform.ShaderHandle) {
	if sh, ok := g.shaders[h]; ok {
		g.gl.Call("deleteShader", sh)
		delete(g.shaders, h)
	}
}

// DeleteProgram implements platform.Graphics.
func (g *glGraphics) DeleteProgram(h platform.ProgramHandle) {
	if prog, ok := g.programs[h]; ok {
		g.gl.Call("deleteProgram", prog)
		delete(g.programs, h)
	}
}
