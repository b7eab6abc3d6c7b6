//go:build js && wasm

package dom

import (
	"image/color"
	"syscall/js"

	"github.com/gogpu/webhost/platform"
)

// gpuGraphics issues operations against a WebGPU canvas context using the
// device the page published under the webhostGPU global.
type gpuGraphics struct {
	ctx    js.Value
	device js.Value
	queue  js.Value

	nextHandle uint64
	modules    map[platform.ShaderHandle]gpuModule
	programs   map[platform.ProgramHandle]struct{}
}

type gpuModule struct {
	value js.Value
	stage platform.ShaderStage
}

func newGPUGraphics(ctx, device js.Value) *gpuGraphics {
	format := js.Global().Get("navigator").Get("gpu").Call("getPreferredCanvasFormat")
	ctx.Call("configure", map[string]any{
		"device":    device,
		"format":    format,
		"alphaMode": "opaque",
	})
	return &gpuGraphics{
		ctx:      ctx,
		device:   device,
		queue:    device.Get("queue"),
		modules:  make(map[platform.ShaderHandle]gpuModule),
		programs: make(map[platform.ProgramHandle]struct{}),
	}
}

// Kind implements platform.Graphics.
func (g *gpuGraphics) Kind() string { return platform.ContextWebGPU }

// Clear implements platform.Graphics. A render pass with a clear load op is
// the WebGPU way to fill the whole surface.
func (g *gpuGraphics) Clear(c color.RGBA) {
	encoder := g.device.Call("createCommandEncoder")
	view := g.ctx.Call("getCurrentTexture").Call("createView")
	pass := encoder.Call("beginRenderPass", map[string]any{
		"colorAttachments": []any{
			map[string]any{
				"view": view,
				"clearValue": map[string]any{
					"r": float64(c.R) / 255,
					"g": float64(c.G) / 255,
					"b": float64(c.B) / 255,
					"a": float64(c.A) / 255,
				},
				"loadOp":  "clear",
				"storeOp": "store",
			},
		},
	})
	pass.Call("end")
	g.queue.Call("submit", []any{encoder.Call("finish")})
}

// CompileShader implements platform.Graphics. Source is WGSL. WebGPU shader
// validation is asynchronous, so creation succeeds synchronously and invalid
// modules surface as device errors when first used in a pipeline.
func (g *gpuGraphics) CompileShader(stage platform.ShaderStage, source string) (platform.ShaderHandle, error) {
	module := g.device.Call("createShaderModule", map[string]any{"code": source})
	g.nextHandle++
	h := platform.ShaderHandle(g.nextHandle)
	g.modules[h] = gpuModule{value: module, stage: stage}
	return h, nil
}

// LinkProgram implements platform.Graphics. WebGPU has no separate link
// step; linking pairs the two modules and validates their stages.
func (g *gpuGraphics) LinkProgram(vertex, fragment platform.ShaderHandle) (platform.ProgramHandle, error) {
	vs, ok := g.modules[vertex]
	if !ok {
		return 0, &platform.LinkError{Log: "unknown vertex shader handle"}
	}
	fs, ok := g.modules[fragment]
	if !ok {
		return 0, &platform.LinkError{Log: "unknown fragment shader handle"}
	}
	if vs.stage != platform.StageVertex || fs.stage != platform.StageFragment {
		return 0, &platform.LinkError{Log: "shader stages do not match program slots"}
	}
	g.nextHandle++
	h := platform.ProgramHandle(g.nextHandle)
	g.programs[h] = struct{}{}
	return h, nil
}

// DeleteShader implements platform.Graphics. Module lifetime is managed by
// the JavaScript garbage collector; dropping the reference is enough.
func (g *gpuGraphics) DeleteShader(h platform.ShaderHandle) {
	delete(g.modules, h)
}

// DeleteProgram implements platform.Graphics.
func (g *gpuGraphics) DeleteProgram(h platform.ProgramHandle) {
	delete(g.programs, h)
}
