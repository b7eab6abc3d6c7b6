//go:build js && wasm

package jsexport

import (
	"context"
	"syscall/js"

	"github.com/gogpu/webhost"
	"github.com/gogpu/webhost/platform"
)

// Export is the published API surface. Release removes the global and
// frees every js.Func.
type Export struct {
	host  *webhost.Host
	funcs []js.Func
}

// Publish installs the webhost global backed by h.
func Publish(h *webhost.Host) *Export {
	e := &Export{host: h}
	obj := js.Global().Get("Object").New()

	e.set(obj, "initialize", func(this js.Value, args []js.Value) any {
		if len(args) < 1 {
			return errObject("initialize: surface id required")
		}
		if err := h.Initialize(args[0].String()); err != nil {
			return errObject(err.Error())
		}
		return nil
	})

	e.set(obj, "teardown", func(this js.Value, args []js.Value) any {
		h.Teardown()
		return nil
	})

	e.set(obj, "capabilities", func(this js.Value, args []js.Value) any {
		c := h.Capabilities()
		return map[string]any{
			"highPerfGraphics":  c.HighPerfGraphics,
			"audio":             c.Audio,
			"persistentStorage": c.PersistentStorage,
			"backgroundWorkers": c.BackgroundWorkers,
			"wasmExecution":     c.WasmExecution,
			"touchInput":        c.TouchInput,
			"device":            string(c.Device),
			"userAgent":         c.UserAgent,
			"gpuName":           c.GPUName,
		}
	})

	e.set(obj, "audioState", func(this js.Value, args []js.Value) any {
		return h.AudioState().String()
	})

	e.set(obj, "snapshot", func(this js.Value, args []js.Value) any {
		snap := h.Snapshot()
		if snap == nil {
			return errObject(webhost.ErrNotInitialized.Error())
		}
		keys := js.Global().Get("Object").New()
		for code, down := range snap.Keys {
			keys.Set(code, down)
		}
		touches := make([]any, 0, len(snap.Touches))
		for _, t := range snap.Touches {
			touches = append(touches, map[string]any{"id": t.ID, "x": t.X, "y": t.Y})
		}
		return map[string]any{
			"keys": keys,
			"pointer": map[string]any{
				"x":       snap.Pointer.X,
				"y":       snap.Pointer.Y,
				"buttons": snap.Pointer.Buttons,
			},
			"touches": touches,
		}
	})

	e.set(obj, "compileShader", func(this js.Value, args []js.Value) any {
		if len(args) < 2 {
			return errObject("compileShader: stage and source required")
		}
		stage := platform.StageVertex
		if args[0].String() == "fragment" {
			stage = platform.StageFragment
		}
		handle, err := h.CompileShader(stage, args[1].String())
		if err != nil {
			return errObject(err.Error())
		}
		return int(handle)
	})

	e.set(obj, "linkProgram", func(this js.Value, args []js.Value) any {
		if len(args) < 2 {
			return errObject("linkProgram: two shader handles required")
		}
		vs := platform.ShaderHandle(args[0].Int())
		fs := platform.ShaderHandle(args[1].Int())
		handle, err := h.LinkProgram(vs, fs)
		if err != nil {
			return errObject(err.Error())
		}
		return int(handle)
	})

	e.set(obj, "fetchAsset", func(this js.Value, args []js.Value) any {
		if len(args) < 1 {
			return errObject("fetchAsset: locator required")
		}
		locator := args[0].String()
		return promise(func(resolve, reject js.Value) {
			// Network calls block; a fresh goroutine keeps the event
			// loop callback from deadlocking.
			go func() {
				data, err := h.FetchAsset(context.Background(), locator)
				if err != nil {
					reject.Invoke(errObject(err.Error()))
					return
				}
				buf := js.Global().Get("Uint8Array").New(len(data))
				js.CopyBytesToJS(buf, data)
				resolve.Invoke(buf)
			}()
		})
	})

	js.Global().Set("webhost", obj)
	return e
}

// Release removes the webhost global and frees the exported functions.
func (e *Export) Release() {
	js.Global().Delete("webhost")
	for _, f := range e.funcs {
		f.Release()
	}
	e.funcs = nil
}

func (e *Export) set(obj js.Value, name string, fn func(js.Value, []js.Value) any) {
	f := js.FuncOf(fn)
	e.funcs = append(e.funcs, f)
	obj.Set(name, f)
}

func errObject(msg string) map[string]any {
	return map[string]any{"error": msg}
}

// promise wraps an executor in a JavaScript Promise.
func promise(executor func(resolve, reject js.Value)) js.Value {
	var exec js.Func
	exec = js.FuncOf(func(this js.Value, args []js.Value) any {
		executor(args[0], args[1])
		exec.Release()
		return nil
	})
	return js.Global().Get("Promise").New(exec)
}
