package hostlink

import (
	"context"
	"fmt"
	"math"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

// Instance is a compiled and instantiated guest engine.
type Instance struct {
	mod  api.Module
	tick api.Function
}

// Compile compiles wasmBytes, instantiates the module into the Link's
// runtime under the given name, and resolves the tick entry point. The
// guest's start function runs during instantiation, so its imports of the
// webhost module are live immediately.
func (l *Link) Compile(ctx context.Context, name string, wasmBytes []byte) (*Instance, error) {
	compiled, err := l.runtime.CompileModule(ctx, wasmBytes)
	if err != nil {
		return nil, fmt.Errorf("hostlink: compile %s: %w", name, err)
	}
	mod, err := l.runtime.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName(name))
	if err != nil {
		return nil, fmt.Errorf("hostlink: instantiate %s: %w", name, err)
	}
	inst := &Instance{
		mod:  mod,
		tick: mod.ExportedFunction(GuestTickExport),
	}
	if inst.tick == nil {
		mod.Close(ctx)
		return nil, fmt.Errorf("hostlink: %s does not export %s", name, GuestTickExport)
	}
	return inst, nil
}

// Tick drives one frame of the guest engine with the elapsed time in
// milliseconds.
func (i *Instance) Tick(ctx context.Context, elapsedMillis float64) error {
	_, err := i.tick.Call(ctx, math.Float64bits(elapsedMillis))
	if err != nil {
		return fmt.Errorf("hostlink: tick: %w", err)
	}
	return nil
}

// Close releases the instance.
func (i *Instance) Close(ctx context.Context) error {
	return i.mod.Close(ctx)
}
