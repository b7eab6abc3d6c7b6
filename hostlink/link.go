package hostlink

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/gogpu/webhost"
	"github.com/gogpu/webhost/platform"
)

// Link owns a wazero runtime with the webhost host module instantiated.
// One Link serves one Host; guest engines are compiled and instantiated
// into the same runtime with Compile.
type Link struct {
	host    *webhost.Host
	runtime wazero.Runtime

	lastErr string
}

// New creates a Link around h with a fresh wazero runtime and instantiates
// the host module into it.
func New(ctx context.Context, h *webhost.Host) (*Link, error) {
	if h == nil {
		return nil, fmt.Errorf("hostlink: nil host")
	}
	l := &Link{
		host:    h,
		runtime: wazero.NewRuntime(ctx),
	}
	if err := l.instantiateHostModule(ctx); err != nil {
		l.runtime.Close(ctx)
		return nil, fmt.Errorf("hostlink: instantiate host module: %w", err)
	}
	return l, nil
}

// Close releases the runtime and every instance created from it.
func (l *Link) Close(ctx context.Context) error {
	return l.runtime.Close(ctx)
}

func (l *Link) instantiateHostModule(ctx context.Context) error {
	i32 := api.ValueTypeI32
	i64 := api.ValueTypeI64

	b := l.runtime.NewHostModuleBuilder(HostModuleName)
	b.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(l.initializeHost), []api.ValueType{i32, i32}, []api.ValueType{i32}).
		Export("initialize_host")
	b.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(l.queryCapabilities), nil, []api.ValueType{i32}).
		Export("query_capabilities")
	b.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(l.fetchAsset), []api.ValueType{i32, i32, i32, i32}, []api.ValueType{i32}).
		Export("fetch_asset")
	b.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(l.compileShader), []api.ValueType{i32, i32, i32, i32}, []api.ValueType{i32}).
		Export("compile_shader")
	b.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(l.linkProgram), []api.ValueType{i64, i64, i32}, []api.ValueType{i32}).
		Export("link_program")
	b.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(l.lastError), []api.ValueType{i32, i32}, []api.ValueType{i32}).
		Export("last_error")
	b.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(l.teardownHost), nil, []api.ValueType{i32}).
		Export("teardown_host")

	_, err := b.Instantiate(ctx)
	return err
}

// fail records err for last_error and returns its wire status.
func (l *Link) fail(err error) Status {
	if err != nil {
		l.lastErr = err.Error()
	}
	return statusFor(err)
}

// initialize_host(idPtr, idLen i32) -> status i32
func (l *Link) initializeHost(_ context.Context, mod api.Module, stack []uint64) {
	id, ok := readString(mod, uint32(stack[0]), uint32(stack[1]))
	if !ok {
		stack[0] = uint64(StatusBadArgument)
		return
	}
	stack[0] = uint64(l.fail(l.host.Initialize(id)))
}

// query_capabilities() -> bitmask i32
func (l *Link) queryCapabilities(_ context.Context, _ api.Module, stack []uint64) {
	stack[0] = uint64(CapabilityBits(l.host.Capabilities()))
}

// fetch_asset(locPtr, locLen, outPtrPtr, outLenPtr i32) -> status i32
//
// On success the payload is copied into guest memory obtained from
// webhost_alloc and its location is written to the two out slots.
func (l *Link) fetchAsset(ctx context.Context, mod api.Module, stack []uint64) {
	locator, ok := readString(mod, uint32(stack[0]), uint32(stack[1]))
	if !ok {
		stack[0] = uint64(StatusBadArgument)
		return
	}
	outPtr, outLen := uint32(stack[2]), uint32(stack[3])

	data, err := l.host.FetchAsset(ctx, locator)
	if err != nil {
		stack[0] = uint64(l.fail(err))
		return
	}
	ptr, err := guestWrite(ctx, mod, data)
	if err != nil {
		stack[0] = uint64(l.fail(err))
		return
	}
	if !mod.Memory().WriteUint32Le(outPtr, ptr) ||
		!mod.Memory().WriteUint32Le(outLen, uint32(len(data))) {
		stack[0] = uint64(StatusBadArgument)
		return
	}
	stack[0] = uint64(StatusOK)
}

// compile_shader(stage, srcPtr, srcLen, outHandlePtr i32) -> status i32
//
// The handle is written as a little-endian u64. stage is 0 for vertex,
// 1 for fragment.
func (l *Link) compileShader(_ context.Context, mod api.Module, stack []uint64) {
	stage := platform.ShaderStage(uint32(stack[0]))
	if stage != platform.StageVertex && stage != platform.StageFragment {
		stack[0] = uint64(StatusBadArgument)
		return
	}
	source, ok := readString(mod, uint32(stack[1]), uint32(stack[2]))
	if !ok {
		stack[0] = uint64(StatusBadArgument)
		return
	}
	outPtr := uint32(stack[3])

	h, err := l.host.CompileShader(stage, source)
	if err != nil {
		stack[0] = uint64(l.fail(err))
		return
	}
	if !mod.Memory().WriteUint64Le(outPtr, uint64(h)) {
		stack[0] = uint64(StatusBadArgument)
		return
	}
	stack[0] = uint64(StatusOK)
}

// link_program(vertex i64, fragment i64, outHandlePtr i32) -> status i32
func (l *Link) linkProgram(_ context.Context, mod api.Module, stack []uint64) {
	vs := platform.ShaderHandle(stack[0])
	fs := platform.ShaderHandle(stack[1])
	outPtr := uint32(stack[2])

	h, err := l.host.LinkProgram(vs, fs)
	if err != nil {
		stack[0] = uint64(l.fail(err))
		return
	}
	if !mod.Memory().WriteUint64Le(outPtr, uint64(h)) {
		stack[0] = uint64(StatusBadArgument)
		return
	}
	stack[0] = uint64(StatusOK)
}

// last_error(outPtrPtr, outLenPtr i32) -> status i32
//
// Copies the text of the most recent failure into guest memory. An empty
// write (len 0) means no failure has been recorded yet.
func (l *Link) lastError(ctx context.Context, mod api.Module, stack []uint64) {
	outPtr, outLen := uint32(stack[0]), uint32(stack[1])
	if l.lastErr == "" {
		if !mod.Memory().WriteUint32Le(outPtr, 0) || !mod.Memory().WriteUint32Le(outLen, 0) {
			stack[0] = uint64(StatusBadArgument)
			return
		}
		stack[0] = uint64(StatusOK)
		return
	}
	ptr, err := guestWrite(ctx, mod, []byte(l.lastErr))
	if err != nil {
		stack[0] = uint64(StatusInternal)
		return
	}
	if !mod.Memory().WriteUint32Le(outPtr, ptr) ||
		!mod.Memory().WriteUint32Le(outLen, uint32(len(l.lastErr))) {
		stack[0] = uint64(StatusBadArgument)
		return
	}
	stack[0] = uint64(StatusOK)
}

// teardown_host() -> status i32
func (l *Link) teardownHost(_ context.Context, _ api.Module, stack []uint64) {
	l.host.Teardown()
	stack[0] = uint64(StatusOK)
}

// readString copies a guest string out of linear memory.
func readString(mod api.Module, ptr, length uint32) (string, bool) {
	data, ok := mod.Memory().Read(ptr, length)
	if !ok {
		return "", false
	}
	return string(data), true
}

// guestWrite copies data into guest memory obtained from webhost_alloc.
func guestWrite(ctx context.Context, mod api.Module, data []byte) (uint32, error) {
	alloc := mod.ExportedFunction(GuestAllocExport)
	if alloc == nil {
		return 0, fmt.Errorf("guest does not export %s", GuestAllocExport)
	}
	res, err := alloc.Call(ctx, uint64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", GuestAllocExport, err)
	}
	if len(res) == 0 {
		return 0, fmt.Errorf("%s returned no value", GuestAllocExport)
	}
	ptr := uint32(res[0])
	if !mod.Memory().Write(ptr, data) {
		return 0, fmt.Errorf("%s returned pointer outside memory", GuestAllocExport)
	}
	return ptr, nil
}
