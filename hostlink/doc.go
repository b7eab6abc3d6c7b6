// Package hostlink exposes a Host to a guest engine wasm module through
// wazero.
//
// The host side instantiates a host module named "webhost" whose exports
// mirror the Host API with a ptr/len + status-code ABI. Strings cross the
// boundary as (ptr, len) pairs into guest linear memory; payloads the host
// produces (fetched assets, error text) are written into guest memory
// obtained from the guest's exported webhost_alloc function.
//
// A minimal guest imports look like:
//
//	(import "webhost" "initialize_host"    (func (param i32 i32) (result i32)))
//	(import "webhost" "query_capabilities" (func (result i32)))
//	(import "webhost" "fetch_asset"        (func (param i32 i32 i32 i32) (result i32)))
//	(import "webhost" "compile_shader"     (func (param i32 i32 i32 i32) (result i32)))
//	(import "webhost" "link_program"       (func (param i64 i64 i32) (result i32)))
//	(import "webhost" "last_error"         (func (param i32 i32) (result i32)))
//	(import "webhost" "teardown_host"      (func (result i32)))
//
// and exports webhost_alloc(size i32) -> i32 plus a tick(elapsed f64)
// entry point the embedding program drives each frame.
package hostlink
