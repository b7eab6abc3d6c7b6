//go:build js && wasm

// Command hostwasm is the browser entry point. It publishes the host API
// on the JavaScript global object and blocks forever; the page drives
// everything through the webhost global.
//
// Build with:
//
//	GOOS=js GOARCH=wasm go build -o webhost.wasm ./cmd/hostwasm
package main

import (
	"github.com/gogpu/webhost"
	"github.com/gogpu/webhost/jsexport"
	_ "github.com/gogpu/webhost/platform/dom"
)

func main() {
	host, err := webhost.New()
	if err != nil {
		panic(err)
	}
	jsexport.Publish(host)

	// Keep the Go runtime alive; exported functions are called from the
	// JavaScript event loop.
	select {}
}
