//go:build js && wasm

package dom

import "github.com/gogpu/webhost/platform"

func init() {
	platform.Register(platform.PlatformDOM, func() (platform.Platform, error) {
		return New()
	})
}
