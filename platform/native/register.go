//go:build !js

package native

import (
	"github.com/gogpu/webhost/platform"
)

func init() {
	platform.Register(platform.PlatformNative, func() (platform.Platform, error) {
		return New()
	})
}
