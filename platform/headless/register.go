package headless

import (
	"github.com/gogpu/webhost/platform"
)

func init() {
	platform.Register(platform.PlatformHeadless, func() (platform.Platform, error) {
		return New(), nil
	})
}
