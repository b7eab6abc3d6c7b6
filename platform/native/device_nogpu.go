//go:build !js && nogpu

package native

import (
	"errors"

	"github.com/gogpu/wgpu/hal"
)

var errNoGPU = errors.New("built with nogpu tag")

type gpuDevice struct {
	adapterName string
}

func acquireDevice() (*gpuDevice, error) { return nil, errNoGPU }

func borrowDevice(_ hal.Device, _ hal.Queue) *gpuDevice { return &gpuDevice{} }

func (d *gpuDevice) close() {}

func (d *gpuDevice) createShaderModule(string, []byte) (hal.ShaderModule, error) {
	return nil, errNoGPU
}

func (d *gpuDevice) destroyShaderModule(hal.ShaderModule) {}
