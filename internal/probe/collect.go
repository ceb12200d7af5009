/**
# Copyright (c) 2024, NVIDIA CORPORATION.  All rights reserved.
#
# Licensed under the Apache License, Version 2.0 (the "License");
# you may not use this file except in compliance with the License.
# You may obtain a copy of the License at
#
#     http://www.apache.org/licenses/LICENSE-2.0
#
# Unless required by applicable law or agreed to in writing, software
# distributed under the License is distributed on an "AS IS" BASIS,
# WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
# See the License for the specific language governing permissions and
# limitations under the License.
**/

package probe

import (
	"errors"
	"fmt"

	"github.com/NVIDIA/opencl-feature-discovery/internal/compat"
	"github.com/NVIDIA/opencl-feature-discovery/internal/resource"
)

// ErrCapabilityQuery is returned whenever a platform or device query fails.
var ErrCapabilityQuery = errors.New("opencl call failed")

func queryError(attribute string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrCapabilityQuery, attribute, err)
}

// CollectPlatform reads the descriptor of a platform.
func CollectPlatform(p resource.Platform) (*compat.PlatformDescriptor, error) {
	profile, err := p.GetProfile()
	if err != nil {
		return nil, queryError("platform profile", err)
	}
	name, err := p.GetName()
	if err != nil {
		return nil, queryError("platform name", err)
	}
	vendor, err := p.GetVendor()
	if err != nil {
		return nil, queryError("platform vendor", err)
	}
	version, err := p.GetVersion()
	if err != nil {
		return nil, queryError("platform version", err)
	}

	d := compat.PlatformDescriptor{
		Profile: profile,
		Name:    name,
		Vendor:  vendor,
		Version: version,
	}
	return &d, nil
}

// CollectDevice reads the descriptor of a device.
func CollectDevice(d resource.Device) (*compat.DeviceDescriptor, error) {
	profile, err := d.GetProfile()
	if err != nil {
		return nil, queryError("device profile", err)
	}
	name, err := d.GetName()
	if err != nil {
		return nil, queryError("device name", err)
	}
	version, err := d.GetVersion()
	if err != nil {
		return nil, queryError("device version", err)
	}
	driverVersion, err := d.GetDriverVersion()
	if err != nil {
		return nil, queryError("driver version", err)
	}
	workGroupSize, err := d.GetMaxWorkGroupSize()
	if err != nil {
		return nil, queryError("max work-group size", err)
	}
	workItemSizes, err := d.GetMaxWorkItemSizes()
	if err != nil {
		return nil, queryError("max work-item sizes", err)
	}

	desc := compat.DeviceDescriptor{
		Profile:          profile,
		Name:             name,
		Version:          version,
		DriverVersion:    driverVersion,
		MaxWorkGroupSize: workGroupSize,
		MaxWorkItemSizes: compat.NewWorkItemSizes(workItemSizes),
	}
	return &desc, nil
}

// getDevices lists the devices of a platform.
func getDevices(p resource.Platform) ([]resource.Device, error) {
	devices, err := p.GetDevices()
	if err != nil {
		return nil, queryError("device list", err)
	}
	return devices, nil
}

// getPlatforms lists the platforms of a manager.
func getPlatforms(m resource.Manager) ([]resource.Platform, error) {
	platforms, err := m.GetPlatforms()
	if err != nil {
		return nil, queryError("platform list", err)
	}
	return platforms, nil
}

// withManager runs fn between an Init and Shutdown of the manager.
func withManager(m resource.Manager, fn func() error) (rerr error) {
	if err := m.Init(); err != nil {
		return queryError("init", err)
	}
	defer func() {
		if err := m.Shutdown(); err != nil && rerr == nil {
			rerr = queryError("shutdown", err)
		}
	}()
	return fn()
}
