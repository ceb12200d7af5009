/**
# Copyright (c) 2022, NVIDIA CORPORATION.  All rights reserved.
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

package testing

import (
	"fmt"

	"github.com/NVIDIA/opencl-feature-discovery/internal/resource"
)

// DeviceMock provides an alias that allows for additional functions to be defined.
type DeviceMock struct {
	resource.DeviceMock
}

// NewCompatibleDevice creates a device that satisfies the default capability policy.
func NewCompatibleDevice() *DeviceMock {
	return NewDeviceMock("MOCKDEVICE", "OpenCL 3.0 CUDA", 1024, 1024, 1024, 64)
}

// NewDeviceMock creates a full-profile device with the specified attributes for testing.
func NewDeviceMock(name string, version string, workGroupSize uint64, workItemSizes ...uint64) *DeviceMock {
	d := DeviceMock{resource.DeviceMock{
		GetProfileFunc:          func() (string, error) { return "FULL_PROFILE", nil },
		GetNameFunc:             func() (string, error) { return name, nil },
		GetVersionFunc:          func() (string, error) { return version, nil },
		GetDriverVersionFunc:    func() (string, error) { return "550.54.14", nil },
		GetMaxWorkGroupSizeFunc: func() (uint64, error) { return workGroupSize, nil },
		GetMaxWorkItemSizesFunc: func() ([]uint64, error) { return workItemSizes, nil },
	}}
	return &d
}

// WithProfile overrides the profile reported by the mocked device.
func (d *DeviceMock) WithProfile(profile string) *DeviceMock {
	d.GetProfileFunc = func() (string, error) { return profile, nil }
	return d
}

// PlatformMock provides an alias that allows for additional functions to be defined.
type PlatformMock struct {
	resource.PlatformMock
}

// NewPlatformMock creates a full-profile platform exposing the specified devices.
func NewPlatformMock(name string, devices ...resource.Device) *PlatformMock {
	p := PlatformMock{resource.PlatformMock{
		GetProfileFunc: func() (string, error) { return "FULL_PROFILE", nil },
		GetNameFunc:    func() (string, error) { return name, nil },
		GetVendorFunc:  func() (string, error) { return "MOCKVENDOR", nil },
		GetVersionFunc: func() (string, error) { return "OpenCL 3.0 MOCK", nil },
		GetDevicesFunc: func() ([]resource.Device, error) { return devices, nil },
	}}
	return &p
}

// WithProfile overrides the profile reported by the mocked platform.
func (p *PlatformMock) WithProfile(profile string) *PlatformMock {
	p.GetProfileFunc = func() (string, error) { return profile, nil }
	return p
}

// ManagerMock provides an alias that allows for additional functions to be defined.
type ManagerMock struct {
	resource.ManagerMock
}

// NewManagerMockWithPlatforms creates a mocked manager with the specified platforms
func NewManagerMockWithPlatforms(platforms ...resource.Platform) *ManagerMock {
	manager := ManagerMock{resource.ManagerMock{
		InitFunc:     func() error { return nil },
		ShutdownFunc: func() error { return nil },
		GetPlatformsFunc: func() ([]resource.Platform, error) {
			return platforms, nil
		},
	}}
	return &manager
}

// WithErrorOnInit sets the Init function for the ManagerMock to error if called.
func (m *ManagerMock) WithErrorOnInit(err error) *ManagerMock {
	m.InitFunc = func() error {
		return fmt.Errorf("mock init failure: %w", err)
	}
	return m
}
