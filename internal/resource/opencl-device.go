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

package resource

import (
	"fmt"

	"github.com/NVIDIA/opencl-feature-discovery/internal/opencl"
)

type openclDevice opencl.Device

var _ Device = (*openclDevice)(nil)

// GetProfile returns the device profile (FULL_PROFILE or EMBEDDED_PROFILE).
func (d openclDevice) GetProfile() (string, error) {
	return d.getString(opencl.DEVICE_PROFILE, "profile")
}

// GetName returns the device name.
func (d openclDevice) GetName() (string, error) {
	return d.getString(opencl.DEVICE_NAME, "name")
}

// GetVersion returns the device version string ("OpenCL <major>.<minor> <vendor-specific>").
func (d openclDevice) GetVersion() (string, error) {
	return d.getString(opencl.DEVICE_VERSION, "version")
}

// GetDriverVersion returns the version of the driver backing the device.
func (d openclDevice) GetDriverVersion() (string, error) {
	return d.getString(opencl.DRIVER_VERSION, "driver version")
}

// GetMaxWorkGroupSize returns the maximum number of work-items in a work-group.
func (d openclDevice) GetMaxWorkGroupSize() (uint64, error) {
	size, r := opencl.Device(d).GetInfoSize(opencl.DEVICE_MAX_WORK_GROUP_SIZE)
	if r != opencl.SUCCESS {
		return 0, fmt.Errorf("failed to get device max work group size: %w", r)
	}
	return size, nil
}

// GetMaxWorkItemSizes returns the maximum number of work-items per work-group
// for each dimension, in dimension order.
func (d openclDevice) GetMaxWorkItemSizes() ([]uint64, error) {
	sizes, r := opencl.Device(d).GetInfoSizes(opencl.DEVICE_MAX_WORK_ITEM_SIZES)
	if r != opencl.SUCCESS {
		return nil, fmt.Errorf("failed to get device max work item sizes: %w", r)
	}
	return sizes, nil
}

func (d openclDevice) getString(param opencl.DeviceInfo, name string) (string, error) {
	value, r := opencl.Device(d).GetInfoString(param)
	if r != opencl.SUCCESS {
		return "", fmt.Errorf("failed to get device %s: %w", name, r)
	}
	return value, nil
}
