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

type openclPlatform opencl.Platform

var _ Platform = (*openclPlatform)(nil)

// GetProfile returns the platform profile (FULL_PROFILE or EMBEDDED_PROFILE).
func (p openclPlatform) GetProfile() (string, error) {
	return p.getString(opencl.PLATFORM_PROFILE, "profile")
}

// GetName returns the platform name.
func (p openclPlatform) GetName() (string, error) {
	return p.getString(opencl.PLATFORM_NAME, "name")
}

// GetVendor returns the platform vendor.
func (p openclPlatform) GetVendor() (string, error) {
	return p.getString(opencl.PLATFORM_VENDOR, "vendor")
}

// GetVersion returns the platform version string.
func (p openclPlatform) GetVersion() (string, error) {
	return p.getString(opencl.PLATFORM_VERSION, "version")
}

// GetDevices returns all devices of any type exposed by the platform.
func (p openclPlatform) GetDevices() ([]Device, error) {
	ids, r := opencl.Platform(p).GetDeviceIDs(opencl.DEVICE_TYPE_ALL)
	if r != opencl.SUCCESS {
		return nil, fmt.Errorf("failed to get devices for platform: %w", r)
	}

	var devices []Device
	for _, id := range ids {
		devices = append(devices, openclDevice(id))
	}
	return devices, nil
}

func (p openclPlatform) getString(param opencl.PlatformInfo, name string) (string, error) {
	value, r := opencl.Platform(p).GetInfoString(param)
	if r != opencl.SUCCESS {
		return "", fmt.Errorf("failed to get platform %s: %w", name, r)
	}
	return value, nil
}
