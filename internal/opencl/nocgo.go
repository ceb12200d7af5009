//go:build !cgo

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

package opencl

// This file provides the OpenCL API for binaries built without cgo. The ICD
// loader can never be opened in that case.

// Platform represents a cl_platform_id handle
type Platform struct{}

// Device represents a cl_device_id handle
type Device struct{}

// IsAvailable always reports that OpenCL is unavailable without cgo.
func IsAvailable() (bool, string) {
	return false, "built without cgo support"
}

// Init always fails without cgo.
func Init() Result {
	return ERROR_LIBRARY_NOT_FOUND
}

// Shutdown is a no-op without cgo.
func Shutdown() Result {
	return SUCCESS
}

// GetPlatformIDs is unsupported without cgo.
func GetPlatformIDs() ([]Platform, Result) {
	return nil, ERROR_UNINITIALIZED
}

// GetInfoString is unsupported without cgo.
func (p Platform) GetInfoString(param PlatformInfo) (string, Result) {
	return "", ERROR_UNINITIALIZED
}

// GetDeviceIDs is unsupported without cgo.
func (p Platform) GetDeviceIDs(deviceType DeviceType) ([]Device, Result) {
	return nil, ERROR_UNINITIALIZED
}

// GetInfoString is unsupported without cgo.
func (d Device) GetInfoString(param DeviceInfo) (string, Result) {
	return "", ERROR_UNINITIALIZED
}

// GetInfoSize is unsupported without cgo.
func (d Device) GetInfoSize(param DeviceInfo) (uint64, Result) {
	return 0, ERROR_UNINITIALIZED
}

// GetInfoSizes is unsupported without cgo.
func (d Device) GetInfoSizes(param DeviceInfo) ([]uint64, Result) {
	return nil, ERROR_UNINITIALIZED
}
