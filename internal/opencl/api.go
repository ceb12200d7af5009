//go:build cgo

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

import (
	"unsafe"

	"github.com/NVIDIA/go-nvml/pkg/dl"
)

const (
	libraryName      = "libOpenCL.so.1"
	libraryLoadFlags = dl.RTLD_LAZY | dl.RTLD_GLOBAL
)

// requiredSymbols lists the entry points that must be exported by the ICD loader.
var requiredSymbols = []string{
	"clGetPlatformIDs",
	"clGetPlatformInfo",
	"clGetDeviceIDs",
	"clGetDeviceInfo",
}

// opencl stores a reference to the OpenCL ICD loader
var opencl *dl.DynamicLibrary

// IsAvailable checks whether the OpenCL ICD loader can be loaded on this system.
func IsAvailable() (bool, string) {
	lib := dl.New(libraryName, libraryLoadFlags)
	if err := lib.Open(); err != nil {
		return false, err.Error()
	}
	defer lib.Close()

	return true, "found " + libraryName
}

// Init loads the OpenCL ICD loader and checks that the required symbols are present.
func Init() Result {
	if opencl != nil {
		return SUCCESS
	}

	lib := dl.New(libraryName, libraryLoadFlags)
	if err := lib.Open(); err != nil {
		return ERROR_LIBRARY_NOT_FOUND
	}

	for _, symbol := range requiredSymbols {
		if err := lib.Lookup(symbol); err != nil {
			_ = lib.Close()
			return ERROR_LIBRARY_NOT_FOUND
		}
	}
	opencl = lib

	return SUCCESS
}

// Shutdown ensures that the OpenCL library is unloaded.
func Shutdown() Result {
	if opencl == nil {
		return SUCCESS
	}
	lib := opencl
	opencl = nil
	if err := lib.Close(); err != nil {
		return ERROR_UNINITIALIZED
	}
	return SUCCESS
}

// GetPlatformIDs returns the platforms exposed by the installed ICDs.
// A loader without any vendor ICDs reports PLATFORM_NOT_FOUND_KHR; this is
// returned as an empty list.
func GetPlatformIDs() ([]Platform, Result) {
	if opencl == nil {
		return nil, ERROR_UNINITIALIZED
	}

	var count uint32
	r := clGetPlatformIDs(0, nil, &count)
	if r == PLATFORM_NOT_FOUND_KHR {
		return nil, SUCCESS
	}
	if r != SUCCESS {
		return nil, r
	}
	if count == 0 {
		return nil, SUCCESS
	}

	platforms := make([]Platform, count)
	r = clGetPlatformIDs(count, &platforms[0], nil)
	if r != SUCCESS {
		return nil, r
	}
	return platforms, SUCCESS
}

// GetInfoString returns the specified string attribute of the platform.
func (p Platform) GetInfoString(param PlatformInfo) (string, Result) {
	if opencl == nil {
		return "", ERROR_UNINITIALIZED
	}

	var size uintptr
	r := clGetPlatformInfo(p, param, 0, nil, &size)
	if r != SUCCESS {
		return "", r
	}
	if size == 0 {
		return "", SUCCESS
	}

	buffer := make([]byte, size)
	r = clGetPlatformInfo(p, param, size, unsafe.Pointer(&buffer[0]), nil)
	if r != SUCCESS {
		return "", r
	}
	return string(buffer[:clen(buffer)]), SUCCESS
}

// GetDeviceIDs returns the devices of the specified type for the platform.
// A platform without matching devices reports DEVICE_NOT_FOUND; this is
// returned as an empty list.
func (p Platform) GetDeviceIDs(deviceType DeviceType) ([]Device, Result) {
	if opencl == nil {
		return nil, ERROR_UNINITIALIZED
	}

	var count uint32
	r := clGetDeviceIDs(p, deviceType, 0, nil, &count)
	if r == DEVICE_NOT_FOUND {
		return nil, SUCCESS
	}
	if r != SUCCESS {
		return nil, r
	}
	if count == 0 {
		return nil, SUCCESS
	}

	devices := make([]Device, count)
	r = clGetDeviceIDs(p, deviceType, count, &devices[0], nil)
	if r != SUCCESS {
		return nil, r
	}
	return devices, SUCCESS
}

// GetInfoString returns the specified string attribute of the device.
func (d Device) GetInfoString(param DeviceInfo) (string, Result) {
	if opencl == nil {
		return "", ERROR_UNINITIALIZED
	}

	var size uintptr
	r := clGetDeviceInfo(d, param, 0, nil, &size)
	if r != SUCCESS {
		return "", r
	}
	if size == 0 {
		return "", SUCCESS
	}

	buffer := make([]byte, size)
	r = clGetDeviceInfo(d, param, size, unsafe.Pointer(&buffer[0]), nil)
	if r != SUCCESS {
		return "", r
	}
	return string(buffer[:clen(buffer)]), SUCCESS
}

// GetInfoSize returns the specified size_t attribute of the device.
func (d Device) GetInfoSize(param DeviceInfo) (uint64, Result) {
	if opencl == nil {
		return 0, ERROR_UNINITIALIZED
	}

	var value uintptr
	r := clGetDeviceInfo(d, param, unsafe.Sizeof(value), unsafe.Pointer(&value), nil)
	if r != SUCCESS {
		return 0, r
	}
	return uint64(value), SUCCESS
}

// GetInfoSizes returns the specified size_t[] attribute of the device.
func (d Device) GetInfoSizes(param DeviceInfo) ([]uint64, Result) {
	if opencl == nil {
		return nil, ERROR_UNINITIALIZED
	}

	var size uintptr
	r := clGetDeviceInfo(d, param, 0, nil, &size)
	if r != SUCCESS {
		return nil, r
	}

	var element uintptr
	count := int(size / unsafe.Sizeof(element))
	if count == 0 {
		return nil, SUCCESS
	}

	values := make([]uintptr, count)
	r = clGetDeviceInfo(d, param, uintptr(count)*unsafe.Sizeof(element), unsafe.Pointer(&values[0]), nil)
	if r != SUCCESS {
		return nil, r
	}

	sizes := make([]uint64, count)
	for i, v := range values {
		sizes[i] = uint64(v)
	}
	return sizes, SUCCESS
}

// clen returns the length of a NUL-terminated string stored in a byte slice.
func clen(n []byte) int {
	for i := 0; i < len(n); i++ {
		if n[i] == 0 {
			return i
		}
	}
	return len(n)
}
