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
)

/*
#cgo LDFLAGS: -Wl,--unresolved-symbols=ignore-in-object-files

#include <stddef.h>
#include <stdint.h>

typedef int32_t cl_int;
typedef uint32_t cl_uint;
typedef uint64_t cl_ulong;
typedef cl_ulong cl_bitfield;
typedef cl_bitfield cl_device_type;
typedef cl_uint cl_platform_info;
typedef cl_uint cl_device_info;

typedef struct _cl_platform_id *cl_platform_id;
typedef struct _cl_device_id *cl_device_id;

cl_int clGetPlatformIDs(cl_uint num_entries, cl_platform_id *platforms, cl_uint *num_platforms);
cl_int clGetPlatformInfo(cl_platform_id platform, cl_platform_info param_name, size_t param_value_size, void *param_value, size_t *param_value_size_ret);
cl_int clGetDeviceIDs(cl_platform_id platform, cl_device_type device_type, cl_uint num_entries, cl_device_id *devices, cl_uint *num_devices);
cl_int clGetDeviceInfo(cl_device_id device, cl_device_info param_name, size_t param_value_size, void *param_value, size_t *param_value_size_ret);
*/
import "C"

// Platform represents a cl_platform_id handle.
// It has the same layout as cl_platform_id so that slices can be filled in place.
type Platform struct {
	id C.cl_platform_id
}

// Device represents a cl_device_id handle.
// It has the same layout as cl_device_id so that slices can be filled in place.
type Device struct {
	id C.cl_device_id
}

// clGetPlatformIDs function as declared in cl.h
func clGetPlatformIDs(numEntries uint32, platforms *Platform, numPlatforms *uint32) Result {
	cNumEntries := (C.cl_uint)(numEntries)
	cPlatforms := (*C.cl_platform_id)(unsafe.Pointer(platforms))
	cNumPlatforms := (*C.cl_uint)(unsafe.Pointer(numPlatforms))

	_ret := C.clGetPlatformIDs(cNumEntries, cPlatforms, cNumPlatforms)

	return Result(_ret)
}

// clGetPlatformInfo function as declared in cl.h
func clGetPlatformInfo(platform Platform, param PlatformInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Result {
	cParam := (C.cl_platform_info)(param)
	cSize := (C.size_t)(size)
	cSizeRet := (*C.size_t)(unsafe.Pointer(sizeRet))

	_ret := C.clGetPlatformInfo(platform.id, cParam, cSize, value, cSizeRet)

	return Result(_ret)
}

// clGetDeviceIDs function as declared in cl.h
func clGetDeviceIDs(platform Platform, deviceType DeviceType, numEntries uint32, devices *Device, numDevices *uint32) Result {
	cDeviceType := (C.cl_device_type)(deviceType)
	cNumEntries := (C.cl_uint)(numEntries)
	cDevices := (*C.cl_device_id)(unsafe.Pointer(devices))
	cNumDevices := (*C.cl_uint)(unsafe.Pointer(numDevices))

	_ret := C.clGetDeviceIDs(platform.id, cDeviceType, cNumEntries, cDevices, cNumDevices)

	return Result(_ret)
}

// clGetDeviceInfo function as declared in cl.h
func clGetDeviceInfo(device Device, param DeviceInfo, size uintptr, value unsafe.Pointer, sizeRet *uintptr) Result {
	cParam := (C.cl_device_info)(param)
	cSize := (C.size_t)(size)
	cSizeRet := (*C.size_t)(unsafe.Pointer(sizeRet))

	_ret := C.clGetDeviceInfo(device.id, cParam, cSize, value, cSizeRet)

	return Result(_ret)
}
