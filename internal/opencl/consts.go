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

import "fmt"

// Result represents the cl_int status returned by OpenCL calls.
type Result int32

const (
	SUCCESS                         Result = 0
	DEVICE_NOT_FOUND                Result = -1
	DEVICE_NOT_AVAILABLE            Result = -2
	COMPILER_NOT_AVAILABLE          Result = -3
	MEM_OBJECT_ALLOCATION_FAILURE   Result = -4
	OUT_OF_RESOURCES                Result = -5
	OUT_OF_HOST_MEMORY              Result = -6
	PROFILING_INFO_NOT_AVAILABLE    Result = -7
	MEM_COPY_OVERLAP                Result = -8
	IMAGE_FORMAT_MISMATCH           Result = -9
	IMAGE_FORMAT_NOT_SUPPORTED      Result = -10
	BUILD_PROGRAM_FAILURE           Result = -11
	MAP_FAILURE                     Result = -12
	INVALID_VALUE                   Result = -30
	INVALID_DEVICE_TYPE             Result = -31
	INVALID_PLATFORM                Result = -32
	INVALID_DEVICE                  Result = -33
	INVALID_CONTEXT                 Result = -34
	INVALID_QUEUE_PROPERTIES        Result = -35
	INVALID_COMMAND_QUEUE           Result = -36
	INVALID_HOST_PTR                Result = -37
	INVALID_MEM_OBJECT              Result = -38
	INVALID_IMAGE_FORMAT_DESCRIPTOR Result = -39
	INVALID_IMAGE_SIZE              Result = -40
	INVALID_SAMPLER                 Result = -41
	INVALID_BINARY                  Result = -42
	INVALID_BUILD_OPTIONS           Result = -43
	INVALID_PROGRAM                 Result = -44
	INVALID_PROGRAM_EXECUTABLE      Result = -45
	INVALID_KERNEL_NAME             Result = -46
	INVALID_KERNEL_DEFINITION       Result = -47
	INVALID_KERNEL                  Result = -48
	INVALID_ARG_INDEX               Result = -49
	INVALID_ARG_VALUE               Result = -50
	INVALID_ARG_SIZE                Result = -51
	INVALID_KERNEL_ARGS             Result = -52
	INVALID_WORK_DIMENSION          Result = -53
	INVALID_WORK_GROUP_SIZE         Result = -54
	INVALID_WORK_ITEM_SIZE          Result = -55
	INVALID_GLOBAL_OFFSET           Result = -56
	INVALID_EVENT_WAIT_LIST         Result = -57
	INVALID_EVENT                   Result = -58
	INVALID_OPERATION               Result = -59
	INVALID_GL_OBJECT               Result = -60
	INVALID_BUFFER_SIZE             Result = -61
	INVALID_MIP_LEVEL               Result = -62
	PLATFORM_NOT_FOUND_KHR          Result = -1001

	// ERROR_LIBRARY_NOT_FOUND is not an OpenCL status. It is returned when the
	// ICD loader could not be opened or a required symbol is missing.
	ERROR_LIBRARY_NOT_FOUND Result = -9999
	// ERROR_UNINITIALIZED is returned when a call is made before Init.
	ERROR_UNINITIALIZED Result = -9998
)

var resultNames = map[Result]string{
	SUCCESS:                         "CL_SUCCESS",
	DEVICE_NOT_FOUND:                "CL_DEVICE_NOT_FOUND",
	DEVICE_NOT_AVAILABLE:            "CL_DEVICE_NOT_AVAILABLE",
	COMPILER_NOT_AVAILABLE:          "CL_COMPILER_NOT_AVAILABLE",
	MEM_OBJECT_ALLOCATION_FAILURE:   "CL_MEM_OBJECT_ALLOCATION_FAILURE",
	OUT_OF_RESOURCES:                "CL_OUT_OF_RESOURCES",
	OUT_OF_HOST_MEMORY:              "CL_OUT_OF_HOST_MEMORY",
	PROFILING_INFO_NOT_AVAILABLE:    "CL_PROFILING_INFO_NOT_AVAILABLE",
	MEM_COPY_OVERLAP:                "CL_MEM_COPY_OVERLAP",
	IMAGE_FORMAT_MISMATCH:           "CL_IMAGE_FORMAT_MISMATCH",
	IMAGE_FORMAT_NOT_SUPPORTED:      "CL_IMAGE_FORMAT_NOT_SUPPORTED",
	BUILD_PROGRAM_FAILURE:           "CL_BUILD_PROGRAM_FAILURE",
	MAP_FAILURE:                     "CL_MAP_FAILURE",
	INVALID_VALUE:                   "CL_INVALID_VALUE",
	INVALID_DEVICE_TYPE:             "CL_INVALID_DEVICE_TYPE",
	INVALID_PLATFORM:                "CL_INVALID_PLATFORM",
	INVALID_DEVICE:                  "CL_INVALID_DEVICE",
	INVALID_CONTEXT:                 "CL_INVALID_CONTEXT",
	INVALID_QUEUE_PROPERTIES:        "CL_INVALID_QUEUE_PROPERTIES",
	INVALID_COMMAND_QUEUE:           "CL_INVALID_COMMAND_QUEUE",
	INVALID_HOST_PTR:                "CL_INVALID_HOST_PTR",
	INVALID_MEM_OBJECT:              "CL_INVALID_MEM_OBJECT",
	INVALID_IMAGE_FORMAT_DESCRIPTOR: "CL_INVALID_IMAGE_FORMAT_DESCRIPTOR",
	INVALID_IMAGE_SIZE:              "CL_INVALID_IMAGE_SIZE",
	INVALID_SAMPLER:                 "CL_INVALID_SAMPLER",
	INVALID_BINARY:                  "CL_INVALID_BINARY",
	INVALID_BUILD_OPTIONS:           "CL_INVALID_BUILD_OPTIONS",
	INVALID_PROGRAM:                 "CL_INVALID_PROGRAM",
	INVALID_PROGRAM_EXECUTABLE:      "CL_INVALID_PROGRAM_EXECUTABLE",
	INVALID_KERNEL_NAME:             "CL_INVALID_KERNEL_NAME",
	INVALID_KERNEL_DEFINITION:       "CL_INVALID_KERNEL_DEFINITION",
	INVALID_KERNEL:                  "CL_INVALID_KERNEL",
	INVALID_ARG_INDEX:               "CL_INVALID_ARG_INDEX",
	INVALID_ARG_VALUE:               "CL_INVALID_ARG_VALUE",
	INVALID_ARG_SIZE:                "CL_INVALID_ARG_SIZE",
	INVALID_KERNEL_ARGS:             "CL_INVALID_KERNEL_ARGS",
	INVALID_WORK_DIMENSION:          "CL_INVALID_WORK_DIMENSION",
	INVALID_WORK_GROUP_SIZE:         "CL_INVALID_WORK_GROUP_SIZE",
	INVALID_WORK_ITEM_SIZE:          "CL_INVALID_WORK_ITEM_SIZE",
	INVALID_GLOBAL_OFFSET:           "CL_INVALID_GLOBAL_OFFSET",
	INVALID_EVENT_WAIT_LIST:         "CL_INVALID_EVENT_WAIT_LIST",
	INVALID_EVENT:                   "CL_INVALID_EVENT",
	INVALID_OPERATION:               "CL_INVALID_OPERATION",
	INVALID_GL_OBJECT:               "CL_INVALID_GL_OBJECT",
	INVALID_BUFFER_SIZE:             "CL_INVALID_BUFFER_SIZE",
	INVALID_MIP_LEVEL:               "CL_INVALID_MIP_LEVEL",
	PLATFORM_NOT_FOUND_KHR:          "CL_PLATFORM_NOT_FOUND_KHR",
	ERROR_LIBRARY_NOT_FOUND:         "ERROR_LIBRARY_NOT_FOUND",
	ERROR_UNINITIALIZED:             "ERROR_UNINITIALIZED",
}

// String returns the symbolic name of the result.
func (r Result) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return fmt.Sprintf("CL_UNKNOWN_ERROR(%d)", int32(r))
}

// Error allows a Result to be returned as an error.
func (r Result) Error() string {
	return r.String()
}

// PlatformInfo represents the cl_platform_info type
type PlatformInfo uint32

const (
	PLATFORM_PROFILE    PlatformInfo = 0x0900
	PLATFORM_VERSION    PlatformInfo = 0x0901
	PLATFORM_NAME       PlatformInfo = 0x0902
	PLATFORM_VENDOR     PlatformInfo = 0x0903
	PLATFORM_EXTENSIONS PlatformInfo = 0x0904
)

// DeviceInfo represents the cl_device_info type
type DeviceInfo uint32

const (
	DEVICE_TYPE                     DeviceInfo = 0x1000
	DEVICE_MAX_COMPUTE_UNITS        DeviceInfo = 0x1002
	DEVICE_MAX_WORK_ITEM_DIMENSIONS DeviceInfo = 0x1003
	DEVICE_MAX_WORK_GROUP_SIZE      DeviceInfo = 0x1004
	DEVICE_MAX_WORK_ITEM_SIZES      DeviceInfo = 0x1005
	DEVICE_NAME                     DeviceInfo = 0x102B
	DEVICE_VENDOR                   DeviceInfo = 0x102C
	DRIVER_VERSION                  DeviceInfo = 0x102D
	DEVICE_PROFILE                  DeviceInfo = 0x102E
	DEVICE_VERSION                  DeviceInfo = 0x102F
)

// DeviceType represents the cl_device_type bitfield
type DeviceType uint64

const (
	DEVICE_TYPE_DEFAULT     DeviceType = 1 << 0
	DEVICE_TYPE_CPU         DeviceType = 1 << 1
	DEVICE_TYPE_GPU         DeviceType = 1 << 2
	DEVICE_TYPE_ACCELERATOR DeviceType = 1 << 3
	DEVICE_TYPE_ALL         DeviceType = 0xFFFFFFFF
)
