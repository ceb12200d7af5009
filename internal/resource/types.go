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

//go:generate moq -out manager_mock.go . Manager
//go:generate moq -out platform_mock.go . Platform
//go:generate moq -out device_mock.go . Device

// Manager defines an interface for enumerating the compute platforms on a node.
type Manager interface {
	Init() error
	Shutdown() error
	GetPlatforms() ([]Platform, error)
}

// Platform defines an interface for a compute platform (an installed OpenCL ICD).
type Platform interface {
	GetProfile() (string, error)
	GetName() (string, error)
	GetVendor() (string, error)
	GetVersion() (string, error)
	GetDevices() ([]Device, error)
}

// Device defines an interface for a device exposed by a Platform.
type Device interface {
	GetProfile() (string, error)
	GetName() (string, error)
	GetVersion() (string, error)
	GetDriverVersion() (string, error)
	GetMaxWorkGroupSize() (uint64, error)
	GetMaxWorkItemSizes() ([]uint64, error)
}
