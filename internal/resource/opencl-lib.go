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

type openclLib struct{}

var _ Manager = (*openclLib)(nil)

// NewOpenCLManager returns a resource manager that queries the OpenCL ICD loader.
func NewOpenCLManager() Manager {
	return &openclLib{}
}

// Init loads the OpenCL ICD loader.
func (l *openclLib) Init() error {
	r := opencl.Init()
	if r != opencl.SUCCESS {
		return fmt.Errorf("failed to load OpenCL library: %w", r)
	}
	return nil
}

// Shutdown unloads the OpenCL ICD loader.
func (l *openclLib) Shutdown() error {
	r := opencl.Shutdown()
	if r != opencl.SUCCESS {
		return fmt.Errorf("failed to unload OpenCL library: %w", r)
	}
	return nil
}

// GetPlatforms returns the OpenCL platforms in the order reported by the ICD loader.
func (l *openclLib) GetPlatforms() ([]Platform, error) {
	ids, r := opencl.GetPlatformIDs()
	if r != opencl.SUCCESS {
		return nil, fmt.Errorf("failed to get OpenCL platforms: %w", r)
	}

	var platforms []Platform
	for _, id := range ids {
		platforms = append(platforms, openclPlatform(id))
	}
	return platforms, nil
}
