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

package compat

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// FullProfile is the profile string reported by platforms and devices
	// implementing the full OpenCL feature set.
	FullProfile = "FULL_PROFILE"

	versionPrefix = "OpenCL "
)

// WorkItemSizes holds the maximum number of work-items per dimension.
// Comparisons are positional: index 0 is the first dimension.
type WorkItemSizes [3]uint64

// NewWorkItemSizes builds a WorkItemSizes from the values reported by a device.
// Values past the third dimension are ignored and missing dimensions are zero.
func NewWorkItemSizes(sizes []uint64) WorkItemSizes {
	var w WorkItemSizes
	copy(w[:], sizes)
	return w
}

// String renders the sizes as XxYxZ.
func (w WorkItemSizes) String() string {
	return fmt.Sprintf("%dx%dx%d", w[0], w[1], w[2])
}

// PlatformDescriptor holds the attributes of an OpenCL platform.
type PlatformDescriptor struct {
	Profile string
	Name    string
	Vendor  string
	Version string
}

// DeviceDescriptor holds the attributes of an OpenCL device.
type DeviceDescriptor struct {
	Profile          string
	Name             string
	Version          string
	DriverVersion    string
	MaxWorkGroupSize uint64
	MaxWorkItemSizes WorkItemSizes
}

// ComputeVersion returns the numeric OpenCL version of the device.
func (d *DeviceDescriptor) ComputeVersion() float64 {
	return ParseComputeVersion(d.Version)
}

// ParseComputeVersion extracts the numeric version from a device version
// string of the form "OpenCL <major>.<minor> <vendor-specific>".
// Strings without the "OpenCL " prefix, or whose version token is not a
// number, yield 0.
func ParseComputeVersion(version string) float64 {
	rest, found := strings.CutPrefix(version, versionPrefix)
	if !found {
		return 0
	}
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0
	}
	return v
}
