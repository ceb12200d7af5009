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
)

// Policy is the minimum capability profile a device must meet.
type Policy struct {
	MinComputeVersion float64
	PlatformProfile   string
	DeviceProfile     string
	MinWorkGroupSize  uint64
	MinWorkItemSizes  WorkItemSizes
}

// DefaultPolicy returns the capability floor required by the optical-flow pipeline.
func DefaultPolicy() Policy {
	return Policy{
		MinComputeVersion: 1.2,
		PlatformProfile:   FullProfile,
		DeviceProfile:     FullProfile,
		MinWorkGroupSize:  256,
		MinWorkItemSizes:  WorkItemSizes{256, 8, 1},
	}
}

type check struct {
	name string
	fn   func(p Policy, platform *PlatformDescriptor, device *DeviceDescriptor) error
}

var checks = []check{
	{"compute-version", checkComputeVersion},
	{"platform-profile", checkPlatformProfile},
	{"device-profile", checkDeviceProfile},
	{"work-group-size", checkWorkGroupSize},
	{"work-item-sizes", checkWorkItemSizes},
}

// IsCompatible reports whether the device on the given platform meets the policy.
func (p Policy) IsCompatible(platform *PlatformDescriptor, device *DeviceDescriptor) bool {
	for _, c := range checks {
		if c.fn(p, platform, device) != nil {
			return false
		}
	}
	return true
}

// Violations returns a description of every constraint the device fails.
// An empty result means the device is compatible.
func (p Policy) Violations(platform *PlatformDescriptor, device *DeviceDescriptor) []string {
	var violations []string
	for _, c := range checks {
		if err := c.fn(p, platform, device); err != nil {
			violations = append(violations, fmt.Sprintf("%s: %v", c.name, err))
		}
	}
	return violations
}

func checkComputeVersion(p Policy, _ *PlatformDescriptor, device *DeviceDescriptor) error {
	if v := device.ComputeVersion(); v < p.MinComputeVersion {
		return fmt.Errorf("version %v (%q) below %v", v, device.Version, p.MinComputeVersion)
	}
	return nil
}

func checkPlatformProfile(p Policy, platform *PlatformDescriptor, _ *DeviceDescriptor) error {
	if platform.Profile != p.PlatformProfile {
		return fmt.Errorf("platform profile %q is not %q", platform.Profile, p.PlatformProfile)
	}
	return nil
}

func checkDeviceProfile(p Policy, _ *PlatformDescriptor, device *DeviceDescriptor) error {
	if device.Profile != p.DeviceProfile {
		return fmt.Errorf("device profile %q is not %q", device.Profile, p.DeviceProfile)
	}
	return nil
}

func checkWorkGroupSize(p Policy, _ *PlatformDescriptor, device *DeviceDescriptor) error {
	if device.MaxWorkGroupSize < p.MinWorkGroupSize {
		return fmt.Errorf("max work-group size %d below %d", device.MaxWorkGroupSize, p.MinWorkGroupSize)
	}
	return nil
}

// checkWorkItemSizes compares each dimension against the floor at the same index.
func checkWorkItemSizes(p Policy, _ *PlatformDescriptor, device *DeviceDescriptor) error {
	for i, floor := range p.MinWorkItemSizes {
		if device.MaxWorkItemSizes[i] < floor {
			return fmt.Errorf("max work-item size %d in dimension %d below %d", device.MaxWorkItemSizes[i], i, floor)
		}
	}
	return nil
}
