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

package probe

import (
	"k8s.io/klog/v2"

	"github.com/NVIDIA/opencl-feature-discovery/internal/compat"
	"github.com/NVIDIA/opencl-feature-discovery/internal/resource"
)

// CompatibleDeviceAvailable reports whether at least one device on the host
// meets the policy. Enumeration stops at the first compatible device.
func CompatibleDeviceAvailable(m resource.Manager, policy compat.Policy) (bool, error) {
	var found bool
	err := withManager(m, func() error {
		platforms, err := getPlatforms(m)
		if err != nil {
			return err
		}
		for _, p := range platforms {
			found, err = platformHasCompatibleDevice(p, policy)
			if err != nil || found {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

func platformHasCompatibleDevice(p resource.Platform, policy compat.Policy) (bool, error) {
	platform, err := CollectPlatform(p)
	if err != nil {
		return false, err
	}
	devices, err := getDevices(p)
	if err != nil {
		return false, err
	}
	for _, d := range devices {
		device, err := CollectDevice(d)
		if err != nil {
			return false, err
		}
		if policy.IsCompatible(platform, device) {
			klog.V(4).Infof("Device %q on platform %q is compatible", device.Name, platform.Name)
			return true, nil
		}
		if v := klog.V(4); v.Enabled() {
			v.Infof("Device %q on platform %q is not compatible: %v", device.Name, platform.Name, policy.Violations(platform, device))
		}
	}
	return false, nil
}
