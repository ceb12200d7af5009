/**
# Copyright (c) 2022, NVIDIA CORPORATION.  All rights reserved.
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

	"k8s.io/klog/v2"

	spec "github.com/NVIDIA/opencl-feature-discovery/api/config/v1"
	"github.com/NVIDIA/opencl-feature-discovery/internal/opencl"
)

// NewManager is a factory method that creates a resource Manager based on the specified config.
func NewManager(config *spec.Config) (Manager, error) {
	manager, err := getManager(config)
	if err != nil {
		return nil, err
	}
	return WithConfig(manager, config), nil
}

// WithConfig modifies a manager depending on the specified config.
// If failure on a call to init is allowed, the manager is wrapped to allow fallback to a Null manager.
func WithConfig(manager Manager, config *spec.Config) Manager {
	if config.Flags.FailOnInitError == nil || *config.Flags.FailOnInitError {
		return manager
	}

	return NewFallbackToNullOnInitError(manager)
}

// getManager returns the resource manager depending on the configured discovery strategy.
func getManager(config *spec.Config) (Manager, error) {
	strategy := spec.DeviceDiscoveryStrategyAuto
	if config.Flags.DeviceDiscoveryStrategy != nil {
		strategy = *config.Flags.DeviceDiscoveryStrategy
	}

	switch strategy {
	case spec.DeviceDiscoveryStrategyAuto:
		return detectManager(opencl.IsAvailable), nil
	case spec.DeviceDiscoveryStrategyOpenCL:
		klog.Info("Using OpenCL manager")
		return NewOpenCLManager(), nil
	case spec.DeviceDiscoveryStrategyNone:
		klog.Info("Using empty manager")
		return NewNullManager(), nil
	}
	return nil, fmt.Errorf("invalid device discovery strategy %q", strategy)
}

// detectManager selects the OpenCL manager if the ICD loader can be loaded.
func detectManager(isAvailable func() (bool, string)) Manager {
	has, reason := isAvailable()
	tag := "OpenCL"
	if !has {
		tag = "non-" + tag
	}
	klog.Infof("Detected %v platform: %v", tag, reason)

	if has {
		klog.Info("Using OpenCL manager")
		return NewOpenCLManager()
	}

	klog.Warning("No OpenCL runtime detected; using empty manager.")
	return NewNullManager()
}
