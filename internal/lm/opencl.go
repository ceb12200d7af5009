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

package lm

import (
	"fmt"
	"strconv"

	"k8s.io/klog/v2"

	spec "github.com/NVIDIA/opencl-feature-discovery/api/config/v1"
	"github.com/NVIDIA/opencl-feature-discovery/internal/compat"
	"github.com/NVIDIA/opencl-feature-discovery/internal/probe"
	"github.com/NVIDIA/opencl-feature-discovery/internal/resource"
)

// NewOpenCLLabeler probes the OpenCL devices of the node and returns the
// labels describing whether a compatible device is present.
// The probe runs once, when the labeler is constructed.
func NewOpenCLLabeler(manager resource.Manager, policy compat.Policy, config *spec.Config) (Labeler, error) {
	report, err := probe.Collect(manager, policy)
	if err != nil {
		return nil, fmt.Errorf("error probing OpenCL devices: %w", err)
	}

	if len(report.Platforms) == 0 {
		klog.Warning("No OpenCL platforms detected")
	}

	prefix := config.Flags.GetLabelPrefix()
	l := Labels{
		prefix + "/opencl.compatible":              strconv.FormatBool(report.Compatible()),
		prefix + "/opencl.platform.count":          strconv.Itoa(len(report.Platforms)),
		prefix + "/opencl.device.count":            strconv.Itoa(report.DeviceCount()),
		prefix + "/opencl.compatible-device.count": strconv.Itoa(report.CompatibleDeviceCount()),
	}
	return l, nil
}
