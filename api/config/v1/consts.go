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

package v1

// DefaultLabelPrefix is the domain of the labels generated for a node.
const DefaultLabelPrefix = "feature.node.kubernetes.io"

// Constants representing the device discovery strategies
const (
	DeviceDiscoveryStrategyAuto   = "auto"
	DeviceDiscoveryStrategyOpenCL = "opencl"
	DeviceDiscoveryStrategyNone   = "none"
)

// Defaults for the OpenCL feature discovery daemon
const (
	DefaultOutputFile      = "/etc/kubernetes/node-feature-discovery/features.d/ofd"
	DefaultMachineTypeFile = "/sys/class/dmi/id/product_name"
	DefaultICDVendorDir    = "/etc/OpenCL/vendors"
)

// Command line flag names - Common flags
const (
	FlagFailOnInitError         = "fail-on-init-error"
	FlagUseNodeFeatureAPI       = "use-node-feature-api"
	FlagDeviceDiscoveryStrategy = "device-discovery-strategy"
	FlagLabelPrefix             = "label-prefix"
	FlagConfigFile              = "config-file"
)

// Command line flag names - OFD specific flags
const (
	FlagOneshot         = "oneshot"
	FlagNoTimestamp     = "no-timestamp"
	FlagSleepInterval   = "sleep-interval"
	FlagOutputFile      = "output-file"
	FlagMachineTypeFile = "machine-type-file"
	FlagICDVendorDir    = "icd-vendor-dir"
)

// Command line flag names - Kubernetes client flags
const (
	FlagKubeconfig = "kubeconfig"
	FlagNodeName   = "node-name"
	FlagNamespace  = "namespace"
)
