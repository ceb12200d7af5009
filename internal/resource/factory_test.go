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
	"testing"

	"github.com/stretchr/testify/require"

	spec "github.com/NVIDIA/opencl-feature-discovery/api/config/v1"
)

func TestDetectManager(t *testing.T) {
	testCases := []struct {
		description string
		available   bool
		expected    Manager
	}{
		{
			description: "opencl available",
			available:   true,
			expected:    NewOpenCLManager(),
		},
		{
			description: "opencl unavailable",
			available:   false,
			expected:    NewNullManager(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			m := detectManager(func() (bool, string) {
				return tc.available, "mocked"
			})
			require.IsType(t, tc.expected, m)
		})
	}
}

func TestNewManager(t *testing.T) {
	ptr := func(s string) *string { return &s }
	boolPtr := func(b bool) *bool { return &b }

	testCases := []struct {
		description   string
		config        spec.Config
		expectedError bool
		expected      Manager
	}{
		{
			description: "strategy none",
			config: spec.Config{Flags: spec.Flags{CommandLineFlags: spec.CommandLineFlags{
				DeviceDiscoveryStrategy: ptr(spec.DeviceDiscoveryStrategyNone),
				FailOnInitError:         boolPtr(true),
			}}},
			expected: NewNullManager(),
		},
		{
			description: "strategy opencl",
			config: spec.Config{Flags: spec.Flags{CommandLineFlags: spec.CommandLineFlags{
				DeviceDiscoveryStrategy: ptr(spec.DeviceDiscoveryStrategyOpenCL),
				FailOnInitError:         boolPtr(true),
			}}},
			expected: NewOpenCLManager(),
		},
		{
			description: "fallback wrapper without fail-on-init-error",
			config: spec.Config{Flags: spec.Flags{CommandLineFlags: spec.CommandLineFlags{
				DeviceDiscoveryStrategy: ptr(spec.DeviceDiscoveryStrategyOpenCL),
				FailOnInitError:         boolPtr(false),
			}}},
			expected: NewFallbackToNullOnInitError(NewOpenCLManager()),
		},
		{
			description: "invalid strategy",
			config: spec.Config{Flags: spec.Flags{CommandLineFlags: spec.CommandLineFlags{
				DeviceDiscoveryStrategy: ptr("vulkan"),
			}}},
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			m, err := NewManager(&tc.config)
			if tc.expectedError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.IsType(t, tc.expected, m)
		})
	}
}
