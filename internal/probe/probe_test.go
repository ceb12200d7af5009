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
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"k8s.io/klog/v2"

	"github.com/NVIDIA/opencl-feature-discovery/internal/compat"
	"github.com/NVIDIA/opencl-feature-discovery/internal/resource"
	rt "github.com/NVIDIA/opencl-feature-discovery/internal/resource/testing"
)

var errMock = errors.New("CL_INVALID_VALUE")

func newIncompatibleDevice() *rt.DeviceMock {
	return rt.NewDeviceMock("MOCKCPU", "OpenCL 1.1 pocl", 4096, 4096, 4096, 4096)
}

// failingAt returns a host with one compatible device where the named query fails.
func failingAt(query string) *rt.ManagerMock {
	device := rt.NewCompatibleDevice()
	platform := rt.NewPlatformMock("MOCKPLATFORM", device)
	manager := rt.NewManagerMockWithPlatforms(platform)

	switch query {
	case "init":
		manager.WithErrorOnInit(errMock)
	case "platform list":
		manager.GetPlatformsFunc = func() ([]resource.Platform, error) { return nil, errMock }
	case "platform profile":
		platform.GetProfileFunc = func() (string, error) { return "", errMock }
	case "platform name":
		platform.GetNameFunc = func() (string, error) { return "", errMock }
	case "platform vendor":
		platform.GetVendorFunc = func() (string, error) { return "", errMock }
	case "platform version":
		platform.GetVersionFunc = func() (string, error) { return "", errMock }
	case "device list":
		platform.GetDevicesFunc = func() ([]resource.Device, error) { return nil, errMock }
	case "device profile":
		device.GetProfileFunc = func() (string, error) { return "", errMock }
	case "device name":
		device.GetNameFunc = func() (string, error) { return "", errMock }
	case "device version":
		device.GetVersionFunc = func() (string, error) { return "", errMock }
	case "driver version":
		device.GetDriverVersionFunc = func() (string, error) { return "", errMock }
	case "max work-group size":
		device.GetMaxWorkGroupSizeFunc = func() (uint64, error) { return 0, errMock }
	case "max work-item sizes":
		device.GetMaxWorkItemSizesFunc = func() ([]uint64, error) { return nil, errMock }
	}
	return manager
}

var failingQueries = []string{
	"platform list",
	"platform profile",
	"platform name",
	"platform vendor",
	"platform version",
	"device list",
	"device profile",
	"device name",
	"device version",
	"driver version",
	"max work-group size",
	"max work-item sizes",
}

func TestCompatibleDeviceAvailable(t *testing.T) {
	testCases := []struct {
		description string
		manager     *rt.ManagerMock
		expected    bool
	}{
		{
			description: "no platforms",
			manager:     rt.NewManagerMockWithPlatforms(),
			expected:    false,
		},
		{
			description: "platform without devices",
			manager:     rt.NewManagerMockWithPlatforms(rt.NewPlatformMock("EMPTY")),
			expected:    false,
		},
		{
			description: "single compatible device",
			manager: rt.NewManagerMockWithPlatforms(
				rt.NewPlatformMock("MOCKPLATFORM", rt.NewCompatibleDevice()),
			),
			expected: true,
		},
		{
			description: "all devices incompatible",
			manager: rt.NewManagerMockWithPlatforms(
				rt.NewPlatformMock("MOCKPLATFORM", newIncompatibleDevice(), newIncompatibleDevice()),
			),
			expected: false,
		},
		{
			description: "embedded platform",
			manager: rt.NewManagerMockWithPlatforms(
				rt.NewPlatformMock("MOCKPLATFORM", rt.NewCompatibleDevice()).WithProfile("EMBEDDED_PROFILE"),
			),
			expected: false,
		},
		{
			description: "compatible device on second platform",
			manager: rt.NewManagerMockWithPlatforms(
				rt.NewPlatformMock("CPU", newIncompatibleDevice()),
				rt.NewPlatformMock("GPU", rt.NewCompatibleDevice()),
			),
			expected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			compatible, err := CompatibleDeviceAvailable(tc.manager, compat.DefaultPolicy())
			require.NoError(t, err)
			require.Equal(t, tc.expected, compatible)
			require.Len(t, tc.manager.InitCalls(), 1)
			require.Len(t, tc.manager.ShutdownCalls(), 1)
		})
	}
}

func TestCompatibleDeviceAvailableStopsAtFirstMatch(t *testing.T) {
	first := newIncompatibleDevice()
	second := rt.NewCompatibleDevice()
	third := rt.NewCompatibleDevice()
	laterPlatform := rt.NewPlatformMock("LATER", rt.NewCompatibleDevice())

	manager := rt.NewManagerMockWithPlatforms(
		rt.NewPlatformMock("MOCKPLATFORM", first, second, third),
		laterPlatform,
	)

	compatible, err := CompatibleDeviceAvailable(manager, compat.DefaultPolicy())
	require.NoError(t, err)
	require.True(t, compatible)

	require.Len(t, first.GetNameCalls(), 1)
	require.Len(t, second.GetNameCalls(), 1)
	require.Len(t, third.GetNameCalls(), 0)
	require.Len(t, laterPlatform.GetDevicesCalls(), 0)
}

func TestCompatibleDeviceAvailableLogsViolations(t *testing.T) {
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	require.NoError(t, fs.Set("logtostderr", "false"))
	require.NoError(t, fs.Set("stderrthreshold", "FATAL"))
	t.Cleanup(func() {
		_ = fs.Set("v", "0")
		_ = fs.Set("logtostderr", "true")
		klog.SetOutput(nil)
	})

	testCases := []struct {
		description string
		verbosity   string
		expected    bool
	}{
		{
			description: "verbosity 4 logs failed checks",
			verbosity:   "4",
			expected:    true,
		},
		{
			description: "default verbosity logs nothing",
			verbosity:   "0",
			expected:    false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			require.NoError(t, fs.Set("v", tc.verbosity))
			buf := new(bytes.Buffer)
			klog.SetOutput(buf)

			manager := rt.NewManagerMockWithPlatforms(
				rt.NewPlatformMock("MOCKPLATFORM", newIncompatibleDevice()),
			)
			compatible, err := CompatibleDeviceAvailable(manager, compat.DefaultPolicy())
			require.NoError(t, err)
			require.False(t, compatible)

			klog.Flush()
			require.Equal(t, tc.expected, strings.Contains(buf.String(), "compute-version"))
		})
	}
}

func TestCompatibleDeviceAvailableQueryFailure(t *testing.T) {
	for _, query := range append([]string{"init"}, failingQueries...) {
		t.Run(query, func(t *testing.T) {
			manager := failingAt(query)

			compatible, err := CompatibleDeviceAvailable(manager, compat.DefaultPolicy())
			require.ErrorIs(t, err, ErrCapabilityQuery)
			require.ErrorContains(t, err, query)
			require.False(t, compatible)

			if query != "init" {
				require.Len(t, manager.ShutdownCalls(), 1)
			}
		})
	}
}

func TestShutdownFailure(t *testing.T) {
	manager := rt.NewManagerMockWithPlatforms(rt.NewPlatformMock("MOCKPLATFORM", rt.NewCompatibleDevice()))
	manager.ShutdownFunc = func() error { return errMock }

	_, err := CompatibleDeviceAvailable(manager, compat.DefaultPolicy())
	require.ErrorIs(t, err, ErrCapabilityQuery)

	manager.GetPlatformsFunc = func() ([]resource.Platform, error) { return nil, errors.New("first failure") }
	_, err = CompatibleDeviceAvailable(manager, compat.DefaultPolicy())
	require.ErrorContains(t, err, "first failure")
}

func TestWriteReport(t *testing.T) {
	testCases := []struct {
		description string
		manager     *rt.ManagerMock
		expected    string
	}{
		{
			description: "no platforms",
			manager:     rt.NewManagerMockWithPlatforms(),
			expected:    NoDevicesMessage + "\n",
		},
		{
			description: "platform without devices",
			manager:     rt.NewManagerMockWithPlatforms(rt.NewPlatformMock("EMPTY")),
			expected: "OpenCL devices:\n" +
				"  Platform          \t: EMPTY\n" +
				"  Platform Vendor   \t: MOCKVENDOR\n" +
				"  Platform Version  \t: OpenCL 3.0 MOCK\n",
		},
		{
			description: "compatible and incompatible devices",
			manager: rt.NewManagerMockWithPlatforms(
				rt.NewPlatformMock("MOCKPLATFORM", rt.NewCompatibleDevice(), newIncompatibleDevice()),
			),
			expected: "OpenCL devices:\n" +
				"  Platform          \t: MOCKPLATFORM\n" +
				"  Platform Vendor   \t: MOCKVENDOR\n" +
				"  Platform Version  \t: OpenCL 3.0 MOCK\n" +
				"    Device     \t\t: MOCKDEVICE\n" +
				"      Version  \t\t: OpenCL 3.0 CUDA\n" +
				"      Driver   \t\t: 550.54.14\n" +
				"      Work Size\t\t: 1024, 1024x1024x64\n" +
				"      Compatible\t: Yes\n" +
				"    Device     \t\t: MOCKCPU\n" +
				"      Version  \t\t: OpenCL 1.1 pocl\n" +
				"      Driver   \t\t: 550.54.14\n" +
				"      Work Size\t\t: 4096, 4096x4096x4096\n" +
				"      Compatible\t: No\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			var buf bytes.Buffer
			err := WriteReport(&buf, tc.manager, compat.DefaultPolicy())
			require.NoError(t, err)
			require.Equal(t, tc.expected, buf.String())
		})
	}
}

func TestWriteReportVisitsEveryDevice(t *testing.T) {
	devices := []*rt.DeviceMock{rt.NewCompatibleDevice(), rt.NewCompatibleDevice(), newIncompatibleDevice()}
	manager := rt.NewManagerMockWithPlatforms(
		rt.NewPlatformMock("A", devices[0], devices[1]),
		rt.NewPlatformMock("B", devices[2]),
	)

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, manager, compat.DefaultPolicy()))

	for _, d := range devices {
		require.Len(t, d.GetNameCalls(), 1)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1+2*3+3*5)
}

func TestWriteReportQueryFailure(t *testing.T) {
	for _, query := range failingQueries {
		t.Run(query, func(t *testing.T) {
			manager := failingAt(query)

			var buf bytes.Buffer
			err := WriteReport(&buf, manager, compat.DefaultPolicy())
			require.ErrorIs(t, err, ErrCapabilityQuery)
			require.NotContains(t, buf.String(), "Compatible")
			require.NotContains(t, buf.String(), NoDevicesMessage)
			require.Len(t, manager.ShutdownCalls(), 1)
		})
	}
}

func TestCollect(t *testing.T) {
	manager := rt.NewManagerMockWithPlatforms(
		rt.NewPlatformMock("CPU", newIncompatibleDevice()),
		rt.NewPlatformMock("GPU", rt.NewCompatibleDevice(), rt.NewCompatibleDevice()),
		rt.NewPlatformMock("EMPTY"),
	)

	report, err := Collect(manager, compat.DefaultPolicy())
	require.NoError(t, err)
	require.Len(t, report.Platforms, 3)
	require.Equal(t, "CPU", report.Platforms[0].Name)
	require.Len(t, report.Platforms[1].Devices, 2)
	require.Empty(t, report.Platforms[2].Devices)
	require.Equal(t, compat.WorkItemSizes{1024, 1024, 64}, report.Platforms[1].Devices[0].MaxWorkItemSizes)

	require.True(t, report.Compatible())
	require.Equal(t, 3, report.DeviceCount())
	require.Equal(t, 2, report.CompatibleDeviceCount())
}

func TestCollectEmpty(t *testing.T) {
	report, err := Collect(rt.NewManagerMockWithPlatforms(), compat.DefaultPolicy())
	require.NoError(t, err)
	require.False(t, report.Compatible())
	require.Zero(t, report.DeviceCount())
}

func TestCollectQueryFailure(t *testing.T) {
	report, err := Collect(failingAt("device version"), compat.DefaultPolicy())
	require.ErrorIs(t, err, ErrCapabilityQuery)
	require.Nil(t, report)
}
