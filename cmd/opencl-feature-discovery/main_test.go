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

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/require"

	spec "github.com/NVIDIA/opencl-feature-discovery/api/config/v1"
	"github.com/NVIDIA/opencl-feature-discovery/internal/lm"
	"github.com/NVIDIA/opencl-feature-discovery/internal/probe"
	"github.com/NVIDIA/opencl-feature-discovery/internal/resource"
	rt "github.com/NVIDIA/opencl-feature-discovery/internal/resource/testing"
)

// prt returns a reference to whatever type is passed into it
func ptr[T any](x T) *T {
	return &x
}

func newTestConfig(t *testing.T, oneshot bool, failOnInitError bool) *spec.Config {
	dir := t.TempDir()
	machineTypeFile := filepath.Join(dir, "product_name")
	require.NoError(t, os.WriteFile(machineTypeFile, []byte("DGX A100\n"), 0644))

	return &spec.Config{
		Version: spec.Version,
		Flags: spec.Flags{
			CommandLineFlags: spec.CommandLineFlags{
				FailOnInitError:         ptr(failOnInitError),
				UseNodeFeatureAPI:       ptr(false),
				DeviceDiscoveryStrategy: ptr(spec.DeviceDiscoveryStrategyOpenCL),
				LabelPrefix:             ptr(spec.DefaultLabelPrefix),
				OFD: &spec.OFDCommandLineFlags{
					Oneshot:         ptr(oneshot),
					NoTimestamp:     ptr(true),
					SleepInterval:   ptr(spec.Duration(time.Hour)),
					OutputFile:      ptr(filepath.Join(dir, "ofd")),
					MachineTypeFile: ptr(machineTypeFile),
					ICDVendorDir:    ptr(""),
				},
			},
		},
	}
}

func newTestDaemon(manager resource.Manager, config *spec.Config) *ofd {
	return &ofd{
		manager:       resource.WithConfig(manager, config),
		config:        config,
		labelOutputer: lm.ToFile(*config.Flags.OFD.OutputFile),
	}
}

func readLabels(t *testing.T, path string) map[string]string {
	contents, err := os.ReadFile(path)
	require.NoError(t, err)

	labels := make(map[string]string)
	for _, line := range strings.Split(strings.TrimSpace(string(contents)), "\n") {
		if line == "" {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		require.True(t, found, "malformed label line %q", line)
		labels[key] = value
	}
	return labels
}

func TestRunOneshot(t *testing.T) {
	testCases := []struct {
		description     string
		manager         resource.Manager
		failOnInitError bool
		expectedError   bool
		expectedLabels  map[string]string
	}{
		{
			description: "compatible device",
			manager: rt.NewManagerMockWithPlatforms(
				rt.NewPlatformMock("NVIDIA CUDA", rt.NewCompatibleDevice()),
			),
			failOnInitError: true,
			expectedLabels: map[string]string{
				"feature.node.kubernetes.io/opencl.machine":                 "DGX-A100",
				"feature.node.kubernetes.io/opencl.compatible":              "true",
				"feature.node.kubernetes.io/opencl.platform.count":          "1",
				"feature.node.kubernetes.io/opencl.device.count":            "1",
				"feature.node.kubernetes.io/opencl.compatible-device.count": "1",
			},
		},
		{
			description: "init error is fatal",
			manager: rt.NewManagerMockWithPlatforms().
				WithErrorOnInit(errors.New("libOpenCL.so.1: cannot open shared object file")),
			failOnInitError: true,
			expectedError:   true,
		},
		{
			description: "init error falls back to no devices",
			manager: rt.NewManagerMockWithPlatforms().
				WithErrorOnInit(errors.New("libOpenCL.so.1: cannot open shared object file")),
			failOnInitError: false,
			expectedLabels: map[string]string{
				"feature.node.kubernetes.io/opencl.machine":                 "DGX-A100",
				"feature.node.kubernetes.io/opencl.compatible":              "false",
				"feature.node.kubernetes.io/opencl.platform.count":          "0",
				"feature.node.kubernetes.io/opencl.device.count":            "0",
				"feature.node.kubernetes.io/opencl.compatible-device.count": "0",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			config := newTestConfig(t, true, tc.failOnInitError)
			d := newTestDaemon(tc.manager, config)

			restart, err := d.run(nil)
			require.False(t, restart)
			if tc.expectedError {
				require.ErrorIs(t, err, probe.ErrCapabilityQuery)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectedLabels, readLabels(t, *config.Flags.OFD.OutputFile))
		})
	}
}

func TestRunWithTimestamp(t *testing.T) {
	config := newTestConfig(t, true, true)
	config.Flags.OFD.NoTimestamp = ptr(false)
	d := newTestDaemon(rt.NewManagerMockWithPlatforms(), config)

	_, err := d.run(nil)
	require.NoError(t, err)

	labels := readLabels(t, *config.Flags.OFD.OutputFile)
	require.Contains(t, labels, "feature.node.kubernetes.io/ofd.timestamp")
	require.Len(t, labels, 6)
}

func TestRunSignals(t *testing.T) {
	testCases := []struct {
		description     string
		signal          os.Signal
		expectedRestart bool
	}{
		{
			description:     "SIGHUP restarts",
			signal:          syscall.SIGHUP,
			expectedRestart: true,
		},
		{
			description:     "SIGTERM exits",
			signal:          syscall.SIGTERM,
			expectedRestart: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			config := newTestConfig(t, false, true)
			d := newTestDaemon(rt.NewManagerMockWithPlatforms(), config)

			sigs := make(chan os.Signal, 1)
			sigs <- tc.signal

			restart, err := d.run(sigs)
			require.NoError(t, err)
			require.Equal(t, tc.expectedRestart, restart)

			_, err = os.Stat(*config.Flags.OFD.OutputFile)
			require.True(t, os.IsNotExist(err), "output file should be removed on exit")
		})
	}
}

func TestRunRelabelsOnICDChange(t *testing.T) {
	config := newTestConfig(t, false, true)
	manager := rt.NewManagerMockWithPlatforms(rt.NewPlatformMock("NVIDIA CUDA", rt.NewCompatibleDevice()))
	d := newTestDaemon(manager, config)
	d.icdEvents = make(chan fsnotify.Event)

	sigs := make(chan os.Signal)
	go func() {
		d.icdEvents <- fsnotify.Event{Name: "/etc/OpenCL/vendors/nvidia.icd", Op: fsnotify.Chmod}
		d.icdEvents <- fsnotify.Event{Name: "/etc/OpenCL/vendors/nvidia.icd", Op: fsnotify.Create}
		sigs <- syscall.SIGTERM
	}()

	restart, err := d.run(sigs)
	require.NoError(t, err)
	require.False(t, restart)
	require.Len(t, manager.InitCalls(), 2)
}

func TestCheck(t *testing.T) {
	testCases := []struct {
		description    string
		manager        resource.Manager
		expected       bool
		expectedOutput string
		expectedError  bool
	}{
		{
			description:    "no platforms",
			manager:        rt.NewManagerMockWithPlatforms(),
			expected:       false,
			expectedOutput: "false\n",
		},
		{
			description: "compatible device",
			manager: rt.NewManagerMockWithPlatforms(
				rt.NewPlatformMock("NVIDIA CUDA", rt.NewCompatibleDevice()),
			),
			expected:       true,
			expectedOutput: "true\n",
		},
		{
			description:   "init failure",
			manager:       rt.NewManagerMockWithPlatforms().WithErrorOnInit(errors.New("not found")),
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			var buf bytes.Buffer
			compatible, err := check(tc.manager, &buf)
			if tc.expectedError {
				require.ErrorIs(t, err, probe.ErrCapabilityQuery)
				require.Empty(t, buf.String())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, compatible)
			require.Equal(t, tc.expectedOutput, buf.String())
		})
	}
}

func TestValidateFlags(t *testing.T) {
	config := newTestConfig(t, true, true)
	require.NoError(t, validateFlags(config))

	config.Flags.DeviceDiscoveryStrategy = ptr("nvml")
	require.Error(t, validateFlags(config))
}
