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
	"fmt"
	"io"

	"github.com/NVIDIA/opencl-feature-discovery/internal/compat"
	"github.com/NVIDIA/opencl-feature-discovery/internal/resource"
)

// NoDevicesMessage is written by WriteReport when no platform is found.
const NoDevicesMessage = "No OpenCL devices detected. Please check your OpenCL installation."

// Report is the result of a full enumeration pass.
type Report struct {
	Platforms []PlatformReport
}

// PlatformReport holds a platform and the devices it exposes.
type PlatformReport struct {
	compat.PlatformDescriptor
	Devices []DeviceReport
}

// DeviceReport holds a device and its verdict.
type DeviceReport struct {
	compat.DeviceDescriptor
	Compatible bool
}

// Compatible returns true if any device in the report is compatible.
func (r *Report) Compatible() bool {
	return r.CompatibleDeviceCount() > 0
}

// DeviceCount returns the number of devices across all platforms.
func (r *Report) DeviceCount() int {
	var count int
	for _, p := range r.Platforms {
		count += len(p.Devices)
	}
	return count
}

// CompatibleDeviceCount returns the number of compatible devices across all platforms.
func (r *Report) CompatibleDeviceCount() int {
	var count int
	for _, p := range r.Platforms {
		for _, d := range p.Devices {
			if d.Compatible {
				count++
			}
		}
	}
	return count
}

// visitor receives each platform and device of an enumeration pass in provider order.
type visitor struct {
	platform func(*compat.PlatformDescriptor) error
	device   func(*compat.PlatformDescriptor, *compat.DeviceDescriptor, bool) error
}

// walk visits every platform and device of the manager.
// An empty platform list results in no calls to the visitor.
func walk(m resource.Manager, policy compat.Policy, v visitor) (int, error) {
	var count int
	err := withManager(m, func() error {
		platforms, err := getPlatforms(m)
		if err != nil {
			return err
		}
		count = len(platforms)
		for _, p := range platforms {
			platform, err := CollectPlatform(p)
			if err != nil {
				return err
			}
			if err := v.platform(platform); err != nil {
				return err
			}
			devices, err := getDevices(p)
			if err != nil {
				return err
			}
			for _, d := range devices {
				device, err := CollectDevice(d)
				if err != nil {
					return err
				}
				if err := v.device(platform, device, policy.IsCompatible(platform, device)); err != nil {
					return err
				}
			}
		}
		return nil
	})
	return count, err
}

// Collect enumerates every platform and device and returns the result as a Report.
func Collect(m resource.Manager, policy compat.Policy) (*Report, error) {
	report := &Report{}
	v := visitor{
		platform: func(p *compat.PlatformDescriptor) error {
			report.Platforms = append(report.Platforms, PlatformReport{PlatformDescriptor: *p})
			return nil
		},
		device: func(_ *compat.PlatformDescriptor, d *compat.DeviceDescriptor, compatible bool) error {
			last := &report.Platforms[len(report.Platforms)-1]
			last.Devices = append(last.Devices, DeviceReport{DeviceDescriptor: *d, Compatible: compatible})
			return nil
		},
	}
	if _, err := walk(m, policy, v); err != nil {
		return nil, err
	}
	return report, nil
}

// WriteReport writes a human-readable record for every platform and device to w.
// Output already written is not retracted when a query fails.
func WriteReport(w io.Writer, m resource.Manager, policy compat.Policy) error {
	var headerWritten bool
	v := visitor{
		platform: func(p *compat.PlatformDescriptor) error {
			if !headerWritten {
				headerWritten = true
				if _, err := fmt.Fprintln(w, "OpenCL devices:"); err != nil {
					return err
				}
			}
			_, err := fmt.Fprintf(w, "  Platform          \t: %s\n"+
				"  Platform Vendor   \t: %s\n"+
				"  Platform Version  \t: %s\n",
				p.Name, p.Vendor, p.Version)
			return err
		},
		device: func(_ *compat.PlatformDescriptor, d *compat.DeviceDescriptor, compatible bool) error {
			_, err := fmt.Fprintf(w, "    Device     \t\t: %s\n"+
				"      Version  \t\t: %s\n"+
				"      Driver   \t\t: %s\n"+
				"      Work Size\t\t: %d, %s\n"+
				"      Compatible\t: %s\n",
				d.Name, d.Version, d.DriverVersion, d.MaxWorkGroupSize, d.MaxWorkItemSizes, yesNo(compatible))
			return err
		},
	}

	count, err := walk(m, policy, v)
	if err != nil {
		return err
	}
	if count == 0 {
		_, err = fmt.Fprintln(w, NoDevicesMessage)
	}
	return err
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
