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

import (
	"fmt"

	cli "github.com/urfave/cli/v2"
)

// prt returns a reference to whatever type is passed into it
func ptr[T any](x T) *T {
	return &x
}

// updateFromCLIFlag conditionally updates the config flag at 'pflag' to the value of the CLI flag with name 'flagName'
func updateFromCLIFlag[T any](pflag **T, c *cli.Context, flagName string) {
	if c.IsSet(flagName) || *pflag == (*T)(nil) {
		switch flag := any(pflag).(type) {
		case **string:
			*flag = ptr(c.String(flagName))
		case **bool:
			*flag = ptr(c.Bool(flagName))
		case **Duration:
			*flag = ptr(Duration(c.Duration(flagName)))
		default:
			panic(fmt.Errorf("unsupported flag type for %v: %T", flagName, flag))
		}
	}
}

// Flags holds the full list of flags used to configure OpenCL feature discovery.
type Flags struct {
	CommandLineFlags
}

// CommandLineFlags holds the list of command line flags used to configure OpenCL feature discovery.
type CommandLineFlags struct {
	FailOnInitError         *bool                `json:"failOnInitError"         yaml:"failOnInitError"`
	UseNodeFeatureAPI       *bool                `json:"useNodeFeatureAPI"       yaml:"useNodeFeatureAPI"`
	DeviceDiscoveryStrategy *string              `json:"deviceDiscoveryStrategy" yaml:"deviceDiscoveryStrategy"`
	LabelPrefix             *string              `json:"labelPrefix,omitempty"   yaml:"labelPrefix,omitempty"`
	OFD                     *OFDCommandLineFlags `json:"ofd,omitempty"           yaml:"ofd,omitempty"`
}

// OFDCommandLineFlags holds the list of command line flags specific to the labeling daemon.
type OFDCommandLineFlags struct {
	Oneshot         *bool     `json:"oneshot"                yaml:"oneshot"`
	NoTimestamp     *bool     `json:"noTimestamp"            yaml:"noTimestamp"`
	SleepInterval   *Duration `json:"sleepInterval"          yaml:"sleepInterval"`
	OutputFile      *string   `json:"outputFile"             yaml:"outputFile"`
	MachineTypeFile *string   `json:"machineTypeFile"        yaml:"machineTypeFile"`
	ICDVendorDir    *string   `json:"icdVendorDir,omitempty" yaml:"icdVendorDir,omitempty"`
}

// UpdateFromCLIFlags updates Flags from settings in the cli Flags if they are set.
func (f *Flags) UpdateFromCLIFlags(c *cli.Context, flags []cli.Flag) {
	for _, flag := range flags {
		for _, n := range flag.Names() {
			// Common flags
			switch n {
			case FlagFailOnInitError:
				updateFromCLIFlag(&f.FailOnInitError, c, n)
			case FlagUseNodeFeatureAPI:
				updateFromCLIFlag(&f.UseNodeFeatureAPI, c, n)
			case FlagDeviceDiscoveryStrategy:
				updateFromCLIFlag(&f.DeviceDiscoveryStrategy, c, n)
			case FlagLabelPrefix:
				updateFromCLIFlag(&f.LabelPrefix, c, n)
			}
			// OFD specific flags
			if f.OFD == nil {
				f.OFD = &OFDCommandLineFlags{}
			}
			switch n {
			case FlagOneshot:
				updateFromCLIFlag(&f.OFD.Oneshot, c, n)
			case FlagOutputFile:
				updateFromCLIFlag(&f.OFD.OutputFile, c, n)
			case FlagSleepInterval:
				updateFromCLIFlag(&f.OFD.SleepInterval, c, n)
			case FlagNoTimestamp:
				updateFromCLIFlag(&f.OFD.NoTimestamp, c, n)
			case FlagMachineTypeFile:
				updateFromCLIFlag(&f.OFD.MachineTypeFile, c, n)
			case FlagICDVendorDir:
				updateFromCLIFlag(&f.OFD.ICDVendorDir, c, n)
			}
		}
	}
}

// GetLabelPrefix returns the configured label prefix or the default.
func (f *Flags) GetLabelPrefix() string {
	if f.LabelPrefix == nil || *f.LabelPrefix == "" {
		return DefaultLabelPrefix
	}
	return *f.LabelPrefix
}
