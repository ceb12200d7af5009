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
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	cli "github.com/urfave/cli/v2"
	"k8s.io/klog/v2"

	spec "github.com/NVIDIA/opencl-feature-discovery/api/config/v1"
	"github.com/NVIDIA/opencl-feature-discovery/internal/compat"
	"github.com/NVIDIA/opencl-feature-discovery/internal/flags"
	"github.com/NVIDIA/opencl-feature-discovery/internal/info"
	"github.com/NVIDIA/opencl-feature-discovery/internal/lm"
	"github.com/NVIDIA/opencl-feature-discovery/internal/probe"
	"github.com/NVIDIA/opencl-feature-discovery/internal/resource"
	"github.com/NVIDIA/opencl-feature-discovery/internal/watch"
)

// exitCodeNotCompatible is returned by the check command when no device meets the policy.
const exitCodeNotCompatible = 2

// Config represents a collection of config options for OFD.
type Config struct {
	configFile string
	verbosity  int

	kubeClientConfig flags.KubeClientConfig
	nodeConfig       flags.NodeConfig

	// flags stores the CLI flags for later processing.
	flags []cli.Flag
}

func main() {
	config := &Config{}

	c := cli.NewApp()
	c.Name = "OpenCL Feature Discovery"
	c.Usage = "detect OpenCL devices able to run the optical-flow pipeline"
	c.Version = info.GetVersionString()
	c.Before = func(ctx *cli.Context) error {
		return setupLogging(config.verbosity)
	}
	c.Action = func(ctx *cli.Context) error {
		return start(ctx, config)
	}
	c.Commands = []*cli.Command{
		{
			Name:  "check",
			Usage: "print whether a compatible OpenCL device is available; exits 2 if none is",
			Action: func(ctx *cli.Context) error {
				return checkAction(ctx, config)
			},
		},
		{
			Name:  "devices",
			Usage: "print all available OpenCL devices",
			Action: func(ctx *cli.Context) error {
				return devicesAction(ctx, config)
			},
		},
	}

	config.flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    spec.FlagFailOnInitError,
			Value:   true,
			Usage:   "fail if the OpenCL library cannot be loaded, otherwise report no devices",
			EnvVars: []string{"OFD_FAIL_ON_INIT_ERROR", "FAIL_ON_INIT_ERROR"},
		},
		&cli.StringFlag{
			Name:    spec.FlagLabelPrefix,
			Value:   spec.DefaultLabelPrefix,
			Usage:   "the domain used for the generated labels",
			EnvVars: []string{"OFD_LABEL_PREFIX"},
		},
		&cli.BoolFlag{
			Name:    spec.FlagOneshot,
			Value:   false,
			Usage:   "Label once and exit",
			EnvVars: []string{"OFD_ONESHOT"},
		},
		&cli.BoolFlag{
			Name:    spec.FlagNoTimestamp,
			Value:   false,
			Usage:   "Do not add the timestamp to the labels",
			EnvVars: []string{"OFD_NO_TIMESTAMP"},
		},
		&cli.DurationFlag{
			Name:    spec.FlagSleepInterval,
			Value:   60 * time.Second,
			Usage:   "Time to sleep between labeling",
			EnvVars: []string{"OFD_SLEEP_INTERVAL"},
		},
		&cli.StringFlag{
			Name:    spec.FlagOutputFile,
			Aliases: []string{"output", "o"},
			Value:   spec.DefaultOutputFile,
			Usage:   "the file the labels are written to; labels are printed to stdout if empty",
			EnvVars: []string{"OFD_OUTPUT_FILE"},
		},
		&cli.StringFlag{
			Name:    spec.FlagMachineTypeFile,
			Value:   spec.DefaultMachineTypeFile,
			Usage:   "a path to a file that contains the DMI (SMBIOS) information for the node",
			EnvVars: []string{"OFD_MACHINE_TYPE_FILE"},
		},
		&cli.StringFlag{
			Name:    spec.FlagICDVendorDir,
			Value:   spec.DefaultICDVendorDir,
			Usage:   "the OpenCL ICD vendor directory to watch for driver changes; disabled if empty",
			EnvVars: []string{"OFD_ICD_VENDOR_DIR", "OCL_ICD_VENDORS"},
		},
		&cli.StringFlag{
			Name:        spec.FlagConfigFile,
			Usage:       "the path to a config file as an alternative to command line options or environment variables",
			Destination: &config.configFile,
			EnvVars:     []string{"OFD_CONFIG_FILE", "CONFIG_FILE"},
		},
		&cli.BoolFlag{
			Name:    spec.FlagUseNodeFeatureAPI,
			Value:   false,
			Usage:   "Use NFD NodeFeature API to publish labels",
			EnvVars: []string{"OFD_USE_NODE_FEATURE_API", "USE_NODE_FEATURE_API"},
		},
		&cli.StringFlag{
			Name:    spec.FlagDeviceDiscoveryStrategy,
			Value:   spec.DeviceDiscoveryStrategyAuto,
			Usage:   "the strategy to use to discover devices: 'auto', 'opencl' or 'none'",
			EnvVars: []string{"OFD_DEVICE_DISCOVERY_STRATEGY", "DEVICE_DISCOVERY_STRATEGY"},
		},
		&cli.IntFlag{
			Name:        "verbosity",
			Usage:       "the klog log level; 4 logs the reason each device is not compatible",
			Destination: &config.verbosity,
			EnvVars:     []string{"OFD_VERBOSITY"},
		},
	}

	config.flags = append(config.flags, config.kubeClientConfig.Flags()...)
	config.flags = append(config.flags, config.nodeConfig.Flags()...)

	c.Flags = config.flags

	if err := c.Run(os.Args); err != nil {
		klog.Error(err)
		os.Exit(1)
	}
}

// setupLogging applies the requested verbosity to klog.
func setupLogging(verbosity int) error {
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	if err := fs.Set("v", strconv.Itoa(verbosity)); err != nil {
		return fmt.Errorf("failed to set log verbosity: %w", err)
	}
	return nil
}

func validateFlags(config *spec.Config) error {
	switch *config.Flags.DeviceDiscoveryStrategy {
	case spec.DeviceDiscoveryStrategyAuto:
	case spec.DeviceDiscoveryStrategyOpenCL:
	case spec.DeviceDiscoveryStrategyNone:
	default:
		return fmt.Errorf("invalid --device-discovery-strategy option %v", *config.Flags.DeviceDiscoveryStrategy)
	}

	if prefix := config.Flags.GetLabelPrefix(); prefix != spec.DefaultLabelPrefix {
		klog.Warningf("Using custom label prefix: %s (default is %s)", prefix, spec.DefaultLabelPrefix)
	}

	return nil
}

// loadConfig builds the config from the config file and CLI flags and validates it.
func (cfg *Config) loadConfig(c *cli.Context) (*spec.Config, error) {
	config, err := spec.NewConfig(c, cfg.flags)
	if err != nil {
		return nil, fmt.Errorf("unable to finalize config: %v", err)
	}
	err = validateFlags(config)
	if err != nil {
		return nil, fmt.Errorf("unable to validate flags: %v", err)
	}

	return config, nil
}

// newManager loads the config and constructs the resource manager it selects.
func (cfg *Config) newManager(c *cli.Context) (resource.Manager, error) {
	config, err := cfg.loadConfig(c)
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %v", err)
	}
	manager, err := resource.NewManager(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource manager: %w", err)
	}
	return manager, nil
}

func checkAction(c *cli.Context, cfg *Config) error {
	manager, err := cfg.newManager(c)
	if err != nil {
		return err
	}
	compatible, err := check(manager, c.App.Writer)
	if err != nil {
		return err
	}
	if !compatible {
		return cli.Exit("", exitCodeNotCompatible)
	}
	return nil
}

// check prints the verdict for the host to w.
func check(manager resource.Manager, w io.Writer) (bool, error) {
	compatible, err := probe.CompatibleDeviceAvailable(manager, compat.DefaultPolicy())
	if err != nil {
		return false, err
	}
	if _, err := fmt.Fprintln(w, compatible); err != nil {
		return false, err
	}
	return compatible, nil
}

func devicesAction(c *cli.Context, cfg *Config) error {
	manager, err := cfg.newManager(c)
	if err != nil {
		return err
	}
	return probe.WriteReport(c.App.Writer, manager, compat.DefaultPolicy())
}

func start(c *cli.Context, cfg *Config) error {
	defer func() {
		klog.Info("Exiting")
	}()

	klog.Info("Starting OS watcher.")
	sigs := watch.Signals(syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	for {
		// Load the configuration file
		klog.Info("Loading configuration.")
		config, err := cfg.loadConfig(c)
		if err != nil {
			return fmt.Errorf("unable to load config: %v", err)
		}

		// Print the config to the output.
		configJSON, err := json.MarshalIndent(config, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal config to JSON: %v", err)
		}
		klog.Infof("\nRunning with config:\n%v", string(configJSON))

		manager, err := resource.NewManager(config)
		if err != nil {
			return fmt.Errorf("failed to create resource manager: %w", err)
		}

		var clientSets flags.ClientSets
		if config.Flags.UseNodeFeatureAPI != nil && *config.Flags.UseNodeFeatureAPI {
			cs, err := cfg.kubeClientConfig.NewClientSets()
			if err != nil {
				return fmt.Errorf("failed to create clientsets: %w", err)
			}
			clientSets = cs
		}

		labelOutputer, err := lm.NewOutputer(
			config,
			cfg.nodeConfig,
			clientSets,
		)
		if err != nil {
			return fmt.Errorf("failed to create label outputer: %w", err)
		}

		klog.Info("Start running")
		d := &ofd{
			manager:       manager,
			config:        config,
			labelOutputer: labelOutputer,
		}
		icdWatcher := d.watchICDs()

		restart, err := d.run(sigs)
		if icdWatcher != nil {
			icdWatcher.Close()
		}
		if err != nil {
			return err
		}

		if !restart {
			return nil
		}
	}
}

type ofd struct {
	manager resource.Manager
	config  *spec.Config

	labelOutputer lm.Outputer

	icdEvents chan fsnotify.Event
	icdErrors chan error
}

// watchICDs starts watching the ICD vendor directory, if configured.
// A missing directory only disables the watch.
func (d *ofd) watchICDs() *fsnotify.Watcher {
	dir := *d.config.Flags.OFD.ICDVendorDir
	if dir == "" || *d.config.Flags.OFD.Oneshot {
		return nil
	}

	klog.Infof("Starting FS watcher for %v.", dir)
	watcher, err := watch.Files(dir)
	if err != nil {
		klog.Warningf("Not watching OpenCL ICD directory: %v", err)
		return nil
	}
	d.icdEvents = watcher.Events
	d.icdErrors = watcher.Errors
	return watcher
}

func (d *ofd) run(sigs chan os.Signal) (bool, error) {
	defer func() {
		if d.config.Flags.UseNodeFeatureAPI != nil && *d.config.Flags.UseNodeFeatureAPI {
			return
		}
		if d.config.Flags.OFD.Oneshot != nil && *d.config.Flags.OFD.Oneshot {
			return
		}
		if d.config.Flags.OFD.OutputFile != nil && *d.config.Flags.OFD.OutputFile == "" {
			return
		}
		err := removeOutputFile(*d.config.Flags.OFD.OutputFile)
		if err != nil {
			klog.Warningf("Error removing output file: %v", err)
		}
	}()

	timestampLabeler := lm.NewTimestampLabeler(d.config)
rerun:
	loopLabelers, err := lm.NewLabelers(d.manager, d.config)
	if err != nil {
		return false, err
	}

	labelers := lm.Merge(
		timestampLabeler,
		loopLabelers,
	)

	labels, err := labelers.Labels()
	if err != nil {
		return false, fmt.Errorf("error generating labels: %v", err)
	}

	klog.Info("Creating Labels")
	if err := d.labelOutputer.Output(labels); err != nil {
		return false, err
	}

	if *d.config.Flags.OFD.Oneshot {
		return false, nil
	}

	klog.Info("Sleeping for ", *d.config.Flags.OFD.SleepInterval)
	rerunTimeout := time.After(time.Duration(*d.config.Flags.OFD.SleepInterval))

	for {
		select {
		case <-rerunTimeout:
			goto rerun

		// Relabel as soon as an ICD is installed or removed.
		case event := <-d.icdEvents:
			if watch.IsChange(event) {
				klog.Infof("inotify: %s changed, relabeling.", event.Name)
				goto rerun
			}

		case err := <-d.icdErrors:
			klog.Warningf("inotify: %v", err)

		// Watch for any signals from the OS. On SIGHUP trigger a reload of the config.
		// On all other signals, exit the loop and exit the program.
		case s := <-sigs:
			switch s {
			case syscall.SIGHUP:
				klog.Info("Received SIGHUP, restarting.")
				return true, nil
			default:
				klog.Infof("Received signal %v, shutting down.", s)
				return false, nil
			}
		}
	}
}

func removeOutputFile(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to retrieve absolute path of output file: %v", err)
	}

	absDir := filepath.Dir(absPath)
	tmpDir := filepath.Join(absDir, lm.TempDirName)

	err = os.RemoveAll(tmpDir)
	if err != nil {
		return fmt.Errorf("failed to remove temporary output directory: %v", err)
	}

	err = os.Remove(absPath)
	if err != nil {
		return fmt.Errorf("failed to remove output file: %v", err)
	}

	return nil
}
