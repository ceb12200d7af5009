/*
 * Copyright 2023 The Kubernetes Authors.
 * Copyright 2024 NVIDIA CORPORATION.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package flags

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// NodeConfig identifies the node whose features are published.
type NodeConfig struct {
	Name      string
	Namespace string
}

// Flags returns the CLI flags that populate the node config.
func (n *NodeConfig) Flags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Category:    "Node:",
			Name:        "namespace",
			Usage:       "The namespace used for the NodeFeature custom resources.",
			Value:       "default",
			Destination: &n.Namespace,
			EnvVars:     []string{"OFD_NAMESPACE", "NAMESPACE"},
		},
		&cli.StringFlag{
			Category:    "Node:",
			Name:        "node-name",
			Usage:       "The name of the node to be labeled.",
			Destination: &n.Name,
			EnvVars:     []string{"OFD_NODE_NAME", "NODE_NAME"},
		},
	}
	return flags
}

// Validate checks that the node can be addressed through the NodeFeature API.
func (n *NodeConfig) Validate() error {
	if n.Name == "" {
		return fmt.Errorf("required flag %q not set", "node-name")
	}
	if n.Namespace == "" {
		return fmt.Errorf("required flag %q not set", "namespace")
	}
	return nil
}
