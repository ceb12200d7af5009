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
	"k8s.io/klog/v2"
)

type withFallBack struct {
	wraps    Manager
	fallback Manager
	active   Manager
}

// NewFallbackToNullOnInitError creates a manager that acts as a Null manager for
// any pass in which the wrapped manager fails to initialize.
func NewFallbackToNullOnInitError(m Manager) Manager {
	return &withFallBack{
		wraps:    m,
		fallback: NewNullManager(),
	}
}

// Init retries the wrapped manager on every call and selects the Null manager
// for this pass if it does not succeed.
func (m *withFallBack) Init() error {
	m.active = m.wraps
	if err := m.wraps.Init(); err != nil {
		klog.Warningf("Failed to initialize resource manager: %v", err)
		m.active = m.fallback
	}
	return nil
}

// Shutdown delegates to the manager selected by the last Init
func (m *withFallBack) Shutdown() (err error) {
	return m.current().Shutdown()
}

// GetPlatforms delegates to the manager selected by the last Init
func (m *withFallBack) GetPlatforms() ([]Platform, error) {
	return m.current().GetPlatforms()
}

func (m *withFallBack) current() Manager {
	if m.active == nil {
		return m.wraps
	}
	return m.active
}
