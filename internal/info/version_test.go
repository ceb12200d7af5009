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

package info

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetVersionString(t *testing.T) {
	testCases := []struct {
		description string
		version     string
		gitCommit   string
		more        []string
		expected    string
	}{
		{
			description: "version only",
			version:     "v0.1.0",
			expected:    "v0.1.0",
		},
		{
			description: "version and commit",
			version:     "v0.1.0",
			gitCommit:   "abc123",
			expected:    "v0.1.0\ncommit: abc123",
		},
		{
			description: "additional parts",
			version:     "v0.1.0",
			more:        []string{"libOpenCL.so.1"},
			expected:    "v0.1.0\nlibOpenCL.so.1",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			origVersion, origCommit := version, gitCommit
			defer func() { version, gitCommit = origVersion, origCommit }()

			version, gitCommit = tc.version, tc.gitCommit
			require.Equal(t, tc.expected, GetVersionString(tc.more...))
		})
	}
}
