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

package lm

import (
	"fmt"
	"strconv"
	"time"

	spec "github.com/NVIDIA/opencl-feature-discovery/api/config/v1"
)

// NewTimestampLabeler creates a labeler that records when the labels were generated.
// It returns an empty labeler if timestamps are disabled.
func NewTimestampLabeler(config *spec.Config) Labeler {
	if config.Flags.OFD != nil && config.Flags.OFD.NoTimestamp != nil && *config.Flags.OFD.NoTimestamp {
		return empty{}
	}
	return timestampLabeler{
		key: fmt.Sprintf("%s/ofd.timestamp", config.Flags.GetLabelPrefix()),
		now: time.Now,
	}
}

type timestampLabeler struct {
	key string
	now func() time.Time
}

// Labels returns the current unix time.
func (l timestampLabeler) Labels() (Labels, error) {
	return Labels{
		l.key: strconv.FormatInt(l.now().Unix(), 10),
	}, nil
}
