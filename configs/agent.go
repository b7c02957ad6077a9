// Copyright (c) 2025 TravelDesk Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package configs

import (
	"github.com/traveldesk/traveldesk-go/common"
)

type AgentConfig struct {
	Name            string `yaml:"name"`
	DefaultTimezone string `yaml:"default_timezone"`
}

func (c *AgentConfig) MapEnvToConfig() {
	c.Name = getEnv(common.AGENT_NAME, common.DEFAULT_AGENT_NAME)
	c.DefaultTimezone = getEnv(common.DEFAULT_TIMEZONE, common.DEFAULT_DEFAULT_TIMEZONE)
}
