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

package sequentialagent

import (
	"github.com/traveldesk/traveldesk-go/common"
	"github.com/traveldesk/traveldesk-go/prompts"
	"google.golang.org/adk/agent"
	adksequentialagent "google.golang.org/adk/agent/workflowagents/sequentialagent"
)

// Config defines the configuration for a SequentialAgent.
type Config struct {
	// Basic agent setup.
	AgentConfig agent.Config
}

// New creates a SequentialAgent that runs its sub-agents once, in the
// order they are listed. Use it when steps must happen in a fixed order,
// such as gathering city facts before checking the weather there.
func New(cfg Config) (agent.Agent, error) {
	if cfg.AgentConfig.Name == "" {
		cfg.AgentConfig.Name = common.DEFAULT_SEQUENTIALAGENT_NAME
	}
	if cfg.AgentConfig.Description == "" {
		cfg.AgentConfig.Description = prompts.DEFAULT_DESCRIPTION
	}

	return adksequentialagent.New(adksequentialagent.Config{
		AgentConfig: cfg.AgentConfig,
	})
}
