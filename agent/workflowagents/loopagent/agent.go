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

package loopagent

import (
	"github.com/traveldesk/traveldesk-go/common"
	"github.com/traveldesk/traveldesk-go/prompts"
	"google.golang.org/adk/agent"
	adkloopagent "google.golang.org/adk/agent/workflowagents/loopagent"
)

// Config defines the configuration for a LoopAgent.
type Config struct {
	// Basic agent setup.
	AgentConfig agent.Config

	// If MaxIterations == 0 the loop runs until a sub-agent escalates.
	MaxIterations uint
}

// New creates a LoopAgent that repeatedly runs its sub-agents in sequence
// until the iteration limit is reached or a sub-agent escalates. Useful
// for iterative refinement, such as narrowing down a destination list.
func New(cfg Config) (agent.Agent, error) {
	if cfg.AgentConfig.Name == "" {
		cfg.AgentConfig.Name = common.DEFAULT_LOOPAGENT_NAME
	}
	if cfg.AgentConfig.Description == "" {
		cfg.AgentConfig.Description = prompts.DEFAULT_DESCRIPTION
	}

	return adkloopagent.New(adkloopagent.Config{
		AgentConfig:   cfg.AgentConfig,
		MaxIterations: cfg.MaxIterations,
	})
}
