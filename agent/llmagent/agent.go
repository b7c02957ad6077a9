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

// Package llmagent assembles the travel assistant agent: model wiring,
// default instruction and the builtin weather, time and location tools.
package llmagent

import (
	"context"

	"github.com/traveldesk/traveldesk-go/common"
	"github.com/traveldesk/traveldesk-go/configs"
	"github.com/traveldesk/traveldesk-go/model"
	"github.com/traveldesk/traveldesk-go/prompts"
	"github.com/traveldesk/traveldesk-go/tool/builtin_tools/city_time"
	"github.com/traveldesk/traveldesk-go/tool/builtin_tools/location"
	"github.com/traveldesk/traveldesk-go/tool/builtin_tools/weather"
	"github.com/traveldesk/traveldesk-go/utils"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/tool"
)

type Config struct {
	llmagent.Config
	ModelName    string
	ModelAPIBase string
	ModelAPIKey  string
}

// New builds the travel assistant. Zero-value fields fall back to the
// environment, then config.yaml, then compiled defaults. When no tools
// are supplied the full builtin set is attached.
func New(cfg *Config) (agent.Agent, error) {
	if cfg.Name == "" {
		cfg.Name = common.DEFAULT_LLMAGENT_NAME
	}

	if cfg.Instruction == "" {
		cfg.Instruction = prompts.DEFAULT_INSTRUCTION
	}

	if cfg.Description == "" {
		cfg.Description = prompts.DEFAULT_DESCRIPTION
	}

	if cfg.Model == nil {
		if cfg.ModelName == "" {
			cfg.ModelName = utils.GetEnvWithDefault(common.MODEL_AGENT_NAME, configs.GetGlobalConfig().Model.Agent.Name, common.DEFAULT_MODEL_AGENT_NAME)
		}
		if cfg.ModelAPIKey == "" {
			cfg.ModelAPIKey = utils.GetEnvWithDefault(common.MODEL_AGENT_API_KEY, configs.GetGlobalConfig().Model.Agent.ApiKey)
		}
		if cfg.ModelAPIBase == "" {
			cfg.ModelAPIBase = utils.GetEnvWithDefault(common.MODEL_AGENT_API_BASE, configs.GetGlobalConfig().Model.Agent.ApiBase, common.DEFAULT_MODEL_AGENT_API_BASE)
		}

		llm, err := model.NewOpenAIModel(
			context.Background(),
			cfg.ModelName,
			&model.ClientConfig{
				APIKey:  cfg.ModelAPIKey,
				BaseURL: cfg.ModelAPIBase,
			})
		if err != nil {
			return nil, err
		}
		cfg.Model = llm
	}

	if len(cfg.Tools) == 0 {
		tools, err := DefaultTools()
		if err != nil {
			return nil, err
		}
		cfg.Tools = tools
	}

	return llmagent.New(cfg.Config)
}

// DefaultTools returns every builtin tool the travel assistant ships with.
func DefaultTools() ([]tool.Tool, error) {
	constructors := []func() (tool.Tool, error){
		weather.NewWeatherTool,
		weather.NewForecastTool,
		city_time.NewCurrentTimeTool,
		city_time.NewTimezoneInfoTool,
		city_time.NewListSupportedCitiesTool,
		location.NewCityInfoTool,
		location.NewSearchCitiesTool,
		location.NewListAllCitiesTool,
	}

	tools := make([]tool.Tool, 0, len(constructors))
	for _, build := range constructors {
		t, err := build()
		if err != nil {
			return nil, err
		}
		tools = append(tools, t)
	}
	return tools, nil
}
