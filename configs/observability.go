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
	"strconv"

	"github.com/traveldesk/traveldesk-go/common"
)

// ObservabilityConfig controls metric export for tool invocations.
// With no exporter configured, observability stays disabled.
type ObservabilityConfig struct {
	// StdoutEnable turns on the stdout metric exporter.
	StdoutEnable bool `yaml:"stdout_enable"`
	// MetricsEndpoint, when set, enables the OTLP/HTTP metric exporter.
	MetricsEndpoint string `yaml:"metrics_endpoint"`
	// UseGlobalProvider installs the meter provider as the OTel global one.
	UseGlobalProvider bool `yaml:"use_global_provider"`
}

func (c *ObservabilityConfig) MapEnvToConfig() {
	if raw := getEnv(common.OBSERVABILITY_METRICS_STDOUT, ""); raw != "" {
		if enabled, err := strconv.ParseBool(raw); err == nil {
			c.StdoutEnable = enabled
		}
	}
	c.MetricsEndpoint = getEnv(common.OBSERVABILITY_METRICS_ENDPOINT, "")
	if raw := getEnv(common.OBSERVABILITY_METRICS_GLOBAL, ""); raw != "" {
		if enabled, err := strconv.ParseBool(raw); err == nil {
			c.UseGlobalProvider = enabled
		}
	}
}

func (c *ObservabilityConfig) Enabled() bool {
	return c.StdoutEnable || c.MetricsEndpoint != ""
}
