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
	"time"

	"github.com/traveldesk/traveldesk-go/common"
)

type WeatherConfig struct {
	// Provider selects the backend strategy: "openmeteo" (free, no key)
	// or "openweathermap" (legacy, requires ApiKey).
	Provider      string `yaml:"provider"`
	ApiKey        string `yaml:"api_key"`
	GeocodingURL  string `yaml:"geocoding_url"`
	ForecastURL   string `yaml:"forecast_url"`
	LegacyBaseURL string `yaml:"legacy_base_url"`

	TimeoutSeconds int `yaml:"timeout_seconds"`
}

func (c *WeatherConfig) MapEnvToConfig() {
	c.Provider = getEnv(common.WEATHER_PROVIDER, common.DEFAULT_WEATHER_PROVIDER)
	c.ApiKey = getEnv(common.WEATHER_API_KEY, "")
	c.GeocodingURL = getEnv(common.WEATHER_GEOCODING_URL, common.DEFAULT_WEATHER_GEOCODING_URL)
	c.ForecastURL = getEnv(common.WEATHER_FORECAST_URL, common.DEFAULT_WEATHER_FORECAST_URL)
	c.LegacyBaseURL = getEnv(common.WEATHER_LEGACY_BASE_URL, common.DEFAULT_WEATHER_LEGACY_BASE_URL)

	c.TimeoutSeconds = common.DEFAULT_WEATHER_TIMEOUT_SECONDS
	if raw := getEnv(common.WEATHER_TIMEOUT_SECONDS, ""); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			c.TimeoutSeconds = secs
		}
	}
}

func (c *WeatherConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
