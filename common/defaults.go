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

package common

// Environment variable names.
const (
	MODEL_AGENT_NAME     = "MODEL_AGENT_NAME"
	MODEL_AGENT_API_BASE = "MODEL_AGENT_API_BASE"
	MODEL_AGENT_API_KEY  = "MODEL_AGENT_API_KEY"

	AGENT_NAME       = "AGENT_NAME"
	DEFAULT_TIMEZONE = "DEFAULT_TIMEZONE"

	WEATHER_PROVIDER        = "WEATHER_PROVIDER"
	WEATHER_API_KEY         = "WEATHER_API_KEY"
	WEATHER_GEOCODING_URL   = "WEATHER_GEOCODING_URL"
	WEATHER_FORECAST_URL    = "WEATHER_FORECAST_URL"
	WEATHER_LEGACY_BASE_URL = "WEATHER_LEGACY_BASE_URL"
	WEATHER_TIMEOUT_SECONDS = "WEATHER_TIMEOUT_SECONDS"

	LOGGING_LEVEL = "LOGGING_LEVEL"

	SESSION_BACKEND = "SESSION_BACKEND"

	DATABASE_POSTGRESQL_USERNAME = "DATABASE_POSTGRESQL_USERNAME"
	DATABASE_POSTGRESQL_PASSWORD = "DATABASE_POSTGRESQL_PASSWORD"
	DATABASE_POSTGRESQL_HOST     = "DATABASE_POSTGRESQL_HOST"
	DATABASE_POSTGRESQL_PORT     = "DATABASE_POSTGRESQL_PORT"
	DATABASE_POSTGRESQL_SCHEMA   = "DATABASE_POSTGRESQL_SCHEMA"
	DATABASE_POSTGRESQL_DBURL    = "DATABASE_POSTGRESQL_DBURL"

	OBSERVABILITY_METRICS_STDOUT   = "OBSERVABILITY_METRICS_STDOUT"
	OBSERVABILITY_METRICS_ENDPOINT = "OBSERVABILITY_METRICS_ENDPOINT"
	OBSERVABILITY_METRICS_GLOBAL   = "OBSERVABILITY_METRICS_GLOBAL"
)

// Model defaults.
const (
	DEFAULT_MODEL_AGENT_NAME     = "gemini-2.0-flash"
	DEFAULT_MODEL_AGENT_API_BASE = "https://generativelanguage.googleapis.com/v1beta/openai/"
)

// Agent defaults.
const (
	DEFAULT_AGENT_NAME           = "travel_desk_agent"
	DEFAULT_LLMAGENT_NAME        = "travelDeskAgent"
	DEFAULT_SEQUENTIALAGENT_NAME = "travelDeskSequentialAgent"
	DEFAULT_LOOPAGENT_NAME       = "travelDeskLoopAgent"
	DEFAULT_DEFAULT_TIMEZONE     = "UTC"
)

// Weather defaults.
const (
	DEFAULT_WEATHER_PROVIDER        = "openmeteo"
	DEFAULT_WEATHER_GEOCODING_URL   = "https://geocoding-api.open-meteo.com/v1/search"
	DEFAULT_WEATHER_FORECAST_URL    = "https://api.open-meteo.com/v1/forecast"
	DEFAULT_WEATHER_LEGACY_BASE_URL = "https://api.openweathermap.org/data/2.5"
	DEFAULT_WEATHER_TIMEOUT_SECONDS = 10

	DEFAULT_FORECAST_DAYS    = 5
	MAX_OPENMETEO_FORECAST   = 14
	MAX_LEGACY_FORECAST_DAYS = 5
)

// LOGGING
const (
	DEFAULT_LOGGING_LEVEL = "info"
)
