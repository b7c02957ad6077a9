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

// Package weather implements the current-weather and forecast tools. Both
// run a geocode-then-fetch flow against the configured backend and degrade
// to fixed mock data (current) or a deterministic synthetic forecast when
// the live endpoints fail.
package weather

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/traveldesk/traveldesk-go/common"
	"github.com/traveldesk/traveldesk-go/configs"
	"github.com/traveldesk/traveldesk-go/log"
	"github.com/traveldesk/traveldesk-go/observability"
	"github.com/traveldesk/traveldesk-go/schema"
	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"
)

const (
	maxOpenMeteoDays = common.MAX_OPENMETEO_FORECAST
	maxLegacyDays    = common.MAX_LEGACY_FORECAST_DAYS
)

// GetWeather retrieves current conditions for a city. Network failures and
// bad upstream responses fall back to the mock table; only an unresolvable
// city yields an error envelope.
func GetWeather(ctx context.Context, city, countryCode string) (resp schema.ToolResponse) {
	defer guard(&resp)

	p := newProvider(configs.GetGlobalConfig().Weather)

	log.Info("fetching current weather", "city", city, "backend", p.label())
	report, err := p.currentWeather(ctx, city, countryCode)
	switch {
	case err == nil:
		return schema.Success(
			schema.AsMap(*report),
			fmt.Sprintf("Weather information retrieved for %s, %s (%s)", report.City, report.Country, p.label()),
		)
	case errors.Is(err, ErrCityNotFound):
		return schema.Error(
			fmt.Sprintf("City '%s' not found. Please check the spelling or try with a country code.", city),
			schema.ErrCodeCityNotFound,
		)
	default:
		log.Error("weather backend failed, serving mock data", "city", city, "err", err)
		return mockWeather(city)
	}
}

// GetForecast retrieves a daily forecast. Once the city name is accepted the
// call cannot fail: any backend failure degrades to the synthetic forecast.
func GetForecast(ctx context.Context, city string, days int) (resp schema.ToolResponse) {
	defer guard(&resp)

	p := newProvider(configs.GetGlobalConfig().Weather)
	days = clampDays(days, p.maxForecastDays())

	log.Info("fetching forecast", "city", city, "days", days, "backend", p.label())
	bundle, err := p.forecast(ctx, city, days)
	switch {
	case err == nil:
		dayMaps := make([]any, len(bundle.Days))
		for i, d := range bundle.Days {
			dayMaps[i] = schema.AsMap(d)
		}
		return schema.Success(
			map[string]any{
				"city":         bundle.City,
				"country":      bundle.Country,
				bundle.DataKey: dayMaps,
			},
			fmt.Sprintf("%d-day weather forecast for %s (%s)", days, bundle.City, p.label()),
		)
	case errors.Is(err, ErrCityNotFound):
		return schema.Error(
			fmt.Sprintf("City '%s' not found for forecast", city),
			schema.ErrCodeCityNotFound,
		)
	default:
		log.Error("forecast backend failed, serving synthetic data", "city", city, "err", err)
		return syntheticForecast(city, days)
	}
}

func clampDays(days, max int) int {
	if days < 1 {
		return 1
	}
	if days > max {
		return max
	}
	return days
}

// guard keeps the tool-boundary contract: a panic becomes an error envelope,
// never a fault visible to the agent runtime.
func guard(resp *schema.ToolResponse) {
	if r := recover(); r != nil {
		log.Error("unexpected failure in weather tool", "panic", fmt.Sprint(r))
		*resp = schema.Error(
			"An unexpected error occurred while fetching weather data",
			schema.ErrCodeUnexpected,
		)
	}
}

type WeatherArgs struct {
	City        string `json:"city" jsonschema:"The name of the city"`
	CountryCode string `json:"country_code,omitempty" jsonschema:"Optional ISO 3166 country code, e.g. 'US' or 'GB'"`
}

type ForecastArgs struct {
	City string `json:"city" jsonschema:"The name of the city"`
	Days int    `json:"days" jsonschema:"Number of forecast days. Defaults to 5."`
}

// NewWeatherTool exposes GetWeather to agents.
func NewWeatherTool() (tool.Tool, error) {
	return functiontool.New(
		functiontool.Config{
			Name: "get_weather",
			Description: `Retrieves detailed current weather information for a city.
Args:
	city: The name of the city.
	country_code: Optional ISO 3166 country code to disambiguate.
Returns:
	Structured weather information or error details.`,
		},
		weatherHandler)
}

// NewForecastTool exposes GetForecast to agents.
func NewForecastTool() (tool.Tool, error) {
	return functiontool.New(
		functiontool.Config{
			Name: "get_weather_forecast",
			Description: `Gets a daily weather forecast for a city.
Args:
	city: The name of the city.
	days: Number of forecast days.
Returns:
	Per-day forecast data or error details.`,
		},
		forecastHandler)
}

func weatherHandler(ctx tool.Context, args WeatherArgs) (schema.ToolResponse, error) {
	started := time.Now()
	resp := GetWeather(ctx, args.City, args.CountryCode)
	observability.RecordToolInvocation(ctx, "get_weather", time.Since(started), resp.Status == schema.StatusError)
	return resp, nil
}

func forecastHandler(ctx tool.Context, args ForecastArgs) (schema.ToolResponse, error) {
	days := args.Days
	if days == 0 {
		days = common.DEFAULT_FORECAST_DAYS
	}
	started := time.Now()
	resp := GetForecast(ctx, args.City, days)
	observability.RecordToolInvocation(ctx, "get_weather_forecast", time.Since(started), resp.Status == schema.StatusError)
	return resp, nil
}
