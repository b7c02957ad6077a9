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

package weather

import (
	"context"
	"fmt"
	"time"

	"github.com/traveldesk/traveldesk-go/configs"
	"github.com/traveldesk/traveldesk-go/geodata"
	"github.com/traveldesk/traveldesk-go/schema"
	"github.com/traveldesk/traveldesk-go/utils"
)

// provider is one weather backend strategy. Two implementations exist: the
// free OpenMeteo flow and the legacy API-key OpenWeatherMap flow. Their
// forecast payload shapes differ and are kept apart on purpose.
type provider interface {
	// label names the backend in success messages.
	label() string
	// maxForecastDays is the provider-dependent clamp bound.
	maxForecastDays() int
	// currentWeather returns conditions for a city, ErrCityNotFound when the
	// city cannot be resolved, or a transport error otherwise.
	currentWeather(ctx context.Context, city, countryCode string) (*schema.WeatherReport, error)
	// forecast returns a normalized daily forecast with the backend-specific
	// data key, under the same error contract as currentWeather.
	forecast(ctx context.Context, city string, days int) (*forecastBundle, error)
}

// newProvider picks the backend from configuration. The legacy backend needs
// an API key; without one the free OpenMeteo flow is used regardless of the
// configured provider name.
func newProvider(cfg *configs.WeatherConfig) provider {
	if cfg.Provider == "openweathermap" && cfg.ApiKey != "" {
		return newLegacyProvider(cfg)
	}
	return &openMeteoProvider{client: newOpenMeteoClient(cfg)}
}

type openMeteoProvider struct {
	client *openMeteoClient
}

func (p *openMeteoProvider) label() string        { return "OpenMeteo API" }
func (p *openMeteoProvider) maxForecastDays() int { return maxOpenMeteoDays }

func (p *openMeteoProvider) currentWeather(ctx context.Context, city, countryCode string) (*schema.WeatherReport, error) {
	_ = countryCode // OpenMeteo geocoding disambiguates on its own.

	loc, err := p.client.geocode(ctx, city)
	if err != nil {
		return nil, err
	}

	current, err := p.client.current(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		return nil, err
	}

	return &schema.WeatherReport{
		City:                  loc.Name,
		Country:               loc.Country,
		TemperatureCelsius:    utils.Round1(current.Temperature2m),
		TemperatureFahrenheit: utils.Round1(schema.CelsiusToFahrenheit(current.Temperature2m)),
		Description:           geodata.DescribeWeatherCode(current.WeatherCode),
		Humidity:              current.RelativeHumidity2m,
		WindSpeed:             current.WindSpeed10m,
		Pressure:              current.SurfacePressure,
		Timestamp:             schema.Timestamp(time.Now()),
	}, nil
}

func (p *openMeteoProvider) forecast(ctx context.Context, city string, days int) (*forecastBundle, error) {
	loc, err := p.client.geocode(ctx, city)
	if err != nil {
		return nil, err
	}

	daily, err := p.client.daily(ctx, loc.Latitude, loc.Longitude, days)
	if err != nil {
		return nil, err
	}

	n := len(daily.Time)
	if len(daily.Temperature2mMax) < n || len(daily.Temperature2mMin) < n || len(daily.WeatherCode) < n {
		return nil, fmt.Errorf("daily payload arrays shorter than time axis (%d entries)", n)
	}

	bundle := &forecastBundle{
		City:    loc.Name,
		Country: loc.Country,
		DataKey: "forecast_days",
	}
	for i := range daily.Time {
		tempMax := daily.Temperature2mMax[i]
		tempMin := daily.Temperature2mMin[i]
		avgTemp := (tempMax + tempMin) / 2

		day := forecastDay{
			Date:                  daily.Time[i],
			TemperatureCelsius:    utils.Round1(avgTemp),
			TemperatureFahrenheit: utils.Round1(schema.CelsiusToFahrenheit(avgTemp)),
			TemperatureMax:        utils.Round1(tempMax),
			TemperatureMin:        utils.Round1(tempMin),
			Description:           geodata.DescribeWeatherCode(daily.WeatherCode[i]),
		}
		if i < len(daily.RelativeHumidity2mMean) {
			day.Humidity = daily.RelativeHumidity2mMean[i]
		}
		if i < len(daily.WindSpeed10mMax) {
			day.WindSpeed = daily.WindSpeed10mMax[i]
		}
		bundle.Days = append(bundle.Days, day)
	}
	return bundle, nil
}
