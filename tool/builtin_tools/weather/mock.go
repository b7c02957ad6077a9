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
	"fmt"
	"strings"
	"time"

	"github.com/traveldesk/traveldesk-go/schema"
	"github.com/traveldesk/traveldesk-go/utils"
)

// mockEntry is one row of the fixed fallback table used when the live
// endpoints are unreachable.
type mockEntry struct {
	temp    float64
	desc    string
	country string
}

var mockWeatherData = map[string]mockEntry{
	"new york": {temp: 22, desc: "Partly Cloudy", country: "US"},
	"london":   {temp: 15, desc: "Rainy", country: "GB"},
	"tokyo":    {temp: 28, desc: "Sunny", country: "JP"},
	"paris":    {temp: 18, desc: "Cloudy", country: "FR"},
	"sydney":   {temp: 25, desc: "Clear", country: "AU"},
}

var syntheticDescriptions = []string{"Sunny", "Partly Cloudy", "Cloudy", "Rainy", "Clear"}

// mockWeather serves the fallback table for a city, or a
// MOCK_CITY_NOT_FOUND error when the city has no mock entry.
func mockWeather(city string) schema.ToolResponse {
	entry, ok := mockWeatherData[strings.ToLower(strings.TrimSpace(city))]
	if !ok {
		return schema.Error(
			fmt.Sprintf("Weather information for '%s' is not available in mock data", city),
			schema.ErrCodeMockCityNotFound,
		)
	}

	humidity := 65
	windSpeed := 5.2
	pressure := 1013.25
	visibility := 10.0
	report := schema.WeatherReport{
		City:                  utils.TitleCase(city),
		Country:               entry.country,
		TemperatureCelsius:    entry.temp,
		TemperatureFahrenheit: utils.Round1(schema.CelsiusToFahrenheit(entry.temp)),
		Description:           entry.desc,
		Humidity:              &humidity,
		WindSpeed:             &windSpeed,
		Pressure:              &pressure,
		Visibility:            &visibility,
		Timestamp:             schema.Timestamp(time.Now()),
	}

	return schema.Success(
		schema.AsMap(report),
		fmt.Sprintf("Mock weather data for %s (API unavailable)", city),
	)
}

// syntheticForecast builds a deterministic forecast when the live endpoints
// fail: temperature rises 1°C per day from a 20°C base, descriptions cycle
// through a fixed list, humidity and wind grow linearly with the day index.
func syntheticForecast(city string, days int) schema.ToolResponse {
	const baseTemp = 20.0
	baseDate := time.Now()
	baseDate = time.Date(baseDate.Year(), baseDate.Month(), baseDate.Day(), 12, 0, 0, 0, baseDate.Location())

	forecasts := make([]forecastDay, 0, days)
	for i := 0; i < days; i++ {
		temp := baseTemp + float64(i)
		forecasts = append(forecasts, forecastDay{
			Date:                  baseDate.AddDate(0, 0, i).Format("2006-01-02"),
			TemperatureCelsius:    temp,
			TemperatureFahrenheit: utils.Round1(schema.CelsiusToFahrenheit(temp)),
			Description:           syntheticDescriptions[i%len(syntheticDescriptions)],
			Humidity:              60 + i*5,
			WindSpeed:             3.0 + float64(i)*0.5,
		})
	}

	days64 := make([]any, len(forecasts))
	for i, f := range forecasts {
		days64[i] = schema.AsMap(f)
	}

	return schema.Success(
		map[string]any{
			"city":      utils.TitleCase(city),
			"country":   "Unknown",
			"forecasts": days64,
		},
		fmt.Sprintf("Mock %d-day forecast for %s (API unavailable)", days, city),
	)
}
