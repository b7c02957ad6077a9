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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/traveldesk/traveldesk-go/configs"
)

func newTestLegacyProvider(url string) *legacyProvider {
	return newLegacyProvider(&configs.WeatherConfig{
		Provider:       "openweathermap",
		ApiKey:         "test-key",
		LegacyBaseURL:  url,
		TimeoutSeconds: 5,
	})
}

func TestLegacyCurrentWeather(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "Berlin,DE", r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		w.Write([]byte(`{
			"name": "Berlin",
			"sys": {"country": "DE"},
			"main": {"temp": 19.34, "humidity": 72, "pressure": 1008.5},
			"wind": {"speed": 4.1},
			"weather": [{"description": "scattered clouds"}],
			"visibility": 8000
		}`))
	}))
	defer srv.Close()

	p := newTestLegacyProvider(srv.URL)
	report, err := p.currentWeather(context.Background(), "Berlin", "DE")

	assert.NoError(t, err)
	assert.Equal(t, "Berlin", report.City)
	assert.Equal(t, "DE", report.Country)
	assert.Equal(t, 19.3, report.TemperatureCelsius)
	assert.Equal(t, 66.8, report.TemperatureFahrenheit)
	assert.Equal(t, "Scattered Clouds", report.Description)
	if assert.NotNil(t, report.Visibility) {
		assert.Equal(t, 8.0, *report.Visibility)
	}
}

func TestLegacyCurrentWeatherNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	p := newTestLegacyProvider(srv.URL)
	_, err := p.currentWeather(context.Background(), "Nowhere", "")
	assert.ErrorIs(t, err, ErrCityNotFound)
}

func TestLegacyForecastAggregation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)
		w.Write([]byte(`{
			"city": {"name": "Berlin", "country": "DE"},
			"list": [
				{"dt_txt": "2026-08-30 09:00:00", "main": {"temp": 18, "humidity": 70}, "wind": {"speed": 3.0}, "weather": [{"description": "light rain"}]},
				{"dt_txt": "2026-08-30 15:00:00", "main": {"temp": 22, "humidity": 60}, "wind": {"speed": 5.5}, "weather": [{"description": "overcast clouds"}]},
				{"dt_txt": "2026-08-31 09:00:00", "main": {"temp": 21, "humidity": 65}, "wind": {"speed": 2.2}, "weather": [{"description": "clear sky"}]}
			]
		}`))
	}))
	defer srv.Close()

	p := newTestLegacyProvider(srv.URL)
	bundle, err := p.forecast(context.Background(), "Berlin", 5)

	assert.NoError(t, err)
	assert.Equal(t, "forecasts", bundle.DataKey)
	assert.Len(t, bundle.Days, 2)

	first := bundle.Days[0]
	assert.Equal(t, "2026-08-30", first.Date)
	assert.Equal(t, 20.0, first.TemperatureCelsius) // avg of 18 and 22
	assert.Equal(t, 68.0, first.TemperatureFahrenheit)
	assert.Equal(t, "Light Rain", first.Description) // first entry of the day wins
	assert.Equal(t, 65, first.Humidity)
	assert.Equal(t, 5.5, first.WindSpeed)

	second := bundle.Days[1]
	assert.Equal(t, "2026-08-31", second.Date)
	assert.Equal(t, "Clear Sky", second.Description)
}

func TestLegacyForecastDayLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"city": {"name": "Berlin", "country": "DE"},
			"list": [
				{"dt_txt": "2026-08-30 09:00:00", "main": {"temp": 18, "humidity": 70}, "wind": {"speed": 3.0}, "weather": [{"description": "clear sky"}]},
				{"dt_txt": "2026-08-31 09:00:00", "main": {"temp": 19, "humidity": 70}, "wind": {"speed": 3.0}, "weather": [{"description": "clear sky"}]},
				{"dt_txt": "2026-09-01 09:00:00", "main": {"temp": 20, "humidity": 70}, "wind": {"speed": 3.0}, "weather": [{"description": "clear sky"}]}
			]
		}`))
	}))
	defer srv.Close()

	p := newTestLegacyProvider(srv.URL)
	bundle, err := p.forecast(context.Background(), "Berlin", 2)

	assert.NoError(t, err)
	assert.Len(t, bundle.Days, 2)
}

func TestProviderSelection(t *testing.T) {
	tests := []struct {
		name       string
		cfg        configs.WeatherConfig
		wantLegacy bool
	}{
		{"default is openmeteo", configs.WeatherConfig{Provider: "openmeteo"}, false},
		{"legacy without key falls back", configs.WeatherConfig{Provider: "openweathermap"}, false},
		{"legacy with key", configs.WeatherConfig{Provider: "openweathermap", ApiKey: "k"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newProvider(&tt.cfg)
			_, isLegacy := p.(*legacyProvider)
			assert.Equal(t, tt.wantLegacy, isLegacy)
		})
	}
}
