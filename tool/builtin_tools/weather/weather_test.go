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
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/traveldesk/traveldesk-go/common"
	"github.com/traveldesk/traveldesk-go/schema"
	"google.golang.org/adk/tool"
)

// The stub upstream drives every backend path through one server: empty
// geocoding results, a sentinel latitude that makes the forecast endpoint
// fail, and a normal city otherwise.
const brokenLatitude = "99.0000"

// truncatedLatitude makes the daily endpoint answer with temperature and
// weather-code arrays shorter than the time axis.
const truncatedLatitude = "77.0000"

func stubUpstream() *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/v1/search", func(w http.ResponseWriter, r *http.Request) {
		name := strings.ToLower(r.URL.Query().Get("name"))
		switch name {
		case "atlantis":
			_ = json.NewEncoder(w).Encode(geocodingResponse{})
		case "new york", "failville":
			_ = json.NewEncoder(w).Encode(geocodingResponse{Results: []geocodingResult{
				{Name: r.URL.Query().Get("name"), Country: "Nowhere", Latitude: 99, Longitude: 0},
			}})
		case "shortville":
			_ = json.NewEncoder(w).Encode(geocodingResponse{Results: []geocodingResult{
				{Name: "Shortville", Country: "Nowhere", Latitude: 77, Longitude: 0},
			}})
		default:
			_ = json.NewEncoder(w).Encode(geocodingResponse{Results: []geocodingResult{
				{Name: "Geneva", Country: "Switzerland", Latitude: 46.2, Longitude: 6.14},
			}})
		}
	})

	mux.HandleFunc("/v1/forecast", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("latitude") == brokenLatitude {
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		if r.URL.Query().Get("daily") != "" {
			days, _ := strconv.Atoi(r.URL.Query().Get("forecast_days"))
			if r.URL.Query().Get("latitude") == truncatedLatitude {
				_ = json.NewEncoder(w).Encode(dailyResponse{Daily: dailyBlock{
					Time:             []string{"2026-08-30", "2026-08-31", "2026-09-01"},
					Temperature2mMax: []float64{20},
					Temperature2mMin: []float64{10},
					WeatherCode:      []int{3},
				}})
				return
			}
			var daily dailyBlock
			for i := 0; i < days; i++ {
				daily.Time = append(daily.Time, fmt.Sprintf("2026-08-%02d", 30+i))
				daily.Temperature2mMax = append(daily.Temperature2mMax, float64(20+i))
				daily.Temperature2mMin = append(daily.Temperature2mMin, float64(10+i))
				daily.WeatherCode = append(daily.WeatherCode, 3)
				daily.RelativeHumidity2mMean = append(daily.RelativeHumidity2mMean, 55)
				daily.WindSpeed10mMax = append(daily.WindSpeed10mMax, 12.5)
			}
			_ = json.NewEncoder(w).Encode(dailyResponse{Daily: daily})
			return
		}

		humidity := 55
		wind := 10.2
		pressure := 1001.2
		_ = json.NewEncoder(w).Encode(currentResponse{Current: currentBlock{
			Temperature2m:      21.5,
			RelativeHumidity2m: &humidity,
			WindSpeed10m:       &wind,
			WeatherCode:        3,
			SurfacePressure:    &pressure,
		}})
	})

	return httptest.NewServer(mux)
}

func TestMain(m *testing.M) {
	srv := stubUpstream()
	// The global config is resolved once, so the stub endpoints must be in
	// place before the first tool call.
	os.Setenv(common.WEATHER_GEOCODING_URL, srv.URL+"/v1/search")
	os.Setenv(common.WEATHER_FORECAST_URL, srv.URL+"/v1/forecast")

	code := m.Run()
	srv.Close()
	os.Exit(code)
}

func TestGetWeatherSuccess(t *testing.T) {
	resp := GetWeather(context.Background(), "Geneva", "")

	assert.Equal(t, schema.StatusSuccess, resp.Status)
	assert.Equal(t, "Weather information retrieved for Geneva, Switzerland (OpenMeteo API)", resp.Message)
	assert.Equal(t, "Geneva", resp.Data["city"])
	assert.Equal(t, "Switzerland", resp.Data["country"])
	assert.Equal(t, 21.5, resp.Data["temperature_celsius"])
	assert.Equal(t, 70.7, resp.Data["temperature_fahrenheit"])
	assert.Equal(t, "Overcast", resp.Data["description"])
	assert.Equal(t, float64(55), resp.Data["humidity"])
}

func TestGetWeatherCityNotFound(t *testing.T) {
	resp := GetWeather(context.Background(), "Atlantis", "")

	assert.Equal(t, schema.StatusError, resp.Status)
	assert.Equal(t, schema.ErrCodeCityNotFound, resp.ErrorCode)
	assert.Contains(t, resp.Message, "'Atlantis' not found")
	assert.Nil(t, resp.Data)
}

func TestGetWeatherFallsBackToMock(t *testing.T) {
	// Geocoding resolves but the forecast endpoint fails, so the fixed mock
	// table answers instead of an error.
	resp := GetWeather(context.Background(), "New York", "")

	assert.Equal(t, schema.StatusSuccess, resp.Status)
	assert.Equal(t, "Mock weather data for New York (API unavailable)", resp.Message)
	assert.Equal(t, "New York", resp.Data["city"])
	assert.Equal(t, float64(22), resp.Data["temperature_celsius"])
	assert.Equal(t, 71.6, resp.Data["temperature_fahrenheit"])
	assert.Equal(t, float64(65), resp.Data["humidity"])
}

func TestGetWeatherMockMiss(t *testing.T) {
	// Backend failure for a city outside the mock table is the one case
	// where degradation itself fails.
	resp := GetWeather(context.Background(), "Failville", "")

	assert.Equal(t, schema.StatusError, resp.Status)
	assert.Equal(t, schema.ErrCodeMockCityNotFound, resp.ErrorCode)
}

func TestGetForecastSuccess(t *testing.T) {
	resp := GetForecast(context.Background(), "Geneva", 3)

	assert.Equal(t, schema.StatusSuccess, resp.Status)
	assert.Equal(t, "3-day weather forecast for Geneva (OpenMeteo API)", resp.Message)
	assert.Equal(t, "Geneva", resp.Data["city"])

	days, ok := resp.Data["forecast_days"].([]any)
	assert.True(t, ok)
	assert.Len(t, days, 3)

	first := days[0].(map[string]any)
	assert.Equal(t, "2026-08-30", first["date"])
	assert.Equal(t, float64(15), first["temperature_celsius"]) // avg of 20 and 10
	assert.Equal(t, float64(59), first["temperature_fahrenheit"])
	assert.Equal(t, "Overcast", first["description"])
}

func TestGetForecastDegradesToSynthetic(t *testing.T) {
	resp := GetForecast(context.Background(), "New York", 4)

	assert.Equal(t, schema.StatusSuccess, resp.Status)
	assert.Equal(t, "Mock 4-day forecast for New York (API unavailable)", resp.Message)

	days, ok := resp.Data["forecasts"].([]any)
	assert.True(t, ok)
	assert.Len(t, days, 4)

	second := days[1].(map[string]any)
	assert.Equal(t, float64(21), second["temperature_celsius"])
	assert.Equal(t, 69.8, second["temperature_fahrenheit"])
	assert.Equal(t, "Partly Cloudy", second["description"])
	assert.Equal(t, float64(65), second["humidity"])
}

func TestGetForecastTruncatedPayloadDegradesToSynthetic(t *testing.T) {
	resp := GetForecast(context.Background(), "Shortville", 3)

	assert.Equal(t, schema.StatusSuccess, resp.Status)
	assert.Equal(t, "Mock 3-day forecast for Shortville (API unavailable)", resp.Message)

	days, ok := resp.Data["forecasts"].([]any)
	assert.True(t, ok)
	assert.Len(t, days, 3)
}

func TestGetForecastCityNotFound(t *testing.T) {
	resp := GetForecast(context.Background(), "Atlantis", 5)

	assert.Equal(t, schema.StatusError, resp.Status)
	assert.Equal(t, schema.ErrCodeCityNotFound, resp.ErrorCode)
	assert.Equal(t, "City 'Atlantis' not found for forecast", resp.Message)
}

func TestGetForecastClampsDays(t *testing.T) {
	resp := GetForecast(context.Background(), "Geneva", 50)

	assert.Equal(t, schema.StatusSuccess, resp.Status)
	days := resp.Data["forecast_days"].([]any)
	assert.Len(t, days, maxOpenMeteoDays)

	resp = GetForecast(context.Background(), "Geneva", -2)
	days = resp.Data["forecast_days"].([]any)
	assert.Len(t, days, 1)
}

// canceledToolContext carries a real cancellation signal into a tool handler.
// Only the context methods are exercised; the embedded interface covers the
// rest of the surface.
type canceledToolContext struct {
	tool.Context
	ctx context.Context
}

func (c canceledToolContext) Deadline() (time.Time, bool) { return c.ctx.Deadline() }
func (c canceledToolContext) Done() <-chan struct{}       { return c.ctx.Done() }
func (c canceledToolContext) Err() error                  { return c.ctx.Err() }
func (c canceledToolContext) Value(key any) any           { return c.ctx.Value(key) }

func TestWeatherHandlerHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := weatherHandler(canceledToolContext{ctx: ctx}, WeatherArgs{City: "London"})
	assert.NoError(t, err)
	assert.Equal(t, schema.StatusSuccess, resp.Status)
	assert.Equal(t, "Mock weather data for London (API unavailable)", resp.Message)
}

func TestClampDays(t *testing.T) {
	tests := []struct {
		days, max, want int
	}{
		{0, 14, 1},
		{-3, 14, 1},
		{1, 14, 1},
		{7, 14, 7},
		{14, 14, 14},
		{15, 14, 14},
		{10, 5, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, clampDays(tt.days, tt.max), "clampDays(%d, %d)", tt.days, tt.max)
	}
}

func TestMockWeatherTable(t *testing.T) {
	for _, city := range []string{"new york", "London", "TOKYO", "Paris", "sydney"} {
		resp := mockWeather(city)
		assert.Equal(t, schema.StatusSuccess, resp.Status, "city %s", city)
		assert.Contains(t, resp.Message, "API unavailable")
	}
}
