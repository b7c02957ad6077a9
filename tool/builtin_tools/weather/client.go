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
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/traveldesk/traveldesk-go/configs"
)

// ErrCityNotFound reports that geocoding returned no result for the city.
// Callers turn it into a typed error envelope instead of the mock fallback.
var ErrCityNotFound = errors.New("city not found")

// location is a resolved geocoding result.
type location struct {
	Name      string
	Country   string
	Latitude  float64
	Longitude float64
}

// openMeteoClient talks to the free OpenMeteo geocoding and forecast
// endpoints. Each call is attempted exactly once with the configured timeout;
// there are no retries.
type openMeteoClient struct {
	geocodingURL string
	forecastURL  string
	httpClient   *http.Client
}

func newOpenMeteoClient(cfg *configs.WeatherConfig) *openMeteoClient {
	return &openMeteoClient{
		geocodingURL: cfg.GeocodingURL,
		forecastURL:  cfg.ForecastURL,
		httpClient:   &http.Client{Timeout: cfg.Timeout()},
	}
}

func (c *openMeteoClient) geocode(ctx context.Context, city string) (*location, error) {
	queries := make(url.Values)
	queries.Set("name", city)
	queries.Set("count", "1")
	queries.Set("language", "en")
	queries.Set("format", "json")

	var resp geocodingResponse
	if err := c.getJSON(ctx, c.geocodingURL, queries, &resp); err != nil {
		return nil, err
	}

	if len(resp.Results) == 0 {
		return nil, ErrCityNotFound
	}

	r := resp.Results[0]
	country := r.Country
	if country == "" {
		country = "Unknown"
	}
	return &location{
		Name:      r.Name,
		Country:   country,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}, nil
}

func (c *openMeteoClient) current(ctx context.Context, lat, lon float64) (*currentBlock, error) {
	queries := make(url.Values)
	queries.Set("latitude", formatCoord(lat))
	queries.Set("longitude", formatCoord(lon))
	queries.Set("current", "temperature_2m,relative_humidity_2m,wind_speed_10m,weather_code,surface_pressure")
	queries.Set("timezone", "auto")
	queries.Set("units", "metric")

	var resp currentResponse
	if err := c.getJSON(ctx, c.forecastURL, queries, &resp); err != nil {
		return nil, err
	}
	return &resp.Current, nil
}

func (c *openMeteoClient) daily(ctx context.Context, lat, lon float64, days int) (*dailyBlock, error) {
	queries := make(url.Values)
	queries.Set("latitude", formatCoord(lat))
	queries.Set("longitude", formatCoord(lon))
	queries.Set("daily", "temperature_2m_max,temperature_2m_min,weather_code,relative_humidity_2m_mean,wind_speed_10m_max")
	queries.Set("timezone", "auto")
	queries.Set("forecast_days", strconv.Itoa(days))
	queries.Set("units", "metric")

	var resp dailyResponse
	if err := c.getJSON(ctx, c.forecastURL, queries, &resp); err != nil {
		return nil, err
	}
	return &resp.Daily, nil
}

func (c *openMeteoClient) getJSON(ctx context.Context, endpoint string, queries url.Values, out any) error {
	requestAddr := fmt.Sprintf("%s?%s", endpoint, queries.Encode())
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestAddr, nil)
	if err != nil {
		return fmt.Errorf("weather bad request: %w", err)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("weather do request err: %w", err)
	}
	defer func() {
		_ = response.Body.Close()
	}()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("weather get bad response code: %v", response.StatusCode)
	}

	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		return fmt.Errorf("weather unmarshal response err: %w", err)
	}
	return nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
