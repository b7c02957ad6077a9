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
	"net/url"
	"strings"
	"time"

	"github.com/traveldesk/traveldesk-go/configs"
	"github.com/traveldesk/traveldesk-go/schema"
	"github.com/traveldesk/traveldesk-go/utils"
)

// legacyProvider is the API-key OpenWeatherMap backend kept for
// installations that already hold a key. Its forecast payload uses the
// "forecasts" key and tops out at five days.
type legacyProvider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func newLegacyProvider(cfg *configs.WeatherConfig) *legacyProvider {
	return &legacyProvider{
		baseURL:    strings.TrimSuffix(cfg.LegacyBaseURL, "/"),
		apiKey:     cfg.ApiKey,
		httpClient: &http.Client{Timeout: cfg.Timeout()},
	}
}

func (p *legacyProvider) label() string        { return "OpenWeatherMap API" }
func (p *legacyProvider) maxForecastDays() int { return maxLegacyDays }

func (p *legacyProvider) currentWeather(ctx context.Context, city, countryCode string) (*schema.WeatherReport, error) {
	query := city
	if countryCode != "" {
		query = fmt.Sprintf("%s,%s", city, countryCode)
	}

	queries := make(url.Values)
	queries.Set("q", query)
	queries.Set("appid", p.apiKey)
	queries.Set("units", "metric")

	var resp legacyCurrentResponse
	if err := p.getJSON(ctx, "/weather", queries, &resp); err != nil {
		return nil, err
	}

	description := "Unknown"
	if len(resp.Weather) > 0 {
		description = utils.TitleCase(resp.Weather[0].Description)
	}

	humidity := resp.Main.Humidity
	windSpeed := resp.Wind.Speed
	pressure := resp.Main.Pressure
	report := &schema.WeatherReport{
		City:                  resp.Name,
		Country:               resp.Sys.Country,
		TemperatureCelsius:    utils.Round1(resp.Main.Temp),
		TemperatureFahrenheit: utils.Round1(schema.CelsiusToFahrenheit(resp.Main.Temp)),
		Description:           description,
		Humidity:              &humidity,
		WindSpeed:             &windSpeed,
		Pressure:              &pressure,
		Timestamp:             schema.Timestamp(time.Now()),
	}
	if resp.Visibility != nil {
		// OpenWeatherMap reports meters; reports carry kilometers.
		km := *resp.Visibility / 1000
		report.Visibility = &km
	}
	return report, nil
}

func (p *legacyProvider) forecast(ctx context.Context, city string, days int) (*forecastBundle, error) {
	queries := make(url.Values)
	queries.Set("q", city)
	queries.Set("appid", p.apiKey)
	queries.Set("units", "metric")

	var resp legacyForecastResponse
	if err := p.getJSON(ctx, "/forecast", queries, &resp); err != nil {
		return nil, err
	}
	if len(resp.List) == 0 {
		return nil, ErrCityNotFound
	}

	bundle := &forecastBundle{
		City:    resp.City.Name,
		Country: resp.City.Country,
		DataKey: "forecasts",
	}

	// The 3-hourly list collapses into per-day records, first-seen order.
	type agg struct {
		tempSum  float64
		humSum   int
		windMax  float64
		count    int
		firstWea string
	}
	var order []string
	byDate := make(map[string]*agg)
	for _, entry := range resp.List {
		date := entry.DtTxt
		if len(date) >= 10 {
			date = date[:10]
		}
		a, ok := byDate[date]
		if !ok {
			a = &agg{}
			byDate[date] = a
			order = append(order, date)
		}
		a.tempSum += entry.Main.Temp
		a.humSum += entry.Main.Humidity
		if entry.Wind.Speed > a.windMax {
			a.windMax = entry.Wind.Speed
		}
		if a.firstWea == "" && len(entry.Weather) > 0 {
			a.firstWea = utils.TitleCase(entry.Weather[0].Description)
		}
		a.count++
	}

	for _, date := range order {
		if len(bundle.Days) >= days {
			break
		}
		a := byDate[date]
		avgTemp := a.tempSum / float64(a.count)
		description := a.firstWea
		if description == "" {
			description = "Unknown"
		}
		bundle.Days = append(bundle.Days, forecastDay{
			Date:                  date,
			TemperatureCelsius:    utils.Round1(avgTemp),
			TemperatureFahrenheit: utils.Round1(schema.CelsiusToFahrenheit(avgTemp)),
			Description:           description,
			Humidity:              a.humSum / a.count,
			WindSpeed:             utils.Round1(a.windMax),
		})
	}
	return bundle, nil
}

func (p *legacyProvider) getJSON(ctx context.Context, path string, queries url.Values, out any) error {
	requestAddr := fmt.Sprintf("%s%s?%s", p.baseURL, path, queries.Encode())
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestAddr, nil)
	if err != nil {
		return fmt.Errorf("legacy weather bad request: %w", err)
	}

	response, err := p.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("legacy weather do request err: %w", err)
	}
	defer func() {
		_ = response.Body.Close()
	}()

	if response.StatusCode == http.StatusNotFound {
		return ErrCityNotFound
	}
	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("legacy weather get bad response code: %v", response.StatusCode)
	}

	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		return fmt.Errorf("legacy weather unmarshal response err: %w", err)
	}
	return nil
}
