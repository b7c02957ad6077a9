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

// OpenMeteo geocoding response.

type geocodingResponse struct {
	Results []geocodingResult `json:"results"`
}

type geocodingResult struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// OpenMeteo current-conditions response.

type currentResponse struct {
	Current currentBlock `json:"current"`
}

type currentBlock struct {
	Temperature2m      float64  `json:"temperature_2m"`
	RelativeHumidity2m *int     `json:"relative_humidity_2m"`
	WindSpeed10m       *float64 `json:"wind_speed_10m"`
	WeatherCode        int      `json:"weather_code"`
	SurfacePressure    *float64 `json:"surface_pressure"`
}

// OpenMeteo daily-aggregate response.

type dailyResponse struct {
	Daily dailyBlock `json:"daily"`
}

type dailyBlock struct {
	Time                   []string  `json:"time"`
	Temperature2mMax       []float64 `json:"temperature_2m_max"`
	Temperature2mMin       []float64 `json:"temperature_2m_min"`
	WeatherCode            []int     `json:"weather_code"`
	RelativeHumidity2mMean []int     `json:"relative_humidity_2m_mean"`
	WindSpeed10mMax        []float64 `json:"wind_speed_10m_max"`
}

// Legacy OpenWeatherMap responses.

type legacyCurrentResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
		Pressure float64 `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Visibility *float64 `json:"visibility"`
}

type legacyForecastResponse struct {
	City struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"city"`
	List []legacyForecastEntry `json:"list"`
}

type legacyForecastEntry struct {
	DtTxt string `json:"dt_txt"`
	Main  struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

// forecastDay is the normalized per-day record shared by both backends.
type forecastDay struct {
	Date                  string  `json:"date"`
	TemperatureCelsius    float64 `json:"temperature_celsius"`
	TemperatureFahrenheit float64 `json:"temperature_fahrenheit"`
	TemperatureMax        float64 `json:"temperature_max,omitempty"`
	TemperatureMin        float64 `json:"temperature_min,omitempty"`
	Description           string  `json:"description"`
	Humidity              int     `json:"humidity"`
	WindSpeed             float64 `json:"wind_speed"`
}

// forecastBundle carries a normalized forecast plus the backend-specific key
// under which the day list is reported ("forecast_days" for OpenMeteo,
// "forecasts" for the legacy backend). The two shapes are deliberately not
// merged.
type forecastBundle struct {
	City    string
	Country string
	DataKey string
	Days    []forecastDay
}
