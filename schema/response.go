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

// Package schema defines the tagged success/error envelope shared by every
// tool, and the report payloads the tools produce.
package schema

import (
	"encoding/json"
	"time"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Stable symbolic error codes carried on error responses.
const (
	ErrCodeCityNotFound     = "CITY_NOT_FOUND"
	ErrCodeMockCityNotFound = "MOCK_CITY_NOT_FOUND"
	ErrCodeTimezoneNotFound = "TIMEZONE_NOT_FOUND"
	ErrCodeInvalidTimezone  = "INVALID_TIMEZONE"
	ErrCodeNoResults        = "NO_RESULTS"
	ErrCodeServiceUnavail   = "SERVICE_UNAVAILABLE"
	ErrCodeUnexpected       = "UNEXPECTED_ERROR"
	ErrCodeTime             = "TIME_ERROR"
	ErrCodeCityInfo         = "CITY_INFO_ERROR"
	ErrCodeSearch           = "SEARCH_ERROR"
	ErrCodeList             = "LIST_ERROR"
)

// ToolResponse is the envelope every tool call returns. Status is either
// "success" or "error"; Data is populated on success, Message and ErrorCode
// on error (Message may accompany success as well). Tool boundaries never
// let an error escape as anything but this shape.
type ToolResponse struct {
	Status    string         `json:"status"`
	Data      map[string]any `json:"data,omitempty"`
	Message   string         `json:"message,omitempty"`
	ErrorCode string         `json:"error_code,omitempty"`
}

func Success(data map[string]any, message string) ToolResponse {
	return ToolResponse{
		Status:  StatusSuccess,
		Data:    data,
		Message: message,
	}
}

func Error(message, errorCode string) ToolResponse {
	return ToolResponse{
		Status:    StatusError,
		Message:   message,
		ErrorCode: errorCode,
	}
}

// WeatherReport describes current conditions for a city. Fahrenheit is always
// derived from Celsius, never fetched separately.
type WeatherReport struct {
	City                  string   `json:"city"`
	Country               string   `json:"country"`
	TemperatureCelsius    float64  `json:"temperature_celsius"`
	TemperatureFahrenheit float64  `json:"temperature_fahrenheit"`
	Description           string   `json:"description"`
	Humidity              *int     `json:"humidity,omitempty"`
	WindSpeed             *float64 `json:"wind_speed,omitempty"`
	Pressure              *float64 `json:"pressure,omitempty"`
	Visibility            *float64 `json:"visibility,omitempty"`
	Timestamp             string   `json:"timestamp"`
}

// TimeReport describes the current wall clock in a city's timezone.
type TimeReport struct {
	City        string `json:"city"`
	Timezone    string `json:"timezone"`
	CurrentTime string `json:"current_time"`
	UTCOffset   string `json:"utc_offset"`
	IsDST       bool   `json:"is_dst"`
}

// CelsiusToFahrenheit applies the only temperature conversion the tools use.
func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// AsMap converts a report struct into the loosely-typed mapping carried by
// ToolResponse.Data, honoring json tags and omitempty.
func AsMap(v any) map[string]any {
	raw, err := json.Marshal(v)
	if err != nil {
		return map[string]any{}
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return map[string]any{}
	}
	return out
}

// Timestamp renders a capture time the way reports carry it.
func Timestamp(t time.Time) string {
	return t.Format("2006-01-02T15:04:05")
}
