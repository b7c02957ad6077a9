// Copyright (c) 2025 TravelDesk Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccessEnvelope(t *testing.T) {
	resp := Success(map[string]any{"city": "Tokyo"}, "ok")
	assert.Equal(t, StatusSuccess, resp.Status)
	assert.Equal(t, "Tokyo", resp.Data["city"])
	assert.Equal(t, "ok", resp.Message)
	assert.Empty(t, resp.ErrorCode)
}

func TestErrorEnvelope(t *testing.T) {
	resp := Error("no such city", ErrCodeCityNotFound)
	assert.Equal(t, StatusError, resp.Status)
	assert.Nil(t, resp.Data)
	assert.Equal(t, "no such city", resp.Message)
	assert.Equal(t, ErrCodeCityNotFound, resp.ErrorCode)
}

func TestCelsiusToFahrenheit(t *testing.T) {
	tests := []struct {
		celsius    float64
		fahrenheit float64
	}{
		{0, 32},
		{100, 212},
		{-40, -40},
		{22, 71.6},
		{15, 59},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.fahrenheit, CelsiusToFahrenheit(tt.celsius), 0.001)
	}
}

func TestAsMapHonorsOmitempty(t *testing.T) {
	report := WeatherReport{
		City:                  "London",
		Country:               "GB",
		TemperatureCelsius:    15,
		TemperatureFahrenheit: 59,
		Description:           "Rainy",
		Timestamp:             "2025-01-01T12:00:00",
	}

	m := AsMap(report)
	assert.Equal(t, "London", m["city"])
	assert.Equal(t, "Rainy", m["description"])
	_, hasHumidity := m["humidity"]
	assert.False(t, hasHumidity)
}
