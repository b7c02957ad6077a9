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
package utils

import (
	"os"
	"testing"
)

func TestGetEnvWithDefault(t *testing.T) {
	_ = os.Setenv("TRAVELDESK_TEST_KEY", "from-env")
	defer func() {
		_ = os.Unsetenv("TRAVELDESK_TEST_KEY")
	}()

	tests := []struct {
		name     string
		key      string
		defaults []string
		expected string
	}{
		{
			name:     "env var set",
			key:      "TRAVELDESK_TEST_KEY",
			defaults: []string{"fallback"},
			expected: "from-env",
		},
		{
			name:     "unset with default",
			key:      "TRAVELDESK_TEST_MISSING",
			defaults: []string{"fallback"},
			expected: "fallback",
		},
		{
			name:     "unset skips empty defaults",
			key:      "TRAVELDESK_TEST_MISSING",
			defaults: []string{"", "second"},
			expected: "second",
		},
		{
			name:     "unset no defaults",
			key:      "TRAVELDESK_TEST_MISSING",
			defaults: nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetEnvWithDefault(tt.key, tt.defaults...)
			if got != tt.expected {
				t.Errorf("GetEnvWithDefault(%q) = %q, want %q", tt.key, got, tt.expected)
			}
		})
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"new york", "New York"},
		{"  london  ", "London"},
		{"TOKYO", "Tokyo"},
		{"rio de janeiro", "Rio De Janeiro"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := TitleCase(tt.in); got != tt.expected {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}

func TestRound1(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{22.449, 22.4},
		{22.46, 22.5},
		{-3.14, -3.1},
		{0, 0},
	}

	for _, tt := range tests {
		if got := Round1(tt.in); got != tt.expected {
			t.Errorf("Round1(%v) = %v, want %v", tt.in, got, tt.expected)
		}
	}
}
