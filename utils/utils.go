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

package utils

import (
	"math"
	"os"
	"strings"
	"unicode"
)

// GetEnvWithDefault returns the value of the environment variable named key.
// When the variable is unset or empty, the first non-empty default is returned.
func GetEnvWithDefault(key string, defaults ...string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	for _, d := range defaults {
		if d != "" {
			return d
		}
	}
	return ""
}

// Must panics on err, otherwise returns v. Reserved for initialization paths
// where a failure means the process cannot start.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// TitleCase upper-cases the first letter of every space-separated word,
// matching how city names are rendered in tool messages ("new york" -> "New York").
func TitleCase(s string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// Round1 rounds to one decimal place. Temperatures in reports are always
// rendered at this precision.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
