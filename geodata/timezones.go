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

package geodata

import "strings"

// timezoneKeys fixes the scan order for the substring fallback.
var timezoneKeys = []string{
	"new york",
	"los angeles",
	"chicago",
	"london",
	"paris",
	"berlin",
	"rome",
	"madrid",
	"tokyo",
	"beijing",
	"shanghai",
	"hong kong",
	"singapore",
	"mumbai",
	"delhi",
	"dubai",
	"sydney",
	"melbourne",
	"moscow",
	"istanbul",
	"cairo",
	"johannesburg",
	"lagos",
	"toronto",
	"vancouver",
	"montreal",
	"mexico city",
	"buenos aires",
	"sao paulo",
	"rio de janeiro",
}

var timezoneMap = map[string]string{
	"new york":       "America/New_York",
	"los angeles":    "America/Los_Angeles",
	"chicago":        "America/Chicago",
	"london":         "Europe/London",
	"paris":          "Europe/Paris",
	"berlin":         "Europe/Berlin",
	"rome":           "Europe/Rome",
	"madrid":         "Europe/Madrid",
	"tokyo":          "Asia/Tokyo",
	"beijing":        "Asia/Shanghai",
	"shanghai":       "Asia/Shanghai",
	"hong kong":      "Asia/Hong_Kong",
	"singapore":      "Asia/Singapore",
	"mumbai":         "Asia/Kolkata",
	"delhi":          "Asia/Kolkata",
	"dubai":          "Asia/Dubai",
	"sydney":         "Australia/Sydney",
	"melbourne":      "Australia/Melbourne",
	"moscow":         "Europe/Moscow",
	"istanbul":       "Europe/Istanbul",
	"cairo":          "Africa/Cairo",
	"johannesburg":   "Africa/Johannesburg",
	"lagos":          "Africa/Lagos",
	"toronto":        "America/Toronto",
	"vancouver":      "America/Vancouver",
	"montreal":       "America/Montreal",
	"mexico city":    "America/Mexico_City",
	"buenos aires":   "America/Argentina/Buenos_Aires",
	"sao paulo":      "America/Sao_Paulo",
	"rio de janeiro": "America/Sao_Paulo",
}

// ResolveTimezone maps a free-text city name to an IANA timezone identifier.
// Input is lower-cased and trimmed; an exact key match is tried first, then a
// linear scan accepting the first key that contains the input or is contained
// by it. No diacritic or punctuation normalization is performed.
func ResolveTimezone(city string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(city))
	if tz, ok := timezoneMap[key]; ok {
		return tz, true
	}
	for _, mapped := range timezoneKeys {
		if strings.Contains(mapped, key) || strings.Contains(key, mapped) {
			return timezoneMap[mapped], true
		}
	}
	return "", false
}

// SupportedCitiesByRegion groups the timezone table's cities for display.
func SupportedCitiesByRegion() map[string][]string {
	return map[string][]string{
		"North America": {
			"New York", "Los Angeles", "Chicago", "Toronto", "Vancouver",
			"Montreal", "Mexico City",
		},
		"Europe": {
			"London", "Paris", "Berlin", "Rome", "Madrid", "Moscow", "Istanbul",
		},
		"Asia": {
			"Tokyo", "Beijing", "Shanghai", "Hong Kong", "Singapore",
			"Mumbai", "Delhi", "Dubai",
		},
		"Oceania": {
			"Sydney", "Melbourne",
		},
		"Africa": {
			"Cairo", "Johannesburg", "Lagos",
		},
		"South America": {
			"Buenos Aires", "Sao Paulo", "Rio de Janeiro",
		},
	}
}
