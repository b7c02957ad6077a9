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

// Package geodata holds the static reference tables: city profiles, the
// city-to-timezone map, and weather-code descriptions. All tables are
// initialized once and never mutated, so they are safe for concurrent reads.
package geodata

import "strings"

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// CityProfile is a descriptive record for one city, keyed in the database by
// the lower-cased city name.
type CityProfile struct {
	Name        string      `json:"name"`
	Country     string      `json:"country"`
	State       string      `json:"state"`
	Population  int         `json:"population"`
	Timezone    string      `json:"timezone"`
	Coordinates Coordinates `json:"coordinates"`
	FamousFor   []string    `json:"famous_for"`
}

// cityKeys fixes the scan order for substring matching; map iteration order
// would make the first-match-wins rule nondeterministic.
var cityKeys = []string{
	"new york",
	"london",
	"tokyo",
	"paris",
	"sydney",
	"dubai",
	"singapore",
	"los angeles",
}

var cityDatabase = map[string]CityProfile{
	"new york": {
		Name:        "New York City",
		Country:     "United States",
		State:       "New York",
		Population:  8336817,
		Timezone:    "America/New_York",
		Coordinates: Coordinates{Lat: 40.7128, Lon: -74.0060},
		FamousFor:   []string{"Statue of Liberty", "Central Park", "Times Square", "Broadway"},
	},
	"london": {
		Name:        "London",
		Country:     "United Kingdom",
		State:       "England",
		Population:  9648110,
		Timezone:    "Europe/London",
		Coordinates: Coordinates{Lat: 51.5074, Lon: -0.1278},
		FamousFor:   []string{"Big Ben", "Tower Bridge", "Buckingham Palace", "London Eye"},
	},
	"tokyo": {
		Name:        "Tokyo",
		Country:     "Japan",
		State:       "Tokyo Metropolis",
		Population:  14047594,
		Timezone:    "Asia/Tokyo",
		Coordinates: Coordinates{Lat: 35.6762, Lon: 139.6503},
		FamousFor:   []string{"Tokyo Skytree", "Senso-ji Temple", "Shibuya Crossing", "Mount Fuji (nearby)"},
	},
	"paris": {
		Name:        "Paris",
		Country:     "France",
		State:       "Île-de-France",
		Population:  2161000,
		Timezone:    "Europe/Paris",
		Coordinates: Coordinates{Lat: 48.8566, Lon: 2.3522},
		FamousFor:   []string{"Eiffel Tower", "Louvre Museum", "Notre-Dame Cathedral", "Arc de Triomphe"},
	},
	"sydney": {
		Name:        "Sydney",
		Country:     "Australia",
		State:       "New South Wales",
		Population:  5312163,
		Timezone:    "Australia/Sydney",
		Coordinates: Coordinates{Lat: -33.8688, Lon: 151.2093},
		FamousFor:   []string{"Sydney Opera House", "Harbour Bridge", "Bondi Beach", "Royal Botanic Gardens"},
	},
	"dubai": {
		Name:        "Dubai",
		Country:     "United Arab Emirates",
		State:       "Dubai Emirate",
		Population:  3331420,
		Timezone:    "Asia/Dubai",
		Coordinates: Coordinates{Lat: 25.2048, Lon: 55.2708},
		FamousFor:   []string{"Burj Khalifa", "Palm Jumeirah", "Dubai Mall", "Burj Al Arab"},
	},
	"singapore": {
		Name:        "Singapore",
		Country:     "Singapore",
		State:       "Singapore",
		Population:  5685807,
		Timezone:    "Asia/Singapore",
		Coordinates: Coordinates{Lat: 1.3521, Lon: 103.8198},
		FamousFor:   []string{"Marina Bay Sands", "Gardens by the Bay", "Merlion", "Sentosa Island"},
	},
	"los angeles": {
		Name:        "Los Angeles",
		Country:     "United States",
		State:       "California",
		Population:  3898747,
		Timezone:    "America/Los_Angeles",
		Coordinates: Coordinates{Lat: 34.0522, Lon: -118.2437},
		FamousFor:   []string{"Hollywood", "Santa Monica Pier", "Griffith Observatory", "Venice Beach"},
	},
}

// CityCount reports the number of cities in the profile database.
func CityCount() int {
	return len(cityDatabase)
}

// HasCity reports whether the exact lower-cased key exists in the profile
// database, with no substring fallback.
func HasCity(city string) bool {
	_, ok := cityDatabase[strings.ToLower(strings.TrimSpace(city))]
	return ok
}

// LookupCity finds a profile by exact lower-cased key, then by the shared
// substring policy: the first key (in table order) that contains the query
// or is contained by it wins.
func LookupCity(city string) (CityProfile, bool) {
	key := strings.ToLower(strings.TrimSpace(city))
	if profile, ok := cityDatabase[key]; ok {
		return profile, true
	}
	for _, dbKey := range cityKeys {
		if strings.Contains(dbKey, key) || strings.Contains(key, dbKey) {
			return cityDatabase[dbKey], true
		}
	}
	return CityProfile{}, false
}

// EachCity visits every profile in table order.
func EachCity(fn func(key string, profile CityProfile)) {
	for _, key := range cityKeys {
		fn(key, cityDatabase[key])
	}
}
