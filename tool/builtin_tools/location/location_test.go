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

package location

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/traveldesk/traveldesk-go/schema"
)

func TestGetCityInfoExact(t *testing.T) {
	resp := GetCityInfo(context.Background(), "Tokyo")

	assert.Equal(t, schema.StatusSuccess, resp.Status)
	assert.Equal(t, "Information retrieved for Tokyo", resp.Message)
	assert.Equal(t, "Japan", resp.Data["country"])
	assert.Equal(t, "Tokyo Metropolis", resp.Data["state"])
	assert.Equal(t, float64(14047594), resp.Data["population"])
	assert.Equal(t, "Asia/Tokyo", resp.Data["timezone"])

	coords := resp.Data["coordinates"].(map[string]any)
	assert.Equal(t, 35.6762, coords["lat"])
	assert.Equal(t, 139.6503, coords["lon"])
}

func TestGetCityInfoSubstringMatch(t *testing.T) {
	resp := GetCityInfo(context.Background(), "new")

	assert.Equal(t, schema.StatusSuccess, resp.Status)
	assert.Equal(t, "New York City", resp.Data["name"])
	assert.Equal(t, "Information retrieved for New York City (matched 'new')", resp.Message)
}

func TestGetCityInfoNotFound(t *testing.T) {
	resp := GetCityInfo(context.Background(), "Gotham")

	assert.Equal(t, schema.StatusError, resp.Status)
	assert.Equal(t, schema.ErrCodeCityNotFound, resp.ErrorCode)
	assert.Contains(t, resp.Message, "'Gotham' is not available")
}

func TestSearchCitiesByCountry(t *testing.T) {
	resp := SearchCities(context.Background(), "United States", 5)

	assert.Equal(t, schema.StatusSuccess, resp.Status)
	assert.Equal(t, "Found 2 cities matching 'United States'", resp.Message)

	results := resp.Data["results"].([]any)
	assert.Len(t, results, 2)

	// Sorted by population descending: New York City before Los Angeles.
	first := results[0].(map[string]any)
	second := results[1].(map[string]any)
	assert.Equal(t, "New York City", first["name"])
	assert.Equal(t, "Los Angeles", second["name"])
}

func TestSearchCitiesByAttraction(t *testing.T) {
	resp := SearchCities(context.Background(), "eiffel", 5)

	assert.Equal(t, schema.StatusSuccess, resp.Status)
	results := resp.Data["results"].([]any)
	assert.Len(t, results, 1)

	paris := results[0].(map[string]any)
	assert.Equal(t, "Paris", paris["name"])
	// Only the first two attractions are reported.
	assert.Len(t, paris["famous_for"].([]any), 2)
}

func TestSearchCitiesSortedAndLimited(t *testing.T) {
	// Empty-ish broad query matches everything; limit cuts the list.
	resp := SearchCities(context.Background(), "a", 3)

	assert.Equal(t, schema.StatusSuccess, resp.Status)
	results := resp.Data["results"].([]any)
	assert.True(t, len(results) <= 3)

	var prev float64 = 1 << 40
	for _, r := range results {
		pop := r.(map[string]any)["population"].(float64)
		assert.True(t, pop <= prev, "results not sorted by population descending")
		prev = pop
	}
}

func TestSearchCitiesDefaultLimit(t *testing.T) {
	resp := SearchCities(context.Background(), "", 0)

	assert.Equal(t, schema.StatusSuccess, resp.Status)
	results := resp.Data["results"].([]any)
	assert.Len(t, results, DefaultSearchLimit)
	assert.Equal(t, DefaultSearchLimit, resp.Data["total_found"])
}

func TestSearchCitiesNoResults(t *testing.T) {
	resp := SearchCities(context.Background(), "zzzz", 5)

	assert.Equal(t, schema.StatusError, resp.Status)
	assert.Equal(t, schema.ErrCodeNoResults, resp.ErrorCode)
	assert.Contains(t, resp.Message, "No cities found matching 'zzzz'")
}

func TestListAllCities(t *testing.T) {
	resp := ListAllCities(context.Background())

	assert.Equal(t, schema.StatusSuccess, resp.Status)
	assert.Equal(t, 8, resp.Data["total_cities"])
	assert.Equal(t, "Complete list of 8 available cities", resp.Message)

	byCountry := resp.Data["cities_by_country"].(map[string]any)
	us := byCountry["United States"].([]any)
	assert.Len(t, us, 2)

	// Within a country, larger cities come first.
	assert.Equal(t, "New York City", us[0].(map[string]any)["name"])
	assert.Equal(t, "Los Angeles", us[1].(map[string]any)["name"])
}
