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

// Package location implements city profile lookup and search over the static
// city database.
package location

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/traveldesk/traveldesk-go/geodata"
	"github.com/traveldesk/traveldesk-go/log"
	"github.com/traveldesk/traveldesk-go/observability"
	"github.com/traveldesk/traveldesk-go/schema"
	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"
)

// DefaultSearchLimit bounds search results when the caller does not give one.
const DefaultSearchLimit = 5

// GetCityInfo returns the full stored profile for a city, using exact lookup
// first and the shared substring policy second.
func GetCityInfo(ctx context.Context, city string) (resp schema.ToolResponse) {
	defer guard(&resp, "An error occurred while retrieving city information", schema.ErrCodeCityInfo)

	profile, ok := geodata.LookupCity(city)
	if !ok {
		return schema.Error(
			fmt.Sprintf("Information for '%s' is not available. Try cities like New York, London, Tokyo, Paris, etc.", city),
			schema.ErrCodeCityNotFound,
		)
	}

	message := fmt.Sprintf("Information retrieved for %s", profile.Name)
	if !geodata.HasCity(city) {
		message = fmt.Sprintf("Information retrieved for %s (matched '%s')", profile.Name, city)
	}
	return schema.Success(schema.AsMap(profile), message)
}

// searchResult is the trimmed per-city record returned by SearchCities.
type searchResult struct {
	Name       string   `json:"name"`
	Country    string   `json:"country"`
	Population int      `json:"population"`
	Timezone   string   `json:"timezone"`
	FamousFor  []string `json:"famous_for"`
}

// SearchCities matches the query against city keys, display names, countries
// and attractions. Results are sorted by population descending and cut to
// limit.
func SearchCities(ctx context.Context, query string, limit int) (resp schema.ToolResponse) {
	defer guard(&resp, "An error occurred while searching cities", schema.ErrCodeSearch)

	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	needle := strings.ToLower(strings.TrimSpace(query))

	var matches []searchResult
	geodata.EachCity(func(key string, profile geodata.CityProfile) {
		if !profileMatches(needle, key, profile) {
			return
		}
		famous := profile.FamousFor
		if len(famous) > 2 {
			famous = famous[:2]
		}
		matches = append(matches, searchResult{
			Name:       profile.Name,
			Country:    profile.Country,
			Population: profile.Population,
			Timezone:   profile.Timezone,
			FamousFor:  famous,
		})
	})

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Population > matches[j].Population
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}

	if len(matches) == 0 {
		return schema.Error(
			fmt.Sprintf("No cities found matching '%s'. Try broader terms or major city names.", query),
			schema.ErrCodeNoResults,
		)
	}

	results := make([]any, len(matches))
	for i, m := range matches {
		results[i] = schema.AsMap(m)
	}
	return schema.Success(
		map[string]any{
			"query":       query,
			"results":     results,
			"total_found": len(matches),
		},
		fmt.Sprintf("Found %d cities matching '%s'", len(matches), query),
	)
}

func profileMatches(needle, key string, profile geodata.CityProfile) bool {
	if strings.Contains(key, needle) ||
		strings.Contains(strings.ToLower(profile.Name), needle) ||
		strings.Contains(strings.ToLower(profile.Country), needle) {
		return true
	}
	for _, attraction := range profile.FamousFor {
		if strings.Contains(strings.ToLower(attraction), needle) {
			return true
		}
	}
	return false
}

// ListAllCities reports every stored profile grouped by country, each group
// sorted by population descending.
func ListAllCities(ctx context.Context) (resp schema.ToolResponse) {
	defer guard(&resp, "An error occurred while listing cities", schema.ErrCodeList)

	type cityEntry struct {
		Name       string `json:"name"`
		State      string `json:"state"`
		Population int    `json:"population"`
	}

	byCountry := make(map[string][]cityEntry)
	geodata.EachCity(func(key string, profile geodata.CityProfile) {
		byCountry[profile.Country] = append(byCountry[profile.Country], cityEntry{
			Name:       profile.Name,
			State:      profile.State,
			Population: profile.Population,
		})
	})

	grouped := make(map[string]any, len(byCountry))
	for country, cities := range byCountry {
		sort.SliceStable(cities, func(i, j int) bool {
			return cities[i].Population > cities[j].Population
		})
		entries := make([]any, len(cities))
		for i, c := range cities {
			entries[i] = schema.AsMap(c)
		}
		grouped[country] = entries
	}

	return schema.Success(
		map[string]any{
			"cities_by_country": grouped,
			"total_cities":      geodata.CityCount(),
		},
		fmt.Sprintf("Complete list of %d available cities", geodata.CityCount()),
	)
}

func guard(resp *schema.ToolResponse, message, code string) {
	if r := recover(); r != nil {
		log.Error("unexpected failure in location tool", "panic", fmt.Sprint(r))
		*resp = schema.Error(message, code)
	}
}

type CityInfoArgs struct {
	City string `json:"city" jsonschema:"The name of the city"`
}

type SearchArgs struct {
	Query string `json:"query" jsonschema:"City name, country, or keyword to search for"`
	Limit int    `json:"limit" jsonschema:"Maximum number of results. Defaults to 5."`
}

type ListAllArgs struct{}

// NewCityInfoTool exposes GetCityInfo to agents.
func NewCityInfoTool() (tool.Tool, error) {
	return functiontool.New(
		functiontool.Config{
			Name: "get_city_info",
			Description: `Gets comprehensive information about a city.
Args:
	city: The name of the city.
Returns:
	City profile including population, timezone and attractions, or error details.`,
		},
		cityInfoHandler)
}

// NewSearchCitiesTool exposes SearchCities to agents.
func NewSearchCitiesTool() (tool.Tool, error) {
	return functiontool.New(
		functiontool.Config{
			Name: "search_cities",
			Description: `Searches for cities matching a query.
Args:
	query: City name, country, or keyword.
	limit: Maximum number of results.
Returns:
	Matching cities sorted by population, or error details.`,
		},
		searchHandler)
}

// NewListAllCitiesTool exposes ListAllCities to agents.
func NewListAllCitiesTool() (tool.Tool, error) {
	return functiontool.New(
		functiontool.Config{
			Name:        "list_all_cities",
			Description: "Lists every city in the database grouped by country.",
		},
		listAllHandler)
}

func cityInfoHandler(ctx tool.Context, args CityInfoArgs) (schema.ToolResponse, error) {
	started := time.Now()
	resp := GetCityInfo(ctx, args.City)
	observability.RecordToolInvocation(ctx, "get_city_info", time.Since(started), resp.Status == schema.StatusError)
	return resp, nil
}

func searchHandler(ctx tool.Context, args SearchArgs) (schema.ToolResponse, error) {
	started := time.Now()
	resp := SearchCities(ctx, args.Query, args.Limit)
	observability.RecordToolInvocation(ctx, "search_cities", time.Since(started), resp.Status == schema.StatusError)
	return resp, nil
}

func listAllHandler(ctx tool.Context, args ListAllArgs) (schema.ToolResponse, error) {
	started := time.Now()
	resp := ListAllCities(ctx)
	observability.RecordToolInvocation(ctx, "list_all_cities", time.Since(started), resp.Status == schema.StatusError)
	return resp, nil
}
