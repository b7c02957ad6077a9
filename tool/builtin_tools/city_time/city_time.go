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

// Package city_time implements the current-time and timezone tools on top of
// the static city-to-timezone table. No network access is involved.
package city_time

import (
	"context"
	"fmt"
	"time"

	"github.com/traveldesk/traveldesk-go/geodata"
	"github.com/traveldesk/traveldesk-go/log"
	"github.com/traveldesk/traveldesk-go/observability"
	"github.com/traveldesk/traveldesk-go/schema"
	"github.com/traveldesk/traveldesk-go/utils"
	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"
)

// nowFunc is swapped in tests to pin the clock.
var nowFunc = time.Now

// GetCurrentTime reports the current local time for a city resolved through
// the static timezone table.
func GetCurrentTime(ctx context.Context, city string) (resp schema.ToolResponse) {
	defer guard(&resp, "An error occurred while retrieving time information", schema.ErrCodeTime)

	timezoneID, ok := geodata.ResolveTimezone(city)
	if !ok {
		return schema.Error(
			fmt.Sprintf("Timezone information for '%s' is not available. Try major cities like 'New York', 'London', 'Tokyo', etc.", city),
			schema.ErrCodeTimezoneNotFound,
		)
	}

	loc, err := time.LoadLocation(timezoneID)
	if err != nil {
		log.Error("timezone table maps to an unloadable zone", "city", city, "timezone", timezoneID, "err", err)
		return schema.Error(
			"An error occurred while retrieving time information",
			schema.ErrCodeTime,
		)
	}

	now := nowFunc().In(loc)
	report := schema.TimeReport{
		City:        utils.TitleCase(city),
		Timezone:    timezoneID,
		CurrentTime: schema.Timestamp(now),
		UTCOffset:   now.Format("-07:00"),
		IsDST:       now.IsDST(),
	}

	return schema.Success(
		schema.AsMap(report),
		fmt.Sprintf("Current time in %s is %s", report.City, now.Format("2006-01-02 15:04:05 MST")),
	)
}

// GetTimezoneInfo validates a raw IANA timezone identifier and reports its
// current state, including the zone abbreviation and the UTC reference time.
func GetTimezoneInfo(ctx context.Context, timezoneID string) (resp schema.ToolResponse) {
	defer guard(&resp, fmt.Sprintf("Invalid timezone identifier: %s", timezoneID), schema.ErrCodeInvalidTimezone)

	loc, err := time.LoadLocation(timezoneID)
	if err != nil || timezoneID == "" {
		return schema.Error(
			fmt.Sprintf("Invalid timezone identifier: %s", timezoneID),
			schema.ErrCodeInvalidTimezone,
		)
	}

	now := nowFunc().In(loc)
	abbreviation, _ := now.Zone()

	return schema.Success(
		map[string]any{
			"timezone":     timezoneID,
			"current_time": now.Format("2006-01-02 15:04:05"),
			"utc_offset":   now.Format("-07:00"),
			"is_dst":       now.IsDST(),
			"abbreviation": abbreviation,
			"utc_time":     now.UTC().Format("2006-01-02 15:04:05 UTC"),
		},
		fmt.Sprintf("Timezone information for %s", timezoneID),
	)
}

// ListSupportedCities reports every city the time tool can resolve, grouped
// by region.
func ListSupportedCities(ctx context.Context) schema.ToolResponse {
	return schema.Success(
		map[string]any{"supported_cities": geodata.SupportedCitiesByRegion()},
		"List of all supported cities for time queries",
	)
}

func guard(resp *schema.ToolResponse, message, code string) {
	if r := recover(); r != nil {
		log.Error("unexpected failure in time tool", "panic", fmt.Sprint(r))
		*resp = schema.Error(message, code)
	}
}

type CurrentTimeArgs struct {
	City string `json:"city" jsonschema:"The name of the city"`
}

type TimezoneInfoArgs struct {
	Timezone string `json:"timezone" jsonschema:"IANA timezone identifier, e.g. 'America/New_York'"`
}

type ListCitiesArgs struct{}

// NewCurrentTimeTool exposes GetCurrentTime to agents.
func NewCurrentTimeTool() (tool.Tool, error) {
	return functiontool.New(
		functiontool.Config{
			Name: "get_current_time",
			Description: `Returns the current time in a specified city.
Args:
	city: The name of the city.
Returns:
	Current time, UTC offset and DST state, or error details.`,
		},
		currentTimeHandler)
}

// NewTimezoneInfoTool exposes GetTimezoneInfo to agents.
func NewTimezoneInfoTool() (tool.Tool, error) {
	return functiontool.New(
		functiontool.Config{
			Name: "get_timezone_info",
			Description: `Gets detailed information about a specific IANA timezone.
Args:
	timezone: Timezone identifier, e.g. 'America/New_York'.
Returns:
	Timezone state including abbreviation and UTC time, or error details.`,
		},
		timezoneInfoHandler)
}

// NewListSupportedCitiesTool exposes ListSupportedCities to agents.
func NewListSupportedCitiesTool() (tool.Tool, error) {
	return functiontool.New(
		functiontool.Config{
			Name:        "list_supported_cities",
			Description: "Lists all cities supported by the time tool, grouped by region.",
		},
		listCitiesHandler)
}

func currentTimeHandler(ctx tool.Context, args CurrentTimeArgs) (schema.ToolResponse, error) {
	started := time.Now()
	resp := GetCurrentTime(ctx, args.City)
	observability.RecordToolInvocation(ctx, "get_current_time", time.Since(started), resp.Status == schema.StatusError)
	return resp, nil
}

func timezoneInfoHandler(ctx tool.Context, args TimezoneInfoArgs) (schema.ToolResponse, error) {
	started := time.Now()
	resp := GetTimezoneInfo(ctx, args.Timezone)
	observability.RecordToolInvocation(ctx, "get_timezone_info", time.Since(started), resp.Status == schema.StatusError)
	return resp, nil
}

func listCitiesHandler(ctx tool.Context, args ListCitiesArgs) (schema.ToolResponse, error) {
	started := time.Now()
	resp := ListSupportedCities(ctx)
	observability.RecordToolInvocation(ctx, "list_supported_cities", time.Since(started), resp.Status == schema.StatusError)
	return resp, nil
}
