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

// Package rest_app serves the builtin tools directly over HTTP, without
// going through the agent. Every endpoint returns the same envelope the
// tools hand to the model.
package rest_app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/traveldesk/traveldesk-go/apps"
	"github.com/traveldesk/traveldesk-go/log"
	"github.com/traveldesk/traveldesk-go/schema"
	"github.com/traveldesk/traveldesk-go/tool/builtin_tools/city_time"
	"github.com/traveldesk/traveldesk-go/tool/builtin_tools/location"
	"github.com/traveldesk/traveldesk-go/tool/builtin_tools/weather"
)

const serverName = "travel desk tool API server"

const (
	errCodeMissingParam = "MISSING_PARAMETER"
	errCodeInvalidParam = "INVALID_PARAMETER"
)

type travelDeskRestApp struct {
	*apps.ApiConfig
}

func NewTravelDeskRestApp(config *apps.ApiConfig) apps.BasicApp {
	return &travelDeskRestApp{
		ApiConfig: config,
	}
}

func (a *travelDeskRestApp) SetupRouters(router *mux.Router, config *apps.RunConfig) error {
	_ = config

	api := router
	if a.ApiPathPrefix != "" {
		api = router.PathPrefix(a.ApiPathPrefix).Subrouter()
	}

	api.NewRoute().Path("/weather").Methods(http.MethodGet).HandlerFunc(a.handleWeather)
	api.NewRoute().Path("/weather/forecast").Methods(http.MethodGet).HandlerFunc(a.handleForecast)
	api.NewRoute().Path("/time").Methods(http.MethodGet).HandlerFunc(a.handleTime)
	api.NewRoute().Path("/timezone").Methods(http.MethodGet).HandlerFunc(a.handleTimezone)
	api.NewRoute().Path("/time/cities").Methods(http.MethodGet).HandlerFunc(a.handleTimeCities)
	api.NewRoute().Path("/city").Methods(http.MethodGet).HandlerFunc(a.handleCity)
	api.NewRoute().Path("/cities").Methods(http.MethodGet).HandlerFunc(a.handleCities)
	api.NewRoute().Path("/cities/search").Methods(http.MethodGet).HandlerFunc(a.handleSearch)

	log.Infof("       tool API available under %s", a.GetAPIPath())

	return nil
}

func (a *travelDeskRestApp) Run(ctx context.Context, config *apps.RunConfig) error {
	return apps.Run(ctx, config, a)
}

func (a *travelDeskRestApp) handleWeather(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if city == "" {
		writeResponse(w, http.StatusBadRequest, missingParam("city"))
		return
	}
	countryCode := r.URL.Query().Get("country_code")
	writeResponse(w, http.StatusOK, weather.GetWeather(r.Context(), city, countryCode))
}

func (a *travelDeskRestApp) handleForecast(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if city == "" {
		writeResponse(w, http.StatusBadRequest, missingParam("city"))
		return
	}
	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeResponse(w, http.StatusBadRequest, schema.Error(
				fmt.Sprintf("Invalid 'days' value: %s", raw), errCodeInvalidParam))
			return
		}
		days = parsed
	}
	writeResponse(w, http.StatusOK, weather.GetForecast(r.Context(), city, days))
}

func (a *travelDeskRestApp) handleTime(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if city == "" {
		writeResponse(w, http.StatusBadRequest, missingParam("city"))
		return
	}
	writeResponse(w, http.StatusOK, city_time.GetCurrentTime(r.Context(), city))
}

func (a *travelDeskRestApp) handleTimezone(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeResponse(w, http.StatusBadRequest, missingParam("id"))
		return
	}
	writeResponse(w, http.StatusOK, city_time.GetTimezoneInfo(r.Context(), id))
}

func (a *travelDeskRestApp) handleTimeCities(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, http.StatusOK, city_time.ListSupportedCities(r.Context()))
}

func (a *travelDeskRestApp) handleCity(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeResponse(w, http.StatusBadRequest, missingParam("name"))
		return
	}
	writeResponse(w, http.StatusOK, location.GetCityInfo(r.Context(), name))
}

func (a *travelDeskRestApp) handleCities(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, http.StatusOK, location.ListAllCities(r.Context()))
}

func (a *travelDeskRestApp) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeResponse(w, http.StatusBadRequest, missingParam("query"))
		return
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeResponse(w, http.StatusBadRequest, schema.Error(
				fmt.Sprintf("Invalid 'limit' value: %s", raw), errCodeInvalidParam))
			return
		}
		limit = parsed
	}
	writeResponse(w, http.StatusOK, location.SearchCities(r.Context(), query, limit))
}

func missingParam(name string) schema.ToolResponse {
	return schema.Error(fmt.Sprintf("Missing required query parameter '%s'", name), errCodeMissingParam)
}

func writeResponse(w http.ResponseWriter, statusCode int, resp schema.ToolResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Errorf("write response error: %v", err)
	}
}

func (a *travelDeskRestApp) GetApiConfig() *apps.ApiConfig {
	return a.ApiConfig
}

func (a *travelDeskRestApp) GetServerName() string {
	return serverName
}
