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

package rest_app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/traveldesk/traveldesk-go/apps"
	"github.com/traveldesk/traveldesk-go/schema"
)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	router := mux.NewRouter()
	app := NewTravelDeskRestApp(apps.DefaultApiConfig())
	err := app.SetupRouters(router, &apps.RunConfig{})
	assert.NoError(t, err)
	return router
}

func doGet(t *testing.T, router *mux.Router, path string) (int, schema.ToolResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp schema.ToolResponse
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	assert.NoError(t, err)
	return rec.Code, resp
}

func TestTimeEndpoint(t *testing.T) {
	router := newTestRouter(t)

	code, resp := doGet(t, router, "/api/time?city=Tokyo")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, schema.StatusSuccess, resp.Status)
	assert.Equal(t, "Asia/Tokyo", resp.Data["timezone"])
}

func TestTimeEndpointMissingCity(t *testing.T) {
	router := newTestRouter(t)

	code, resp := doGet(t, router, "/api/time")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, schema.StatusError, resp.Status)
	assert.Equal(t, errCodeMissingParam, resp.ErrorCode)
}

func TestTimezoneEndpoint(t *testing.T) {
	router := newTestRouter(t)

	code, resp := doGet(t, router, "/api/timezone?id=Europe/London")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, schema.StatusSuccess, resp.Status)
	assert.Equal(t, "Europe/London", resp.Data["timezone"])
}

func TestCityEndpoint(t *testing.T) {
	router := newTestRouter(t)

	code, resp := doGet(t, router, "/api/city?name=Paris")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, schema.StatusSuccess, resp.Status)
	assert.Equal(t, "Paris", resp.Data["name"])
}

func TestCityEndpointUnknown(t *testing.T) {
	router := newTestRouter(t)

	code, resp := doGet(t, router, "/api/city?name=Gotham")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, schema.StatusError, resp.Status)
	assert.Equal(t, schema.ErrCodeCityNotFound, resp.ErrorCode)
}

func TestCitiesEndpoint(t *testing.T) {
	router := newTestRouter(t)

	code, resp := doGet(t, router, "/api/cities")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, schema.StatusSuccess, resp.Status)
	assert.NotNil(t, resp.Data["cities_by_country"])
}

func TestSearchEndpoint(t *testing.T) {
	router := newTestRouter(t)

	code, resp := doGet(t, router, "/api/cities/search?query=japan&limit=3")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, schema.StatusSuccess, resp.Status)
	assert.Equal(t, "japan", resp.Data["query"])
}

func TestSearchEndpointInvalidLimit(t *testing.T) {
	router := newTestRouter(t)

	code, resp := doGet(t, router, "/api/cities/search?query=japan&limit=abc")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, schema.StatusError, resp.Status)
	assert.Equal(t, errCodeInvalidParam, resp.ErrorCode)
}

func TestForecastEndpointInvalidDays(t *testing.T) {
	router := newTestRouter(t)

	code, resp := doGet(t, router, "/api/weather/forecast?city=Tokyo&days=soon")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, schema.StatusError, resp.Status)
	assert.Equal(t, errCodeInvalidParam, resp.ErrorCode)
}

func TestTimeCitiesEndpoint(t *testing.T) {
	router := newTestRouter(t)

	code, resp := doGet(t, router, "/api/time/cities")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, schema.StatusSuccess, resp.Status)
	assert.NotNil(t, resp.Data["supported_cities"])
}
