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

// Package server_app combines the agent invoke surface and the direct
// tool API into a single server.
package server_app

import (
	"context"
	"fmt"

	"github.com/gorilla/mux"
	"github.com/traveldesk/traveldesk-go/apps"
	"github.com/traveldesk/traveldesk-go/apps/rest_app"
	"github.com/traveldesk/traveldesk-go/apps/simple_app"
)

const serverName = "travel desk server"

type travelDeskServerApp struct {
	*apps.ApiConfig
}

func NewTravelDeskServerApp(config *apps.ApiConfig) apps.BasicApp {
	return &travelDeskServerApp{
		ApiConfig: config,
	}
}

func (a *travelDeskServerApp) SetupRouters(router *mux.Router, config *apps.RunConfig) error {
	simpleApp := simple_app.NewTravelDeskSimpleApp(a.ApiConfig)
	if err := simpleApp.SetupRouters(router, config); err != nil {
		return fmt.Errorf("setup simple app routers failed: %w", err)
	}

	restApp := rest_app.NewTravelDeskRestApp(a.ApiConfig)
	if err := restApp.SetupRouters(router, config); err != nil {
		return fmt.Errorf("setup tool API routers failed: %w", err)
	}

	return nil
}

func (a *travelDeskServerApp) Run(ctx context.Context, config *apps.RunConfig) error {
	return apps.Run(ctx, config, a)
}

func (a *travelDeskServerApp) GetApiConfig() *apps.ApiConfig {
	return a.ApiConfig
}

func (a *travelDeskServerApp) GetServerName() string {
	return serverName
}
