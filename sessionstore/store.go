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

// Package sessionstore provides the conversation session backends the
// server applications persist dialog history with.
package sessionstore

import (
	"fmt"

	"github.com/traveldesk/traveldesk-go/configs"
	"google.golang.org/adk/session"
)

type BackendType string

const (
	BackendLocal      BackendType = "local"
	BackendPostgreSQL BackendType = "postgresql"
)

// New creates a session service for the given backend. An empty backend
// selects the in-memory store. For the postgresql backend a nil config
// falls back to the global database configuration.
func New(backend BackendType, config interface{}) (session.Service, error) {
	if backend == "" {
		backend = BackendLocal
	}

	switch backend {
	case BackendLocal:
		return session.InMemoryService(), nil
	case BackendPostgreSQL:
		pgCfg, ok := config.(*PostgresConfig)
		if config == nil {
			pgCfg = &PostgresConfig{
				CommonDatabaseConfig: configs.GetGlobalConfig().Database.Postgresql,
			}
		} else if !ok {
			return nil, fmt.Errorf("postgresql backend requires *PostgresConfig, got %T", config)
		}
		return newPostgresBackend(pgCfg)
	default:
		return nil, fmt.Errorf("unsupported session backend: %s", backend)
	}
}
