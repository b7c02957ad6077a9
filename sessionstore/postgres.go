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

package sessionstore

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/traveldesk/traveldesk-go/configs"
	"github.com/traveldesk/traveldesk-go/log"
	"go.uber.org/zap/zapcore"
	"google.golang.org/adk/session"
	"google.golang.org/adk/session/database"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type PostgresConfig struct {
	*configs.CommonDatabaseConfig
}

func newPostgresBackend(config *PostgresConfig) (session.Service, error) {
	if config == nil || config.CommonDatabaseConfig == nil {
		return nil, fmt.Errorf("postgresql config is nil")
	}

	if config.DBUrl != "" {
		log.Info("DBUrl is set, ignoring host and credential fields")
		if strings.Count(config.DBUrl, "@") > 1 || strings.Count(config.DBUrl, ":") > 3 {
			log.Warn(
				"Multiple '@' or ':' symbols detected in the database URL. " +
					"Encode username and password with url.QueryEscape first.",
			)
		}
	} else {
		encodedUsername := url.QueryEscape(config.UserName)
		encodedPassword := url.QueryEscape(config.Password)

		config.DBUrl = fmt.Sprintf(
			"postgresql://%s:%s@%s:%s/%s",
			encodedUsername, encodedPassword,
			config.Host, config.Port, config.Schema,
		)
	}

	sessionService, err := database.NewSessionService(
		postgres.Open(config.DBUrl),
		&gorm.Config{PrepareStmt: true, Logger: log.NewLogger(zapcore.FatalLevel)},
	)
	if err != nil {
		log.Errorf("init database session service failed: %v", err)
		return nil, err
	}
	if initErr := database.AutoMigrate(sessionService); initErr != nil {
		log.Errorf("auto-migrate database session service failed: %v", initErr)
	}

	return sessionService, nil
}
