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

package configs

import (
	"github.com/traveldesk/traveldesk-go/common"
)

type CommonDatabaseConfig struct {
	UserName string
	Password string
	Host     string
	Port     string
	Schema   string
	DBUrl    string
}

type DatabaseConfig struct {
	Postgresql *CommonDatabaseConfig `yaml:"postgresql"`
}

func (c *DatabaseConfig) MapEnvToConfig() {
	c.Postgresql.UserName = getEnv(common.DATABASE_POSTGRESQL_USERNAME, "")
	c.Postgresql.Password = getEnv(common.DATABASE_POSTGRESQL_PASSWORD, "")
	c.Postgresql.Host = getEnv(common.DATABASE_POSTGRESQL_HOST, "")
	c.Postgresql.Port = getEnv(common.DATABASE_POSTGRESQL_PORT, "")
	c.Postgresql.Schema = getEnv(common.DATABASE_POSTGRESQL_SCHEMA, "")
	c.Postgresql.DBUrl = getEnv(common.DATABASE_POSTGRESQL_DBURL, "")
}
