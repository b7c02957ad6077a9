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
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type TravelDeskConfig struct {
	Model         *ModelConfig         `yaml:"model"`
	Agent         *AgentConfig         `yaml:"agent"`
	Weather       *WeatherConfig       `yaml:"weather"`
	Database      *DatabaseConfig      `yaml:"database"`
	LOGGING       *Logging             `yaml:"LOGGING"`
	Observability *ObservabilityConfig `yaml:"observability"`
}

type EnvConfigMaptoStruct interface {
	MapEnvToConfig()
}

var (
	globalConfig *TravelDeskConfig
	configOnce   sync.Once
)

func GetGlobalConfig() *TravelDeskConfig {
	configOnce.Do(func() {
		if err := SetupTravelDeskConfig(); err != nil {
			panic(err)
		}
	})
	return globalConfig
}

func SetupTravelDeskConfig() error {
	if err := loadConfigFromProjectEnv(); err != nil {
		return err
	}
	if err := loadConfigFromProjectYaml(); err != nil {
		return err
	}

	globalConfig = &TravelDeskConfig{
		Model:         &ModelConfig{Agent: &CommonModelConfig{}},
		Agent:         &AgentConfig{},
		Weather:       &WeatherConfig{},
		Database:      &DatabaseConfig{Postgresql: &CommonDatabaseConfig{}},
		LOGGING:       &Logging{},
		Observability: &ObservabilityConfig{},
	}
	globalConfig.Model.MapEnvToConfig()
	globalConfig.Agent.MapEnvToConfig()
	globalConfig.Weather.MapEnvToConfig()
	globalConfig.Database.MapEnvToConfig()
	globalConfig.LOGGING.MapEnvToConfig()
	globalConfig.Observability.MapEnvToConfig()
	return nil
}

// loadConfigFromProjectEnv loads a project-local .env file. Existing
// environment variables keep priority; godotenv does not overwrite them.
func loadConfigFromProjectEnv() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	envFilePath := filepath.Join(dir, ".env")
	if _, err := os.Stat(envFilePath); err == nil {
		if err := godotenv.Load(envFilePath); err != nil {
			return fmt.Errorf("loading .env file failed: %v", err)
		}
	}
	return nil
}

// loadConfigFromProjectYaml maps config.yaml keys to environment variables
// (weather.api_key -> WEATHER_API_KEY) without overwriting existing values,
// so env always wins over yaml.
func loadConfigFromProjectYaml() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	var yamlConfig map[string]interface{}
	configYamlPath := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(configYamlPath); err == nil {
		data, err := os.ReadFile(configYamlPath)
		if err != nil {
			return fmt.Errorf("reading config.yaml failed: %v", err)
		}
		if err := yaml.Unmarshal(data, &yamlConfig); err != nil {
			return fmt.Errorf("parsing config.yaml failed: %v", err)
		}

		setYamlToEnv(yamlConfig, "")
	}
	return nil
}

func setYamlToEnv(data map[string]interface{}, prefix string) {
	for key, val := range data {
		fullKey := key
		if prefix != "" {
			fullKey = fmt.Sprintf("%s_%s", prefix, key)
		}
		fullKey = strings.ToUpper(fullKey)

		switch v := val.(type) {
		case map[string]interface{}:
			setYamlToEnv(v, fullKey)
		case string:
			if os.Getenv(fullKey) == "" {
				_ = os.Setenv(fullKey, v)
			}
		case int:
			if os.Getenv(fullKey) == "" {
				_ = os.Setenv(fullKey, strconv.Itoa(v))
			}
		case bool:
			if os.Getenv(fullKey) == "" {
				_ = os.Setenv(fullKey, strconv.FormatBool(v))
			}
		}
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
