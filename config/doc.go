// Copyright 2025 The Rivaas Authors
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

// Package config loads the application [Settings].
//
// Settings are assembled from layers, later layers winning:
//
//  1. `default` struct tags (coerced with spf13/cast)
//  2. configuration files: YAML, TOML or JSON, chosen by extension
//  3. environment variables: WEBAPP_SERVER_ADDR sets server.addr
//  4. explicit values such as command-line flags
//
// Layers are merged with mergo, decoded with mapstructure (durations like
// "15s" are accepted) and validated with go-playground/validator.
//
// # Quick Start
//
//	cfg, err := config.Load(ctx,
//	    config.WithOptionalFile("webapp.yaml"),
//	    config.WithEnv("WEBAPP_"),
//	)
//	if err != nil {
//	    return err // matches config.ErrInvalidConfig
//	}
//
// # Keys
//
// Every setting has a dotted key built from `config` tags; [Keys] lists
// them. The environment variable for a key is the prefix followed by the
// key in upper case with dots replaced by underscores.
//
//	service                  WEBAPP_SERVICE
//	environment              WEBAPP_ENVIRONMENT
//	server.addr              WEBAPP_SERVER_ADDR
//	server.read_timeout      WEBAPP_SERVER_READ_TIMEOUT
//	server.write_timeout     WEBAPP_SERVER_WRITE_TIMEOUT
//	server.shutdown_timeout  WEBAPP_SERVER_SHUTDOWN_TIMEOUT
//	log.level                WEBAPP_LOG_LEVEL
//	log.format               WEBAPP_LOG_FORMAT
//	assets.dir               WEBAPP_ASSETS_DIR
package config
