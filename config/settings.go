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

package config

import (
	"reflect"
	"strings"
	"time"
)

// Settings is the application configuration.
//
// Keys use the `config` tag; nested sections are joined with dots
// ("server.read_timeout"). Zero-valued fields take their `default` tag.
type Settings struct {
	ServiceName string         `config:"service" default:"DependencyInjector" validate:"required"`
	Environment string         `config:"environment" default:"development" validate:"oneof=development staging production test"`
	Server      ServerSettings `config:"server"`
	Log         LogSettings    `config:"log"`
	Assets      AssetSettings  `config:"assets"`
}

// ServerSettings configures the HTTP server.
type ServerSettings struct {
	Addr            string        `config:"addr" default:":8080" validate:"required,hostname_port"`
	ReadTimeout     time.Duration `config:"read_timeout" default:"15s" validate:"gt=0"`
	WriteTimeout    time.Duration `config:"write_timeout" default:"15s" validate:"gt=0"`
	ShutdownTimeout time.Duration `config:"shutdown_timeout" default:"10s" validate:"gt=0"`
}

// LogSettings configures logging.
type LogSettings struct {
	Level  string `config:"level" default:"info" validate:"oneof=debug info warn warning error"`
	Format string `config:"format" default:"auto" validate:"oneof=auto json text console"`
}

// AssetSettings locates the static asset tree (Scripts/, Content/).
// An empty Dir selects the assets embedded in the binary.
type AssetSettings struct {
	Dir string `config:"dir" validate:"omitempty,dir"`
}

// IsProduction reports whether the environment is "production".
func (s *Settings) IsProduction() bool {
	return s.Environment == "production"
}

func (s *Settings) normalize() {
	s.Environment = strings.ToLower(strings.TrimSpace(s.Environment))
	s.Log.Level = strings.ToLower(strings.TrimSpace(s.Log.Level))
	s.Log.Format = strings.ToLower(strings.TrimSpace(s.Log.Format))
}

var durationType = reflect.TypeFor[time.Duration]()

// Keys returns the dotted key of every leaf setting, in declaration order.
func Keys() []string {
	return appendKeys(nil, "", reflect.TypeFor[Settings]())
}

func appendKeys(keys []string, prefix string, typ reflect.Type) []string {
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Tag.Get(tagName)
		if name == "" {
			name = strings.ToLower(f.Name)
		}
		if prefix != "" {
			name = prefix + "." + name
		}

		if f.Type.Kind() == reflect.Struct && f.Type != durationType {
			keys = appendKeys(keys, name, f.Type)
			continue
		}
		keys = append(keys, name)
	}

	return keys
}
