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

package source

import (
	"context"
	"os"
	"strings"
)

// Env is a configuration source backed by environment variables.
//
// Each dotted key maps to one variable: the prefix followed by the key in
// upper case with dots replaced by underscores. With prefix "WEBAPP_" the
// key "server.read_timeout" is read from WEBAPP_SERVER_READ_TIMEOUT.
type Env struct {
	prefix string
	keys   []string
	lookup func(string) (string, bool)
}

// NewEnv creates an environment source for keys.
func NewEnv(prefix string, keys []string) *Env {
	return &Env{
		prefix: prefix,
		keys:   keys,
		lookup: os.LookupEnv,
	}
}

// WithLookup replaces the variable lookup function. Tests use it to avoid
// touching the process environment.
func (e *Env) WithLookup(lookup func(string) (string, bool)) *Env {
	e.lookup = lookup
	return e
}

// VarName returns the variable read for key.
func (e *Env) VarName(key string) string {
	return e.prefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// Load returns the set variables as a nested map. Unset variables are
// omitted; values are trimmed.
func (e *Env) Load(context.Context) (map[string]any, error) {
	conf := make(map[string]any)

	for _, key := range e.keys {
		val, ok := e.lookup(e.VarName(key))
		if !ok {
			continue
		}

		parts := strings.Split(key, ".")
		current := conf
		for _, part := range parts[:len(parts)-1] {
			next, ok := current[part].(map[string]any)
			if !ok {
				next = make(map[string]any)
				current[part] = next
			}
			current = next
		}
		current[parts[len(parts)-1]] = strings.TrimSpace(val)
	}

	return conf, nil
}
