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

package routes

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/dependencyinjector/webapp/contract"
)

// ErrDuplicateRoute is returned when a route name is registered twice.
var ErrDuplicateRoute = errors.New("route name already registered")

// Well-known route values.
const (
	KeyController = "controller"
	KeyAction     = "action"
	KeyID         = "id"
)

// Route is a named URL template.
type Route struct {
	Name     string
	Pattern  string
	Defaults map[string]string
	Optional []string
	Ignore   bool

	segments []segment
}

func (r *Route) isOptional(name string) bool {
	return slices.ContainsFunc(r.Optional, func(o string) bool {
		return strings.EqualFold(o, name)
	})
}

func (r *Route) defaultFor(name string) (string, bool) {
	for k, v := range r.Defaults {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}

	return "", false
}

// match resolves path against the route. Keys of the returned values
// use the spelling of the template.
func (r *Route) match(path string) (map[string]string, bool) {
	path = strings.Trim(path, "/")

	var parts []string
	if path != "" {
		parts = strings.Split(path, "/")
	}

	values := make(map[string]string)
	for i, seg := range r.segments {
		if seg.catchAll {
			name := seg.pieces[0].param
			if tail := strings.Join(parts[min(i, len(parts)):], "/"); tail != "" {
				values[name] = tail
			}
			parts = nil
			break
		}

		if i >= len(parts) {
			name := seg.param()
			if name == "" {
				return nil, false
			}
			if d, ok := r.defaultFor(name); ok {
				values[name] = d
				continue
			}
			if r.isOptional(name) {
				continue
			}
			return nil, false
		}

		if parts[i] == "" || !matchPieces(parts[i], seg.pieces, values) {
			return nil, false
		}
	}
	if len(parts) > len(r.segments) {
		return nil, false
	}

	for k, v := range r.Defaults {
		if _, ok := values[k]; !ok {
			values[k] = v
		}
	}

	return values, true
}

// Match is the result of a successful lookup.
type Match struct {
	// Route is the name of the matched route.
	Route string
	// Values holds URL parameters merged with route defaults.
	Values map[string]string
}

// Value returns a route value by case-insensitive key.
func (m Match) Value(key string) string {
	if v, ok := m.Values[key]; ok {
		return v
	}
	for k, v := range m.Values {
		if strings.EqualFold(k, key) {
			return v
		}
	}

	return ""
}

// Controller returns the "controller" route value.
func (m Match) Controller() string { return m.Value(KeyController) }

// Action returns the "action" route value.
func (m Match) Action() string { return m.Value(KeyAction) }

// ID returns the "id" route value, "" when absent.
func (m Match) ID() string { return m.Value(KeyID) }

// Table is an ordered route collection. It is safe for concurrent use.
type Table struct {
	mu     sync.RWMutex
	routes []*Route
	names  map[string]struct{}
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{names: make(map[string]struct{})}
}

// Ignore adds an entry that stops routing for matching paths.
func (t *Table) Ignore(pattern string) error {
	if err := contract.NotNull(t, "routes"); err != nil {
		return err
	}
	segments, err := parsePattern(pattern)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.routes = append(t.routes, &Route{Pattern: pattern, Ignore: true, segments: segments})

	return nil
}

// Map adds a named route. Parameters listed in optional may be absent
// from the URL without having a default.
//
// Example:
//
//	err := t.Map("Default", "{controller}/{action}/{id}",
//	    map[string]string{"controller": "Home", "action": "Index"}, "id")
func (t *Table) Map(name, pattern string, defaults map[string]string, optional ...string) error {
	if err := contract.NotNull(t, "routes"); err != nil {
		return err
	}
	if err := contract.NotEmptyOrWhitespace(name, "name"); err != nil {
		return err
	}
	segments, err := parsePattern(pattern)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	key := strings.ToLower(name)
	if _, dup := t.names[key]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateRoute, name)
	}
	t.names[key] = struct{}{}
	t.routes = append(t.routes, &Route{
		Name:     name,
		Pattern:  pattern,
		Defaults: maps.Clone(defaults),
		Optional: slices.Clone(optional),
		segments: segments,
	})

	return nil
}

// Match resolves path against the table. The second result is false when
// nothing matches or when an ignore entry matches first.
func (t *Table) Match(path string) (Match, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, r := range t.routes {
		values, ok := r.match(path)
		if !ok {
			continue
		}
		if r.Ignore {
			return Match{}, false
		}

		return Match{Route: r.Name, Values: values}, true
	}

	return Match{}, false
}

// Routes returns a copy of the table entries in order.
func (t *Table) Routes() []Route {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Route, 0, len(t.routes))
	for _, r := range t.routes {
		c := *r
		c.Defaults = maps.Clone(r.Defaults)
		c.Optional = slices.Clone(r.Optional)
		out = append(out, c)
	}

	return out
}

// Len returns the number of entries.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.routes)
}
