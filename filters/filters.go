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

package filters

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"rivaas.dev/router"

	"github.com/dependencyinjector/webapp/contract"
)

var (
	// ErrDuplicateFilter is returned when a filter name is registered twice.
	ErrDuplicateFilter = errors.New("filter already registered")

	// ErrFrozen is returned by [Collection.Add] after [Collection.Apply].
	ErrFrozen = errors.New("filter collection already applied")
)

// Filter runs around every request. It calls c.Next to continue the chain.
type Filter = router.HandlerFunc

type entry struct {
	name   string
	filter Filter
}

// Collection is an ordered set of named global filters.
// It is safe for concurrent use.
type Collection struct {
	mu      sync.RWMutex
	entries []entry
	applied bool
}

// NewCollection returns an empty filter collection.
func NewCollection() *Collection {
	return &Collection{}
}

// Add appends a filter. Names compare case-insensitively.
//
// Example:
//
//	err := fc.Add("RequestID", filters.RequestID())
func (c *Collection) Add(name string, f Filter) error {
	if err := contract.NotNull(c, "filters"); err != nil {
		return err
	}
	if err := contract.NotEmptyOrWhitespace(name, "name"); err != nil {
		return err
	}
	if err := contract.NotNull(f, "filter"); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.applied {
		return fmt.Errorf("%w: %s", ErrFrozen, name)
	}
	for _, e := range c.entries {
		if strings.EqualFold(e.name, name) {
			return fmt.Errorf("%w: %s", ErrDuplicateFilter, name)
		}
	}
	c.entries = append(c.entries, entry{name: name, filter: f})

	return nil
}

// Names returns the filter names in registration order.
func (c *Collection) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.name
	}

	return names
}

// Len returns the number of registered filters.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Apply installs the filters on r in registration order. The collection
// cannot be changed afterwards.
func (c *Collection) Apply(r *router.Router) error {
	if err := contract.NotNull(c, "filters"); err != nil {
		return err
	}
	if err := contract.NotNull(r, "router"); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	handlers := make([]router.HandlerFunc, len(c.entries))
	for i, e := range c.entries {
		handlers[i] = e.filter
	}
	if len(handlers) > 0 {
		r.Use(handlers...)
	}
	c.applied = true

	return nil
}
