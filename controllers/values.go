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

package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strconv"
	"sync"

	"rivaas.dev/router"

	"github.com/dependencyinjector/webapp/contract"
	apperrors "github.com/dependencyinjector/webapp/errors"
)

// ErrValueNotFound is returned for an id with no stored value.
var ErrValueNotFound = errors.New("value not found")

const maxValueBody = 1 << 20

// Value is one stored entry of the Values API.
type Value struct {
	ID    int    `json:"id"`
	Value string `json:"value"`
}

// Values is an in-memory API controller for string values.
// It is safe for concurrent use.
type Values struct {
	mu     sync.RWMutex
	items  map[int]string
	nextID int
}

var _ APIController = (*Values)(nil)

// NewValues returns a Values controller seeded with the given texts,
// numbered from 1.
func NewValues(seed ...string) *Values {
	v := &Values{items: make(map[int]string, len(seed)), nextID: 1}
	for _, s := range seed {
		v.items[v.nextID] = s
		v.nextID++
	}

	return v
}

// List writes all values ordered by id.
func (v *Values) List(c *router.Context) error {
	v.mu.RLock()
	out := make([]Value, 0, len(v.items))
	for id, s := range v.items {
		out = append(out, Value{ID: id, Value: s})
	}
	v.mu.RUnlock()

	slices.SortFunc(out, func(a, b Value) int { return a.ID - b.ID })

	return c.JSON(http.StatusOK, out)
}

// Get writes the value stored under id.
func (v *Values) Get(c *router.Context, id string) error {
	n, err := parseID(id)
	if err != nil {
		return err
	}

	v.mu.RLock()
	s, ok := v.items[n]
	v.mu.RUnlock()
	if !ok {
		return missing(n)
	}

	return c.JSON(http.StatusOK, Value{ID: n, Value: s})
}

// Create stores the JSON string in the body and answers 201 with its location.
func (v *Values) Create(c *router.Context) error {
	text, err := readText(c)
	if err != nil {
		return err
	}

	v.mu.Lock()
	n := v.nextID
	v.nextID++
	v.items[n] = text
	v.mu.Unlock()

	c.Header("Location", c.Request.URL.Path+"/"+strconv.Itoa(n))

	return c.JSON(http.StatusCreated, Value{ID: n, Value: text})
}

// Update replaces the value stored under id.
func (v *Values) Update(c *router.Context, id string) error {
	n, err := parseID(id)
	if err != nil {
		return err
	}
	text, err := readText(c)
	if err != nil {
		return err
	}

	v.mu.Lock()
	_, ok := v.items[n]
	if ok {
		v.items[n] = text
	}
	v.mu.Unlock()
	if !ok {
		return missing(n)
	}

	c.NoContent()

	return nil
}

// Delete removes the value stored under id.
func (v *Values) Delete(c *router.Context, id string) error {
	n, err := parseID(id)
	if err != nil {
		return err
	}

	v.mu.Lock()
	_, ok := v.items[n]
	delete(v.items, n)
	v.mu.Unlock()
	if !ok {
		return missing(n)
	}

	c.NoContent()

	return nil
}

func parseID(id string) (int, error) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return 0, apperrors.WithStatus(fmt.Errorf("invalid id %q: %w", id, err), http.StatusBadRequest)
	}
	if err := contract.GreaterThan(n, 0, "id"); err != nil {
		return 0, err
	}

	return n, nil
}

// readText decodes a JSON string body. An empty body or null is a null argument.
func readText(c *router.Context) (string, error) {
	data, err := io.ReadAll(http.MaxBytesReader(c.Response, c.Request.Body, maxValueBody))
	if err != nil {
		return "", apperrors.WithStatus(fmt.Errorf("read body: %w", err), http.StatusBadRequest)
	}

	var text *string
	if len(data) > 0 {
		if err := json.Unmarshal(data, &text); err != nil {
			return "", apperrors.WithStatus(fmt.Errorf("decode body: %w", err), http.StatusBadRequest)
		}
	}
	if err := contract.NotNullOrWhitespace(text, "value"); err != nil {
		return "", err
	}

	return *text, nil
}

func missing(id int) error {
	return apperrors.WithStatus(fmt.Errorf("%w: %d", ErrValueNotFound, id), http.StatusNotFound)
}
