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
	"net/http"

	"rivaas.dev/router"

	"github.com/dependencyinjector/webapp/contract"
	apperrors "github.com/dependencyinjector/webapp/errors"
)

// ErrNoRoute is recorded on the request when no route matches its path.
var ErrNoRoute = errors.New("no route matches the request path")

// Dispatcher runs the action selected by a route match.
type Dispatcher interface {
	Dispatch(c *router.Context, m Match) error
}

// DispatcherFunc adapts a function to [Dispatcher].
type DispatcherFunc func(c *router.Context, m Match) error

// Dispatch calls f(c, m).
func (f DispatcherFunc) Dispatch(c *router.Context, m Match) error {
	return f(c, m)
}

// Mount installs t on r for GET, HEAD, POST, PUT and DELETE under "/" and "/*".
// More specific routes registered on r keep precedence.
//
// Errors are recorded with c.Error and rendered by the error handling
// filter: unmatched paths carry a 404 status, dispatcher errors keep
// their own.
func Mount(r *router.Router, t *Table, d Dispatcher) error {
	if err := contract.NotNull(r, "router"); err != nil {
		return err
	}
	if err := contract.NotNull(t, "routes"); err != nil {
		return err
	}
	if err := contract.NotNull(d, "dispatcher"); err != nil {
		return err
	}

	handler := func(c *router.Context) {
		m, ok := t.Match(c.Request.URL.Path)
		if !ok {
			c.Error(apperrors.WithStatus(
				fmt.Errorf("%w: %s", ErrNoRoute, c.Request.URL.Path),
				http.StatusNotFound,
			))
			return
		}
		if err := d.Dispatch(c, m); err != nil {
			c.Error(err)
		}
	}

	for _, path := range []string{"/", "/*"} {
		r.GET(path, handler)
		r.HEAD(path, handler)
		r.POST(path, handler)
		r.PUT(path, handler)
		r.DELETE(path, handler)
	}

	return nil
}
