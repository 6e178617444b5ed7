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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rivaas.dev/router"

	"github.com/dependencyinjector/webapp/contract"
	apperrors "github.com/dependencyinjector/webapp/errors"
)

// renderErrors stands in for the error handling filter.
func renderErrors(c *router.Context) {
	c.Next()
	if errs := c.Errors(); len(errs) > 0 {
		_ = apperrors.NewSimple().Format(c.Request, errs[0]).Write(c.Response) //nolint:errcheck // test helper
	}
}

func newMountedRouter(t *testing.T, d Dispatcher) *router.Router {
	t.Helper()

	r := router.MustNew()
	r.Use(renderErrors)
	r.GET("/health", func(c *router.Context) {
		_ = c.String(http.StatusOK, "ok") //nolint:errcheck // test handler
	})
	require.NoError(t, Mount(r, defaultTable(t), d))

	return r
}

func echoDispatcher() Dispatcher {
	return DispatcherFunc(func(c *router.Context, m Match) error {
		return c.String(http.StatusOK, m.Controller()+"/"+m.Action()+"/"+m.ID())
	})
}

func TestMount_Dispatch(t *testing.T) {
	t.Parallel()

	r := newMountedRouter(t, echoDispatcher())

	tests := []struct {
		method string
		path   string
		code   int
		body   string
	}{
		{http.MethodGet, "/", http.StatusOK, "Home/Index/"},
		{http.MethodGet, "/Home/About", http.StatusOK, "Home/About/"},
		{http.MethodPost, "/Home/Contact", http.StatusOK, "Home/Contact/"},
		{http.MethodGet, "/Orders/Details/12", http.StatusOK, "Orders/Details/12"},
		{http.MethodGet, "/health", http.StatusOK, "ok"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, tt.code, w.Code, "%s %s", tt.method, tt.path)
		assert.Equal(t, tt.body, w.Body.String(), "%s %s", tt.method, tt.path)
	}
}

func TestMount_NotFound(t *testing.T) {
	t.Parallel()

	r := newMountedRouter(t, echoDispatcher())

	for _, path := range []string{"/a/b/c/d", "/WebResource.axd", "/Trace.axd/x"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Contains(t, w.Body.String(), "no route matches the request path", path)
	}
}

func TestMount_DispatchError(t *testing.T) {
	t.Parallel()

	r := newMountedRouter(t, DispatcherFunc(func(*router.Context, Match) error {
		return contract.NotEmpty("", "id")
	}))

	req := httptest.NewRequest(http.MethodGet, "/Home/Index", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "empty_argument")
}

func TestMount_NilArguments(t *testing.T) {
	t.Parallel()

	r := router.MustNew()
	table := NewTable()

	var cerr *contract.Violation
	err := Mount(nil, table, echoDispatcher())
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "router", cerr.ParamName)

	err = Mount(r, nil, echoDispatcher())
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "routes", cerr.ParamName)

	err = Mount(r, table, nil)
	require.ErrorIs(t, err, contract.ErrNullArgument)
}
