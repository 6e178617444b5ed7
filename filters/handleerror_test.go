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
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rivaas.dev/router"

	"github.com/dependencyinjector/webapp/contract"
	apperrors "github.com/dependencyinjector/webapp/errors"
	"github.com/dependencyinjector/webapp/logging"
)

func errorServer(t *testing.T, h router.HandlerFunc, opts ...HandleErrorOption) *router.Router {
	t.Helper()

	r := router.MustNew()
	r.Use(RequestID(), HandleError(opts...))
	r.GET("/boom", h)

	return r
}

func do(r http.Handler) (*httptest.ResponseRecorder, map[string]any) {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body) //nolint:errcheck // empty body leaves nil map

	return w, body
}

func TestHandleError_ContractViolation(t *testing.T) {
	t.Parallel()

	r := errorServer(t, func(c *router.Context) {
		c.Error(contract.GreaterThan(0, 0, "id"))
	})

	w, body := do(r)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/problem+json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "out_of_range", body["code"])
	assert.Equal(t, "Bad Request", body["title"])
	assert.Equal(t, "/boom", body["instance"])
	assert.Contains(t, body["detail"], "(Parameter 'id')")

	details, ok := body["errors"].(map[string]any)
	require.True(t, ok, "errors extension: %v", body["errors"])
	assert.Equal(t, "OutOfRange", details["kind"])
	assert.Equal(t, "id", details["parameter"])
}

func TestHandleError_InternalErrorHidden(t *testing.T) {
	t.Parallel()

	r := errorServer(t, func(c *router.Context) {
		c.Error(errors.New("database password is hunter2"))
	})

	w, body := do(r)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal Server Error", body["detail"])
	assert.NotContains(t, w.Body.String(), "hunter2")
}

func TestHandleError_DebugExposes(t *testing.T) {
	t.Parallel()

	r := errorServer(t, func(c *router.Context) {
		c.Error(errors.New("database unreachable"))
	}, WithDebug(true))

	w, body := do(r)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "database unreachable", body["detail"])
}

func TestHandleError_FirstErrorWins(t *testing.T) {
	t.Parallel()

	r := errorServer(t, func(c *router.Context) {
		c.Error(apperrors.WithStatus(errors.New("missing"), http.StatusNotFound))
		c.Error(errors.New("second"))
	}, WithFormatter(apperrors.NewSimple()))

	w, body := do(r)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "missing", body["error"])
}

func TestHandleError_Panic(t *testing.T) {
	t.Parallel()

	l, buf := logging.NewTestLogger()
	r := errorServer(t, func(*router.Context) {
		panic("controller exploded")
	}, WithLogger(l))

	w, body := do(r)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal_error", body["code"])
	assert.Equal(t, "Internal Server Error", body["detail"])

	entries, err := logging.ParseJSONLogEntries(buf)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ERROR", entries[0].Level)
	assert.Equal(t, "panic: controller exploded", entries[0].Attrs["error"])
	assert.Equal(t, w.Header().Get(RequestIDHeader), entries[0].Attrs["request_id"])
	assert.Contains(t, entries[0].Attrs["stack"], "goroutine")
}

func TestHandleError_PanicStackLimit(t *testing.T) {
	t.Parallel()

	l, buf := logging.NewTestLogger()
	r := errorServer(t, func(*router.Context) {
		panic(errors.New("bad"))
	}, WithLogger(l), WithStackSize(64))

	w, _ := do(r)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	entries, err := logging.ParseJSONLogEntries(buf)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	stack, ok := entries[0].Attrs["stack"].(string)
	require.True(t, ok)
	assert.LessOrEqual(t, len(stack), 64)
}

func TestHandleError_ClientErrorLoggedAsWarning(t *testing.T) {
	t.Parallel()

	l, buf := logging.NewTestLogger()
	r := errorServer(t, func(c *router.Context) {
		c.Error(contract.NotEmpty("", "name"))
	}, WithLogger(l))

	w, _ := do(r)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	entries, err := logging.ParseJSONLogEntries(buf)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "WARN", entries[0].Level)
	assert.Equal(t, "Parameter 'name' cannot be empty.", entries[0].Attrs["error"])
}

func TestHandleError_NoErrors(t *testing.T) {
	t.Parallel()

	r := errorServer(t, func(c *router.Context) {
		_ = c.String(http.StatusOK, "fine") //nolint:errcheck // test handler
	})

	w, _ := do(r)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fine", w.Body.String())
}

func TestPanicError(t *testing.T) {
	t.Parallel()

	cause := errors.New("cause")
	p := &PanicError{Value: cause}
	require.ErrorIs(t, p, cause)
	assert.Equal(t, "panic: cause", p.Error())
	assert.Equal(t, http.StatusInternalServerError, apperrors.StatusOf(p))

	assert.NoError(t, (&PanicError{Value: 42}).Unwrap())
}
