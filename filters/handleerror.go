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
	"net/http"
	"runtime/debug"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"rivaas.dev/router"

	apperrors "github.com/dependencyinjector/webapp/errors"
	"github.com/dependencyinjector/webapp/logging"
)

// HandleErrorOption configures [HandleError].
type HandleErrorOption func(*handleErrorConfig)

type handleErrorConfig struct {
	formatter apperrors.Formatter
	debug     bool
	logger    *logging.Logger
	stackSize int
}

func defaultHandleErrorConfig() *handleErrorConfig {
	return &handleErrorConfig{
		stackSize: 4 << 10,
	}
}

// WithFormatter sets the formatter used to render errors.
// Default: RFC 9457 problem details.
func WithFormatter(f apperrors.Formatter) HandleErrorOption {
	return func(cfg *handleErrorConfig) {
		cfg.formatter = f
	}
}

// WithDebug keeps the error text of 5xx responses and their details.
//
// Example:
//
//	filters.HandleError(filters.WithDebug(buildinfo.IsDebug))
func WithDebug(enabled bool) HandleErrorOption {
	return func(cfg *handleErrorConfig) {
		cfg.debug = enabled
	}
}

// WithLogger logs rendered errors and recovered panics. A nil logger disables logging.
func WithLogger(l *logging.Logger) HandleErrorOption {
	return func(cfg *handleErrorConfig) {
		cfg.logger = l
	}
}

// WithStackSize sets the maximum logged stack trace size in bytes.
// Default: 4KB. Zero disables stack capture.
func WithStackSize(size int) HandleErrorOption {
	return func(cfg *handleErrorConfig) {
		cfg.stackSize = size
	}
}

// PanicError wraps a value recovered from a panicking handler.
type PanicError struct {
	Value any
	Stack []byte
}

// Error implements error.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}

	return nil
}

// HTTPStatus implements errors.ErrorType.
func (e *PanicError) HTTPStatus() int {
	return http.StatusInternalServerError
}

// Code implements errors.ErrorCode.
func (e *PanicError) Code() string {
	return "internal_error"
}

// HandleError returns a filter that renders handler failures.
//
// A panic in a later handler is recovered, marked on the active span and
// rendered as a 500. Otherwise, once the chain returns, the first error
// recorded with c.Error is rendered unless a response was already written.
//
// Example:
//
//	r.Use(filters.HandleError(
//	    filters.WithFormatter(errors.NewSimple()),
//	    filters.WithLogger(logger),
//	))
func HandleError(opts ...HandleErrorOption) router.HandlerFunc {
	cfg := defaultHandleErrorConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.formatter == nil {
		f := apperrors.NewRFC9457("")
		f.ExposeInternal = cfg.debug
		cfg.formatter = f
	}

	return func(c *router.Context) {
		defer func() {
			if v := recover(); v != nil {
				perr := &PanicError{Value: v, Stack: cfg.stack()}
				markSpan(c, v)
				cfg.render(c, perr)
			}
		}()

		c.Next()

		if errs := c.Errors(); len(errs) > 0 && !written(c.Response) {
			cfg.render(c, errs[0])
		}
	}
}

func (cfg *handleErrorConfig) stack() []byte {
	if cfg.stackSize <= 0 {
		return nil
	}
	s := debug.Stack()
	if len(s) > cfg.stackSize {
		s = s[:cfg.stackSize]
	}

	return s
}

func (cfg *handleErrorConfig) render(c *router.Context, err error) {
	resp := cfg.formatter.Format(c.Request, err)

	if l := cfg.logger; l != nil {
		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", resp.Status,
		}
		if id := RequestIDFrom(c); id != "" {
			attrs = append(attrs, "request_id", id)
		}
		var perr *PanicError
		if errors.As(err, &perr) && len(perr.Stack) > 0 {
			attrs = append(attrs, "stack", string(perr.Stack))
		}
		if resp.Status >= http.StatusInternalServerError {
			l.LogError(err, "request failed", attrs...)
		} else {
			l.Warn("request rejected", append([]any{"error", err.Error()}, attrs...)...)
		}
	}

	if written(c.Response) {
		return
	}
	if werr := resp.Write(c.Response); werr != nil && cfg.logger != nil {
		cfg.logger.LogError(werr, "failed to write error response")
	}
	c.Abort()
}

func markSpan(c *router.Context, v any) {
	span := c.Span()
	if span == nil || !span.SpanContext().IsValid() {
		return
	}
	span.SetStatus(codes.Error, "panic recovered")
	span.SetAttributes(
		attribute.Bool("exception.escaped", true),
		attribute.String("exception.type", fmt.Sprintf("%T", v)),
		attribute.String("exception.message", fmt.Sprintf("%v", v)),
	)
	if err, ok := v.(error); ok {
		span.RecordError(err)
	}
}

func written(w http.ResponseWriter) bool {
	rw, ok := w.(interface{ Written() bool })

	return ok && rw.Written()
}
