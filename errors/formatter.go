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

package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Formatter defines how errors are formatted in HTTP responses.
type Formatter interface {
	// Format converts err into response components. req supplies the
	// instance path and may be nil.
	Format(req *http.Request, err error) Response
}

// Response represents a formatted error response.
type Response struct {
	// Status is the HTTP status code.
	Status int

	// ContentType is the Content-Type header value.
	ContentType string

	// Body is marshaled to JSON by [Response.Write].
	Body any

	// Headers contains additional headers to set (optional).
	Headers http.Header
}

// Write sends the response: headers, status line and JSON body.
func (r Response) Write(w http.ResponseWriter) error {
	for k, values := range r.Headers {
		for _, v := range values {
			w.Header().Add(k, v)
		}
	}
	w.Header().Set("Content-Type", r.ContentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(r.Status)

	if err := json.NewEncoder(w).Encode(r.Body); err != nil {
		return fmt.Errorf("encode error body: %w", err)
	}

	return nil
}

// ErrorType allows errors to declare their own HTTP status code.
//
// Example:
//
//	type NotFoundError struct{ Resource string }
//
//	func (e NotFoundError) Error() string   { return e.Resource + " not found" }
//	func (e NotFoundError) HTTPStatus() int { return http.StatusNotFound }
type ErrorType interface {
	error
	// HTTPStatus returns the HTTP status code for this error.
	HTTPStatus() int
}

// ErrorDetails allows errors to provide additional structured information.
type ErrorDetails interface {
	error
	// Details returns structured information about the error.
	Details() any
}

// ErrorCode allows errors to provide a machine-readable code.
type ErrorCode interface {
	error
	// Code returns a machine-readable error code.
	Code() string
}

// StatusOf returns the status declared by err through [ErrorType],
// or 500 Internal Server Error.
func StatusOf(err error) int {
	var typed ErrorType
	if errors.As(err, &typed) {
		if s := typed.HTTPStatus(); s >= 100 && s <= 599 {
			return s
		}
	}

	return http.StatusInternalServerError
}

// codeOf returns the code declared through [ErrorCode], or "".
func codeOf(err error) string {
	var coded ErrorCode
	if errors.As(err, &coded) {
		return coded.Code()
	}

	return ""
}

// detailsOf returns the details declared through [ErrorDetails].
func detailsOf(err error) (any, bool) {
	var detailed ErrorDetails
	if errors.As(err, &detailed) {
		return detailed.Details(), true
	}

	return nil, false
}

// message returns the client-facing text for err. Server errors are
// reduced to the status text unless expose is set.
func message(err error, status int, expose bool) string {
	if status >= http.StatusInternalServerError && !expose {
		return http.StatusText(status)
	}

	return err.Error()
}

// NewRFC9457 creates a new RFC9457 formatter.
// baseURL is prepended to error codes to build problem type URIs.
func NewRFC9457(baseURL string) *RFC9457 {
	return &RFC9457{BaseURL: baseURL}
}

// NewSimple creates a new Simple formatter.
func NewSimple() *Simple {
	return &Simple{}
}

// WithStatus wraps an error with an explicit HTTP status code.
// If err is nil, the status text is used as the error message.
//
// Example:
//
//	return errors.WithStatus(err, http.StatusNotFound)
func WithStatus(err error, status int) error {
	return &statusError{err: err, status: status}
}

type statusError struct {
	err    error
	status int
}

func (e *statusError) Error() string {
	if e.err == nil {
		return http.StatusText(e.status)
	}

	return e.err.Error()
}

func (e *statusError) Unwrap() error {
	return e.err
}

func (e *statusError) HTTPStatus() int {
	return e.status
}
