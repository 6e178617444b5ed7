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
	"net/http"
)

const jsonContentType = "application/json; charset=utf-8"

// Simple formats errors as flat JSON objects:
//
//	{"error": "message", "code": "...", "details": {...}}
type Simple struct {
	// ExposeInternal keeps the error text of 5xx errors.
	ExposeInternal bool
}

// Format converts err into a simple JSON response.
func (f *Simple) Format(_ *http.Request, err error) Response {
	status := StatusOf(err)

	body := map[string]any{
		"error": message(err, status, f.ExposeInternal),
	}
	if code := codeOf(err); code != "" {
		body["code"] = code
	}
	if details, ok := detailsOf(err); ok && (status < http.StatusInternalServerError || f.ExposeInternal) {
		body["details"] = details
	}

	return Response{
		Status:      status,
		ContentType: jsonContentType,
		Body:        body,
	}
}
