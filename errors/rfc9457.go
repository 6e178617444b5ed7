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
	"net/http"

	"github.com/google/uuid"
)

const problemContentType = "application/problem+json; charset=utf-8"

// RFC9457 formats errors as RFC 9457 Problem Details.
//
// Example:
//
//	formatter := errors.NewRFC9457("https://example.com/problems")
//	formatter.ExposeInternal = buildinfo.IsDebug
type RFC9457 struct {
	// BaseURL is prepended to the error code to create the problem type URI.
	// Errors without a code use "about:blank".
	BaseURL string

	// ExposeInternal keeps the error text in the detail of 5xx problems.
	ExposeInternal bool

	// ErrorIDGenerator generates the error_id extension.
	// If nil, a UUIDv7 is used.
	ErrorIDGenerator func() string

	// DisableErrorID omits the error_id extension.
	DisableErrorID bool
}

// Problem is an RFC 9457 problem detail object.
type Problem struct {
	Type       string
	Title      string
	Status     int
	Detail     string
	Instance   string
	Extensions map[string]any
}

var reservedMembers = map[string]struct{}{
	"type": {}, "title": {}, "status": {}, "detail": {}, "instance": {},
}

// MarshalJSON writes extensions inline next to the standard members.
// Extensions never override a standard member.
func (p Problem) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, 5+len(p.Extensions))
	for k, v := range p.Extensions {
		if _, reserved := reservedMembers[k]; !reserved {
			m[k] = v
		}
	}
	m["type"] = p.Type
	m["title"] = p.Title
	m["status"] = p.Status
	if p.Detail != "" {
		m["detail"] = p.Detail
	}
	if p.Instance != "" {
		m["instance"] = p.Instance
	}

	return json.Marshal(m)
}

// Format converts err into a problem detail response.
func (f *RFC9457) Format(req *http.Request, err error) Response {
	status := StatusOf(err)

	p := Problem{
		Type:       f.problemType(err),
		Title:      http.StatusText(status),
		Status:     status,
		Detail:     message(err, status, f.ExposeInternal),
		Extensions: make(map[string]any),
	}
	if req != nil && req.URL != nil {
		p.Instance = req.URL.Path
	}

	if !f.DisableErrorID {
		p.Extensions["error_id"] = f.errorID()
	}
	if code := codeOf(err); code != "" {
		p.Extensions["code"] = code
	}
	if details, ok := detailsOf(err); ok && (status < http.StatusInternalServerError || f.ExposeInternal) {
		p.Extensions["errors"] = details
	}

	return Response{
		Status:      status,
		ContentType: problemContentType,
		Body:        p,
	}
}

func (f *RFC9457) problemType(err error) string {
	code := codeOf(err)
	switch {
	case code == "":
		return "about:blank"
	case f.BaseURL == "":
		return code
	default:
		return f.BaseURL + "/" + code
	}
}

func (f *RFC9457) errorID() string {
	if f.ErrorIDGenerator != nil {
		return f.ErrorIDGenerator()
	}
	id, err := uuid.NewV7()
	if err != nil {
		return "err-" + uuid.NewString()
	}

	return "err-" + id.String()
}
