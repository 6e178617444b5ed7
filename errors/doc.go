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

// Package errors renders Go errors as HTTP error responses.
//
// A [Formatter] turns an error into a [Response]: status code, content type
// and a body ready for JSON encoding. Two formats are provided:
//   - [RFC9457]: RFC 9457 Problem Details (application/problem+json)
//   - [Simple]: a flat JSON object (application/json)
//
// Errors describe themselves through optional interfaces discovered with
// errors.As, so wrapped errors keep their meaning:
//   - [ErrorType]: the HTTP status code
//   - [ErrorCode]: a machine-readable code
//   - [ErrorDetails]: structured details
//
// Contract violations from the contract package implement all three and
// render as 400 Bad Request.
//
// # Usage
//
//	formatter := errors.NewRFC9457("https://example.com/problems")
//	resp := formatter.Format(r, err)
//	if err := resp.Write(w); err != nil {
//		logger.Error("failed to write error response", "error", err)
//	}
//
// Server errors (5xx) hide the error text unless the formatter is told to
// expose it; see [RFC9457.ExposeInternal] and [Simple.ExposeInternal].
package errors
