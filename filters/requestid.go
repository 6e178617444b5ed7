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
	"rivaas.dev/router"
	"rivaas.dev/router/middleware/requestid"
)

// RequestIDHeader is the default request ID header.
const RequestIDHeader = "X-Request-ID"

// RequestID returns a filter that tags each request with an ID (UUIDv7
// unless an option says otherwise), echoed in the response header and
// stored in the request context. Options are those of the requestid
// middleware: [requestid.WithHeader], [requestid.WithULID],
// [requestid.WithGenerator] and [requestid.WithAllowClientID].
//
// Example:
//
//	r.Use(filters.RequestID())
//	r.GET("/", func(c *router.Context) {
//	    slog.Info("hit", "request_id", filters.RequestIDFrom(c))
//	})
func RequestID(opts ...requestid.Option) router.HandlerFunc {
	return requestid.New(opts...)
}

// RequestIDFrom returns the request ID stored by [RequestID], or "".
func RequestIDFrom(c *router.Context) string {
	if c == nil || c.Request == nil {
		return ""
	}

	return requestid.Get(c)
}
