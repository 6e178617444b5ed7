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

// Package logging provides the structured logger of the web application.
// It is a thin layer over [log/slog].
//
// # Handlers
//
// Three output formats are available:
//
//   - [JSONHandler]: one JSON object per line, for log aggregation
//   - [TextHandler]: key=value pairs
//   - [ConsoleHandler]: colored, human-readable lines for development
//
// When no handler is configured the logger picks one from its output: the
// console handler when writing to a terminal, JSON otherwise.
//
// # Usage
//
//	logger := logging.MustNew(
//		logging.WithServiceName(buildinfo.AppName),
//		logging.WithServiceVersion(buildinfo.Version()),
//		logging.WithLevel(logging.LevelDebug),
//	)
//	logger.Info("application started", "addr", ":8080")
//
// [Logger.LogError] adds the error and, for precondition violations from the
// contract package, the violation kind and parameter:
//
//	if err := routes.RegisterRoutes(table); err != nil {
//		logger.LogError(err, "route registration failed")
//	}
//
// # Redaction
//
// Values of the keys password, token, secret, api_key and authorization are
// always replaced with "***REDACTED***".
//
// # Testing
//
// [NewTestLogger] returns a logger that writes JSON into a buffer, and
// [ParseJSONLogEntries] decodes the buffer for assertions.
package logging
