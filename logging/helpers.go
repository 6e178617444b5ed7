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

package logging

import (
	"errors"
	"time"

	"github.com/dependencyinjector/webapp/contract"
)

// LogError logs err at error level with contextual attributes.
//
// Automatically includes:
//   - error: err.Error()
//   - violation.kind, violation.parameter: when err wraps a [contract.Violation]
//
// Example:
//
//	if err := bundles.RegisterBundles(collection); err != nil {
//	    logger.LogError(err, "bundle registration failed", "assets", dir)
//	    return err
//	}
func (l *Logger) LogError(err error, msg string, extra ...any) {
	if err == nil {
		l.Error(msg, extra...)
		return
	}

	attrs := make([]any, 0, 6+len(extra))
	attrs = append(attrs, "error", err.Error())

	var v *contract.Violation
	if errors.As(err, &v) {
		attrs = append(attrs, "violation.kind", v.Kind.String())
		if v.ParamName != "" {
			attrs = append(attrs, "violation.parameter", v.ParamName)
		}
	}

	attrs = append(attrs, extra...)
	l.Error(msg, attrs...)
}

// LogDuration logs an operation duration at info level.
//
// Automatically includes:
//   - duration_ms: duration in milliseconds
//   - duration: human-readable duration string (e.g., "1.5s")
//
// Example:
//
//	start := time.Now()
//	collection.Warm()
//	logger.LogDuration("bundles built", start, "count", len(collection.Bundles()))
func (l *Logger) LogDuration(msg string, start time.Time, extra ...any) {
	d := time.Since(start)

	attrs := make([]any, 0, 4+len(extra))
	attrs = append(attrs, "duration_ms", d.Milliseconds(), "duration", d.String())
	attrs = append(attrs, extra...)
	l.Info(msg, attrs...)
}
