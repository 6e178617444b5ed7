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

// Package filters holds the global request filters of the web application.
//
// A [Collection] keeps named filters in registration order and installs them
// on a rivaas router with [Collection.Apply]. [RegisterGlobalFilters] fills a
// collection with the filters every request runs through:
//
//   - [RequestID]: propagates or generates the X-Request-ID header
//   - [HandleError]: recovers panics and renders errors recorded with
//     router.Context.Error through an errors.Formatter
//
// # Basic Usage
//
//	fc := filters.NewCollection()
//	if err := filters.RegisterGlobalFilters(fc, logger); err != nil {
//	    return err
//	}
//	r := router.MustNew()
//	if err := fc.Apply(r); err != nil {
//	    return err
//	}
//
// # Error Rendering
//
// Errors keep the status they declare through errors.ErrorType, so a contract
// violation returned by a controller renders as a 400 problem detail. In
// release builds the detail of a 5xx response is replaced by the status text.
package filters
