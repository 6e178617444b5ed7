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
	"github.com/dependencyinjector/webapp/buildinfo"
	"github.com/dependencyinjector/webapp/contract"
	"github.com/dependencyinjector/webapp/logging"
)

// Names of the filters added by [RegisterGlobalFilters].
const (
	RequestIDFilter   = "RequestID"
	HandleErrorFilter = "HandleError"
)

// RegisterGlobalFilters adds the filters every request runs through.
// HandleError exposes internal error text only in debug builds.
//
// Example:
//
//	fc := filters.NewCollection()
//	if err := filters.RegisterGlobalFilters(fc, logger); err != nil {
//	    logger.LogError(err, "filter registration failed")
//	}
func RegisterGlobalFilters(c *Collection, logger *logging.Logger) error {
	if err := contract.NotNull(c, "filters"); err != nil {
		return err
	}

	if err := c.Add(RequestIDFilter, RequestID()); err != nil {
		return err
	}

	return c.Add(HandleErrorFilter, HandleError(
		WithDebug(buildinfo.IsDebug),
		WithLogger(logger),
	))
}
