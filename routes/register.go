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

package routes

import (
	"github.com/dependencyinjector/webapp/contract"
)

// Route names and templates installed by [RegisterRoutes].
const (
	DefaultRouteName    = "Default"
	DefaultRoutePattern = "{controller}/{action}/{id}"
	ResourcePattern     = "{resource}.axd/{*pathInfo}"
	APIRouteName        = "DefaultApi"
	APIRoutePattern     = "api/{controller}/{id}"
)

// RegisterRoutes installs the application routes into t:
// the resource handler ignore entry, then the Default route
// {controller}/{action}/{id} with Home/Index defaults and an optional id.
func RegisterRoutes(t *Table) error {
	if err := contract.NotNull(t, "routes"); err != nil {
		return err
	}

	if err := t.Ignore(ResourcePattern); err != nil {
		return err
	}

	return t.Map(DefaultRouteName, DefaultRoutePattern,
		map[string]string{KeyController: "Home", KeyAction: "Index"},
		KeyID,
	)
}

// RegisterAPIRoutes installs the API route api/{controller}/{id} with an
// optional id. Call it before [RegisterRoutes]; the Default route would
// otherwise capture API paths.
func RegisterAPIRoutes(t *Table) error {
	if err := contract.NotNull(t, "routes"); err != nil {
		return err
	}

	return t.Map(APIRouteName, APIRoutePattern, nil, KeyID)
}
