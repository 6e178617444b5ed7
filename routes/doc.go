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

// Package routes maps URL paths to controller actions.
//
// A [Table] holds an ordered list of routes written in the familiar MVC
// template syntax:
//
//	{controller}/{action}/{id}     parameters, one per segment
//	{resource}.axd/{*pathInfo}     literal text mixed with parameters, catch-all tail
//
// Routes are tried in registration order. The first match wins; an ignore
// entry that matches stops routing. Literal text compares case-insensitively.
// Trailing segments may be left out when their parameter has a default or is
// optional.
//
// [RegisterRoutes] installs the application routes and [Mount] connects a
// table to a rivaas router, handing matches to a [Dispatcher].
package routes
