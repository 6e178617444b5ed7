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

// Package controllers dispatches route matches to controller actions.
//
// A [Registry] maps controller names, compared case-insensitively, to
// either an MVC [Controller] (a set of named actions) or an [APIController]
// whose methods are selected by HTTP verb. The registry implements
// routes.Dispatcher, so it plugs straight into routes.Mount:
//
//	reg := controllers.NewRegistry()
//	reg.Register("Home", controllers.NewHome(views))
//	reg.RegisterAPI("Values", controllers.NewValues())
//	routes.Mount(r, table, reg)
//
// Views are embedded html/template pages sharing one layout that loads the
// script and style bundles.
package controllers
