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

// Package site assembles and serves the web application.
//
// [New] performs the startup registration in a fixed order: global
// filters, API and MVC routes, then bundles. Any argument violation raised
// during registration aborts startup with that error.
//
//	cfg, err := config.Load(ctx, config.WithOptionalFile("webapp.yaml"), config.WithEnv("WEBAPP_"))
//	if err != nil {
//	    return err
//	}
//	s, err := site.New(*cfg)
//	if err != nil {
//	    return err
//	}
//	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	return s.Run(ctx)
package site
