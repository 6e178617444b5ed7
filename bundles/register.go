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

package bundles

import (
	"github.com/dependencyinjector/webapp/buildinfo"
	"github.com/dependencyinjector/webapp/contract"
)

// Script bundle paths.
const (
	ScriptJQuery     = "~/bundles/jquery"
	ScriptValidation = "~/bundles/jqueryval"
	ScriptModernizr  = "~/bundles/modernizr"
	ScriptBootstrap  = "~/bundles/bootstrap"
)

// Style bundle paths.
const (
	StyleTheme = "~/bundles/theme"
)

// RegisterBundles adds the application bundles to c and enables
// optimizations in release builds.
func RegisterBundles(c *Collection) error {
	if err := contract.NotNull(c, "bundles"); err != nil {
		return err
	}

	for _, b := range []*Bundle{
		NewScriptBundle(ScriptJQuery).Include(
			"~/Scripts/jquery-{version}.js"),
		NewScriptBundle(ScriptValidation).Include(
			"~/Scripts/jquery.validate*"),
		// Development build of Modernizr; trim it with the Modernizr build
		// tool before going to production.
		NewScriptBundle(ScriptModernizr).Include(
			"~/Scripts/modernizr-*"),
		NewScriptBundle(ScriptBootstrap).Include(
			"~/Scripts/bootstrap.js",
			"~/Scripts/respond.js"),
		NewStyleBundle(StyleTheme).Include(
			"~/Content/bootstrap.css",
			"~/Content/site.css"),
	} {
		if err := c.Add(b); err != nil {
			return err
		}
	}

	c.SetEnableOptimizations(!buildinfo.IsDebug)

	return nil
}
