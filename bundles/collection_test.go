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
	"fmt"
	"io/fs"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dependencyinjector/webapp/buildinfo"
	"github.com/dependencyinjector/webapp/contract"
	"github.com/dependencyinjector/webapp/wwwroot"
)

func registered(t *testing.T, fsys fs.FS) *Collection {
	t.Helper()

	c := NewCollection(fsys)
	require.NoError(t, RegisterBundles(c))

	return c
}

func TestRegisterBundles(t *testing.T) {
	t.Parallel()

	c := registered(t, assetFS())

	want := map[string]Kind{
		ScriptJQuery:     Script,
		ScriptValidation: Script,
		ScriptModernizr:  Script,
		ScriptBootstrap:  Script,
		StyleTheme:       Style,
	}
	require.Len(t, c.Bundles(), len(want))
	for path, kind := range want {
		b, ok := c.Get(path)
		require.True(t, ok, path)
		assert.Equal(t, kind, b.Kind(), path)
	}

	b, _ := c.Get(ScriptBootstrap)
	assert.Equal(t, []string{"~/Scripts/bootstrap.js", "~/Scripts/respond.js"}, b.Includes())
	assert.Equal(t, "/bundles/bootstrap", b.URL())

	assert.Equal(t, !buildinfo.IsDebug, c.EnableOptimizations())
}

func TestRegisterBundles_Nil(t *testing.T) {
	t.Parallel()

	err := RegisterBundles(nil)
	require.ErrorIs(t, err, contract.ErrNullArgument)
	assert.Equal(t, "Value cannot be null. (Parameter 'bundles')", err.Error())
}

func TestRegisterBundles_Twice(t *testing.T) {
	t.Parallel()

	c := registered(t, assetFS())
	require.ErrorIs(t, RegisterBundles(c), ErrDuplicateBundle)
}

func TestCollection_Add(t *testing.T) {
	t.Parallel()

	c := NewCollection(assetFS())
	require.NoError(t, c.Add(NewScriptBundle("~/bundles/app")))

	require.ErrorIs(t, c.Add(NewScriptBundle("~/Bundles/APP")), ErrDuplicateBundle)
	require.ErrorIs(t, c.Add(NewScriptBundle("/bundles/app2")), ErrInvalidPath)
	require.ErrorIs(t, c.Add(NewScriptBundle("~/")), ErrInvalidPath)
	require.ErrorIs(t, c.Add(nil), contract.ErrNullArgument)

	var nilCollection *Collection
	require.ErrorIs(t, nilCollection.Add(NewStyleBundle("~/bundles/x")), contract.ErrNullArgument)

	b, ok := c.Get("~/BUNDLES/app")
	require.True(t, ok)
	assert.Equal(t, "~/bundles/app", b.Path())

	_, ok = c.Get("~/bundles/none")
	assert.False(t, ok)
}

func TestCollection_Resolve(t *testing.T) {
	t.Parallel()

	c := registered(t, assetFS())

	c.SetEnableOptimizations(false)
	files, err := c.Resolve(ScriptBootstrap)
	require.NoError(t, err)
	assert.Equal(t, []string{"Scripts/bootstrap.js", "Scripts/respond.min.js"}, files)

	c.SetEnableOptimizations(true)
	files, err = c.Resolve(ScriptBootstrap)
	require.NoError(t, err)
	assert.Equal(t, []string{"Scripts/bootstrap.min.js", "Scripts/respond.min.js"}, files)

	_, err = c.Resolve("~/bundles/none")
	require.ErrorIs(t, err, ErrUnknownBundle)
}

func TestCollection_ResolveDeduplicates(t *testing.T) {
	t.Parallel()

	c := NewCollection(assetFS())
	require.NoError(t, c.Add(NewScriptBundle("~/bundles/all").Include(
		"~/Scripts/bootstrap.js",
		"~/Scripts/boot*",
		"~/Scripts/missing.js",
	)))

	files, err := c.Resolve("~/bundles/all")
	require.NoError(t, err)
	assert.Equal(t, []string{"Scripts/bootstrap.js"}, files)
}

func TestCollection_Build(t *testing.T) {
	t.Parallel()

	c := registered(t, assetFS())
	c.SetEnableOptimizations(false)

	resp, err := c.Build(ScriptValidation)
	require.NoError(t, err)
	assert.Equal(t, "validate();;\nunobtrusive();\n", string(resp.Content))
	assert.Equal(t, Script, resp.Kind)
	assert.Equal(t, "text/javascript; charset=utf-8", resp.ContentType)
	assert.Equal(t, fmt.Sprintf("%016x", xxhash.Sum64(resp.Content)), resp.Hash)

	styles, err := c.Build(StyleTheme)
	require.NoError(t, err)
	assert.Equal(t, "body { margin: 0; }\n.body-content { padding: 0; }\n", string(styles.Content))
	assert.Equal(t, "text/css; charset=utf-8", styles.ContentType)

	again, err := c.Build(ScriptValidation)
	require.NoError(t, err)
	assert.Same(t, resp, again, "cached")

	c.Reset()
	rebuilt, err := c.Build(ScriptValidation)
	require.NoError(t, err)
	assert.NotSame(t, resp, rebuilt)
	assert.Equal(t, resp.Hash, rebuilt.Hash)

	c.SetEnableOptimizations(true)
	optimized, err := c.Build(ScriptValidation)
	require.NoError(t, err)
	assert.Equal(t, "validate();;\nunobtrusive()\n", string(optimized.Content))
	assert.NotEqual(t, resp.Hash, optimized.Hash)

	_, err = c.Build("~/bundles/none")
	require.ErrorIs(t, err, ErrUnknownBundle)
}

func TestCollection_BuildEmpty(t *testing.T) {
	t.Parallel()

	c := NewCollection(nil)
	require.NoError(t, c.Add(NewStyleBundle("~/bundles/empty").Include("~/Content/none.css")))

	resp, err := c.Build("~/bundles/empty")
	require.NoError(t, err)
	assert.Empty(t, resp.Content)
	assert.Empty(t, resp.Files)
}

func TestCollection_Render(t *testing.T) {
	t.Parallel()

	c := registered(t, assetFS())

	c.SetEnableOptimizations(false)
	html, err := c.Render(ScriptBootstrap, StyleTheme)
	require.NoError(t, err)
	assert.Equal(t,
		`<script src="/Scripts/bootstrap.js"></script>`+"\n"+
			`<script src="/Scripts/respond.min.js"></script>`+"\n"+
			`<link href="/Content/bootstrap.css" rel="stylesheet"/>`+"\n"+
			`<link href="/Content/site.css" rel="stylesheet"/>`,
		string(html))

	c.SetEnableOptimizations(true)
	resp, err := c.Build(ScriptJQuery)
	require.NoError(t, err)
	html, err = c.Render(ScriptJQuery)
	require.NoError(t, err)
	assert.Equal(t, `<script src="/bundles/jquery?v=`+resp.Hash+`"></script>`, string(html))

	_, err = c.Render("~/bundles/none")
	require.ErrorIs(t, err, ErrUnknownBundle)
}

func TestRegisterBundles_EmbeddedAssets(t *testing.T) {
	t.Parallel()

	c := registered(t, wwwroot.FS())

	expect := map[bool]map[string][]string{
		false: {
			ScriptJQuery:     {"Scripts/jquery-3.7.1.js"},
			ScriptValidation: {"Scripts/jquery.validate.js", "Scripts/jquery.validate.unobtrusive.js"},
			ScriptModernizr:  {"Scripts/modernizr-2.8.3.js"},
			ScriptBootstrap:  {"Scripts/bootstrap.js", "Scripts/respond.js"},
			StyleTheme:       {"Content/bootstrap.css", "Content/site.css"},
		},
		true: {
			ScriptJQuery:    {"Scripts/jquery-3.7.1.min.js"},
			ScriptBootstrap: {"Scripts/bootstrap.min.js", "Scripts/respond.js"},
			StyleTheme:      {"Content/bootstrap.min.css", "Content/site.css"},
		},
	}

	for optimize, bundles := range expect {
		c.SetEnableOptimizations(optimize)
		for path, want := range bundles {
			got, err := c.Resolve(path)
			require.NoError(t, err)
			assert.Equal(t, want, got, "%s optimize=%v", path, optimize)
		}
	}
}
