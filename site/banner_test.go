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

package site

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dependencyinjector/webapp/buildinfo"
)

func TestPrintBanner(t *testing.T) {
	t.Parallel()

	s, _ := testSite(t)

	var buf bytes.Buffer
	s.PrintBanner(&buf, ":8080")

	out := buf.String()
	assert.Contains(t, out, "Version:")
	assert.Contains(t, out, buildinfo.Version())
	assert.Contains(t, out, "http://0.0.0.0:8080")
	assert.Contains(t, out, "RequestID, HandleError")
}

func TestPrintRoutes(t *testing.T) {
	t.Parallel()

	s, _ := testSite(t)

	var buf bytes.Buffer
	s.PrintRoutes(&buf)

	out := buf.String()
	for _, want := range []string{"DefaultApi", "api/{controller}/{id}", "(ignore)", "Default", "action=Index, controller=Home"} {
		assert.Contains(t, out, want)
	}
}

func TestPrintBundles(t *testing.T) {
	t.Parallel()

	s, _ := testSite(t)
	s.Bundles().SetEnableOptimizations(false)

	var buf bytes.Buffer
	require.NoError(t, s.PrintBundles(&buf))

	out := buf.String()
	assert.Contains(t, out, "~/bundles/jqueryval")
	assert.Contains(t, out, "Scripts/respond.js")
	assert.Contains(t, out, "Content/site.css")
}

func TestFormatDefaults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "-", formatDefaults(nil))
	assert.Equal(t, "a=1, b=2", formatDefaults(map[string]string{"b": "2", "a": "1"}))
}
