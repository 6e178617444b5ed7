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

package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dependencyinjector/webapp/buildinfo"
	"github.com/dependencyinjector/webapp/contract"
)

func TestHome_Pages(t *testing.T) {
	t.Parallel()

	r := testServer(t, NewValues())

	tests := []struct {
		target string
		want   []string
	}{
		{"/", []string{"<title>Home Page - DependencyInjector</title>", "Values API"}},
		{"/Home", []string{"<title>Home Page - DependencyInjector</title>"}},
		{"/home/about", []string{"<h2>About.</h2>", "Your application description page."}},
		{"/Home/Contact", []string{"<h2>Contact.</h2>", "Your contact page.", "Support@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			t.Parallel()

			w := request(r, http.MethodGet, tt.target, "")
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Equal(t, htmlContentType, w.Header().Get("Content-Type"))

			body := w.Body.String()
			for _, s := range tt.want {
				assert.Contains(t, body, s)
			}
			assert.Contains(t, body, "DependencyInjector "+buildinfo.Version())
		})
	}
}

func TestHome_LayoutRendersBundles(t *testing.T) {
	t.Parallel()

	r := testServer(t, NewValues())

	body := request(r, http.MethodGet, "/", "").Body.String()
	assert.Contains(t, body, `<link href="/bundles/theme?v=`)
	assert.Contains(t, body, `<script src="/bundles/modernizr?v=`)
	assert.Contains(t, body, `<script src="/bundles/jquery?v=`)
	assert.Contains(t, body, `<script src="/bundles/bootstrap?v=`)
	assert.NotContains(t, body, "/bundles/jqueryval")
}

func TestViews_UnknownView(t *testing.T) {
	t.Parallel()

	v := testViews(t)
	err := v.Render(nil, http.StatusOK, "missing", Page{})
	require.ErrorIs(t, err, ErrUnknownView)
}

func TestNewViews_NilBundles(t *testing.T) {
	t.Parallel()

	_, err := NewViews(nil)
	require.ErrorIs(t, err, contract.ErrNullArgument)
	assert.Equal(t, "Value cannot be null. (Parameter 'bundles')", err.Error())
}
