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

package site_test

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/dependencyinjector/webapp/bundles"
	"github.com/dependencyinjector/webapp/config"
	"github.com/dependencyinjector/webapp/logging"
	"github.com/dependencyinjector/webapp/site"
)

var _ = Describe("Site Integration", func() {
	var (
		s      *site.Site
		server *httptest.Server
	)

	BeforeEach(func() {
		l, _ := logging.NewTestLogger()
		var err error
		s, err = site.New(config.Default(), site.WithLogger(l))
		Expect(err).NotTo(HaveOccurred())

		server = httptest.NewServer(s.Handler())
		DeferCleanup(server.Close)
	})

	fetch := func(method, path, body string, header http.Header) *http.Response {
		var rd io.Reader
		if body != "" {
			rd = strings.NewReader(body)
		}
		req, err := http.NewRequestWithContext(context.Background(), method, server.URL+path, rd)
		Expect(err).NotTo(HaveOccurred())
		for k, v := range header {
			req.Header[k] = v
		}

		tr := &http.Transport{DisableCompression: true}
		resp, err := (&http.Client{Transport: tr}).Do(req)
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(resp.Body.Close)

		return resp
	}

	readBody := func(resp *http.Response) string {
		data, err := io.ReadAll(resp.Body)
		Expect(err).NotTo(HaveOccurred())

		return string(data)
	}

	Describe("MVC routes", func() {
		It("serves Home/Index at the root", func() {
			resp := fetch(http.MethodGet, "/", "", nil)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(resp.Header.Get("Content-Type")).To(HavePrefix("text/html"))
			Expect(readBody(resp)).To(ContainSubstring("<title>Home Page - DependencyInjector</title>"))
		})

		It("matches controller and action names case-insensitively", func() {
			resp := fetch(http.MethodGet, "/HOME/contact", "", nil)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(readBody(resp)).To(ContainSubstring("Your contact page."))
		})

		It("stops routing for resource handler paths", func() {
			resp := fetch(http.MethodGet, "/trace.axd/anything/here", "", nil)
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))

			var problem map[string]any
			Expect(json.NewDecoder(resp.Body).Decode(&problem)).To(Succeed())
			Expect(problem).To(HaveKeyWithValue("status", BeNumerically("==", 404)))
			Expect(problem).To(HaveKey("error_id"))
		})
	})

	Describe("Bundles", func() {
		It("renders fingerprinted bundle tags in the layout", func() {
			body := readBody(fetch(http.MethodGet, "/", "", nil))
			if s.Bundles().EnableOptimizations() {
				Expect(body).To(ContainSubstring(`<link href="/bundles/theme?v=`))
			} else {
				Expect(body).To(ContainSubstring(`<link href="/Content/bootstrap.css" rel="stylesheet"/>`))
			}
		})

		It("serves gzip-encoded bundles with a validator", func() {
			u, err := s.Bundles().URL(bundles.StyleTheme)
			Expect(err).NotTo(HaveOccurred())

			resp := fetch(http.MethodGet, u, "", http.Header{"Accept-Encoding": {"gzip"}})
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(resp.Header.Get("Content-Encoding")).To(Equal("gzip"))
			Expect(resp.Header.Get("Cache-Control")).To(Equal("public, max-age=31536000"))

			zr, err := gzip.NewReader(resp.Body)
			Expect(err).NotTo(HaveOccurred())
			css, err := io.ReadAll(zr)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(css)).To(ContainSubstring("body-content"))

			etag := resp.Header.Get("ETag")
			again := fetch(http.MethodGet, u, "", http.Header{"If-None-Match": {etag}})
			Expect(again.StatusCode).To(Equal(http.StatusNotModified))
		})
	})

	Describe("Values API", func() {
		It("walks the resource lifecycle", func() {
			resp := fetch(http.MethodPost, "/api/values", `"value3"`, nil)
			Expect(resp.StatusCode).To(Equal(http.StatusCreated))
			location := resp.Header.Get("Location")
			Expect(location).To(Equal("/api/values/3"))

			resp = fetch(http.MethodPut, location, `"updated"`, nil)
			Expect(resp.StatusCode).To(Equal(http.StatusNoContent))

			resp = fetch(http.MethodGet, location, "", nil)
			Expect(readBody(resp)).To(MatchJSON(`{"id":3,"value":"updated"}`))

			resp = fetch(http.MethodDelete, location, "", nil)
			Expect(resp.StatusCode).To(Equal(http.StatusNoContent))

			resp = fetch(http.MethodGet, location, "", nil)
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})

		It("renders guard violations as 400 problems", func() {
			resp := fetch(http.MethodPost, "/api/values", `"  "`, nil)
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
			Expect(resp.Header.Get("Content-Type")).To(Equal("application/problem+json; charset=utf-8"))

			var problem map[string]any
			Expect(json.NewDecoder(resp.Body).Decode(&problem)).To(Succeed())
			Expect(problem).To(HaveKeyWithValue("code", "empty_argument"))
			Expect(problem).To(HaveKeyWithValue("detail", "Parameter 'value' cannot be empty or white space."))
			Expect(problem["errors"]).To(HaveKeyWithValue("parameter", "value"))
		})
	})

	Describe("Lifecycle", func() {
		It("shuts down when the context is cancelled", func(ctx SpecContext) {
			var lc net.ListenConfig
			ln, err := lc.Listen(ctx, "tcp", "127.0.0.1:0")
			Expect(err).NotTo(HaveOccurred())

			runCtx, cancel := context.WithCancel(ctx)
			done := make(chan error, 1)
			go func() { done <- s.Serve(runCtx, ln) }()

			Eventually(func() error {
				conn, derr := net.Dial("tcp", ln.Addr().String())
				if derr == nil {
					_ = conn.Close() //nolint:errcheck // probe
				}
				return derr
			}).Should(Succeed())

			cancel()
			Eventually(done).WithTimeout(5 * time.Second).Should(Receive(BeNil()))
		}, SpecTimeout(10*time.Second))
	})
})

//nolint:paralleltest // Ginkgo test suite manages its own parallelization
func TestSiteIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	RegisterFailHandler(Fail)
	RunSpecs(t, "Site Integration Suite")
}
