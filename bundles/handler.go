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
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"rivaas.dev/router"

	apperrors "github.com/dependencyinjector/webapp/errors"
)

// URLPrefix is the request path prefix under which bundles are served.
const URLPrefix = "/bundles/"

const fingerprintMaxAge = 365 * 24 * time.Hour

func unknownBundle(path string) error {
	return apperrors.WithStatus(fmt.Errorf("%w: %s", ErrUnknownBundle, path), http.StatusNotFound)
}

// Handler serves built bundles. Mount it for GET and HEAD on "/bundles/*".
//
// A request whose ?v= matches the fingerprint is cacheable for a year;
// any other request must revalidate with the ETag. Content is compressed
// with brotli or gzip when the client accepts it.
func (c *Collection) Handler() router.HandlerFunc {
	return func(rc *router.Context) {
		vpath := urlToVirtual(rc.Request.URL.Path)
		if _, ok := c.Get(vpath); !ok {
			rc.Error(unknownBundle(vpath))
			return
		}

		resp, err := c.Build(vpath)
		if err != nil {
			rc.Error(err)
			return
		}

		tag := router.ETag{Value: resp.Hash}
		rc.SetETag(tag)
		rc.AddVary("Accept-Encoding")
		if v := rc.Request.URL.Query().Get("v"); v != "" && v == resp.Hash {
			rc.CacheControl(router.WithPublic(), router.WithMaxAge(fingerprintMaxAge))
		} else {
			rc.CacheControl(router.WithNoCache())
		}

		if rc.IfNoneMatch(tag) {
			return
		}

		body, encoding, err := encode(resp, contentEncoding(rc))
		if err != nil {
			rc.Error(err)
			return
		}

		h := rc.Response.Header()
		h.Set("Content-Type", resp.ContentType)
		if encoding != "" {
			h.Set("Content-Encoding", encoding)
		}
		h.Set("Content-Length", strconv.Itoa(len(body)))
		rc.Status(http.StatusOK)

		if rc.Request.Method != http.MethodHead {
			_, _ = rc.Response.Write(body) //nolint:errcheck // client went away
		}
	}
}

func encode(resp *Response, encoding string) ([]byte, string, error) {
	if len(resp.Content) == 0 {
		return resp.Content, "", nil
	}

	switch encoding {
	case "br":
		body, err := resp.Brotli()
		return body, "br", err
	case "gzip":
		body, err := resp.Gzip()
		return body, "gzip", err
	default:
		return resp.Content, "", nil
	}
}

// contentEncoding picks "br", "gzip" or "" for the request. A request
// without Accept-Encoding gets the identity encoding.
func contentEncoding(rc *router.Context) string {
	header := rc.Request.Header.Get("Accept-Encoding")
	if strings.TrimSpace(header) == "" {
		return ""
	}

	offers := []string{"br", "gzip"}
	for len(offers) > 0 {
		enc := rc.AcceptsEncodings(offers...)
		if enc == "" || !refused(header, enc) {
			return enc
		}
		offers = slices.DeleteFunc(offers, func(o string) bool { return o == enc })
	}

	return ""
}

// refused reports whether header gives enc a zero q-value, either by name
// or, when enc is not listed, through "*". AcceptsEncodings ranks q=0
// entries like any other match.
func refused(header, enc string) bool {
	wildcard := false
	for part := range strings.SplitSeq(header, ",") {
		name, params, _ := strings.Cut(part, ";")
		name = strings.TrimSpace(name)
		switch {
		case strings.EqualFold(name, enc):
			return zeroQuality(params)
		case name == "*":
			wildcard = zeroQuality(params)
		}
	}

	return wildcard
}

func zeroQuality(params string) bool {
	for param := range strings.SplitSeq(params, ";") {
		key, value, ok := strings.Cut(param, "=")
		if !ok || !strings.EqualFold(strings.TrimSpace(key), "q") {
			continue
		}
		q, err := strconv.ParseFloat(strings.TrimSpace(value), 64)

		return err == nil && q == 0
	}

	return false
}
