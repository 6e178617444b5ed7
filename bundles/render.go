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
	"html/template"
	"strings"
)

// URL returns the URL to reference the bundle at path. With optimizations
// enabled it carries the content fingerprint.
func (c *Collection) URL(path string) (string, error) {
	resp, err := c.Build(path)
	if err != nil {
		return "", err
	}

	return virtualToURL(resp.Path) + "?v=" + resp.Hash, nil
}

// Render returns the HTML tags that load the bundles at paths, one line
// per tag. With optimizations enabled each bundle is one tag pointing at
// its fingerprinted URL; otherwise each resolved file gets its own tag.
//
// Example (in a template):
//
//	{{ render "~/bundles/theme" }}
func (c *Collection) Render(paths ...string) (template.HTML, error) {
	optimize := c.EnableOptimizations()

	var lines []string
	for _, p := range paths {
		b, ok := c.Get(p)
		if !ok {
			return "", unknownBundle(p)
		}

		if optimize {
			u, err := c.URL(p)
			if err != nil {
				return "", err
			}
			lines = append(lines, tag(b.kind, u))
			continue
		}

		files, err := c.resolve(b, false)
		if err != nil {
			return "", err
		}
		for _, f := range files {
			lines = append(lines, tag(b.kind, "/"+f))
		}
	}

	//nolint:gosec // URLs are escaped in tag
	return template.HTML(strings.Join(lines, "\n")), nil
}

func tag(kind Kind, url string) string {
	u := template.HTMLEscapeString(url)
	if kind == Style {
		return `<link href="` + u + `" rel="stylesheet"/>`
	}

	return `<script src="` + u + `"></script>`
}
