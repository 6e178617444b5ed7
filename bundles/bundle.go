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
	"slices"
	"strings"
)

// Kind is the content type of a bundle.
type Kind int

const (
	// Script bundles JavaScript files.
	Script Kind = iota + 1
	// Style bundles CSS files.
	Style
)

// String returns "script" or "style".
func (k Kind) String() string {
	switch k {
	case Script:
		return "script"
	case Style:
		return "style"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ContentType returns the media type served for the kind.
func (k Kind) ContentType() string {
	if k == Style {
		return "text/css; charset=utf-8"
	}

	return "text/javascript; charset=utf-8"
}

func (k Kind) separator() string {
	if k == Style {
		return "\n"
	}

	return ";\n"
}

// Bundle is a named, ordered set of include patterns.
type Bundle struct {
	path     string
	kind     Kind
	includes []string
}

// NewScriptBundle creates a script bundle served at path.
func NewScriptBundle(path string) *Bundle {
	return &Bundle{path: path, kind: Script}
}

// NewStyleBundle creates a style bundle served at path.
func NewStyleBundle(path string) *Bundle {
	return &Bundle{path: path, kind: Style}
}

// Include appends include patterns and returns the bundle for chaining.
func (b *Bundle) Include(patterns ...string) *Bundle {
	b.includes = append(b.includes, patterns...)
	return b
}

// Path returns the virtual path, e.g. "~/bundles/jquery".
func (b *Bundle) Path() string { return b.path }

// Kind returns the bundle kind.
func (b *Bundle) Kind() Kind { return b.kind }

// Includes returns a copy of the include patterns.
func (b *Bundle) Includes() []string { return slices.Clone(b.includes) }

// URL returns the request path of the bundle ("~/bundles/jquery" becomes
// "/bundles/jquery").
func (b *Bundle) URL() string {
	return virtualToURL(b.path)
}

func virtualToURL(vpath string) string {
	return "/" + strings.TrimPrefix(vpath, "~/")
}

func urlToVirtual(urlPath string) string {
	return "~/" + strings.TrimPrefix(urlPath, "/")
}
