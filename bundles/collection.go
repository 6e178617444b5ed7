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
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"
	"sync"

	"github.com/dependencyinjector/webapp/contract"
)

var (
	// ErrDuplicateBundle is returned when two bundles share a virtual path.
	ErrDuplicateBundle = errors.New("bundle path already registered")

	// ErrUnknownBundle is returned for virtual paths with no bundle.
	ErrUnknownBundle = errors.New("unknown bundle")

	// ErrInvalidPath is returned for bundle paths not starting with "~/".
	ErrInvalidPath = errors.New(`bundle path must start with "~/"`)
)

// Collection holds the registered bundles and the asset file system they
// resolve against. It is safe for concurrent use.
type Collection struct {
	fsys fs.FS

	mu       sync.RWMutex
	bundles  []*Bundle
	index    map[string]*Bundle
	optimize bool
	cache    map[string]*Response
}

// NewCollection creates an empty collection over fsys. Paths in fsys are
// relative to the asset root, e.g. "Scripts/bootstrap.js".
func NewCollection(fsys fs.FS) *Collection {
	return &Collection{
		fsys:  fsys,
		index: make(map[string]*Bundle),
		cache: make(map[string]*Response),
	}
}

// FS returns the asset file system.
func (c *Collection) FS() fs.FS {
	return c.fsys
}

// Add registers b. Paths are compared case-insensitively.
func (c *Collection) Add(b *Bundle) error {
	if err := contract.NotNull(c, "bundles"); err != nil {
		return err
	}
	if err := contract.NotNull(b, "bundle"); err != nil {
		return err
	}
	if !strings.HasPrefix(b.path, "~/") || len(b.path) == len("~/") {
		return fmt.Errorf("%w: %q", ErrInvalidPath, b.path)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := strings.ToLower(b.path)
	if _, dup := c.index[key]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateBundle, b.path)
	}
	c.index[key] = b
	c.bundles = append(c.bundles, b)

	return nil
}

// Get returns the bundle registered at path.
func (c *Collection) Get(path string) (*Bundle, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	b, ok := c.index[strings.ToLower(path)]

	return b, ok
}

// Bundles returns the bundles in registration order.
func (c *Collection) Bundles() []*Bundle {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.bundles)
}

// EnableOptimizations reports whether bundles are served combined and
// minified files are preferred.
func (c *Collection) EnableOptimizations() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.optimize
}

// SetEnableOptimizations switches optimizations and drops built bundles.
func (c *Collection) SetEnableOptimizations(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.optimize != on {
		c.optimize = on
		clear(c.cache)
	}
}

// Reset drops every built bundle so the next request rereads the assets.
func (c *Collection) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.cache)
}

// Resolve returns the asset paths of the bundle at path, in include order
// without duplicates.
func (c *Collection) Resolve(path string) ([]string, error) {
	b, ok := c.Get(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBundle, path)
	}

	return c.resolve(b, c.EnableOptimizations())
}

func (c *Collection) resolve(b *Bundle, optimize bool) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})

	for _, pattern := range b.includes {
		matched, err := resolveInclude(c.fsys, pattern, optimize)
		if err != nil {
			return nil, fmt.Errorf("bundle %s: %w", b.path, err)
		}
		for _, f := range matched {
			if _, dup := seen[f]; dup {
				continue
			}
			seen[f] = struct{}{}
			files = append(files, f)
		}
	}

	return files, nil
}
