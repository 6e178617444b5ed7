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
	"bytes"
	"fmt"
	"io/fs"
	"sync"

	"github.com/andybalholm/brotli"
	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/gzip"
)

// Response is a built bundle.
type Response struct {
	Path        string
	Kind        Kind
	ContentType string
	Files       []string
	Content     []byte
	// Hash is the hex xxhash64 of Content, used as the ?v= fingerprint
	// and the ETag.
	Hash string

	brOnce sync.Once
	br     []byte
	brErr  error
	gzOnce sync.Once
	gz     []byte
	gzErr  error
}

// Build concatenates the files of the bundle at path. Results are cached
// until [Collection.Reset] or an optimization switch.
func (c *Collection) Build(path string) (*Response, error) {
	b, ok := c.Get(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBundle, path)
	}

	c.mu.RLock()
	resp, cached := c.cache[b.path]
	optimize := c.optimize
	c.mu.RUnlock()
	if cached {
		return resp, nil
	}

	files, err := c.resolve(b, optimize)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	for i, f := range files {
		data, err := fs.ReadFile(c.fsys, f)
		if err != nil {
			return nil, fmt.Errorf("bundle %s: %w", b.path, err)
		}
		if i > 0 {
			buf.WriteString(b.kind.separator())
		}
		buf.Write(bytes.TrimRight(data, " \t\r\n"))
	}
	if buf.Len() > 0 {
		buf.WriteByte('\n')
	}

	resp = &Response{
		Path:        b.path,
		Kind:        b.kind,
		ContentType: b.kind.ContentType(),
		Files:       files,
		Content:     buf.Bytes(),
		Hash:        fmt.Sprintf("%016x", xxhash.Sum64(buf.Bytes())),
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.optimize != optimize {
		return resp, nil
	}
	if existing, ok := c.cache[b.path]; ok {
		return existing, nil
	}
	c.cache[b.path] = resp

	return resp, nil
}

// Brotli returns the content compressed with brotli. The result is computed once.
func (r *Response) Brotli() ([]byte, error) {
	r.brOnce.Do(func() {
		var buf bytes.Buffer
		w := brotli.NewWriterLevel(&buf, brotli.BestCompression)
		if _, err := w.Write(r.Content); err != nil {
			r.brErr = fmt.Errorf("brotli: %w", err)
			return
		}
		if err := w.Close(); err != nil {
			r.brErr = fmt.Errorf("brotli: %w", err)
			return
		}
		r.br = buf.Bytes()
	})

	return r.br, r.brErr
}

// Gzip returns the content compressed with gzip. The result is computed once.
func (r *Response) Gzip() ([]byte, error) {
	r.gzOnce.Do(func() {
		var buf bytes.Buffer
		w, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
		if err != nil {
			r.gzErr = fmt.Errorf("gzip: %w", err)
			return
		}
		if _, err = w.Write(r.Content); err != nil {
			r.gzErr = fmt.Errorf("gzip: %w", err)
			return
		}
		if err = w.Close(); err != nil {
			r.gzErr = fmt.Errorf("gzip: %w", err)
			return
		}
		r.gz = buf.Bytes()
	})

	return r.gz, r.gzErr
}
