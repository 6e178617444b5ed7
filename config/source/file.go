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

package source

import (
	"context"
	"fmt"
	"os"

	"github.com/dependencyinjector/webapp/config/codec"
)

// File is a configuration source backed by a document.
type File struct {
	path    string
	data    []byte
	decoder codec.Decoder
}

// NewFile creates a source that reads path on every Load.
// Environment variables in path are expanded.
func NewFile(path string, decoder codec.Decoder) *File {
	return &File{
		path:    os.ExpandEnv(path),
		decoder: decoder,
	}
}

// NewFileContent creates a source from an in-memory document.
func NewFileContent(data []byte, decoder codec.Decoder) *File {
	return &File{
		data:    data,
		decoder: decoder,
	}
}

// Path returns the expanded file path, or "" for in-memory content.
func (f *File) Path() string {
	return f.path
}

// Load reads and decodes the document.
func (f *File) Load(ctx context.Context) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := f.data
	if f.path != "" {
		var err error
		data, err = os.ReadFile(f.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
	}

	var conf map[string]any
	if err := f.decoder.Decode(data, &conf); err != nil {
		return nil, fmt.Errorf("failed to decode file: %w", err)
	}
	if conf == nil {
		conf = make(map[string]any)
	}

	return conf, nil
}
