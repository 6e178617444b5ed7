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

package codec

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
)

// Type identifies a document format.
type Type string

// Decoder converts an encoded document into the value pointed to by v.
// Configuration sources always pass a *map[string]any.
type Decoder interface {
	Decode(data []byte, v any) error
}

// DecoderFunc adapts a function to [Decoder].
type DecoderFunc func(data []byte, v any) error

// Decode calls f(data, v).
func (f DecoderFunc) Decode(data []byte, v any) error {
	return f(data, v)
}

var (
	mu       sync.RWMutex
	decoders = make(map[Type]Decoder)
)

// Register makes a decoder available under name. Registering the same name
// twice replaces the earlier decoder.
func Register(name Type, d Decoder) {
	mu.Lock()
	defer mu.Unlock()
	decoders[name] = d
}

// Get returns the decoder registered under name.
func Get(name Type) (Decoder, error) {
	mu.RLock()
	defer mu.RUnlock()

	d, ok := decoders[name]
	if !ok {
		return nil, fmt.Errorf("decoder not found for type: %s", name)
	}

	return d, nil
}

// TypeOf maps a file extension to its [Type]: .yaml and .yml are YAML,
// .toml is TOML and .json is JSON.
func TypeOf(path string) (Type, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return TypeYAML, nil
	case ".toml":
		return TypeTOML, nil
	case ".json":
		return TypeJSON, nil
	default:
		return "", fmt.Errorf("unsupported config file extension %q", ext)
	}
}

// ForPath returns the decoder for the extension of path.
func ForPath(path string) (Decoder, error) {
	t, err := TypeOf(path)
	if err != nil {
		return nil, err
	}

	return Get(t)
}
