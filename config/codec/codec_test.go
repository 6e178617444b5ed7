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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		want    Type
		wantErr bool
	}{
		{"webapp.yaml", TypeYAML, false},
		{"conf/webapp.YML", TypeYAML, false},
		{"webapp.toml", TypeTOML, false},
		{"webapp.json", TypeJSON, false},
		{"webapp.ini", "", true},
		{"webapp", "", true},
	}

	for _, tt := range tests {
		got, err := TypeOf(tt.path)
		if tt.wantErr {
			assert.Error(t, err, tt.path)
			continue
		}
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}
}

func TestDecoders(t *testing.T) {
	t.Parallel()

	docs := map[Type]string{
		TypeYAML: "server:\n  addr: \":9090\"\n  read_timeout: 5s\nlog:\n  level: debug\n",
		TypeTOML: "[server]\naddr = \":9090\"\nread_timeout = \"5s\"\n\n[log]\nlevel = \"debug\"\n",
		TypeJSON: `{"server":{"addr":":9090","read_timeout":"5s"},"log":{"level":"debug"}}`,
	}

	for typ, doc := range docs {
		t.Run(string(typ), func(t *testing.T) {
			t.Parallel()

			d, err := Get(typ)
			require.NoError(t, err)

			var m map[string]any
			require.NoError(t, d.Decode([]byte(doc), &m))

			server, ok := m["server"].(map[string]any)
			require.True(t, ok, "server section is %T", m["server"])
			assert.Equal(t, ":9090", server["addr"])
			assert.Equal(t, "5s", server["read_timeout"])

			log, ok := m["log"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "debug", log["level"])
		})
	}
}

func TestGet_Unknown(t *testing.T) {
	t.Parallel()

	_, err := Get("xml")
	assert.ErrorContains(t, err, "decoder not found")
}

func TestForPath_InvalidDocument(t *testing.T) {
	t.Parallel()

	d, err := ForPath("broken.json")
	require.NoError(t, err)

	var m map[string]any
	assert.Error(t, d.Decode([]byte("{"), &m))
}
