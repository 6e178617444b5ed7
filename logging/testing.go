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

package logging

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// LogEntry represents a parsed log entry for testing.
type LogEntry struct {
	Time    time.Time
	Level   string
	Message string
	Attrs   map[string]any
}

// SyncBuffer is a [bytes.Buffer] that is safe for concurrent writes.
// HTTP handlers under test log from server goroutines.
type SyncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Write appends p to the buffer.
func (b *SyncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

// Bytes returns a copy of the buffered data.
func (b *SyncBuffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	return bytes.Clone(b.buf.Bytes())
}

// String returns the buffered data as a string.
func (b *SyncBuffer) String() string {
	return string(b.Bytes())
}

// Reset discards the buffered data.
func (b *SyncBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.Reset()
}

// NewTestLogger creates a debug-level JSON [Logger] writing into a buffer.
// Use [ParseJSONLogEntries] to inspect the output.
func NewTestLogger() (*Logger, *SyncBuffer) {
	buf := &SyncBuffer{}
	logger := MustNew(
		WithJSONHandler(),
		WithOutput(buf),
		WithLevel(LevelDebug),
	)

	return logger, buf
}

// ParseJSONLogEntries decodes JSON log lines. The buffer is not consumed.
func ParseJSONLogEntries(buf *SyncBuffer) ([]LogEntry, error) {
	var entries []LogEntry

	scanner := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		var raw map[string]any
		if err := json.Unmarshal(line, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse log line %q: %w", line, err)
		}

		entry := LogEntry{Attrs: make(map[string]any)}
		for k, v := range raw {
			switch k {
			case slogTimeKey:
				if s, ok := v.(string); ok {
					entry.Time, _ = time.Parse(time.RFC3339Nano, s) //nolint:errcheck // zero time on malformed input
				}
			case slogLevelKey:
				entry.Level, _ = v.(string)
			case slogMessageKey:
				entry.Message, _ = v.(string)
			default:
				entry.Attrs[k] = v
			}
		}
		entries = append(entries, entry)
	}

	return entries, scanner.Err()
}

const (
	slogTimeKey    = "time"
	slogLevelKey   = "level"
	slogMessageKey = "msg"
)
