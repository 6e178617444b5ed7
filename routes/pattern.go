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

package routes

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPattern is returned for malformed route templates.
var ErrInvalidPattern = errors.New("invalid route pattern")

// piece is either literal text or a parameter inside one segment.
type piece struct {
	literal string
	param   string
}

type segment struct {
	pieces   []piece
	catchAll bool
}

// param returns the parameter name of a segment that consists of a single
// parameter, or "".
func (s segment) param() string {
	if len(s.pieces) == 1 {
		return s.pieces[0].param
	}

	return ""
}

func parsePattern(pattern string) ([]segment, error) {
	if strings.HasPrefix(pattern, "/") || strings.HasPrefix(pattern, "~") || strings.Contains(pattern, "?") {
		return nil, fmt.Errorf("%w: %q cannot start with '/' or '~' or contain '?'", ErrInvalidPattern, pattern)
	}
	if pattern == "" {
		return nil, nil
	}

	parts := strings.Split(pattern, "/")
	segments := make([]segment, 0, len(parts))
	seen := make(map[string]struct{})

	for i, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("%w: %q has an empty segment", ErrInvalidPattern, pattern)
		}
		seg, err := parseSegment(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidPattern, pattern, err)
		}
		if seg.catchAll && i != len(parts)-1 {
			return nil, fmt.Errorf("%w: %q: catch-all must be the last segment", ErrInvalidPattern, pattern)
		}
		for _, p := range seg.pieces {
			if p.param == "" {
				continue
			}
			key := strings.ToLower(p.param)
			if _, dup := seen[key]; dup {
				return nil, fmt.Errorf("%w: %q: parameter %q appears twice", ErrInvalidPattern, pattern, p.param)
			}
			seen[key] = struct{}{}
		}
		segments = append(segments, seg)
	}

	return segments, nil
}

func parseSegment(s string) (segment, error) {
	var seg segment

	for s != "" {
		open := strings.IndexByte(s, '{')
		if open < 0 {
			if strings.IndexByte(s, '}') >= 0 {
				return seg, errors.New("unmatched '}'")
			}
			seg.pieces = append(seg.pieces, piece{literal: s})
			break
		}
		if open > 0 {
			lit := s[:open]
			if strings.IndexByte(lit, '}') >= 0 {
				return seg, errors.New("unmatched '}'")
			}
			seg.pieces = append(seg.pieces, piece{literal: lit})
		}

		end := strings.IndexByte(s[open:], '}')
		if end < 0 {
			return seg, errors.New("unmatched '{'")
		}
		name := s[open+1 : open+end]
		s = s[open+end+1:]

		if strings.HasPrefix(name, "*") {
			name = name[1:]
			if len(seg.pieces) > 0 || s != "" {
				return seg, errors.New("catch-all parameter must fill its segment")
			}
			seg.catchAll = true
		}
		if name == "" || strings.ContainsAny(name, "{}*") {
			return seg, fmt.Errorf("bad parameter name %q", name)
		}
		if n := len(seg.pieces); n > 0 && seg.pieces[n-1].param != "" {
			return seg, errors.New("parameters must be separated by literal text")
		}
		seg.pieces = append(seg.pieces, piece{param: name})
	}

	return seg, nil
}

// matchPieces matches one URL segment against the pieces, right to left.
func matchPieces(s string, pieces []piece, values map[string]string) bool {
	if len(pieces) == 0 {
		return s == ""
	}

	last := pieces[len(pieces)-1]
	rest := pieces[:len(pieces)-1]

	if last.param == "" {
		n := len(last.literal)
		if len(s) < n || !strings.EqualFold(s[len(s)-n:], last.literal) {
			return false
		}
		return matchPieces(s[:len(s)-n], rest, values)
	}

	if len(rest) == 0 {
		if s == "" {
			return false
		}
		values[last.param] = s
		return true
	}

	// The piece before a parameter is always literal.
	lit := rest[len(rest)-1].literal
	for i := lastIndexFold(s, lit, len(s)); i >= 0; i = lastIndexFold(s, lit, i+len(lit)-1) {
		val := s[i+len(lit):]
		if val == "" {
			continue
		}
		if matchPieces(s[:i+len(lit)], rest, values) {
			values[last.param] = val
			return true
		}
	}

	return false
}

// lastIndexFold returns the last index of lit in s[:limit], ignoring case.
func lastIndexFold(s, lit string, limit int) int {
	for i := limit - len(lit); i >= 0; i-- {
		if strings.EqualFold(s[i:i+len(lit)], lit) {
			return i
		}
	}

	return -1
}
