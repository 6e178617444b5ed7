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
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrInvalidInclude is returned for include patterns outside the asset root.
var ErrInvalidInclude = errors.New("invalid include pattern")

const versionToken = "{version}"

var versionExpr = `(\d+(?:\.\d+)*(?:-[0-9A-Za-z.-]+)?)`

var ignoredSuffixes = []string{".intellisense.js", "-vsdoc.js"}

func ignored(name string) bool {
	lower := strings.ToLower(name)
	for _, s := range ignoredSuffixes {
		if strings.HasSuffix(lower, s) {
			return true
		}
	}

	return false
}

// plainName strips a ".min" marker before the extension:
// "jquery-3.7.1.min.js" becomes "jquery-3.7.1.js".
func plainName(name string) (string, bool) {
	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)
	if strings.HasSuffix(strings.ToLower(base), ".min") {
		return base[:len(base)-len(".min")] + ext, true
	}

	return name, false
}

func minName(name string) string {
	ext := path.Ext(name)
	return strings.TrimSuffix(name, ext) + ".min" + ext
}

// variant is a file and its minified sibling, either of which may be missing.
type variant struct {
	plain   string
	hasMin  bool
	hasBase bool
	version string
}

func (v variant) pick(dir string, optimize bool) string {
	name := v.plain
	if v.hasMin && (optimize || !v.hasBase) {
		name = minName(v.plain)
	}

	return path.Join(dir, name)
}

// resolveInclude expands one include pattern against fsys. An include that
// matches no file resolves to nil.
func resolveInclude(fsys fs.FS, pattern string, optimize bool) ([]string, error) {
	rel, ok := strings.CutPrefix(pattern, "~/")
	if !ok || rel == "" || !fs.ValidPath(strings.NewReplacer("*", "x", versionToken, "0").Replace(rel)) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidInclude, pattern)
	}
	if fsys == nil {
		return nil, nil
	}

	dir, file := path.Split(rel)
	dir = strings.TrimSuffix(dir, "/")
	if dir == "" {
		dir = "."
	}
	if strings.ContainsAny(dir, "*{") {
		return nil, fmt.Errorf("%w: %q: wildcards are only allowed in the file name", ErrInvalidInclude, pattern)
	}

	match, hasVersion := compileFileName(file)

	entries, err := fs.ReadDir(fsys, dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	variants := make(map[string]*variant)
	var order []string
	for _, e := range entries {
		if e.IsDir() || ignored(e.Name()) {
			continue
		}
		plain, isMin := plainName(e.Name())
		sub := match.FindStringSubmatch(plain)
		if sub == nil {
			continue
		}

		v, seen := variants[plain]
		if !seen {
			v = &variant{plain: plain}
			if hasVersion {
				v.version = sub[1]
			}
			variants[plain] = v
			order = append(order, plain)
		}
		if isMin {
			v.hasMin = true
		} else {
			v.hasBase = true
		}
	}

	if len(order) == 0 {
		return nil, nil
	}

	sort.Strings(order)
	if hasVersion && len(order) > 1 {
		best := order[0]
		for _, name := range order[1:] {
			if compareVersions(variants[name].version, variants[best].version) > 0 {
				best = name
			}
		}
		order = []string{best}
	}

	files := make([]string, 0, len(order))
	for _, name := range order {
		files = append(files, variants[name].pick(dir, optimize))
	}

	return files, nil
}

// compileFileName turns a file name pattern into an anchored,
// case-insensitive expression. The first group captures {version}.
func compileFileName(file string) (*regexp.Regexp, bool) {
	var b strings.Builder
	b.WriteString("(?i)^")

	hasVersion := false
	for i := 0; i < len(file); {
		switch {
		case strings.HasPrefix(file[i:], versionToken) && !hasVersion:
			b.WriteString(versionExpr)
			hasVersion = true
			i += len(versionToken)
		case file[i] == '*':
			b.WriteString(".*")
			i++
		default:
			j := i + 1
			for j < len(file) && file[j] != '*' && !strings.HasPrefix(file[j:], versionToken) {
				j++
			}
			b.WriteString(regexp.QuoteMeta(file[i:j]))
			i = j
		}
	}
	b.WriteString("$")

	return regexp.MustCompile(b.String()), hasVersion
}

// compareVersions orders by semantic version, falling back to string
// comparison when either side does not parse.
func compareVersions(a, b string) int {
	va, errA := semver.NewVersion(a)
	vb, errB := semver.NewVersion(b)
	if errA != nil || errB != nil {
		return strings.Compare(a, b)
	}

	return va.Compare(vb)
}
