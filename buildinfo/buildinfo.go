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

// Package buildinfo exposes build metadata of the running binary.
//
// [IsDebug] is a compile-time constant selected by the "debug" build tag:
//
//	go build -tags debug ./cmd/webapp
//
// Version, commit and build date are injected with -ldflags:
//
//	go build -ldflags "-X github.com/dependencyinjector/webapp/buildinfo.version=1.4.0 \
//	    -X github.com/dependencyinjector/webapp/buildinfo.commit=$(git rev-parse HEAD) \
//	    -X github.com/dependencyinjector/webapp/buildinfo.buildDate=$(date -u +%FT%TZ)" ./cmd/webapp
//
// Values that are not injected fall back to the module build information
// recorded by the Go toolchain.
package buildinfo

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// AppName is the application name reported in logs, banners and [Info].
const AppName = "DependencyInjector"

// DevelVersion is reported when no version is injected and the main module
// was built from a working tree.
const DevelVersion = "(devel)"

// Set with -ldflags "-X".
var (
	version   = ""
	commit    = ""
	buildDate = "unknown"
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// Info describes the running build.
type Info struct {
	AppName   string `json:"app_name"`
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
	Debug     bool   `json:"debug"`
}

// Version returns the application version.
// The injected version wins, then the main module version, then [DevelVersion].
func Version() string {
	if version != "" {
		return version
	}
	if bi, ok := readBuildInfo(); ok && bi.Main.Version != "" {
		return bi.Main.Version
	}

	return DevelVersion
}

// Commit returns the injected commit, or the VCS revision recorded by the
// toolchain. It is empty when neither is available.
func Commit() string {
	if commit != "" {
		return commit
	}
	bi, ok := readBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}

	return ""
}

// Get returns the build information of the running binary.
func Get() Info {
	return Info{
		AppName:   AppName,
		Version:   Version(),
		Commit:    Commit(),
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		Debug:     IsDebug,
	}
}

// String returns a one-line summary such as "DependencyInjector 1.4.0 (abc1234, release)".
func (i Info) String() string {
	mode := "release"
	if i.Debug {
		mode = "debug"
	}
	rev := i.Commit
	if len(rev) > 7 {
		rev = rev[:7]
	}
	if rev == "" {
		return fmt.Sprintf("%s %s (%s)", i.AppName, i.Version, mode)
	}

	return fmt.Sprintf("%s %s (%s, %s)", i.AppName, i.Version, rev, mode)
}
