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

// Package wwwroot embeds the default static assets: Scripts/ and Content/.
//
// The files are small stand-ins so the site runs out of the box. Point
// assets.dir at a directory with the vendor builds to replace them.
package wwwroot

import (
	"embed"
	"io/fs"
)

//go:embed Scripts Content
var assets embed.FS

// FS returns the embedded asset tree rooted at the directory that holds
// Scripts/ and Content/.
func FS() fs.FS {
	return assets
}
