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

// Package bundles groups static scripts and styles into bundles served
// under /bundles/.
//
// A bundle has a virtual path such as "~/bundles/jquery" and a list of
// include patterns relative to the asset root:
//
//	~/Scripts/bootstrap.js          one file
//	~/Scripts/jquery.validate*      wildcard in the file name
//	~/Scripts/jquery-{version}.js   highest version present
//
// With optimizations enabled, a bundle renders as a single tag whose URL
// carries a content fingerprint (?v=...), and the handler serves the
// concatenated content compressed with brotli or gzip. With optimizations
// disabled, each resolved file renders as its own tag.
//
// Files named *.intellisense.js or *-vsdoc.js are never included. When
// both "x.js" and "x.min.js" exist, the minified file is chosen only with
// optimizations enabled.
package bundles
