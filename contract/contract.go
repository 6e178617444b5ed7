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

package contract

import (
	"reflect"
	"strings"
)

const (
	emptyFormat      = "Parameter '%s' cannot be empty."
	whitespaceFormat = "Parameter '%s' cannot be empty or white space."
)

// NotNull checks that v is not nil.
// Typed nil values (nil pointers, maps, slices, channels, functions and
// interfaces) are treated as nil.
//
// Example:
//
//	if err := contract.NotNull(bundles, "bundles"); err != nil {
//	    return err
//	}
//
// Errors:
//   - [NullArgument] if v is nil
func NotNull(v any, name string) error {
	if isNil(v) {
		return nullArgument(name)
	}

	return nil
}

// NotEmpty checks that text is not the empty string.
// White space counts as content; use [NotEmptyOrWhitespace] to reject it.
//
// Errors:
//   - [EmptyArgument] with the message "Parameter '<name>' cannot be empty."
func NotEmpty(text, name string) error {
	if len(text) == 0 {
		return emptyArgument(name, emptyFormat)
	}

	return nil
}

// NotEmptyOrWhitespace checks that text holds at least one non white space character.
//
// Errors:
//   - [EmptyArgument] with the message "Parameter '<name>' cannot be empty or white space."
func NotEmptyOrWhitespace(text, name string) error {
	if strings.TrimSpace(text) == "" {
		return emptyArgument(name, whitespaceFormat)
	}

	return nil
}

// NotNullOrEmpty checks that text is not nil and not empty.
//
// Errors:
//   - [NullArgument] if text is nil
//   - [EmptyArgument] if *text is empty
func NotNullOrEmpty(text *string, name string) error {
	if err := NotNull(text, name); err != nil {
		return err
	}

	return NotEmpty(*text, name)
}

// NotNullOrWhitespace checks that text is not nil and holds at least one
// non white space character.
//
// Errors:
//   - [NullArgument] if text is nil
//   - [EmptyArgument] if *text is empty or white space only
func NotNullOrWhitespace(text *string, name string) error {
	if err := NotNull(text, name); err != nil {
		return err
	}

	return NotEmptyOrWhitespace(*text, name)
}

// Requires checks an arbitrary condition.
// When message is empty, [DefaultRequirementMessage] is used.
//
// Example:
//
//	err := contract.Requires(n1/2 > n2, "'n1' must be more than twice 'n2'.")
//
// Errors:
//   - [RequirementFailed] carrying message if condition is false
func Requires(condition bool, message string) error {
	if condition {
		return nil
	}
	if message == "" {
		message = DefaultRequirementMessage
	}

	return &Violation{Kind: RequirementFailed, Message: message}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
