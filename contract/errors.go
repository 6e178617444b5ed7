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
	"errors"
	"fmt"
	"net/http"
)

// UnknownParameter is reported as the parameter name when a check is called
// with an empty name.
const UnknownParameter = "Unknown Parameter (null)"

// DefaultRequirementMessage is the message of a [RequirementFailed] violation
// raised by [Requires] without a message.
const DefaultRequirementMessage = "The expected requirement was not met."

const (
	nullMessage       = "Value cannot be null."
	outOfRangeMessage = "Specified argument was out of the range of valid values."
)

// Sentinel errors, one per [Kind].
// A [*Violation] unwraps to the sentinel of its kind.
var (
	// ErrNullArgument matches violations of kind [NullArgument].
	ErrNullArgument = errors.New("null argument")

	// ErrEmptyArgument matches violations of kind [EmptyArgument].
	ErrEmptyArgument = errors.New("empty argument")

	// ErrOutOfRange matches violations of kind [OutOfRange].
	ErrOutOfRange = errors.New("argument out of range")

	// ErrRequirementFailed matches violations of kind [RequirementFailed].
	ErrRequirementFailed = errors.New("requirement failed")
)

// Kind classifies a [Violation].
type Kind int

const (
	// NullArgument means a required value was nil.
	NullArgument Kind = iota + 1
	// EmptyArgument means a string was empty or held only white space.
	EmptyArgument
	// OutOfRange means a value violated a bound, equality or interval constraint.
	OutOfRange
	// RequirementFailed means a caller defined condition was false.
	RequirementFailed
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case NullArgument:
		return "NullArgument"
	case EmptyArgument:
		return "EmptyArgument"
	case OutOfRange:
		return "OutOfRange"
	case RequirementFailed:
		return "RequirementFailed"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) sentinel() error {
	switch k {
	case NullArgument:
		return ErrNullArgument
	case EmptyArgument:
		return ErrEmptyArgument
	case OutOfRange:
		return ErrOutOfRange
	case RequirementFailed:
		return ErrRequirementFailed
	default:
		return nil
	}
}

func (k Kind) code() string {
	switch k {
	case NullArgument:
		return "null_argument"
	case EmptyArgument:
		return "empty_argument"
	case OutOfRange:
		return "out_of_range"
	case RequirementFailed:
		return "requirement_failed"
	default:
		return "contract_violation"
	}
}

// Violation reports a failed precondition.
// It is created by the check that failed and returned to the caller as is.
//
// Example:
//
//	var v *contract.Violation
//	if errors.As(err, &v) && v.Kind == contract.OutOfRange {
//	    fmt.Printf("bad value for %s\n", v.ParamName)
//	}
type Violation struct {
	// Kind identifies the failed check.
	Kind Kind

	// ParamName is the offending parameter, or [UnknownParameter] when the
	// check was called without a name. Empty for [RequirementFailed].
	ParamName string

	// Message is the human-readable description.
	Message string
}

// Error returns the violation message.
// For [NullArgument] and [OutOfRange] the parameter name is appended.
func (v *Violation) Error() string {
	switch v.Kind {
	case NullArgument, OutOfRange:
		return fmt.Sprintf("%s (Parameter '%s')", v.Message, v.ParamName)
	default:
		return v.Message
	}
}

// Unwrap returns the sentinel error of the violation kind for [errors.Is].
func (v *Violation) Unwrap() error {
	return v.Kind.sentinel()
}

// HTTPStatus implements errors.ErrorType.
func (v *Violation) HTTPStatus() int {
	return http.StatusBadRequest
}

// Code implements errors.ErrorCode.
func (v *Violation) Code() string {
	return v.Kind.code()
}

// Detail is the structured payload returned by [Violation.Details].
type Detail struct {
	Kind      string `json:"kind"`
	Parameter string `json:"parameter,omitempty"`
}

// Details implements errors.ErrorDetails.
func (v *Violation) Details() any {
	return Detail{Kind: v.Kind.String(), Parameter: v.ParamName}
}

func paramName(name string) string {
	if name == "" {
		return UnknownParameter
	}

	return name
}

func nullArgument(name string) error {
	return &Violation{Kind: NullArgument, ParamName: paramName(name), Message: nullMessage}
}

func outOfRange(name string) error {
	return &Violation{Kind: OutOfRange, ParamName: paramName(name), Message: outOfRangeMessage}
}

func emptyArgument(name, format string) error {
	name = paramName(name)

	return &Violation{Kind: EmptyArgument, ParamName: name, Message: fmt.Sprintf(format, name)}
}
