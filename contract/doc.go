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

// Package contract provides precondition checks for function arguments.
//
// Every check returns nil when the argument is acceptable and a [*Violation]
// otherwise. Callers fail fast by returning the violation unchanged:
//
//	func RegisterRoutes(t *routes.Table) error {
//		if err := contract.NotNull(t, "routes"); err != nil {
//			return err
//		}
//		// ...
//	}
//
// # Violation Kinds
//
// Violations are classified by [Kind]:
//
//   - [NullArgument]: a required value was nil
//   - [EmptyArgument]: a string was empty or white space only
//   - [OutOfRange]: a value broke an ordering constraint
//   - [RequirementFailed]: a caller supplied condition was false
//
// Each kind has a sentinel for [errors.Is]:
//
//	if errors.Is(err, contract.ErrOutOfRange) {
//		// ...
//	}
//
// Use [errors.As] to read the parameter name and message:
//
//	var v *contract.Violation
//	if errors.As(err, &v) {
//		fmt.Println(v.Kind, v.ParamName)
//	}
//
// When the parameter name is empty the literal "Unknown Parameter (null)" is
// reported in its place.
//
// # Ordering Checks
//
// The comparison checks ([GreaterThan], [InRange], [NotInRangeExclusive], ...)
// accept any [cmp.Ordered] type. Other types use an [Ordering] built with [By]:
//
//	byVersion := contract.By(func(a, b Version) int { return a.Compare(b) })
//	err := byVersion.GreaterThanOrEqual(v, minVersion, "v")
//
// [Time] is the ready-made ordering for [time.Time].
//
// Composed checks report the first violated condition. [InRange] checks the
// lower bound before the upper bound, so a range whose start is after its end
// rejects every value.
//
// # HTTP Integration
//
// [Violation] implements the ErrorType, ErrorCode and ErrorDetails interfaces of
// the errors package, so a violation recorded on a request renders as a
// 400 Bad Request problem document.
//
// # Thread Safety
//
// All functions are safe for concurrent use. The package holds no mutable state.
package contract
