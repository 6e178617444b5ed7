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
	"cmp"
	"time"
)

// Ordering runs the comparison checks for values of type T using a
// caller supplied comparison function.
//
// The zero value is not usable; create one with [By].
// An Ordering is immutable and safe for concurrent use.
type Ordering[T any] struct {
	compare func(a, b T) int
}

// By returns an [Ordering] backed by compare, which must return a negative
// number when a < b, zero when a == b and a positive number when a > b.
// By panics if compare is nil.
//
// Example:
//
//	bySize := contract.By(func(a, b Size) int { return cmp.Compare(a.Bytes, b.Bytes) })
//	err := bySize.LessThanOrEqual(upload, maxUpload, "upload")
func By[T any](compare func(a, b T) int) Ordering[T] {
	if compare == nil {
		panic("contract: compare function cannot be nil")
	}

	return Ordering[T]{compare: compare}
}

// Time returns the chronological [Ordering] of [time.Time] values.
func Time() Ordering[time.Time] {
	return timeOrdering
}

var timeOrdering = By(time.Time.Compare)

// GreaterThan checks that v > bound.
//
// Errors:
//   - [OutOfRange] if v <= bound
func (o Ordering[T]) GreaterThan(v, bound T, name string) error {
	if o.compare(v, bound) <= 0 {
		return outOfRange(name)
	}

	return nil
}

// GreaterThanOrEqual checks that v >= bound.
//
// Errors:
//   - [OutOfRange] if v < bound
func (o Ordering[T]) GreaterThanOrEqual(v, bound T, name string) error {
	if o.compare(v, bound) < 0 {
		return outOfRange(name)
	}

	return nil
}

// LessThan checks that v < bound.
//
// Errors:
//   - [OutOfRange] if v >= bound
func (o Ordering[T]) LessThan(v, bound T, name string) error {
	if o.compare(v, bound) >= 0 {
		return outOfRange(name)
	}

	return nil
}

// LessThanOrEqual checks that v <= bound.
//
// Errors:
//   - [OutOfRange] if v > bound
func (o Ordering[T]) LessThanOrEqual(v, bound T, name string) error {
	if o.compare(v, bound) > 0 {
		return outOfRange(name)
	}

	return nil
}

// EqualTo checks that v compares equal to expected.
// Equality is decided by the comparison function, not by ==.
//
// Errors:
//   - [OutOfRange] if v and expected differ
func (o Ordering[T]) EqualTo(v, expected T, name string) error {
	if o.compare(v, expected) != 0 {
		return outOfRange(name)
	}

	return nil
}

// NotEqualTo checks that v does not compare equal to expected.
//
// Errors:
//   - [OutOfRange] if v and expected compare equal
func (o Ordering[T]) NotEqualTo(v, expected T, name string) error {
	if o.compare(v, expected) == 0 {
		return outOfRange(name)
	}

	return nil
}

// InRange checks that start <= v <= end.
// The lower bound is checked first. If start > end no value passes.
//
// Errors:
//   - [OutOfRange] if v is outside [start, end]
func (o Ordering[T]) InRange(v, start, end T, name string) error {
	if err := o.GreaterThanOrEqual(v, start, name); err != nil {
		return err
	}

	return o.LessThanOrEqual(v, end, name)
}

// InRangeExclusive checks that start < v < end.
//
// Errors:
//   - [OutOfRange] if v is outside (start, end), including the end points
func (o Ordering[T]) InRangeExclusive(v, start, end T, name string) error {
	if err := o.GreaterThan(v, start, name); err != nil {
		return err
	}

	return o.LessThan(v, end, name)
}

// NotInRange checks that v is outside [start, end].
// The end points are inside the range and therefore fail.
//
// Errors:
//   - [OutOfRange] if start <= v <= end
func (o Ordering[T]) NotInRange(v, start, end T, name string) error {
	if o.compare(v, start) >= 0 && o.compare(v, end) <= 0 {
		return outOfRange(name)
	}

	return nil
}

// NotInRangeExclusive checks that v is outside (start, end).
// The end points are outside the open range and therefore pass.
//
// Errors:
//   - [OutOfRange] if start < v < end
func (o Ordering[T]) NotInRangeExclusive(v, start, end T, name string) error {
	if o.compare(v, start) > 0 && o.compare(v, end) < 0 {
		return outOfRange(name)
	}

	return nil
}

func ordered[T cmp.Ordered]() Ordering[T] {
	return Ordering[T]{compare: cmp.Compare[T]}
}

// GreaterThan checks that v > bound.
// See [Ordering.GreaterThan].
func GreaterThan[T cmp.Ordered](v, bound T, name string) error {
	return ordered[T]().GreaterThan(v, bound, name)
}

// GreaterThanOrEqual checks that v >= bound.
// See [Ordering.GreaterThanOrEqual].
func GreaterThanOrEqual[T cmp.Ordered](v, bound T, name string) error {
	return ordered[T]().GreaterThanOrEqual(v, bound, name)
}

// LessThan checks that v < bound.
// See [Ordering.LessThan].
func LessThan[T cmp.Ordered](v, bound T, name string) error {
	return ordered[T]().LessThan(v, bound, name)
}

// LessThanOrEqual checks that v <= bound.
// See [Ordering.LessThanOrEqual].
func LessThanOrEqual[T cmp.Ordered](v, bound T, name string) error {
	return ordered[T]().LessThanOrEqual(v, bound, name)
}

// EqualTo checks that v equals expected using [cmp.Compare].
// Unlike ==, two NaN values compare equal.
func EqualTo[T cmp.Ordered](v, expected T, name string) error {
	return ordered[T]().EqualTo(v, expected, name)
}

// NotEqualTo checks that v differs from expected using [cmp.Compare].
func NotEqualTo[T cmp.Ordered](v, expected T, name string) error {
	return ordered[T]().NotEqualTo(v, expected, name)
}

// InRange checks that start <= v <= end.
// See [Ordering.InRange].
//
// Example:
//
//	if err := contract.InRange(page, 1, 100, "page"); err != nil {
//	    return err
//	}
func InRange[T cmp.Ordered](v, start, end T, name string) error {
	return ordered[T]().InRange(v, start, end, name)
}

// InRangeExclusive checks that start < v < end.
// See [Ordering.InRangeExclusive].
func InRangeExclusive[T cmp.Ordered](v, start, end T, name string) error {
	return ordered[T]().InRangeExclusive(v, start, end, name)
}

// NotInRange checks that v < start or v > end.
// See [Ordering.NotInRange].
func NotInRange[T cmp.Ordered](v, start, end T, name string) error {
	return ordered[T]().NotInRange(v, start, end, name)
}

// NotInRangeExclusive checks that v <= start or v >= end.
// See [Ordering.NotInRangeExclusive].
func NotInRangeExclusive[T cmp.Ordered](v, start, end T, name string) error {
	return ordered[T]().NotInRangeExclusive(v, start, end, name)
}
