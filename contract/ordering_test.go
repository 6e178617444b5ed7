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

//go:build !integration

package contract

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundChecks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		check   func(v, bound int, name string) error
		v       int
		bound   int
		wantErr bool
	}{
		{"GreaterThan above", GreaterThan[int], 5, 3, false},
		{"GreaterThan below", GreaterThan[int], 3, 5, true},
		{"GreaterThan equal is strict", GreaterThan[int], 3, 3, true},
		{"GreaterThanOrEqual above", GreaterThanOrEqual[int], 5, 3, false},
		{"GreaterThanOrEqual equal", GreaterThanOrEqual[int], 3, 3, false},
		{"GreaterThanOrEqual below", GreaterThanOrEqual[int], 2, 3, true},
		{"LessThan below", LessThan[int], 3, 5, false},
		{"LessThan above", LessThan[int], 5, 3, true},
		{"LessThan equal is strict", LessThan[int], 3, 3, true},
		{"LessThanOrEqual below", LessThanOrEqual[int], 3, 5, false},
		{"LessThanOrEqual equal", LessThanOrEqual[int], 3, 3, false},
		{"LessThanOrEqual above", LessThanOrEqual[int], 4, 3, true},
		{"EqualTo equal", EqualTo[int], 7, 7, false},
		{"EqualTo different", EqualTo[int], 7, 8, true},
		{"NotEqualTo different", NotEqualTo[int], 7, 8, false},
		{"NotEqualTo equal", NotEqualTo[int], 7, 7, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.check(tt.v, tt.bound, "value")
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			v := requireViolation(t, err, OutOfRange)
			assert.Equal(t, "value", v.ParamName)
		})
	}
}

// For every a > b, GreaterThan(a, b) passes while GreaterThan(b, a) and
// GreaterThan(a, a) fail.
func TestGreaterThan_Strictness(t *testing.T) {
	t.Parallel()

	pairs := [][2]float64{
		{1, 0},
		{0, -1},
		{math.MaxFloat64, 0},
		{0.000001, 0},
		{-0.5, -1},
		{math.Inf(1), math.MaxFloat64},
	}

	for _, p := range pairs {
		a, b := p[0], p[1]
		assert.NoError(t, GreaterThan(a, b, "n"), "GreaterThan(%v, %v)", a, b)
		assert.ErrorIs(t, GreaterThan(b, a, "n"), ErrOutOfRange, "GreaterThan(%v, %v)", b, a)
		assert.ErrorIs(t, GreaterThan(a, a, "n"), ErrOutOfRange, "GreaterThan(%v, %v)", a, a)
	}
}

func TestEqualTo_Floats(t *testing.T) {
	t.Parallel()

	require.NoError(t, EqualTo(2.0, 2.0, "x"))

	err := EqualTo(2.00, 3.00, "x")
	v := requireViolation(t, err, OutOfRange)
	assert.Equal(t, "x", v.ParamName)
	assert.Contains(t, err.Error(), "x")

	// cmp.Compare treats NaN as equal to itself.
	assert.NoError(t, EqualTo(math.NaN(), math.NaN(), "x"))
}

func TestRangeChecks(t *testing.T) {
	t.Parallel()

	const start, end = 3, 7

	tests := []struct {
		v                   int
		inRange             bool
		inRangeExclusive    bool
		notInRange          bool
		notInRangeExclusive bool
	}{
		{v: 1, inRange: false, inRangeExclusive: false, notInRange: true, notInRangeExclusive: true},
		{v: 3, inRange: true, inRangeExclusive: false, notInRange: false, notInRangeExclusive: true},
		{v: 5, inRange: true, inRangeExclusive: true, notInRange: false, notInRangeExclusive: false},
		{v: 7, inRange: true, inRangeExclusive: false, notInRange: false, notInRangeExclusive: true},
		{v: 9, inRange: false, inRangeExclusive: false, notInRange: true, notInRangeExclusive: true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.inRange, InRange(tt.v, start, end, "p") == nil, "InRange(%d)", tt.v)
		assert.Equal(t, tt.inRangeExclusive, InRangeExclusive(tt.v, start, end, "p") == nil, "InRangeExclusive(%d)", tt.v)
		assert.Equal(t, tt.notInRange, NotInRange(tt.v, start, end, "p") == nil, "NotInRange(%d)", tt.v)
		assert.Equal(t, tt.notInRangeExclusive, NotInRangeExclusive(tt.v, start, end, "p") == nil, "NotInRangeExclusive(%d)", tt.v)
	}
}

// NotInRange is the exact negation of InRange, boundaries included.
func TestNotInRange_NegatesInRange(t *testing.T) {
	t.Parallel()

	bounds := [][2]int{{0, 10}, {-5, 5}, {3, 3}, {10, 0}}
	for _, b := range bounds {
		for v := -12; v <= 12; v++ {
			in := InRange(v, b[0], b[1], "v") == nil
			notIn := NotInRange(v, b[0], b[1], "v") == nil
			assert.NotEqual(t, in, notIn, "v=%d range=[%d,%d]", v, b[0], b[1])
		}
	}
}

func TestNotInRangeExclusive_LowerBoundary(t *testing.T) {
	t.Parallel()

	assert.NoError(t, NotInRangeExclusive(3, 3, 7, "p"))
}

func TestInRange_InvertedBoundsRejectEverything(t *testing.T) {
	t.Parallel()

	for v := -2; v <= 12; v++ {
		assert.ErrorIs(t, InRange(v, 10, 0, "v"), ErrOutOfRange, "v=%d", v)
	}
}

func TestInRange_ReportsFirstViolation(t *testing.T) {
	t.Parallel()

	err := InRange(0, 1, 5, "lower")
	v := requireViolation(t, err, OutOfRange)
	assert.Equal(t, "lower", v.ParamName)

	err = InRangeExclusive(5, 1, 5, "")
	v = requireViolation(t, err, OutOfRange)
	assert.Equal(t, UnknownParameter, v.ParamName)
}

func TestOrderedStrings(t *testing.T) {
	t.Parallel()

	assert.NoError(t, InRange("m", "a", "z", "letter"))
	assert.NoError(t, LessThan("apple", "banana", "fruit"))
	assert.ErrorIs(t, GreaterThan("Apple", "apple", "fruit"), ErrOutOfRange)
}

func TestTimeOrdering(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	before := base.Add(-time.Hour)
	after := base.Add(time.Hour)

	require.NoError(t, Time().GreaterThan(after, base, "when"))
	require.NoError(t, Time().LessThan(before, base, "when"))
	require.NoError(t, Time().InRange(base, before, after, "when"))
	require.NoError(t, Time().InRange(before, before, after, "when"))
	require.NoError(t, Time().NotInRangeExclusive(after, before, after, "when"))

	err := Time().InRangeExclusive(before, before, after, "when")
	requireViolation(t, err, OutOfRange)

	// Same instant in another location compares equal.
	local := base.In(time.FixedZone("UTC+2", 2*60*60))
	assert.NoError(t, Time().EqualTo(local, base, "when"))
	assert.ErrorIs(t, Time().NotEqualTo(local, base, "when"), ErrOutOfRange)
}

func TestBy_CustomComparison(t *testing.T) {
	t.Parallel()

	caseless := By(func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})

	assert.NoError(t, caseless.EqualTo("Home", "home", "controller"))
	assert.ErrorIs(t, caseless.NotEqualTo("INDEX", "index", "action"), ErrOutOfRange)
	assert.NoError(t, caseless.GreaterThanOrEqual("B", "a", "letter"))
	assert.NoError(t, caseless.LessThanOrEqual("a", "B", "letter"))
}

func TestBy_NilComparePanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		By[int](nil)
	})
}
