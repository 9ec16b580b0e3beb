/*
Copyright 2024 The Rollproj Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package variable

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rollproj/rollwin/pkg/indexer"
)

var baseTime = time.Unix(1651129200, 0).UTC()

// secondsIndex returns timestamps baseTime + s seconds for every s.
func secondsIndex(seconds ...int) []time.Time {
	index := make([]time.Time, len(seconds))
	for i, s := range seconds {
		index[i] = baseTime.Add(time.Duration(s) * time.Second)
	}
	return index
}

func TestVariableOffset_ClosedPolicies(t *testing.T) {
	index := secondsIndex(0, 1, 2, 3, 4)

	tests := []struct {
		name      string
		closed    indexer.Closed
		wantStart []int64
		wantEnd   []int64
	}{
		{
			// unset defaults to right inclusive when an index is present
			name:      "default_right",
			closed:    indexer.ClosedDefault,
			wantStart: []int64{0, 0, 1, 2, 3},
			wantEnd:   []int64{1, 2, 3, 4, 5},
		},
		{
			name:      "right",
			closed:    indexer.ClosedRight,
			wantStart: []int64{0, 0, 1, 2, 3},
			wantEnd:   []int64{1, 2, 3, 4, 5},
		},
		{
			name:      "both",
			closed:    indexer.ClosedBoth,
			wantStart: []int64{0, 0, 0, 1, 2},
			wantEnd:   []int64{1, 2, 3, 4, 5},
		},
		{
			name:      "left",
			closed:    indexer.ClosedLeft,
			wantStart: []int64{0, 0, 0, 1, 2},
			wantEnd:   []int64{0, 1, 2, 3, 4},
		},
		{
			name:      "neither",
			closed:    indexer.ClosedNeither,
			wantStart: []int64{0, 0, 1, 2, 3},
			wantEnd:   []int64{0, 1, 2, 3, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewVariable(index, 2*time.Second)
			got, err := v.GetWindowBounds(indexer.WindowRequest{NumValues: 5, Closed: tt.closed})
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStart, got.Start)
			assert.Equal(t, tt.wantEnd, got.End)
			assert.Nil(t, got.Ref)
		})
	}
}

func TestVariableOffset_DescendingIndex(t *testing.T) {
	index := secondsIndex(4, 3, 2, 1, 0)

	v := NewVariable(index, 2*time.Second)
	got, err := v.GetWindowBounds(indexer.WindowRequest{NumValues: 5})
	assert.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 1, 2, 3}, got.Start)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, got.End)
}

func TestVariableOffset_IrregularSpacing(t *testing.T) {
	// gaps of 1s, 9s, 1s, 50s
	index := secondsIndex(0, 1, 10, 11, 61)

	v := NewVariable(index, 2*time.Second)
	got, err := v.GetWindowBounds(indexer.WindowRequest{NumValues: 5})
	assert.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 2, 2, 4}, got.Start)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, got.End)
}

func TestVariableOffset_Step(t *testing.T) {
	index := secondsIndex(0, 1, 2, 3, 4)

	v := NewVariable(index, 2*time.Second)
	got, err := v.GetWindowBounds(indexer.WindowRequest{NumValues: 5, Step: 2})
	assert.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 3}, got.Start)
	assert.Equal(t, []int64{1, 3, 5}, got.End)
	assert.Equal(t, []int64{0, 2, 4}, got.Ref)
}

func TestVariableOffset_Empty(t *testing.T) {
	v := NewVariable(nil, time.Second)
	got, err := v.GetWindowBounds(indexer.WindowRequest{NumValues: 0})
	assert.NoError(t, err)
	assert.Equal(t, []int64{}, got.Start)
	assert.Equal(t, []int64{}, got.End)
	assert.Nil(t, got.Ref)
}

func TestVariableOffset_CenterRejected(t *testing.T) {
	v := NewVariable(secondsIndex(0, 1, 2), time.Second)
	_, err := v.GetWindowBounds(indexer.WindowRequest{NumValues: 3, Center: true})
	assert.ErrorIs(t, err, indexer.ErrInvalidConfiguration)
}

// businessDayOffset shifts a timestamp by n weekdays, skipping Saturdays and Sundays.
// It stands in for the calendar offsets callers bring along for non-fixed durations.
type businessDayOffset struct {
	n int
}

func (b businessDayOffset) SubtractFrom(t time.Time) time.Time {
	for i := 0; i < b.n; i++ {
		t = t.AddDate(0, 0, -1)
		for t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
			t = t.AddDate(0, 0, -1)
		}
	}
	return t
}

func (b businessDayOffset) AddTo(t time.Time) time.Time {
	for i := 0; i < b.n; i++ {
		t = t.AddDate(0, 0, 1)
		for t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
			t = t.AddDate(0, 0, 1)
		}
	}
	return t
}

func TestVariableOffset_BusinessDays(t *testing.T) {
	// Thu Jan 4 2024, Fri Jan 5, Mon Jan 8, Tue Jan 9
	index := []time.Time{
		time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC),
	}

	v := NewVariableOffset(index, businessDayOffset{n: 2})
	got, err := v.GetWindowBounds(indexer.WindowRequest{NumValues: 4})
	assert.NoError(t, err)
	// the weekend does not widen the window: Mon looks back across it to Fri
	assert.Equal(t, []int64{0, 0, 1, 2}, got.Start)
	assert.Equal(t, []int64{1, 2, 3, 4}, got.End)
}

// Round-trip property: for a strictly monotonic index and closed=right, row j is inside
// window i exactly when index[i] - index[j] lies within [0, offset) along the growth
// direction. Verified by brute force against random monotonic arrays.
func TestVariableOffset_BruteForce(t *testing.T) {
	const n = 200
	offset := 7 * time.Second
	rng := rand.New(rand.NewSource(42))

	for _, descending := range []bool{false, true} {
		index := make([]time.Time, n)
		cursor := baseTime
		for i := 0; i < n; i++ {
			index[i] = cursor
			gap := time.Duration(1+rng.Intn(5)) * time.Second
			if descending {
				gap = -gap
			}
			cursor = cursor.Add(gap)
		}

		v := NewVariable(index, offset)
		got, err := v.GetWindowBounds(indexer.WindowRequest{NumValues: n})
		assert.NoError(t, err)
		assert.Len(t, got.Start, n)
		assert.Len(t, got.End, n)

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				d := index[i].Sub(index[j])
				if descending {
					d = -d
				}
				want := d >= 0 && d < offset
				inWindow := got.Start[i] <= int64(j) && int64(j) < got.End[i]
				assert.Equal(t, want, inWindow, "descending=%v i=%d j=%d", descending, i, j)
			}
		}
	}
}
