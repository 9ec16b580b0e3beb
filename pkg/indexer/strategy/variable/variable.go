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

// Package variable implements time-based variable-length windows over an irregularly
// spaced monotonic index. Because the index is only guaranteed monotonic, not evenly
// spaced, window boundaries cannot be computed by arithmetic alone; instead a two-pointer
// scan advances the start and end of the window as the current row moves forward.
//
// The index may be strictly ascending or strictly descending; the scan detects the
// direction and mirrors the offset accordingly. The index is borrowed from the caller and
// only read.
package variable

import (
	"fmt"
	"time"

	"github.com/rollproj/rollwin/pkg/indexer"
	"github.com/rollproj/rollwin/pkg/indexer/metrics"
)

// VariableOffset computes variable-length window bounds sized by a duration offset over
// a monotonic time index.
//
// Monotonicity of the index is a documented precondition, not a runtime check; scanning
// for it would defeat the O(N) hot path. A non-monotonic index yields undefined bounds.
type VariableOffset struct {
	index  []time.Time
	offset Offset
}

var _ indexer.WindowIndexer = (*VariableOffset)(nil)

// NewVariableOffset returns an indexer for windows sized by a possibly non-fixed offset,
// e.g. one business day. The index is borrowed, not copied; it must cover at least
// NumValues entries of every subsequent request.
func NewVariableOffset(index []time.Time, offset Offset) *VariableOffset {
	return &VariableOffset{index: index, offset: offset}
}

// NewVariable returns an indexer for windows spanning a fixed interval of time, e.g.
// "2s". It is the constant-duration special case of NewVariableOffset and shares its
// scan, including the tie-break behavior at equal boundary timestamps.
func NewVariable(index []time.Time, size time.Duration) *VariableOffset {
	return &VariableOffset{index: index, offset: DurationOffset(size)}
}

// GetWindowBounds computes the bounds of every window with a single forward scan.
//
// The start pointer only ever moves forward relative to the previous row's start, which
// is what makes the scan linear in aggregate; restarting from 0 each row would be O(N^2).
func (v *VariableOffset) GetWindowBounds(req indexer.WindowRequest) (*indexer.BoundsResult, error) {
	if req.Center {
		metrics.BoundsComputeErrors.WithLabelValues("variable").Inc()
		return nil, fmt.Errorf("%w: variable windows cannot be centered", indexer.ErrInvalidConfiguration)
	}
	metrics.BoundsComputeTotal.WithLabelValues("variable").Inc()

	// if the window is variable the default is right inclusive, otherwise both
	closed := req.Closed
	if closed == indexer.ClosedDefault {
		if v.index != nil {
			closed = indexer.ClosedRight
		} else {
			closed = indexer.ClosedBoth
		}
	}
	rightClosed := closed.IncludesRight()
	leftClosed := closed.IncludesLeft()

	step := req.StepOrDefault()
	n := req.NumValues
	if n == 0 {
		return &indexer.BoundsResult{
			Start: []int64{},
			End:   []int64{},
			Ref:   indexer.DefaultRef(0, step),
		}, nil
	}

	ascending := !v.index[n-1].Before(v.index[0])

	start := make([]int64, n)
	end := make([]int64, n)

	start[0] = 0
	if rightClosed {
		end[0] = 1
	} else {
		end[0] = 0
	}

	// start is the first index inside the slice interval, end is one past the last
	for i := 1; i < n; i++ {
		endBound := v.index[i]
		var startBound time.Time
		if ascending {
			startBound = v.offset.SubtractFrom(v.index[i])
		} else {
			startBound = v.offset.AddTo(v.index[i])
		}

		// a left-inclusive endpoint becomes exclusive one epsilon earlier
		if leftClosed {
			startBound = startBound.Add(-time.Nanosecond)
		}

		// advance the start pointer until we are within the constraint
		start[i] = int64(i)
		for j := start[i-1]; j < int64(i); j++ {
			if beyond(v.index[j], startBound, ascending) {
				start[i] = j
				break
			}
		}

		// the end bound is the previous end or the current index
		if !beyond(v.index[end[i-1]], endBound, ascending) {
			end[i] = int64(i) + 1
		} else {
			end[i] = end[i-1]
		}
		if !rightClosed {
			end[i]--
		}
	}

	return &indexer.BoundsResult{
		Start: indexer.Stride(start, step),
		End:   indexer.Stride(end, step),
		Ref:   indexer.DefaultRef(n, step),
	}, nil
}

// beyond reports whether t lies strictly past bound in the index growth direction, i.e.
// (t - bound) * growthSign > 0.
func beyond(t, bound time.Time, ascending bool) bool {
	if ascending {
		return t.After(bound)
	}
	return t.Before(bound)
}
