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

// Package fixed implements fixed-length positional windows. A fixed window trails the
// current row (or is centered on it) and always spans the same number of rows, so its
// boundaries are computed by arithmetic alone and clipped into the valid range at the
// edges of the sequence.
package fixed

import (
	"github.com/rollproj/rollwin/pkg/indexer"
	"github.com/rollproj/rollwin/pkg/indexer/metrics"
)

// Fixed computes trailing or centered fixed-length window bounds.
type Fixed struct {
	// WindowSize is the number of rows in every window.
	WindowSize int
}

var _ indexer.WindowIndexer = (*Fixed)(nil)

// NewFixed returns a fixed-length window indexer.
func NewFixed(windowSize int) *Fixed {
	return &Fixed{WindowSize: windowSize}
}

// GetWindowBounds computes the bounds of every window in the strided range.
// A zero WindowSize degenerates to start == end for every row, which callers
// must treat as "no data".
func (f *Fixed) GetWindowBounds(req indexer.WindowRequest) (*indexer.BoundsResult, error) {
	metrics.BoundsComputeTotal.WithLabelValues("fixed").Inc()

	var offset int64
	if req.Center {
		// floor division, also for the degenerate zero-size window
		offset = int64(f.WindowSize-1) >> 1
	}

	step := req.StepOrDefault()
	n := req.NumValues
	start := make([]int64, 0, (n+step-1)/step)
	end := make([]int64, 0, (n+step-1)/step)
	for i := 0; i < n; i += step {
		e := int64(i) + 1 + offset
		s := e - int64(f.WindowSize)
		if req.Closed == indexer.ClosedLeft || req.Closed == indexer.ClosedBoth {
			s--
		}
		if req.Closed == indexer.ClosedLeft || req.Closed == indexer.ClosedNeither {
			e--
		}
		start = append(start, indexer.Clip(s, int64(n)))
		end = append(end, indexer.Clip(e, int64(n)))
	}

	return &indexer.BoundsResult{
		Start: start,
		End:   end,
		Ref:   indexer.DefaultRef(n, step),
	}, nil
}
