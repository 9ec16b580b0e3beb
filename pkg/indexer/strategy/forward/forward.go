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

// Package forward implements fixed-length windows that look forward from the current row:
// the window starts at the row itself and spans the following WindowSize rows, clipped at
// the end of the sequence.
package forward

import (
	"fmt"

	"github.com/rollproj/rollwin/pkg/indexer"
	"github.com/rollproj/rollwin/pkg/indexer/metrics"
)

// Forward computes forward-looking fixed-length window bounds.
type Forward struct {
	// WindowSize is the number of rows in every window, the current row included.
	WindowSize int
}

var _ indexer.WindowIndexer = (*Forward)(nil)

// NewForward returns a forward-looking window indexer.
func NewForward(windowSize int) *Forward {
	return &Forward{WindowSize: windowSize}
}

// GetWindowBounds computes the bounds of every window in the strided range. Centering and
// closed policies are unsupported for forward-looking windows and rejected up front.
func (f *Forward) GetWindowBounds(req indexer.WindowRequest) (*indexer.BoundsResult, error) {
	if req.Center {
		metrics.BoundsComputeErrors.WithLabelValues("forward").Inc()
		return nil, fmt.Errorf("%w: forward-looking windows cannot be centered", indexer.ErrInvalidConfiguration)
	}
	if req.Closed != indexer.ClosedDefault {
		metrics.BoundsComputeErrors.WithLabelValues("forward").Inc()
		return nil, fmt.Errorf("%w: forward-looking windows do not support a closed policy", indexer.ErrInvalidConfiguration)
	}
	metrics.BoundsComputeTotal.WithLabelValues("forward").Inc()

	step := req.StepOrDefault()
	n := req.NumValues
	start := make([]int64, 0, (n+step-1)/step)
	end := make([]int64, 0, (n+step-1)/step)
	for i := 0; i < n; i += step {
		start = append(start, int64(i))
		e := int64(i) + int64(f.WindowSize)
		if f.WindowSize != 0 {
			e = indexer.Clip(e, int64(n))
		}
		end = append(end, e)
	}

	return &indexer.BoundsResult{
		Start: start,
		End:   end,
		Ref:   indexer.DefaultRef(n, step),
	}, nil
}
