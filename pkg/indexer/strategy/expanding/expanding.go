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

// Package expanding implements windows that grow from the origin: every window starts at
// row 0 and ends just past the current row, so each row aggregates over the whole history
// seen so far.
package expanding

import (
	"github.com/rollproj/rollwin/pkg/indexer"
	"github.com/rollproj/rollwin/pkg/indexer/metrics"
)

// Expanding computes growing-from-origin window bounds. Centering and closed policies do
// not apply to expanding semantics; callers must leave them unset.
type Expanding struct{}

var _ indexer.WindowIndexer = (*Expanding)(nil)

// NewExpanding returns an expanding window indexer.
func NewExpanding() *Expanding {
	return &Expanding{}
}

// GetWindowBounds computes the bounds of every window in the strided range.
func (e *Expanding) GetWindowBounds(req indexer.WindowRequest) (*indexer.BoundsResult, error) {
	metrics.BoundsComputeTotal.WithLabelValues("expanding").Inc()

	step := req.StepOrDefault()
	n := req.NumValues
	end := make([]int64, 0, (n+step-1)/step)
	for i := 0; i < n; i += step {
		end = append(end, int64(i)+1)
	}

	return &indexer.BoundsResult{
		Start: make([]int64, len(end)),
		End:   end,
		Ref:   indexer.DefaultRef(n, step),
	}, nil
}
