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

// Package ewm implements the degenerate whole-range window used by exponentially
// weighted aggregations. The recursive weighting is applied by the reducer itself, which
// needs the entire history for every output row, so the bounds collapse to a single
// window covering all rows.
package ewm

import (
	"github.com/rollproj/rollwin/pkg/indexer"
	"github.com/rollproj/rollwin/pkg/indexer/metrics"
)

// ExponentialMoving computes the single whole-range window.
type ExponentialMoving struct{}

var _ indexer.WindowIndexer = (*ExponentialMoving)(nil)

// NewExponentialMoving returns a whole-range window indexer.
func NewExponentialMoving() *ExponentialMoving {
	return &ExponentialMoving{}
}

// GetWindowBounds returns exactly one window spanning [0, NumValues), regardless of
// step, closed and center.
func (e *ExponentialMoving) GetWindowBounds(req indexer.WindowRequest) (*indexer.BoundsResult, error) {
	metrics.BoundsComputeTotal.WithLabelValues("ewm").Inc()

	return &indexer.BoundsResult{
		Start: []int64{0},
		End:   []int64{int64(req.NumValues)},
		Ref:   nil,
	}, nil
}
