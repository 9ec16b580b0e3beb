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

// Package groupby composes any window indexer independently inside each group of a
// partitioned sequence. Rows belonging to one group are not necessarily contiguous or
// sorted in the original frame, so each group's locally computed bounds are translated
// into a shared global coordinate space and the per-group results are concatenated in
// partition order, yielding one coherent bounds pair usable by a generic downstream
// slicer.
package groupby

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rollproj/rollwin/pkg/indexer"
	"github.com/rollproj/rollwin/pkg/indexer/metrics"
	"github.com/rollproj/rollwin/pkg/shared/logging"
)

// Group is one partition entry: a group key and the ordered row positions belonging to
// the group. Partitions are carried as a slice, not a map, because iteration order is
// load-bearing for the concatenation.
type Group struct {
	Key       string
	Positions []int64
}

// Factory builds a fresh inner indexer for one group. The index argument is the
// group-local slice of the global monotonic index (nil when no index was configured);
// windowSize is the groupby indexer's effective window size, for factories that need it.
type Factory func(index []time.Time, windowSize int) (indexer.WindowIndexer, error)

// Groupby translates per-group window bounds into global coordinates.
//
// The partition and the global index must agree: every position must be a valid index
// into the global index when one is configured. This is a documented caller precondition;
// a mismatched gather yields undefined bounds.
type Groupby struct {
	groups     []Group
	factory    Factory
	index      []time.Time
	windowSize int
	log        *zap.SugaredLogger
}

var _ indexer.WindowIndexer = (*Groupby)(nil)

// NewGroupby returns a groupby composition indexer over the given partition.
func NewGroupby(groups []Group, factory Factory, opts ...Option) (*Groupby, error) {
	options := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			if err := opt(options); err != nil {
				return nil, err
			}
		}
	}
	if options.logger == nil {
		options.logger = logging.NewLogger()
	}
	return &Groupby{
		groups:     groups,
		factory:    factory,
		index:      options.index,
		windowSize: options.windowSize,
		log:        options.logger,
	}, nil
}

// GetWindowBounds computes bounds per group and remaps them into the global coordinate
// space.
func (g *Groupby) GetWindowBounds(req indexer.WindowRequest) (*indexer.BoundsResult, error) {
	metrics.BoundsComputeTotal.WithLabelValues("groupby").Inc()

	var startParts, endParts, refParts [][]int64
	empty := []int64{}
	var windowIndicesStart int64

	for _, group := range g.groups {
		var groupIndex []time.Time
		if g.index != nil {
			groupIndex = make([]time.Time, len(group.Positions))
			for i, pos := range group.Positions {
				groupIndex[i] = g.index[pos]
			}
		}

		inner, err := g.factory(groupIndex, g.windowSize)
		if err != nil {
			return nil, fmt.Errorf("building inner indexer for group %q: %w", group.Key, err)
		}
		local, err := inner.GetWindowBounds(indexer.WindowRequest{
			NumValues:  len(group.Positions),
			MinPeriods: req.MinPeriods,
			Center:     req.Center,
			Closed:     req.Closed,
			Step:       req.Step,
		})
		if err != nil {
			return nil, fmt.Errorf("computing bounds for group %q: %w", group.Key, err)
		}
		if len(local.Start) != len(local.End) {
			return nil, fmt.Errorf("inner indexer for group %q returned %d starts and %d ends", group.Key, len(local.Start), len(local.End))
		}

		// Lookup table with one extra sentinel slot: a local end equal to the group
		// length (open upper bound) must map to one past the group's last row in
		// global coordinates.
		lookup := make([]int64, len(group.Positions)+1)
		for i := range lookup {
			lookup[i] = windowIndicesStart + int64(i)
		}
		windowIndicesStart += int64(len(group.Positions))

		startParts = append(startParts, take(lookup, local.Start))
		endParts = append(endParts, take(lookup, local.End))
		if local.Ref != nil {
			refParts = append(refParts, take(lookup, local.Ref))
		} else {
			refParts = append(refParts, empty)
		}
	}

	result := &indexer.BoundsResult{
		Start: concat(startParts),
		End:   concat(endParts),
	}
	if req.StepOrDefault() > 1 {
		result.Ref = concat(refParts)
	}
	g.log.Debugw("computed groupby window bounds", "groups", len(g.groups), "windows", len(result.Start))
	return result, nil
}

func take(lookup []int64, idx []int64) []int64 {
	out := make([]int64, len(idx))
	for i, v := range idx {
		out[i] = lookup[v]
	}
	return out
}

func concat(parts [][]int64) []int64 {
	var total int
	for _, p := range parts {
		total += len(p)
	}
	out := make([]int64, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
