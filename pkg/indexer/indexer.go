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

package indexer

import "errors"

// ErrInvalidConfiguration is returned when a parameter combination is not supported by
// the indexer, e.g. centering a forward-looking window. It is always reported before any
// scan begins, so a failed call never produces a partial result.
var ErrInvalidConfiguration = errors.New("invalid window configuration")

// Closed specifies which of the two conceptual interval endpoints of a window are
// inclusive.
type Closed int

const (
	// ClosedDefault leaves the policy to the indexer. Fixed windows treat it as right
	// inclusive, variable windows default to ClosedRight when a time index is present
	// and ClosedBoth otherwise.
	ClosedDefault Closed = iota
	// ClosedRight includes only the right endpoint.
	ClosedRight
	// ClosedLeft includes only the left endpoint.
	ClosedLeft
	// ClosedBoth includes both endpoints.
	ClosedBoth
	// ClosedNeither includes neither endpoint.
	ClosedNeither
)

func (c Closed) String() string {
	switch c {
	case ClosedRight:
		return "right"
	case ClosedLeft:
		return "left"
	case ClosedBoth:
		return "both"
	case ClosedNeither:
		return "neither"
	default:
		return "default"
	}
}

// IncludesRight returns true if the right endpoint of the interval is inclusive.
func (c Closed) IncludesRight() bool {
	return c == ClosedRight || c == ClosedBoth
}

// IncludesLeft returns true if the left endpoint of the interval is inclusive.
func (c Closed) IncludesLeft() bool {
	return c == ClosedLeft || c == ClosedBoth
}

// WindowRequest carries the per-call parameters of one bounds computation. It is a plain
// value, created fresh per call and never mutated by an indexer.
type WindowRequest struct {
	// NumValues is the number of observations that will be aggregated over.
	NumValues int
	// MinPeriods is opaque to the bounds computation; it is carried through for the
	// reduction layer, which uses it to decide whether a window has enough rows.
	MinPeriods int
	// Center places the window symmetrically around the current row instead of
	// trailing it. Not every indexer supports centering.
	Center bool
	// Closed selects the endpoint inclusion policy.
	Closed Closed
	// Step computes bounds only for every Step-th row. Zero means unset and is
	// equivalent to 1.
	Step int
}

// StepOrDefault returns the effective stride of the request, treating unset as 1.
func (r WindowRequest) StepOrDefault() int {
	if r.Step <= 0 {
		return 1
	}
	return r.Step
}

// BoundsResult holds the computed window boundaries. Start and End are equal-length and
// define half-open ranges [Start[i], End[i]) directly usable as slice bounds into the
// original value sequence. Ref, when non-nil, gives the row position each window belongs
// to under non-unit striding; it is nil whenever the effective step is 1.
type BoundsResult struct {
	Start []int64
	End   []int64
	Ref   []int64
}

// WindowIndexer computes window bounds for a sequence of observations.
type WindowIndexer interface {
	// GetWindowBounds computes the start/end boundaries for the given request. It is
	// side-effect free and never panics for well-formed input (NumValues >= 0);
	// unsupported parameter combinations are reported as ErrInvalidConfiguration.
	GetWindowBounds(req WindowRequest) (*BoundsResult, error)
}

// DefaultRef returns the default window reference locations: nil for unit stride,
// otherwise the strided row positions 0, step, 2*step, ... below numValues.
func DefaultRef(numValues, step int) []int64 {
	if step <= 1 {
		return nil
	}
	ref := make([]int64, 0, (numValues+step-1)/step)
	for i := 0; i < numValues; i += step {
		ref = append(ref, int64(i))
	}
	return ref
}

// Stride returns every step-th element of a, starting at index 0. For unit stride the
// input is returned as is.
func Stride(a []int64, step int) []int64 {
	if step <= 1 {
		return a
	}
	out := make([]int64, 0, (len(a)+step-1)/step)
	for i := 0; i < len(a); i += step {
		out = append(out, a[i])
	}
	return out
}

// Clip bounds v into [0, hi]. Clipping is the specified boundary policy for positional
// windows running off either edge of the sequence, not an error condition.
func Clip(v, hi int64) int64 {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}
