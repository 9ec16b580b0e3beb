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

import "time"

// Offset is a possibly non-fixed duration, e.g. "1 business day", that cannot be
// expressed as a constant number of rows or nanoseconds. Implementations shift a
// timestamp backwards or forwards by the offset; the indexer never inspects the offset
// itself, only the shifted bound.
type Offset interface {
	// SubtractFrom returns t minus the offset.
	SubtractFrom(t time.Time) time.Time
	// AddTo returns t plus the offset. Used when the index is descending, where the
	// window extends towards larger timestamps.
	AddTo(t time.Time) time.Time
}

// DurationOffset adapts a constant time.Duration to the Offset capability.
type DurationOffset time.Duration

var _ Offset = DurationOffset(0)

func (d DurationOffset) SubtractFrom(t time.Time) time.Time {
	return t.Add(-time.Duration(d))
}

func (d DurationOffset) AddTo(t time.Time) time.Time {
	return t.Add(time.Duration(d))
}
