// Package indexer implements window-boundary computation over an ordered sequence of
// observations. Given the number of observations (and, for time-based windows, their
// monotonic timestamps), an indexer computes, for every observation, the half-open index
// range [start, end) of the observations that participate in its aggregation window.
// Downstream reducers consume these ranges to slice the underlying value sequence; the
// indexers never touch the payload values, only positions and timestamps.
//
// Indexers come in a fixed set of strategies,
//   - fixed - trailing or centered fixed-length windows,
//   - expanding - windows growing from the origin,
//   - forward - fixed-length windows looking forward from the current row,
//   - ewm - a single window spanning the whole sequence, for exponentially
//     weighted aggregations that need the entire history per call,
//   - variable - time/offset-based variable-length windows over an irregularly
//     spaced monotonic index,
//   - groupby - composition of any of the above independently inside each group
//     of a partitioned sequence.
//
// Every indexer is stateless aside from its construction parameters; GetWindowBounds is a
// pure function of its inputs and returns freshly allocated arrays each call, so distinct
// calls are safe to run concurrently.
package indexer
