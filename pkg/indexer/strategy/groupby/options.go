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

package groupby

import (
	"time"

	"go.uber.org/zap"
)

type Options struct {
	// index is the global monotonic index of the sequence being rolled over,
	// gathered per group before building the inner indexer.
	index []time.Time
	// windowSize overrides the inner indexer factory's default window size.
	windowSize int
	// logger used for composition debug logging.
	logger *zap.SugaredLogger
}

func DefaultOptions() *Options {
	return &Options{}
}

type Option func(options *Options) error

// WithIndex sets the global monotonic index to gather per-group slices from
func WithIndex(index []time.Time) Option {
	return func(o *Options) error {
		o.index = index
		return nil
	}
}

// WithWindowSize overrides the window size handed to the inner indexer factory
func WithWindowSize(windowSize int) Option {
	return func(o *Options) error {
		o.windowSize = windowSize
		return nil
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(o *Options) error {
		o.logger = logger
		return nil
	}
}
