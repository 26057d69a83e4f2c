// SPDX-FileCopyrightText: 2025 Jon Thor Kristinsson
// SPDX-License-Identifier: Apache-2.0

package rtsa

import (
	"time"

	"github.com/jontk/rtsa/iip"
	"github.com/jontk/rtsa/pkg/config"
	"github.com/jontk/rtsa/pkg/logging"
	"github.com/jontk/rtsa/pkg/stats"
)

// Option configures a single Explore run, mirroring client_options.go's
// functional-options pattern. Unlike that pattern, an Option here never
// fails to apply, so it is a plain func rather than a func returning
// error.
type Option func(*engineOptions)

type engineOptions struct {
	naive           bool
	timeout         time.Duration
	maxDepth        int
	numBuckets      int
	earlyExit       bool
	graphCollection bool
	policy          iip.Policy
	logger          logging.Logger
	collector       stats.Collector
}

func defaultEngineOptions() *engineOptions {
	o := &engineOptions{
		policy:    iip.Trivial{},
		logger:    logging.NoOpLogger{},
		collector: stats.NewInMemoryCollector(),
	}
	WithConfig(config.Defaults())(o)
	return o
}

// WithConfig applies a config.Options bundle, e.g. one built from
// config.Defaults plus LoadEnv or LoadYAML, onto this run. WithX
// options applied after it still override individual fields.
func WithConfig(cfg *config.Options) Option {
	return func(o *engineOptions) {
		if cfg == nil {
			return
		}
		o.naive = cfg.Naive
		o.timeout = cfg.Timeout()
		o.maxDepth = cfg.MaxDepth
		o.numBuckets = cfg.NumBuckets
		o.earlyExit = cfg.EarlyExit
		o.graphCollection = cfg.GraphCollection
	}
}

// WithNaive disables state merging, exploring the full schedule tree.
// Useful as a reference oracle on small workloads.
func WithNaive() Option {
	return func(o *engineOptions) { o.naive = true }
}

// WithTimeout bounds wall-clock exploration time. Zero (the default)
// means no limit.
func WithTimeout(d time.Duration) Option {
	return func(o *engineOptions) { o.timeout = d }
}

// WithMaxDepth bounds the number of scheduled jobs along any explored
// path. Zero (the default) means no limit.
func WithMaxDepth(n uint32) Option {
	return func(o *engineOptions) { o.maxDepth = int(n) }
}

// WithNumBuckets sets the bucket count for the workload's
// scheduling-window lookup table. Zero means
// model.DefaultNumBuckets.
func WithNumBuckets(n int) Option {
	return func(o *engineOptions) { o.numBuckets = n }
}

// WithEarlyExit controls whether exploration halts immediately upon the
// first observed deadline miss. Defaults to true.
func WithEarlyExit(enabled bool) Option {
	return func(o *engineOptions) { o.earlyExit = enabled }
}

// WithGraphCollection retains the explored node/edge graph on the
// resulting Analysis, for an external collaborator to render (e.g. as
// DOT). Defaults to false.
func WithGraphCollection(enabled bool) Option {
	return func(o *engineOptions) { o.graphCollection = enabled }
}

// WithIIP installs an Idle-time Insertion Policy. Defaults to
// iip.Trivial{}, which never blocks a dispatch.
func WithIIP(policy iip.Policy) Option {
	return func(o *engineOptions) { o.policy = policy }
}

// WithLogger installs a structured logger for the engine to emit
// exploration progress through. Defaults to a no-op logger.
func WithLogger(logger logging.Logger) Option {
	return func(o *engineOptions) { o.logger = logger }
}

// WithStats installs a statistics collector for the engine to report
// node/state/edge/front-width counts to. Defaults to a fresh
// stats.InMemoryCollector per call.
func WithStats(collector stats.Collector) Option {
	return func(o *engineOptions) { o.collector = collector }
}
