// SPDX-FileCopyrightText: 2025 Jon Thor Kristinsson
// SPDX-License-Identifier: Apache-2.0

package rtsa

import (
	"context"

	"github.com/google/uuid"
	"github.com/jontk/rtsa/internal/engine"
	"github.com/jontk/rtsa/pkg/logging"
)

// Explore validates problem and runs the schedule-abstraction
// state-space exploration engine to completion (or until aborted by an
// early deadline-miss exit, a timeout, or a depth limit), returning the
// resulting Analysis.
//
// Explore returns a *pkg/errors.AnalysisError, and no Analysis, if
// problem's DAG or abort actions reference a job id not present in
// problem.Jobs; it never returns an error once exploration has
// started; infeasibility from that point on is a verdict, not an
// error.
func Explore(problem Problem, opts ...Option) (*Analysis, error) {
	return ExploreContext(context.Background(), problem, opts...)
}

// ExploreContext is Explore with an explicit context, consulted once per
// processed state so a caller can cancel a long-running exploration
// cooperatively.
func ExploreContext(ctx context.Context, problem Problem, opts ...Option) (*Analysis, error) {
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(o)
	}

	workload, err := problem.workload(o.numBuckets)
	if err != nil {
		return nil, err
	}

	ctx = logging.WithRunID(ctx, uuid.NewString())
	logger := logging.LogOperation(o.logger.WithContext(ctx), "explore", "num_jobs", workload.Len())

	eng := engine.New(workload, o.policy, engine.Options{
		Naive:           o.naive,
		Timeout:         o.timeout,
		MaxDepth:        o.maxDepth,
		EarlyExit:       o.earlyExit,
		GraphCollection: o.graphCollection,
	}, o.collector, logger)

	result := eng.Explore(ctx)

	return &Analysis{
		responseTimes:        result.ResponseTimes,
		aborted:              result.Aborted,
		timedOut:             result.TimedOut,
		observedDeadlineMiss: result.ObservedDeadlineMiss,
		nodes:                result.Nodes,
		edges:                result.Edges,
		stats:                o.collector.Snapshot(),
	}, nil
}
