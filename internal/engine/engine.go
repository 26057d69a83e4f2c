// SPDX-FileCopyrightText: 2025 Jon Thor Kristinsson
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"context"
	"time"

	"github.com/jontk/rtsa/iip"
	"github.com/jontk/rtsa/model"
	"github.com/jontk/rtsa/pkg/logging"
	"github.com/jontk/rtsa/pkg/stats"
)

// Options configures a single Explore run. It mirrors pkg/config.Options
// but is expressed in engine-native types (time.Duration rather than a
// float seconds count) so the engine never depends on the config
// package's env/YAML loading concerns.
type Options struct {
	Naive           bool
	Timeout         time.Duration
	MaxDepth        int
	EarlyExit       bool
	GraphCollection bool
}

// Result is everything Explore produces: the response-time table, the
// verdict flags, and, when GraphCollection is set, the explored graph
// topology. Node/state/edge/front-width counts and CPU time live on the
// stats.Collector the caller supplied to New.
type Result struct {
	ResponseTimes        model.ResponseTimes
	ObservedDeadlineMiss bool
	Aborted              bool
	TimedOut             bool
	Nodes                []GraphNode
	Edges                []GraphEdge
}

// Engine runs the schedule-abstraction state-space exploration over a
// single Workload. It is single-threaded and synchronous: Explore
// performs no suspension other than the context check it makes once per
// processed state.
type Engine struct {
	workload model.Workload
	policy   iip.Policy
	opts     Options
	stats    stats.Collector
	logger   logging.Logger
}

// New builds an Engine. collector and logger must not be nil; callers
// without a real collector/logger should pass stats.NoOpCollector{} and
// logging.NoOpLogger{}.
func New(workload model.Workload, policy iip.Policy, opts Options, collector stats.Collector, logger logging.Logger) *Engine {
	if policy == nil {
		policy = iip.Trivial{}
	}
	return &Engine{workload: workload, policy: policy, opts: opts, stats: collector, logger: logger}
}

// Explore runs the fixed-point exploration loop to completion or
// until aborted by an early deadline-miss exit, a timeout, or a depth
// limit, and returns the accumulated Result.
func (e *Engine) Explore(ctx context.Context) Result {
	start := time.Now()

	rt := model.NewResponseTimes()
	var lookup nodeLookup
	if !e.opts.Naive {
		lookup = make(nodeLookup)
	}

	initial := newInitialNode(e.workload.Len())
	initial.states[0].earliestPendingRelease = earliestPendingRelease(e.workload, initial.scheduled)
	if lookup != nil {
		lookup.insert(initial)
	}
	e.stats.RecordNode()
	e.stats.RecordState()

	fr := newFrontier(initial)

	var res Result
	res.ResponseTimes = rt
	if e.opts.GraphCollection {
		res.Nodes = append(res.Nodes, GraphNode{ID: initial.id, Scheduled: initial.scheduled.Indices(), JobCount: 0})
	}

	currentJobCount := 0
	currentIdx := 0

	numJobs := e.workload.Len()

	for {
		if fr.empty(currentIdx) {
			if fr.allEmpty() {
				break
			}
			currentJobCount++
			currentIdx = currentJobCount % 3
			continue
		}

		e.stats.RecordFrontierWidth(currentJobCount, fr.width(currentIdx))

		n := fr.popFront(currentIdx)

		for _, s := range n.states {
			// The view exists only for policies that can actually
			// block; building it deep-copies the job slice, which the
			// default Trivial policy would never look at.
			var view iip.View
			if e.policy.CanBlock() {
				view = iip.NewView(s.finish, n.scheduled, e.workload.Jobs())
			}
			successors := eligibleSuccessors(e.workload, n.scheduled, s, e.policy, view)

			for _, j := range successors {
				finish, skipped := finishRange(e.workload, n.scheduled, s, j, e.policy, view)

				sr := scheduleJob(e.workload, lookup, n, s, j, finish, skipped, e.opts.Naive)
				e.stats.RecordEdge()

				if sr.createdNew {
					e.stats.RecordNode()
					e.stats.RecordState()
					fr.push(sr.target)
				} else if !sr.merged {
					e.stats.RecordState()
				}

				if !skipped {
					if updateFinishTimes(&rt, j, finish) {
						res.ObservedDeadlineMiss = true
						if e.opts.EarlyExit {
							res.Aborted = true
						}
					}
				}

				if e.opts.GraphCollection {
					if sr.createdNew {
						res.Nodes = append(res.Nodes, GraphNode{ID: sr.target.id, Scheduled: sr.target.scheduled.Indices(), JobCount: sr.target.jobCount()})
					}
					res.Edges = append(res.Edges, GraphEdge{JobID: j.ID, SourceNodeID: n.id, TargetNodeID: sr.target.id, Range: finish})
				}
			}

			if len(successors) == 0 && n.jobCount() < numJobs {
				res.ObservedDeadlineMiss = true
				if e.opts.EarlyExit {
					res.Aborted = true
				}
			}

			// Budgets are checked once per popped state.
			if e.opts.MaxDepth > 0 && n.jobCount() > e.opts.MaxDepth {
				res.Aborted = true
			}
			if e.opts.Timeout > 0 && time.Since(start) > e.opts.Timeout {
				res.Aborted = true
				res.TimedOut = true
			}
			select {
			case <-ctx.Done():
				res.Aborted = true
			default:
			}

			if res.Aborted {
				break
			}
		}

		if res.Aborted {
			break
		}
	}

	res.ResponseTimes = rt
	e.logger.Debug("exploration finished",
		"job_count", currentJobCount,
		"aborted", res.Aborted,
		"timed_out", res.TimedOut,
		"observed_deadline_miss", res.ObservedDeadlineMiss,
	)
	return res
}
