// SPDX-FileCopyrightText: 2025 Jon Thor Kristinsson
// SPDX-License-Identifier: Apache-2.0

package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/jontk/rtsa/internal/engine"
	"github.com/jontk/rtsa/iip"
	"github.com/jontk/rtsa/model"
	"github.com/jontk/rtsa/pkg/logging"
	"github.com/jontk/rtsa/pkg/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func job(t *testing.T, id string, arrFrom, arrUpto, costFrom, costUpto, priority, deadline model.Time) model.Job {
	t.Helper()
	return model.NewJobBuilder(id).
		WithArrival(arrFrom, arrUpto).
		WithCost(costFrom, costUpto).
		WithPriority(priority).
		WithDeadline(deadline).
		MustBuild()
}

func explore(t *testing.T, jobs []model.Job, dag []model.Edge, aborts []model.AbortAction, opts engine.Options) (engine.Result, *stats.InMemoryCollector) {
	t.Helper()
	w, err := model.NewWorkload(jobs, dag, aborts, 0)
	require.NoError(t, err)

	collector := stats.NewInMemoryCollector()
	eng := engine.New(w, iip.Trivial{}, opts, collector, logging.NoOpLogger{})
	res := eng.Explore(context.Background())
	return res, collector
}

func TestS1TrivialFeasible(t *testing.T) {
	jobs := []model.Job{job(t, "J1", 0, 0, 1, 1, 1, 10)}
	res, collector := explore(t, jobs, nil, nil, engine.Options{EarlyExit: true})

	assert.False(t, res.ObservedDeadlineMiss)
	assert.False(t, res.Aborted)

	rt, ok := res.ResponseTimes.Get("J1")
	require.True(t, ok)
	assert.Equal(t, model.Interval[model.Time]{From: 1, Upto: 1}, rt)

	snap := collector.Snapshot()
	assert.Equal(t, int64(2), snap.NodesCreated)
	assert.Equal(t, int64(1), snap.EdgesProcessed)
}

func TestS2PreemptionFreeContention(t *testing.T) {
	jobs := []model.Job{
		job(t, "J1", 0, 0, 2, 2, 1, 5),
		job(t, "J2", 0, 0, 2, 2, 2, 5),
	}
	res, _ := explore(t, jobs, nil, nil, engine.Options{EarlyExit: true})

	assert.False(t, res.ObservedDeadlineMiss)

	rt1, _ := res.ResponseTimes.Get("J1")
	rt2, _ := res.ResponseTimes.Get("J2")
	assert.Equal(t, model.Interval[model.Time]{From: 2, Upto: 2}, rt1)
	assert.Equal(t, model.Interval[model.Time]{From: 4, Upto: 4}, rt2)
}

func TestS3CostUncertainty(t *testing.T) {
	jobs := []model.Job{
		job(t, "J1", 0, 0, 1, 3, 1, 10),
		job(t, "J2", 0, 2, 1, 2, 2, 10),
	}
	res, _ := explore(t, jobs, nil, nil, engine.Options{EarlyExit: true})

	assert.False(t, res.ObservedDeadlineMiss)

	rt1, _ := res.ResponseTimes.Get("J1")
	rt2, _ := res.ResponseTimes.Get("J2")
	assert.Equal(t, model.Interval[model.Time]{From: 1, Upto: 3}, rt1)
	assert.Equal(t, model.Time(5), rt2.Upto)
}

func TestS4DeadlineMiss(t *testing.T) {
	jobs := []model.Job{job(t, "J1", 0, 0, 5, 5, 1, 4)}
	res, collector := explore(t, jobs, nil, nil, engine.Options{EarlyExit: true})

	assert.True(t, res.ObservedDeadlineMiss)
	assert.True(t, res.Aborted)

	snap := collector.Snapshot()
	assert.LessOrEqual(t, snap.NodesCreated, int64(2))
}

func TestS5PrecedenceBlocksPriority(t *testing.T) {
	jobs := []model.Job{
		job(t, "J1", 0, 0, 1, 1, 2, 5),
		job(t, "J2", 0, 0, 1, 1, 1, 5),
	}
	dag := []model.Edge{{Predecessor: "J1", Successor: "J2"}}
	res, _ := explore(t, jobs, dag, nil, engine.Options{EarlyExit: true})

	assert.False(t, res.ObservedDeadlineMiss)

	rt1, _ := res.ResponseTimes.Get("J1")
	rt2, _ := res.ResponseTimes.Get("J2")
	assert.Equal(t, model.Interval[model.Time]{From: 1, Upto: 1}, rt1)
	assert.Equal(t, model.Interval[model.Time]{From: 2, Upto: 2}, rt2)
}

func TestS6MergeEffectiveness(t *testing.T) {
	jobs := []model.Job{
		job(t, "J1", 0, 0, 1, 1, 1, 10),
		job(t, "J2", 0, 0, 1, 1, 1, 10),
		job(t, "J3", 0, 0, 1, 1, 2, 10),
	}

	naiveRes, naiveStats := explore(t, jobs, nil, nil, engine.Options{Naive: true, EarlyExit: true})
	mergedRes, _ := explore(t, jobs, nil, nil, engine.Options{EarlyExit: true})

	assert.Equal(t, naiveRes.ObservedDeadlineMiss, mergedRes.ObservedDeadlineMiss)
	assert.GreaterOrEqual(t, naiveStats.Snapshot().NodesCreated, int64(3))
}

func TestSingleJobBoundary(t *testing.T) {
	jobs := []model.Job{job(t, "J1", 0, 0, 3, 3, 1, 3)}
	res, _ := explore(t, jobs, nil, nil, engine.Options{EarlyExit: true})

	assert.False(t, res.ObservedDeadlineMiss)
	rt, _ := res.ResponseTimes.Get("J1")
	assert.Equal(t, model.Interval[model.Time]{From: 3, Upto: 3}, rt)
}

func TestTwoJobsSamePriorityExploresBothOrders(t *testing.T) {
	jobs := []model.Job{
		job(t, "J1", 0, 0, 1, 1, 1, 1),
		job(t, "J2", 0, 0, 1, 1, 1, 10),
	}
	res, _ := explore(t, jobs, nil, nil, engine.Options{EarlyExit: false})

	assert.True(t, res.ObservedDeadlineMiss)
}

func TestDeadlineBeforeEarliestFinishIsImmediatelyUnschedulable(t *testing.T) {
	jobs := []model.Job{job(t, "J1", 5, 5, 2, 2, 1, 6)}
	res, _ := explore(t, jobs, nil, nil, engine.Options{EarlyExit: true})

	assert.True(t, res.ObservedDeadlineMiss)
}

// blockingPolicy forbids any start later than latest, regardless of the
// job or state it is asked about.
type blockingPolicy struct{ latest model.Time }

func (p blockingPolicy) CanBlock() bool { return true }

func (p blockingPolicy) LatestStart(job model.Job, ts model.Time, v iip.View) model.Time {
	return p.latest
}

func TestBlockingIIPTurnsReadyJobIntoDeadEnd(t *testing.T) {
	jobs := []model.Job{job(t, "J1", 2, 4, 1, 1, 1, 10)}
	w, err := model.NewWorkload(jobs, nil, nil, 0)
	require.NoError(t, err)

	eng := engine.New(w, blockingPolicy{latest: 1}, engine.Options{EarlyExit: true}, stats.NewInMemoryCollector(), logging.NoOpLogger{})
	res := eng.Explore(context.Background())

	// J1 can start no earlier than 2, past the policy's latest permitted
	// start of 1, so the initial state has no eligible successor: a
	// dead-end, reported as a deadline miss.
	assert.True(t, res.ObservedDeadlineMiss)
	assert.True(t, res.Aborted)
}

func TestPermissiveIIPMatchesTrivial(t *testing.T) {
	jobs := []model.Job{
		job(t, "J1", 0, 0, 2, 2, 1, 5),
		job(t, "J2", 0, 0, 2, 2, 2, 5),
	}
	w, err := model.NewWorkload(jobs, nil, nil, 0)
	require.NoError(t, err)

	eng := engine.New(w, blockingPolicy{latest: model.Inf}, engine.Options{EarlyExit: true}, stats.NewInMemoryCollector(), logging.NoOpLogger{})
	res := eng.Explore(context.Background())

	assert.False(t, res.ObservedDeadlineMiss)
	rt2, ok := res.ResponseTimes.Get("J2")
	require.True(t, ok)
	assert.Equal(t, model.Interval[model.Time]{From: 4, Upto: 4}, rt2)
}

// A skip transition keeps the scheduled-set, so in naive mode it must
// resolve onto the source node rather than spawning a fresh identical
// node at the same depth, which would re-enqueue forever.
func TestNaiveAbortSkipTerminates(t *testing.T) {
	j1 := model.NewJobBuilder("J1").
		WithArrival(0, 0).WithCost(1, 1).WithPriority(1).WithDeadline(10).
		WithAbort(model.Interval[model.Time]{From: 0, Upto: 0}, model.Interval[model.Time]{From: 1, Upto: 1}).
		MustBuild()
	j2 := model.NewJobBuilder("J2").
		WithArrival(0, 0).WithCost(1, 1).WithPriority(2).WithDeadline(10).
		MustBuild()

	res, collector := explore(t, []model.Job{j1, j2}, nil, nil, engine.Options{Naive: true, EarlyExit: true})

	assert.False(t, res.Aborted)
	assert.Equal(t, int64(1), collector.Snapshot().NodesCreated)
}

func TestTimeoutAbortsAndMarksNotSchedulable(t *testing.T) {
	jobs := make([]model.Job, 0, 12)
	for i := 0; i < 12; i++ {
		jobs = append(jobs, job(t, string(rune('A'+i)), 0, model.Time(i), 1, 3, model.Time(i%3), 100))
	}
	res, _ := explore(t, jobs, nil, nil, engine.Options{EarlyExit: false, Timeout: time.Nanosecond})

	assert.True(t, res.TimedOut)
	assert.True(t, res.Aborted)
}
