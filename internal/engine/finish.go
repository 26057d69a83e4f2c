// SPDX-FileCopyrightText: 2025 Jon Thor Kristinsson
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"github.com/jontk/rtsa/iip"
	"github.com/jontk/rtsa/model"
)

// nextEligibleJobReady returns the earliest latest-arrival time among
// not-yet-scheduled, ready, priority-and-IIP-eligible jobs evaluated at
// their own latest arrival: the earliest moment the processor is
// forced to start some job. The by-latest-arrival index is sorted
// ascending, so the first eligible entry is the minimum. It returns
// model.Inf if no such job exists.
func nextEligibleJobReady(w model.Workload, scheduled model.ScheduledSet, policy iip.Policy, view iip.View) model.Time {
	for _, idx := range w.ByLatestArrival() {
		k := w.Job(idx)
		if !notComplete(scheduled, k) || !predecessorsReady(scheduled, k) {
			continue
		}
		ts := k.Arrival.Upto
		if !priorityEligible(w, scheduled, k, ts) {
			continue
		}
		if !iipEligible(policy, k, ts, view) {
			continue
		}
		return ts
	}
	return model.Inf
}

// earliestPendingRelease returns the earliest possible release among
// jobs not yet in scheduled, or model.Inf when none remain. The
// by-earliest-arrival index makes this the first incomplete entry.
func earliestPendingRelease(w model.Workload, scheduled model.ScheduledSet) model.Time {
	for _, idx := range w.ByEarliestArrival() {
		if !scheduled.Contains(idx) {
			return w.Job(idx).Arrival.From
		}
	}
	return model.Inf
}

// otherCertainRelease returns the earliest latest-arrival among
// incomplete, ready jobs with strictly higher priority than j (excluding
// j itself), walking the ascending by-latest-arrival index so the first
// match is the minimum. A job whose predecessors are not all scheduled
// cannot start before they finish, so it does not bound j's start. It
// returns model.Inf if none exist.
func otherCertainRelease(w model.Workload, scheduled model.ScheduledSet, j model.Job) model.Time {
	for _, idx := range w.ByLatestArrival() {
		if idx == j.Index {
			continue
		}
		k := w.Job(idx)
		if !notComplete(scheduled, k) || !predecessorsReady(scheduled, k) {
			continue
		}
		if k.Priority < j.Priority {
			return k.Arrival.Upto
		}
	}
	return model.Inf
}

// finishRange computes the successor finish-time interval for
// dispatching j from state s with scheduled-set scheduled.
// skipped reports whether j's abort action fired and the dispatch was
// skipped entirely (in which case the caller must not add j to the
// scheduled-set).
func finishRange(w model.Workload, scheduled model.ScheduledSet, s state, j model.Job, policy iip.Policy, view iip.View) (rng model.Interval[model.Time], skipped bool) {
	if j.Abort != nil && s.finish.From >= j.Abort.Trigger.From {
		return s.finish, true
	}

	ts := model.Max(s.finish.From, j.Arrival.From)
	eft := model.Add(ts, j.Cost.From)

	tL := model.Max(s.finish.Upto, nextEligibleJobReady(w, scheduled, policy, view))
	tR := otherCertainRelease(w, scheduled, j)
	tI := model.Inf
	if policy.CanBlock() {
		tI = policy.LatestStart(j, ts, view)
	}

	lft := model.Min(tL, model.Min(model.Sub(tR, model.Epsilon), tI))
	lft = model.Add(lft, j.Cost.Upto)

	if j.Abort != nil {
		eft = model.Min(eft, j.Abort.EarliestCompletion())
		lft = model.Min(lft, j.Abort.LatestCompletion())
	}

	return model.Interval[model.Time]{From: eft, Upto: lft}, false
}
