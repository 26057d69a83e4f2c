// SPDX-FileCopyrightText: 2025 Jon Thor Kristinsson
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"github.com/jontk/rtsa/iip"
	"github.com/jontk/rtsa/model"
)

// notComplete reports rule 1: j has not already been dispatched along
// this path.
func notComplete(scheduled model.ScheduledSet, j model.Job) bool {
	return !scheduled.Contains(j.Index)
}

// predecessorsReady reports rule 2: every job j depends on has already
// been dispatched.
func predecessorsReady(scheduled model.ScheduledSet, j model.Job) bool {
	return scheduled.Includes(j.Predecessors)
}

// priorityEligible reports rule 3: no other incomplete, ready,
// higher-priority job is certainly released (latest_arrival <= ts) by
// ts.
func priorityEligible(w model.Workload, scheduled model.ScheduledSet, j model.Job, ts model.Time) bool {
	for _, k := range w.Jobs() {
		if k.Index == j.Index {
			continue
		}
		if !notComplete(scheduled, k) || !predecessorsReady(scheduled, k) {
			continue
		}
		if k.Priority < j.Priority && k.Arrival.Upto <= ts {
			return false
		}
	}
	return true
}

// iipEligible reports rule 5: the policy either never blocks, or
// permits starting j no later than ts.
func iipEligible(policy iip.Policy, j model.Job, ts model.Time, view iip.View) bool {
	if !policy.CanBlock() {
		return true
	}
	return ts <= policy.LatestStart(j, ts, view)
}

// potentiallyNext reports rule 4: if the state's finish interval ends
// before j could possibly arrive, no other incomplete, IIP-eligible job
// k is guaranteed to be released strictly before j. Otherwise trivially
// true (the processor may already be busy past j's own arrival).
func potentiallyNext(w model.Workload, scheduled model.ScheduledSet, s state, j model.Job, policy iip.Policy, view iip.View) bool {
	if s.finish.Upto >= j.Arrival.From {
		return true
	}
	for _, k := range w.Jobs() {
		if k.Index == j.Index {
			continue
		}
		if !notComplete(scheduled, k) {
			continue
		}
		kts := model.Max(s.finish.From, k.Arrival.From)
		if !iipEligible(policy, k, kts, view) {
			continue
		}
		if k.Arrival.Upto < j.Arrival.From {
			return false
		}
	}
	return true
}

// isEligibleSuccessor applies all five eligibility rules to decide whether j
// may be dispatched from state s with scheduled-set scheduled.
func isEligibleSuccessor(w model.Workload, scheduled model.ScheduledSet, s state, j model.Job, policy iip.Policy, view iip.View) bool {
	if !notComplete(scheduled, j) {
		return false
	}
	if !predecessorsReady(scheduled, j) {
		return false
	}
	ts := model.Max(s.finish.From, j.Arrival.From)
	if !priorityEligible(w, scheduled, j, ts) {
		return false
	}
	if !potentiallyNext(w, scheduled, s, j, policy, view) {
		return false
	}
	if !iipEligible(policy, j, ts, view) {
		return false
	}
	return true
}

// eligibleSuccessors returns every job eligible to be dispatched from s
// given scheduled, in workload index order.
func eligibleSuccessors(w model.Workload, scheduled model.ScheduledSet, s state, policy iip.Policy, view iip.View) []model.Job {
	var out []model.Job
	for _, j := range w.Jobs() {
		if isEligibleSuccessor(w, scheduled, s, j, policy, view) {
			out = append(out, j)
		}
	}
	return out
}
