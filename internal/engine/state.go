// SPDX-FileCopyrightText: 2025 Jon Thor Kristinsson
// SPDX-License-Identifier: Apache-2.0

// Package engine implements the schedule-abstraction state-space
// exploration loop: eligibility rules, finish-time derivation, node
// merging, and the three-queue frontier. It is internal because the
// rtsa package is the only supported way to invoke it.
package engine

import "github.com/jontk/rtsa/model"

// state is the abstraction of "all concrete schedules that have
// dispatched a specific set of jobs and whose processor finish time
// lies in an interval". It never stores the scheduled-set; that lives
// on the enclosing node.
type state struct {
	finish model.Interval[model.Time]

	// earliestPendingRelease caches the earliest possible release
	// (earliest arrival) among not-yet-scheduled jobs, refreshed
	// whenever a successor is produced.
	earliestPendingRelease model.Time
}

// widen returns a state whose finish interval is the union of s's and
// other's, per the node invariant that finish_time may only widen.
func (s state) widen(other model.Interval[model.Time]) state {
	return state{
		finish:                 s.finish.Widen(other),
		earliestPendingRelease: s.earliestPendingRelease,
	}
}
