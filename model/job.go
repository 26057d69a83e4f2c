// SPDX-FileCopyrightText: 2025 Jon Thor Kristinsson
// SPDX-License-Identifier: Apache-2.0

package model

import "github.com/josharian/intern"

// Job is an immutable descriptor of a unit of work with uncertain
// arrival and execution duration. Jobs are built once by NewWorkload and
// never mutated afterward; the engine only ever reads them.
type Job struct {
	// ID is the job's stable identity, interned so that large workloads
	// with many repeated-looking ids (job arrays, generated fixtures)
	// share one backing string.
	ID string

	// Index is this job's 0-based ordinal within its Workload; it is the
	// bit position used in ScheduledSet.
	Index int

	Arrival  Interval[Time]
	Cost     Interval[Time]
	Priority Time // lower value = higher priority
	Deadline Time

	// Key is this job's pre-computed hash contribution, XORed into a
	// node's key as the job is added to a scheduled-set.
	Key uint64

	// Predecessors holds the indices of jobs that must be scheduled
	// before this one may be dispatched.
	Predecessors ScheduledSet

	// Abort is this job's optional abort action.
	Abort *AbortAction
}

// SchedulingWindow returns [earliest_arrival, deadline], the window used
// to bucket this job in a Workload's lookup table.
func (j Job) SchedulingWindow() Interval[Time] {
	return Interval[Time]{From: j.Arrival.From, Upto: j.Deadline}
}

// internID interns a job id string so repeated ids across a large
// workload's index structures share one allocation.
func internID(id string) string {
	return intern.String(id)
}

// AbortAction models a rule that, past its earliest trigger time, either
// completes a job via a cleanup cost or skips it entirely. JobID names
// the job it applies to; NewWorkload resolves it and rejects unknown
// targets before any exploration begins.
type AbortAction struct {
	JobID string

	// Trigger is the interval during which the abort may fire; its From
	// value is the earliest trigger time used by the engine's skip rule.
	Trigger Interval[Time]

	// Cleanup is the abort's cleanup cost interval, added to Trigger to
	// obtain the abort-completion interval.
	Cleanup Interval[Time]
}

// EarliestCompletion returns the earliest time the abort's cleanup can
// finish once triggered.
func (a AbortAction) EarliestCompletion() Time {
	return Add(a.Trigger.From, a.Cleanup.From)
}

// LatestCompletion returns the latest time the abort's cleanup can
// finish once triggered.
func (a AbortAction) LatestCompletion() Time {
	return Add(a.Trigger.Upto, a.Cleanup.Upto)
}

// Edge names a precedence relationship: Predecessor must be scheduled
// before Successor may be dispatched.
type Edge struct {
	Predecessor string
	Successor   string
}
