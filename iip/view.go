// SPDX-FileCopyrightText: 2025 Jon Thor Kristinsson
// SPDX-License-Identifier: Apache-2.0

package iip

import (
	"github.com/jontk/rtsa/model"
	"github.com/mohae/deepcopy"
)

// View is the read-only snapshot of a schedule state and its job set
// that the engine hands to a Policy. It carries no reference back to
// engine internals.
type View interface {
	// Finish returns the state's current finish-time interval.
	Finish() model.Interval[model.Time]

	// Scheduled returns the state's scheduled-set.
	Scheduled() model.ScheduledSet

	// ScheduledJobs returns the jobs already dispatched along the path
	// to this state, in workload index order.
	ScheduledJobs() []model.Job
}

// snapshotView is the engine's concrete View implementation. allJobs is
// deep-copied once per construction so a Policy implementation can never
// observe or be affected by the engine's own mutation of its live job
// slice (the engine never mutates jobs, but the copy makes that
// guarantee independent of that fact holding forever). deepcopy.Copy
// skips unexported fields, which would leave each copied Job's
// Predecessors empty, so NewView reassigns Predecessors from the source
// jobs: the ScheduledSet backing array is shared rather than duplicated;
// that's fine here because ScheduledSet is never mutated in place after
// construction, only replaced via With.
type snapshotView struct {
	finish    model.Interval[model.Time]
	scheduled model.ScheduledSet
	allJobs   []model.Job
}

// NewView builds a View over finish/scheduled for the given job set.
// allJobs is deep-copied so the returned View's ScheduledJobs slice is
// immutable from the caller's perspective even if the original slice is
// later reused.
func NewView(finish model.Interval[model.Time], scheduled model.ScheduledSet, allJobs []model.Job) View {
	var copied []model.Job
	if allJobs != nil {
		copied = deepcopy.Copy(allJobs).([]model.Job)
		for i := range copied {
			copied[i].Predecessors = allJobs[i].Predecessors
		}
	}
	return &snapshotView{finish: finish, scheduled: scheduled, allJobs: copied}
}

func (v *snapshotView) Finish() model.Interval[model.Time] { return v.finish }

func (v *snapshotView) Scheduled() model.ScheduledSet { return v.scheduled }

func (v *snapshotView) ScheduledJobs() []model.Job {
	out := make([]model.Job, 0, v.scheduled.Len())
	for _, idx := range v.scheduled.Indices() {
		if idx < len(v.allJobs) {
			out = append(out, v.allJobs[idx])
		}
	}
	return out
}
