// SPDX-FileCopyrightText: 2025 Jon Thor Kristinsson
// SPDX-License-Identifier: Apache-2.0

package engine

import "github.com/jontk/rtsa/model"

// nodeLookup maps a node key to every frontier node sharing that key,
// used to find a merge candidate in O(collisions) per successor.
// Multiple distinct scheduled-sets can share a key; callers must still
// confirm scheduled-set equality before merging.
type nodeLookup map[uint64][]*node

func (l nodeLookup) find(key uint64, scheduled model.ScheduledSet) *node {
	for _, candidate := range l[key] {
		if candidate.scheduled.Equal(scheduled) {
			return candidate
		}
	}
	return nil
}

func (l nodeLookup) insert(n *node) {
	l[n.key] = append(l[n.key], n)
}

// scheduleResult describes the outcome of dispatching one job from one
// node/state pair.
type scheduleResult struct {
	target     *node
	finish     model.Interval[model.Time]
	merged     bool // widened an existing state rather than appending
	createdNew bool // target was a brand-new node, not a lookup hit
}

// scheduleJob dispatches j from (n, s): compute the successor's finish range and
// key, then either widen a matching state, append a disjoint state to a
// matching node, or create an entirely new node. lookup is nil in naive
// mode, where every non-skip successor creates a new node (pure tree
// exploration). An abort-skip transition keeps both the scheduled-set
// and the key, so its successor is always the source node itself, in
// naive mode too: spawning a fresh identical node at the same
// depth would re-enqueue the same skip forever.
func scheduleJob(w model.Workload, lookup nodeLookup, n *node, s state, j model.Job, finish model.Interval[model.Time], skipped bool, naive bool) scheduleResult {
	if skipped {
		merged := n.mergeOrAppend(finish, s.earliestPendingRelease)
		return scheduleResult{target: n, finish: finish, merged: merged, createdNew: false}
	}

	newScheduled := n.scheduled.With(j.Index)
	newKey := n.key ^ j.Key
	pending := earliestPendingRelease(w, newScheduled)

	if !naive && lookup != nil {
		if match := lookup.find(newKey, newScheduled); match != nil {
			merged := match.mergeOrAppend(finish, pending)
			return scheduleResult{target: match, finish: finish, merged: merged, createdNew: false}
		}
	}

	created := newSuccessorNode(newScheduled, newKey, finish, pending)
	if debugEnabled {
		debugAssert(created.jobCount() == n.jobCount()+1, "non-skip successor must schedule exactly one job")
	}
	if lookup != nil {
		lookup.insert(created)
	}
	return scheduleResult{target: created, finish: finish, merged: false, createdNew: true}
}
