// SPDX-FileCopyrightText: 2025 Jon Thor Kristinsson
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"github.com/google/uuid"
	"github.com/jontk/rtsa/model"
)

// node is the merge unit: a group of states sharing the same scheduled
// set and key. Nodes are appended to the frontier and never
// mutated except to widen an existing state's finish interval or append
// a new disjoint state.
type node struct {
	// id is a stable handle assigned once at node creation, used as the
	// node identity that graph edges reference when graph collection is
	// enabled.
	id string

	scheduled model.ScheduledSet
	key       uint64
	states    []state
}

// newInitialNode returns the empty node with a single state whose finish
// interval is [0,0].
func newInitialNode(numJobs int) *node {
	return &node{
		id:        uuid.NewString(),
		scheduled: model.NewScheduledSet(numJobs),
		key:       0,
		states:    []state{{finish: model.Interval[model.Time]{From: 0, Upto: 0}}},
	}
}

// newSuccessorNode returns a fresh node for a successor that did not
// merge into any existing node, with a single state whose finish
// interval is the just-computed finish range, never [0,0], which is
// reserved for the initial node.
func newSuccessorNode(scheduled model.ScheduledSet, key uint64, finish model.Interval[model.Time], earliestPendingRelease model.Time) *node {
	return &node{
		id:        uuid.NewString(),
		scheduled: scheduled,
		key:       key,
		states:    []state{{finish: finish, earliestPendingRelease: earliestPendingRelease}},
	}
}

// mergeOrAppend looks for a state in n whose finish interval intersects
// finish; if found, widens it in place. Otherwise appends a new disjoint
// state. Returns whether an existing state was widened (true) or a new
// one was appended (false).
func (n *node) mergeOrAppend(finish model.Interval[model.Time], earliestPendingRelease model.Time) bool {
	for i := range n.states {
		if n.states[i].finish.Intersects(finish) {
			n.states[i] = n.states[i].widen(finish)
			n.coalesce(i)
			if debugEnabled {
				debugAssert(n.statesDisjoint(), "node states must stay pairwise disjoint")
			}
			return true
		}
	}
	n.states = append(n.states, state{finish: finish, earliestPendingRelease: earliestPendingRelease})
	return false
}

// coalesce folds back into the just-widened state at index i any other
// state its interval now overlaps, so the node's states stay pairwise
// disjoint after a merge.
func (n *node) coalesce(i int) {
	for j := 0; j < len(n.states); {
		if j == i {
			j++
			continue
		}
		if !n.states[i].finish.Intersects(n.states[j].finish) {
			j++
			continue
		}
		n.states[i] = n.states[i].widen(n.states[j].finish)
		last := len(n.states) - 1
		n.states[j] = n.states[last]
		n.states = n.states[:last]
		if i == last {
			i = j
		}
	}
}

// statesDisjoint reports whether no two states in n intersect.
func (n *node) statesDisjoint() bool {
	for i := 0; i < len(n.states); i++ {
		for j := i + 1; j < len(n.states); j++ {
			if n.states[i].finish.Intersects(n.states[j].finish) {
				return false
			}
		}
	}
	return true
}

// jobCount returns the number of jobs scheduled along the path to n.
func (n *node) jobCount() int { return n.scheduled.Len() }
