// SPDX-FileCopyrightText: 2025 Jon Thor Kristinsson
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"sort"

	"github.com/jontk/rtsa/pkg/errors"
)

// DefaultNumBuckets is the default bucket count for a Workload's
// scheduling-window lookup table.
const DefaultNumBuckets = 1000

// Workload is the validated, indexed set of jobs an exploration runs
// against. It is built once via NewWorkload and never mutated; its index
// structures (by-earliest-arrival, by-latest-arrival, by-deadline, and
// the bucketed window table) are computed eagerly so the engine's hot
// loop never re-sorts or re-scans.
type Workload struct {
	jobs []Job

	byID map[string]int

	byEarliestArrival []int
	byLatestArrival   []int
	byDeadline        []int

	buckets    [][]int
	numBuckets int
	maxTime    Time
}

// NewWorkload validates and indexes jobs, returning an
// *pkg/errors.AnalysisError wrapping ErrInvalidPrecedence or
// ErrInvalidAbortTarget if dag or abort actions reference job ids not
// present in jobs. No analysis may be produced from an invalid workload.
func NewWorkload(jobs []Job, dag []Edge, aborts []AbortAction, numBuckets int) (Workload, error) {
	if numBuckets <= 0 {
		numBuckets = DefaultNumBuckets
	}

	byID := make(map[string]int, len(jobs))
	out := make([]Job, len(jobs))
	var maxTime Time
	for i, j := range jobs {
		j.ID = internID(j.ID)
		j.Index = i
		out[i] = j
		byID[j.ID] = i
		if j.Deadline > maxTime {
			maxTime = j.Deadline
		}
	}

	for i := range out {
		out[i].Predecessors = NewScheduledSet(len(out))
	}

	for _, e := range dag {
		predIdx, ok := byID[e.Predecessor]
		if !ok {
			return Workload{}, errors.InvalidPrecedence(e.Predecessor, e.Successor)
		}
		succIdx, ok := byID[e.Successor]
		if !ok {
			return Workload{}, errors.InvalidPrecedence(e.Predecessor, e.Successor)
		}
		out[succIdx].Predecessors = out[succIdx].Predecessors.With(predIdx)
	}

	for _, a := range aborts {
		idx, ok := byID[internID(a.JobID)]
		if !ok {
			return Workload{}, errors.InvalidAbortTarget(a.JobID)
		}
		abort := a
		out[idx].Abort = &abort
	}

	w := Workload{
		jobs:       out,
		byID:       byID,
		numBuckets: numBuckets,
		maxTime:    maxTime,
	}
	w.buildIndices()
	return w, nil
}

func (w *Workload) buildIndices() {
	n := len(w.jobs)
	w.byEarliestArrival = sortedIndicesBy(n, func(i int) Time { return w.jobs[i].Arrival.From })
	w.byLatestArrival = sortedIndicesBy(n, func(i int) Time { return w.jobs[i].Arrival.Upto })
	w.byDeadline = sortedIndicesBy(n, func(i int) Time { return w.jobs[i].Deadline })

	w.buckets = make([][]int, w.numBuckets)
	if w.maxTime <= 0 || n == 0 {
		for i := range w.jobs {
			w.buckets[0] = append(w.buckets[0], i)
		}
		return
	}
	span := float64(w.maxTime) / float64(w.numBuckets)
	if span <= 0 {
		span = 1
	}
	for i, j := range w.jobs {
		win := j.SchedulingWindow()
		fromBucket := int(float64(win.From) / span)
		uptoBucket := int(float64(win.Upto) / span)
		if fromBucket < 0 {
			fromBucket = 0
		}
		if uptoBucket >= w.numBuckets {
			uptoBucket = w.numBuckets - 1
		}
		for b := fromBucket; b <= uptoBucket && b < w.numBuckets; b++ {
			w.buckets[b] = append(w.buckets[b], i)
		}
	}
}

func sortedIndicesBy(n int, key func(int) Time) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return key(idx[a]) < key(idx[b]) })
	return idx
}

// Jobs returns the workload's jobs in index order.
func (w Workload) Jobs() []Job { return w.jobs }

// Len returns the number of jobs in the workload.
func (w Workload) Len() int { return len(w.jobs) }

// Job returns the job at the given index.
func (w Workload) Job(index int) Job { return w.jobs[index] }

// JobByID returns the job with the given id and whether it was found.
func (w Workload) JobByID(id string) (Job, bool) {
	idx, ok := w.byID[id]
	if !ok {
		return Job{}, false
	}
	return w.jobs[idx], true
}

// ByEarliestArrival returns job indices sorted ascending by Arrival.From.
func (w Workload) ByEarliestArrival() []int { return w.byEarliestArrival }

// ByLatestArrival returns job indices sorted ascending by Arrival.Upto.
func (w Workload) ByLatestArrival() []int { return w.byLatestArrival }

// ByDeadline returns job indices sorted ascending by Deadline.
func (w Workload) ByDeadline() []int { return w.byDeadline }

// Lookup returns the indices of jobs whose SchedulingWindow intersects t,
// via the bucketed interval table in O(1+k).
func (w Workload) Lookup(t Time) []int {
	if len(w.buckets) == 0 {
		return nil
	}
	span := float64(w.maxTime) / float64(w.numBuckets)
	if span <= 0 {
		span = 1
	}
	b := int(float64(t) / span)
	if b < 0 {
		b = 0
	}
	if b >= w.numBuckets {
		b = w.numBuckets - 1
	}
	candidates := w.buckets[b]
	out := make([]int, 0, len(candidates))
	for _, idx := range candidates {
		if w.jobs[idx].SchedulingWindow().Contains(t) {
			out = append(out, idx)
		}
	}
	return out
}
