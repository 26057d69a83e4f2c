// SPDX-FileCopyrightText: 2025 Jon Thor Kristinsson
// SPDX-License-Identifier: Apache-2.0

// Package iip defines the Idle-time Insertion Policy contract the engine
// consults while exploring. An IIP is a pluggable rule that can forbid
// dispatching a ready job at a given time, deferring it; the engine
// holds a Policy as a plain interface value and never reaches back into
// engine internals from a Policy implementation (no back-pointers).
package iip

import "github.com/jontk/rtsa/model"

// Policy is the contract any Idle-time Insertion Policy must satisfy.
type Policy interface {
	// CanBlock reports whether this policy ever forbids a dispatch. A
	// policy that always returns false for CanBlock lets the engine skip
	// calling LatestStart entirely.
	CanBlock() bool

	// LatestStart returns the latest time job may still start without
	// violating the policy, given a candidate start time ts and a
	// read-only snapshot s of the state the job would be dispatched
	// from. A trivial policy returns model.Inf unconditionally.
	LatestStart(job model.Job, ts model.Time, s View) model.Time
}

// Trivial is the IIP that never blocks a dispatch.
type Trivial struct{}

func (Trivial) CanBlock() bool { return false }

func (Trivial) LatestStart(job model.Job, ts model.Time, s View) model.Time {
	return model.Inf
}
