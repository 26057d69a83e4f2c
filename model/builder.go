// SPDX-FileCopyrightText: 2025 Jon Thor Kristinsson
// SPDX-License-Identifier: Apache-2.0

package model

import "fmt"

// JobBuilder provides a fluent interface for building Job values,
// accumulating validation errors instead of failing on the first bad
// call so callers can chain freely and check once at Build.
type JobBuilder struct {
	job    Job
	errors []error
}

// NewJobBuilder starts a JobBuilder for the job with the given id.
func NewJobBuilder(id string) *JobBuilder {
	return &JobBuilder{job: Job{ID: id}}
}

// WithArrival sets the job's arrival interval.
func (b *JobBuilder) WithArrival(from, upto Time) *JobBuilder {
	if from > upto {
		b.addError(fmt.Errorf("arrival: from %d must be <= upto %d", from, upto))
		return b
	}
	b.job.Arrival = Interval[Time]{From: from, Upto: upto}
	return b
}

// WithCost sets the job's execution cost interval.
func (b *JobBuilder) WithCost(from, upto Time) *JobBuilder {
	if from > upto {
		b.addError(fmt.Errorf("cost: from %d must be <= upto %d", from, upto))
		return b
	}
	b.job.Cost = Interval[Time]{From: from, Upto: upto}
	return b
}

// WithPriority sets the job's priority (lower value = higher priority).
func (b *JobBuilder) WithPriority(priority Time) *JobBuilder {
	b.job.Priority = priority
	return b
}

// WithDeadline sets the job's deadline.
func (b *JobBuilder) WithDeadline(deadline Time) *JobBuilder {
	b.job.Deadline = deadline
	return b
}

// WithKey sets the job's hash contribution explicitly. If never called,
// Build derives one deterministically from the job's id.
func (b *JobBuilder) WithKey(key uint64) *JobBuilder {
	b.job.Key = key
	return b
}

// WithAbort attaches an abort action built from trigger and cleanup to
// the job under construction; its JobID is set to this builder's job id.
func (b *JobBuilder) WithAbort(trigger, cleanup Interval[Time]) *JobBuilder {
	b.job.Abort = &AbortAction{JobID: b.job.ID, Trigger: trigger, Cleanup: cleanup}
	return b
}

// Build returns the constructed Job, or the accumulated validation
// errors if any WithX call failed.
func (b *JobBuilder) Build() (Job, error) {
	if len(b.errors) > 0 {
		return Job{}, fmt.Errorf("model: job %q failed validation: %v", b.job.ID, b.errors)
	}
	if b.job.Key == 0 {
		b.job.Key = fnv64(b.job.ID)
	}
	return b.job, nil
}

// MustBuild is Build but panics on error; useful in test fixtures.
func (b *JobBuilder) MustBuild() Job {
	j, err := b.Build()
	if err != nil {
		panic(err)
	}
	return j
}

// Errors returns the validation errors accumulated so far.
func (b *JobBuilder) Errors() []error { return b.errors }

// HasErrors reports whether any WithX call has failed.
func (b *JobBuilder) HasErrors() bool { return len(b.errors) > 0 }

func (b *JobBuilder) addError(err error) {
	b.errors = append(b.errors, err)
}

// fnv64 computes the 64-bit FNV-1a hash of s, used as a job's default
// key contribution when the caller doesn't supply one explicitly.
func fnv64(s string) uint64 {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)
	h := uint64(offset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime64
	}
	return h
}
