// SPDX-FileCopyrightText: 2025 Jon Thor Kristinsson
// SPDX-License-Identifier: Apache-2.0

package rtsa

import "github.com/jontk/rtsa/model"

// Problem is the input to Explore: a job set plus its precedence edges
// and abort actions. The analyzer is strictly uniprocessor, so there is
// no processor-count field.
type Problem struct {
	Jobs   []model.Job
	DAG    []model.Edge
	Aborts []model.AbortAction
}

// workload validates and indexes p's jobs, returning the
// *pkg/errors.AnalysisError produced by model.NewWorkload if p's DAG or
// abort actions reference an unknown job id. numBuckets sizes the
// resulting workload's scheduling-window lookup table; it is an
// Explore-level option (WithNumBuckets) rather than a Problem field,
// since it tunes the engine's indexing strategy, not the problem being
// analyzed.
func (p Problem) workload(numBuckets int) (model.Workload, error) {
	return model.NewWorkload(p.Jobs, p.DAG, p.Aborts, numBuckets)
}
