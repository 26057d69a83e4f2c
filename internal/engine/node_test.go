// SPDX-FileCopyrightText: 2025 Jon Thor Kristinsson
// SPDX-License-Identifier: Apache-2.0

package engine_test

import (
	"context"
	"testing"

	"github.com/jontk/rtsa/internal/engine"
	"github.com/jontk/rtsa/iip"
	"github.com/jontk/rtsa/model"
	"github.com/jontk/rtsa/pkg/logging"
	"github.com/jontk/rtsa/pkg/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two same-priority, same-cost jobs reach {J1,J2} via either dispatch
// order with the same key and scheduled-set; the merged exploration
// must resolve both successors onto a single node. (State-level
// disjointness within a node is checked by the merge tests in
// merge_internal_test.go.)
func TestBothDispatchOrdersMergeIntoOneNode(t *testing.T) {
	jobs := []model.Job{
		job(t, "J1", 0, 0, 1, 1, 1, 10),
		job(t, "J2", 0, 0, 1, 1, 1, 10),
	}
	w, err := model.NewWorkload(jobs, nil, nil, 0)
	require.NoError(t, err)

	collector := stats.NewInMemoryCollector()
	eng := engine.New(w, iip.Trivial{}, engine.Options{EarlyExit: true, GraphCollection: true}, collector, logging.NoOpLogger{})
	res := eng.Explore(context.Background())

	assert.False(t, res.ObservedDeadlineMiss)

	finalNodeCount := 0
	for _, n := range res.Nodes {
		if len(n.Scheduled) == 2 {
			finalNodeCount++
		}
	}
	// Both dispatch orders (J1 then J2, J2 then J1) reach the same
	// scheduled-set {J1,J2} with the same finish interval, so merging
	// must collapse them into exactly one node.
	assert.Equal(t, 1, finalNodeCount)
}
