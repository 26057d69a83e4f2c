// SPDX-FileCopyrightText: 2025 Jon Thor Kristinsson
// SPDX-License-Identifier: Apache-2.0

package rtsa

import (
	"fmt"
	"time"

	"github.com/jontk/rtsa/internal/engine"
	"github.com/jontk/rtsa/model"
	"github.com/jontk/rtsa/pkg/stats"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Analysis is the outcome of a single Explore run: a schedulability
// verdict, per-job response-time intervals, and run statistics.
type Analysis struct {
	responseTimes model.ResponseTimes

	aborted              bool
	timedOut             bool
	observedDeadlineMiss bool

	nodes []engine.GraphNode
	edges []engine.GraphEdge

	stats *stats.Stats
}

// IsSchedulable reports whether every job is guaranteed to meet its
// deadline across all admissible schedules: no deadline miss was
// observed and exploration was not aborted by a timeout or depth limit
// before covering the state space.
func (a *Analysis) IsSchedulable() bool {
	return !a.aborted && !a.observedDeadlineMiss
}

// WasTimedOut reports whether exploration was cut short by the
// wall-clock budget.
func (a *Analysis) WasTimedOut() bool {
	return a.timedOut
}

// FinishTimes returns the observed finish-time interval for jobID, and
// whether any response time was recorded for it.
func (a *Analysis) FinishTimes(jobID string) (model.Interval[model.Time], bool) {
	return a.responseTimes.Get(jobID)
}

// NumberOfNodes returns the number of schedule nodes created during
// exploration.
func (a *Analysis) NumberOfNodes() int {
	return int(a.stats.NodesCreated)
}

// NumberOfStates returns the number of schedule states created during
// exploration, across all nodes.
func (a *Analysis) NumberOfStates() int {
	return int(a.stats.StatesCreated)
}

// NumberOfEdges returns the number of job-dispatch transitions processed
// during exploration.
func (a *Analysis) NumberOfEdges() int {
	return int(a.stats.EdgesProcessed)
}

// MaxExplorationFrontWidth returns the largest number of nodes the
// frontier held awaiting exploration at any single job count.
func (a *Analysis) MaxExplorationFrontWidth() int {
	return a.stats.MaxFrontWidth
}

// CPUTime returns the wall-clock time Explore spent running.
func (a *Analysis) CPUTime() time.Duration {
	return a.stats.CPUTime
}

// Nodes returns the explored node topology. Empty unless
// WithGraphCollection(true) was passed to Explore.
func (a *Analysis) Nodes() []engine.GraphNode {
	return a.nodes
}

// Edges returns the explored job-dispatch edges. Empty unless
// WithGraphCollection(true) was passed to Explore.
func (a *Analysis) Edges() []engine.GraphEdge {
	return a.edges
}

// Summary renders a one-line, title-cased human-readable verdict, for
// logging alongside the engine's own structured log lines.
func (a *Analysis) Summary() string {
	verdict := "not schedulable"
	if a.IsSchedulable() {
		verdict = "schedulable"
	}
	titled := cases.Title(language.English).String(verdict)
	suffix := ""
	if a.timedOut {
		suffix = " (timed out)"
	}
	return fmt.Sprintf("Verdict: %s%s (%d nodes, %d edges, %s CPU time)",
		titled, suffix, a.NumberOfNodes(), a.NumberOfEdges(), a.CPUTime())
}
