// SPDX-FileCopyrightText: 2025 Jon Thor Kristinsson
// SPDX-License-Identifier: Apache-2.0

package engine

import "github.com/jontk/rtsa/model"

// GraphNode is one explored schedule node, exposed only when graph
// collection is enabled. Format of any external serialization (e.g.
// DOT) is out of scope; this is purely the topology.
type GraphNode struct {
	ID        string
	Scheduled []int
	JobCount  int
}

// GraphEdge is one job-dispatch transition between two nodes, carrying
// the job dispatched and the finish-time range it produced.
type GraphEdge struct {
	JobID        string
	SourceNodeID string
	TargetNodeID string
	Range        model.Interval[model.Time]
}
