// SPDX-FileCopyrightText: 2025 Jon Thor Kristinsson
// SPDX-License-Identifier: Apache-2.0

/*
Package rtsa analyzes uniprocessor real-time schedulability under
interval-valued arrival times and execution costs.

# Overview

Given a set of jobs, each with an uncertain release time and execution
duration, a fixed priority, a deadline, and optional precedence and
abort-action constraints, rtsa explores the reachable schedule
state-space under a fixed work-conserving priority dispatch policy
(optionally shaped by an Idle-time Insertion Policy) and reports:

  - a schedulability verdict: is every admissible schedule guaranteed to
    meet every deadline?
  - per-job response-time intervals, widened across every admissible
    schedule the engine explored.

The exploration is sound but may over-approximate the reachable
finish-time intervals; it never under-approximates, so a "schedulable"
verdict is safe to rely on.

# Basic usage

	import (
	    "time"

	    "github.com/jontk/rtsa"
	    "github.com/jontk/rtsa/model"
	)

	func main() {
	    j1 := model.NewJobBuilder("J1").
	        WithArrival(0, 0).
	        WithCost(2, 2).
	        WithPriority(1).
	        WithDeadline(5).
	        MustBuild()

	    j2 := model.NewJobBuilder("J2").
	        WithArrival(0, 0).
	        WithCost(2, 2).
	        WithPriority(2).
	        WithDeadline(5).
	        MustBuild()

	    analysis, err := rtsa.Explore(rtsa.Problem{
	        Jobs: []model.Job{j1, j2},
	    }, rtsa.WithTimeout(10*time.Second))
	    if err != nil {
	        panic(err)
	    }

	    if !analysis.IsSchedulable() {
	        panic("workload is not schedulable")
	    }

	    rt, _ := analysis.FinishTimes("J2")
	    println(rt.From, rt.Upto)
	}

# Scope

This package implements the schedule-abstraction state-space exploration
engine only: job/DAG/abort input parsing, a CLI, DOT graph output
formatting, and concrete IIP implementations beyond the trivial reference
one are out of scope and left to external collaborators that build on
top of Explore, the iip.Policy interface, and the Analysis.Nodes/Edges
accessors.
*/
package rtsa
