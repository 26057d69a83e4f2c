// SPDX-FileCopyrightText: 2025 Jon Thor Kristinsson
// SPDX-License-Identifier: Apache-2.0

// Package config holds the tunable knobs that govern a single Explore
// run: timeout, depth limit, bucket count for the workload's
// scheduling-window lookup table, and
// whether to run the naive (tree) or merged (compact) exploration mode.
// It never describes the workload being analyzed.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Options holds configuration for a single exploration run.
type Options struct {
	// Naive disables state merging and explores the full schedule tree,
	// used as an oracle to cross-check the merged exploration on small
	// workloads.
	Naive bool `yaml:"naive"`

	// TimeoutS bounds wall-clock exploration time; zero means no limit.
	TimeoutS float64 `yaml:"timeout_s"`

	// MaxDepth bounds the number of scheduled jobs along any explored
	// path; zero means no limit.
	MaxDepth int `yaml:"max_depth"`

	// NumBuckets sizes the workload's scheduling-window lookup table.
	NumBuckets int `yaml:"num_buckets"`

	// EarlyExit stops exploration as soon as one deadline miss is found,
	// skipping the rest of the state space.
	EarlyExit bool `yaml:"early_exit"`

	// GraphCollection retains the explored node/edge graph on the
	// resulting Analysis for later inspection or rendering.
	GraphCollection bool `yaml:"graph_collection"`
}

// Defaults returns the default exploration options: merged exploration,
// no timeout, no depth limit, a modest bucket count, and early exit on
// the first deadline miss.
func Defaults() *Options {
	return &Options{
		Naive:           false,
		TimeoutS:        0,
		MaxDepth:        0,
		NumBuckets:      1000,
		EarlyExit:       true,
		GraphCollection: false,
	}
}

// LoadEnv overlays environment variable overrides onto o. Unset or
// unparsable variables leave the existing field untouched.
func (o *Options) LoadEnv() {
	if v := os.Getenv("RTSA_TIMEOUT_S"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			o.TimeoutS = f
		}
	}
	if v := os.Getenv("RTSA_MAX_DEPTH"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			o.MaxDepth = i
		}
	}
	if v := os.Getenv("RTSA_NUM_BUCKETS"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			o.NumBuckets = i
		}
	}
	if v := os.Getenv("RTSA_NAIVE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			o.Naive = b
		}
	}
	if v := os.Getenv("RTSA_EARLY_EXIT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			o.EarlyExit = b
		}
	}
}

// LoadYAML overlays options read from a YAML file at path, for
// regression harnesses that check in a fixed set of exploration options
// alongside a workload fixture.
func (o *Options) LoadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, o); err != nil {
		return fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return nil
}

// Timeout returns TimeoutS as a time.Duration, or 0 if unset.
func (o *Options) Timeout() time.Duration {
	if o.TimeoutS <= 0 {
		return 0
	}
	return time.Duration(o.TimeoutS * float64(time.Second))
}

// Validate checks that the options are internally consistent.
func (o *Options) Validate() error {
	if o.TimeoutS < 0 {
		return ErrInvalidTimeout
	}
	if o.MaxDepth < 0 {
		return ErrInvalidMaxDepth
	}
	if o.NumBuckets <= 0 {
		return ErrInvalidNumBuckets
	}
	return nil
}
