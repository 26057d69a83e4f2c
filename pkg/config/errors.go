// SPDX-FileCopyrightText: 2025 Jon Thor Kristinsson
// SPDX-License-Identifier: Apache-2.0

package config

import "errors"

var (
	// ErrInvalidTimeout is returned by Validate when TimeoutS is negative.
	ErrInvalidTimeout = errors.New("config: timeout_s must be >= 0")

	// ErrInvalidMaxDepth is returned by Validate when MaxDepth is negative.
	ErrInvalidMaxDepth = errors.New("config: max_depth must be >= 0")

	// ErrInvalidNumBuckets is returned by Validate when NumBuckets is not positive.
	ErrInvalidNumBuckets = errors.New("config: num_buckets must be > 0")
)
