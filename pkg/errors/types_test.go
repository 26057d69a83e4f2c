// SPDX-FileCopyrightText: 2025 Jon Thor Kristinsson
// SPDX-License-Identifier: Apache-2.0

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/jontk/rtsa/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidPrecedence(t *testing.T) {
	err := errors.InvalidPrecedence("J1", "J2")
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrInvalidPrecedence))
	assert.False(t, stderrors.Is(err, errors.ErrInvalidAbortTarget))
	assert.Contains(t, err.Error(), "J1 -> J2")
	assert.Equal(t, errors.CategoryInput, err.Category)
}

func TestInvalidAbortTarget(t *testing.T) {
	err := errors.InvalidAbortTarget("Jx")
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrInvalidAbortTarget))
	assert.Contains(t, err.Error(), "Jx")
}

func TestAnalysisErrorUnwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := errors.New(errors.CodeInvalidWorkload, "bad workload")
	err.Cause = cause
	assert.Equal(t, cause, stderrors.Unwrap(err))
}

func TestInvalidOptionsCategory(t *testing.T) {
	err := errors.InvalidOptions("timeout must be >= 0")
	assert.Equal(t, errors.CategoryConfiguration, err.Category)
	assert.Contains(t, err.Error(), "timeout must be >= 0")
}
