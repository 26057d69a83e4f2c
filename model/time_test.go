// SPDX-FileCopyrightText: 2025 Jon Thor Kristinsson
// SPDX-License-Identifier: Apache-2.0

package model_test

import (
	"testing"

	"github.com/jontk/rtsa/model"
	"github.com/stretchr/testify/assert"
)

func TestAddSaturatesAtInf(t *testing.T) {
	assert.Equal(t, model.Inf, model.Add(model.Inf, 5))
	assert.Equal(t, model.Inf, model.Add(5, model.Inf))
	assert.Equal(t, model.Time(8), model.Add(3, 5))
}

func TestSubSaturatesAtInf(t *testing.T) {
	assert.Equal(t, model.Inf, model.Sub(model.Inf, model.Epsilon))
	assert.Equal(t, model.Time(3), model.Sub(5, 2))
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, model.Time(2), model.Min(2, 5))
	assert.Equal(t, model.Time(5), model.Max(2, 5))
}
