// SPDX-FileCopyrightText: 2025 Jon Thor Kristinsson
// SPDX-License-Identifier: Apache-2.0

package iip_test

import (
	"testing"

	"github.com/jontk/rtsa/iip"
	"github.com/jontk/rtsa/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// mockPolicy is a testify/mock double for iip.Policy. The tests below
// check that it satisfies the Policy contract and returns the scripted
// values for the scripted arguments; no engine code path uses it.
type mockPolicy struct {
	mock.Mock
}

func (m *mockPolicy) CanBlock() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *mockPolicy) LatestStart(job model.Job, ts model.Time, s iip.View) model.Time {
	args := m.Called(job, ts, s)
	return args.Get(0).(model.Time)
}

func TestMockPolicyCanBlock(t *testing.T) {
	p := new(mockPolicy)
	p.On("CanBlock").Return(true)

	assert.True(t, p.CanBlock())
	p.AssertExpectations(t)
}

func TestMockPolicyLatestStart(t *testing.T) {
	p := new(mockPolicy)
	job := model.NewJobBuilder("J1").MustBuild()
	view := iip.NewView(model.Interval[model.Time]{}, model.NewScheduledSet(1), nil)

	p.On("LatestStart", job, model.Time(5), view).Return(model.Time(10))

	got := p.LatestStart(job, 5, view)
	assert.Equal(t, model.Time(10), got)
	p.AssertExpectations(t)
}
