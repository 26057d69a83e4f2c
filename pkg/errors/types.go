// SPDX-FileCopyrightText: 2025 Jon Thor Kristinsson
// SPDX-License-Identifier: Apache-2.0

// Package errors provides structured, typed errors for the schedulability
// analyzer's input-validation surface: an unknown job id in a DAG edge
// or abort action is a hard failure, and no analysis is produced.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode classifies an AnalysisError for programmatic handling.
type ErrorCode string

const (
	// CodeInvalidPrecedence marks a DAG edge that references a job id not
	// present in the workload.
	CodeInvalidPrecedence ErrorCode = "INVALID_PRECEDENCE"

	// CodeInvalidAbortTarget marks an abort action that references a job
	// id not present in the workload.
	CodeInvalidAbortTarget ErrorCode = "INVALID_ABORT_TARGET"

	// CodeInvalidWorkload marks a structurally invalid workload (e.g. a
	// job with from > upto on one of its intervals).
	CodeInvalidWorkload ErrorCode = "INVALID_WORKLOAD"

	// CodeInvalidOptions marks a bad combination of exploration options.
	CodeInvalidOptions ErrorCode = "INVALID_OPTIONS"
)

// ErrorCategory groups related error codes for handling at a coarser
// grain than ErrorCode.
type ErrorCategory string

const (
	CategoryInput         ErrorCategory = "INPUT"
	CategoryConfiguration ErrorCategory = "CONFIGURATION"
)

// AnalysisError is the structured error type returned before exploration
// begins. It is never produced once Explore has started walking the
// state space; infeasibility past that point is a verdict, not an
// error.
type AnalysisError struct {
	Code      ErrorCode     `json:"code"`
	Category  ErrorCategory `json:"category"`
	Message   string        `json:"message"`
	Detail    string        `json:"detail,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
	Cause     error         `json:"-"`
}

func (e *AnalysisError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Detail)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AnalysisError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *AnalysisError with the same code, so
// callers can write errors.Is(err, errors.ErrInvalidPrecedence).
func (e *AnalysisError) Is(target error) bool {
	t, ok := target.(*AnalysisError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func categoryFor(code ErrorCode) ErrorCategory {
	switch code {
	case CodeInvalidOptions:
		return CategoryConfiguration
	default:
		return CategoryInput
	}
}

// New creates an AnalysisError with the given code and message.
func New(code ErrorCode, message string) *AnalysisError {
	return &AnalysisError{
		Code:      code,
		Category:  categoryFor(code),
		Message:   message,
		Timestamp: time.Now(),
	}
}

// Newf is New with fmt.Sprintf-style formatting for Detail.
func Newf(code ErrorCode, message, detailFormat string, args ...interface{}) *AnalysisError {
	e := New(code, message)
	e.Detail = fmt.Sprintf(detailFormat, args...)
	return e
}

// ErrInvalidPrecedence is the sentinel matched via errors.Is for any DAG
// edge naming an unknown job.
var ErrInvalidPrecedence = &AnalysisError{Code: CodeInvalidPrecedence, Category: CategoryInput, Message: "precedence edge references unknown job"}

// ErrInvalidAbortTarget is the sentinel matched via errors.Is for any
// abort action naming an unknown job.
var ErrInvalidAbortTarget = &AnalysisError{Code: CodeInvalidAbortTarget, Category: CategoryInput, Message: "abort action references unknown job"}

// InvalidPrecedence builds a concrete error for the edge (predecessor ->
// successor) where one of the two ids is not part of the workload.
func InvalidPrecedence(predecessor, successor string) *AnalysisError {
	return Newf(CodeInvalidPrecedence, ErrInvalidPrecedence.Message,
		"edge %s -> %s references a job id not present in the workload", predecessor, successor)
}

// InvalidAbortTarget builds a concrete error for an abort action naming
// an unknown job id.
func InvalidAbortTarget(jobID string) *AnalysisError {
	return Newf(CodeInvalidAbortTarget, ErrInvalidAbortTarget.Message,
		"abort action for job id %q does not match any job in the workload", jobID)
}

// InvalidWorkload builds a concrete error for a structurally malformed
// job (e.g. an interval with from > upto, or a duplicate job id).
func InvalidWorkload(detail string) *AnalysisError {
	return Newf(CodeInvalidWorkload, "workload failed validation", "%s", detail)
}

// InvalidOptions builds a concrete error for a bad option combination.
func InvalidOptions(detail string) *AnalysisError {
	return Newf(CodeInvalidOptions, "invalid exploration options", "%s", detail)
}
