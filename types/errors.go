// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for the external boundaries and pipeline stages.
//
// Boundary implementations wrap these with %w so callers can classify
// failures with [errors.Is] regardless of the underlying transport error.
var (
	// ErrEmptyInput reports that the refine summarizer was called with zero documents.
	ErrEmptyInput = errors.New("empty input")

	// ErrModelUnavailable reports a transport or auth failure at the language model boundary.
	ErrModelUnavailable = errors.New("model unavailable")

	// ErrModelTimeout reports that a language model call exceeded its deadline.
	ErrModelTimeout = errors.New("model timeout")

	// ErrSearchUnavailable reports a transport failure at the search provider boundary.
	ErrSearchUnavailable = errors.New("search unavailable")

	// ErrSearchRateLimited reports that the search provider signaled throttling.
	// It is distinct from [ErrSearchUnavailable] so callers can choose to back off.
	ErrSearchRateLimited = errors.New("search rate limited")

	// ErrMalformedExpansion reports that query expansion produced no usable variant.
	ErrMalformedExpansion = errors.New("malformed expansion")
)

// Stage identifies the pipeline stage that produced an error.
type Stage string

const (
	// StageExpand is the query expansion stage.
	StageExpand Stage = "expand"

	// StageStepBack is the step-back question generation stage.
	StageStepBack Stage = "stepback"

	// StageSearch is the web search collection stage.
	StageSearch Stage = "search"

	// StageRefine is the refine summarization stage.
	StageRefine Stage = "refine"
)

// StageError tags a boundary error with the pipeline stage and the input item
// that failed, so pipeline-level callers can report which stage and which
// query or document broke the run.
type StageError struct {
	// Stage is the pipeline stage that failed.
	Stage Stage

	// Item is the input item being processed when the failure occurred.
	Item string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *StageError) Error() string {
	if e.Item == "" {
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s: %q: %v", e.Stage, e.Item, e.Err)
}

// Unwrap returns the underlying error.
func (e *StageError) Unwrap() error {
	return e.Err
}
