// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package query generates the search queries for the ragflow pipeline.
//
// It provides two generators on top of the language model boundary: the
// [Expander] rewords one user question into multiple variants to broaden
// retrieval coverage, and [StepBack] derives a deliberately more generic
// "step-back" question that retrieves foundational context.
package query
