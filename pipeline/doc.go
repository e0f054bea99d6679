// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package pipeline wires the ragflow stages into one end-to-end run.
//
// A [Pipeline] takes a user question and produces a single summary string:
// the question is expanded into reworded variants, each variant is
// generalized into a step-back question, every query in the combined set is
// searched on the web (serially, rate-limited), and the retrieved documents
// are folded into the final summary.
//
// Failures surface as a [types.StageError] naming the stage and the input
// item that failed.
package pipeline
