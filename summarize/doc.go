// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package summarize produces the final answer text for the ragflow pipeline.
//
// The [Refiner] folds an ordered sequence of documents into a single running
// summary: the first document seeds the summary, and every later document is
// folded in by asking the model to revise the summary in light of the new
// content. The fold is order-sensitive and strictly sequential; each step
// conditions on the summary accumulated so far.
package summarize
