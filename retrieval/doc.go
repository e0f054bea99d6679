// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package retrieval collects web search results for the ragflow pipeline.
//
// The [Collector] issues exactly one search request per query, strictly in
// input order, and paces requests with a configurable throttle so the search
// provider's rate limits are respected. The serialization is a deliberate
// backpressure policy: do not parallelize the collection loop without
// revisiting the provider's usage constraints.
package retrieval
