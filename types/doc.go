// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package types defines the shared value types and error kinds used across the
// ragflow pipeline stages.
//
// The types package sits at the bottom of the dependency graph so that the
// query, retrieval, summarize and pipeline packages can exchange documents and
// classify boundary failures without importing each other.
package types
