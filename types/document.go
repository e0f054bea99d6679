// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package types

// Document wraps the raw text returned by one search request.
//
// A Document carries no structure beyond its content. It is created by the
// retrieval collector, consumed once by the refine summarizer, and never
// mutated.
type Document struct {
	// Content is the full text returned by the search provider.
	Content string
}

// NewDocument returns a [Document] wrapping content.
func NewDocument(content string) Document {
	return Document{Content: content}
}
