// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package search

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-a2a/ragflow/types"
)

// Provider represents a web search backend.
type Provider interface {
	// Name returns the name of the provider.
	Name() string

	// Search issues one search request for query and returns the retrieved
	// results as a single text blob.
	Search(ctx context.Context, query string) (string, error)
}

// Result is one search hit as returned by a provider API.
type Result struct {
	Title   string
	URL     string
	Snippet string
}

// joinResults flattens results into the single text blob consumed by the
// refine summarizer.
func joinResults(results []Result) string {
	blocks := make([]string, 0, len(results))
	for _, r := range results {
		var sb strings.Builder
		if r.Title != "" {
			sb.WriteString(r.Title)
			sb.WriteString("\n")
		}
		if r.URL != "" {
			sb.WriteString(r.URL)
			sb.WriteString("\n")
		}
		sb.WriteString(r.Snippet)
		blocks = append(blocks, sb.String())
	}
	return strings.Join(blocks, "\n\n")
}

// statusError maps a non-200 HTTP status to the boundary error kinds.
func statusError(provider string, statusCode int) error {
	if statusCode == http.StatusTooManyRequests {
		return fmt.Errorf("%s http %d: %w", provider, statusCode, types.ErrSearchRateLimited)
	}
	return fmt.Errorf("%s http %d: %w", provider, statusCode, types.ErrSearchUnavailable)
}

// transportError wraps a failed round-trip as [types.ErrSearchUnavailable],
// preserving context cancellation.
func transportError(provider string, err error) error {
	return fmt.Errorf("%s: %v: %w", provider, err, types.ErrSearchUnavailable)
}
