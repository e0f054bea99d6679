// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package search provides the web search provider boundary for the ragflow pipeline.
//
// Available providers:
//
//   - Tavily: requires an API key, supports basic/advanced depth modes
//   - Brave: requires an API key via the X-Subscription-Token header
//   - DuckDuckGo: free, no API key required (scrapes lite.duckduckgo.com)
//
// Each provider returns the retrieved results as one text blob per query. A
// provider reports throttling as [types.ErrSearchRateLimited] and any other
// transport or status failure as [types.ErrSearchUnavailable]; providers never
// retry on their own.
package search
