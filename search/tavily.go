// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package search

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/go-a2a/ragflow/types"
)

const tavilyEndpoint = "https://api.tavily.com/search"

// Tavily calls the Tavily search API.
type Tavily struct {
	apiKey string
	// depth controls Tavily's depth parameter (basic or advanced).
	depth  string
	client *http.Client
}

var _ Provider = (*Tavily)(nil)

// NewTavily constructs a Tavily search provider.
func NewTavily(apiKey string, depth string) *Tavily {
	return NewTavilyWithClient(apiKey, depth, &http.Client{Timeout: 10 * time.Second})
}

// NewTavilyWithClient constructs a Tavily search provider using the supplied
// HTTP client. This is useful for overriding the default timeout.
func NewTavilyWithClient(apiKey string, depth string, client *http.Client) *Tavily {
	if depth == "" {
		depth = "basic"
	}
	return &Tavily{apiKey: apiKey, depth: depth, client: client}
}

// Name implements [Provider].
func (t *Tavily) Name() string {
	return "tavily"
}

// Search implements [Provider]. It posts one query to Tavily and returns the
// result snippets as a single text blob.
func (t *Tavily) Search(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(t.apiKey) == "" {
		return "", fmt.Errorf("tavily: API key is missing: %w", types.ErrSearchUnavailable)
	}

	body := map[string]any{
		"query":   query,
		"api_key": t.apiKey,
		"depth":   t.depth,
	}
	payload, err := sonic.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("tavily: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tavilyEndpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("tavily: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return "", transportError("tavily", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", statusError("tavily", resp.StatusCode)
	}

	var response struct {
		Results []struct {
			Title   string `json:"title"`
			URL     string `json:"url"`
			Content string `json:"content"`
		} `json:"results"`
	}
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("tavily: decode response: %w", err)
	}

	results := make([]Result, 0, len(response.Results))
	for _, r := range response.Results {
		results = append(results, Result{Title: r.Title, URL: r.URL, Snippet: r.Content})
	}
	return joinResults(results), nil
}
