// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/go-a2a/ragflow/types"
)

const braveEndpoint = "https://api.search.brave.com/res/v1/web/search"

// Brave calls the Brave web search API.
//
// Brave enforces a rate limit of one request per second per API key; the
// retrieval collector's inter-request delay stays above that, so the provider
// itself does not gate requests.
type Brave struct {
	apiKey string
	client *http.Client
}

var _ Provider = (*Brave)(nil)

// NewBrave constructs a Brave search provider.
func NewBrave(apiKey string) *Brave {
	return NewBraveWithClient(apiKey, &http.Client{Timeout: 10 * time.Second})
}

// NewBraveWithClient constructs a Brave search provider using the supplied HTTP client.
func NewBraveWithClient(apiKey string, client *http.Client) *Brave {
	return &Brave{apiKey: apiKey, client: client}
}

// Name implements [Provider].
func (b *Brave) Name() string {
	return "brave"
}

// Search implements [Provider].
func (b *Brave) Search(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(b.apiKey) == "" {
		return "", fmt.Errorf("brave: API key is missing: %w", types.ErrSearchUnavailable)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("count", "5")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, braveEndpoint+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return "", fmt.Errorf("brave: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", b.apiKey)

	resp, err := b.client.Do(req)
	if err != nil {
		return "", transportError("brave", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", statusError("brave", resp.StatusCode)
	}

	var response struct {
		Web struct {
			Results []struct {
				Title       string `json:"title"`
				URL         string `json:"url"`
				Description string `json:"description"`
			} `json:"results"`
		} `json:"web"`
	}
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("brave: decode response: %w", err)
	}

	results := make([]Result, 0, len(response.Web.Results))
	for _, r := range response.Web.Results {
		results = append(results, Result{Title: r.Title, URL: r.URL, Snippet: r.Description})
	}
	return joinResults(results), nil
}
