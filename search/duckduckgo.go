// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package search

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const (
	// ddgEndpoint is the lite HTML version, which is more stable for scraping.
	ddgEndpoint = "https://lite.duckduckgo.com/lite/"

	ddgUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// ddgMaxResults caps how many hits are kept per query.
	ddgMaxResults = 5
)

// DuckDuckGo implements a search provider using DuckDuckGo's HTML lite
// interface. It requires no API key.
type DuckDuckGo struct {
	client *http.Client
}

var _ Provider = (*DuckDuckGo)(nil)

// NewDuckDuckGo creates a DuckDuckGo provider with a modest timeout.
func NewDuckDuckGo() *DuckDuckGo {
	return NewDuckDuckGoWithClient(&http.Client{Timeout: 15 * time.Second})
}

// NewDuckDuckGoWithClient creates a DuckDuckGo provider using the supplied HTTP client.
func NewDuckDuckGoWithClient(client *http.Client) *DuckDuckGo {
	return &DuckDuckGo{client: client}
}

// Name implements [Provider].
func (d *DuckDuckGo) Name() string {
	return "duckduckgo"
}

// Search implements [Provider]. It scrapes the DuckDuckGo lite HTML page.
func (d *DuckDuckGo) Search(ctx context.Context, query string) (string, error) {
	formData := url.Values{}
	formData.Set("q", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ddgEndpoint, strings.NewReader(formData.Encode()))
	if err != nil {
		return "", fmt.Errorf("duckduckgo: build request: %w", err)
	}
	req.Header.Set("User-Agent", ddgUserAgent)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := d.client.Do(req)
	if err != nil {
		return "", transportError("duckduckgo", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", statusError("duckduckgo", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("duckduckgo: read response: %w", err)
	}

	return joinResults(parseLiteResults(string(body))), nil
}

var (
	// Result links: <a rel="nofollow" href="URL" class='result-link'>TITLE</a>,
	// with either attribute order.
	ddgLinkPattern  = regexp.MustCompile(`<a[^>]*class=['"]result-link['"][^>]*href=['"]([^'"]+)['"][^>]*>([^<]+)</a>`)
	ddgLinkPattern2 = regexp.MustCompile(`<a[^>]*href=['"]([^'"]+)['"][^>]*class=['"]result-link['"][^>]*>([^<]+)</a>`)

	// Snippets live in <td> cells with class "result-snippet".
	ddgSnippetPattern = regexp.MustCompile(`<td[^>]*class=['"]result-snippet['"][^>]*>([^<]+(?:<[^>]+>[^<]*</[^>]+>)*[^<]*)</td>`)

	htmlTagPattern = regexp.MustCompile(`<[^>]+>`)
)

// parseLiteResults extracts search results from the DuckDuckGo lite HTML.
//
// Links and snippets are paired by document position: a snippet cell belongs
// to the nearest preceding result link, so a result row without a snippet
// does not shift later snippets onto the wrong result.
func parseLiteResults(html string) []Result {
	links := ddgLinkPattern.FindAllStringSubmatchIndex(html, -1)
	if len(links) == 0 {
		links = ddgLinkPattern2.FindAllStringSubmatchIndex(html, -1)
	}
	snippets := ddgSnippetPattern.FindAllStringSubmatchIndex(html, -1)

	var results []Result
	next := 0
	for i, link := range links {
		urlStr := strings.TrimSpace(html[link[2]:link[3]])
		title := cleanHTML(html[link[4]:link[5]])
		if urlStr == "" || title == "" {
			continue
		}

		end := len(html)
		if i+1 < len(links) {
			end = links[i+1][0]
		}
		for next < len(snippets) && snippets[next][0] < link[1] {
			next++
		}
		snippet := ""
		if next < len(snippets) && snippets[next][0] < end {
			snippet = cleanHTML(html[snippets[next][2]:snippets[next][3]])
			next++
		}

		results = append(results, Result{Title: title, URL: urlStr, Snippet: snippet})
		if len(results) >= ddgMaxResults {
			break
		}
	}
	return results
}

// cleanHTML removes HTML tags and decodes common entities.
func cleanHTML(s string) string {
	s = htmlTagPattern.ReplaceAllString(s, "")

	replacer := strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
		"&nbsp;", " ",
	)
	return strings.TrimSpace(replacer.Replace(s))
}
