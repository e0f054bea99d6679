// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"strings"

	"google.golang.org/genai"
)

// LLMResponse represents a response from a language model.
type LLMResponse struct {
	// Content is the content of the response.
	Content *genai.Content
}

// Text returns the concatenated text of all text parts in the response.
func (r *LLMResponse) Text() string {
	if r == nil || r.Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range r.Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}

// CreateLLMResponse creates an [LLMResponse] from a [*genai.GenerateContentResponse].
func CreateLLMResponse(resp *genai.GenerateContentResponse) *LLMResponse {
	response := &LLMResponse{}
	if resp == nil || len(resp.Candidates) == 0 {
		return response
	}

	if candidate := resp.Candidates[0]; candidate.Content != nil {
		response.Content = candidate.Content
	}
	return response
}
