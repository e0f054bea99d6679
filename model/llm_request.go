// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"google.golang.org/genai"
)

// LLMRequest represents a request to a language model.
type LLMRequest struct {
	// Contents is the ordered conversation content. A leading content with
	// [RoleSystem] is treated as the system instruction by the backends.
	Contents []*genai.Content `json:"contents"`

	// Config contains optional generation parameters.
	Config *genai.GenerateContentConfig `json:"config,omitempty"`
}

// NewLLMRequest creates a new [LLMRequest] from contents.
func NewLLMRequest(contents []*genai.Content) *LLMRequest {
	return &LLMRequest{
		Contents: contents,
	}
}

// UserContent creates a new user content from text parts.
func UserContent(parts ...string) *genai.Content {
	return textContent(RoleUser, parts...)
}

// SystemContent creates a new system content from text parts.
func SystemContent(parts ...string) *genai.Content {
	return textContent(RoleSystem, parts...)
}

// ModelContent creates a new model content from text parts.
func ModelContent(parts ...string) *genai.Content {
	return textContent(RoleModel, parts...)
}

func textContent(role Role, parts ...string) *genai.Content {
	contentParts := make([]*genai.Part, 0, len(parts))
	for _, part := range parts {
		contentParts = append(contentParts, genai.NewPartFromText(part))
	}
	return &genai.Content{
		Role:  role,
		Parts: contentParts,
	}
}

// systemInstruction splits a leading system content off from contents.
//
// Both backends take the system instruction as a separate parameter, so the
// request form keeps it as the first content and the backends peel it off here.
func systemInstruction(contents []*genai.Content) (system string, rest []*genai.Content) {
	if len(contents) == 0 || contents[0].Role != RoleSystem {
		return "", contents
	}

	for _, part := range contents[0].Parts {
		if part != nil && part.Text != "" {
			system += part.Text
		}
	}
	return system, contents[1:]
}
