// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package model provides the language model client boundary for the ragflow pipeline.
//
// The package defines the [Model] interface and two backends: Claude models via the
// official Anthropic SDK and Gemini models via the Google GenAI SDK. A pattern-based
// registry resolves model names such as "claude-3-5-haiku-latest" or
// "gemini-2.0-flash" to the matching backend constructor:
//
//	m, err := model.NewLLM(ctx, "", "gemini-2.0-flash")
//	if err != nil {
//		// ...
//	}
//	text, err := model.GenerateText(ctx, m, systemPrompt, userPrompt)
//
// API credentials are injected through the constructor argument or the
// ANTHROPIC_API_KEY / GOOGLE_API_KEY environment variables; they are never
// hardcoded. Transport and auth failures are reported as
// [types.ErrModelUnavailable], exceeded deadlines as [types.ErrModelTimeout].
package model
