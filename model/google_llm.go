// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"

	"github.com/go-a2a/ragflow/pkg/logging"
)

const (
	// GeminiDefaultModel is the default model name for [Gemini].
	GeminiDefaultModel = "gemini-2.0-flash"

	// EnvGoogleAPIKey is the environment variable name for the Google AI API key.
	EnvGoogleAPIKey = "GOOGLE_API_KEY"
)

// Gemini represents a Google Gemini Large Language Model.
type Gemini struct {
	*Base

	genAIClient *genai.Client
}

var _ Model = (*Gemini)(nil)

// NewGemini creates a new [Gemini] instance.
func NewGemini(ctx context.Context, apiKey string, modelName string, opts ...Option) (*Gemini, error) {
	// Use default model if none provided
	if modelName == "" {
		modelName = GeminiDefaultModel
	}

	// Check API key and use [EnvGoogleAPIKey] environment variable if not provided
	if apiKey == "" {
		envApiKey := os.Getenv(EnvGoogleAPIKey)
		if envApiKey == "" {
			return nil, fmt.Errorf("either apiKey arg or %q environment variable must be set", EnvGoogleAPIKey)
		}
		apiKey = envApiKey
	}

	genAIClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Gemini{
		Base:        NewBase(modelName, opts...),
		genAIClient: genAIClient,
	}, nil
}

// GenerateContent implements [Model].
func (m *Gemini) GenerateContent(ctx context.Context, request *LLMRequest) (*LLMResponse, error) {
	system, rest := systemInstruction(request.Contents)

	config := request.Config
	if config == nil {
		config = m.generationConfig
	}
	if system != "" {
		// Copy before setting the system instruction so a config shared
		// across requests is not mutated.
		cfg := genai.GenerateContentConfig{}
		if config != nil {
			cfg = *config
		}
		cfg.SystemInstruction = SystemContent(system)
		config = &cfg
	}

	logging.FromContextOr(ctx, m.logger).DebugContext(ctx, "gemini generate", "model", m.model, "contents", len(request.Contents))

	resp, err := m.genAIClient.Models.GenerateContent(ctx, m.model, rest, config)
	if err != nil {
		return nil, classifyErr(fmt.Errorf("gemini API error: %w", err))
	}

	return CreateLLMResponse(resp), nil
}
