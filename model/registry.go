// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"context"
	"fmt"
	"regexp"
	"sync"
)

// init registers the built-in model types.
func init() {
	// Register Claude models
	RegisterLLMType(
		[]string{
			`claude-.*`, // General pattern for Claude models
		},
		func(ctx context.Context, apiKey string, modelName string) (Model, error) {
			return NewClaude(ctx, apiKey, modelName)
		},
	)

	// Register Google/Gemini models
	RegisterLLMType(
		[]string{
			`gemini-.*`,
			`projects\/.*\/locations\/.*\/publishers\/google\/models\/gemini-.*`,
		},
		func(ctx context.Context, apiKey string, modelName string) (Model, error) {
			return NewGemini(ctx, apiKey, modelName)
		},
	)
}

// ModelCreatorFunc is a function type that creates a model instance.
type ModelCreatorFunc func(ctx context.Context, apiKey string, modelName string) (Model, error)

// modelEntry represents a registry entry with a regex pattern and model creator function.
type modelEntry struct {
	pattern *regexp.Regexp
	creator ModelCreatorFunc
}

// LLMRegistry provides a registry for LLM models.
// It allows registering and resolving model implementations based on regex patterns.
type LLMRegistry struct {
	mu       sync.RWMutex
	registry []modelEntry
}

var (
	defaultRegistry *LLMRegistry
	once            sync.Once
)

// GetRegistry returns the singleton registry instance.
func GetRegistry() *LLMRegistry {
	once.Do(func() {
		defaultRegistry = NewLLMRegistry()
	})
	return defaultRegistry
}

// NewLLMRegistry creates a new LLM registry.
func NewLLMRegistry() *LLMRegistry {
	return &LLMRegistry{
		registry: make([]modelEntry, 0),
	}
}

// RegisterLLM registers a model pattern with a creator function.
// If the pattern already exists, it will be updated with the new creator.
func (r *LLMRegistry) RegisterLLM(modelPattern string, creator ModelCreatorFunc) error {
	regex, err := regexp.Compile(modelPattern)
	if err != nil {
		return fmt.Errorf("compile regex pattern %q: %w", modelPattern, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Look for existing entry to update
	for i, entry := range r.registry {
		if entry.pattern.String() == modelPattern {
			r.registry[i].creator = creator
			return nil
		}
	}

	r.registry = append(r.registry, modelEntry{
		pattern: regex,
		creator: creator,
	})
	return nil
}

// ResolveLLM finds the appropriate model creator for the given model name.
func (r *LLMRegistry) ResolveLLM(modelName string) (ModelCreatorFunc, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, entry := range r.registry {
		if entry.pattern.MatchString(modelName) {
			return entry.creator, nil
		}
	}
	return nil, fmt.Errorf("model %s not found", modelName)
}

// NewLLM creates a new LLM instance for the given model name.
// It resolves the appropriate model implementation and creates an instance.
func (r *LLMRegistry) NewLLM(ctx context.Context, apiKey string, modelName string) (Model, error) {
	creator, err := r.ResolveLLM(modelName)
	if err != nil {
		return nil, err
	}
	return creator(ctx, apiKey, modelName)
}

// RegisterLLMType registers multiple patterns for a single model creator.
func RegisterLLMType(patterns []string, creator ModelCreatorFunc) {
	registry := GetRegistry()
	for _, pattern := range patterns {
		if err := registry.RegisterLLM(pattern, creator); err != nil {
			panic(err)
		}
	}
}

// NewLLM is a convenience function to create a new LLM instance.
func NewLLM(ctx context.Context, apiKey string, modelName string) (Model, error) {
	return GetRegistry().NewLLM(ctx, apiKey, modelName)
}
