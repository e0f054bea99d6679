// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"log/slog"

	"google.golang.org/genai"
)

// Config holds the common configuration shared by the model backends.
type Config struct {
	// generationConfig contains configuration for generation.
	generationConfig *genai.GenerateContentConfig

	// logger is the logger used for logging.
	logger *slog.Logger
}

func newConfig() Config {
	return Config{
		logger: slog.Default(),
	}
}

// Option is a function that modifies the [Config] model.
type Option interface {
	apply(base Config) Config
}

type generationConfigOption struct{ *genai.GenerateContentConfig }

func (o generationConfigOption) apply(base Config) Config {
	base.generationConfig = o.GenerateContentConfig
	return base
}

// WithGenerationConfig sets the generation configuration for the model.
func WithGenerationConfig(config *genai.GenerateContentConfig) Option {
	return generationConfigOption{config}
}

type loggerOption struct{ *slog.Logger }

func (o loggerOption) apply(base Config) Config {
	base.logger = o.Logger
	return base
}

// WithLogger sets the logger for the model.
func WithLogger(logger *slog.Logger) Option {
	return loggerOption{logger}
}

// Base is the common base of the model backends. It carries the model name
// and the shared [Config].
type Base struct {
	Config

	// model is the specific LLM model name.
	model string
}

// NewBase returns the new [Base] with the specified model name.
func NewBase(modelName string, opts ...Option) *Base {
	base := &Base{
		Config: newConfig(),
		model:  modelName,
	}
	for _, opt := range opts {
		base.Config = opt.apply(base.Config)
	}
	return base
}

// Name implements [Model].
func (b *Base) Name() string {
	return b.model
}
