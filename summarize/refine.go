// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package summarize

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-a2a/ragflow/model"
	"github.com/go-a2a/ragflow/pkg/logging"
	"github.com/go-a2a/ragflow/types"
)

// Config holds the refiner configuration.
type Config struct {
	logger *slog.Logger
}

func newConfig() Config {
	return Config{
		logger: slog.Default(),
	}
}

// Option is a function that modifies the [Config].
type Option interface {
	apply(base Config) Config
}

type loggerOption struct{ *slog.Logger }

func (o loggerOption) apply(base Config) Config {
	base.logger = o.Logger
	return base
}

// WithLogger sets the logger for the refiner.
func WithLogger(logger *slog.Logger) Option {
	return loggerOption{logger}
}

// Refiner folds documents into a single running summary.
type Refiner struct {
	Config

	model model.Model
}

// NewRefiner creates a new [Refiner] on top of m.
func NewRefiner(m model.Model, opts ...Option) *Refiner {
	r := &Refiner{
		Config: newConfig(),
		model:  m,
	}
	for _, opt := range opts {
		r.Config = opt.apply(r.Config)
	}
	return r
}

// Refine reduces documents, strictly left to right, into one summary string.
//
// The first document seeds the summary with a single summarization call; each
// later document triggers one revision call that replaces the running summary.
// A single document therefore costs exactly one model call and no refinement
// step. An empty input fails with [types.ErrEmptyInput]. Any model failure
// aborts the whole operation; there is no partial result, since every step
// conditions on the prior summary.
func (r *Refiner) Refine(ctx context.Context, documents []types.Document) (string, error) {
	if len(documents) == 0 {
		return "", fmt.Errorf("refine: %w", types.ErrEmptyInput)
	}

	logger := logging.FromContextOr(ctx, r.logger)

	summary, err := model.GenerateText(ctx, r.model, seedSystemPrompt, documents[0].Content)
	if err != nil {
		return "", fmt.Errorf("seed summary: %w", err)
	}
	logger.DebugContext(ctx, "seeded summary", "bytes", len(summary))

	for i, document := range documents[1:] {
		summary, err = model.GenerateText(ctx, r.model, refineSystemPrompt, refinePrompt(summary, document.Content))
		if err != nil {
			return "", fmt.Errorf("refine step %d: %w", i+1, err)
		}
		logger.DebugContext(ctx, "refined summary", "step", i+1, "bytes", len(summary))
	}
	return summary, nil
}
