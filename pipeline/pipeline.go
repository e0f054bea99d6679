// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/go-a2a/ragflow/model"
	"github.com/go-a2a/ragflow/pkg/logging"
	"github.com/go-a2a/ragflow/query"
	"github.com/go-a2a/ragflow/retrieval"
	"github.com/go-a2a/ragflow/search"
	"github.com/go-a2a/ragflow/summarize"
	"github.com/go-a2a/ragflow/types"
)

// Config holds the pipeline configuration.
type Config struct {
	searchDelay time.Duration
	logger      *slog.Logger
}

func newConfig() Config {
	return Config{
		searchDelay: retrieval.DefaultDelay,
		logger:      slog.Default(),
	}
}

// Option is a function that modifies the [Config].
type Option interface {
	apply(base Config) Config
}

type searchDelayOption time.Duration

func (o searchDelayOption) apply(base Config) Config {
	base.searchDelay = time.Duration(o)
	return base
}

// WithSearchDelay sets the minimum interval between web search requests.
func WithSearchDelay(delay time.Duration) Option {
	return searchDelayOption(delay)
}

type loggerOption struct{ *slog.Logger }

func (o loggerOption) apply(base Config) Config {
	base.logger = o.Logger
	return base
}

// WithLogger sets the logger for the pipeline and its stages.
func WithLogger(logger *slog.Logger) Option {
	return loggerOption{logger}
}

// Pipeline runs the full multi-query RAG flow on top of one language model
// and one search provider.
type Pipeline struct {
	Config

	expander  *query.Expander
	stepBack  *query.StepBack
	collector *retrieval.Collector
	refiner   *summarize.Refiner
}

// New creates a new [Pipeline] on top of m and provider.
func New(m model.Model, provider search.Provider, opts ...Option) *Pipeline {
	p := &Pipeline{
		Config: newConfig(),
	}
	for _, opt := range opts {
		p.Config = opt.apply(p.Config)
	}

	p.expander = query.NewExpander(m, query.WithLogger(p.logger))
	p.stepBack = query.NewStepBack(m, query.WithLogger(p.logger))
	p.collector = retrieval.NewCollector(provider,
		retrieval.WithDelay(p.searchDelay),
		retrieval.WithLogger(p.logger),
	)
	p.refiner = summarize.NewRefiner(m, summarize.WithLogger(p.logger))
	return p
}

// Run executes the pipeline for question and returns the final summary.
//
// The stages run strictly in order: expansion, step-back generation over the
// variants, serial search collection over variants followed by step-back
// questions, and the refine fold over the collected documents. The first
// unrecovered error aborts the run as a [*types.StageError].
//
// A question whose expansion yields zero usable variants fails with
// [types.ErrMalformedExpansion]; with no queries there is nothing to search
// or summarize.
func (p *Pipeline) Run(ctx context.Context, question string) (string, error) {
	runID := uuid.NewString()
	logger := p.logger.With("run_id", runID)
	ctx = logging.NewContext(ctx, logger)

	logger.InfoContext(ctx, "pipeline run started", "question", question)

	variants, err := p.expander.Expand(ctx, question)
	if err != nil {
		return "", &types.StageError{Stage: types.StageExpand, Item: question, Err: err}
	}
	if len(variants) == 0 {
		return "", &types.StageError{Stage: types.StageExpand, Item: question, Err: types.ErrMalformedExpansion}
	}
	logger.InfoContext(ctx, "expanded question", "variants", len(variants))

	stepBacks, err := p.stepBack.GenerateAll(ctx, variants)
	if err != nil {
		return "", &types.StageError{Stage: types.StageStepBack, Item: question, Err: err}
	}
	logger.InfoContext(ctx, "generated step-back questions", "count", len(stepBacks))

	// Search order is part of the contract: variant results come first, then
	// step-back results, and the refine fold below depends on that order.
	queries := make([]string, 0, len(variants)+len(stepBacks))
	queries = append(queries, variants...)
	queries = append(queries, stepBacks...)

	documents, err := p.collector.Collect(ctx, queries)
	if err != nil {
		return "", &types.StageError{Stage: types.StageSearch, Err: err}
	}
	logger.InfoContext(ctx, "collected documents", "count", len(documents))

	summary, err := p.refiner.Refine(ctx, documents)
	if err != nil {
		return "", &types.StageError{Stage: types.StageRefine, Err: err}
	}
	logger.InfoContext(ctx, "pipeline run finished", "summary_bytes", len(summary))

	return summary, nil
}
