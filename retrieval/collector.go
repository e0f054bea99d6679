// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package retrieval

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/go-a2a/ragflow/pkg/logging"
	"github.com/go-a2a/ragflow/search"
	"github.com/go-a2a/ragflow/types"
)

// DefaultDelay is the default minimum interval between two search requests.
const DefaultDelay = 5 * time.Second

// Config holds the collector configuration.
type Config struct {
	delay  time.Duration
	logger *slog.Logger
}

func newConfig() Config {
	return Config{
		delay:  DefaultDelay,
		logger: slog.Default(),
	}
}

// Option is a function that modifies the [Config].
type Option interface {
	apply(base Config) Config
}

type delayOption time.Duration

func (o delayOption) apply(base Config) Config {
	base.delay = time.Duration(o)
	return base
}

// WithDelay sets the minimum interval between search requests. A zero or
// negative delay disables throttling, which is intended for tests.
func WithDelay(delay time.Duration) Option {
	return delayOption(delay)
}

type loggerOption struct{ *slog.Logger }

func (o loggerOption) apply(base Config) Config {
	base.logger = o.Logger
	return base
}

// WithLogger sets the logger for the collector.
func WithLogger(logger *slog.Logger) Option {
	return loggerOption{logger}
}

// throttle is the blocking wait between search requests. [rate.Limiter]
// satisfies it; tests substitute a deterministic implementation.
type throttle interface {
	Wait(ctx context.Context) error
}

// Collector turns an ordered list of query strings into an ordered list of
// documents, one search request per query.
type Collector struct {
	Config

	provider search.Provider
	limiter  throttle
}

// NewCollector creates a new [Collector] on top of provider.
func NewCollector(provider search.Provider, opts ...Option) *Collector {
	c := &Collector{
		Config:   newConfig(),
		provider: provider,
	}
	for _, opt := range opts {
		c.Config = opt.apply(c.Config)
	}
	// rate.Every treats a non-positive interval as an infinite rate.
	c.limiter = rate.NewLimiter(rate.Every(c.delay), 1)
	return c
}

// Collect issues one search request per query and wraps each response as one
// [types.Document]. The output has the same length and order as queries.
//
// Requests are strictly serial; the throttle blocks between requests and
// honors ctx cancellation while waiting. The first failed request aborts the
// whole collection (fail-fast) with the failing query attached.
func (c *Collector) Collect(ctx context.Context, queries []string) ([]types.Document, error) {
	logger := logging.FromContextOr(ctx, c.logger)

	documents := make([]types.Document, 0, len(queries))
	for i, query := range queries {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("throttle wait: %w", err)
		}

		content, err := c.provider.Search(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("search %q: %w", query, err)
		}

		logger.DebugContext(ctx, "collected document",
			"provider", c.provider.Name(),
			"query", query,
			"index", i,
			"bytes", len(content),
		)
		documents = append(documents, types.NewDocument(content))
	}
	return documents, nil
}
