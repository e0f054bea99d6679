// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package query

import (
	"log/slog"
)

// Config holds the configuration shared by the query generators.
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

// WithLogger sets the logger for a query generator.
func WithLogger(logger *slog.Logger) Option {
	return loggerOption{logger}
}
