// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package logging provides context-based structured logging utilities using Go's standard slog package.
//
// Loggers are stored in and retrieved from [context.Context] values so a
// run-scoped logger (for example one carrying a pipeline run ID) propagates
// through the pipeline stages without threading a logger argument:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With("run_id", runID)
//	ctx = logging.NewContext(ctx, logger)
//
//	// ... deeper in the call stack
//	logging.FromContext(ctx).Info("collected documents", "count", len(docs))
//
// When no logger is found in the context, FromContext returns a default JSON
// logger that writes to stdout with INFO level, so logging always works even
// when no explicit logger is configured.
package logging
