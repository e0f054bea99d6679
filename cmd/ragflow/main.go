// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Command ragflow runs the multi-query RAG pipeline for one question and
// prints the final summary.
//
// API credentials are read from the environment (ANTHROPIC_API_KEY,
// GOOGLE_API_KEY, TAVILY_API_KEY, BRAVE_API_KEY); a .env file in the working
// directory is loaded when present.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/go-a2a/ragflow/model"
	"github.com/go-a2a/ragflow/pipeline"
	"github.com/go-a2a/ragflow/retrieval"
	"github.com/go-a2a/ragflow/search"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "ragflow:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("ragflow", flag.ContinueOnError)
	modelName := fs.String("model", model.GeminiDefaultModel, "language model name (claude-* or gemini-*)")
	providerName := fs.String("provider", "duckduckgo", "search provider (tavily, brave or duckduckgo)")
	searchDelay := fs.Duration("search-delay", retrieval.DefaultDelay, "minimum interval between web search requests")
	verbose := fs.Bool("v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	question := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if question == "" {
		return errors.New("usage: ragflow [flags] <question>")
	}

	// A .env file is optional; deployments usually set the variables directly.
	_ = godotenv.Load()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	m, err := model.NewLLM(ctx, "", *modelName)
	if err != nil {
		return fmt.Errorf("create model: %w", err)
	}

	provider, err := newProvider(*providerName)
	if err != nil {
		return err
	}

	p := pipeline.New(m, provider,
		pipeline.WithSearchDelay(*searchDelay),
		pipeline.WithLogger(logger),
	)

	summary, err := p.Run(ctx, question)
	if err != nil {
		return err
	}

	fmt.Println(summary)
	return nil
}

func newProvider(name string) (search.Provider, error) {
	switch name {
	case "tavily":
		return search.NewTavily(os.Getenv("TAVILY_API_KEY"), ""), nil
	case "brave":
		return search.NewBrave(os.Getenv("BRAVE_API_KEY")), nil
	case "duckduckgo":
		return search.NewDuckDuckGo(), nil
	default:
		return nil, fmt.Errorf("unknown search provider %q", name)
	}
}
