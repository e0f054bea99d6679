// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package query

import (
	"context"
	"errors"
	"strings"

	"github.com/go-a2a/ragflow/model"
	"github.com/go-a2a/ragflow/pkg/logging"
)

// Expander rewords one user question into multiple query variants by
// prompting the language model once and splitting its output into lines.
type Expander struct {
	Config

	model model.Model
}

// NewExpander creates a new [Expander] on top of m.
func NewExpander(m model.Model, opts ...Option) *Expander {
	e := &Expander{
		Config: newConfig(),
		model:  m,
	}
	for _, opt := range opts {
		e.Config = opt.apply(e.Config)
	}
	return e
}

// Expand returns the reworded variants of question, in generation order.
//
// The model is asked for exactly three variants, one per line, but the parser
// returns however many well-formed lines are present. An empty model response
// yields an empty slice, not an error. Model boundary failures propagate
// unchanged.
func (e *Expander) Expand(ctx context.Context, question string) ([]string, error) {
	if strings.TrimSpace(question) == "" {
		return nil, errors.New("question is empty")
	}

	text, err := model.GenerateText(ctx, e.model, expandSystemPrompt, question)
	if err != nil {
		return nil, err
	}

	variants := splitLines(text)
	logging.FromContextOr(ctx, e.logger).DebugContext(ctx, "expanded question",
		"question", question,
		"variants", len(variants),
	)
	return variants, nil
}

// splitLines splits text on newline boundaries, trims each line, and drops
// empty lines.
func splitLines(text string) []string {
	var lines []string
	for line := range strings.Lines(text) {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
