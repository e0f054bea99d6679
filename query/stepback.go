// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package query

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"
	"google.golang.org/genai"

	"github.com/go-a2a/ragflow/model"
	"github.com/go-a2a/ragflow/pkg/logging"
)

// StepBack derives a single, more generic step-back question from a specific
// one, guided by two fixed worked examples.
type StepBack struct {
	Config

	model model.Model
}

// NewStepBack creates a new [StepBack] generator on top of m.
func NewStepBack(m model.Model, opts ...Option) *StepBack {
	s := &StepBack{
		Config: newConfig(),
		model:  m,
	}
	for _, opt := range opts {
		s.Config = opt.apply(s.Config)
	}
	return s
}

// Generate returns the step-back question for question.
//
// The response text is used as-is apart from whitespace trimming; the prompt
// instruction is the only enforcement of format.
func (s *StepBack) Generate(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", errors.New("question is empty")
	}

	contents := make([]*genai.Content, 0, 2*len(stepBackFewShot)+2)
	contents = append(contents, model.SystemContent(stepBackSystemPrompt))
	for _, example := range stepBackFewShot {
		contents = append(contents,
			model.UserContent(example.question),
			model.ModelContent(example.stepBack),
		)
	}
	contents = append(contents, model.UserContent(question))

	resp, err := s.model.GenerateContent(ctx, model.NewLLMRequest(contents))
	if err != nil {
		return "", err
	}

	stepBack := strings.TrimSpace(resp.Text())
	logging.FromContextOr(ctx, s.logger).DebugContext(ctx, "generated step-back question",
		"question", question,
		"step_back", stepBack,
	)
	return stepBack, nil
}

// GenerateAll applies [StepBack.Generate] to each question independently and
// returns the step-back questions in input order.
//
// The calls are parallelized; unlike the search collector there is no
// rate-limit requirement at the model boundary for this volume. The first
// failure cancels the remaining calls and is returned.
func (s *StepBack) GenerateAll(ctx context.Context, questions []string) ([]string, error) {
	stepBacks := make([]string, len(questions))

	g, ctx := errgroup.WithContext(ctx)
	for i, question := range questions {
		g.Go(func() error {
			stepBack, err := s.Generate(ctx, question)
			if err != nil {
				return err
			}
			stepBacks[i] = stepBack
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stepBacks, nil
}
