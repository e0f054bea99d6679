// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package pipeline_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-a2a/ragflow/model"
	"github.com/go-a2a/ragflow/pipeline"
	"github.com/go-a2a/ragflow/types"
)

// stagedModel dispatches on the system instruction to behave as the
// expansion, step-back, or summarize model, the way the real pipeline uses
// one model for all three roles.
type stagedModel struct {
	mu            sync.Mutex
	summarizeCall int
}

func (m *stagedModel) Name() string { return "staged" }

func (m *stagedModel) GenerateContent(ctx context.Context, request *model.LLMRequest) (*model.LLMResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	system, user := splitRequest(request)
	switch {
	case strings.Contains(system, "three different versions"):
		return respond("variant one\nvariant two\nvariant three"), nil

	case strings.Contains(system, "step back"):
		return respond("step-back of " + user), nil

	case strings.Contains(system, "summary"):
		m.summarizeCall++
		return respond(fmt.Sprintf("summary-%d", m.summarizeCall)), nil

	default:
		return nil, fmt.Errorf("unexpected system instruction: %q", system)
	}
}

func splitRequest(request *model.LLMRequest) (system, lastUser string) {
	for _, content := range request.Contents {
		var text string
		for _, part := range content.Parts {
			text += part.Text
		}
		switch content.Role {
		case model.RoleSystem:
			system += text
		case model.RoleUser:
			lastUser = text
		}
	}
	return system, lastUser
}

func respond(text string) *model.LLMResponse {
	return &model.LLMResponse{Content: model.ModelContent(text)}
}

// recordingProvider records every query and returns one fixed document each.
type recordingProvider struct {
	queries []string
}

func (p *recordingProvider) Name() string { return "recording" }

func (p *recordingProvider) Search(ctx context.Context, query string) (string, error) {
	p.queries = append(p.queries, query)
	return "document for " + query, nil
}

func TestPipeline_Run(t *testing.T) {
	m := &stagedModel{}
	provider := &recordingProvider{}
	p := pipeline.New(m, provider, pipeline.WithSearchDelay(0))

	got, err := p.Run(t.Context(), "Latest development to query information from a vector database")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// 3 variants plus 3 step-back questions, variants searched first.
	wantQueries := []string{
		"variant one",
		"variant two",
		"variant three",
		"step-back of variant one",
		"step-back of variant two",
		"step-back of variant three",
	}
	if diff := cmp.Diff(wantQueries, provider.queries); diff != "" {
		t.Errorf("search queries mismatch (-want +got):\n%s", diff)
	}

	// 6 documents cost one seed call plus five refinement steps; the final
	// summary is the last step's output.
	if want := "summary-6"; got != want {
		t.Errorf("Run = %q, want %q", got, want)
	}
}

func TestPipeline_Run_runIDOnStageRecords(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p := pipeline.New(&stagedModel{}, &recordingProvider{},
		pipeline.WithSearchDelay(0),
		pipeline.WithLogger(logger),
	)

	if _, err := p.Run(t.Context(), "some question"); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Records emitted inside the stages, not by the run loop itself.
	stageMessages := []string{
		"expanded question",
		"generated step-back question",
		"collected document",
		"refined summary",
	}
	lines := strings.Split(buf.String(), "\n")
	for _, msg := range stageMessages {
		found := false
		for _, line := range lines {
			if !strings.Contains(line, msg) {
				continue
			}
			found = true
			if !strings.Contains(line, "run_id=") {
				t.Errorf("record %q missing run_id attribute: %s", msg, line)
			}
		}
		if !found {
			t.Errorf("no %q record emitted", msg)
		}
	}
}

type erroringModel struct {
	err error
}

func (m *erroringModel) Name() string { return "erroring" }

func (m *erroringModel) GenerateContent(ctx context.Context, request *model.LLMRequest) (*model.LLMResponse, error) {
	return nil, m.err
}

func TestPipeline_Run_expandStageError(t *testing.T) {
	m := &erroringModel{err: fmt.Errorf("dial tcp: %w", types.ErrModelUnavailable)}
	p := pipeline.New(m, &recordingProvider{}, pipeline.WithSearchDelay(0))

	_, err := p.Run(t.Context(), "some question")
	if err == nil {
		t.Fatal("Run: want error, got nil")
	}

	var stageErr *types.StageError
	if !errors.As(err, &stageErr) {
		t.Fatalf("Run error %T, want *types.StageError", err)
	}
	if stageErr.Stage != types.StageExpand {
		t.Errorf("Stage = %q, want %q", stageErr.Stage, types.StageExpand)
	}
	if !errors.Is(err, types.ErrModelUnavailable) {
		t.Errorf("error should wrap ErrModelUnavailable, got %v", err)
	}
}

// blankModel produces an empty expansion, which must fail the run before any
// search happens.
type blankModel struct{}

func (m *blankModel) Name() string { return "blank" }

func (m *blankModel) GenerateContent(ctx context.Context, request *model.LLMRequest) (*model.LLMResponse, error) {
	return respond("   \n  "), nil
}

func TestPipeline_Run_malformedExpansion(t *testing.T) {
	provider := &recordingProvider{}
	p := pipeline.New(&blankModel{}, provider, pipeline.WithSearchDelay(0))

	_, err := p.Run(t.Context(), "some question")
	if !errors.Is(err, types.ErrMalformedExpansion) {
		t.Fatalf("Run error = %v, want ErrMalformedExpansion", err)
	}
	if len(provider.queries) != 0 {
		t.Errorf("search queries = %d, want 0", len(provider.queries))
	}
}

type unavailableProvider struct{}

func (p *unavailableProvider) Name() string { return "unavailable" }

func (p *unavailableProvider) Search(ctx context.Context, query string) (string, error) {
	return "", fmt.Errorf("connection refused: %w", types.ErrSearchUnavailable)
}

func TestPipeline_Run_searchStageError(t *testing.T) {
	p := pipeline.New(&stagedModel{}, &unavailableProvider{}, pipeline.WithSearchDelay(0))

	_, err := p.Run(t.Context(), "some question")
	if err == nil {
		t.Fatal("Run: want error, got nil")
	}

	var stageErr *types.StageError
	if !errors.As(err, &stageErr) {
		t.Fatalf("Run error %T, want *types.StageError", err)
	}
	if stageErr.Stage != types.StageSearch {
		t.Errorf("Stage = %q, want %q", stageErr.Stage, types.StageSearch)
	}
	// The failing query stays visible in the message for operators.
	if !strings.Contains(err.Error(), "variant one") {
		t.Errorf("error should name the failing query, got %q", err.Error())
	}
}
