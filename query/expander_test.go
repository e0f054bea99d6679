// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package query_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-a2a/ragflow/model"
	"github.com/go-a2a/ragflow/query"
	"github.com/go-a2a/ragflow/types"
)

// scriptedModel returns a fixed response text for every request and records
// the requests it received.
type scriptedModel struct {
	response string
	err      error
	requests []*model.LLMRequest
}

func (m *scriptedModel) Name() string { return "scripted" }

func (m *scriptedModel) GenerateContent(ctx context.Context, request *model.LLMRequest) (*model.LLMResponse, error) {
	m.requests = append(m.requests, request)
	if m.err != nil {
		return nil, m.err
	}
	return &model.LLMResponse{
		Content: model.ModelContent(m.response),
	}, nil
}

func TestExpander_Expand(t *testing.T) {
	m := &scriptedModel{
		response: "How do modern vector databases handle queries?\n\n  What are recent query features in vector stores?  \nLatest advances in vector database querying\n",
	}
	expander := query.NewExpander(m)

	got, err := expander.Expand(t.Context(), "Latest development to query information from a vector database")
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}

	want := []string{
		"How do modern vector databases handle queries?",
		"What are recent query features in vector stores?",
		"Latest advances in vector database querying",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Expand mismatch (-want +got):\n%s", diff)
	}

	for _, variant := range got {
		if strings.Contains(variant, "\n") {
			t.Errorf("variant %q contains an embedded newline", variant)
		}
		if variant != strings.TrimSpace(variant) {
			t.Errorf("variant %q is not trimmed", variant)
		}
	}
}

func TestExpander_Expand_tolerantLineCount(t *testing.T) {
	// The model ignoring the "exactly three" instruction is not an error;
	// the parser returns however many well-formed lines are present.
	m := &scriptedModel{response: "only one variant"}
	expander := query.NewExpander(m)

	got, err := expander.Expand(t.Context(), "some question")
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len(variants) = %d, want 1", len(got))
	}
}

func TestExpander_Expand_emptyResponse(t *testing.T) {
	m := &scriptedModel{response: "   \n\n  "}
	expander := query.NewExpander(m)

	got, err := expander.Expand(t.Context(), "some question")
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("len(variants) = %d, want 0", len(got))
	}
}

func TestExpander_Expand_emptyQuestion(t *testing.T) {
	expander := query.NewExpander(&scriptedModel{})

	if _, err := expander.Expand(t.Context(), "  "); err == nil {
		t.Fatal("Expand with empty question: want error, got nil")
	}
}

func TestExpander_Expand_modelFailure(t *testing.T) {
	m := &scriptedModel{err: fmt.Errorf("dial tcp: %w", types.ErrModelUnavailable)}
	expander := query.NewExpander(m)

	_, err := expander.Expand(t.Context(), "some question")
	if !errors.Is(err, types.ErrModelUnavailable) {
		t.Fatalf("Expand error = %v, want ErrModelUnavailable", err)
	}
}
