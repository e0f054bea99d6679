// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package model_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/genai"

	"github.com/go-a2a/ragflow/model"
	"github.com/go-a2a/ragflow/types"
)

type echoModel struct {
	name string
}

func (m *echoModel) Name() string { return m.name }

// GenerateContent echoes back the user text of the request, padded with whitespace
// to exercise the trimming in [model.GenerateText].
func (m *echoModel) GenerateContent(ctx context.Context, request *model.LLMRequest) (*model.LLMResponse, error) {
	var user string
	for _, content := range request.Contents {
		if content.Role == model.RoleUser {
			for _, part := range content.Parts {
				user += part.Text
			}
		}
	}
	return &model.LLMResponse{
		Content: model.ModelContent("  " + user + "\n"),
	}, nil
}

func TestGenerateText(t *testing.T) {
	m := &echoModel{name: "echo"}

	got, err := model.GenerateText(t.Context(), m, "system instruction", "what can the members of The Police do?")
	if err != nil {
		t.Fatalf("GenerateText: %v", err)
	}
	want := "what can the members of The Police do?"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GenerateText mismatch (-want +got):\n%s", diff)
	}
}

type failingModel struct {
	err error
}

func (m *failingModel) Name() string { return "failing" }

func (m *failingModel) GenerateContent(ctx context.Context, request *model.LLMRequest) (*model.LLMResponse, error) {
	return nil, m.err
}

func TestGenerateText_propagatesError(t *testing.T) {
	wantErr := fmt.Errorf("boom: %w", types.ErrModelUnavailable)
	m := &failingModel{err: wantErr}

	if _, err := model.GenerateText(t.Context(), m, "", "question"); err == nil {
		t.Fatal("GenerateText: want error, got nil")
	}
}

func TestLLMResponse_Text(t *testing.T) {
	tests := map[string]struct {
		resp *model.LLMResponse
		want string
	}{
		"nil response": {
			resp: nil,
			want: "",
		},
		"nil content": {
			resp: &model.LLMResponse{},
			want: "",
		},
		"multiple parts": {
			resp: &model.LLMResponse{
				Content: &genai.Content{
					Role: model.RoleModel,
					Parts: []*genai.Part{
						genai.NewPartFromText("first"),
						genai.NewPartFromText(" second"),
					},
				},
			},
			want: "first second",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.resp.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}
