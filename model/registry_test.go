// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package model_test

import (
	"context"
	"testing"

	"github.com/go-a2a/ragflow/model"
)

type staticModel struct {
	name string
}

func (m *staticModel) Name() string { return m.name }

func (m *staticModel) GenerateContent(ctx context.Context, request *model.LLMRequest) (*model.LLMResponse, error) {
	return &model.LLMResponse{}, nil
}

func TestLLMRegistry_ResolveLLM(t *testing.T) {
	registry := model.NewLLMRegistry()

	creator := func(ctx context.Context, apiKey, modelName string) (model.Model, error) {
		return &staticModel{name: modelName}, nil
	}
	if err := registry.RegisterLLM(`test-.*`, creator); err != nil {
		t.Fatalf("RegisterLLM: %v", err)
	}

	if _, err := registry.ResolveLLM("test-small"); err != nil {
		t.Fatalf("ResolveLLM(test-small): %v", err)
	}
	if _, err := registry.ResolveLLM("unknown-model"); err == nil {
		t.Fatal("ResolveLLM(unknown-model): want error, got nil")
	}
}

func TestLLMRegistry_NewLLM(t *testing.T) {
	registry := model.NewLLMRegistry()

	creator := func(ctx context.Context, apiKey, modelName string) (model.Model, error) {
		return &staticModel{name: modelName}, nil
	}
	if err := registry.RegisterLLM(`test-.*`, creator); err != nil {
		t.Fatalf("RegisterLLM: %v", err)
	}

	m, err := registry.NewLLM(t.Context(), "", "test-large")
	if err != nil {
		t.Fatalf("NewLLM: %v", err)
	}
	if got, want := m.Name(), "test-large"; got != want {
		t.Fatalf("Name() = %q, want %q", got, want)
	}
}

func TestLLMRegistry_RegisterLLM_badPattern(t *testing.T) {
	registry := model.NewLLMRegistry()

	creator := func(ctx context.Context, apiKey, modelName string) (model.Model, error) {
		return &staticModel{name: modelName}, nil
	}
	if err := registry.RegisterLLM(`test-(`, creator); err == nil {
		t.Fatal("RegisterLLM with invalid pattern: want error, got nil")
	}
}
