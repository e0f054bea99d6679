// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/go-a2a/ragflow/types"
)

// Role represents the role of a participant in a conversation.
type Role = string

const (
	// RoleSystem is the role of the system.
	RoleSystem Role = "system"

	// RoleUser is the role of the user.
	RoleUser Role = genai.RoleUser

	// RoleModel is the role of the model.
	RoleModel Role = genai.RoleModel
)

// Model represents a generative AI model.
type Model interface {
	// Name returns the name of the model.
	Name() string

	// GenerateContent generates content from the model.
	GenerateContent(ctx context.Context, request *LLMRequest) (*LLMResponse, error)
}

// GenerateText sends a single system instruction and user prompt to m and
// returns the response text with surrounding whitespace trimmed.
//
// It is the convenience form used by the pipeline stages, which all work in
// plain prompt text rather than multi-turn content.
func GenerateText(ctx context.Context, m Model, system, user string) (string, error) {
	contents := make([]*genai.Content, 0, 2)
	if system != "" {
		contents = append(contents, SystemContent(system))
	}
	contents = append(contents, UserContent(user))

	resp, err := m.GenerateContent(ctx, NewLLMRequest(contents))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text()), nil
}

// classifyErr maps a backend transport error to the boundary error kinds so
// callers can classify failures with [errors.Is].
func classifyErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%v: %w", err, types.ErrModelTimeout)
	}
	return fmt.Errorf("%v: %w", err, types.ErrModelUnavailable)
}
