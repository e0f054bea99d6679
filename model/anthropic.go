// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"context"
	"fmt"
	"os"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/shared/constant"
	"google.golang.org/genai"

	"github.com/go-a2a/ragflow/pkg/logging"
)

const (
	// ClaudeDefaultModel is the default model name for [Claude].
	ClaudeDefaultModel = string(anthropic.ModelClaude3_5HaikuLatest)

	// EnvAnthropicAPIKey is the environment variable name for the Anthropic API key.
	EnvAnthropicAPIKey = "ANTHROPIC_API_KEY"

	// claudeDefaultMaxTokens is the max output tokens used when the request
	// config does not set one.
	claudeDefaultMaxTokens = 4096
)

// Claude represents a Claude Large Language Model.
type Claude struct {
	*Base

	anthropicClient anthropic.Client
}

var _ Model = (*Claude)(nil)

// NewClaude creates a new Claude LLM instance.
func NewClaude(ctx context.Context, apiKey string, modelName string, opts ...Option) (*Claude, error) {
	// Check API key and use [EnvAnthropicAPIKey] environment variable if not provided
	if apiKey == "" {
		envApiKey := os.Getenv(EnvAnthropicAPIKey)
		if envApiKey == "" {
			return nil, fmt.Errorf("either apiKey arg or %q environment variable must be set", EnvAnthropicAPIKey)
		}
		apiKey = envApiKey
	}

	// Use default model if none provided
	if modelName == "" {
		modelName = ClaudeDefaultModel
	}

	return &Claude{
		Base:            NewBase(modelName, opts...),
		anthropicClient: anthropic.NewClient(option.WithAPIKey(apiKey)),
	}, nil
}

// GenerateContent implements [Model].
func (m *Claude) GenerateContent(ctx context.Context, request *LLMRequest) (*LLMResponse, error) {
	system, rest := systemInstruction(request.Contents)

	messages := make([]anthropic.MessageParam, 0, len(rest))
	for _, content := range rest {
		messages = append(messages, contentToClaudeMessageParam(content))
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(m.model),
		Messages:  messages,
		MaxTokens: claudeDefaultMaxTokens,
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{
			{Text: system, Type: constant.ValueOf[constant.Text]().Default()},
		}
	}

	config := request.Config
	if config == nil {
		config = m.generationConfig
	}
	if config != nil {
		if config.MaxOutputTokens > 0 {
			params.MaxTokens = int64(config.MaxOutputTokens)
		}
		if config.Temperature != nil {
			params.Temperature = anthropic.Float(float64(*config.Temperature))
		}
		if config.TopK != nil {
			params.TopK = anthropic.Int(int64(*config.TopK))
		}
		if config.TopP != nil {
			params.TopP = anthropic.Float(float64(*config.TopP))
		}
	}

	logging.FromContextOr(ctx, m.logger).DebugContext(ctx, "claude generate", "model", m.model, "contents", len(request.Contents))

	message, err := m.anthropicClient.Messages.New(ctx, params)
	if err != nil {
		return nil, classifyErr(fmt.Errorf("claude API error: %w", err))
	}

	return &LLMResponse{
		Content: anthropicMessageToContent(message),
	}, nil
}

// asClaudeRole maps a conversation role to the Anthropic message role.
func asClaudeRole(role Role) anthropic.MessageParamRole {
	if role == RoleModel {
		return anthropic.MessageParamRoleAssistant
	}
	return anthropic.MessageParamRoleUser
}

// contentToClaudeMessageParam converts [*genai.Content] to [anthropic.MessageParam].
func contentToClaudeMessageParam(content *genai.Content) (msgParam anthropic.MessageParam) {
	msgParam.Role = asClaudeRole(content.Role)

	msgParam.Content = make([]anthropic.ContentBlockParamUnion, 0, len(content.Parts))
	for _, part := range content.Parts {
		if part == nil || part.Text == "" {
			continue
		}
		msgParam.Content = append(msgParam.Content, anthropic.NewTextBlock(part.Text))
	}
	return msgParam
}

// anthropicMessageToContent converts an Anthropic message to GenAI content.
func anthropicMessageToContent(message *anthropic.Message) *genai.Content {
	var parts []*genai.Part
	for _, block := range message.Content {
		if block.Type == "text" {
			parts = append(parts, genai.NewPartFromText(block.Text))
		}
	}

	return &genai.Content{
		Role:  RoleModel,
		Parts: parts,
	}
}
