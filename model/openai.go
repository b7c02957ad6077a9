// Copyright (c) 2025 TravelDesk Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package model adapts OpenAI-compatible chat-completion endpoints to the
// ADK model.LLM interface. Any backend speaking that protocol works, which
// covers the Gemini OpenAI-compatibility layer used by default.
package model

import (
	"bufio"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"net/http"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/traveldesk/traveldesk-go/common"
	"google.golang.org/adk/model"
	"google.golang.org/genai"
)

type ClientConfig struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

type openAIModel struct {
	name       string
	config     *ClientConfig
	httpClient *http.Client
}

// NewOpenAIModel builds a model.LLM against an OpenAI-compatible endpoint.
// Missing credentials fall back to the MODEL_AGENT_* environment variables.
func NewOpenAIModel(ctx context.Context, modelName string, config *ClientConfig) (model.LLM, error) {
	_ = ctx

	if config == nil {
		config = &ClientConfig{}
	}

	if config.APIKey == "" {
		config.APIKey = os.Getenv(common.MODEL_AGENT_API_KEY)
		if config.APIKey == "" {
			return nil, fmt.Errorf("openai: API key not found, set MODEL_AGENT_API_KEY environment variable or provide config.APIKey")
		}
	}

	if config.BaseURL == "" {
		config.BaseURL = os.Getenv(common.MODEL_AGENT_API_BASE)
		if config.BaseURL == "" {
			config.BaseURL = common.DEFAULT_MODEL_AGENT_API_BASE
		}
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &openAIModel{
		name:       modelName,
		config:     config,
		httpClient: httpClient,
	}, nil
}

func (m *openAIModel) Name() string {
	return m.name
}

func (m *openAIModel) GenerateContent(ctx context.Context, req *model.LLMRequest, stream bool) iter.Seq2[*model.LLMResponse, error] {
	m.maybeAppendUserContent(req)

	chatReq, err := m.buildChatRequest(req)
	if err != nil {
		return func(yield func(*model.LLMResponse, error) bool) {
			yield(nil, fmt.Errorf("failed to convert request: %w", err))
		}
	}

	if stream {
		return m.generateStream(ctx, chatReq)
	}
	return m.generate(ctx, chatReq)
}

type chatRequest struct {
	Model         string         `json:"model"`
	Messages      []message      `json:"messages"`
	Tools         []toolSpec     `json:"tools,omitempty"`
	Temperature   *float64       `json:"temperature,omitempty"`
	MaxTokens     *int           `json:"max_tokens,omitempty"`
	TopP          *float64       `json:"top_p,omitempty"`
	Stop          []string       `json:"stop,omitempty"`
	Stream        bool           `json:"stream,omitempty"`
	StreamOptions *streamOptions `json:"stream_options,omitempty"`
}

type streamOptions struct {
	IncludeUsage bool `json:"include_usage,omitempty"`
}

type message struct {
	Role       string     `json:"role"`
	Content    any        `json:"content,omitempty"`
	ToolCalls  []toolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
}

type toolCall struct {
	ID       string       `json:"id"`
	Index    *int         `json:"index,omitempty"`
	Type     string       `json:"type"`
	Function functionCall `json:"function"`
}

type functionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type toolSpec struct {
	Type     string       `json:"type"`
	Function functionSpec `json:"function"`
}

type functionSpec struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"`
}

type chatResponse struct {
	ID      string   `json:"id"`
	Model   string   `json:"model"`
	Choices []choice `json:"choices"`
	Usage   *usage   `json:"usage,omitempty"`
}

type choice struct {
	Index        int      `json:"index"`
	Message      *message `json:"message,omitempty"`
	Delta        *message `json:"delta,omitempty"`
	FinishReason string   `json:"finish_reason,omitempty"`
}

type usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

func (m *openAIModel) buildChatRequest(req *model.LLMRequest) (*chatRequest, error) {
	chatReq := &chatRequest{
		Model:    m.name,
		Messages: make([]message, 0),
	}

	if req.Config != nil && req.Config.SystemInstruction != nil {
		if sys := extractText(req.Config.SystemInstruction); sys != "" {
			chatReq.Messages = append(chatReq.Messages, message{Role: "system", Content: sys})
		}
	}

	for _, content := range req.Contents {
		msgs, err := convertContent(content)
		if err != nil {
			return nil, err
		}
		chatReq.Messages = append(chatReq.Messages, msgs...)
	}

	if req.Config != nil {
		for _, t := range req.Config.Tools {
			for _, fn := range t.FunctionDeclarations {
				chatReq.Tools = append(chatReq.Tools, convertFunctionDeclaration(fn))
			}
		}
		if req.Config.Temperature != nil {
			temp := float64(*req.Config.Temperature)
			chatReq.Temperature = &temp
		}
		if req.Config.MaxOutputTokens > 0 {
			maxTokens := int(req.Config.MaxOutputTokens)
			chatReq.MaxTokens = &maxTokens
		}
		if req.Config.TopP != nil {
			topP := float64(*req.Config.TopP)
			chatReq.TopP = &topP
		}
		if len(req.Config.StopSequences) > 0 {
			chatReq.Stop = req.Config.StopSequences
		}
	}

	chatReq.StreamOptions = &streamOptions{IncludeUsage: true}

	return chatReq, nil
}

// convertContent maps one genai content to chat messages. Function responses
// split into one "tool" message each; everything else collapses to a single
// message of the mapped role.
func convertContent(content *genai.Content) ([]message, error) {
	if content == nil || len(content.Parts) == 0 {
		return nil, nil
	}

	role := content.Role
	if role == "model" {
		role = "assistant"
	}

	var toolMessages []message
	for _, part := range content.Parts {
		if part.FunctionResponse == nil {
			continue
		}
		responseJSON, err := json.Marshal(part.FunctionResponse.Response)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal function response: %w", err)
		}
		toolCallID := part.FunctionResponse.ID
		if toolCallID == "" {
			toolCallID = newCallID()
		}
		toolMessages = append(toolMessages, message{
			Role:       "tool",
			Content:    string(responseJSON),
			ToolCallID: toolCallID,
		})
	}
	if len(toolMessages) > 0 {
		return toolMessages, nil
	}

	var textParts []string
	var imageParts []map[string]any
	var toolCalls []toolCall

	for _, part := range content.Parts {
		switch {
		case part.Text != "":
			textParts = append(textParts, part.Text)
		case part.InlineData != nil && strings.HasPrefix(part.InlineData.MIMEType, "image/"):
			dataURI := fmt.Sprintf("data:%s;base64,%s",
				part.InlineData.MIMEType, base64.StdEncoding.EncodeToString(part.InlineData.Data))
			imageParts = append(imageParts, map[string]any{
				"type":      "image_url",
				"image_url": map[string]any{"url": dataURI},
			})
		case part.FunctionCall != nil:
			argsJSON, err := json.Marshal(part.FunctionCall.Args)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal function args: %w", err)
			}
			callID := part.FunctionCall.ID
			if callID == "" {
				callID = newCallID()
			}
			toolCalls = append(toolCalls, toolCall{
				ID:   callID,
				Type: "function",
				Function: functionCall{
					Name:      part.FunctionCall.Name,
					Arguments: string(argsJSON),
				},
			})
		}
	}

	msg := message{Role: role}
	switch {
	case len(toolCalls) > 0:
		msg.ToolCalls = toolCalls
		if len(textParts) > 0 {
			msg.Content = strings.Join(textParts, "\n")
		}
	case len(imageParts) > 0:
		blocks := make([]map[string]any, 0, len(textParts)+len(imageParts))
		for _, text := range textParts {
			blocks = append(blocks, map[string]any{"type": "text", "text": text})
		}
		msg.Content = append(blocks, imageParts...)
	case len(textParts) > 0:
		msg.Content = strings.Join(textParts, "\n")
	}

	return []message{msg}, nil
}

func extractText(content *genai.Content) string {
	if content == nil {
		return ""
	}
	var texts []string
	for _, part := range content.Parts {
		if part.Text != "" {
			texts = append(texts, part.Text)
		}
	}
	return strings.Join(texts, "\n")
}

func convertFunctionDeclaration(fn *genai.FunctionDeclaration) toolSpec {
	return toolSpec{
		Type: "function",
		Function: functionSpec{
			Name:        fn.Name,
			Description: fn.Description,
			Parameters:  convertFunctionParameters(fn),
		},
	}
}

func convertFunctionParameters(fn *genai.FunctionDeclaration) map[string]any {
	if fn.ParametersJsonSchema != nil {
		if params, ok := fn.ParametersJsonSchema.(map[string]any); ok {
			return params
		}
		if jsonBytes, err := json.Marshal(fn.ParametersJsonSchema); err == nil {
			var params map[string]any
			if err := json.Unmarshal(jsonBytes, &params); err == nil {
				return params
			}
		}
	}

	if fn.Parameters != nil {
		return schemaToMap(fn.Parameters)
	}
	return map[string]any{"type": "object"}
}

func schemaToMap(schema *genai.Schema) map[string]any {
	result := make(map[string]any)
	if schema.Type != genai.TypeUnspecified {
		result["type"] = strings.ToLower(string(schema.Type))
	}
	if schema.Description != "" {
		result["description"] = schema.Description
	}
	if schema.Items != nil {
		result["items"] = schemaToMap(schema.Items)
	}
	if schema.Properties != nil {
		props := make(map[string]any, len(schema.Properties))
		for k, v := range schema.Properties {
			props[k] = schemaToMap(v)
		}
		result["properties"] = props
	}
	if len(schema.Required) > 0 {
		result["required"] = schema.Required
	}
	if len(schema.Enum) > 0 {
		result["enum"] = schema.Enum
	}
	return result
}

func (m *openAIModel) generate(ctx context.Context, chatReq *chatRequest) iter.Seq2[*model.LLMResponse, error] {
	return func(yield func(*model.LLMResponse, error) bool) {
		httpResp, err := m.sendRequest(ctx, chatReq)
		if err != nil {
			yield(nil, err)
			return
		}
		defer func() {
			_ = httpResp.Body.Close()
		}()

		var resp chatResponse
		if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
			yield(nil, fmt.Errorf("failed to decode response: %w", err))
			return
		}

		llmResp, err := m.convertResponse(&resp)
		if err != nil {
			yield(nil, err)
			return
		}
		yield(llmResp, nil)
	}
}

func (m *openAIModel) generateStream(ctx context.Context, chatReq *chatRequest) iter.Seq2[*model.LLMResponse, error] {
	chatReq.Stream = true

	return func(yield func(*model.LLMResponse, error) bool) {
		httpResp, err := m.sendRequest(ctx, chatReq)
		if err != nil {
			yield(nil, err)
			return
		}
		defer func() {
			_ = httpResp.Body.Close()
		}()

		scanner := bufio.NewScanner(httpResp.Body)
		// SSE lines can carry whole tool-call argument payloads.
		scanner.Buffer(make([]byte, 64*1024), 1024*1024)

		var textBuffer strings.Builder
		var toolCalls []toolCall
		var finalUsage *usage
		var finishReason string

		for scanner.Scan() {
			line := scanner.Text()
			if !strings.HasPrefix(line, "data: ") {
				continue
			}
			data := strings.TrimPrefix(line, "data: ")
			if data == "[DONE]" {
				break
			}

			var chunk chatResponse
			if err := json.Unmarshal([]byte(data), &chunk); err != nil {
				continue
			}
			if chunk.Usage != nil {
				finalUsage = chunk.Usage
			}
			if len(chunk.Choices) == 0 {
				continue
			}

			ch := chunk.Choices[0]
			if ch.FinishReason != "" {
				finishReason = ch.FinishReason
			}
			if ch.Delta == nil {
				continue
			}

			if text, ok := ch.Delta.Content.(string); ok && text != "" {
				textBuffer.WriteString(text)
				partial := &model.LLMResponse{
					Content: &genai.Content{
						Role:  "model",
						Parts: []*genai.Part{{Text: text}},
					},
					Partial: true,
				}
				if !yield(partial, nil) {
					return
				}
			}

			for _, tc := range ch.Delta.ToolCalls {
				targetIdx := 0
				if tc.Index != nil {
					targetIdx = *tc.Index
				}
				for len(toolCalls) <= targetIdx {
					toolCalls = append(toolCalls, toolCall{})
				}
				if tc.ID != "" {
					toolCalls[targetIdx].ID = tc.ID
				}
				if tc.Type != "" {
					toolCalls[targetIdx].Type = tc.Type
				}
				toolCalls[targetIdx].Function.Name += tc.Function.Name
				toolCalls[targetIdx].Function.Arguments += tc.Function.Arguments
			}
		}

		if err := scanner.Err(); err != nil {
			yield(nil, fmt.Errorf("stream error: %w", err))
			return
		}

		if textBuffer.Len() > 0 || len(toolCalls) > 0 || finishReason != "" || finalUsage != nil {
			if finishReason == "" {
				finishReason = "stop"
			}
			yield(m.buildFinalResponse(textBuffer.String(), toolCalls, finalUsage, finishReason), nil)
		}
	}
}

func (m *openAIModel) sendRequest(ctx context.Context, chatReq *chatRequest) (*http.Response, error) {
	reqBody, err := json.Marshal(chatReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	baseURL := strings.TrimSuffix(m.config.BaseURL, "/")
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/chat/completions", bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+m.config.APIKey)
	httpResp, err := m.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(httpResp.Body)
		_ = httpResp.Body.Close()
		return nil, fmt.Errorf("API error (status %d): %s", httpResp.StatusCode, string(body))
	}

	return httpResp, nil
}

func (m *openAIModel) convertResponse(resp *chatResponse) (*model.LLMResponse, error) {
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	ch := resp.Choices[0]
	if ch.Message == nil {
		return nil, fmt.Errorf("no message in choice")
	}

	var parts []*genai.Part
	if text, ok := ch.Message.Content.(string); ok && text != "" {
		parts = append(parts, genai.NewPartFromText(text))
	}

	for _, tc := range ch.Message.ToolCalls {
		var args map[string]any
		if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tool arguments: %w", err)
		}
		part := genai.NewPartFromFunctionCall(tc.Function.Name, args)
		part.FunctionCall.ID = tc.ID
		parts = append(parts, part)
	}

	return &model.LLMResponse{
		Content: &genai.Content{
			Role:  "model",
			Parts: parts,
		},
		FinishReason:  mapFinishReason(ch.FinishReason),
		UsageMetadata: buildUsageMetadata(resp.Usage),
		CustomMetadata: map[string]any{
			"response_model": resp.Model,
		},
	}, nil
}

func (m *openAIModel) buildFinalResponse(text string, toolCalls []toolCall, u *usage, finishReason string) *model.LLMResponse {
	var parts []*genai.Part
	if text != "" {
		parts = append(parts, genai.NewPartFromText(text))
	}

	for _, tc := range toolCalls {
		if tc.ID == "" && tc.Function.Name == "" && tc.Function.Arguments == "" {
			continue
		}
		var args map[string]any
		if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
			continue
		}
		part := genai.NewPartFromFunctionCall(tc.Function.Name, args)
		part.FunctionCall.ID = tc.ID
		parts = append(parts, part)
	}

	return &model.LLMResponse{
		Content: &genai.Content{
			Role:  "model",
			Parts: parts,
		},
		FinishReason:  mapFinishReason(finishReason),
		UsageMetadata: buildUsageMetadata(u),
		CustomMetadata: map[string]any{
			"response_model": m.name,
		},
	}
}

func buildUsageMetadata(u *usage) *genai.GenerateContentResponseUsageMetadata {
	if u == nil {
		return nil
	}

	totalTokens := u.TotalTokens
	if totalTokens == 0 {
		totalTokens = u.PromptTokens + u.CompletionTokens
	}
	return &genai.GenerateContentResponseUsageMetadata{
		PromptTokenCount:     int32(u.PromptTokens),
		CandidatesTokenCount: int32(u.CompletionTokens),
		TotalTokenCount:      int32(totalTokens),
	}
}

func mapFinishReason(reason string) genai.FinishReason {
	switch reason {
	case "stop", "tool_calls", "function_call":
		return genai.FinishReasonStop
	case "length":
		return genai.FinishReasonMaxTokens
	case "content_filter":
		return genai.FinishReasonSafety
	default:
		return genai.FinishReasonOther
	}
}

func newCallID() string {
	return "call_" + uuid.New().String()[:8]
}

// maybeAppendUserContent keeps the conversation valid for strict
// OpenAI-compatible backends, which reject a trailing non-user turn.
func (m *openAIModel) maybeAppendUserContent(req *model.LLMRequest) {
	if len(req.Contents) == 0 {
		req.Contents = append(req.Contents, genai.NewContentFromText("Handle the requests as specified in the System Instruction.", "user"))
		return
	}

	if last := req.Contents[len(req.Contents)-1]; last != nil && last.Role != "user" {
		req.Contents = append(req.Contents, genai.NewContentFromText("Continue processing previous requests as instructed. Exit or provide a summary if no more outputs are needed.", "user"))
	}
}
