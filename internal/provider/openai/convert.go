package openai

import (
	"encoding/json"
	"errors"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/shared"

	"github.com/Cyclone1070/weatheragent/internal/provider"
	"github.com/Cyclone1070/weatheragent/internal/tool"
)

func toOpenAIMessages(messages []provider.Message) []openaisdk.ChatCompletionMessageParamUnion {
	out := make([]openaisdk.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case provider.RoleSystem:
			out = append(out, openaisdk.SystemMessage(msg.Content))
		case provider.RoleUser:
			out = append(out, openaisdk.UserMessage(msg.Content))
		case provider.RoleTool:
			out = append(out, openaisdk.ToolMessage(msg.Content, msg.ToolCallID))
		case provider.RoleAssistant:
			// An assistant turn needs content or tool calls.
			if msg.Content == "" && len(msg.ToolCalls) == 0 {
				continue
			}
			out = append(out, assistantMessage(msg))
		}
	}
	return out
}

func assistantMessage(msg provider.Message) openaisdk.ChatCompletionMessageParamUnion {
	asst := openaisdk.ChatCompletionAssistantMessageParam{}
	if msg.Content != "" {
		asst.Content.OfString = openaisdk.String(msg.Content)
	}
	for _, tc := range msg.ToolCalls {
		args := string(tc.Function.Arguments)
		if args == "" {
			args = "{}"
		}
		asst.ToolCalls = append(asst.ToolCalls, openaisdk.ChatCompletionMessageToolCallParam{
			ID: tc.ID,
			Function: openaisdk.ChatCompletionMessageToolCallFunctionParam{
				Name:      tc.Function.Name,
				Arguments: args,
			},
		})
	}
	return openaisdk.ChatCompletionMessageParamUnion{OfAssistant: &asst}
}

func toOpenAITools(decls []tool.Declaration) ([]openaisdk.ChatCompletionToolParam, error) {
	out := make([]openaisdk.ChatCompletionToolParam, 0, len(decls))
	for _, d := range decls {
		params, err := schemaToMap(d.Parameters)
		if err != nil {
			return nil, err
		}
		fn := shared.FunctionDefinitionParam{
			Name:       d.Name,
			Parameters: params,
		}
		if d.Description != "" {
			fn.Description = openaisdk.String(d.Description)
		}
		out = append(out, openaisdk.ChatCompletionToolParam{Function: fn})
	}
	return out, nil
}

// schemaToMap renders a tool schema as the free-form JSON object the API expects.
// A tool without parameters still needs an empty object schema.
func schemaToMap(s *tool.Schema) (shared.FunctionParameters, error) {
	if s == nil {
		return shared.FunctionParameters{"type": "object", "properties": map[string]any{}}, nil
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var m shared.FunctionParameters
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	if _, ok := m["properties"]; !ok && s.Type == tool.TypeObject {
		m["properties"] = map[string]any{}
	}
	return m, nil
}

func fromOpenAIResponse(backend string, resp *openaisdk.ChatCompletion) (*provider.Message, error) {
	if resp == nil || len(resp.Choices) == 0 {
		return nil, &provider.ProviderError{
			Backend:    backend,
			Code:       provider.ErrorCodeEmptyResponse,
			Message:    "no choices in response",
			Underlying: provider.ErrEmptyResponse,
		}
	}

	choice := resp.Choices[0]
	if choice.FinishReason == "content_filter" {
		return nil, &provider.ProviderError{
			Backend:    backend,
			Code:       provider.ErrorCodeContentBlocked,
			Message:    "content blocked by content filter",
			Underlying: provider.ErrContentBlocked,
		}
	}

	msg := &provider.Message{
		Role:    provider.RoleAssistant,
		Content: choice.Message.Content,
	}
	for _, tc := range choice.Message.ToolCalls {
		msg.ToolCalls = append(msg.ToolCalls, provider.ToolCall{
			ID: tc.ID,
			Function: provider.FunctionCall{
				Name:      tc.Function.Name,
				Arguments: json.RawMessage(tc.Function.Arguments),
			},
		})
	}
	return msg, nil
}

func mapOpenAIError(backend string, err error) error {
	var apiErr *openaisdk.Error
	if !errors.As(err, &apiErr) {
		return provider.FromStatus(backend, 0, "", err)
	}

	if apiErr.Code == "context_length_exceeded" {
		return &provider.ProviderError{
			Backend:    backend,
			Code:       provider.ErrorCodeContextLength,
			Message:    apiErr.Message,
			Underlying: errors.Join(provider.ErrContextLengthExceeded, err),
		}
	}
	if apiErr.Code == "content_filter" {
		return &provider.ProviderError{
			Backend:    backend,
			Code:       provider.ErrorCodeContentBlocked,
			Message:    apiErr.Message,
			Underlying: errors.Join(provider.ErrContentBlocked, err),
		}
	}
	return provider.FromStatus(backend, apiErr.StatusCode, apiErr.Message, err)
}
