package anthropic

import (
	"encoding/json"
	"errors"
	"strings"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"

	"github.com/Cyclone1070/weatheragent/internal/provider"
	"github.com/Cyclone1070/weatheragent/internal/tool"
)

// toAnthropicMessages moves system messages into the top-level system field
// and converts the rest. Tool results travel as tool_result blocks in a user turn.
func toAnthropicMessages(messages []provider.Message) ([]anthropicsdk.TextBlockParam, []anthropicsdk.MessageParam, error) {
	var system []anthropicsdk.TextBlockParam
	out := make([]anthropicsdk.MessageParam, 0, len(messages))

	for _, msg := range messages {
		switch msg.Role {
		case provider.RoleSystem:
			system = append(system, anthropicsdk.TextBlockParam{Text: msg.Content})

		case provider.RoleUser:
			out = append(out, anthropicsdk.NewUserMessage(anthropicsdk.NewTextBlock(msg.Content)))

		case provider.RoleAssistant:
			blocks := make([]anthropicsdk.ContentBlockParamUnion, 0, len(msg.ToolCalls)+1)
			if msg.Content != "" {
				blocks = append(blocks, anthropicsdk.NewTextBlock(msg.Content))
			}
			for _, tc := range msg.ToolCalls {
				input := tc.Function.Arguments
				if len(input) == 0 {
					input = json.RawMessage(`{}`)
				}
				if !json.Valid(input) {
					return nil, nil, errors.New("tool call " + tc.Function.Name + ": arguments are not valid JSON")
				}
				blocks = append(blocks, anthropicsdk.NewToolUseBlock(tc.ID, input, tc.Function.Name))
			}
			// The API rejects empty assistant turns.
			if len(blocks) == 0 {
				continue
			}
			out = append(out, anthropicsdk.NewAssistantMessage(blocks...))

		case provider.RoleTool:
			out = append(out, anthropicsdk.NewUserMessage(
				anthropicsdk.NewToolResultBlock(msg.ToolCallID, msg.Content, msg.IsError),
			))
		}
	}

	return system, out, nil
}

func toAnthropicTools(decls []tool.Declaration) ([]anthropicsdk.ToolUnionParam, error) {
	out := make([]anthropicsdk.ToolUnionParam, 0, len(decls))
	for _, d := range decls {
		schema, err := toInputSchema(d.Parameters)
		if err != nil {
			return nil, err
		}
		tp := &anthropicsdk.ToolParam{
			Name:        d.Name,
			InputSchema: schema,
		}
		if d.Description != "" {
			tp.Description = anthropicsdk.String(d.Description)
		}
		out = append(out, anthropicsdk.ToolUnionParam{OfTool: tp})
	}
	return out, nil
}

func toInputSchema(s *tool.Schema) (anthropicsdk.ToolInputSchemaParam, error) {
	schema := anthropicsdk.ToolInputSchemaParam{Properties: map[string]any{}}
	if s == nil {
		return schema, nil
	}
	if len(s.Properties) > 0 {
		raw, err := json.Marshal(s.Properties)
		if err != nil {
			return schema, err
		}
		var props map[string]any
		if err := json.Unmarshal(raw, &props); err != nil {
			return schema, err
		}
		schema.Properties = props
	}
	schema.Required = s.Required
	return schema, nil
}

func fromAnthropicResponse(resp *anthropicsdk.Message) (*provider.Message, error) {
	if resp == nil {
		return nil, &provider.ProviderError{
			Backend:    backendName,
			Code:       provider.ErrorCodeEmptyResponse,
			Message:    "empty response",
			Underlying: provider.ErrEmptyResponse,
		}
	}
	if resp.StopReason == anthropicsdk.StopReasonRefusal {
		return nil, &provider.ProviderError{
			Backend:    backendName,
			Code:       provider.ErrorCodeContentBlocked,
			Message:    "model refused to answer",
			Underlying: provider.ErrContentBlocked,
		}
	}

	msg := &provider.Message{Role: provider.RoleAssistant}
	var text strings.Builder
	for _, block := range resp.Content {
		switch block.Type {
		case "text":
			text.WriteString(block.Text)
		case "tool_use":
			input := block.Input
			if len(input) == 0 {
				input = json.RawMessage(`{}`)
			}
			msg.ToolCalls = append(msg.ToolCalls, provider.ToolCall{
				ID:       block.ID,
				Function: provider.FunctionCall{Name: block.Name, Arguments: input},
			})
		}
	}
	msg.Content = text.String()
	return msg, nil
}

func mapAnthropicError(err error) error {
	var apiErr *anthropicsdk.Error
	if !errors.As(err, &apiErr) {
		return provider.FromStatus(backendName, 0, "", err)
	}
	if apiErr.StatusCode == 400 && strings.Contains(apiErr.RawJSON(), "prompt is too long") {
		return &provider.ProviderError{
			Backend:    backendName,
			Code:       provider.ErrorCodeContextLength,
			Message:    "prompt is too long",
			Underlying: errors.Join(provider.ErrContextLengthExceeded, err),
		}
	}
	return provider.FromStatus(backendName, apiErr.StatusCode, "", err)
}
