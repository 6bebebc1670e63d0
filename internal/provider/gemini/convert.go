package gemini

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Cyclone1070/weatheragent/internal/provider"
	"github.com/Cyclone1070/weatheragent/internal/tool"
	"github.com/google/uuid"
	"google.golang.org/genai"
)

// toGeminiContents splits out the system instruction and converts the rest of
// the conversation to Gemini contents. Tool results are sent as user turns
// carrying a FunctionResponse part.
func toGeminiContents(messages []provider.Message) (*genai.Content, []*genai.Content, error) {
	var system *genai.Content
	contents := make([]*genai.Content, 0, len(messages))

	for _, msg := range messages {
		switch msg.Role {
		case provider.RoleSystem:
			system = genai.NewContentFromText(msg.Content, genai.RoleUser)

		case provider.RoleUser:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleUser))

		case provider.RoleAssistant:
			parts := make([]*genai.Part, 0, len(msg.ToolCalls)+1)
			if msg.Content != "" {
				parts = append(parts, genai.NewPartFromText(msg.Content))
			}
			for _, tc := range msg.ToolCalls {
				args, err := decodeArgs(tc.Function.Arguments)
				if err != nil {
					return nil, nil, fmt.Errorf("tool call %s: %w", tc.Function.Name, err)
				}
				parts = append(parts, &genai.Part{
					FunctionCall: &genai.FunctionCall{
						ID:   tc.ID,
						Name: tc.Function.Name,
						Args: args,
					},
				})
			}
			// Skip empty messages
			if len(parts) == 0 {
				continue
			}
			contents = append(contents, genai.NewContentFromParts(parts, genai.RoleModel))

		case provider.RoleTool:
			key := "output"
			if msg.IsError {
				key = "error"
			}
			contents = append(contents, genai.NewContentFromParts([]*genai.Part{{
				FunctionResponse: &genai.FunctionResponse{
					ID:       msg.ToolCallID,
					Name:     msg.ToolName,
					Response: map[string]any{key: msg.Content},
				},
			}}, genai.RoleUser))
		}
	}

	return system, contents, nil
}

func decodeArgs(raw json.RawMessage) (map[string]any, error) {
	if len(raw) == 0 {
		return map[string]any{}, nil
	}
	var args map[string]any
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, err
	}
	return args, nil
}

// toGeminiConfig returns the generation settings shared by every request.
func toGeminiConfig(maxOutputTokens int32) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0),
		MaxOutputTokens: maxOutputTokens,
		SafetySettings:  defaultSafetySettings(),
	}
}

// defaultSafetySettings turns blocking off for every harm category.
func defaultSafetySettings() []*genai.SafetySetting {
	return []*genai.SafetySetting{
		{
			Category:  genai.HarmCategoryHateSpeech,
			Threshold: genai.HarmBlockThresholdOff,
		},
		{
			Category:  genai.HarmCategoryDangerousContent,
			Threshold: genai.HarmBlockThresholdOff,
		},
		{
			Category:  genai.HarmCategoryHarassment,
			Threshold: genai.HarmBlockThresholdOff,
		},
		{
			Category:  genai.HarmCategorySexuallyExplicit,
			Threshold: genai.HarmBlockThresholdOff,
		},
	}
}

// toGeminiTools converts tool declarations to Gemini tools.
func toGeminiTools(decls []tool.Declaration) []*genai.Tool {
	if len(decls) == 0 {
		return nil
	}

	functionDeclarations := make([]*genai.FunctionDeclaration, 0, len(decls))
	for _, d := range decls {
		fd := &genai.FunctionDeclaration{
			Name:        d.Name,
			Description: d.Description,
		}
		if d.Parameters != nil {
			fd.Parameters = toGeminiSchema(d.Parameters)
		}
		functionDeclarations = append(functionDeclarations, fd)
	}

	return []*genai.Tool{
		{FunctionDeclarations: functionDeclarations},
	}
}

// toGeminiSchema converts a tool schema to a Gemini schema, recursing into
// properties and array items.
func toGeminiSchema(s *tool.Schema) *genai.Schema {
	schema := &genai.Schema{
		Type:        toGeminiType(s.Type),
		Description: s.Description,
		Default:     s.Default,
	}
	if len(s.Enum) > 0 {
		schema.Enum = s.Enum
	}
	if len(s.Properties) > 0 {
		schema.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			schema.Properties[name] = toGeminiSchema(prop)
		}
	}
	if s.Items != nil {
		schema.Items = toGeminiSchema(s.Items)
	}
	if len(s.Required) > 0 {
		schema.Required = s.Required
	}
	return schema
}

// toGeminiType converts a schema type to Gemini Type.
func toGeminiType(t tool.Type) genai.Type {
	switch t {
	case tool.TypeString:
		return genai.TypeString
	case tool.TypeNumber:
		return genai.TypeNumber
	case tool.TypeInteger:
		return genai.TypeInteger
	case tool.TypeBoolean:
		return genai.TypeBoolean
	case tool.TypeArray:
		return genai.TypeArray
	case tool.TypeObject:
		return genai.TypeObject
	default:
		return genai.TypeString
	}
}

// fromGeminiResponse converts the first candidate to an assistant message.
// Gemini may omit call ids, so missing ones are generated.
func fromGeminiResponse(resp *genai.GenerateContentResponse) (*provider.Message, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, &provider.ProviderError{
			Backend:    backendName,
			Code:       provider.ErrorCodeEmptyResponse,
			Message:    "no candidates in response",
			Underlying: provider.ErrEmptyResponse,
		}
	}

	candidate := resp.Candidates[0]

	if candidate.FinishReason == genai.FinishReasonSafety {
		return nil, &provider.ProviderError{
			Backend:    backendName,
			Code:       provider.ErrorCodeContentBlocked,
			Message:    "content blocked by safety filters",
			Underlying: provider.ErrContentBlocked,
		}
	}

	msg := &provider.Message{Role: provider.RoleAssistant}
	if candidate.Content == nil {
		return msg, nil
	}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil {
			continue
		}
		if part.Text != "" && !part.Thought {
			text.WriteString(part.Text)
		}
		if fc := part.FunctionCall; fc != nil {
			args, err := json.Marshal(fc.Args)
			if err != nil {
				return nil, fmt.Errorf("encode %s arguments: %w", fc.Name, err)
			}
			id := fc.ID
			if id == "" {
				id = uuid.NewString()
			}
			msg.ToolCalls = append(msg.ToolCalls, provider.ToolCall{
				ID:       id,
				Function: provider.FunctionCall{Name: fc.Name, Arguments: args},
			})
		}
	}
	msg.Content = text.String()

	if candidate.FinishReason == genai.FinishReasonMaxTokens && msg.Content == "" && !msg.HasToolCalls() {
		return nil, &provider.ProviderError{
			Backend:    backendName,
			Code:       provider.ErrorCodeContextLength,
			Message:    "response truncated due to max tokens",
			Underlying: provider.ErrContextLengthExceeded,
		}
	}

	return msg, nil
}

// mapGeminiError maps Gemini API errors to provider errors.
func mapGeminiError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return provider.FromStatus(backendName, apiErr.Code, apiErr.Message, err)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return provider.FromStatus(backendName, apiErrPtr.Code, apiErrPtr.Message, err)
	}

	return provider.FromStatus(backendName, 0, "", err)
}
