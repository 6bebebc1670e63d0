package anthropic

import (
	"context"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"

	"github.com/Cyclone1070/weatheragent/internal/provider"
	"github.com/Cyclone1070/weatheragent/internal/tool"
)

const (
	backendName = "anthropic"

	// The Messages API requires max_tokens on every request.
	defaultMaxTokens = 4096
)

// AnthropicProvider implements provider.Provider on the Messages API.
type AnthropicProvider struct {
	api       MessagesAPI
	model     string
	maxTokens int64
}

// New creates a provider over an existing messages client.
func New(api MessagesAPI, model string, maxOutputTokens int) *AnthropicProvider {
	maxTokens := int64(maxOutputTokens)
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	return &AnthropicProvider{api: api, model: model, maxTokens: maxTokens}
}

// Generate sends the conversation and tool declarations and returns the reply.
func (p *AnthropicProvider) Generate(ctx context.Context, messages []provider.Message, tools []tool.Declaration) (*provider.Message, error) {
	system, msgs, err := toAnthropicMessages(messages)
	if err != nil {
		return nil, &provider.ProviderError{
			Backend:    backendName,
			Code:       provider.ErrorCodeInvalidRequest,
			Message:    "convert messages",
			Underlying: err,
		}
	}

	params := anthropicsdk.MessageNewParams{
		Model:       anthropicsdk.Model(p.model),
		MaxTokens:   p.maxTokens,
		Messages:    msgs,
		System:      system,
		Temperature: anthropicsdk.Float(0),
	}
	if len(tools) > 0 {
		toolParams, err := toAnthropicTools(tools)
		if err != nil {
			return nil, &provider.ProviderError{
				Backend:    backendName,
				Code:       provider.ErrorCodeInvalidRequest,
				Message:    "convert tool schemas",
				Underlying: err,
			}
		}
		params.Tools = toolParams
	}

	resp, err := p.api.New(ctx, params)
	if err != nil {
		return nil, mapAnthropicError(err)
	}
	return fromAnthropicResponse(resp)
}

// Model returns the model name.
func (p *AnthropicProvider) Model() string {
	return p.model
}
