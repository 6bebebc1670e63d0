package openai

import (
	"context"

	openaisdk "github.com/openai/openai-go"

	"github.com/Cyclone1070/weatheragent/internal/provider"
	"github.com/Cyclone1070/weatheragent/internal/tool"
)

const (
	BackendOpenAI = "openai"
	BackendAzure  = "azure-openai"
)

// OpenAIProvider implements provider.Provider on the Chat Completions API.
// The same code serves OpenAI and Azure OpenAI; only the client options differ.
type OpenAIProvider struct {
	api             CompletionsAPI
	backend         string
	model           string
	maxOutputTokens int64
}

// New creates a provider over an existing completions client.
func New(api CompletionsAPI, backend, model string, maxOutputTokens int) *OpenAIProvider {
	return &OpenAIProvider{
		api:             api,
		backend:         backend,
		model:           model,
		maxOutputTokens: int64(maxOutputTokens),
	}
}

// Generate sends the conversation and tool declarations and returns the reply.
func (p *OpenAIProvider) Generate(ctx context.Context, messages []provider.Message, tools []tool.Declaration) (*provider.Message, error) {
	params := openaisdk.ChatCompletionNewParams{
		Model:       p.model,
		Messages:    toOpenAIMessages(messages),
		Temperature: openaisdk.Float(0),
	}
	if p.maxOutputTokens > 0 {
		params.MaxTokens = openaisdk.Int(p.maxOutputTokens)
	}
	if len(tools) > 0 {
		toolParams, err := toOpenAITools(tools)
		if err != nil {
			return nil, &provider.ProviderError{
				Backend:    p.backend,
				Code:       provider.ErrorCodeInvalidRequest,
				Message:    "convert tool schemas",
				Underlying: err,
			}
		}
		params.Tools = toolParams
	}

	resp, err := p.api.New(ctx, params)
	if err != nil {
		return nil, mapOpenAIError(p.backend, err)
	}
	return fromOpenAIResponse(p.backend, resp)
}

// Model returns the model or deployment name.
func (p *OpenAIProvider) Model() string {
	return p.model
}

// Backend reports which service the provider talks to.
func (p *OpenAIProvider) Backend() string {
	return p.backend
}
