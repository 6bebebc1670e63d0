package gemini

import (
	"context"

	"github.com/Cyclone1070/weatheragent/internal/provider"
	"github.com/Cyclone1070/weatheragent/internal/tool"
)

const backendName = "gemini"

// GeminiProvider implements provider.Provider for Google Gemini.
type GeminiProvider struct {
	client          GeminiClient
	modelName       string
	maxOutputTokens int32
}

// New creates a new GeminiProvider with the specified client and model.
func New(client GeminiClient, modelName string, maxOutputTokens int) *GeminiProvider {
	return &GeminiProvider{
		client:          client,
		modelName:       modelName,
		maxOutputTokens: int32(maxOutputTokens),
	}
}

// Generate sends a request to the Gemini API and returns the response.
func (p *GeminiProvider) Generate(ctx context.Context, messages []provider.Message, tools []tool.Declaration) (*provider.Message, error) {
	system, contents, err := toGeminiContents(messages)
	if err != nil {
		return nil, &provider.ProviderError{
			Backend:    backendName,
			Code:       provider.ErrorCodeInvalidRequest,
			Message:    "convert messages",
			Underlying: err,
		}
	}

	config := toGeminiConfig(p.maxOutputTokens)
	config.SystemInstruction = system
	if len(tools) > 0 {
		config.Tools = toGeminiTools(tools)
	}

	resp, err := p.client.GenerateContent(ctx, p.modelName, contents, config)
	if err != nil {
		return nil, mapGeminiError(err)
	}

	return fromGeminiResponse(resp)
}

// Model returns the model requests are sent to.
func (p *GeminiProvider) Model() string {
	return p.modelName
}
