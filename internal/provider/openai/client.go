package openai

import (
	"context"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/azure"
	"github.com/openai/openai-go/option"
)

// CompletionsAPI is the part of the SDK the provider calls.
// *openaisdk.ChatCompletionService satisfies it.
type CompletionsAPI interface {
	New(ctx context.Context, body openaisdk.ChatCompletionNewParams, opts ...option.RequestOption) (*openaisdk.ChatCompletion, error)
}

// NewDirect returns a provider talking to api.openai.com.
func NewDirect(apiKey, model string, maxOutputTokens int, opts ...option.RequestOption) *OpenAIProvider {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	client := openaisdk.NewClient(opts...)
	return New(&client.Chat.Completions, BackendOpenAI, model, maxOutputTokens)
}

// NewAzure returns a provider talking to an Azure OpenAI deployment. The
// deployment name doubles as the model name in requests.
func NewAzure(endpoint, apiKey, apiVersion, deployment string, maxOutputTokens int, opts ...option.RequestOption) *OpenAIProvider {
	opts = append([]option.RequestOption{
		azure.WithEndpoint(endpoint, apiVersion),
		azure.WithAPIKey(apiKey),
	}, opts...)
	client := openaisdk.NewClient(opts...)
	return New(&client.Chat.Completions, BackendAzure, deployment, maxOutputTokens)
}
