package anthropic

import (
	"context"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// MessagesAPI is the part of the SDK the provider calls.
// *anthropicsdk.MessageService satisfies it.
type MessagesAPI interface {
	New(ctx context.Context, body anthropicsdk.MessageNewParams, opts ...option.RequestOption) (*anthropicsdk.Message, error)
}

// NewClient returns a provider backed by the Anthropic Messages API.
func NewClient(apiKey, model string, maxOutputTokens int, opts ...option.RequestOption) *AnthropicProvider {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	client := anthropicsdk.NewClient(opts...)
	return New(&client.Messages, model, maxOutputTokens)
}
