package provider

import (
	"context"

	"github.com/Cyclone1070/weatheragent/internal/tool"
)

// Provider represents a chat-completion backend with native tool calling.
// Implementations are safe for sequential use by a single dialogue loop.
type Provider interface {
	// Generate sends the full message list (system message first, when present)
	// together with the tool declarations and returns the assistant's reply.
	Generate(ctx context.Context, messages []Message, tools []tool.Declaration) (*Message, error)

	// Model returns the model or deployment name requests are sent to.
	Model() string
}
