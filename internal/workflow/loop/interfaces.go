package loop

import (
	"context"

	"github.com/Cyclone1070/weatheragent/internal/provider"
	"github.com/Cyclone1070/weatheragent/internal/tool"
	"github.com/Cyclone1070/weatheragent/internal/workflow"
)

// llmProvider communicates with an LLM.
type llmProvider interface {
	// Generate sends messages to the LLM and returns its response.
	Generate(ctx context.Context, messages []provider.Message, tools []tool.Declaration) (*provider.Message, error)
}

// toolManager resolves and runs tool calls.
type toolManager interface {
	// Declarations returns all tool schemas for the LLM.
	Declarations() []tool.Declaration

	// Execute runs a tool call and returns the tool message answering it.
	// Tool faults are reported inside the message, never returned.
	Execute(ctx context.Context, tc provider.ToolCall, events chan<- workflow.Event) provider.Message
}
