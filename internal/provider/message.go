package provider

import "encoding/json"

// Role identifies who produced a Message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message is a single entry in a conversation.
//
// Assistant messages may carry ToolCalls. Tool messages carry the result of one
// call and are correlated to it through ToolCallID.
type Message struct {
	Role    Role
	Content string

	// Assistant only.
	ToolCalls []ToolCall

	// Tool only.
	ToolCallID string
	ToolName   string
	IsError    bool
}

// ToolCall is a model-issued request to run a named tool.
type ToolCall struct {
	ID       string
	Function FunctionCall
}

// FunctionCall names the tool and carries its JSON-encoded arguments.
type FunctionCall struct {
	Name      string
	Arguments json.RawMessage
}

// SystemMessage builds a system message.
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage builds a user message.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// ToolResultMessage builds the tool message answering tc.
func ToolResultMessage(tc ToolCall, content string, isError bool) Message {
	return Message{
		Role:       RoleTool,
		Content:    content,
		ToolCallID: tc.ID,
		ToolName:   tc.Function.Name,
		IsError:    isError,
	}
}

// HasToolCalls reports whether m requests at least one tool call.
func (m Message) HasToolCalls() bool {
	return len(m.ToolCalls) > 0
}
