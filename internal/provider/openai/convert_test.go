package openai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cyclone1070/weatheragent/internal/provider"
	"github.com/Cyclone1070/weatheragent/internal/tool"
)

func TestToOpenAIMessages_AssistantWithToolCall(t *testing.T) {
	call := provider.ToolCall{ID: "call_1", Function: provider.FunctionCall{Name: "create_event"}}

	msgs := toOpenAIMessages([]provider.Message{
		{Role: provider.RoleAssistant, Content: "Creating it.", ToolCalls: []provider.ToolCall{call}},
		provider.ToolResultMessage(call, `{"id":"evt"}`, false),
	})

	require.Len(t, msgs, 2)
	asst := msgs[0].OfAssistant
	require.NotNil(t, asst)
	assert.Equal(t, "Creating it.", asst.Content.OfString.Value)
	require.Len(t, asst.ToolCalls, 1)
	assert.Equal(t, "call_1", asst.ToolCalls[0].ID)
	assert.Equal(t, "{}", asst.ToolCalls[0].Function.Arguments)

	require.NotNil(t, msgs[1].OfTool)
	assert.Equal(t, "call_1", msgs[1].OfTool.ToolCallID)
}

func TestToOpenAIMessages_MarshalsRoles(t *testing.T) {
	msgs := toOpenAIMessages([]provider.Message{
		provider.SystemMessage("s"),
		provider.UserMessage("u"),
		{Role: provider.RoleAssistant, Content: "a"},
	})

	raw, err := json.Marshal(msgs)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "system", decoded[0]["role"])
	assert.Equal(t, "user", decoded[1]["role"])
	assert.Equal(t, "assistant", decoded[2]["role"])
	assert.Equal(t, "a", decoded[2]["content"])
}

func TestToOpenAIMessages_SkipsEmptyAssistantTurn(t *testing.T) {
	msgs := toOpenAIMessages([]provider.Message{
		provider.UserMessage("hello"),
		{Role: provider.RoleAssistant},
		provider.UserMessage("weather in Paris?"),
	})

	raw, err := json.Marshal(msgs)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "user", decoded[0]["role"])
	assert.Equal(t, "user", decoded[1]["role"])
	assert.Equal(t, "weather in Paris?", decoded[1]["content"])
}

func TestSchemaToMap(t *testing.T) {
	m, err := schemaToMap(tool.Object(map[string]*tool.Schema{
		"page": {Type: tool.TypeString, Enum: []string{"hourbyhour", "tenday"}},
	}))
	require.NoError(t, err)
	assert.Equal(t, "object", m["type"])
	props := m["properties"].(map[string]any)
	assert.Equal(t, []any{"hourbyhour", "tenday"}, props["page"].(map[string]any)["enum"])

	empty, err := schemaToMap(nil)
	require.NoError(t, err)
	assert.Equal(t, "object", empty["type"])
	assert.NotNil(t, empty["properties"])

	noProps, err := schemaToMap(tool.Object(nil))
	require.NoError(t, err)
	assert.NotNil(t, noProps["properties"])
}

func TestToOpenAITools_OmitsEmptyDescription(t *testing.T) {
	tools, err := toOpenAITools([]tool.Declaration{{Name: "a"}, {Name: "b", Description: "desc"}})

	require.NoError(t, err)
	require.Len(t, tools, 2)
	assert.False(t, tools[0].Function.Description.Valid())
	assert.Equal(t, "desc", tools[1].Function.Description.Value)
}
