package anthropic

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cyclone1070/weatheragent/internal/provider"
	"github.com/Cyclone1070/weatheragent/internal/tool"
)

func newServer(t *testing.T, status int, response string, body *map[string]any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		if body != nil {
			_ = json.Unmarshal(raw, body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, response)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestProvider(srv *httptest.Server, maxTokens int) *AnthropicProvider {
	return NewClient("test-key", "claude-sonnet-4-5", maxTokens, option.WithBaseURL(srv.URL), option.WithMaxRetries(0))
}

const toolUseResponse = `{
  "id": "msg_1",
  "type": "message",
  "role": "assistant",
  "model": "claude-sonnet-4-5",
  "stop_reason": "tool_use",
  "content": [
    {"type": "text", "text": "Let me look that up."},
    {"type": "tool_use", "id": "toolu_1", "name": "extract_city_weather", "input": {"city_name": "Paris"}}
  ],
  "usage": {"input_tokens": 10, "output_tokens": 5}
}`

func TestGenerate_ToolUse(t *testing.T) {
	var body map[string]any
	srv := newServer(t, http.StatusOK, toolUseResponse, &body)

	resp, err := newTestProvider(srv, 1000).Generate(context.Background(), []provider.Message{
		provider.SystemMessage("system text"),
		provider.UserMessage("Weather in Paris?"),
	}, []tool.Declaration{{
		Name:        "extract_city_weather",
		Description: "forecast",
		Parameters:  tool.Object(map[string]*tool.Schema{"city_name": tool.String("City")}, "city_name"),
	}})

	require.NoError(t, err)
	assert.Equal(t, "Let me look that up.", resp.Content)
	require.Len(t, resp.ToolCalls, 1)
	assert.Equal(t, "toolu_1", resp.ToolCalls[0].ID)
	assert.JSONEq(t, `{"city_name":"Paris"}`, string(resp.ToolCalls[0].Function.Arguments))

	assert.Equal(t, "claude-sonnet-4-5", body["model"])
	assert.Equal(t, float64(1000), body["max_tokens"])
	assert.Equal(t, float64(0), body["temperature"])
	system := body["system"].([]any)
	assert.Equal(t, "system text", system[0].(map[string]any)["text"])
	msgs := body["messages"].([]any)
	require.Len(t, msgs, 1)

	tools := body["tools"].([]any)
	require.Len(t, tools, 1)
	schema := tools[0].(map[string]any)["input_schema"].(map[string]any)
	assert.Equal(t, "object", schema["type"])
	assert.Equal(t, []any{"city_name"}, schema["required"])
}

func TestGenerate_DefaultMaxTokens(t *testing.T) {
	var body map[string]any
	srv := newServer(t, http.StatusOK, toolUseResponse, &body)

	_, err := newTestProvider(srv, 0).Generate(context.Background(), []provider.Message{provider.UserMessage("hi")}, nil)

	require.NoError(t, err)
	assert.Equal(t, float64(defaultMaxTokens), body["max_tokens"])
	_, hasTools := body["tools"]
	assert.False(t, hasTools)
}

func TestGenerate_Overloaded(t *testing.T) {
	srv := newServer(t, http.StatusServiceUnavailable,
		`{"type":"error","error":{"type":"overloaded_error","message":"Overloaded"}}`, nil)

	_, err := newTestProvider(srv, 0).Generate(context.Background(), []provider.Message{provider.UserMessage("hi")}, nil)

	var pe *provider.ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, provider.ErrorCodeUnavailable, pe.Code)
	assert.True(t, pe.Retryable)
}

func TestGenerate_PromptTooLong(t *testing.T) {
	srv := newServer(t, http.StatusBadRequest,
		`{"type":"error","error":{"type":"invalid_request_error","message":"prompt is too long: 300000 tokens > 200000 maximum"}}`, nil)

	_, err := newTestProvider(srv, 0).Generate(context.Background(), []provider.Message{provider.UserMessage("hi")}, nil)

	assert.ErrorIs(t, err, provider.ErrContextLengthExceeded)
}

func TestToAnthropicMessages_ToolRoundTrip(t *testing.T) {
	call := provider.ToolCall{ID: "toolu_1", Function: provider.FunctionCall{Name: "create_event"}}

	system, msgs, err := toAnthropicMessages([]provider.Message{
		provider.UserMessage("book it"),
		{Role: provider.RoleAssistant, ToolCalls: []provider.ToolCall{call}},
		provider.ToolResultMessage(call, "calendar down", true),
		{Role: provider.RoleAssistant},
	})

	require.NoError(t, err)
	assert.Empty(t, system)
	require.Len(t, msgs, 3)

	raw, err := json.Marshal(msgs)
	require.NoError(t, err)
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "assistant", decoded[1]["role"])
	use := decoded[1]["content"].([]any)[0].(map[string]any)
	assert.Equal(t, "tool_use", use["type"])
	assert.Equal(t, map[string]any{}, use["input"])

	assert.Equal(t, "user", decoded[2]["role"])
	result := decoded[2]["content"].([]any)[0].(map[string]any)
	assert.Equal(t, "tool_result", result["type"])
	assert.Equal(t, "toolu_1", result["tool_use_id"])
	assert.Equal(t, true, result["is_error"])
}

func TestToAnthropicMessages_InvalidArguments(t *testing.T) {
	_, _, err := toAnthropicMessages([]provider.Message{{
		Role: provider.RoleAssistant,
		ToolCalls: []provider.ToolCall{{
			Function: provider.FunctionCall{Name: "x", Arguments: json.RawMessage(`{nope`)},
		}},
	}})

	assert.Error(t, err)
}

func TestToInputSchema_NilParameters(t *testing.T) {
	schema, err := toInputSchema(nil)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, schema.Properties)
	assert.Empty(t, schema.Required)
}
