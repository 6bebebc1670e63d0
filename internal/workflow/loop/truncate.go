package loop

import "github.com/Cyclone1070/weatheragent/internal/provider"

// enforceSingleToolCall keeps at most the first proposed tool call. Content and
// the kept call's id are preserved. The discarded calls are returned so the
// caller can report them.
func enforceSingleToolCall(resp provider.Message) (provider.Message, []provider.ToolCall) {
	if len(resp.ToolCalls) <= 1 {
		return resp, nil
	}
	dropped := resp.ToolCalls[1:]
	resp.ToolCalls = []provider.ToolCall{resp.ToolCalls[0]}
	return resp, dropped
}

func toolNames(calls []provider.ToolCall) []string {
	names := make([]string, len(calls))
	for i, tc := range calls {
		names[i] = tc.Function.Name
	}
	return names
}
