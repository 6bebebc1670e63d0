package toolmanager

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sort"
	"strings"

	"github.com/Cyclone1070/weatheragent/internal/provider"
	"github.com/Cyclone1070/weatheragent/internal/tool"
	"github.com/Cyclone1070/weatheragent/internal/workflow"
)

var (
	ErrEmptyToolName     = errors.New("tool has an empty name")
	ErrDuplicateToolName = errors.New("tool name registered twice")
)

// ToolManager is the immutable dispatch table from tool name to capability.
type ToolManager struct {
	registry map[string]tool.Tool
	decls    []tool.Declaration
	logger   *slog.Logger
}

// New builds the registry. Every tool must have a unique, non-empty name.
func New(logger *slog.Logger, tools ...tool.Tool) (*ToolManager, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	tm := &ToolManager{
		registry: make(map[string]tool.Tool, len(tools)),
		logger:   logger,
	}
	for _, t := range tools {
		decl := t.Declaration()
		if decl.Name == "" {
			return nil, ErrEmptyToolName
		}
		if _, exists := tm.registry[decl.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateToolName, decl.Name)
		}
		tm.registry[decl.Name] = t
		tm.decls = append(tm.decls, decl)
	}
	sort.Slice(tm.decls, func(i, j int) bool {
		return tm.decls[i].Name < tm.decls[j].Name
	})
	return tm, nil
}

// Declarations returns the tool schemas sorted by name.
func (m *ToolManager) Declarations() []tool.Declaration {
	out := make([]tool.Declaration, len(m.decls))
	copy(out, m.decls)
	return out
}

// Names returns the registered tool names sorted.
func (m *ToolManager) Names() []string {
	names := make([]string, len(m.decls))
	for i, d := range m.decls {
		names[i] = d.Name
	}
	return names
}

// Execute runs a single tool call and always returns a tool message answering it.
// Unknown tools, malformed arguments, returned errors and panics all become
// error results for the model; none of them escape.
func (m *ToolManager) Execute(ctx context.Context, tc provider.ToolCall, events chan<- workflow.Event) provider.Message {
	name := tc.Function.Name
	emit(events, workflow.ToolStartEvent{ToolName: name, Args: string(tc.Function.Arguments)})

	t, ok := m.registry[name]
	if !ok {
		m.logger.Warn("model requested unknown tool", "tool", name, "call_id", tc.ID)
		return m.fail(events, tc, fmt.Sprintf("Error: tool %q does not exist.\n\nAvailable tools: %s", name, strings.Join(m.Names(), ", ")))
	}

	args, err := decodeArguments(tc.Function.Arguments)
	if err != nil {
		return m.fail(events, tc, invalidArguments(t.Declaration(), err))
	}

	content, err := m.invoke(ctx, t, args)
	if err != nil {
		m.logger.Error("tool failed", "tool", name, "call_id", tc.ID, "error", err)
		var argErr *tool.ArgumentError
		if errors.As(err, &argErr) {
			return m.fail(events, tc, invalidArguments(t.Declaration(), err))
		}
		return m.fail(events, tc, fmt.Sprintf("Error: tool %q failed: %v", name, err))
	}

	m.logger.Debug("tool succeeded", "tool", name, "call_id", tc.ID, "bytes", len(content))
	emit(events, workflow.ToolEndEvent{ToolName: name})
	return provider.ToolResultMessage(tc, content, false)
}

func (m *ToolManager) fail(events chan<- workflow.Event, tc provider.ToolCall, content string) provider.Message {
	emit(events, workflow.ToolEndEvent{ToolName: tc.Function.Name, Failed: true})
	return provider.ToolResultMessage(tc, content, true)
}

// invoke converts a panicking tool into an ordinary error. The stack goes to
// the log only.
func (m *ToolManager) invoke(ctx context.Context, t tool.Tool, args map[string]any) (content string, err error) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("tool panicked", "tool", t.Declaration().Name, "panic", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return t.Invoke(ctx, args)
}

func decodeArguments(raw json.RawMessage) (map[string]any, error) {
	args := map[string]any{}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return args, nil
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, err
	}
	if args == nil {
		args = map[string]any{}
	}
	return args, nil
}

func invalidArguments(decl tool.Declaration, err error) string {
	schemaJSON, _ := json.MarshalIndent(decl.Parameters, "", "  ")
	return fmt.Sprintf("Error: invalid arguments for tool %q: %v\n\nExpected schema:\n%s", decl.Name, err, schemaJSON)
}

func emit(events chan<- workflow.Event, ev workflow.Event) {
	if events != nil {
		events <- ev
	}
}
