package loop

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Cyclone1070/weatheragent/internal/provider"
	"github.com/Cyclone1070/weatheragent/internal/workflow"
)

// ErrMaxIterations is returned when a turn needs more model requests than allowed.
var ErrMaxIterations = errors.New("max iterations reached")

// Answer is the outcome of a turn.
type Answer struct {
	Content string
}

// Empty reports whether the model finished without producing any text.
func (a Answer) Empty() bool {
	return a.Content == ""
}

type Loop struct {
	provider      llmProvider
	tools         toolManager
	events        chan<- workflow.Event
	maxIterations int
	logger        *slog.Logger
	now           func() time.Time
}

// Option configures a Loop.
type Option func(*Loop)

// WithLogger sets the logger used for truncation and fault reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loop) { l.logger = logger }
}

// WithClock replaces time.Now for the date in the system prompt.
func WithClock(now func() time.Time) Option {
	return func(l *Loop) { l.now = now }
}

func NewLoop(provider llmProvider, tools toolManager, events chan<- workflow.Event, maxIterations int, opts ...Option) *Loop {
	l := &Loop{
		provider:      provider,
		tools:         tools,
		events:        events,
		maxIterations: maxIterations,
		logger:        slog.New(slog.DiscardHandler),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run executes one user turn against conv. The model is asked for the next step
// until it replies without a tool call; every tool call is run sequentially and
// its result appended before the next request.
//
// A provider error ends the turn and is returned. Everything appended to conv
// before the error stays there.
func (l *Loop) Run(ctx context.Context, conv *Conversation, input string) (answer Answer, err error) {
	defer func() {
		l.emit(workflow.DoneEvent{Err: err})
	}()

	conv.beginTurn(input)

	for i := 0; i < l.maxIterations; i++ {
		if err := ctx.Err(); err != nil {
			return Answer{}, err
		}

		gathering := conv.Gathering()
		l.emit(workflow.ThinkingEvent{Gathering: gathering})

		messages := make([]provider.Message, 0, conv.Len()+1)
		messages = append(messages, systemPrompt(l.now(), gathering))
		messages = append(messages, conv.messages...)

		resp, err := l.provider.Generate(ctx, messages, l.tools.Declarations())
		if err != nil {
			return Answer{}, fmt.Errorf("provider.Generate: %w", err)
		}

		var reply provider.Message
		if resp != nil {
			reply = *resp
		}
		reply.Role = provider.RoleAssistant
		reply = l.enforceSingleToolCall(reply)

		conv.recordReply(reply)

		if reply.Content != "" {
			l.emit(workflow.TextEvent{Text: reply.Content})
		}

		if !reply.HasToolCalls() {
			return Answer{Content: reply.Content}, nil
		}

		tc := reply.ToolCalls[0]
		l.logger.Debug("running tool", "tool", tc.Function.Name, "call_id", tc.ID, "iteration", i)
		conv.append(l.tools.Execute(ctx, tc, l.events))
	}

	l.logger.Warn("turn stopped without a final answer", "max_iterations", l.maxIterations)
	return Answer{}, fmt.Errorf("%w (%d)", ErrMaxIterations, l.maxIterations)
}

func (l *Loop) enforceSingleToolCall(reply provider.Message) provider.Message {
	kept, dropped := enforceSingleToolCall(reply)
	if len(dropped) == 0 {
		return kept
	}
	names := toolNames(dropped)
	l.logger.Warn("model proposed several tool calls, keeping the first",
		"kept", kept.ToolCalls[0].Function.Name,
		"dropped", names)
	l.emit(workflow.ToolCallsTruncatedEvent{
		Kept:    kept.ToolCalls[0].Function.Name,
		Dropped: names,
	})
	return kept
}

func (l *Loop) emit(ev workflow.Event) {
	if l.events != nil {
		l.events <- ev
	}
}
