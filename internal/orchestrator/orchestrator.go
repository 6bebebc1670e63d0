package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/Cyclone1070/weatheragent/internal/provider"
	"github.com/Cyclone1070/weatheragent/internal/ui"
	"github.com/Cyclone1070/weatheragent/internal/workflow"
	"github.com/Cyclone1070/weatheragent/internal/workflow/loop"
)

// UserInterface is the terminal the chat runs in.
type UserInterface interface {
	Welcome()
	ReadInput(ctx context.Context) (string, error)
	// Progress consumes events until the DoneEvent of the running turn.
	Progress(events <-chan workflow.Event)
	WriteAnswer(content string)
	WriteError(err error)
	Goodbye()
}

// dialogue runs one turn of the conversation.
type dialogue interface {
	Run(ctx context.Context, conv *loop.Conversation, input string) (loop.Answer, error)
}

// Orchestrator is the read-eval loop of the chat. It owns the conversation for
// the whole session.
type Orchestrator struct {
	dialogue dialogue
	ui       UserInterface
	events   <-chan workflow.Event
	conv     *loop.Conversation
	logger   *slog.Logger
}

// New creates an Orchestrator. events must be the channel the dialogue emits
// to, or nil when it emits nothing.
func New(d dialogue, userInterface UserInterface, events <-chan workflow.Event, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Orchestrator{
		dialogue: d,
		ui:       userInterface,
		events:   events,
		conv:     loop.NewConversation(),
		logger:   logger,
	}
}

// Conversation returns the session's conversation.
func (o *Orchestrator) Conversation() *loop.Conversation {
	return o.conv
}

// Run prompts for input until the user leaves. A failed turn is reported and
// the next prompt follows; only a broken terminal ends Run with an error.
func (o *Orchestrator) Run(ctx context.Context) error {
	o.ui.Welcome()

	for {
		input, err := o.ui.ReadInput(ctx)
		if err != nil {
			if errors.Is(err, ui.ErrInterrupted) || errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				o.ui.Goodbye()
				return nil
			}
			return err
		}

		if isExit(input) {
			o.ui.Goodbye()
			return nil
		}
		if strings.TrimSpace(input) == "" {
			continue
		}

		o.turn(ctx, input)
	}
}

// turn runs one dialogue turn while the UI follows its events.
func (o *Orchestrator) turn(ctx context.Context, input string) {
	var wg sync.WaitGroup
	if o.events != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o.ui.Progress(o.events)
		}()
	}

	answer, err := o.dialogue.Run(ctx, o.conv, input)
	wg.Wait()

	if err != nil {
		retryable := provider.IsRetryable(err)
		o.logger.Error("turn failed", "error", err, "retryable", retryable, "messages", o.conv.Len())
		if retryable {
			err = fmt.Errorf("%w (temporary failure, ask again)", err)
		}
		o.ui.WriteError(err)
		o.ui.WriteAnswer("")
		return
	}
	o.ui.WriteAnswer(answer.Content)
}

func isExit(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "exit", "quit":
		return true
	}
	return false
}
