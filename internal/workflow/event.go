package workflow

// Event is the interface for all workflow events.
// UI handles events via type switch.
type Event interface {
	isEvent()
}

// ThinkingEvent is emitted before every model request.
type ThinkingEvent struct {
	Gathering bool
}

func (ThinkingEvent) isEvent() {}

// ToolCallsTruncatedEvent is emitted when the model proposed more than one tool
// call and only the first is kept.
type ToolCallsTruncatedEvent struct {
	Kept    string
	Dropped []string
}

func (ToolCallsTruncatedEvent) isEvent() {}

// ToolStartEvent is emitted when a tool execution begins.
type ToolStartEvent struct {
	ToolName string
	Args     string
}

func (ToolStartEvent) isEvent() {}

// ToolEndEvent is emitted when a tool completes, successfully or not.
type ToolEndEvent struct {
	ToolName string
	Failed   bool
}

func (ToolEndEvent) isEvent() {}

// TextEvent is emitted when the model produces text output.
type TextEvent struct {
	Text string
}

func (TextEvent) isEvent() {}

// DoneEvent is emitted when the workflow loop completes a turn.
type DoneEvent struct {
	Err error
}

func (DoneEvent) isEvent() {}
