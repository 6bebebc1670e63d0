package loop

import "github.com/Cyclone1070/weatheragent/internal/provider"

// Conversation is the history of one chat session plus the loop's mode flag.
// It is owned by a single Loop.Run call at a time and only ever grows.
type Conversation struct {
	messages  []provider.Message
	gathering bool
}

// NewConversation returns an empty conversation in gathering mode.
func NewConversation() *Conversation {
	return &Conversation{gathering: true}
}

// Messages returns a copy of the history in insertion order.
func (c *Conversation) Messages() []provider.Message {
	out := make([]provider.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len returns the number of stored messages.
func (c *Conversation) Len() int {
	return len(c.messages)
}

// Gathering reports whether the model may still request tool calls.
func (c *Conversation) Gathering() bool {
	return c.gathering
}

// beginTurn appends the user's input and resets the mode for a fresh turn.
func (c *Conversation) beginTurn(input string) {
	c.messages = append(c.messages, provider.UserMessage(input))
	c.gathering = true
}

// recordReply appends an assistant reply and derives the next mode from it.
func (c *Conversation) recordReply(reply provider.Message) {
	c.messages = append(c.messages, reply)
	c.gathering = reply.HasToolCalls()
}

func (c *Conversation) append(m provider.Message) {
	c.messages = append(c.messages, m)
}
