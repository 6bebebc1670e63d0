package ui

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/Cyclone1070/weatheragent/internal/config"
	"github.com/Cyclone1070/weatheragent/internal/workflow"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/stretchr/testify/assert"
)

// Mock dependencies
type MockMarkdownRenderer struct {
	RenderFunc func(string, int) (string, error)
}

func (m *MockMarkdownRenderer) Render(content string, width int) (string, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(content, width)
	}
	return content, nil
}

func mockSpinnerFactory() spinner.Model {
	return spinner.New()
}

func newTestUI(renderer *MockMarkdownRenderer) (*UI, *bytes.Buffer) {
	var out bytes.Buffer
	u := NewUI(config.DefaultConfig().UI, renderer, mockSpinnerFactory, WithIO(&bytes.Buffer{}, &out), WithWidth(60))
	return u, &out
}

func TestWelcome(t *testing.T) {
	u, out := newTestUI(&MockMarkdownRenderer{})
	u.Welcome()
	assert.Contains(t, out.String(), "Welcome to Weather Agent Chat! Type 'exit' to quit.")
}

func TestGoodbye(t *testing.T) {
	u, out := newTestUI(&MockMarkdownRenderer{})
	u.Goodbye()
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestWriteAnswer_RendersMarkdownInPanel(t *testing.T) {
	var gotWidth int
	u, out := newTestUI(&MockMarkdownRenderer{RenderFunc: func(content string, width int) (string, error) {
		gotWidth = width
		return "RENDERED " + content, nil
	}})

	u.WriteAnswer("It is **18°C** in Paris.")

	assert.Contains(t, out.String(), "Weather Agent")
	assert.Contains(t, out.String(), "RENDERED It is **18°C** in Paris.")
	assert.Equal(t, 56, gotWidth)
}

func TestWriteAnswer_Empty(t *testing.T) {
	called := false
	u, out := newTestUI(&MockMarkdownRenderer{RenderFunc: func(string, int) (string, error) {
		called = true
		return "", nil
	}})

	u.WriteAnswer("  \n")

	assert.Contains(t, out.String(), "No response from agent.")
	assert.NotContains(t, out.String(), "Weather Agent")
	assert.False(t, called)
}

func TestWriteAnswer_RendererFailureFallsBackToPlainText(t *testing.T) {
	u, out := newTestUI(&MockMarkdownRenderer{RenderFunc: func(string, int) (string, error) {
		return "", errors.New("style not found")
	}})

	u.WriteAnswer("Sunny all week")

	assert.Contains(t, out.String(), "Sunny all week")
}

func TestWriteError(t *testing.T) {
	u, out := newTestUI(&MockMarkdownRenderer{})
	u.WriteError(errors.New("provider.Generate: rate limited"))
	assert.Contains(t, out.String(), "Error: provider.Generate: rate limited")
}

func TestProgress_ConsumesOneTurn(t *testing.T) {
	u, _ := newTestUI(&MockMarkdownRenderer{})

	events := make(chan workflow.Event, 8)
	events <- workflow.ThinkingEvent{Gathering: true}
	events <- workflow.ToolStartEvent{ToolName: "extract_city_weather", Args: `{"city_name":"Paris"}`}
	events <- workflow.ToolEndEvent{ToolName: "extract_city_weather"}
	events <- workflow.TextEvent{Text: "Sunny"}
	events <- workflow.DoneEvent{}
	events <- workflow.ThinkingEvent{Gathering: true} // next turn

	done := make(chan struct{})
	go func() {
		u.Progress(events)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Progress did not return after DoneEvent")
	}
	assert.Len(t, events, 1, "events of the next turn must be left in the channel")
}
