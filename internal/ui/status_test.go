package ui

import (
	"testing"

	"github.com/Cyclone1070/weatheragent/internal/config"
	"github.com/Cyclone1070/weatheragent/internal/ui/models"
	"github.com/Cyclone1070/weatheragent/internal/ui/views"
	"github.com/Cyclone1070/weatheragent/internal/workflow"
	"github.com/stretchr/testify/assert"
)

func createTestStatusModel() statusModel {
	return newStatusModel(mockSpinnerFactory(), views.NewStyles(config.DefaultConfig().UI))
}

func send(m statusModel, ev workflow.Event) statusModel {
	next, _ := m.Update(eventMsg{event: ev})
	return next.(statusModel)
}

func TestStatus_StartsThinking(t *testing.T) {
	m := createTestStatusModel()
	assert.Equal(t, models.PhaseThinking, m.status.Phase)
	assert.Contains(t, m.View(), "Thinking")
}

func TestStatus_FollowsEvents(t *testing.T) {
	m := createTestStatusModel()

	m = send(m, workflow.ToolStartEvent{ToolName: "extract_city_weather", Args: `{"city_name":"Paris"}`})
	assert.Equal(t, models.PhaseExecuting, m.status.Phase)
	assert.Contains(t, m.View(), "Fetching the hourly forecast for Paris")

	m = send(m, workflow.ToolEndEvent{ToolName: "extract_city_weather"})
	assert.Equal(t, models.PhaseDone, m.status.Phase)
	assert.Contains(t, m.View(), "✔")

	m = send(m, workflow.ThinkingEvent{Gathering: false})
	assert.Equal(t, models.PhaseThinking, m.status.Phase)
	assert.Contains(t, m.View(), "Writing the answer")
}

func TestStatus_FailedTool(t *testing.T) {
	m := send(createTestStatusModel(), workflow.ToolEndEvent{ToolName: "search_events", Failed: true})
	assert.Equal(t, models.PhaseError, m.status.Phase)
}

func TestStatus_IgnoresTextAndTruncation(t *testing.T) {
	m := createTestStatusModel()
	before := m.status

	m = send(m, workflow.TextEvent{Text: "partial"})
	m = send(m, workflow.ToolCallsTruncatedEvent{Kept: "a", Dropped: []string{"b"}})

	assert.Equal(t, before.Phase, m.status.Phase)
	assert.Equal(t, before.Message, m.status.Message)
}

func TestStatus_DoneQuits(t *testing.T) {
	next, cmd := createTestStatusModel().Update(eventMsg{event: workflow.DoneEvent{}})
	m := next.(statusModel)

	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestStatus_TickAnimatesDots(t *testing.T) {
	m := createTestStatusModel()
	next, cmd := m.Update(tickMsg{})
	m = next.(statusModel)

	assert.Equal(t, 1, m.status.DotCount)
	assert.NotNil(t, cmd)
}
