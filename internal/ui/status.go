package ui

import (
	"time"

	"github.com/Cyclone1070/weatheragent/internal/ui/models"
	"github.com/Cyclone1070/weatheragent/internal/ui/services"
	"github.com/Cyclone1070/weatheragent/internal/ui/views"
	"github.com/Cyclone1070/weatheragent/internal/workflow"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// statusModel shows a spinner and the current step of a running turn.
// It only observes workflow events and quits on the turn's DoneEvent.
type statusModel struct {
	status   models.Status
	styles   views.Styles
	quitting bool
}

// Internal messages
type eventMsg struct{ event workflow.Event }
type tickMsg time.Time

func newStatusModel(sp spinner.Model, styles views.Styles) statusModel {
	return statusModel{
		status: models.Status{Phase: models.PhaseThinking, Message: "Thinking...", Spinner: sp},
		styles: styles,
	}
}

// Init initializes the model
func (m statusModel) Init() tea.Cmd {
	return tea.Batch(m.status.Spinner.Tick, tick())
}

// Update handles messages
func (m statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		if _, done := msg.event.(workflow.DoneEvent); done {
			m.quitting = true
			return m, tea.Quit
		}
		m.status = applyEvent(m.status, msg.event)
		return m, nil

	case tickMsg:
		// Update dot animation
		m.status.DotCount = (m.status.DotCount + 1) % 4
		return m, tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.status.Spinner, cmd = m.status.Spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the status line; it is cleared when the turn ends.
func (m statusModel) View() string {
	if m.quitting {
		return ""
	}
	return views.RenderStatus(m.status, m.styles)
}

// applyEvent maps a workflow event onto the status line.
func applyEvent(s models.Status, ev workflow.Event) models.Status {
	switch ev := ev.(type) {
	case workflow.ThinkingEvent:
		s.Phase = models.PhaseThinking
		s.Message = "Thinking..."
		if !ev.Gathering {
			s.Message = "Writing the answer..."
		}
	case workflow.ToolStartEvent:
		s.Phase = models.PhaseExecuting
		s.Message = services.DescribeToolCall(ev.ToolName, ev.Args)
	case workflow.ToolEndEvent:
		s.Phase = models.PhaseDone
		if ev.Failed {
			s.Phase = models.PhaseError
		}
	}
	return s
}

func tick() tea.Cmd {
	return tea.Tick(300*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
