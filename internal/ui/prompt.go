package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// promptModel reads one line of input.
type promptModel struct {
	input       textinput.Model
	submitted   bool
	interrupted bool
}

func newPromptModel(label string) promptModel {
	ti := textinput.New()
	ti.Prompt = label
	ti.Placeholder = "Ask about the weather or your calendar..."
	ti.Focus()
	return promptModel{input: ti}
}

// Init initializes the model
func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyCtrlC:
			m.interrupted = true
			return m, tea.Quit
		case tea.KeyCtrlD:
			// EOF only on an empty line, like a shell.
			if m.input.Value() == "" {
				m.interrupted = true
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt. Once submitted the line stays in the scrollback
// without the cursor.
func (m promptModel) View() string {
	switch {
	case m.interrupted:
		return ""
	case m.submitted:
		return m.input.Prompt + m.input.Value() + "\n"
	}
	return m.input.View()
}

// Value returns the text typed so far.
func (m promptModel) Value() string {
	return m.input.Value()
}
