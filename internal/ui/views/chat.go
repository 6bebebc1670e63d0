package views

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const (
	WelcomeText  = "Welcome to Weather Agent Chat! Type 'exit' to quit."
	GoodbyeText  = "Goodbye!"
	NoAnswerText = "No response from agent."
	AnswerTitle  = "Weather Agent"
	PromptLabel  = "You"
)

// RenderWelcome renders the banner shown at startup.
func RenderWelcome(st Styles) string {
	return st.Welcome.Render(WelcomeText)
}

// RenderPromptLabel renders the label in front of the input field.
func RenderPromptLabel(st Styles) string {
	return st.Prompt.Render(PromptLabel) + ": "
}

// RenderAnswer puts already rendered markdown into the titled answer panel.
func RenderAnswer(rendered string, width int, st Styles) string {
	panel := st.Answer
	if width > 0 {
		panel = panel.Width(width)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		st.Title.Render(AnswerTitle),
		panel.Render(rendered),
	)
}

// RenderNoAnswer is shown when a turn produced no text.
func RenderNoAnswer(st Styles) string {
	return st.Error.Render(NoAnswerText)
}

// RenderError renders a turn failure.
func RenderError(err error, st Styles) string {
	return st.Error.Render(fmt.Sprintf("Error: %v", err))
}

// RenderGoodbye renders the exit message.
func RenderGoodbye(st Styles) string {
	return st.Error.Render(GoodbyeText)
}
