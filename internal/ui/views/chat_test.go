package views

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderAnswer(t *testing.T) {
	result := RenderAnswer("Sunny, 18°C", 40, testStyles())

	assert.Contains(t, result, AnswerTitle)
	assert.Contains(t, result, "Sunny, 18°C")
}

func TestRenderWelcome(t *testing.T) {
	assert.Contains(t, RenderWelcome(testStyles()), "Welcome to Weather Agent Chat! Type 'exit' to quit.")
}

func TestRenderPromptLabel(t *testing.T) {
	assert.Contains(t, RenderPromptLabel(testStyles()), "You")
}

func TestRenderNoAnswerAndError(t *testing.T) {
	st := testStyles()
	assert.Contains(t, RenderNoAnswer(st), "No response from agent.")
	assert.Contains(t, RenderError(errors.New("boom"), st), "Error: boom")
	assert.Contains(t, RenderGoodbye(st), "Goodbye!")
}
