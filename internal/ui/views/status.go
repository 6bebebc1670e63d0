package views

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/weatheragent/internal/ui/models"
)

// RenderStatus renders the status line
func RenderStatus(s models.Status, st Styles) string {
	switch s.Phase {
	case models.PhaseThinking:
		// Animate the dots
		dots := strings.Repeat(".", s.DotCount)
		msg := s.Message
		if msg == "" {
			msg = "Thinking"
		}
		return st.StatusThinking.Render(fmt.Sprintf("%s %s%s", s.Spinner.View(), strings.TrimRight(msg, "."), dots))
	case models.PhaseExecuting:
		return st.StatusExecuting.Render(fmt.Sprintf("%s %s", s.Spinner.View(), s.Message))
	case models.PhaseDone:
		return st.StatusDone.Render("✔ " + s.Message)
	case models.PhaseError:
		return st.StatusError.Render("✘ " + s.Message)
	}
	return st.StatusDefault.Render("Ready")
}
