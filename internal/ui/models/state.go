package models

import "github.com/charmbracelet/bubbles/spinner"

// Phase is the coarse state shown in the status line.
type Phase string

const (
	PhaseReady     Phase = "ready"
	PhaseThinking  Phase = "thinking"
	PhaseExecuting Phase = "executing"
	PhaseDone      Phase = "done"
	PhaseError     Phase = "error"
)

// Status is the state of the status line shown while a turn runs.
type Status struct {
	Phase   Phase
	Message string
	// DotCount animates the trailing dots of the thinking message.
	DotCount int
	Spinner  spinner.Model
}
