package errors

import (
	"fmt"
)

// Error taxonomy of a panel run. Callers match with errors.Is.
var (
	ErrConfig  = fmt.Errorf("config error")
	ErrInput   = fmt.Errorf("input error")
	ErrService = fmt.Errorf("service error")
	ErrPanel   = fmt.Errorf("panel error")
	ErrOutput  = fmt.Errorf("output error")

	ErrAgentPanic  = fmt.Errorf("agent panic")
	ErrNoAgents    = fmt.Errorf("no agents configured")
	ErrEmptyText   = fmt.Errorf("empty text rejected by the NLU service")
	ErrNotTextFile = fmt.Errorf("case report is not a text file")
	ErrInvalidUTF8 = fmt.Errorf("case report is not valid UTF-8")
)

// PanelError reports the agent that made a panel run fail.
// It matches both ErrPanel and the underlying cause.
type PanelError struct {
	Agent string
	Err   error
}

func NewPanelError(agent string, err error) *PanelError {
	return &PanelError{Agent: agent, Err: err}
}

func (e *PanelError) Error() string {
	return fmt.Sprintf("%s: agent %s failed: %v", ErrPanel, e.Agent, e.Err)
}

func (e *PanelError) Unwrap() []error {
	return []error{ErrPanel, e.Err}
}
