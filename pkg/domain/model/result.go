package model

import (
	"fmt"
	"time"

	"github.com/secmon-lab/demote/pkg/domain/types"
)

// DefaultThrottleInterval is the pause between two consecutive dispatches
const DefaultThrottleInterval = 500 * time.Millisecond

const (
	// UnknownEmail is shown when neither the service nor the input carried an email
	UnknownEmail = "unknown email"
	// MessageRequestFailed is the message of a result whose call never completed
	MessageRequestFailed = "request failed"
	// MessageDemoteFailed is returned by the demotion service when the upstream refused the change
	MessageDemoteFailed = "demotion failed"
)

// DemotedMessage returns the success message for a role change
func DemotedMessage(role TargetRole) string {
	return "demoted to " + role.DisplayName()
}

// DispatchResult is the outcome of one remote call
type DispatchResult struct {
	Success bool       `json:"success"`
	Email   string     `json:"email"`
	Message string     `json:"message"`
	Error   string     `json:"error,omitempty"`
	Role    TargetRole `json:"role"`
}

// IndexedResult pairs a result with its 1-based position in the run
type IndexedResult struct {
	Index  int             `json:"index"`
	Result *DispatchResult `json:"result"`
}

// RunStats holds the aggregate counters of a run
type RunStats struct {
	Total   int `json:"total"`
	Success int `json:"success"`
	Failed  int `json:"failed"`
}

// Processed returns how many items have finished so far
func (s RunStats) Processed() int {
	return s.Success + s.Failed
}

// RunState is the state of the run controller
type RunState int

const (
	RunStateIdle RunState = iota
	RunStateRunning
)

// String returns the string representation
func (s RunState) String() string {
	switch s {
	case RunStateIdle:
		return "idle"
	case RunStateRunning:
		return "running"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// MarshalText renders the state as its name in JSON
func (s RunState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// RunSummary is the final report of a completed run
type RunSummary struct {
	RunID      types.RunID      `json:"run_id"`
	Role       TargetRole       `json:"role"`
	Stats      RunStats         `json:"stats"`
	Results    []*IndexedResult `json:"results"`
	Canceled   bool             `json:"canceled"`
	StartedAt  time.Time        `json:"started_at"`
	FinishedAt time.Time        `json:"finished_at"`
}

// Succeeded reports whether every dispatched item succeeded
func (s *RunSummary) Succeeded() bool {
	return s.Stats.Failed == 0 && !s.Canceled
}

// Message returns the one-line completion notice for the run
func (s *RunSummary) Message() string {
	msg := fmt.Sprintf("completed: %d succeeded, %d failed", s.Stats.Success, s.Stats.Failed)
	if s.Canceled {
		msg = fmt.Sprintf("canceled after %d of %d: %d succeeded, %d failed",
			s.Stats.Processed(), s.Stats.Total, s.Stats.Success, s.Stats.Failed)
	}
	return msg
}

// RunSnapshot is a read-only view of the controller at a point in time
type RunSnapshot struct {
	State   RunState         `json:"state"`
	RunID   types.RunID      `json:"run_id,omitempty"`
	Role    TargetRole       `json:"role,omitempty"`
	Stats   RunStats         `json:"stats"`
	Results []*IndexedResult `json:"results"`
}
