/*
 * AutoOTA
 * Copyright (C) 2026
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package autoota

// AgentState holds the possible states for the agent
type AgentState int

const (
	// AgentDummyState is a dummy state
	AgentDummyState = iota
	// AgentStateIdle is set while the agent waits the initial random
	// delay before the first check
	AgentStateIdle
	// AgentStatePoll is set when the agent is in the "polling" mode
	AgentStatePoll
	// AgentStateProbe is set when the agent is checking the remote
	// version
	AgentStateProbe
	// AgentStateUpdating is set when the agent is downloading and
	// flashing a new firmware image
	AgentStateUpdating
	// AgentStateRebooting is set when the agent is restarting the
	// device after a successful update
	AgentStateRebooting
	// AgentStateExit is set when the daemon is about to quit
	AgentStateExit
	// AgentStateError is set when an error occured on the agent
	AgentStateError
)

var statusNames = map[AgentState]string{
	AgentDummyState:     "dummy",
	AgentStateIdle:      "idle",
	AgentStatePoll:      "poll",
	AgentStateProbe:     "probe",
	AgentStateUpdating:  "updating",
	AgentStateRebooting: "rebooting",
	AgentStateExit:      "exit",
	AgentStateError:     "error",
}

// ProgressTracker will define which way the progress is kept
type ProgressTracker interface {
	SetProgress(progress int)
	GetProgress() int
}

// ProgressTrackerImpl is for the ProgressTracker interface implementation
type ProgressTrackerImpl struct {
	progress int
}

// SetProgress is for the ProgressTracker interface implementation
func (pti *ProgressTrackerImpl) SetProgress(progress int) {
	pti.progress = progress
}

// GetProgress is for the ProgressTracker interface implementation
func (pti *ProgressTrackerImpl) GetProgress() int {
	return pti.progress
}

// BaseState is the state from which all others must do composition
type BaseState struct {
	id AgentState
}

// ToMap is for the State interface implementation
func (state *BaseState) ToMap() map[string]interface{} {
	m := map[string]interface{}{}
	m["status"] = StateToString(state.ID())
	return m
}

// ID returns the state id
func (b *BaseState) ID() AgentState {
	return b.id
}

// Cancel cancels a state if it is cancellable
func (b *BaseState) Cancel(ok bool, nextState State) bool {
	return ok
}

// State interface describes the necessary operations for a State
type State interface {
	ID() AgentState
	Handle(*Agent) (State, bool) // Handle implements the behavior when the State is set
	Cancel(bool, State) bool
	ToMap() map[string]interface{}
}

// StateToString converts a "AgentState" to string
func StateToString(status AgentState) string {
	return statusNames[status]
}
