/*
 * AutoOTA
 * Copyright (C) 2026
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package autoota

// ExitState is the final state of the state machine
type ExitState struct {
	BaseState

	exitCode int
}

// NewExitState creates a new ExitState
func NewExitState(exitCode int) *ExitState {
	return &ExitState{
		BaseState: BaseState{id: AgentStateExit},
		exitCode:  exitCode,
	}
}

// Handle for ExitState
func (state *ExitState) Handle(a *Agent) (State, bool) {
	panic("ExitState handler should not be called")
}
