/*
 * AutoOTA
 * Copyright (C) 2026
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package autoota

import (
	"github.com/OSSystems/pkg/log"
)

// RebootingState is the State interface implementation for the
// AgentStateRebooting
type RebootingState struct {
	BaseState
}

// ID returns the state id
func (state *RebootingState) ID() AgentState {
	return state.id
}

// Handle for RebootingState restarts the device exactly once. Under
// success the restart is the exit point of the update; the daemon quits
// and never returns to polling.
func (state *RebootingState) Handle(a *Agent) (State, bool) {
	log.Info("update successful, rebooting")

	if err := a.Rebooter.Reboot(); err != nil {
		a.setError(err.Error())
		return NewErrorState(NewTransientError(err)), false
	}

	return NewExitState(0), false
}

// NewRebootingState creates a new RebootingState
func NewRebootingState() *RebootingState {
	state := &RebootingState{
		BaseState: BaseState{id: AgentStateRebooting},
	}

	return state
}
