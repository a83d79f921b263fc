/*
 * AutoOTA
 * Copyright (C) 2026
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package autoota

import (
	"fmt"

	"github.com/OSSystems/pkg/log"
)

// IdleState is the State interface implementation for the
// AgentStateIdle. It holds the initial random delay that spreads a
// fleet's first checks over time.
type IdleState struct {
	BaseState
	CancellableState
}

// ID returns the state id
func (state *IdleState) ID() AgentState {
	return state.id
}

// Cancel cancels a state if it is cancellable
func (state *IdleState) Cancel(ok bool, nextState State) bool {
	return state.CancellableState.Cancel(ok, nextState)
}

// Handle for IdleState waits a uniformly-random duration drawn from
// the configured delay bounds and proceeds to polling
func (state *IdleState) Handle(a *Agent) (State, bool) {
	delay := randomDuration(a.Rand, a.Settings.MinRandomDelay, a.Settings.MaxRandomDelay)

	log.Info(fmt.Sprintf("waiting %s before first check", delay))

	select {
	case <-a.Clock.After(delay):
	case <-state.cancel:
		return state.NextState(), true
	}

	return NewPollState(), false
}

// NewIdleState creates a new IdleState
func NewIdleState() *IdleState {
	state := &IdleState{
		BaseState:        BaseState{id: AgentStateIdle},
		CancellableState: CancellableState{cancel: make(chan bool, 1)},
	}

	return state
}
