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

// PollState is the State interface implementation for the
// AgentStatePoll
type PollState struct {
	BaseState
	CancellableState
}

// ID returns the state id
func (state *PollState) ID() AgentState {
	return state.id
}

// Cancel cancels a state if it is cancellable
func (state *PollState) Cancel(ok bool, nextState State) bool {
	return state.CancellableState.Cancel(ok, nextState)
}

// Handle for PollState runs a single scheduler iteration: it backs off
// while the network is down without touching the check timers, probes
// when a check was forced or the check interval has elapsed, and
// otherwise sleeps a jittered tick.
func (state *PollState) Handle(a *Agent) (State, bool) {
	if !a.Connectivity.Connected() {
		log.Warn("network is down, waiting")

		select {
		case <-a.Clock.After(connectivityBackoff):
		case <-state.cancel:
			return state.NextState(), true
		}

		return NewPollState(), false
	}

	if a.consumeForceCheck() || a.elapsedSinceLastCheck() >= a.Settings.CheckInterval {
		return NewProbeState(), false
	}

	tick := jitteredInterval(a.Rand, a.Settings.CheckInterval)

	select {
	case <-a.Clock.After(tick):
	case <-state.cancel:
		return state.NextState(), true
	}

	return NewPollState(), false
}

// NewPollState creates a new PollState
func NewPollState() *PollState {
	state := &PollState{
		BaseState:        BaseState{id: AgentStatePoll},
		CancellableState: CancellableState{cancel: make(chan bool, 1)},
	}

	return state
}
