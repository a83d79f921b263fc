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
	"strings"

	"github.com/OSSystems/pkg/log"
)

// ProbeState is the State interface implementation for the
// AgentStateProbe
type ProbeState struct {
	BaseState
}

// ID returns the state id
func (state *ProbeState) ID() AgentState {
	return state.id
}

// Handle for ProbeState fetches the remote version string and decides
// between up-to-date, deferred and updating. Any non-equal remote value
// is treated as newer; versions are compared for exact string equality
// only.
func (state *ProbeState) Handle(a *Agent) (State, bool) {
	log.Info("checking for firmware update")

	a.Callbacks.emitVersionCheck()

	remote, err := a.Controller.ProbeVersion()

	a.setLastCheck(a.Clock.Now())

	if err != nil {
		a.setError(err.Error())
		return NewErrorState(NewTransientError(err)), false
	}

	remote = strings.TrimSpace(remote)
	local := a.Settings.CurrentVersion

	log.Info(fmt.Sprintf("current: %s, remote: %s", local, remote))

	if remote == local {
		log.Info("firmware is up to date")
		a.retry.succeed()
		return NewPollState(), false
	}

	log.Info("new version available")

	if a.Settings.RolloutEnabled {
		hash, err := a.FingerprintHash()
		if err != nil {
			a.setError(err.Error())
			return NewErrorState(NewTransientError(err)), false
		}

		if !RolloutEligible(hash, a.Settings.RolloutPercentage) {
			log.Info(fmt.Sprintf("staggered rollout: deferring update (device not in %d%% group)", a.Settings.RolloutPercentage))
			a.retry.succeed()
			return NewPollState(), false
		}
	}

	return NewUpdatingState(), false
}

// NewProbeState creates a new ProbeState
func NewProbeState() *ProbeState {
	state := &ProbeState{
		BaseState: BaseState{id: AgentStateProbe},
	}

	return state
}
