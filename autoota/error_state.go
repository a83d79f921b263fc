/*
 * AutoOTA
 * Copyright (C) 2026
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package autoota

import (
	"errors"

	"github.com/OSSystems/pkg/log"
)

// ErrorState is the State interface implementation for the
// AgentStateError
type ErrorState struct {
	BaseState
	cause AgentErrorReporter
}

// Handle for ErrorState exits the daemon if the error is fatal. For
// transient errors it applies the retry bookkeeping and goes back to
// polling; the agent never gives up permanently.
func (state *ErrorState) Handle(a *Agent) (State, bool) {
	log.Warn(state.cause)

	if state.cause.IsFatal() {
		return NewExitState(1), false
	}

	a.retry.fail(a.Settings.MaxRetries)

	return NewPollState(), false
}

// ToMap is for the State interface implementation
func (state *ErrorState) ToMap() map[string]interface{} {
	m := state.BaseState.ToMap()
	m["error"] = state.cause.Error()
	return m
}

// NewErrorState creates a new ErrorState from a AgentErrorReporter
func NewErrorState(err AgentErrorReporter) State {
	if err == nil {
		err = NewFatalError(errors.New("generic error"))
	}

	return &ErrorState{
		BaseState: BaseState{id: AgentStateError},
		cause:     err,
	}
}
