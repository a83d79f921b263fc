/*
 * AutoOTA
 * Copyright (C) 2026
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package autoota

import (
	"sync"
)

// UpdatingState is the State interface implementation for the
// AgentStateUpdating
type UpdatingState struct {
	BaseState
	CancellableState
	ProgressTracker
}

// ID returns the state id
func (state *UpdatingState) ID() AgentState {
	return state.id
}

// Cancel cancels a state if it is cancellable
func (state *UpdatingState) Cancel(ok bool, nextState State) bool {
	return state.CancellableState.Cancel(ok, nextState)
}

// Handle for UpdatingState drives the download-and-flash sequence. It
// goes to the rebooting state on success and to the error state
// otherwise. Cancellation is checked between flash chunks, so a stop
// never tears a write in half.
func (state *UpdatingState) Handle(a *Agent) (State, bool) {
	var err error

	progressChan := make(chan int, 10)

	m := sync.Mutex{}
	m.Lock()

	go func() {
		m.Lock()
		defer m.Unlock()

		err = a.Controller.FetchAndInstall(state.cancel, progressChan)

		close(progressChan)
	}()

	m.Unlock()
	for p := range progressChan {
		state.ProgressTracker.SetProgress(p)
	}

	// state cancelled
	if state.NextState() != nil {
		return state.NextState(), true
	}

	if err != nil {
		return NewErrorState(NewTransientError(err)), false
	}

	return NewRebootingState(), false
}

// ToMap is for the State interface implementation
func (state *UpdatingState) ToMap() map[string]interface{} {
	m := state.BaseState.ToMap()
	m["progress"] = state.ProgressTracker.GetProgress()
	return m
}

// NewUpdatingState creates a new UpdatingState
func NewUpdatingState() *UpdatingState {
	state := &UpdatingState{
		BaseState:        BaseState{id: AgentStateUpdating},
		CancellableState: CancellableState{cancel: make(chan bool, 1)},
		ProgressTracker:  &ProgressTrackerImpl{},
	}

	return state
}
