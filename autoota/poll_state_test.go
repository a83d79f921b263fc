/*
 * AutoOTA
 * Copyright (C) 2026
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package autoota

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/OSSystems/autoota/testsmocks/connectivitymock"
)

func TestPollStateProbesWhenIntervalElapsed(t *testing.T) {
	a, clock := newTestAgent(nil)

	a.setLastCheck(clock.Now().Add(-a.Settings.CheckInterval))

	nextState, cancelled := NewPollState().Handle(a)

	assert.False(t, cancelled)
	assert.IsType(t, &ProbeState{}, nextState)
	assert.Empty(t, clock.recordedWaits())
}

func TestPollStateProbesWhenCheckForced(t *testing.T) {
	a, clock := newTestAgent(nil)

	a.setLastCheck(clock.Now())
	a.ForceCheck()

	nextState, _ := NewPollState().Handle(a)

	assert.IsType(t, &ProbeState{}, nextState)

	// the flag is consumed; the next iteration sleeps normally
	nextState, _ = NewPollState().Handle(a)
	assert.IsType(t, &PollState{}, nextState)
}

func TestPollStateSleepsJitteredTick(t *testing.T) {
	a, clock := newTestAgent(nil)
	a.Rand = fakeRand{v: 0}

	a.setLastCheck(clock.Now())

	nextState, cancelled := NewPollState().Handle(a)

	assert.False(t, cancelled)
	assert.IsType(t, &PollState{}, nextState)

	// 5m interval, 30s variation, zero draw: 4m30s tick
	waits := clock.recordedWaits()
	assert.Equal(t, []time.Duration{4*time.Minute + 30*time.Second}, waits)
}

func TestPollStateBacksOffWhileNetworkIsDown(t *testing.T) {
	a, clock := newTestAgent(nil)

	cm := &connectivitymock.ConnectivityMock{}
	cm.On("Connected").Return(false).Once()
	a.Connectivity = cm

	lastCheck := a.GetLastCheckTime()

	nextState, cancelled := NewPollState().Handle(a)

	assert.False(t, cancelled)
	assert.IsType(t, &PollState{}, nextState)

	// a connectivity backoff, never a full poll tick
	waits := clock.recordedWaits()
	assert.Equal(t, []time.Duration{10 * time.Second}, waits)

	// the check timer must not move while the network is down
	assert.Equal(t, lastCheck, a.GetLastCheckTime())

	cm.AssertExpectations(t)
}

func TestPollStateCancel(t *testing.T) {
	a, clock := newTestAgent(nil)
	clock.hold = true

	a.setLastCheck(clock.Now())

	state := NewPollState()

	done := make(chan struct{})

	var nextState State
	var cancelled bool

	go func() {
		defer close(done)
		nextState, cancelled = state.Handle(a)
	}()

	assert.True(t, state.Cancel(true, NewExitState(0)))

	<-done

	assert.True(t, cancelled)
	assert.IsType(t, &ExitState{}, nextState)
}
