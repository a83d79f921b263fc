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
)

func TestIdleStateWaitsRandomDelayThenPolls(t *testing.T) {
	a, clock := newTestAgent(nil)
	a.Rand = fakeRand{v: int64(5 * time.Second)}

	state := NewIdleState()

	nextState, cancelled := state.Handle(a)

	assert.False(t, cancelled)
	assert.IsType(t, &PollState{}, nextState)

	// delay = min + draw = 60s + 5s
	waits := clock.recordedWaits()
	assert.Equal(t, []time.Duration{65 * time.Second}, waits)
}

func TestIdleStateCancel(t *testing.T) {
	a, clock := newTestAgent(nil)
	clock.hold = true

	state := NewIdleState()

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

func TestIdleStateToMap(t *testing.T) {
	state := NewIdleState()

	assert.Equal(t, map[string]interface{}{"status": "idle"}, state.ToMap())
}
