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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDaemonExitsWithFailureOnFatalError(t *testing.T) {
	a, _ := newTestAgent(nil)

	a.SetState(NewErrorState(NewFatalError(errors.New("generic error"))))

	d := NewDaemon(a)

	assert.Equal(t, 1, d.Run())
	assert.IsType(t, &ExitState{}, a.GetState())
}

func TestDaemonStopsAtCancelledState(t *testing.T) {
	a, clock := newTestAgent(nil)
	clock.hold = true

	a.SetState(NewIdleState())

	d := NewDaemon(a)

	result := make(chan int, 1)

	go func() {
		result <- d.Run()
	}()

	d.Stop()
	a.Cancel(NewExitState(0))

	assert.Equal(t, 0, <-result)
}

func TestDaemonFollowsStateTransitions(t *testing.T) {
	a, _ := newTestAgent(nil)

	// transient error: the daemon records the failure and lands back
	// in polling before the stop takes effect
	a.SetState(NewErrorState(NewTransientError(errors.New("download failed: HTTP 500"))))

	d := NewDaemon(a)
	d.Stop()

	assert.Equal(t, 0, d.Run())
	assert.IsType(t, &PollState{}, a.GetState())
	assert.Equal(t, 1, a.Retries())
}
