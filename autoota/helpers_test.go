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
	"time"

	"github.com/spf13/afero"
)

// fakeClock records every requested wait and fires it immediately. With
// hold set, waits never fire, so cancellation paths can be exercised.
type fakeClock struct {
	mu    sync.Mutex
	now   time.Time
	hold  bool
	waits []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1700000000, 0)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.waits = append(c.waits, d)

	if c.hold {
		return make(chan time.Time)
	}

	c.now = c.now.Add(d)

	ch := make(chan time.Time, 1)
	ch <- c.now

	return ch
}

func (c *fakeClock) recordedWaits() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]time.Duration(nil), c.waits...)
}

type fakeRand struct {
	v int64
}

func (f fakeRand) Int63n(n int64) int64 {
	return f.v % n
}

type alwaysConnected struct{}

func (alwaysConnected) Connected() bool { return true }

type neverConnected struct{}

func (neverConnected) Connected() bool { return false }

func newTestAgent(settings *Settings) (*Agent, *fakeClock) {
	if settings == nil {
		settings = NewDefaultSettings()
		settings.VersionURL = "http://localhost/version.txt"
		settings.FirmwareURL = "http://localhost/firmware.bin"
		settings.CurrentVersion = "1.0.0"
	}

	clock := newFakeClock()

	a := NewAgent("0.1.0", "2026-01-01 00:00:00 UTC", afero.NewMemMapFs(), settings)
	a.Clock = clock
	a.Rand = fakeRand{}
	a.Connectivity = alwaysConnected{}

	return a, clock
}
