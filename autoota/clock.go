/*
 * AutoOTA
 * Copyright (C) 2026
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package autoota

import (
	"math/rand"
	"net"
	"time"
)

// Clock abstracts the process-wide time source so the scheduler can be
// exercised without real timers.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

func (SystemClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// Rand abstracts the randomness source used for the initial delay and
// the poll jitter.
type Rand interface {
	Int63n(n int64) int64
}

type SystemRand struct{}

func (SystemRand) Int63n(n int64) int64 {
	return rand.Int63n(n)
}

// ConnectivityChecker reports whether the network transport is usable.
type ConnectivityChecker interface {
	Connected() bool
}

// NetConnectivity considers the network up when any non-loopback
// interface is up and has an address assigned.
type NetConnectivity struct{}

func (NetConnectivity) Connected() bool {
	ifaces, err := net.Interfaces()
	if err != nil {
		return false
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 || iface.Flags&net.FlagUp == 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err == nil && len(addrs) > 0 {
			return true
		}
	}

	return false
}

// randomDuration draws a uniform duration from [min, max).
func randomDuration(r Rand, min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}

	return min + time.Duration(r.Int63n(int64(max-min)))
}

// jitteredInterval spreads the poll cadence by up to 10% in either
// direction so a fleet never synchronizes its checks.
func jitteredInterval(r Rand, interval time.Duration) time.Duration {
	variation := interval / 10
	if variation <= 0 {
		return interval
	}

	return interval + time.Duration(r.Int63n(2*int64(variation))) - variation
}
