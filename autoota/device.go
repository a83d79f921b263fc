/*
 * AutoOTA
 * Copyright (C) 2026
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package autoota

import (
	"net"
	"sort"

	"github.com/pkg/errors"
)

// DeviceIdentity provides a stable, fleet-wide-unique fingerprint for
// this device. It is used for rollout bucketing only, never for
// authentication.
type DeviceIdentity interface {
	Fingerprint() ([]byte, error)
}

// HardwareIdentity derives the fingerprint from the burned-in address
// of the lowest-named non-loopback network interface, so it survives
// reboots and process restarts.
type HardwareIdentity struct{}

func (HardwareIdentity) Fingerprint() ([]byte, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list network interfaces")
	}

	sort.Slice(ifaces, func(i, j int) bool {
		return ifaces[i].Name < ifaces[j].Name
	})

	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		if len(iface.HardwareAddr) == 0 {
			continue
		}

		return append([]byte(nil), iface.HardwareAddr...), nil
	}

	return nil, errors.New("no hardware address available")
}

// HashFingerprint folds the fingerprint bytes into an unsigned 32-bit
// value. The multiplicative constant is part of the fleet bucketing
// contract and must not change between releases.
func HashFingerprint(fingerprint []byte) uint32 {
	var h uint32

	for _, b := range fingerprint {
		h = h*31 + uint32(b)
	}

	return h
}
