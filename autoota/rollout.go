/*
 * AutoOTA
 * Copyright (C) 2026
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package autoota

// RolloutEligible reports whether a device falls inside the staged
// rollout bucket for the given percentage. Buckets are a pure function
// of the fingerprint hash, so raising the percentage only adds devices
// to the eligible set, it never reshuffles membership.
func RolloutEligible(hash uint32, percentage int) bool {
	return int(hash%100) < percentage
}
