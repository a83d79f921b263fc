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
	"sync/atomic"

	"github.com/OSSystems/pkg/log"
)

// retryPolicy counts consecutive failed checks. There is no backoff
// curve: reaching the ceiling resets the counter and the agent keeps
// trying. The ceiling is an alerting threshold, not a halt condition.
type retryPolicy struct {
	count atomic.Int32
}

func (r *retryPolicy) fail(max int) {
	count := r.count.Add(1)

	if max > 0 && int(count) >= max {
		log.Warn(fmt.Sprintf("max retries reached (%d), resetting counter", max))
		r.count.Store(0)
	}
}

func (r *retryPolicy) succeed() {
	r.count.Store(0)
}

func (r *retryPolicy) retries() int {
	return int(r.count.Load())
}
