/*
 * AutoOTA
 * Copyright (C) 2026
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package utils

import "os/exec"

type Rebooter interface {
	Reboot() error
}

type RebooterImpl struct {
}

func (r *RebooterImpl) Reboot() error {
	return exec.Command("/sbin/reboot").Run()
}
