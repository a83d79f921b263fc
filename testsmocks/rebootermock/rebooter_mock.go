/*
 * AutoOTA
 * Copyright (C) 2026
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package rebootermock

import (
	"github.com/stretchr/testify/mock"
)

type RebooterMock struct {
	mock.Mock
}

func (m *RebooterMock) Reboot() error {
	args := m.Called()
	return args.Error(0)
}
