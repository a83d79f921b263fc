/*
 * AutoOTA
 * Copyright (C) 2026
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package connectivitymock

import (
	"github.com/stretchr/testify/mock"
)

type ConnectivityMock struct {
	mock.Mock
}

func (m *ConnectivityMock) Connected() bool {
	args := m.Called()
	return args.Bool(0)
}
