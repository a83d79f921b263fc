/*
 * AutoOTA
 * Copyright (C) 2026
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package controllermock

import (
	"github.com/stretchr/testify/mock"
)

type ControllerMock struct {
	mock.Mock
}

func (m *ControllerMock) ProbeVersion() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *ControllerMock) FetchAndInstall(cancel <-chan bool, progressChan chan<- int) error {
	args := m.Called(cancel, progressChan)
	return args.Error(0)
}
