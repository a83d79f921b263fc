/*
 * AutoOTA
 * Copyright (C) 2026
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package indicatormock

import (
	"github.com/stretchr/testify/mock"
)

type IndicatorMock struct {
	mock.Mock
}

func (m *IndicatorMock) Set(on bool) error {
	args := m.Called(on)
	return args.Error(0)
}

func (m *IndicatorMock) Toggle() error {
	args := m.Called()
	return args.Error(0)
}
