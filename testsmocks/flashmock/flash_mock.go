/*
 * AutoOTA
 * Copyright (C) 2026
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package flashmock

import (
	"github.com/stretchr/testify/mock"

	"github.com/OSSystems/autoota/flash"
)

type WriterMock struct {
	mock.Mock
}

func (m *WriterMock) Begin(expectedSize int64) bool {
	args := m.Called(expectedSize)
	return args.Bool(0)
}

func (m *WriterMock) Write(p []byte) (int, error) {
	args := m.Called(p)
	return args.Int(0), args.Error(1)
}

func (m *WriterMock) End() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *WriterMock) IsFinished() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *WriterMock) GetError() flash.ErrorCode {
	args := m.Called()
	return args.Get(0).(flash.ErrorCode)
}
