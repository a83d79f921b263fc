/*
 * AutoOTA
 * Copyright (C) 2026
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package identitymock

import (
	"github.com/stretchr/testify/mock"
)

type IdentityMock struct {
	mock.Mock
}

func (m *IdentityMock) Fingerprint() ([]byte, error) {
	args := m.Called()

	var fingerprint []byte
	if args.Get(0) != nil {
		fingerprint = args.Get(0).([]byte)
	}

	return fingerprint, args.Error(1)
}
