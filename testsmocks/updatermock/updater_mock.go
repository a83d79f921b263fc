/*
 * AutoOTA
 * Copyright (C) 2026
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package updatermock

import (
	"github.com/stretchr/testify/mock"

	"github.com/OSSystems/autoota/client"
)

type VersionFetcherMock struct {
	mock.Mock
}

func (m *VersionFetcherMock) FetchVersion(api client.ApiRequester, url string) (string, error) {
	args := m.Called(api, url)
	return args.String(0), args.Error(1)
}
