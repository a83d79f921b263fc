/*
 * AutoOTA
 * Copyright (C) 2026
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package downloadermock

import (
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/OSSystems/autoota/client"
)

type FirmwareDownloaderMock struct {
	mock.Mock
}

func (m *FirmwareDownloaderMock) DownloadFirmware(api client.ApiRequester, url string) (io.ReadCloser, int64, error) {
	args := m.Called(api, url)

	var rd io.ReadCloser
	if args.Get(0) != nil {
		rd = args.Get(0).(io.ReadCloser)
	}

	return rd, args.Get(1).(int64), args.Error(2)
}
