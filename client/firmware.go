/*
 * AutoOTA
 * Copyright (C) 2026
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package client

import (
	"io"
	"net/http"

	"github.com/pkg/errors"
)

type FirmwareClient struct {
}

type FirmwareDownloader interface {
	DownloadFirmware(api ApiRequester, url string) (io.ReadCloser, int64, error)
}

// DownloadFirmware GETs the firmware image and returns the body stream
// along with the declared content length. The caller owns the stream
// and must close it.
func (u *FirmwareClient) DownloadFirmware(api ApiRequester, url string) (io.ReadCloser, int64, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to create download request")
	}

	addNoCacheHeaders(req)

	res, err := api.Do(req)
	if err != nil {
		return nil, 0, errors.Wrap(err, "download request failed")
	}

	if res.StatusCode != http.StatusOK {
		res.Body.Close()
		return nil, 0, errors.Errorf("download failed: HTTP %d", res.StatusCode)
	}

	return res.Body, res.ContentLength, nil
}

func NewFirmwareClient() *FirmwareClient {
	return &FirmwareClient{}
}
