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

type VersionClient struct {
}

type VersionFetcher interface {
	FetchVersion(api ApiRequester, url string) (string, error)
}

// FetchVersion GETs the version file and returns its body unmodified;
// trimming is up to the caller.
func (u *VersionClient) FetchVersion(api ApiRequester, url string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to create version request")
	}

	addNoCacheHeaders(req)

	res, err := api.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "version check request failed")
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", errors.Errorf("version check failed: HTTP %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to read version response")
	}

	return string(body), nil
}

func NewVersionClient() *VersionClient {
	return &VersionClient{}
}
