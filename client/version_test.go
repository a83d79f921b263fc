/*
 * AutoOTA
 * Copyright (C) 2026
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package client

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchVersion(t *testing.T) {
	var gotHeaders http.Header

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		fmt.Fprint(w, "2.1.0\n")
	}))
	defer server.Close()

	version, err := NewVersionClient().FetchVersion(NewApiClient().Request(), server.URL+"/version.txt")
	require.NoError(t, err)

	// the body comes back raw, trailing newline included
	assert.Equal(t, "2.1.0\n", version)

	// the version file must never be served stale
	assert.Equal(t, "no-cache, no-store, must-revalidate", gotHeaders.Get("Cache-Control"))
	assert.Equal(t, "no-cache", gotHeaders.Get("Pragma"))
	assert.Equal(t, "0", gotHeaders.Get("Expires"))
}

func TestFetchVersionWithHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewVersionClient().FetchVersion(NewApiClient().Request(), server.URL)

	assert.EqualError(t, err, "version check failed: HTTP 404")
}

func TestFetchVersionWithUnreachableServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := NewVersionClient().FetchVersion(NewApiClient().Request(), server.URL)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "version check request failed")
}

func TestFetchVersionWithInvalidURL(t *testing.T) {
	_, err := NewVersionClient().FetchVersion(NewApiClient().Request(), "http://invalid url")

	assert.Error(t, err)
}
