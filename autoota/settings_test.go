/*
 * AutoOTA
 * Copyright (C) 2026
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package autoota

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const customSettings = `
[Polling]
Interval=1h
MinRandomDelay=30s
MaxRandomDelay=90s
MaxRetries=7

[Update]
RolloutEnabled=true
RolloutPercentage=25

[Network]
VersionURL=https://updates.example.com/version.txt
FirmwareURL=https://updates.example.com/firmware.bin

[Firmware]
CurrentVersion=2.4.1
StatusLed=13
Debug=true
`

func TestNewDefaultSettings(t *testing.T) {
	s := NewDefaultSettings()

	assert.Equal(t, 5*time.Minute, s.CheckInterval)
	assert.Equal(t, 60*time.Second, s.MinRandomDelay)
	assert.Equal(t, 180*time.Second, s.MaxRandomDelay)
	assert.Equal(t, 3, s.MaxRetries)
	assert.False(t, s.RolloutEnabled)
	assert.Equal(t, 50, s.RolloutPercentage)
	assert.Equal(t, "", s.VersionURL)
	assert.Equal(t, "", s.FirmwareURL)
	assert.Equal(t, "0.0.0", s.CurrentVersion)
	assert.Equal(t, -1, s.StatusLED)
	assert.False(t, s.Debug)
}

func TestLoadSettings(t *testing.T) {
	s, err := LoadSettings(strings.NewReader(customSettings))
	require.NoError(t, err)

	assert.Equal(t, time.Hour, s.CheckInterval)
	assert.Equal(t, 30*time.Second, s.MinRandomDelay)
	assert.Equal(t, 90*time.Second, s.MaxRandomDelay)
	assert.Equal(t, 7, s.MaxRetries)
	assert.True(t, s.RolloutEnabled)
	assert.Equal(t, 25, s.RolloutPercentage)
	assert.Equal(t, "https://updates.example.com/version.txt", s.VersionURL)
	assert.Equal(t, "https://updates.example.com/firmware.bin", s.FirmwareURL)
	assert.Equal(t, "2.4.1", s.CurrentVersion)
	assert.Equal(t, 13, s.StatusLED)
	assert.True(t, s.Debug)
}

func TestLoadSettingsKeepsDefaultsForOmittedKeys(t *testing.T) {
	s, err := LoadSettings(strings.NewReader("[Network]\nVersionURL=http://localhost/v.txt\n"))
	require.NoError(t, err)

	assert.Equal(t, 5*time.Minute, s.CheckInterval)
	assert.Equal(t, "http://localhost/v.txt", s.VersionURL)
	assert.Equal(t, "0.0.0", s.CurrentVersion)
}

func TestLoadSettingsRejectsInvertedDelayBounds(t *testing.T) {
	_, err := LoadSettings(strings.NewReader("[Polling]\nMinRandomDelay=3m\nMaxRandomDelay=1m\n"))

	assert.EqualError(t, err, "min random delay (3m0s) must not be greater than max random delay (1m0s)")
}

func TestValidateClampsRolloutPercentage(t *testing.T) {
	s := NewDefaultSettings()

	s.RolloutPercentage = 150
	require.NoError(t, s.Validate())
	assert.Equal(t, 100, s.RolloutPercentage)

	s.RolloutPercentage = -5
	require.NoError(t, s.Validate())
	assert.Equal(t, 0, s.RolloutPercentage)
}

func TestValidateTruncatesBoundedStrings(t *testing.T) {
	s := NewDefaultSettings()

	s.VersionURL = "http://example.com/" + strings.Repeat("a", 300)
	s.FirmwareURL = "http://example.com/" + strings.Repeat("b", 300)
	s.CurrentVersion = strings.Repeat("1.", 40)

	require.NoError(t, s.Validate())

	assert.Len(t, s.VersionURL, 256)
	assert.Len(t, s.FirmwareURL, 256)
	assert.Len(t, s.CurrentVersion, 32)
}

func TestSaveSettings(t *testing.T) {
	s, err := LoadSettings(strings.NewReader(customSettings))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, SaveSettings(s, &out))

	reloaded, err := LoadSettings(strings.NewReader(out.String()))
	require.NoError(t, err)

	assert.Equal(t, s, reloaded)
}
