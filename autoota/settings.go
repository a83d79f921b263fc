/*
 * AutoOTA
 * Copyright (C) 2026
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package autoota

import (
	"io"
	"time"

	"github.com/go-ini/ini"
	"github.com/pkg/errors"
)

const (
	defaultCheckInterval     = 5 * time.Minute
	defaultMinRandomDelay    = 60 * time.Second
	defaultMaxRandomDelay    = 180 * time.Second
	defaultMaxRetries        = 3
	defaultRolloutPercentage = 50

	// Configuration strings are bounded; excess bytes are dropped
	// silently.
	maxURLLen     = 256
	maxVersionLen = 32
)

type Settings struct {
	PollingSettings  `ini:"Polling" json:"polling"`
	UpdateSettings   `ini:"Update" json:"update"`
	NetworkSettings  `ini:"Network" json:"network"`
	FirmwareSettings `ini:"Firmware" json:"firmware"`
}

type PollingSettings struct {
	CheckInterval  time.Duration `ini:"Interval,omitempty" json:"interval,omitempty"`
	MinRandomDelay time.Duration `ini:"MinRandomDelay,omitempty" json:"min-random-delay,omitempty"`
	MaxRandomDelay time.Duration `ini:"MaxRandomDelay,omitempty" json:"max-random-delay,omitempty"`
	MaxRetries     int           `ini:"MaxRetries,omitempty" json:"max-retries,omitempty"`
}

type UpdateSettings struct {
	RolloutEnabled    bool `ini:"RolloutEnabled" json:"rollout-enabled"`
	RolloutPercentage int  `ini:"RolloutPercentage,omitempty" json:"rollout-percentage,omitempty"`
}

type NetworkSettings struct {
	VersionURL  string `ini:"VersionURL" json:"version-url"`
	FirmwareURL string `ini:"FirmwareURL" json:"firmware-url"`
}

type FirmwareSettings struct {
	CurrentVersion string `ini:"CurrentVersion" json:"current-version"`
	StatusLED      int    `ini:"StatusLed" json:"status-led"`
	Debug          bool   `ini:"Debug" json:"debug"`
}

func init() {
	ini.PrettyFormat = false
}

// NewDefaultSettings returns a Settings with every field set to its
// default value. Rollout starts disabled; StatusLED -1 means no
// indicator.
func NewDefaultSettings() *Settings {
	return &Settings{
		PollingSettings: PollingSettings{
			CheckInterval:  defaultCheckInterval,
			MinRandomDelay: defaultMinRandomDelay,
			MaxRandomDelay: defaultMaxRandomDelay,
			MaxRetries:     defaultMaxRetries,
		},

		UpdateSettings: UpdateSettings{
			RolloutEnabled:    false,
			RolloutPercentage: defaultRolloutPercentage,
		},

		NetworkSettings: NetworkSettings{
			VersionURL:  "",
			FirmwareURL: "",
		},

		FirmwareSettings: FirmwareSettings{
			CurrentVersion: "0.0.0",
			StatusLED:      -1,
			Debug:          false,
		},
	}
}

func LoadSettings(r io.Reader) (*Settings, error) {
	cfg, err := ini.Load(io.NopCloser(r))
	if err != nil || cfg == nil {
		return nil, err
	}

	s := NewDefaultSettings()

	err = cfg.MapTo(s)
	if err != nil {
		return nil, err
	}

	if err = s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

func SaveSettings(s *Settings, w io.Writer) error {
	cfg := ini.Empty()

	err := ini.ReflectFrom(cfg, s)
	if err != nil {
		return err
	}

	_, err = cfg.WriteTo(w)
	if err != nil {
		return err
	}

	return nil
}

// Validate enforces the configuration invariants: the random delay
// bounds must be ordered, the rollout percentage is clamped into
// [0,100] and bounded strings are truncated.
func (s *Settings) Validate() error {
	if s.MinRandomDelay > s.MaxRandomDelay {
		return errors.Errorf("min random delay (%s) must not be greater than max random delay (%s)", s.MinRandomDelay, s.MaxRandomDelay)
	}

	if s.RolloutPercentage < 0 {
		s.RolloutPercentage = 0
	}

	if s.RolloutPercentage > 100 {
		s.RolloutPercentage = 100
	}

	s.VersionURL = truncate(s.VersionURL, maxURLLen)
	s.FirmwareURL = truncate(s.FirmwareURL, maxURLLen)
	s.CurrentVersion = truncate(s.CurrentVersion, maxVersionLen)

	return nil
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}

	return s
}
