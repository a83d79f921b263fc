/*
 * AutoOTA
 * Copyright (C) 2026
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"net/http"
	"os"

	"github.com/OSSystems/pkg/log"
	"github.com/joho/godotenv"
	"github.com/kardianos/service"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/OSSystems/autoota/autoota"
	"github.com/OSSystems/autoota/flash"
	"github.com/OSSystems/autoota/indicator"
	"github.com/OSSystems/autoota/server"
)

var gitversion = "No version provided"
var buildtime = "No build time provided"

type program struct {
	agent *autoota.Agent
}

func (p *program) Start(s service.Service) error {
	return p.agent.Begin()
}

func (p *program) Stop(s service.Service) error {
	p.agent.Stop()
	return nil
}

func main() {
	godotenv.Load()

	osFs := afero.NewOsFs()

	settings, err := loadSettings(osFs)
	if err != nil {
		log.Fatal(err)
		os.Exit(1)
	}

	applyEnvOverrides(settings)

	if settings.Debug {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}

	agent := autoota.NewAgent(gitversion, buildtime, osFs, settings)
	agent.Flash = flash.NewFileWriter(osFs, firmwareTargetPath, 0)

	if settings.StatusLED >= 0 {
		led := indicator.NewGpioLed(osFs, settings.StatusLED)
		if err := led.Export(); err != nil {
			log.Warn(err)
		} else {
			agent.Indicator = led
		}
	}

	backend, err := server.NewAgentBackend(agent)
	if err != nil {
		log.Fatal(err)
		os.Exit(1)
	}

	go func() {
		router := server.NewBackendRouter(backend)
		if err := http.ListenAndServe(agentListenAddress, router.HTTPRouter); err != nil {
			log.Fatal(err)
		}
	}()

	svcConfig := &service.Config{
		Name:        "autoota",
		DisplayName: "AutoOTA agent",
		Description: "Automatic firmware update agent",
	}

	s, err := service.New(&program{agent: agent}, svcConfig)
	if err != nil {
		log.Fatal(err)
		os.Exit(1)
	}

	if err := s.Run(); err != nil {
		log.Fatal(err)
		os.Exit(1)
	}
}

func loadSettings(fs afero.Fs) (*autoota.Settings, error) {
	file, err := fs.Open(systemSettingsPath)
	if os.IsNotExist(err) {
		return autoota.NewDefaultSettings(), nil
	}

	if err != nil {
		return nil, err
	}

	defer file.Close()

	return autoota.LoadSettings(file)
}

// applyEnvOverrides lets a deployment override the URLs and the
// current version without editing the settings file.
func applyEnvOverrides(settings *autoota.Settings) {
	if v := os.Getenv("AUTOOTA_VERSION_URL"); v != "" {
		settings.VersionURL = v
	}

	if v := os.Getenv("AUTOOTA_FIRMWARE_URL"); v != "" {
		settings.FirmwareURL = v
	}

	if v := os.Getenv("AUTOOTA_CURRENT_VERSION"); v != "" {
		settings.CurrentVersion = v
	}
}
