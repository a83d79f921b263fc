/*
 * AutoOTA
 * Copyright (C) 2026
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package indicator drives an optional binary status output, typically
// an LED, used as a liveness signal during updates.
package indicator

import (
	"fmt"

	"github.com/spf13/afero"
)

type Indicator interface {
	Set(on bool) error
	Toggle() error
}

// Null is the Indicator used when no status output is configured
type Null struct{}

func (Null) Set(on bool) error {
	return nil
}

func (Null) Toggle() error {
	return nil
}

// GpioLed drives a GPIO pin through the sysfs interface
type GpioLed struct {
	fs  afero.Fs
	pin int
	on  bool
}

func NewGpioLed(fs afero.Fs, pin int) *GpioLed {
	return &GpioLed{fs: fs, pin: pin}
}

// Export makes the pin available through sysfs and configures it as an
// output, initially off.
func (g *GpioLed) Export() error {
	err := afero.WriteFile(g.fs, "/sys/class/gpio/export", []byte(fmt.Sprintf("%d", g.pin)), 0644)
	if err != nil {
		return err
	}

	err = afero.WriteFile(g.fs, g.pinPath("direction"), []byte("out"), 0644)
	if err != nil {
		return err
	}

	return g.Set(false)
}

func (g *GpioLed) Set(on bool) error {
	value := "0"
	if on {
		value = "1"
	}

	err := afero.WriteFile(g.fs, g.pinPath("value"), []byte(value), 0644)
	if err != nil {
		return err
	}

	g.on = on

	return nil
}

func (g *GpioLed) Toggle() error {
	return g.Set(!g.on)
}

func (g *GpioLed) pinPath(entry string) string {
	return fmt.Sprintf("/sys/class/gpio/gpio%d/%s", g.pin, entry)
}
