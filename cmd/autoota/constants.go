/*
 * AutoOTA
 * Copyright (C) 2026
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package main

const (
	systemSettingsPath = "/etc/autoota.conf"
	firmwareTargetPath = "/var/lib/autoota/firmware.img"
	agentListenAddress = "localhost:8571"
)
