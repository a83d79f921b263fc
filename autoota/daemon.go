/*
 * AutoOTA
 * Copyright (C) 2026
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package autoota

import "sync/atomic"

type Daemon struct {
	agent *Agent
	stop  atomic.Bool
}

func NewDaemon(agent *Agent) *Daemon {
	return &Daemon{
		agent: agent,
	}
}

func (d *Daemon) Stop() {
	d.stop.Store(true)
}

func (d *Daemon) Run() int {
	for {
		nextState := d.agent.ProcessCurrentState()

		d.agent.SetState(nextState)

		if d.stop.Load() || nextState.ID() == AgentStateExit {
			if finalState, _ := nextState.(*ExitState); finalState != nil {
				return finalState.exitCode
			}

			return 0
		}
	}
}
