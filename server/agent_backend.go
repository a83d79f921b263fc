/*
 * AutoOTA
 * Copyright (C) 2026
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/OSSystems/pkg/log"
	"github.com/julienschmidt/httprouter"

	"github.com/OSSystems/autoota/autoota"
)

type AgentBackend struct {
	*autoota.Agent
}

func NewAgentBackend(a *autoota.Agent) (*AgentBackend, error) {
	return &AgentBackend{Agent: a}, nil
}

func (ab *AgentBackend) Routes() []Route {
	return []Route{
		{Method: "GET", Path: "/info", Handle: ab.info},
		{Method: "GET", Path: "/status", Handle: ab.status},
		{Method: "POST", Path: "/probe", Handle: ab.probe},
		{Method: "GET", Path: "/log", Handle: ab.log},
	}
}

func (ab *AgentBackend) info(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	out := map[string]interface{}{}

	out["version"] = ab.Agent.Version
	out["build-time"] = ab.Agent.BuildTime
	out["firmware-version"] = ab.Agent.GetCurrentVersion()
	out["config"] = ab.Agent.Settings

	if hash, err := ab.Agent.FingerprintHash(); err == nil {
		out["fingerprint-hash"] = hash
	}

	outputJSON, _ := json.MarshalIndent(out, "", "    ")

	w.WriteHeader(200)

	fmt.Fprint(w, string(outputJSON))
}

func (ab *AgentBackend) status(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	out := ab.Agent.GetState().ToMap()

	out["running"] = ab.Agent.IsRunning()
	out["last-check"] = ab.Agent.GetLastCheckTime()
	out["retries"] = ab.Agent.Retries()
	out["last-error"] = ab.Agent.GetLastError()

	outputJSON, _ := json.MarshalIndent(out, "", "    ")

	w.WriteHeader(200)

	fmt.Fprint(w, string(outputJSON))
}

func (ab *AgentBackend) probe(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	ab.Agent.ForceCheck()

	w.WriteHeader(202)

	fmt.Fprint(w, `{ "message": "request accepted, update probe scheduled" }`)
}

func (ab *AgentBackend) log(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	out := []map[string]interface{}{}

	for _, e := range log.AllEntries() {
		out = append(out, map[string]interface{}{
			"message": e.Message,
			"level":   string(e.Level.String()),
			"time":    string(e.Time.String()),
			"data":    e.Data,
		})
	}

	outputJSON, _ := json.MarshalIndent(out, "", "    ")

	w.WriteHeader(200)

	fmt.Fprint(w, string(outputJSON))
}
