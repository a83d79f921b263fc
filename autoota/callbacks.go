/*
 * AutoOTA
 * Copyright (C) 2026
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package autoota

// CallbackSet holds the lifecycle observers. Each event has a single
// slot: registering a callback replaces any previous one. Callbacks run
// synchronously on the agent task and must not block.
type CallbackSet struct {
	onUpdateStart    func()
	onUpdateProgress func(written, total int64)
	onUpdateComplete func()
	onUpdateError    func(message string)
	onVersionCheck   func()
}

func NewCallbackSet() *CallbackSet {
	return &CallbackSet{}
}

func (cs *CallbackSet) OnUpdateStart(f func()) {
	cs.onUpdateStart = f
}

func (cs *CallbackSet) OnUpdateProgress(f func(written, total int64)) {
	cs.onUpdateProgress = f
}

func (cs *CallbackSet) OnUpdateComplete(f func()) {
	cs.onUpdateComplete = f
}

func (cs *CallbackSet) OnUpdateError(f func(message string)) {
	cs.onUpdateError = f
}

func (cs *CallbackSet) OnVersionCheck(f func()) {
	cs.onVersionCheck = f
}

func (cs *CallbackSet) emitStart() {
	if cs.onUpdateStart != nil {
		cs.onUpdateStart()
	}
}

func (cs *CallbackSet) emitProgress(written, total int64) {
	if cs.onUpdateProgress != nil {
		cs.onUpdateProgress(written, total)
	}
}

func (cs *CallbackSet) emitComplete() {
	if cs.onUpdateComplete != nil {
		cs.onUpdateComplete()
	}
}

func (cs *CallbackSet) emitError(message string) {
	if cs.onUpdateError != nil {
		cs.onUpdateError(message)
	}
}

func (cs *CallbackSet) emitVersionCheck() {
	if cs.onVersionCheck != nil {
		cs.onVersionCheck()
	}
}
