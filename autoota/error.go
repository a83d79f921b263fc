/*
 * AutoOTA
 * Copyright (C) 2026
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package autoota

import "github.com/pkg/errors"

type AgentErrorReporter interface {
	Cause() error
	IsFatal() bool
	error
}

type AgentError struct {
	cause error
	fatal bool
}

func (e *AgentError) Cause() error {
	return e.cause
}

func (e *AgentError) IsFatal() bool {
	return e.fatal
}

func (e *AgentError) Error() string {
	var err error

	if e.fatal {
		err = errors.Wrapf(e.cause, "fatal error")
	} else {
		err = errors.Wrapf(e.cause, "transient error")
	}

	return err.Error()
}

func NewFatalError(err error) AgentErrorReporter {
	return &AgentError{
		cause: err,
		fatal: true,
	}
}

func NewTransientError(err error) AgentErrorReporter {
	return &AgentError{
		cause: err,
		fatal: false,
	}
}
