/*
 * AutoOTA
 * Copyright (C) 2026
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package flash abstracts the device's persistent code storage. A
// Writer stages a firmware image and commits it for the next boot.
package flash

// ErrorCode identifies the failure recorded by a Writer.
type ErrorCode int

const (
	// ErrorOK means no error was recorded
	ErrorOK ErrorCode = iota
	// ErrorNotStarted means a write or finalize was attempted before
	// Begin
	ErrorNotStarted
	// ErrorSpace means the expected image does not fit the target
	ErrorSpace
	// ErrorIO means the storage backend failed
	ErrorIO
	// ErrorIncomplete means finalize ran before all expected bytes
	// were written
	ErrorIncomplete
)

// Writer is the flash-write target. Begin discards any previously
// staged image and sizes the target; End finalizes and verifies the
// staged image, committing it atomically from the running program's
// perspective.
type Writer interface {
	Begin(expectedSize int64) bool
	Write(p []byte) (int, error)
	End() bool
	IsFinished() bool
	GetError() ErrorCode
}
