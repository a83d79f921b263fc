/*
 * AutoOTA
 * Copyright (C) 2026
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package flash

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// FileWriter stages the image into a sibling staging file and renames
// it over the target on a successful End. An abandoned stage is simply
// overwritten by the next Begin.
type FileWriter struct {
	fs         afero.Fs
	targetPath string
	capacity   int64

	file      afero.File
	expected  int64
	written   int64
	finished  bool
	lastError ErrorCode
}

// NewFileWriter creates a FileWriter committing to targetPath. A
// capacity of 0 means unbounded.
func NewFileWriter(fs afero.Fs, targetPath string, capacity int64) *FileWriter {
	return &FileWriter{
		fs:         fs,
		targetPath: targetPath,
		capacity:   capacity,
	}
}

func (w *FileWriter) Begin(expectedSize int64) bool {
	w.finished = false
	w.written = 0
	w.expected = expectedSize
	w.lastError = ErrorOK

	if expectedSize <= 0 || (w.capacity > 0 && expectedSize > w.capacity) {
		w.lastError = ErrorSpace
		return false
	}

	file, err := w.fs.OpenFile(w.stagingPath(), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		w.lastError = ErrorIO
		return false
	}

	w.file = file

	return true
}

func (w *FileWriter) Write(p []byte) (int, error) {
	if w.file == nil {
		w.lastError = ErrorNotStarted
		return 0, errors.New("flash write target not started")
	}

	n, err := w.file.Write(p)
	w.written += int64(n)

	if err != nil {
		w.lastError = ErrorIO
	}

	return n, err
}

func (w *FileWriter) End() bool {
	if w.file == nil {
		w.lastError = ErrorNotStarted
		return false
	}

	err := w.file.Close()
	w.file = nil

	if err != nil {
		w.lastError = ErrorIO
		return false
	}

	if w.written != w.expected {
		w.lastError = ErrorIncomplete
		return false
	}

	if err := w.fs.Rename(w.stagingPath(), w.targetPath); err != nil {
		w.lastError = ErrorIO
		return false
	}

	w.finished = true

	return true
}

func (w *FileWriter) IsFinished() bool {
	return w.finished
}

func (w *FileWriter) GetError() ErrorCode {
	return w.lastError
}

func (w *FileWriter) stagingPath() string {
	return w.targetPath + ".staging"
}
