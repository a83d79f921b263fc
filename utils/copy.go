/*
 * AutoOTA
 * Copyright (C) 2026
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package utils

import (
	"io"

	"github.com/pkg/errors"
)

// ChunkSize is the size of each read/write step while streaming an
// image into flash.
const ChunkSize = 4096

// Copy streams exactly total bytes from rd into wr in ChunkSize steps.
// The cancel channel is checked between chunks so a caller can stop the
// stream without tearing a write in half; a true return for cancelled
// means the copy was abandoned cleanly. The progress callback runs
// after each written chunk with the cumulative byte count.
func Copy(wr io.Writer, rd io.Reader, total int64, cancel <-chan bool, progress func(written int64)) (int64, bool, error) {
	buf := make([]byte, ChunkSize)

	var written int64

	for written < total {
		select {
		case _, ok := <-cancel:
			if ok {
				return written, true, nil
			}
		default:
		}

		chunk := int64(len(buf))
		if remaining := total - written; remaining < chunk {
			chunk = remaining
		}

		n, err := io.ReadFull(rd, buf[:chunk])

		if n > 0 {
			wn, werr := wr.Write(buf[:n])
			written += int64(wn)

			if werr != nil {
				return written, false, werr
			}

			if progress != nil {
				progress(written)
			}
		}

		if err != nil {
			return written, false, errors.Wrap(err, "unexpected end of download")
		}
	}

	return written, false, nil
}
