// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bufx

import (
	"io"
)

// copyBufferSize is the size of the staging region used by Copy.
// It aligns with PIPE_BUF on Linux for atomic pipe writes.
const copyBufferSize = 4096

// Copy copies from src to dst until end of stream, returning the total
// bytes copied.
//
// Unlike io.Copy, the staging region starts out uninitialized and is only
// ever initialized by the reads themselves: sources implementing BufReader
// never pay for a zero-fill at all, and portable sources pay for exactly
// one. Each iteration writes precisely the newly-read prefix to dst.
//
// A zero-byte read or io.EOF ends the copy cleanly. Read and write errors
// are returned unchanged with the bytes written so far; a writer accepting
// fewer bytes than offered without reporting an error yields ErrShortWrite.
func Copy(dst io.Writer, src io.Reader) (written int64, err error) {
	buf := NewUninitBuffer(Alloc(copyBufferSize, copyBufferSize))

	for {
		nr, er := ReadBuf(src, buf)
		if nr > 0 {
			head, _ := buf.Parts()
			nw, ew := dst.Write(head[:nr])
			if nw > 0 {
				written += int64(nw)
			}
			if ew != nil {
				return written, ew
			}
			if nw != nr {
				return written, ErrShortWrite
			}
		}

		if er != nil {
			if er == io.EOF {
				return written, nil
			}
			return written, er
		}

		if nr == 0 {
			return written, nil
		}
	}
}
