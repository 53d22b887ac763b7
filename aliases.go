// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bufx

import (
	"io"
)

// bufx re-exports (aliases) the io types and sentinels its contracts are
// phrased in, so that users can stay in the "bufx" namespace while reading
// documentation and navigating types. The contracts mirror the standard io
// expectations, with bufx-specific behavior documented at the call sites
// (ReadBuf, ReadBufFull, ReadToEnd, Copy).

// Reader is implemented by types that can read bytes into p.
//
// In this package every read loop treats a (0, nil) result on a non-empty
// buffer as end of stream, matching the raw system-call convention used by
// FDReader, in addition to the standard io.EOF form.
//
// Reader is an alias of io.Reader.
type Reader = io.Reader

// Writer is implemented by types that can write bytes from p.
//
// Copy relies on the standard contract that a Writer accepting fewer than
// len(p) bytes must return a non-nil error; a silent short write is
// reported as ErrShortWrite and ends the copy.
//
// Writer is an alias of io.Writer.
type Writer = io.Writer

// Closer is implemented by types that can release resources.
//
// Closer is an alias of io.Closer.
type Closer = io.Closer

// ReadCloser groups Read and Close.
//
// ReadCloser is an alias of io.ReadCloser.
type ReadCloser = io.ReadCloser

// ReadWriter groups the basic Read and Write methods.
//
// ReadWriter is an alias of io.ReadWriter.
type ReadWriter = io.ReadWriter

// Common sentinel errors re-exported for convenience.
var (
	// EOF marks a clean end of stream. Functions should return EOF only to
	// signal a graceful end of input; read loops in this package absorb it.
	EOF = io.EOF

	// ErrUnexpectedEOF means the stream ended before a required length was
	// read. ReadBufFull returns it when a read produces zero bytes with the
	// buffer still unfilled; it is distinguishable from a transport error.
	ErrUnexpectedEOF = io.ErrUnexpectedEOF

	// ErrShortWrite means a write accepted fewer bytes than requested and
	// returned no explicit error. Copy returns it instead of retrying.
	ErrShortWrite = io.ErrShortWrite
)
