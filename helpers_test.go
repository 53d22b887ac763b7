// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bufx_test

import (
	"io"
	"testing"

	"code.hybscloud.com/bufx"
)

func mustPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	f()
}

// chunkReader yields its chunks in order, then io.EOF.
type chunkReader struct {
	chunks [][]byte
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if len(r.chunks) == 0 {
		return 0, io.EOF
	}
	n := copy(p, r.chunks[0])
	if n == len(r.chunks[0]) {
		r.chunks = r.chunks[1:]
	} else {
		r.chunks[0] = r.chunks[0][n:]
	}
	return n, nil
}

// failingReader yields data, then err instead of io.EOF.
type failingReader struct {
	data []byte
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if len(r.data) > 0 {
		n := copy(p, r.data)
		r.data = r.data[n:]
		return n, nil
	}
	return 0, r.err
}

// zeroNilReader reports no progress forever without an error.
type zeroNilReader struct{}

func (zeroNilReader) Read([]byte) (int, error) { return 0, nil }

// rawFillReader implements the BufReader capability: it stores fill bytes
// directly into the raw region and declares exactly what it wrote, the way
// a descriptor-backed source does. It records the buffer's initialized
// count at entry to each call.
type rawFillReader struct {
	fill     byte
	per      int
	left     int
	seenInit []int
}

func (r *rawFillReader) Read([]byte) (int, error) {
	panic("rawFillReader: plain Read used instead of ReadBuf")
}

func (r *rawFillReader) ReadBuf(buf *bufx.Buffer) (int, error) {
	r.seenInit = append(r.seenInit, buf.Initialized())
	n := r.per
	if n > r.left {
		n = r.left
	}
	if n > buf.Len() {
		n = buf.Len()
	}
	raw := buf.Uninit()
	for i := 0; i < n; i++ {
		raw[i] = r.fill
	}
	buf.AssumeInitialized(n)
	r.left -= n
	return n, nil
}

// zealousReader implements BufReader through the portable Init path, so
// every call initializes the whole region regardless of how much it reads.
// It records the buffer's initialized count at entry to each call, which
// makes over-initialization carry observable.
type zealousReader struct {
	chunks   [][]byte
	seenInit []int
}

func (r *zealousReader) Read([]byte) (int, error) {
	panic("zealousReader: plain Read used instead of ReadBuf")
}

func (r *zealousReader) ReadBuf(buf *bufx.Buffer) (int, error) {
	r.seenInit = append(r.seenInit, buf.Initialized())
	p := buf.Init()
	if len(r.chunks) == 0 {
		return 0, nil
	}
	n := copy(p, r.chunks[0])
	if n == len(r.chunks[0]) {
		r.chunks = r.chunks[1:]
	} else {
		r.chunks[0] = r.chunks[0][n:]
	}
	return n, nil
}

// recordWriter keeps a private copy of every Write it accepts.
type recordWriter struct {
	writes [][]byte
}

func (w *recordWriter) Write(p []byte) (int, error) {
	w.writes = append(w.writes, append([]byte(nil), p...))
	return len(p), nil
}

// errWriter fails every Write with err, accepting nothing.
type errWriter struct {
	err error
}

func (w *errWriter) Write([]byte) (int, error) { return 0, w.err }

// shortWriter silently accepts one byte less than offered.
type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	return len(p) - 1, nil
}
