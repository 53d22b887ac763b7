// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux

package bufx

import (
	"io"
	"unsafe"

	"golang.org/x/sys/unix"
)

// FDReader reads from a raw file descriptor, such as a connected socket or
// a pipe end, with blocking semantics left to the descriptor itself.
//
// FDReader implements BufReader and BufsReader: reads go straight into the
// raw buffer regions via read(2) and readv(2), and exactly the returned
// byte count is declared initialized afterwards. No zero-fill ever happens
// on these paths.
//
// FDReader does not own the descriptor and never closes it.
type FDReader struct {
	fd int
}

// NewFDReader returns an FDReader over fd.
func NewFDReader(fd int) *FDReader {
	return &FDReader{fd: fd}
}

// FD returns the wrapped descriptor.
func (r *FDReader) FD() int { return r.fd }

// Read implements io.Reader. A zero-byte result on a non-empty p is mapped
// to io.EOF per the io.Reader convention.
func (r *FDReader) Read(p []byte) (int, error) {
	n, err := unix.Read(r.fd, p)
	if n < 0 {
		n = 0
	}
	if n == 0 && err == nil && len(p) > 0 {
		return 0, io.EOF
	}
	return n, err
}

// ReadBuf implements BufReader: one read(2) directly into the raw region.
// On success exactly n bytes are declared initialized; on failure the
// operating-system error is returned unchanged and the cursor is untouched.
//
// End of stream is reported as (0, nil), mirroring the system call.
func (r *FDReader) ReadBuf(buf *Buffer) (int, error) {
	n, err := unix.Read(r.fd, buf.Uninit())
	if err != nil {
		return 0, err
	}
	buf.AssumeInitialized(n)
	return n, nil
}

// ReadBufs implements BufsReader: one readv(2) over the raw regions. The
// []IOSlice backing array is passed to the kernel as the iovec array
// directly; IOSlice guarantees the layouts match. Error and end-of-stream
// semantics are the same as ReadBuf.
func (r *FDReader) ReadBufs(bufs *Buffers) (int, error) {
	iovs := bufs.Uninit()
	if len(iovs) == 0 {
		return 0, nil
	}
	n, _, errno := unix.Syscall(
		unix.SYS_READV,
		uintptr(r.fd),
		uintptr(unsafe.Pointer(&iovs[0])),
		uintptr(len(iovs)),
	)
	if errno != 0 {
		return 0, errno
	}
	bufs.AssumeInitialized(int(n))
	return int(n), nil
}
