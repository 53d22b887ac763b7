// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bufx

// Buffer is a view over a contiguous byte region whose contents may be only
// partially initialized, together with a cursor counting how many leading
// bytes are known to be initialized.
//
// The cursor is monotonic: bytes are never "de-initialized". Safe reads are
// only possible through the initialized prefix (Parts, Init, InitTo); the
// raw region is reachable through Uninit under a caller contract.
//
// A Buffer borrows the region it is given; it owns no memory and must not
// outlive the slice it wraps.
type Buffer struct {
	buf         []byte
	initialized int
}

// NewBuffer creates a Buffer from a fully initialized region.
// The cursor starts at len(p).
func NewBuffer(p []byte) *Buffer {
	return &Buffer{buf: p, initialized: len(p)}
}

// NewUninitBuffer creates a Buffer from a fully uninitialized region.
// The cursor starts at zero. Use AssumeInitialized if a leading part of the
// region is known to be already initialized.
func NewUninitBuffer(p []byte) *Buffer {
	return &Buffer{buf: p}
}

// Len returns the total size of the region. It is constant for the life of
// the Buffer.
func (b *Buffer) Len() int { return len(b.buf) }

// Initialized returns the number of leading bytes known to be initialized.
func (b *Buffer) Initialized() int { return b.initialized }

// AssumeInitialized declares that the first n bytes of the region are
// initialized. Calling it with fewer bytes than are already known to be
// initialized does nothing.
//
// The caller must have actually written those bytes: claiming bytes that
// were never stored exposes garbage through the safe accessors. Claiming
// more bytes than the region holds is a detected contract violation and
// panics.
func (b *Buffer) AssumeInitialized(n int) {
	if n > len(b.buf) {
		panic("bufx: initialized count exceeds buffer length")
	}
	if n > b.initialized {
		b.initialized = n
	}
}

// Uninit returns the entire region, including bytes not yet initialized.
//
// The caller must not treat bytes at or beyond Initialized as readable, and
// must not "de-initialize" bytes before it: anything already counted by the
// cursor has to keep holding stored data after writes through this view.
func (b *Buffer) Uninit() []byte { return b.buf }

// Parts splits the region at the cursor and returns the initialized prefix
// and the remaining possibly-uninitialized tail. The two slices exactly
// cover the region and are directly adjacent; the prefix is safe to read,
// the tail is safe to write.
func (b *Buffer) Parts() (initialized, uninit []byte) {
	return b.buf[:b.initialized], b.buf[b.initialized:]
}

// Init returns the entire region as an initialized slice, zero-filling the
// uninitialized tail first. The first call may therefore cost a zero-fill;
// subsequent calls are free because the cursor has been raised to Len.
func (b *Buffer) Init() []byte { return b.InitTo(len(b.buf)) }

// InitTo returns the first n bytes of the region as an initialized slice.
// Bytes between the cursor and n are zero-filled and the cursor is raised
// to n; bytes already initialized are left untouched, so the call is
// idempotent for the same or smaller n.
//
// InitTo panics if n exceeds the region length.
func (b *Buffer) InitTo(n int) []byte {
	if n > len(b.buf) {
		panic("bufx: requested prefix exceeds buffer length")
	}
	if n > b.initialized {
		clear(b.buf[b.initialized:n])
		b.initialized = n
	}
	return b.buf[:n]
}
