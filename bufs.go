// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build unix

package bufx

import (
	"io"
	"unsafe"

	"golang.org/x/sys/unix"
)

// IOSlice is a single scatter/gather region that is allowed to hold
// uninitialized bytes.
//
// It wraps exactly one unix.Iovec and nothing else, so a []IOSlice has the
// same memory layout as a []unix.Iovec (struct iovec array) and can be
// handed to readv(2) by pointer reinterpretation at the system-call
// boundary, with no copying or per-call transformation. That layout
// guarantee is the reason this type exists instead of a plain []byte.
type IOSlice struct {
	iov unix.Iovec
}

// NewIOSlice creates an IOSlice over p. The contents of p may be
// uninitialized; IOSlice itself performs no reads.
func NewIOSlice(p []byte) IOSlice {
	var s IOSlice
	if len(p) > 0 {
		s.iov.Base = &p[0]
	}
	s.iov.SetLen(len(p))
	return s
}

// Len returns the length of the region in bytes.
func (s *IOSlice) Len() int { return int(s.iov.Len) }

// Bytes returns the region as a byte slice. The same caller contract as
// Buffer.Uninit applies: bytes are only readable once something has proven
// them initialized.
func (s *IOSlice) Bytes() []byte {
	if s.iov.Base == nil {
		return nil
	}
	return unsafe.Slice(s.iov.Base, s.iov.Len)
}

// Buffers is the vectored counterpart of Buffer: an ordered sequence of
// IOSlice regions with one initialization cursor, read as a cumulative byte
// offset across the regions in order.
//
// The same monotonic-cursor contract as Buffer applies. Buffers borrows the
// slices it is given and owns no memory.
type Buffers struct {
	bufs        []IOSlice
	total       int
	initialized int
}

// NewBuffers creates a Buffers from fully initialized regions.
// The cursor starts at the sum of the region lengths.
func NewBuffers(bufs []IOSlice) *Buffers {
	total := totalLen(bufs)
	return &Buffers{bufs: bufs, total: total, initialized: total}
}

// NewUninitBuffers creates a Buffers from fully uninitialized regions.
// The cursor starts at zero. Use AssumeInitialized if a leading part of the
// regions is known to be already initialized.
func NewUninitBuffers(bufs []IOSlice) *Buffers {
	return &Buffers{bufs: bufs, total: totalLen(bufs)}
}

func totalLen(bufs []IOSlice) int {
	total := 0
	for i := range bufs {
		total += bufs[i].Len()
	}
	return total
}

// Len returns the total capacity in bytes across all regions.
func (b *Buffers) Len() int { return b.total }

// Initialized returns the cumulative number of leading bytes, across the
// regions in order, known to be initialized.
func (b *Buffers) Initialized() int { return b.initialized }

// AssumeInitialized declares that the first n cumulative bytes are
// initialized. The contract is identical to Buffer.AssumeInitialized:
// monotonic raise only, caller must have written the bytes, and claiming
// more than the total capacity panics.
func (b *Buffers) AssumeInitialized(n int) {
	if n > b.total {
		panic("bufx: initialized count exceeds total buffer length")
	}
	if n > b.initialized {
		b.initialized = n
	}
}

// Uninit returns the entire sequence of regions, including bytes not yet
// initialized. The Buffer.Uninit caller contract applies to every region.
func (b *Buffers) Uninit() []IOSlice { return b.bufs }

// Parts splits the sequence at the cursor and returns the fully initialized
// leading regions and the remaining regions. A region the cursor lands
// strictly inside is placed in the uninitialized half: Parts never returns
// a partially-initialized region as readable, preferring to under-report.
// The two halves exactly cover the sequence and are directly adjacent.
func (b *Buffers) Parts() (initialized, uninit []IOSlice) {
	remaining := b.initialized
	split := len(b.bufs)
	for i := range b.bufs {
		n := b.bufs[i].Len()
		if remaining < n {
			split = i
			remaining = 0
			break
		}
		remaining -= n
	}
	if remaining != 0 {
		panic("bufx: invalid initialized state")
	}
	return b.bufs[:split], b.bufs[split:]
}

// Init returns the entire sequence as initialized regions, zero-filling as
// necessary, and raises the cursor to the total capacity.
func (b *Buffers) Init() []IOSlice { return b.InitTo(b.total) }

// InitTo returns the leading regions covering at least n cumulative bytes,
// zero-filling uninitialized bytes as necessary.
//
// The cut rounds up to a whole-region boundary: the returned set is every
// region up to and including the first whose cumulative end reaches n, and
// may therefore cover more bytes than requested, never fewer. Each region
// visited has its uninitialized part zero-filled in full, and the cursor is
// raised to the bytes actually covered. Callers may rely on the rounding.
//
// InitTo panics if n exceeds the total capacity.
func (b *Buffers) InitTo(n int) []IOSlice {
	if n > b.total {
		panic("bufx: requested prefix exceeds total buffer length")
	}
	seen := 0
	for i := range b.bufs {
		l := b.bufs[i].Len()
		if seen+l > b.initialized {
			start := b.initialized - seen
			if start < 0 {
				start = 0
			}
			clear(b.bufs[i].Bytes()[start:])
		}
		seen += l
		if seen >= n {
			b.AssumeInitialized(seen)
			return b.bufs[:i+1]
		}
	}
	// Reachable only with zero regions and n == 0.
	return b.bufs
}

// BufsReader is the vectored read capability. Implementations receive the
// raw regions, may fill them directly, and must declare exactly the bytes
// produced via AssumeInitialized before returning.
type BufsReader interface {
	ReadBufs(bufs *Buffers) (int, error)
}

// ReadBufs reads from r into bufs, returning the number of bytes read.
//
// If r implements BufsReader, that path is used and no zero-fill occurs.
// Otherwise ReadBufs falls back to the portable vectored-read convention:
// it materializes the regions via Init and reads into the first non-empty
// one. On failure the regions' initialization state gained through Init is
// kept, but no read bytes are claimed.
func ReadBufs(r io.Reader, bufs *Buffers) (int, error) {
	if br, ok := r.(BufsReader); ok {
		return br.ReadBufs(bufs)
	}
	slices := bufs.Init()
	for i := range slices {
		if slices[i].Len() > 0 {
			return r.Read(slices[i].Bytes())
		}
	}
	return 0, nil
}
