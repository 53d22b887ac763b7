// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bufx

import (
	"io"
)

// readToEndChunk is the capacity step ReadToEnd grows the destination by
// when its spare capacity is exhausted.
const readToEndChunk = 32

// BufReader is the single-region read capability. Implementations receive
// the raw region, may fill it directly without zero-filling, and must
// declare exactly the bytes produced via AssumeInitialized before
// returning. A failed read must leave the cursor untouched.
//
// Readers that do not implement BufReader are served by a portable fallback
// in ReadBuf; implementing the capability is purely an optimization.
type BufReader interface {
	ReadBuf(buf *Buffer) (int, error)
}

// ReadBuf reads once from r into buf, returning the number of bytes read.
//
// If r implements BufReader, the read goes directly into the raw region.
// Otherwise the region is materialized via Init (zero-filling its
// uninitialized tail once) and handed to r.Read. Either way, after a
// successful read the first n bytes of buf are initialized and readable
// through Parts.
//
// End of stream is reported as a zero-byte read, as io.EOF, or as both,
// depending on the reader; callers should treat the forms alike.
func ReadBuf(r io.Reader, buf *Buffer) (int, error) {
	if br, ok := r.(BufReader); ok {
		return br.ReadBuf(buf)
	}
	return r.Read(buf.Init())
}

// ReadBufFull reads from r until buf is completely filled, returning the
// number of bytes read.
//
// Each iteration re-wraps the unread tail of buf as its own Buffer,
// carrying the portion of the tail already known to be initialized, and
// issues a single ReadBuf against it, so BufReader overrides are honored
// throughout. A read that returns zero bytes (or io.EOF) before buf is full
// reports ErrUnexpectedEOF together with the bytes accumulated so far; the
// stream was not silently truncated.
func ReadBufFull(r io.Reader, buf *Buffer) (int, error) {
	base := 0
	for base < buf.Len() {
		carry := buf.Initialized() - base
		if carry < 0 {
			panic("bufx: invalid initialized state")
		}
		tail := NewUninitBuffer(buf.Uninit()[base:])
		tail.AssumeInitialized(carry)

		n, err := ReadBuf(r, tail)
		if n > 0 {
			buf.AssumeInitialized(base + tail.Initialized())
			base += n
		}
		if err != nil {
			if err == io.EOF && base >= buf.Len() {
				return base, nil
			}
			if err == io.EOF {
				return base, ErrUnexpectedEOF
			}
			return base, err
		}
		if n == 0 {
			return base, ErrUnexpectedEOF
		}
	}
	return base, nil
}

// ReadToEnd reads from r until end of stream, appending to *v, and returns
// the number of bytes appended.
//
// Bytes are read directly into the spare capacity of *v wrapped as a
// Buffer, so grown-but-unused memory is never zero-filled before use. When
// the spare capacity is exhausted it grows by readToEndChunk bytes. A read
// that initializes more bytes than it returns (a portable reader
// zero-filling the whole region, or an over-reading source) has that
// overshoot carried into the next iteration instead of being re-zeroed.
//
// A zero-byte read or io.EOF ends the loop cleanly. Any other error aborts
// immediately; bytes already committed to *v are kept and counted.
func ReadToEnd(r io.Reader, v *[]byte) (int, error) {
	start := len(*v)

	carry := 0
	for {
		if len(*v) == cap(*v) {
			// Spare capacity is empty, so carry is necessarily zero and
			// the fresh memory needs no initialization claim.
			Grow(v, readToEndChunk)
		}

		buf := NewUninitBuffer(SpareCapacity(*v))
		buf.AssumeInitialized(carry)

		n, err := ReadBuf(r, buf)
		if n > 0 {
			carry = buf.Initialized() - n
			if carry < 0 {
				panic("bufx: invalid initialized state")
			}
			*v = (*v)[:len(*v)+n]
		}
		if err != nil {
			if err == io.EOF {
				return len(*v) - start, nil
			}
			return len(*v) - start, err
		}
		if n == 0 {
			return len(*v) - start, nil
		}
	}
}
