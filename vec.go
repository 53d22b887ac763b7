// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bufx

import (
	"unsafe"
)

//go:linkname mallocgc runtime.mallocgc
func mallocgc(size uintptr, typ unsafe.Pointer, needzero bool) unsafe.Pointer

// Alloc returns a byte slice of the given length and capacity whose backing
// memory is uninitialized. It differs from make([]byte, length, capacity),
// which guarantees zeroed backing memory.
//
// The bytes between length and capacity follow the Buffer.Uninit contract:
// they are writable but must not be read until something has proven them
// initialized. Alloc panics if length is negative or exceeds capacity.
func Alloc(length, capacity int) []byte {
	if length < 0 || length > capacity {
		panic("bufx: invalid Alloc length")
	}
	if capacity == 0 {
		return nil
	}
	p := mallocgc(uintptr(capacity), nil, false)
	return unsafe.Slice((*byte)(p), capacity)[:length:capacity]
}

// SpareCapacity returns the unused capacity of v, the memory between
// len(v) and cap(v), as a writable but possibly-uninitialized slice.
//
// The view aliases v's backing array: bytes written through it become part
// of v once the caller extends v's length past them, and must not be
// treated as initialized before that.
func SpareCapacity(v []byte) []byte {
	return v[len(v):cap(v)]
}

// Grow ensures v has spare capacity for at least n more bytes, reallocating
// with amortized doubling if needed. The reallocated backing memory beyond
// the copied contents is left uninitialized.
func Grow(v *[]byte, n int) {
	if n <= cap(*v)-len(*v) {
		return
	}
	c := 2 * cap(*v)
	if c < len(*v)+n {
		c = len(*v) + n
	}
	grown := Alloc(len(*v), c)
	copy(grown, *v)
	*v = grown
}
