// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bufx provides read buffers over possibly-uninitialized memory,
// so that hot read loops can skip zero-filling their buffers without ever
// exposing uninitialized bytes to safe code.
//
// # Mental model
//
// A Buffer wraps a byte region together with a cursor: the number of
// leading bytes known to be initialized. The cursor only moves forward.
// Safe accessors hand out either the proven-initialized prefix (Parts) or
// a zero-filled-on-demand prefix (Init, InitTo). The single escape hatch,
// Uninit combined with AssumeInitialized, lets a reader fill the raw
// region directly and then declare exactly how much it wrote. Buffers is
// the vectored counterpart: one cumulative cursor across an ordered set of
// IOSlice regions that can be handed to readv(2) without transformation.
//
// On top of the two buffer views sit the read entry points. ReadBuf,
// ReadBufs, ReadBufFull and ReadToEnd accept any io.Reader and use a
// portable path by default; readers that implement the BufReader or
// BufsReader capability (such as FDReader) are called with the raw region
// instead, skipping the zero-fill entirely. Copy stages through an
// uninitialized 4 KiB region and is the end-to-end use of the mechanism.
//
// End of stream may arrive either as a zero-byte read or as io.EOF; every
// loop in this package treats both as a clean stop. Misuse of the cursor
// bookkeeping (claiming more bytes than a region holds, negative cursor
// arithmetic) is a programming error and panics at the point of detection;
// it is never reported as a recoverable error value.
//
// All types assume exclusive single-owner use for their lifetime; no
// locking is performed and none is needed.
package bufx
