// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bufx

import (
	"errors"
	"io"
)

// Outcome classifies a read-loop result into this package's error taxonomy.
//
// OutcomeOK:            success, more data may follow.
// OutcomeEOF:           clean end of stream; a normal terminal state.
// OutcomeUnexpectedEOF: the stream ended before a required length was read.
// OutcomeFailure:       any other error, typically a transport failure
//                       surfaced unchanged from the operating system.
//
// Contract violations are not part of the taxonomy: they panic at the
// point of detection instead of producing an error value.
type Outcome uint8

const (
	OutcomeFailure Outcome = iota
	OutcomeOK
	OutcomeEOF
	OutcomeUnexpectedEOF
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "OK"
	case OutcomeEOF:
		return "EOF"
	case OutcomeUnexpectedEOF:
		return "UnexpectedEOF"
	default:
		return "Failure"
	}
}

// IsEOF reports whether err marks a clean end of stream.
// It returns true for io.EOF and wrappers (via errors.Is).
func IsEOF(err error) bool { return errors.Is(err, io.EOF) }

// IsUnexpectedEOF reports whether err marks a stream that ended before a
// required length was read, as returned by ReadBufFull. It returns true
// for ErrUnexpectedEOF and wrappers (via errors.Is).
func IsUnexpectedEOF(err error) bool { return errors.Is(err, io.ErrUnexpectedEOF) }

// IsEndOfStream reports whether err marks the end of the stream in either
// form: clean or premature. Transport failures are excluded.
func IsEndOfStream(err error) bool { return IsEOF(err) || IsUnexpectedEOF(err) }

// Classify maps err to an Outcome. Use when a compact switch is preferred.
func Classify(err error) Outcome {
	if err == nil {
		return OutcomeOK
	}
	if IsEOF(err) {
		return OutcomeEOF
	}
	if IsUnexpectedEOF(err) {
		return OutcomeUnexpectedEOF
	}
	return OutcomeFailure
}
