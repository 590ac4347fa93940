// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzav

package lzav

import (
	"errors"
	"fmt"
)

// Sentinel errors for compression and decompression, with codes kept stable
// across versions for FFI parity (spec §6/§7).
var (
	// ErrParams is returned for nil or empty buffers (Compress accepts an
	// empty, non-nil source), an oversize source, or a destination smaller
	// than CompressBound/expected decoded length.
	ErrParams = errors.New("lzav: incorrect parameters")
	// ErrSrcOOB is returned when a block, literal run or varint would read
	// past the end of the source stream, or a varint is longer than five bytes.
	ErrSrcOOB = errors.New("lzav: source buffer out of bounds")
	// ErrDstOOB is returned when a block would write past the destination buffer.
	ErrDstOOB = errors.New("lzav: destination buffer out of bounds")
	// ErrRefOOB is returned when a decoded distance points before dst[0] or
	// before the already-written portion of the output.
	ErrRefOOB = errors.New("lzav: back-reference out of bounds")
	// ErrDstLen is returned when the stream ends cleanly at a block boundary
	// but fewer bytes were produced than the caller's expected length.
	ErrDstLen = errors.New("lzav: decompressed length mismatch")
	// ErrUnknownFormat is returned for a prefix byte whose format nibble this
	// decoder does not support (only format 2 is implemented; see SPEC_FULL.md).
	ErrUnknownFormat = errors.New("lzav: unknown stream format")
)

// CodecError wraps a sentinel error with its stable integer code, so callers
// bridging to FFI call sites can recover the exact negative return value
// (spec §6 "Error codes (stable integer values for FFI parity)").
type CodecError struct {
	Code int
	err  error
}

func (e *CodecError) Error() string { return fmt.Sprintf("%s (code %d)", e.err, e.Code) }
func (e *CodecError) Unwrap() error { return e.err }

func codecErr(err error, code int) *CodecError { return &CodecError{Code: code, err: err} }

var (
	errParamsC  = codecErr(ErrParams, codeParams)
	errSrcOOBC  = codecErr(ErrSrcOOB, codeSrcOOB)
	errDstOOBC  = codecErr(ErrDstOOB, codeDstOOB)
	errRefOOBC  = codecErr(ErrRefOOB, codeRefOOB)
	errDstLenC  = codecErr(ErrDstLen, codeDstLen)
	errUnkFmtC  = codecErr(ErrUnknownFormat, codeUnkFmt)
)
