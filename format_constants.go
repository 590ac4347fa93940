// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzav

package lzav

// LZAV format-2 wire constants: minimum/maximum reference bounds, window
// length, and the stable error-code values used for FFI parity.

// Reference length and window bounds (spec §3).
const (
	refMin = 6                           // minimum back-reference length, in bytes
	refLen = refMin + 15 + 255 + 254     // maximum back-reference length, in bytes
	winLen = 1 << 23                     // maximum back-reference distance / max single-call source length
	litFin = 6                           // literal bytes required at end of stream
)

// Stream format identifiers, written into the top nibble of the prefix byte.
const (
	fmtCur = 2 // current stream format
	fmtMin = 1 // oldest LZAV stream format; this decoder accepts only fmtCur
)

// Error codes (stable integer values for FFI parity).
const (
	codeParams = -1
	codeSrcOOB = -2
	codeDstOOB = -3
	codeRefOOB = -4
	codeDstLen = -5
	codeUnkFmt = -6
)

// boundK implements the bound formula of spec §4.3:
// bound(srcl) = (srcl - l2*6 + k - 1) / k * 2 - l2 + srcl + 16, k = 16+127+1.
const boundK = 16 + 127 + 1
