// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzav

package lzav

import "encoding/binary"

// matchLen returns the number of equal leading bytes of a and b, up to ml.
// Both slices must be readable for at least ml bytes; matchLen never reads
// past that bound. Compares 8-byte words first, falling back to a tail loop,
// per spec §4.1.
func matchLen(a, b []byte, ml int) int {
	pos := 0

	for pos+8 <= ml {
		wa := binary.LittleEndian.Uint64(a[pos:])
		wb := binary.LittleEndian.Uint64(b[pos:])
		if wa != wb {
			return pos + trailingZeroBytes(wa^wb)
		}
		pos += 8
	}

	for pos < ml && a[pos] == b[pos] {
		pos++
	}

	return pos
}

// trailingZeroBytes returns the byte index of the lowest differing byte in a
// little-endian XOR word, i.e. trailing_zero_bits(x) >> 3.
func trailingZeroBytes(x uint64) int {
	n := 0
	for x&0xff == 0 {
		x >>= 8
		n++
	}
	return n
}

// matchLenR walks backward from src[ip-1] and src[pos-1] down to
// src[ip-ml] and src[pos-ml] inclusive, returning the count of equal bytes.
// Used to extend a forward match backward over already-committed literals
// (spec §4.1, "back-extension"). ml must not exceed ip or pos.
func matchLenR(src []byte, ip, pos, ml int) int {
	n := 0
	for n < ml && src[ip-1-n] == src[pos-1-n] {
		n++
	}
	return n
}
