// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzav

/*
Package lzav implements the LZAV in-memory, single-shot LZ77-family codec
(format 2): an arbitrary source buffer is compressed into a self-contained
stream with no framing, checksum, or length prefix, and decoded back to an
identical buffer given the expected decoded length.

# Compress

	out := make([]byte, lzav.CompressBound(len(src)))
	n, err := lzav.Compress(src, out, nil)
	out = out[:n]

A scratch buffer for the hash table may be supplied to avoid allocating one
per call:

	scratch := make([]byte, lzav.ScratchSize(len(src)))
	n, err := lzav.Compress(src, out, scratch)

# Decompress

	out := make([]byte, expectedLen)
	n, err := lzav.Decompress(compressed, out, expectedLen)

DecompressPartial never returns an error; it decodes as much of src as fits
into dst and returns the number of bytes written, for best-effort recovery.
*/
package lzav
