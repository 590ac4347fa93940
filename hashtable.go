// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzav

package lzav

import "encoding/binary"

// hashTable is a fixed-capacity, open-addressed, bucket-of-two associative
// array mapping the hash of a 6-byte window to candidate absolute source
// offsets (spec §4.2). Each slot is 16 bytes: two (key uint32, pos uint32)
// tuples, stored little-endian in a flat byte scratch buffer so the same
// memory can be supplied by a caller-owned pool (spec §5/§6).
type hashTable struct {
	buf  []byte // caller-owned or internally allocated scratch, len == size
	mask uint32 // (size-1) XOR 15, so slot indices are 16-byte aligned
}

// minHashTableBytes / maxHashTableBytes bound the sizing policy of spec §4.2.
const (
	minHashTableBytes = 4096
	maxHashTableBytes = 1 << 20
)

// hashTableSize returns the scratch size (bytes) the compressor wants for a
// source of length srcl, per the sizing policy of spec §4.2: the smallest
// power of two H with H >= max(4096, min(1MiB, 4*srcl)).
func hashTableSize(srcl int) int {
	want := 4 * srcl
	if want < minHashTableBytes {
		want = minHashTableBytes
	}
	if want > maxHashTableBytes {
		want = maxHashTableBytes
	}
	return nextPow2(want)
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// ScratchSize returns the hash-table scratch size (in bytes) Compress will
// use for a source of the given length. Callers that want to reuse a
// scratch buffer across calls should size it with this function (or larger;
// any power-of-two size >= 4KiB is acceptable per spec §6).
func ScratchSize(srcl int) int {
	if srcl < 0 {
		srcl = 0
	}
	return hashTableSize(srcl)
}

// newHashTable builds a hash table over buf[:size] (or a freshly allocated
// one if buf is shorter than size), seeding every slot with the source's
// first 4 bytes as key and position 16 — a sentinel position that always
// fails the ip>=16, distance>=8 checks for the earliest positions, so the
// main loop's first probes need no extra "is this slot populated" test
// (spec §4.2 "Initial fill").
func newHashTable(buf []byte, src []byte, size int) *hashTable {
	if len(buf) < size || size&(size-1) != 0 {
		buf = make([]byte, size)
	} else {
		buf = buf[:size]
	}

	ht := &hashTable{buf: buf, mask: uint32(size-1) ^ 15}

	var seedKey uint32
	if len(src) >= 4 {
		seedKey = binary.LittleEndian.Uint32(src)
	}

	for off := 0; off+16 <= size; off += 16 {
		binary.LittleEndian.PutUint32(buf[off:], seedKey)
		binary.LittleEndian.PutUint32(buf[off+4:], 16)
		binary.LittleEndian.PutUint32(buf[off+8:], seedKey)
		binary.LittleEndian.PutUint32(buf[off+12:], 16)
	}

	return ht
}

// slotOffset returns the byte offset of the 16-byte slot for hash.
func (h *hashTable) slotOffset(hash uint32) int {
	return int((hash & h.mask) >> 4 << 4)
}

// probe returns the slot's two (key, pos) tuples.
func (h *hashTable) probe(hash uint32) (key0, pos0, key1, pos1 uint32) {
	off := h.slotOffset(hash)
	b := h.buf[off : off+16]
	return binary.LittleEndian.Uint32(b[0:4]),
		binary.LittleEndian.Uint32(b[4:8]),
		binary.LittleEndian.Uint32(b[8:12]),
		binary.LittleEndian.Uint32(b[12:16])
}

// insert writes (key, pos) into one of the slot's two tuples, chosen by a
// one-bit round-robin counter derived from the compressor's rndb dither bit.
func (h *hashTable) insert(hash uint32, key, pos uint32, rndb uint32) {
	off := h.slotOffset(hash)
	half := off + int(rndb&1)*8
	binary.LittleEndian.PutUint32(h.buf[half:], key)
	binary.LittleEndian.PutUint32(h.buf[half+4:], pos)
}

// hash6 computes the 32-bit komihash-flavored mix of the 6-byte window at
// src[ip:ip+6] (spec §4.2 "Hash function"). Callers must ensure
// ip+6 <= len(src). Returns the mix along with the raw 4-byte word iw1,
// which the caller also needs for the key-equality check.
func hash6(src []byte, ip int) (h uint32, iw1 uint32) {
	iw1 = binary.LittleEndian.Uint32(src[ip:])
	iw2 := binary.LittleEndian.Uint16(src[ip+4:])

	hm := uint64(0x243F6A88^iw1) * uint64(uint32(0x85A308D3)^uint32(iw2))
	return uint32(hm) ^ uint32(hm>>32), iw1
}
