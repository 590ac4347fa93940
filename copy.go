// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzav

package lzav

// copyBackRef copies length bytes from dst[outputPos-dist:outputPos-dist+length]
// to dst[outputPos:outputPos+length]. LZAV back-references may have dist <
// length (the match overlaps bytes it is itself producing), so a plain
// copy() is not sufficient: when dist < length we seed one dist-sized chunk
// and then grow it by repeated doubling, each step copying from the
// already-expanded output (spec §4.1 "overlap-safe copy").
func copyBackRef(dst []byte, outputPos, dist, length int) error {
	mPos := outputPos - dist
	if mPos < 0 {
		return errRefOOBC
	}
	if outputPos+length > len(dst) {
		return errDstOOBC
	}

	if dist >= length {
		copy(dst[outputPos:outputPos+length], dst[mPos:mPos+length])
		return nil
	}

	copy(dst[outputPos:outputPos+dist], dst[mPos:outputPos])
	copied := dist

	for copied < length {
		n := copy(dst[outputPos+copied:outputPos+length], dst[outputPos:outputPos+copied])
		copied += n
	}

	return nil
}
