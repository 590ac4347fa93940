// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzav

package lzav

// Decompress decodes src (a format-2 stream produced by Compress) into dst,
// which must be at least expectedDstl bytes long, and returns the number of
// bytes written. Decoding stops as soon as expectedDstl bytes have been
// produced. If src ends at a block boundary before that, Decompress returns
// ErrDstLen; if it ends inside a block, ErrSrcOOB; a block that would write
// past expectedDstl gives ErrDstOOB (spec §4.5, §6).
//
// Unlike the reference decoder, which reads up to LIT_FIN=6 bytes past the
// current position without a bounds check (a low-level optimization that
// relies on the compressor always leaving a 6-byte trailing margin), this
// decoder bounds-checks every access explicitly and drives the loop purely
// by "produced expectedDstl bytes, or ran out of input" — so it does not
// depend on that margin holding exactly (see DESIGN.md).
func Decompress(src, dst []byte, expectedDstl int) (int, error) {
	return DecompressWithOptions(src, dst, expectedDstl, nil)
}

// DecompressWithOptions is Decompress with diagnostics/logging options (spec
// §6, extended per SPEC_FULL.md §2.3/§2.4).
func DecompressWithOptions(src, dst []byte, expectedDstl int, opts *DecompressOptions) (int, error) {
	if len(src) == 0 || expectedDstl < 0 || len(dst) < expectedDstl {
		return 0, errParamsC
	}
	log := opts.logger()
	if expectedDstl == 0 {
		return 0, nil
	}

	if src[0]>>4 != fmtCur {
		return 0, errUnkFmtC
	}
	refMinV := int(src[0] & 0x0F)

	var n int
	var err error
	if expectedDstl < 16 {
		n, err = decodeShortSource(src, dst, expectedDstl)
	} else {
		var ip int
		n, ip, err = decodeBlocks(src, dst, expectedDstl, refMinV)
		if err == nil && (n != expectedDstl || ip > len(src)) {
			err = errDstLenC
		}
	}

	if log != nil {
		log.WithFields(map[string]interface{}{
			"src_len": len(src),
			"out_len": n,
			"ok":      err == nil,
		}).Debug("lzav: decompress finished")
	}

	return n, err
}

// DecompressPartial decodes as much of src into dst as it can, stopping at
// whichever comes first: dst fills up, src runs out, or the stream turns out
// to be malformed. It never returns an error, for best-effort recovery of a
// truncated or corrupt stream.
func DecompressPartial(src, dst []byte) int {
	if len(src) == 0 || len(dst) == 0 {
		return 0
	}
	if src[0]>>4 != fmtCur {
		return 0
	}
	refMinV := int(src[0] & 0x0F)

	if len(dst) < 16 {
		n, _ := decodeShortSourcePartial(src, dst)
		return n
	}

	n, _, _ := decodeBlocks(src, dst, len(dst), refMinV)
	return n
}

// decodeShortSource decodes the srcl < 16 fast path written by
// writeShortSource: a single raw byte holding the original length, the raw
// bytes, and zero-padding up to LIT_FIN (ignored on decode).
func decodeShortSource(src, dst []byte, expectedDstl int) (int, error) {
	if len(src) < 2 {
		return 0, errSrcOOBC
	}
	n := int(src[1])
	if n != expectedDstl {
		return 0, errDstLenC
	}
	if len(src) < 2+n {
		return 0, errSrcOOBC
	}
	copy(dst[:n], src[2:2+n])
	return n, nil
}

func decodeShortSourcePartial(src, dst []byte) (int, error) {
	if len(src) < 2 {
		return 0, errSrcOOBC
	}
	n := int(src[1])
	if n > len(dst) {
		n = len(dst)
	}
	avail := len(src) - 2
	if n > avail {
		n = avail
	}
	if n < 0 {
		n = 0
	}
	copy(dst[:n], src[2:2+n])
	return n, nil
}

// decodeBlocks decodes literal/reference blocks from src[1:] into dst[:limit]
// until op reaches limit or src is exhausted, mirroring writeBlock's
// offset-carry threading exactly (spec §4.3, §4.5). Returns the number of
// output bytes produced and the final input cursor.
func decodeBlocks(src, dst []byte, limit int, refMinV int) (int, int, error) {
	ip := 1
	op := 0
	cv := 0
	csh := uint(0)

	for op < limit {
		if ip >= len(src) {
			return op, ip, errDstLenC
		}
		bh := src[ip]

		if bh&0x30 == 0 {
			ip++
			nibble := int(bh & 0x0F)
			var cc int
			if nibble != 0 {
				cc = nibble - 1
			} else {
				v, n, err := readVarint(src, ip)
				if err != nil {
					return op, ip, err
				}
				ip += n
				cc = 15 + v
			}

			if ip+cc > len(src) {
				return op, ip, errSrcOOBC
			}
			if op+cc > limit {
				return op, ip, errDstOOBC
			}
			copy(dst[op:op+cc], src[ip:ip+cc])
			ip += cc
			op += cc

			ncv := int(bh >> 6)
			cv |= ncv << csh
			csh += 2
			continue
		}

		bt := int(bh>>4) & 3
		ip++
		if ip+bt > len(src) {
			return op, ip, errSrcOOBC
		}

		var o uint32
		for i := 0; i < bt; i++ {
			o |= uint32(src[ip+i]) << uint(8*i)
		}
		ip += bt

		headerVal := uint32(bh) | o<<8
		dShifted := int(headerVal >> 6)
		d := ((dShifted & (winLen - 1)) << csh) | cv

		if bt == 3 {
			cv = dShifted >> 23
			csh = 3
		} else {
			cv = 0
			csh = 0
		}

		nibble := int(bh & 0x0F)
		var rc int
		if nibble != 0 {
			rc = nibble - 1 + refMinV
		} else {
			if ip >= len(src) {
				return op, ip, errSrcOOBC
			}
			e1 := int(src[ip])
			ip++
			var ext int
			if e1 == 255 {
				if ip >= len(src) {
					return op, ip, errSrcOOBC
				}
				ext = 255 + int(src[ip])
				ip++
			} else {
				ext = e1
			}
			rc = refMinV + 15 + ext
		}

		if d <= 0 || d > op {
			return op, ip, errRefOOBC
		}
		if op+rc > limit {
			return op, ip, errDstOOBC
		}
		if err := copyBackRef(dst, op, d, rc); err != nil {
			return op, ip, err
		}
		op += rc
	}

	return op, ip, nil
}

// readVarint decodes a base-128 varint starting at src[ip]: low 7 bits per
// byte, high bit set while more bytes follow. Returns the value and the
// number of bytes consumed. A varint longer than five bytes is rejected with
// ErrSrcOOB.
func readVarint(src []byte, ip int) (int, int, error) {
	val := 0
	shift := uint(0)
	n := 0

	for {
		if ip+n >= len(src) {
			return 0, 0, errSrcOOBC
		}
		b := src[ip+n]
		val |= int(b&0x7F) << shift
		n++
		if b&0x80 == 0 {
			break
		}
		shift += 7
		if shift > 28 {
			return 0, 0, errSrcOOBC
		}
	}

	return val, n, nil
}
