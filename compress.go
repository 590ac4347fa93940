// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzav

package lzav

// Compress compresses src into dst (format 2) and returns the number of
// bytes written. dst must be at least CompressBound(len(src)) bytes. scratch
// is an optional caller-owned hash-table buffer (see ScratchSize); pass nil
// to let Compress allocate its own.
func Compress(src, dst, scratch []byte) (int, error) {
	return CompressWithOptions(src, dst, scratch, nil)
}

// CompressWithOptions is Compress with diagnostics/logging options (spec §6,
// extended per SPEC_FULL.md §2.3).
func CompressWithOptions(src, dst, scratch []byte, opts *CompressOptions) (int, error) {
	if src == nil || len(dst) == 0 {
		return 0, errParamsC
	}
	if len(src) > winLen {
		return 0, errParamsC
	}
	if len(dst) < CompressBound(len(src)) {
		return 0, errParamsC
	}

	log := opts.logger()

	dst[0] = byte(fmtCur<<4 | refMin)
	op := 1

	if len(src) < 16 {
		return writeShortSource(src, dst, op), nil
	}

	ht := newHashTable(scratch, src, hashTableSize(len(src)))

	ip := 16
	ipa := 0
	st := newEncState()
	mavg := 100 << 21
	rndb := uint32(0)

	refBlocks, litBytes := 0, 0

	for ip < len(src)-litFin {
		h, iw1 := hash6(src, ip)
		key0, pos0, key1, pos1 := ht.probe(h)

		bestLen, bestDist, bestPos := 0, 0, 0
		for _, cand := range [2][2]uint32{{key0, pos0}, {key1, pos1}} {
			if cand[0] != iw1 {
				continue
			}
			pos := int(cand[1])
			if pos >= ip {
				continue
			}
			d := ip - pos
			if d < 8 || d >= winLen {
				continue
			}

			ml := minInt(minInt(winLen, d), len(src)-litFin-ip)
			l := matchLen(src[ip:], src[pos:], ml)
			if l >= refMin && l > bestLen {
				bestLen = l
				bestDist = d
				bestPos = pos
			}
		}

		if bestLen == 0 {
			ht.insert(h, iw1, uint32(ip), rndb)

			mavg -= mavg >> 11
			if mavg < (200<<14) && ip != ipa {
				ip += 1 + int(rndb&1)
				if mavg < (130 << 14) {
					ip++
					if mavg < (100 << 14) {
						ip += 100 - (mavg >> 14)
					}
				}
			}
			ip++
			rndb = uint32(ip) & 1
			continue
		}

		if bestLen > refLen {
			bestLen = refLen
		}

		maxBack := minInt(minInt(ip-ipa, bestDist), minInt(bestPos, refLen-bestLen))
		bmc := 0
		if maxBack > 0 {
			bmc = matchLenR(src, ip, bestPos, maxBack)
		}
		ip -= bmc
		bestLen += bmc
		if bestLen > refLen {
			bestLen = refLen
		}

		lc := ip - ipa
		op = writeBlock(dst, op, lc, bestLen, bestDist, src[ipa:], &st)

		ip += bestLen
		ipa = ip
		mavg += ((bestLen << 21) - mavg) >> 10
		rndb ^= 1

		if bestDist > 273 {
			ht.insert(h, iw1, uint32(ip-bestLen), rndb)
		}

		refBlocks++
		litBytes += lc
	}

	tailLen := len(src) - ipa
	op = writeFinalLiteralBlock(dst, op, src[ipa:], tailLen)

	if log != nil {
		log.WithFields(map[string]interface{}{
			"src_len":    len(src),
			"out_len":    op,
			"ref_blocks": refBlocks,
			"lit_bytes":  litBytes,
		}).Debug("lzav: compress finished")
	}

	return op, nil
}

// writeShortSource handles the srcl < 16 fast path (spec §4.4): one literal
// byte holding srcl, the raw bytes, and zero-padding to LIT_FIN if needed.
func writeShortSource(src, dst []byte, op int) int {
	dst[op] = byte(len(src))
	op++
	op += copy(dst[op:], src)

	if len(src) < litFin {
		pad := litFin - len(src)
		for i := 0; i < pad; i++ {
			dst[op+i] = 0
		}
		op += pad
	}

	return op
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
