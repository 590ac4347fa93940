// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzav

package lzav

import "sync"

// ScratchPool hands out reusable hash-table scratch buffers so repeated
// Compress calls over similarly-sized sources don't allocate on every call.
// It is a thin sync.Pool wrapper, adapted from the teacher's
// sliding-window pool (one scratch buffer per goroutine's working set
// rather than per sliding window), and is safe for concurrent use.
type ScratchPool struct {
	pool sync.Pool
	size int
}

// NewScratchPool returns a pool that hands out buffers sized for sources up
// to maxSrcLen bytes. Get returns a buffer of exactly ScratchSize(maxSrcLen);
// a smaller source still works fine against a larger buffer.
func NewScratchPool(maxSrcLen int) *ScratchPool {
	size := ScratchSize(maxSrcLen)
	p := &ScratchPool{size: size}
	p.pool.New = func() any {
		return make([]byte, size)
	}
	return p
}

// Get returns a scratch buffer of this pool's configured size.
func (p *ScratchPool) Get() []byte {
	return p.pool.Get().([]byte)
}

// Put returns a scratch buffer to the pool. Buffers not obtained from Get,
// or of the wrong size, are dropped rather than pooled.
func (p *ScratchPool) Put(buf []byte) {
	if len(buf) != p.size {
		return
	}
	p.pool.Put(buf) //nolint:staticcheck // buf escapes to the pool by design
}
