// Package bufferpool provides process-wide, mutex-protected scratch
// buffer pools for the uint32 slot lists that orbit traversal
// allocates and discards at high frequency.
package bufferpool

import "sync"

// U32Pool is a slice-backed free list of []uint32 scratch buffers,
// guarded by an explicit mutex rather than built on sync.Pool so
// Get/Release pairs can be reasoned about deterministically in tests
// (sync.Pool may silently drop entries under GC pressure).
type U32Pool struct {
	mu   sync.Mutex
	free [][]uint32
}

// Get returns a buffer with len 0 and at least the requested capacity.
func (p *U32Pool) Get(capHint int) []uint32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if n := len(p.free); n > 0 {
		buf := p.free[n-1]
		p.free = p.free[:n-1]
		if cap(buf) >= capHint {
			return buf[:0]
		}
	}
	return make([]uint32, 0, capHint)
}

// Release returns buf to the pool for reuse. Callers must not use buf
// after calling Release.
func (p *U32Pool) Release(buf []uint32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.free = append(p.free, buf[:0])
}

// DartPool is U32Pool specialized to dart slot lists; darts and cell
// slots share the same underlying uint32 representation, so the pool
// itself holds []uint32 and callers reinterpret via dart.Dart(slot).
type DartPool struct {
	U32Pool
}
