// File: pool/recycler.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Size-classed FIFO recycler over the native heap. Each class caches up to
// capPerClass released blocks; overflow goes straight back to the OS.

package pool

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-native/internal/heap"
)

// DefaultClassCap bounds how many blocks one size class may cache.
const DefaultClassCap = 64

// Recycler caches released native blocks keyed by exact byte size.
type Recycler struct {
	mu      sync.Mutex
	classes map[int64]*queue.Queue
	cap     int
}

// NewRecycler creates a recycler caching at most capPerClass blocks per
// size class. capPerClass <= 0 selects DefaultClassCap.
func NewRecycler(capPerClass int) *Recycler {
	if capPerClass <= 0 {
		capPerClass = DefaultClassCap
	}
	return &Recycler{
		classes: make(map[int64]*queue.Queue),
		cap:     capPerClass,
	}
}

// Get returns a block of exactly n bytes, reusing a cached mapping when one
// exists and allocating from the native heap otherwise. Reused blocks are
// zeroed so fresh handles never observe stale elements.
func (r *Recycler) Get(n int64) (*heap.Block, error) {
	r.mu.Lock()
	if q, ok := r.classes[n]; ok && q.Length() > 0 {
		blk := q.Remove().(*heap.Block)
		r.mu.Unlock()
		clear(blk.Bytes())
		return blk, nil
	}
	r.mu.Unlock()
	return heap.Alloc(n)
}

// Put caches a released block for reuse. A nil or already-freed block is
// ignored; a full class frees the block to the OS instead.
func (r *Recycler) Put(b *heap.Block) {
	if b == nil || b.Addr() == 0 {
		return
	}
	r.mu.Lock()
	q, ok := r.classes[b.Size()]
	if !ok {
		q = queue.New()
		r.classes[b.Size()] = q
	}
	if q.Length() >= r.cap {
		r.mu.Unlock()
		heap.Free(b)
		return
	}
	q.Add(b)
	r.mu.Unlock()
}

// Drain frees every cached block back to the OS.
func (r *Recycler) Drain() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for size, q := range r.classes {
		for q.Length() > 0 {
			heap.Free(q.Remove().(*heap.Block))
		}
		delete(r.classes, size)
	}
}

// Stats describes the recycler's cached inventory.
type Stats struct {
	Classes      int
	CachedBlocks int
	CachedBytes  int64
}

// Snapshot returns current cache counters.
func (r *Recycler) Snapshot() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	var s Stats
	for size, q := range r.classes {
		if q.Length() == 0 {
			continue
		}
		s.Classes++
		s.CachedBlocks += q.Length()
		s.CachedBytes += size * int64(q.Length())
	}
	return s
}
