// File: pool/recycler_test.go
// Author: momentics <momentics@gmail.com>

package pool_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-native/internal/heap"
	"github.com/momentics/hioload-native/pool"
)

func TestRecyclerReuse(t *testing.T) {
	r := pool.NewRecycler(4)
	defer r.Drain()

	b1, err := r.Get(512)
	require.NoError(t, err)
	addr := b1.Addr()
	b1.Bytes()[0] = 0xAA
	r.Put(b1)

	b2, err := r.Get(512)
	require.NoError(t, err)
	require.Equal(t, addr, b2.Addr(), "exact size class should reuse the block")
	require.Equal(t, byte(0), b2.Bytes()[0], "reused block must be zeroed")
	r.Put(b2)
}

func TestRecyclerClassMiss(t *testing.T) {
	r := pool.NewRecycler(4)
	defer r.Drain()

	b1, err := r.Get(128)
	require.NoError(t, err)
	r.Put(b1)

	// A different size never reuses another class's block.
	b2, err := r.Get(256)
	require.NoError(t, err)
	require.NotEqual(t, b1.Addr(), b2.Addr())
	r.Put(b2)
}

func TestRecyclerOverflowFrees(t *testing.T) {
	r := pool.NewRecycler(1)
	defer r.Drain()

	b1, err := r.Get(64)
	require.NoError(t, err)
	b2, err := heap.Alloc(64)
	require.NoError(t, err)

	active := heap.ActiveBlocks()
	r.Put(b1) // cached
	require.Equal(t, active, heap.ActiveBlocks())
	r.Put(b2) // class full, freed to the OS
	require.Equal(t, active-1, heap.ActiveBlocks())

	s := r.Snapshot()
	require.Equal(t, 1, s.Classes)
	require.Equal(t, 1, s.CachedBlocks)
	require.Equal(t, int64(64), s.CachedBytes)
}

func TestRecyclerDrain(t *testing.T) {
	r := pool.NewRecycler(8)

	for _, size := range []int64{32, 32, 64} {
		b, err := r.Get(size)
		require.NoError(t, err)
		r.Put(b)
	}
	require.Equal(t, 3, r.Snapshot().CachedBlocks)

	active := heap.ActiveBlocks()
	r.Drain()
	require.Equal(t, pool.Stats{}, r.Snapshot())
	require.Equal(t, active-3, heap.ActiveBlocks())
}

func TestRecyclerIgnoresDeadBlocks(t *testing.T) {
	r := pool.NewRecycler(4)
	r.Put(nil)

	b, err := heap.Alloc(16)
	require.NoError(t, err)
	heap.Free(b)
	r.Put(b)

	require.Equal(t, pool.Stats{}, r.Snapshot())
}
