// File: internal/heap/heap_test.go
// Author: momentics <momentics@gmail.com>
//
// Unit tests for the native heap: accounting, loader idempotency, failure
// taxonomy.

package heap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-native/api"
	"github.com/momentics/hioload-native/internal/heap"
)

func TestEnsureIdempotent(t *testing.T) {
	require.NoError(t, heap.Ensure())
	// Repeated invocations return the cached result with no side effects.
	before := heap.TotalBytes()
	for i := 0; i < 100; i++ {
		require.NoError(t, heap.Ensure())
	}
	require.Equal(t, before, heap.TotalBytes())
}

func TestAllocFreeAccounting(t *testing.T) {
	bytesBefore := heap.TotalBytes()
	blocksBefore := heap.ActiveBlocks()

	blk, err := heap.Alloc(4096)
	require.NoError(t, err)
	require.NotEqual(t, uintptr(0), blk.Addr())
	require.Equal(t, int64(4096), blk.Size())
	require.Len(t, blk.Bytes(), 4096)
	require.Equal(t, bytesBefore+4096, heap.TotalBytes())
	require.Equal(t, blocksBefore+1, heap.ActiveBlocks())

	heap.Free(blk)
	require.Equal(t, bytesBefore, heap.TotalBytes())
	require.Equal(t, blocksBefore, heap.ActiveBlocks())
}

func TestAllocZero(t *testing.T) {
	blk, err := heap.Alloc(0)
	require.NoError(t, err)
	require.Nil(t, blk)
}

func TestAllocNegative(t *testing.T) {
	_, err := heap.Alloc(-5)
	require.Error(t, err)
}

func TestFreeIsIdempotent(t *testing.T) {
	blk, err := heap.Alloc(64)
	require.NoError(t, err)

	before := heap.TotalBytes()
	heap.Free(blk)
	heap.Free(blk)
	heap.Free(nil)
	require.Equal(t, before-64, heap.TotalBytes())
}

func TestBlockIsRegion(t *testing.T) {
	var _ api.Region = (*heap.Block)(nil)

	blk, err := heap.Alloc(32)
	require.NoError(t, err)
	defer heap.Free(blk)

	require.Equal(t, int64(0), blk.Position())
	require.Equal(t, int64(32), blk.Limit())
}

func TestMappedMemoryIsZeroed(t *testing.T) {
	blk, err := heap.Alloc(1 << 16)
	require.NoError(t, err)
	defer heap.Free(blk)

	for i, b := range blk.Bytes() {
		if b != 0 {
			t.Fatalf("byte %d not zeroed: %#x", i, b)
		}
	}
}

func TestOutOfMemoryAnnotated(t *testing.T) {
	_, err := heap.Alloc(1 << 62)
	require.Error(t, err)

	var oom *api.OutOfMemoryError
	require.ErrorAs(t, err, &oom)
	require.Equal(t, int64(1)<<62, oom.Requested)
	require.Equal(t, heap.TotalBytes(), oom.TotalBytes)
	require.NotNil(t, oom.Cause, "original allocator error must be chained")
}
