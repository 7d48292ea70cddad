// File: internal/heap/heap.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Native heap backing the buffer handles. Memory comes straight from the
// OS mapping primitives, outside the Go heap, so addresses stay stable for
// the lifetime of a block and can be handed to native calls.
//
// Platform-specific mapping lives in alloc_unix.go and alloc_windows.go.

package heap

import (
	"fmt"
	"sync/atomic"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/momentics/hioload-native/api"
)

// loggerBox keeps atomic.Value stores monomorphic across logger types.
type loggerBox struct{ l log.Logger }

var (
	logger atomic.Value

	totalBytes   atomic.Int64
	activeBlocks atomic.Int64
)

func init() {
	logger.Store(loggerBox{log.NewNopLogger()})
}

// SetLogger installs the logger used for heap events. Safe for concurrent use.
func SetLogger(l log.Logger) {
	if l == nil {
		l = log.NewNopLogger()
	}
	logger.Store(loggerBox{l})
}

func logDebug(keyvals ...any) {
	level.Debug(logger.Load().(loggerBox).l).Log(keyvals...)
}

// Block is a single native allocation. It implements api.Region so a block
// can be wrapped directly into a handle as a native-backed external buffer.
type Block struct {
	addr  uintptr
	size  int64
	data  []byte
	freed atomic.Bool
}

func (b *Block) Addr() uintptr   { return b.addr }
func (b *Block) Size() int64     { return b.size }
func (b *Block) Bytes() []byte   { return b.data }
func (b *Block) Position() int64 { return 0 }
func (b *Block) Limit() int64    { return b.size }

// Alloc requests n bytes from the native heap. Alloc(0) succeeds and
// returns a nil block: the caller's handle stays in the unallocated state.
//
// Failure modes: api.ErrNotLoaded when Ensure has not succeeded,
// api.ErrNullAddress when the mapping came back at the sentinel, and
// *api.OutOfMemoryError (telemetry attached, cause chained) when the OS
// signals exhaustion.
func Alloc(n int64) (*Block, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative allocation size %d", n)
	}
	if n == 0 {
		return nil, nil
	}
	if err := Ensure(); err != nil {
		return nil, fmt.Errorf("%w: %v", api.ErrNotLoaded, err)
	}
	addr, data, err := osAlloc(n)
	if err != nil {
		if isNoMem(err) {
			return nil, &api.OutOfMemoryError{
				Requested:     n,
				TotalBytes:    TotalBytes(),
				ResidentBytes: ResidentBytes(),
				Cause:         err,
			}
		}
		return nil, fmt.Errorf("native alloc of %d bytes: %w", n, err)
	}
	if addr == 0 {
		return nil, api.ErrNullAddress
	}
	totalBytes.Add(n)
	activeBlocks.Add(1)
	logDebug("event", "alloc", "bytes", n, "addr", addr)
	return &Block{addr: addr, size: n, data: data}, nil
}

// Free returns a block's memory to the OS. Safe to call more than once per
// block and with a nil block; only the first call unmaps.
func Free(b *Block) {
	if b == nil || b.addr == 0 {
		return
	}
	if !b.freed.CompareAndSwap(false, true) {
		return
	}
	if err := osFree(b.addr, b.data); err != nil {
		logDebug("event", "free_failed", "addr", b.addr, "err", err)
		return
	}
	totalBytes.Add(-b.size)
	activeBlocks.Add(-1)
	logDebug("event", "free", "bytes", b.size, "addr", b.addr)
	b.addr = 0
	b.data = nil
}

// TotalBytes reports the tracked native bytes currently allocated.
func TotalBytes() int64 { return totalBytes.Load() }

// ActiveBlocks reports the number of live native blocks.
func ActiveBlocks() int64 { return activeBlocks.Load() }
