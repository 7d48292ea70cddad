// File: buf/bool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bool: the native handle for single-byte boolean arrays. All scalar and
// bulk operations index from the handle's current position. Accessors do
// no bounds checking of their own; an out-of-range index against native
// memory is a native-layer fault, not re-validated here.

package buf

import (
	"fmt"
	"unsafe"

	"github.com/momentics/hioload-native/api"
	"github.com/momentics/hioload-native/internal/heap"
	"github.com/momentics/hioload-native/pool"
)

// Bool is a typed handle to native memory holding one boolean per byte.
// The zero value is an unallocated placeholder: address 0, capacity 0,
// every element or bulk operation against it is a native-layer fault.
type Bool struct {
	addr     uintptr
	position int64
	limit    int64
	capacity int64

	// owning handles release their block; aliases never do.
	owning   bool
	block    *heap.Block
	recycler *pool.Recycler
}

// Option configures construction.
type Option func(*Bool)

// WithRecycler routes this handle's allocation and release through r
// instead of the native heap directly.
func WithRecycler(r *pool.Recycler) Option {
	return func(p *Bool) { p.recycler = r }
}

// New allocates a native boolean array of n elements. The handle owns the
// allocation; capacity = n, position = 0, limit = n. New(0) succeeds and
// returns an unallocated placeholder.
func New(n int64, opts ...Option) (*Bool, error) {
	p := &Bool{}
	for _, o := range opts {
		o(p)
	}
	ensureLoaded()
	if n == 0 {
		return p, nil
	}
	blk, err := p.alloc(n)
	if err != nil {
		return nil, fmt.Errorf("new Bool(%d): %w", n, err)
	}
	p.addr = blk.Addr()
	p.capacity = n
	p.position = 0
	p.limit = n
	p.owning = true
	p.block = blk
	return p, nil
}

// FromSlice allocates enough memory for vals and copies it in. Owning.
func FromSlice(vals []bool, opts ...Option) (*Bool, error) {
	p, err := New(int64(len(vals)), opts...)
	if err != nil {
		return nil, err
	}
	if len(vals) > 0 {
		p.PutSlice(vals, 0, len(vals))
	}
	return p, nil
}

// FromRegion builds a handle from an external buffer. A native-backed
// region (Addr() != 0) is aliased zero-copy: the handle shares the
// region's address and inherits its position and limit, and never
// releases the memory. A region without a stable native address is
// copied: fresh owning memory sized to the region's bytes, each source
// byte stored as its truth value, position and limit mirroring the
// region's window.
func FromRegion(r api.Region, opts ...Option) (*Bool, error) {
	if addr := r.Addr(); addr != 0 {
		p := &Bool{}
		for _, o := range opts {
			o(p)
		}
		ensureLoaded()
		p.addr = addr
		p.capacity = int64(len(r.Bytes()))
		p.position = r.Position()
		p.limit = r.Limit()
		return p, nil
	}
	src := r.Bytes()
	p, err := New(int64(len(src)), opts...)
	if err != nil {
		return nil, fmt.Errorf("copying region: %w", err)
	}
	for i, b := range src {
		p.Put(int64(i), b != 0)
	}
	p.position = r.Position()
	p.limit = r.Limit()
	return p, nil
}

// Alias returns a new handle sharing src's address, window and capacity
// without allocating. The alias never owns the memory.
func Alias(src *Bool) *Bool {
	return &Bool{
		addr:     src.addr,
		position: src.position,
		limit:    src.limit,
		capacity: src.capacity,
	}
}

// OffsetView returns an aliasing handle addressing the remainder of the
// allocation from element i: the address advances by i elements, limit and
// capacity shrink by i (floored at 0), and the position carries over,
// clamped into the shrunk window. Never copies, never owns.
func (p *Bool) OffsetView(i int64) *Bool {
	v := Alias(p)
	if v.addr == 0 {
		return v
	}
	v.addr += uintptr(i * v.ElemSize())
	if v.limit > 0 {
		v.limit = max(v.limit-i, 0)
	}
	if v.capacity > 0 {
		v.capacity = max(v.capacity-i, 0)
	}
	v.position = min(v.position, v.limit)
	return v
}

// Release frees the handle's memory if it owns it and resets the handle to
// the unallocated state. Releasing an alias only resets the handle; the
// shared memory stays with its owner.
func (p *Bool) Release() {
	if p.owning && p.block != nil {
		if p.recycler != nil {
			p.recycler.Put(p.block)
		} else {
			heap.Free(p.block)
		}
	}
	p.addr = 0
	p.position = 0
	p.limit = 0
	p.capacity = 0
	p.owning = false
	p.block = nil
}

// Bool is itself a native-backed external buffer: FromRegion over a live
// handle produces a zero-copy alias.
var _ api.Region = (*Bool)(nil)

// Kind reports the variant of this handle.
func (p *Bool) Kind() api.Kind { return api.Bool }

// ElemSize returns the fixed element size of this variant, in bytes.
func (p *Bool) ElemSize() int64 { return api.Bool.Size() }

// Addr returns the raw native address, 0 when unallocated.
func (p *Bool) Addr() uintptr { return p.addr }

// Bytes exposes the whole allocation as raw bytes, nil when unallocated.
func (p *Bool) Bytes() []byte {
	if p.addr == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(p.addr)), p.capacity)
}

// Owning reports whether this handle is responsible for releasing its memory.
func (p *Bool) Owning() bool { return p.owning }

// Handle exports the flattened native-handle shape for other bindings.
func (p *Bool) Handle() api.Handle {
	return api.Handle{
		Address:  p.addr,
		Position: p.position,
		Limit:    p.limit,
		Capacity: p.capacity,
		ElemSize: p.ElemSize(),
	}
}

// Position returns the current position, in elements.
func (p *Bool) Position() int64 { return p.position }

// Limit returns the current limit, in elements.
func (p *Bool) Limit() int64 { return p.limit }

// Capacity returns the total elements available in the allocation.
func (p *Bool) Capacity() int64 { return p.capacity }

// SetPosition moves the position. Panics if the window invariant would break.
func (p *Bool) SetPosition(n int64) *Bool {
	if n < 0 || n > p.limit {
		panic(fmt.Errorf("%w: position %d outside [0, %d]", api.ErrInvalidWindow, n, p.limit))
	}
	p.position = n
	return p
}

// SetLimit moves the limit. Panics if the window invariant would break.
func (p *Bool) SetLimit(n int64) *Bool {
	if n < p.position || n > p.capacity {
		panic(fmt.Errorf("%w: limit %d outside [%d, %d]", api.ErrInvalidWindow, n, p.position, p.capacity))
	}
	p.limit = n
	return p
}

// SetCapacity restates the capacity, typically after wrapping external
// memory whose true extent is known to the caller. Panics if the window
// invariant would break.
func (p *Bool) SetCapacity(n int64) *Bool {
	if n < p.limit {
		panic(fmt.Errorf("%w: capacity %d below limit %d", api.ErrInvalidWindow, n, p.limit))
	}
	p.capacity = n
	return p
}

// Get reads the i-th element from the current position.
func (p *Bool) Get(i int64) bool {
	return *p.elem(i) != 0
}

// GetFirst is Get(0).
func (p *Bool) GetFirst() bool { return p.Get(0) }

// Put stores v at the i-th element from the current position, writing
// exactly 1 for true and 0 for false.
func (p *Bool) Put(i int64, v bool) *Bool {
	var b byte
	if v {
		b = 1
	}
	*p.elem(i) = b
	return p
}

// PutFirst is Put(0, v).
func (p *Bool) PutFirst(v bool) *Bool { return p.Put(0, v) }

// GetSlice copies length elements starting at the current position into
// dst[offset:]. The position is not advanced: a handle can be reused for
// repeated transfers without cursor bookkeeping.
func (p *Bool) GetSlice(dst []bool, offset, length int) *Bool {
	if length == 0 {
		return p
	}
	src := unsafe.Slice(p.elem(0), length)
	for i := 0; i < length; i++ {
		dst[offset+i] = src[i] != 0
	}
	return p
}

// PutSlice copies src[offset:offset+length] into native memory starting at
// the current position. The position is not advanced.
func (p *Bool) PutSlice(src []bool, offset, length int) *Bool {
	if length == 0 {
		return p
	}
	dst := unsafe.Slice(p.elem(0), length)
	for i := 0; i < length; i++ {
		var b byte
		if src[offset+i] {
			b = 1
		}
		dst[i] = b
	}
	return p
}

// GetAll is GetSlice(dst, 0, len(dst)).
func (p *Bool) GetAll(dst []bool) *Bool { return p.GetSlice(dst, 0, len(dst)) }

// PutAll is PutSlice(vals, 0, len(vals)).
func (p *Bool) PutAll(vals ...bool) *Bool { return p.PutSlice(vals, 0, len(vals)) }

func (p *Bool) elem(i int64) *byte {
	return (*byte)(unsafe.Pointer(p.addr + uintptr(p.position+i)))
}

func (p *Bool) alloc(n int64) (*heap.Block, error) {
	if p.recycler != nil {
		return p.recycler.Get(n)
	}
	return heap.Alloc(n)
}
