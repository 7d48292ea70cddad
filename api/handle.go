// File: api/handle.go
// Author: momentics <momentics@gmail.com>
//
// Plain native-handle shape consumable by other native-call bindings that
// need pointer arithmetic or size queries without importing the buf package.

package api

// Handle is the flattened view of a native buffer. Address is the raw
// native location (0 means unallocated); Position, Limit and Capacity are
// element counts satisfying 0 <= Position <= Limit <= Capacity.
type Handle struct {
	Address  uintptr
	Position int64
	Limit    int64
	Capacity int64
	ElemSize int64
}

// Remaining returns the number of elements between position and limit.
func (h Handle) Remaining() int64 { return h.Limit - h.Position }

// ByteCapacity returns the allocation size in bytes.
func (h Handle) ByteCapacity() int64 { return h.Capacity * h.ElemSize }
