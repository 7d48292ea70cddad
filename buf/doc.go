// File: buf/doc.go
// Author: momentics <momentics@gmail.com>
//
// Package buf provides typed handles over native memory for use at the
// boundary with native code. The only instantiable variant here is Bool,
// a handle to an array of single-byte booleans (false == 0, true == 1);
// the api.Kind set names the rest of the family.
//
// Every handle carries the position/limit/capacity window model: element
// access is relative to the current position, and 0 <= position <= limit
// <= capacity always holds.
//
// Ownership contract: an owning handle (fresh allocation, slice copy,
// array-backed region copy) is solely responsible for releasing its memory.
// Aliasing handles (native-backed region wraps, Alias, OffsetView) share
// the source's memory and never release it. An alias must not be used after
// its source has been released; the package does not track alias lifetimes,
// so this is the caller's obligation.
//
// Handles are not synchronized. Concurrent access to overlapping regions
// from multiple goroutines without external locking is undefined behavior:
// the backing store is raw memory with no atomicity guarantees.
package buf
