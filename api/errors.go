// File: api/errors.go
// Author: momentics <momentics@gmail.com>
//
// Error taxonomy for native memory handles. Nothing is recovered locally:
// every failure is surfaced to the caller, annotated where context exists.

package api

import (
	"errors"
	"fmt"
)

// Errors shared across the library.
var (
	// ErrNotLoaded means the native heap support has not been initialized.
	// Callers must run heap.Ensure (directly or via any constructor) first.
	ErrNotLoaded = errors.New("native heap support not initialized (has heap.Ensure been called?)")

	// ErrNullAddress means the native allocator accepted a nonzero request
	// but handed back the unallocated sentinel.
	ErrNullAddress = errors.New("native allocator returned address == 0")

	// ErrInvalidWindow reports a position/limit/capacity combination that
	// violates 0 <= position <= limit <= capacity.
	ErrInvalidWindow = errors.New("invalid position/limit/capacity window")
)

// OutOfMemoryError is raised when the native allocator signals exhaustion.
// It carries the requested size plus the byte telemetry observed at failure
// time, with the allocator's original error chained as the cause.
type OutOfMemoryError struct {
	Requested     int64
	TotalBytes    int64
	ResidentBytes int64
	Cause         error
}

func (e *OutOfMemoryError) Error() string {
	return fmt.Sprintf("cannot allocate %d bytes: totalBytes = %d (%s), physicalBytes = %d (%s)",
		e.Requested,
		e.TotalBytes, FormatBytes(e.TotalBytes),
		e.ResidentBytes, FormatBytes(e.ResidentBytes))
}

func (e *OutOfMemoryError) Unwrap() error { return e.Cause }

// FormatBytes renders a byte count with a binary-unit suffix.
func FormatBytes(n int64) string {
	switch {
	case n < 1024*1000:
		return fmt.Sprintf("%d", n)
	case n < 1024*1024*1000:
		return fmt.Sprintf("%dK", n/1024)
	case n < 1024*1024*1024*1000:
		return fmt.Sprintf("%dM", n/(1024*1024))
	default:
		return fmt.Sprintf("%dG", n/(1024*1024*1024))
	}
}
