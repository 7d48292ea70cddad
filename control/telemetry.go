// File: control/telemetry.go
// Author: momentics <momentics@gmail.com>
//
// Diagnostic telemetry over the native heap: the byte figures embedded into
// out-of-memory errors, exposed here for observability as well.

package control

import (
	"time"

	"github.com/momentics/hioload-native/internal/heap"
)

// Snapshot captures the heap's accounting at one instant.
type Snapshot struct {
	TotalBytes    int64
	ResidentBytes int64
	ActiveBlocks  int64
	Taken         time.Time
}

// TakeSnapshot reads the current heap telemetry.
func TakeSnapshot() Snapshot {
	return Snapshot{
		TotalBytes:    heap.TotalBytes(),
		ResidentBytes: heap.ResidentBytes(),
		ActiveBlocks:  heap.ActiveBlocks(),
		Taken:         time.Now(),
	}
}
