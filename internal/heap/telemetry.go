// File: internal/heap/telemetry.go
// Author: momentics <momentics@gmail.com>
//
// Resident-set figure for out-of-memory diagnostics. Read from procfs where
// the platform exposes it; elsewhere the figure is reported as 0 rather than
// failing the error path that wants it.

package heap

import "github.com/prometheus/procfs"

// ResidentBytes reports the process resident set size in bytes, or 0 when
// the figure is unavailable on this platform.
func ResidentBytes() int64 {
	p, err := procfs.Self()
	if err != nil {
		return 0
	}
	stat, err := p.Stat()
	if err != nil {
		return 0
	}
	return int64(stat.ResidentMemory())
}
