// File: internal/heap/loader.go
// Author: momentics <momentics@gmail.com>
//
// Process-wide readiness probe for native heap support.

package heap

import (
	"fmt"
	"sync"
)

var (
	loadOnce sync.Once
	loadErr  error
)

// Ensure verifies once, process-wide, that native memory mapping works, by
// mapping and releasing a single probe page. Idempotent and thread-safe:
// every call after the first returns the cached result with no side effects.
// Constructors invoke it lazily; callers may also invoke it eagerly to pull
// the failure forward.
func Ensure() error {
	loadOnce.Do(func() {
		const probe = 4096
		addr, data, err := osAlloc(probe)
		if err != nil {
			loadErr = fmt.Errorf("native heap probe failed: %w", err)
			return
		}
		if addr == 0 {
			loadErr = fmt.Errorf("native heap probe returned a null address")
			return
		}
		loadErr = osFree(addr, data)
	})
	return loadErr
}
