// File: buf/log.go
// Author: momentics <momentics@gmail.com>
//
// Package logger and lazy native-heap readiness check.

package buf

import (
	"sync"
	"sync/atomic"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/momentics/hioload-native/internal/heap"
)

// loggerBox keeps atomic.Value stores monomorphic across logger types.
type loggerBox struct{ l log.Logger }

var (
	pkgLogger    atomic.Value
	loadWarnOnce sync.Once
)

func init() {
	pkgLogger.Store(loggerBox{log.NewNopLogger()})
}

// SetLogger installs the logger for construction-time diagnostics and
// forwards it to the heap layer. Safe for concurrent use.
func SetLogger(l log.Logger) {
	if l == nil {
		l = log.NewNopLogger()
	}
	pkgLogger.Store(loggerBox{l})
	heap.SetLogger(l)
}

// ensureLoaded triggers the process-wide heap readiness probe. On failure
// construction continues in degraded mode: a debug diagnostic is emitted
// once and the error resurfaces at the first real allocation or access.
func ensureLoaded() {
	if err := heap.Ensure(); err != nil {
		loadWarnOnce.Do(func() {
			level.Debug(pkgLogger.Load().(loggerBox).l).Log(
				"msg", "could not load native heap support, continuing degraded", "err", err)
		})
	}
}
