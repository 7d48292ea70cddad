//go:build windows

// File: internal/heap/alloc_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows mapping backend: VirtualAlloc committed pages, one region per block.

package heap

import (
	"errors"
	"unsafe"

	"golang.org/x/sys/windows"
)

func osAlloc(n int64) (uintptr, []byte, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(n),
		windows.MEM_COMMIT|windows.MEM_RESERVE,
		windows.PAGE_READWRITE)
	if err != nil {
		return 0, nil, err
	}
	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), n)
	return addr, data, nil
}

func osFree(addr uintptr, _ []byte) error {
	return windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
}

func isNoMem(err error) bool {
	return errors.Is(err, windows.ERROR_NOT_ENOUGH_MEMORY) ||
		errors.Is(err, windows.ERROR_COMMITMENT_LIMIT)
}
