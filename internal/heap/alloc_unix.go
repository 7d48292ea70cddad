//go:build unix

// File: internal/heap/alloc_unix.go
// Author: momentics <momentics@gmail.com>
//
// Unix mapping backend: anonymous private mmap, one mapping per block.

package heap

import (
	"errors"
	"unsafe"

	"golang.org/x/sys/unix"
)

func osAlloc(n int64) (uintptr, []byte, error) {
	data, err := unix.Mmap(-1, 0, int(n),
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return 0, nil, err
	}
	return uintptr(unsafe.Pointer(&data[0])), data, nil
}

func osFree(_ uintptr, data []byte) error {
	return unix.Munmap(data)
}

func isNoMem(err error) bool {
	return errors.Is(err, unix.ENOMEM)
}
