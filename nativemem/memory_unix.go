//go:build unix

package nativemem

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// mapMemory maps an anonymous region outside of the Go heap.
func mapMemory(size int) ([]byte, func() error, error) {
	b, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to mmap %d bytes: %w", size, err)
	}
	return b, func() error {
		return unix.Munmap(b)
	}, nil
}
