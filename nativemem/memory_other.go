//go:build !unix

package nativemem

import (
	"runtime"
	"unsafe"
)

// mapMemory falls back to a pinned Go allocation where mmap is unavailable.
func mapMemory(size int) ([]byte, func() error, error) {
	words := make([]uint64, (size+cellSize-1)/cellSize)
	var pinner runtime.Pinner
	pinner.Pin(&words[0])
	b := unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), size)
	return b, func() error {
		pinner.Unpin()
		return nil
	}, nil
}
