package nativemem

import (
	"fmt"
)

type ErrOutOfMemory struct {
	Requested uintptr
}

func (e ErrOutOfMemory) Error() string {
	return fmt.Sprintf("no room left for %d bytes", e.Requested)
}

type ErrClosed struct{}

func (ErrClosed) Error() string {
	return "the arena is closed"
}

type ErrForeignAddress struct {
	Address uintptr
}

func (e ErrForeignAddress) Error() string {
	return fmt.Sprintf("address 0x%016X was not allocated by this arena", uint64(e.Address))
}

type ErrNotBlittable struct {
	TypeName string
}

func (e ErrNotBlittable) Error() string {
	return fmt.Sprintf("type %s contains Go pointers and cannot live in native memory", e.TypeName)
}

type ErrInvalidConfig struct {
	Reason string
}

func (e ErrInvalidConfig) Error() string {
	return "invalid arena config: " + e.Reason
}
