// fixed.go implements Fixed, a typed handle to a native address.

// Package pointer provides typed handles to native memory: Fixed for a
// single non-relocating address and Movable for a slot that itself holds an
// address. The type parameter is a phantom: it documents what lives at the
// address and is never checked at runtime.
package pointer

import (
	"encoding/binary"
	"fmt"
	"runtime"
	"unsafe"

	"github.com/zeebo/xxh3"
	"golang.org/x/exp/constraints"
)

// Fixed is an immutable handle to a native address. The zero value is the
// null pointer. Fixed never owns nor frees the memory it points to.
type Fixed[T any] struct {
	address uintptr
}

// Null returns the null Fixed[T].
func Null[T any]() Fixed[T] {
	return Fixed[T]{}
}

func FixedFromAddress[T any](address uintptr) Fixed[T] {
	return Fixed[T]{address: address}
}

// FixedFromInteger accepts any integer type, e.g. the uint64 handles
// returned by purego/cgo calls.
func FixedFromInteger[T any, I constraints.Integer](address I) Fixed[T] {
	return Fixed[T]{address: uintptr(address)}
}

func FixedFromUnsafe[T any](ptr unsafe.Pointer) Fixed[T] {
	return Fixed[T]{address: uintptr(ptr)}
}

// FixedOf pins *ptr with pinner and returns a handle to it. Pinning moves
// the value to the heap, so the address stays valid until pinner.Unpin; the
// handle must not be used after that.
func FixedOf[T any](pinner *runtime.Pinner, ptr *T) Fixed[T] {
	pinner.Pin(ptr)
	return Fixed[T]{address: uintptr(unsafe.Pointer(ptr))}
}

func (p Fixed[T]) Address() uintptr {
	return p.address
}

func (p Fixed[T]) IsNull() bool {
	return p.address == 0
}

// Or returns p if it is not null, and fallback otherwise.
func (p Fixed[T]) Or(fallback Fixed[T]) Fixed[T] {
	if p.IsNull() {
		return fallback
	}
	return p
}

// UnsafePointer converts the address back to a pointer. The address is
// foreign to the Go allocator as far as checkptr is concerned.
//
//go:nocheckptr
func (p Fixed[T]) UnsafePointer() unsafe.Pointer {
	return unsafe.Pointer(p.address)
}

// Erase drops the type information. It is always legal; going back requires
// an explicit Reinterpret.
func (p Fixed[T]) Erase() Fixed[Void] {
	return Fixed[Void]{address: p.address}
}

// Reinterpret relabels the pointee type without touching the address.
// Nothing is checked: the call site is responsible for the new type being
// correct.
func Reinterpret[U, T any](p Fixed[T]) Fixed[U] {
	return Fixed[U]{address: p.address}
}

// SameAddress compares two handles by address only, whatever their types.
func SameAddress[T, U any](a Fixed[T], b Fixed[U]) bool {
	return a.address == b.address
}

func (p Fixed[T]) Equal(other Fixed[T]) bool {
	return p.address == other.address
}

func (p Fixed[T]) EqualAddress(address uintptr) bool {
	return p.address == address
}

// Equals is the type-checked comparison with an arbitrary value: it is true
// only if other is a Fixed[T] (or a non-nil *Fixed[T]) with the same
// address. A Fixed[U] with the same address is not equal for U != T; use
// SameAddress to compare addresses across types.
func (p Fixed[T]) Equals(other any) bool {
	switch other := other.(type) {
	case Fixed[T]:
		return p.address == other.address
	case *Fixed[T]:
		return other != nil && p.address == other.address
	}
	return false
}

func (p Fixed[T]) Hash() uint64 {
	return hashAddress(p.address)
}

func (p Fixed[T]) String() string {
	return fmt.Sprintf("FixedPointer<%s>(0x%016X)", typeName[T](), uint64(p.address))
}

func hashAddress(address uintptr) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(address))
	return xxh3.Hash(buf[:])
}
