// movable.go implements Movable, a typed handle to a pointer-holding slot.

package pointer

import (
	"context"
	"fmt"
	"runtime"
	"unsafe"

	"github.com/xaionaro-go/avnative/internal"
	"golang.org/x/exp/constraints"
)

// Movable is an immutable handle to a word-sized slot which stores the
// address of a T (a "T **"). It is what native APIs take when they may
// replace or clear the pointer, e.g. av_frame_free(AVFrame **).
//
// Reads and writes through the slot are plain memory accesses: concurrent
// use of the same slot must be serialized by the caller.
type Movable[T any] struct {
	slot uintptr
}

func MovableFromAddress[T any](slotAddress uintptr) Movable[T] {
	return Movable[T]{slot: slotAddress}
}

func MovableFromInteger[T any, I constraints.Integer](slotAddress I) Movable[T] {
	return Movable[T]{slot: uintptr(slotAddress)}
}

func MovableFromUnsafe[T any](slot unsafe.Pointer) Movable[T] {
	return Movable[T]{slot: uintptr(slot)}
}

// MovableOf pins the Go-side slot with pinner and returns a handle to it.
// As with FixedOf, the handle is valid until pinner.Unpin.
func MovableOf[T any](pinner *runtime.Pinner, slot *uintptr) Movable[T] {
	pinner.Pin(slot)
	return Movable[T]{slot: uintptr(unsafe.Pointer(slot))}
}

func (m Movable[T]) SlotAddress() uintptr {
	return m.slot
}

func (m Movable[T]) IsNull() bool {
	return m.slot == 0
}

// IsPresent reports whether the slot exists and holds a non-null target.
func (m Movable[T]) IsPresent() bool {
	return !m.IsNull() && m.load() != 0
}

func (m Movable[T]) Or(fallback Movable[T]) Movable[T] {
	if m.IsNull() {
		return fallback
	}
	return m
}

// TargetOr returns the stored target if IsPresent, and fallback otherwise.
// A null slot is never dereferenced.
func (m Movable[T]) TargetOr(fallback Fixed[T]) Fixed[T] {
	if !m.IsPresent() {
		return fallback
	}
	return Fixed[T]{address: m.load()}
}

// Target reads the address stored in the slot.
//
// Calling it on a null Movable panics with ErrContractViolation.
// Use Slot to check once and get a handle that cannot be null.
func (m Movable[T]) Target() Fixed[T] {
	m.mustNotBeNull("Target")
	return Fixed[T]{address: m.load()}
}

// SetTarget writes the address of target into the slot.
//
// Calling it on a null Movable panics with ErrContractViolation.
func (m Movable[T]) SetTarget(target Fixed[T]) {
	m.mustNotBeNull("SetTarget")
	m.store(target.address)
}

// Slot validates that the slot is not null and returns an accessor which
// can be used without further checks.
func (m Movable[T]) Slot() (Slot[T], error) {
	if m.IsNull() {
		return Slot[T]{}, m.errNull("Slot")
	}
	return Slot[T]{movable: m}, nil
}

func ReinterpretMovable[U, T any](m Movable[T]) Movable[U] {
	return Movable[U]{slot: m.slot}
}

// SameSlot compares two handles by slot address only, whatever their types.
func SameSlot[T, U any](a Movable[T], b Movable[U]) bool {
	return a.slot == b.slot
}

func (m Movable[T]) Equal(other Movable[T]) bool {
	return m.slot == other.slot
}

func (m Movable[T]) EqualAddress(slotAddress uintptr) bool {
	return m.slot == slotAddress
}

// Equals follows the same rules as Fixed.Equals.
func (m Movable[T]) Equals(other any) bool {
	switch other := other.(type) {
	case Movable[T]:
		return m.slot == other.slot
	case *Movable[T]:
		return other != nil && m.slot == other.slot
	}
	return false
}

func (m Movable[T]) Hash() uint64 {
	return hashAddress(m.slot)
}

func (m Movable[T]) String() string {
	return fmt.Sprintf("MovablePointer<%s>(0x%016X)", typeName[T](), uint64(m.slot))
}

func (m Movable[T]) mustNotBeNull(op string) {
	internal.Assert(context.TODO(), !m.IsNull(), func() error {
		return m.errNull(op)
	})
}

func (m Movable[T]) errNull(op string) error {
	return ErrNullPointer{
		Op:       op,
		TypeName: fmt.Sprintf("MovablePointer<%s>", typeName[T]()),
	}
}

// load and store dereference an address which did not come from an
// unsafe.Pointer operand, so checkptr cannot validate them.
//
//go:nocheckptr
func (m Movable[T]) load() uintptr {
	return *(*uintptr)(unsafe.Pointer(m.slot))
}

//go:nocheckptr
func (m Movable[T]) store(address uintptr) {
	*(*uintptr)(unsafe.Pointer(m.slot)) = address
}
