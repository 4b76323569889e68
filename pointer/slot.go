package pointer

// Slot is a Movable which was checked to be non-null, see Movable.Slot.
//
// A Slot obtained from Movable.Slot never hits a null slot. The zero Slot
// is not such a value: using it is a contract violation, the same as
// calling Target on a null Movable.
type Slot[T any] struct {
	movable Movable[T]
}

func (s Slot[T]) Load() Fixed[T] {
	return s.movable.Target()
}

func (s Slot[T]) Store(target Fixed[T]) {
	s.movable.SetTarget(target)
}

// Swap stores target and returns the previously stored address.
func (s Slot[T]) Swap(target Fixed[T]) Fixed[T] {
	old := s.movable.Target()
	s.movable.SetTarget(target)
	return old
}

func (s Slot[T]) Movable() Movable[T] {
	return s.movable
}
