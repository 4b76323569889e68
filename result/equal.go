package result

import (
	"reflect"
)

// EqualsValue is true only for a success whose value equals v.
func EqualsValue[T comparable](r Result[T], v T) bool {
	return r.isSuccess && r.value == v
}

// Equal compares two results: successes by value, failures by the identity
// of their errors.
func Equal[T comparable](a, b Result[T]) bool {
	if a.isSuccess != b.isSuccess {
		return false
	}
	if a.isSuccess {
		return a.value == b.value
	}
	return sameError(a.Err(), b.Err())
}

// sameError is a == b that reports false instead of panicking when the
// errors (or errors nested in their fields) are not comparable.
func sameError(a, b error) (same bool) {
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if !reflect.TypeOf(a).Comparable() {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			same = false
		}
	}()
	return a == b
}
