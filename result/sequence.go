package result

import (
	"iter"
)

// All yields the value of a success once, and nothing for a failure.
func (r Result[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.isSuccess {
			yield(r.value)
		}
	}
}

func (r Result[T]) Slice() []T {
	if !r.isSuccess {
		return nil
	}
	return []T{r.value}
}
